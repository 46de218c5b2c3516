package drives

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"

	"github.com/JaimeStill/steward/pkg/query"
	"github.com/JaimeStill/steward/pkg/repository"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a drive mount repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "drives"),
	}
}

func (r *repo) RecordMount(ctx context.Context, cmd RecordCommand) (*Mount, error) {
	cmd, err := cmd.normalize()
	if err != nil {
		return nil, err
	}

	q := `
		INSERT INTO drive_mounts(drive_identity, client_id, mount_point, available, last_seen_at)
		VALUES ($1, $2, $3, TRUE, NOW())
		ON CONFLICT (drive_identity, client_id)
		DO UPDATE SET mount_point = EXCLUDED.mount_point, available = TRUE, last_seen_at = NOW()
		RETURNING drive_identity, client_id, mount_point, available, last_seen_at`

	args := []any{cmd.DriveIdentity, cmd.ClientID, cmd.MountPoint}

	m, err := repository.QueryOne(ctx, r.db, q, args, scanMount)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info(
		"mount recorded",
		"identity", m.DriveIdentity,
		"client_id", m.ClientID,
		"mount_point", m.MountPoint,
	)
	return &m, nil
}

func (r *repo) Mounts(ctx context.Context, identity string) ([]Mount, error) {
	identity, err := validateIdentity(identity)
	if err != nil {
		return nil, err
	}

	q, args := query.
		NewBuilder(projection, defaultSort...).
		WhereEquals("DriveIdentity", identity).
		Build()

	mounts, err := repository.QueryMany(ctx, r.db, q, args, scanMount)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return mounts, nil
}

func (r *repo) SetAvailable(ctx context.Context, identity string, clientID uuid.UUID, available bool) error {
	identity, err := validateKey(identity, clientID)
	if err != nil {
		return err
	}

	q := `
		UPDATE drive_mounts
		SET available = $3,
			last_seen_at = CASE WHEN $3 THEN NOW() ELSE last_seen_at END
		WHERE drive_identity = $1 AND client_id = $2`

	affected, err := repository.ExecAffected(ctx, r.db, q, identity, clientID, available)
	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	if affected == 0 {
		return ErrNotFound
	}

	r.logger.Info(
		"mount availability set",
		"identity", identity,
		"client_id", clientID,
		"available", available,
	)
	return nil
}
