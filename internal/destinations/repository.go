package destinations

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/JaimeStill/steward/internal/palette"
	"github.com/JaimeStill/steward/pkg/pagination"
	"github.com/JaimeStill/steward/pkg/query"
	"github.com/JaimeStill/steward/pkg/repository"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a destination repository implementing the System interface.
// Uniqueness of (user_id, path) among active rows is enforced by a partial
// unique index; violations surface as ErrDuplicateActive.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "destinations"),
		pagination: pagination,
	}
}

func (r *repo) List(
	ctx context.Context,
	userID uuid.UUID,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Destination], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort...).
		WhereEquals("UserID", userID).
		WhereEquals("IsActive", true).
		WhereSearch(page.Search, "Path", "Category")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count destinations: %w", repository.MapError(err, ErrNotFound, ErrDuplicateActive))
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanDestination)
	if err != nil {
		return nil, fmt.Errorf("query destinations: %w", repository.MapError(err, ErrNotFound, ErrDuplicateActive))
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, userID, id uuid.UUID) (*Destination, error) {
	q, args := query.NewBuilder(projection).
		WhereEquals("ID", id).
		WhereEquals("UserID", userID).
		WhereEquals("IsActive", true).
		BuildSingleOrNull()

	d, err := repository.QueryOne(ctx, r.db, q, args, scanDestination)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicateActive)
	}
	return &d, nil
}

func (r *repo) Add(ctx context.Context, userID uuid.UUID, cmd AddCommand) (*Destination, error) {
	path, err := NormalizePath(cmd.Path)
	if err != nil {
		return nil, err
	}

	category, err := validateCategory(cmd.Category)
	if err != nil {
		return nil, err
	}

	if err := validateClient(cmd.ClientID); err != nil {
		return nil, err
	}

	insertQ := `
		INSERT INTO destinations (user_id, client_id, path, category, color)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, client_id, path, category, color, usage_count, last_used_at, is_active, created_at`

	d, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Destination, error) {
		color, err := resolveColor(ctx, tx, userID, cmd.Color)
		if err != nil {
			return Destination{}, err
		}

		created, err := repository.QueryOne(ctx, tx, insertQ,
			[]any{userID, cmd.ClientID, path, category, color},
			scanDestination,
		)
		if err != nil {
			return Destination{}, fmt.Errorf("insert destination: %w", err)
		}

		return created, nil
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicateActive)
	}

	r.logger.Info("destination added",
		"id", d.ID,
		"user_id", userID,
		"client_id", d.ClientID,
		"path", d.Path,
		"category", d.Category,
		"color", d.Color,
	)
	return &d, nil
}

func (r *repo) Update(ctx context.Context, userID, id uuid.UUID, cmd UpdateCommand) (*Destination, error) {
	if cmd.Path == nil && cmd.Category == nil && cmd.Color == nil {
		return nil, fmt.Errorf("%w: no fields to update", ErrValidation)
	}

	if cmd.Path != nil {
		normalized, err := NormalizePath(*cmd.Path)
		if err != nil {
			return nil, err
		}
		cmd.Path = &normalized
	}

	if cmd.Category != nil {
		category, err := validateCategory(*cmd.Category)
		if err != nil {
			return nil, err
		}
		cmd.Category = &category
	}

	if cmd.Color != nil {
		normalized, ok := palette.Normalize(*cmd.Color)
		if !ok {
			return nil, fmt.Errorf("%w: invalid color %q", ErrValidation, *cmd.Color)
		}
		cmd.Color = &normalized
	}

	updateQ := `
		UPDATE destinations
		SET path = COALESCE($1, path),
		    category = COALESCE($2, category),
		    color = COALESCE($3, color)
		WHERE id = $4 AND user_id = $5 AND is_active
		RETURNING id, user_id, client_id, path, category, color, usage_count, last_used_at, is_active, created_at`

	d, err := repository.QueryOne(ctx, r.db, updateQ,
		[]any{cmd.Path, cmd.Category, cmd.Color, id, userID},
		scanDestination,
	)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicateActive)
	}

	r.logger.Info("destination updated", "id", d.ID, "user_id", userID)
	return &d, nil
}

func (r *repo) Remove(ctx context.Context, userID, id uuid.UUID) ([]Destination, error) {
	removed, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) ([]Destination, error) {
		findQ, findArgs := query.NewBuilder(projection).
			WhereEquals("ID", id).
			WhereEquals("UserID", userID).
			WhereEquals("IsActive", true).
			BuildSingleOrNull()

		target, err := repository.QueryOne(ctx, tx, findQ, findArgs, scanDestination)
		if err != nil {
			return nil, err
		}

		activeQ, activeArgs := query.NewBuilder(projection).
			WhereEquals("UserID", userID).
			WhereEquals("IsActive", true).
			Build()

		active, err := repository.QueryMany(ctx, tx, activeQ, activeArgs, scanDestination)
		if err != nil {
			return nil, fmt.Errorf("query active destinations: %w", err)
		}

		targets := CascadeTargets(target.Path, active)

		ids := make([]any, len(targets))
		for i, t := range targets {
			ids[i] = t.ID
		}

		deactivateQ := fmt.Sprintf(
			"UPDATE destinations SET is_active = FALSE WHERE id IN (%s)",
			placeholders(len(ids)),
		)

		affected, err := repository.ExecAffected(ctx, tx, deactivateQ, ids...)
		if err != nil {
			return nil, fmt.Errorf("deactivate destinations: %w", err)
		}
		if affected != int64(len(targets)) {
			return nil, fmt.Errorf("deactivate destinations: affected %d of %d", affected, len(targets))
		}

		for i := range targets {
			targets[i].IsActive = false
		}

		return targets, nil
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicateActive)
	}

	r.logger.Info("destination removed",
		"id", id,
		"user_id", userID,
		"cascade_count", len(removed),
	)
	return removed, nil
}

func (r *repo) RecordUse(ctx context.Context, userID uuid.UUID, path string) error {
	normalized, err := NormalizePath(path)
	if err != nil {
		return err
	}

	useQ := `
		UPDATE destinations
		SET usage_count = usage_count + 1, last_used_at = NOW()
		WHERE user_id = $1 AND path = $2 AND is_active`

	affected, err := repository.ExecAffected(ctx, r.db, useQ, userID, normalized)
	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicateActive)
	}

	if affected == 0 {
		r.logger.Debug("use recorded for unknown path", "user_id", userID, "path", normalized)
		return nil
	}

	r.logger.Info("destination use recorded", "user_id", userID, "path", normalized)
	return nil
}

func (r *repo) CategoryCandidates(ctx context.Context, userID uuid.UUID, category string) ([]Candidate, error) {
	q, args := query.NewBuilder(projection, defaultSort...).
		WhereEquals("UserID", userID).
		WhereEquals("Category", category).
		WhereEquals("IsActive", true).
		Build()

	items, err := repository.QueryMany(ctx, r.db, q, args, scanDestination)
	if err != nil {
		return nil, fmt.Errorf("query category candidates: %w", repository.MapError(err, ErrNotFound, ErrDuplicateActive))
	}

	return RankCandidates(items), nil
}

// resolveColor picks the color for a new destination from the user's active
// assignments, honoring a valid unused candidate when one was requested.
func resolveColor(ctx context.Context, q repository.Querier, userID uuid.UUID, requested *string) (string, error) {
	existing, err := repository.QueryMany(ctx, q,
		"SELECT color FROM destinations WHERE user_id = $1 AND is_active",
		[]any{userID},
		scanColor,
	)
	if err != nil {
		return "", fmt.Errorf("query active colors: %w", err)
	}

	if requested == nil || *requested == "" {
		return palette.Assign(existing), nil
	}

	return palette.Preferred(existing, *requested), nil
}

func validateCategory(category string) (string, error) {
	c := strings.TrimSpace(category)
	if c == "" {
		return "", fmt.Errorf("%w: category is empty", ErrValidation)
	}
	return c, nil
}

func validateClient(clientID uuid.UUID) error {
	if clientID == uuid.Nil {
		return fmt.Errorf("%w: client id is empty", ErrValidation)
	}
	return nil
}

func placeholders(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("$%d", i+1)
	}
	return strings.Join(parts, ", ")
}
