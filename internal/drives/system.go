package drives

import (
	"context"

	"github.com/google/uuid"
)

// System defines the public contract for drive mount tracking.
type System interface {
	// RecordMount upserts the (drive_identity, client_id) row with the
	// latest mount point, marks it available, and refreshes last_seen_at.
	RecordMount(ctx context.Context, cmd RecordCommand) (*Mount, error)

	// Mounts lists every client's mount record for a drive identity, most
	// recently seen first.
	Mounts(ctx context.Context, identity string) ([]Mount, error)

	// SetAvailable flags a client's mount record as attached or detached.
	// Marking a mount available refreshes last_seen_at; marking it
	// unavailable keeps the timestamp of the last actual sighting.
	SetAvailable(ctx context.Context, identity string, clientID uuid.UUID, available bool) error
}
