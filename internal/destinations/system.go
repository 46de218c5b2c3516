package destinations

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/steward/pkg/pagination"
)

// System defines the public contract for destination memory operations.
// All operations are scoped to a single user; destinations belonging to
// other users are invisible.
type System interface {
	List(
		ctx context.Context,
		userID uuid.UUID,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Destination], error)

	Find(ctx context.Context, userID, id uuid.UUID) (*Destination, error)
	Add(ctx context.Context, userID uuid.UUID, cmd AddCommand) (*Destination, error)
	Update(ctx context.Context, userID, id uuid.UUID, cmd UpdateCommand) (*Destination, error)

	// Remove soft-deletes a destination and every active descendant under
	// its path, atomically. It returns the deactivated destinations.
	Remove(ctx context.Context, userID, id uuid.UUID) ([]Destination, error)

	// RecordUse increments usage statistics for the active destination at
	// exactly the given path. A path with no active destination is a no-op,
	// not an error.
	RecordUse(ctx context.Context, userID uuid.UUID, path string) error

	// CategoryCandidates returns the user's active destinations for a
	// category ranked by usage share, best first.
	CategoryCandidates(ctx context.Context, userID uuid.UUID, category string) ([]Candidate, error)
}
