// Package destinations implements the destination memory domain for Steward.
// It stores learned folder destinations per user with usage statistics,
// ranks them at read time by usage share, and soft-deletes by path
// containment so removing a parent folder also deactivates its descendants.
// Removed rows are never physically deleted.
package destinations

import (
	"time"

	"github.com/google/uuid"
)

// Destination represents a learned placement folder for a user and category.
// ClientID records the device that created the entry. UsageCount and
// LastUsedAt update on every confirmed use; IsActive is the soft-delete
// flag. Deactivated rows keep their statistics.
type Destination struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"user_id"`
	ClientID   uuid.UUID  `json:"client_id"`
	Path       string     `json:"path"`
	Category   string     `json:"category"`
	Color      string     `json:"color"`
	UsageCount int        `json:"usage_count"`
	LastUsedAt *time.Time `json:"last_used_at"`
	IsActive   bool       `json:"is_active"`
	CreatedAt  time.Time  `json:"created_at"`
}

// AddCommand carries the data needed to create a destination. ClientID is
// the device recording it and must be set. Color is optional; when nil or
// empty a palette color is auto-assigned, and an explicit candidate falls
// back to auto-assignment if it is invalid or already in use.
type AddCommand struct {
	ClientID uuid.UUID `json:"client_id"`
	Path     string    `json:"path"`
	Category string    `json:"category"`
	Color    *string   `json:"color,omitempty"`
}

// UpdateCommand carries a partial update. Nil fields are left unchanged.
// A non-nil Color must be a valid hex color.
type UpdateCommand struct {
	Path     *string `json:"path,omitempty"`
	Category *string `json:"category,omitempty"`
	Color    *string `json:"color,omitempty"`
}

// Candidate pairs a destination with its read-time ranking confidence:
// the destination's share of all confirmed uses in its category.
type Candidate struct {
	Destination `json:"destination"`
	Confidence  float64 `json:"confidence"`
	Percent     int     `json:"percent"`
}
