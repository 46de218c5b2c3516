package destinations

import (
	"github.com/JaimeStill/steward/pkg/query"
	"github.com/JaimeStill/steward/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "destinations", "d").
	Project("id", "ID").
	Project("user_id", "UserID").
	Project("client_id", "ClientID").
	Project("path", "Path").
	Project("category", "Category").
	Project("color", "Color").
	Project("usage_count", "UsageCount").
	Project("last_used_at", "LastUsedAt").
	Project("is_active", "IsActive").
	Project("created_at", "CreatedAt")

// defaultSort lists most-recently-used destinations first; never-used rows
// sort by creation time after them.
var defaultSort = []query.SortField{
	{Field: "LastUsedAt", Descending: true, NullsLast: true},
	{Field: "CreatedAt", Descending: true},
}

// Filters contains optional filtering criteria for destination queries.
// Nil fields are ignored.
type Filters struct {
	Category *string `json:"category,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.WhereEquals("Category", f.Category)
}

func scanDestination(s repository.Scanner) (Destination, error) {
	var d Destination

	err := s.Scan(
		&d.ID,
		&d.UserID,
		&d.ClientID,
		&d.Path,
		&d.Category,
		&d.Color,
		&d.UsageCount,
		&d.LastUsedAt,
		&d.IsActive,
		&d.CreatedAt,
	)

	return d, err
}

func scanColor(s repository.Scanner) (string, error) {
	var c string
	err := s.Scan(&c)
	return c, err
}
