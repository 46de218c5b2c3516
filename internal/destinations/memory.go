package destinations

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/steward/internal/palette"
	"github.com/JaimeStill/steward/pkg/pagination"
)

// Memory is an in-memory System implementation with the same semantics as
// the SQL repository: active-path uniqueness, cascading soft delete, and
// read-time ranking. List ordering is fixed to most-recently-used first.
type Memory struct {
	mu         sync.RWMutex
	items      map[uuid.UUID]Destination
	now        func() time.Time
	pagination pagination.Config
}

// NewMemory creates an in-memory destination store.
func NewMemory(cfg pagination.Config) *Memory {
	return NewMemoryClock(cfg, time.Now)
}

// NewMemoryClock creates a Memory with an injected clock so tests can
// control usage timestamps deterministically.
func NewMemoryClock(cfg pagination.Config, now func() time.Time) *Memory {
	return &Memory{
		items:      make(map[uuid.UUID]Destination),
		now:        now,
		pagination: cfg,
	}
}

func (m *Memory) List(
	ctx context.Context,
	userID uuid.UUID,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Destination], error) {
	page.Normalize(m.pagination)

	m.mu.RLock()
	defer m.mu.RUnlock()

	items := m.activeForUser(userID)

	if filters.Category != nil {
		items = slices.DeleteFunc(items, func(d Destination) bool {
			return d.Category != *filters.Category
		})
	}

	if page.Search != nil && *page.Search != "" {
		needle := strings.ToLower(*page.Search)
		items = slices.DeleteFunc(items, func(d Destination) bool {
			return !strings.Contains(strings.ToLower(d.Path), needle) &&
				!strings.Contains(strings.ToLower(d.Category), needle)
		})
	}

	sortDefault(items)
	total := len(items)

	start := page.Offset()
	if start > total {
		start = total
	}
	end := start + page.PageSize
	if end > total {
		end = total
	}

	result := pagination.NewPageResult(items[start:end], total, page.Page, page.PageSize)
	return &result, nil
}

func (m *Memory) Find(ctx context.Context, userID, id uuid.UUID) (*Destination, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	d, ok := m.items[id]
	if !ok || !d.IsActive || d.UserID != userID {
		return nil, ErrNotFound
	}

	return &d, nil
}

func (m *Memory) Add(ctx context.Context, userID uuid.UUID, cmd AddCommand) (*Destination, error) {
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

	m.mu.Lock()
	defer m.mu.Unlock()

	active := m.activeForUser(userID)
	for _, d := range active {
		if d.Path == path {
			return nil, ErrDuplicateActive
		}
	}

	d := Destination{
		ID:        uuid.New(),
		UserID:    userID,
		ClientID:  cmd.ClientID,
		Path:      path,
		Category:  category,
		Color:     m.pickColor(active, cmd.Color),
		IsActive:  true,
		CreatedAt: m.now().UTC(),
	}

	m.items[d.ID] = d
	return &d, nil
}

func (m *Memory) Update(ctx context.Context, userID, id uuid.UUID, cmd UpdateCommand) (*Destination, error) {
	if cmd.Path == nil && cmd.Category == nil && cmd.Color == nil {
		return nil, fmt.Errorf("%w: no fields to update", ErrValidation)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	d, ok := m.items[id]
	if !ok || !d.IsActive || d.UserID != userID {
		return nil, ErrNotFound
	}

	if cmd.Path != nil {
		path, err := NormalizePath(*cmd.Path)
		if err != nil {
			return nil, err
		}

		for _, other := range m.activeForUser(userID) {
			if other.ID != d.ID && other.Path == path {
				return nil, ErrDuplicateActive
			}
		}
		d.Path = path
	}

	if cmd.Category != nil {
		category, err := validateCategory(*cmd.Category)
		if err != nil {
			return nil, err
		}
		d.Category = category
	}

	if cmd.Color != nil {
		normalized, ok := palette.Normalize(*cmd.Color)
		if !ok {
			return nil, fmt.Errorf("%w: invalid color %q", ErrValidation, *cmd.Color)
		}
		d.Color = normalized
	}

	m.items[d.ID] = d
	return &d, nil
}

func (m *Memory) Remove(ctx context.Context, userID, id uuid.UUID) ([]Destination, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	target, ok := m.items[id]
	if !ok || !target.IsActive || target.UserID != userID {
		return nil, ErrNotFound
	}

	targets := CascadeTargets(target.Path, m.activeForUser(userID))

	for i, t := range targets {
		stored := m.items[t.ID]
		stored.IsActive = false
		m.items[t.ID] = stored
		targets[i].IsActive = false
	}

	return targets, nil
}

func (m *Memory) RecordUse(ctx context.Context, userID uuid.UUID, path string) error {
	normalized, err := NormalizePath(path)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for id, d := range m.items {
		if d.UserID != userID || !d.IsActive || d.Path != normalized {
			continue
		}

		used := m.now().UTC()
		d.UsageCount++
		d.LastUsedAt = &used
		m.items[id] = d
		return nil
	}

	return nil
}

func (m *Memory) CategoryCandidates(ctx context.Context, userID uuid.UUID, category string) ([]Candidate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := m.activeForUser(userID)
	items = slices.DeleteFunc(items, func(d Destination) bool {
		return d.Category != category
	})

	sortDefault(items)
	return RankCandidates(items), nil
}

func (m *Memory) activeForUser(userID uuid.UUID) []Destination {
	var items []Destination
	for _, d := range m.items {
		if d.UserID == userID && d.IsActive {
			items = append(items, d)
		}
	}
	return items
}

func (m *Memory) pickColor(active []Destination, requested *string) string {
	colors := make([]string, len(active))
	for i, d := range active {
		colors[i] = d.Color
	}

	if requested == nil || *requested == "" {
		return palette.Assign(colors)
	}
	return palette.Preferred(colors, *requested)
}

func sortDefault(items []Destination) {
	slices.SortStableFunc(items, func(a, b Destination) int {
		at, bt := a.LastUsedAt, b.LastUsedAt
		switch {
		case at == nil && bt != nil:
			return 1
		case at != nil && bt == nil:
			return -1
		case at != nil && bt != nil:
			if at.After(*bt) {
				return -1
			}
			if bt.After(*at) {
				return 1
			}
		}

		if a.CreatedAt.After(b.CreatedAt) {
			return -1
		}
		if b.CreatedAt.After(a.CreatedAt) {
			return 1
		}
		return 0
	})
}
