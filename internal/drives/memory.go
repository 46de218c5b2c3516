package drives

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

type mountKey struct {
	identity string
	client   uuid.UUID
}

// Memory is an in-memory System for tests and single-process tooling.
type Memory struct {
	mu    sync.RWMutex
	items map[mountKey]Mount
	now   func() time.Time
}

// NewMemory creates an empty in-memory mount store.
func NewMemory() *Memory {
	return NewMemoryClock(time.Now)
}

// NewMemoryClock creates an in-memory mount store with an injected clock.
func NewMemoryClock(now func() time.Time) *Memory {
	return &Memory{
		items: make(map[mountKey]Mount),
		now:   now,
	}
}

func (m *Memory) RecordMount(ctx context.Context, cmd RecordCommand) (*Mount, error) {
	cmd, err := cmd.normalize()
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	mount := Mount{
		DriveIdentity: cmd.DriveIdentity,
		ClientID:      cmd.ClientID,
		MountPoint:    cmd.MountPoint,
		Available:     true,
		LastSeenAt:    m.now().UTC(),
	}

	m.items[mountKey{cmd.DriveIdentity, cmd.ClientID}] = mount
	return &mount, nil
}

func (m *Memory) Mounts(ctx context.Context, identity string) ([]Mount, error) {
	identity, err := validateIdentity(identity)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var mounts []Mount
	for _, mount := range m.items {
		if mount.DriveIdentity == identity {
			mounts = append(mounts, mount)
		}
	}

	slices.SortFunc(mounts, func(a, b Mount) int {
		if a.LastSeenAt.After(b.LastSeenAt) {
			return -1
		}
		if b.LastSeenAt.After(a.LastSeenAt) {
			return 1
		}
		return strings.Compare(a.ClientID.String(), b.ClientID.String())
	})

	return mounts, nil
}

func (m *Memory) SetAvailable(ctx context.Context, identity string, clientID uuid.UUID, available bool) error {
	identity, err := validateKey(identity, clientID)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key := mountKey{identity, clientID}
	mount, ok := m.items[key]
	if !ok {
		return ErrNotFound
	}

	mount.Available = available
	if available {
		mount.LastSeenAt = m.now().UTC()
	}
	m.items[key] = mount

	return nil
}
