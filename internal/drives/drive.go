// Package drives resolves stable identities for removable storage volumes
// and tracks per-client mount observations. A volume keeps its identity as
// it moves between machines and mount points; each client that sees it gets
// its own mount record.
package drives

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// IdentityMethod names the signal an identity was derived from.
type IdentityMethod string

// Identity methods in reliability order.
const (
	MethodSerial    IdentityMethod = "serial"
	MethodFsUUID    IdentityMethod = "fs_uuid"
	MethodLabelSize IdentityMethod = "label_size"
)

// Confidence grades how stable an identity signal is across reconnects and
// reformats.
type Confidence string

// Confidence levels for resolved identities.
const (
	ConfidenceHigh   Confidence = "HIGH"
	ConfidenceMedium Confidence = "MEDIUM"
	ConfidenceLow    Confidence = "LOW"
)

// DeviceRef carries the raw attributes an OS mount enumerator reported for
// one attached volume. Attributes the platform could not read are left
// zero-valued.
type DeviceRef struct {
	Serial     string `json:"serial,omitempty"`
	FsUUID     string `json:"fs_uuid,omitempty"`
	Label      string `json:"label,omitempty"`
	SizeBytes  int64  `json:"size_bytes,omitempty"`
	MountPoint string `json:"mount_point,omitempty"`
}

// Identity is a stable reference to a physical volume, independent of where
// it is currently mounted.
type Identity struct {
	Value      string         `json:"value"`
	Method     IdentityMethod `json:"method"`
	Confidence Confidence     `json:"confidence"`
}

// Mount is one client's record of where a drive attaches. A drive has at
// most one mount row per client; re-observations update the row in place.
type Mount struct {
	DriveIdentity string    `json:"drive_identity"`
	ClientID      uuid.UUID `json:"client_id"`
	MountPoint    string    `json:"mount_point"`
	Available     bool      `json:"available"`
	LastSeenAt    time.Time `json:"last_seen_at"`
}

// RecordCommand carries one mount observation. MountPoint stays in the
// client's native form; only surrounding whitespace is trimmed.
type RecordCommand struct {
	DriveIdentity string
	ClientID      uuid.UUID
	MountPoint    string
}

func (c RecordCommand) normalize() (RecordCommand, error) {
	identity, err := validateKey(c.DriveIdentity, c.ClientID)
	if err != nil {
		return c, err
	}

	c.DriveIdentity = identity
	c.MountPoint = strings.TrimSpace(c.MountPoint)
	if c.MountPoint == "" {
		return c, fmt.Errorf("%w: mount point is empty", ErrValidation)
	}

	return c, nil
}

func validateIdentity(identity string) (string, error) {
	identity = strings.TrimSpace(identity)
	if identity == "" {
		return "", fmt.Errorf("%w: drive identity is empty", ErrValidation)
	}
	return identity, nil
}

func validateKey(identity string, clientID uuid.UUID) (string, error) {
	identity, err := validateIdentity(identity)
	if err != nil {
		return "", err
	}
	if clientID == uuid.Nil {
		return "", fmt.Errorf("%w: client id is empty", ErrValidation)
	}
	return identity, nil
}
