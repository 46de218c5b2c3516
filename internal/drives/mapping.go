package drives

import (
	"github.com/JaimeStill/steward/pkg/query"
	"github.com/JaimeStill/steward/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "drive_mounts", "m").
	Project("drive_identity", "DriveIdentity").
	Project("client_id", "ClientID").
	Project("mount_point", "MountPoint").
	Project("available", "Available").
	Project("last_seen_at", "LastSeenAt")

var defaultSort = []query.SortField{
	{Field: "LastSeenAt", Descending: true},
}

func scanMount(s repository.Scanner) (Mount, error) {
	var m Mount

	err := s.Scan(
		&m.DriveIdentity,
		&m.ClientID,
		&m.MountPoint,
		&m.Available,
		&m.LastSeenAt,
	)

	return m, err
}
