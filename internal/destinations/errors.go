package destinations

import "errors"

// Domain errors for destination operations. Storage-level failures surface
// as repository.ErrUnavailable from pkg/repository.
var (
	ErrNotFound        = errors.New("destination not found")
	ErrDuplicateActive = errors.New("active destination already exists for path")
	ErrValidation      = errors.New("invalid destination")
)
