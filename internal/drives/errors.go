package drives

import "errors"

// Domain errors for drive mount operations. Storage failures surface as
// repository.ErrUnavailable from the Postgres implementation.
var (
	ErrNotFound   = errors.New("drive mount not found")
	ErrDuplicate  = errors.New("drive mount already recorded")
	ErrValidation = errors.New("invalid drive mount")
)
