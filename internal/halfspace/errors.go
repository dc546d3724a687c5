package halfspace

import "errors"

var (
	ErrInvalidParams   = errors.New("halfspace: invalid parameters")
	ErrUnknownMethod   = errors.New("halfspace: excitation method not recognized")
	ErrUnknownStrategy = errors.New("halfspace: matrix strategy not recognized")
	ErrBadGeometry     = errors.New("halfspace: degenerate source or receiver geometry")
)
