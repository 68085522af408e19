package sqlbind

import (
	"errors"
)

// ErrInvalidConfig indicates a Config that fails validation.
var ErrInvalidConfig = errors.New("invalid sqlbind config")
