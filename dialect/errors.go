package dialect

import (
	"errors"
)

var (
	// ErrUnknownTemplate indicates a string that is not one of the six placeholder templates.
	ErrUnknownTemplate = errors.New("unknown placeholder template")

	// ErrUnknownDriver indicates a driver name with no registered dialect.
	ErrUnknownDriver = errors.New("unknown driver")
)
