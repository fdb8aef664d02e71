package contracts

import (
	"errors"
)

var (
	// ErrNilCallback is returned when a callback-carrying message is
	// constructed without a callback.
	ErrNilCallback = errors.New("callback cannot be nil")

	// ErrInvalidInvocation is returned when a message callback is executed
	// with an argument list incompatible with its signature.
	ErrInvalidInvocation = errors.New("invalid callback invocation")
)
