package messaging

import (
	"errors"
)

var (
	// ErrNilSubscriber is returned when subscribing or unsubscribing with a
	// nil subscriber reference.
	ErrNilSubscriber = errors.New("subscriber cannot be nil")

	// ErrNilHandler is returned when subscribing without a handler.
	ErrNilHandler = errors.New("handler cannot be nil")
)
