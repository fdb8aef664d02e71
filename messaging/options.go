package messaging

import (
	"log/slog"
	"reflect"
)

// callConfig collects per-call settings; each entry point reads the fields
// relevant to it.
type callConfig struct {
	token      any
	derived    bool
	target     reflect.Type
	handlerID  uintptr
	hasHandler bool
}

// Option configures a Subscribe, Publish, or Unsubscribe call. Options that
// do not apply to an operation are ignored by it.
type Option func(*callConfig)

// WithToken partitions delivery into the channel identified by token.
// On Subscribe, the entry only receives publishes carrying an equal token.
// On Publish, only entries registered with an equal token receive the
// message; entries and publishes without a token match each other. On
// Unsubscribe, narrows invalidation to entries with an equal token.
// Tokens are compared by value and must be of a comparable type.
func WithToken(token any) Option {
	return func(c *callConfig) {
		c.token = token
	}
}

// WithDerived places a subscription in the polymorphic table: the entry also
// receives any published message whose runtime type implements the
// registered interface type, instead of exact runtime type matches only.
// Subscribe only.
func WithDerived() Option {
	return func(c *callConfig) {
		c.derived = true
	}
}

// WithTarget restricts a Publish to subscribers whose runtime type is T or
// implements the interface T. T is the subscriber's pointer type (for
// example WithTarget[*PlayerState]()) or an interface it satisfies.
// Publish only.
func WithTarget[T any]() Option {
	return func(c *callConfig) {
		c.target = reflect.TypeFor[T]()
	}
}

// WithHandler narrows an Unsubscribe to entries registered with the given
// handler func. Unsubscribe only.
func WithHandler(handler any) Option {
	return func(c *callConfig) {
		if handler == nil {
			return
		}
		c.hasHandler = true
		c.handlerID = reflect.ValueOf(handler).Pointer()
	}
}

// MessengerOption configures a Messenger at construction.
type MessengerOption func(*Messenger)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) MessengerOption {
	return func(m *Messenger) {
		m.logger = logger
	}
}
