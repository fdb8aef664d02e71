package messaging

import (
	"reflect"
	"sync/atomic"
	"weak"
)

// weakRef is a non-owning handle to a subscriber object. The messenger never
// keeps a subscriber reachable; once the rest of the program drops its last
// strong reference the handle resolves to nil.
type weakRef interface {
	// Target returns a strong reference to the subscriber, or nil if it has
	// been collected.
	Target() any
}

type weakTarget[S any] struct {
	ptr weak.Pointer[S]
}

func makeWeakTarget[S any](subscriber *S) weakTarget[S] {
	return weakTarget[S]{ptr: weak.Make(subscriber)}
}

// Target returns the subscriber or nil. The typed nil check happens before
// boxing so a collected subscriber yields an untyped nil interface.
func (w weakTarget[S]) Target() any {
	if p := w.ptr.Value(); p != nil {
		return p
	}
	return nil
}

// subscription binds a weakly held subscriber to a handler for one
// registered message type. Entries are marked dead by invalidate or by
// subscriber collection and are physically removed only during a registry
// sweep, never mid-dispatch.
type subscription struct {
	ref            weakRef
	subscriberType reflect.Type // runtime type of the subscriber pointer
	token          any          // channel token, nil when unpartitioned
	handlerID      uintptr      // identity of the registered handler func
	alive          atomic.Bool

	// call delivers msg to the handler through the given strong subscriber
	// reference, restoring the types erased at registration. It must not
	// hold its own strong reference to the subscriber.
	call func(target, msg any)
}

// isAlive reports whether the entry may still receive messages: not
// explicitly invalidated and the subscriber not collected.
func (s *subscription) isAlive() bool {
	return s.alive.Load() && s.ref.Target() != nil
}

// invalidate marks the entry dead. Idempotent. Removal from the registry is
// the sweep's job.
func (s *subscription) invalidate() {
	s.alive.Store(false)
}

// boundTo reports whether the entry's subscriber is the given object.
// A collected subscriber is bound to nothing.
func (s *subscription) boundTo(subscriber any) bool {
	t := s.ref.Target()
	return t != nil && t == subscriber
}

// deliver invokes the handler with msg if the entry is alive, and reports
// whether delivery happened. The target is resolved once per call: an
// invalidate racing with an in-flight deliver may let that delivery
// complete, but every deliver started after invalidation is a no-op.
func (s *subscription) deliver(msg any) bool {
	if !s.alive.Load() {
		return false
	}
	target := s.ref.Target()
	if target == nil {
		s.alive.Store(false)
		return false
	}
	s.call(target, msg)
	return true
}
