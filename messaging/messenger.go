package messaging

import (
	"log/slog"
	"reflect"
	"sync"
	"sync/atomic"
)

// Messenger is a typed in-process publish/subscribe bus. Components
// exchange messages through it without holding references to each other:
// the messenger itself holds subscribers weakly, so registration never
// extends a subscriber's lifetime. Dead entries are purged lazily by
// opportunistic sweeps after subscribe, publish, and unsubscribe.
//
// All operations are synchronous and safe for concurrent use. Handlers run
// on the publishing goroutine, outside the registry lock, so a handler may
// re-enter the same messenger freely.
type Messenger struct {
	mu      sync.Mutex
	exact   *channelTable // delivered on exact runtime type match only
	derived *channelTable // delivered on exact or implemented-interface match

	logger *slog.Logger

	published atomic.Int64
	delivered atomic.Int64
	swept     atomic.Int64
}

// NewMessenger creates an empty messenger.
func NewMessenger(options ...MessengerOption) *Messenger {
	m := &Messenger{
		exact:   newChannelTable(),
		derived: newChannelTable(),
		logger:  slog.Default(),
	}

	for _, opt := range options {
		opt(m)
	}

	return m
}

// Subscribe registers handler to run whenever a message of type M is
// published on m. The handler receives the subscriber explicitly so that
// the stored registration does not keep the subscriber reachable; a handler
// whose closure captures the subscriber defeats collection.
//
// By default the entry matches messages whose runtime type is exactly M.
// With WithDerived and an interface M, it also matches any message type
// implementing M. WithToken confines the entry to one delivery channel.
//
// Registering the same (subscriber, M, token, handler) combination twice
// produces two independent entries; deliveries are additive.
func Subscribe[M any, S any](m *Messenger, subscriber *S, handler func(*S, M), opts ...Option) error {
	if subscriber == nil {
		return ErrNilSubscriber
	}
	if handler == nil {
		return ErrNilHandler
	}

	var cfg callConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	key := reflect.TypeFor[M]()
	sub := &subscription{
		ref:            makeWeakTarget(subscriber),
		subscriberType: reflect.TypeOf(subscriber),
		token:          cfg.token,
		handlerID:      reflect.ValueOf(handler).Pointer(),
		call: func(target, msg any) {
			handler(target.(*S), msg.(M))
		},
	}
	sub.alive.Store(true)

	m.mu.Lock()
	table := m.exact
	if cfg.derived {
		table = m.derived
	}
	table.add(key, sub)
	m.sweepLocked()
	m.mu.Unlock()

	m.logger.Debug("subscribed",
		"messageType", key.String(),
		"subscriberType", sub.subscriberType.String(),
		"derived", cfg.derived,
	)

	return nil
}

// Publish delivers msg to every live matching subscription and reports how
// many deliveries happened. Matching follows three filters: message type
// (derived-table keys the runtime type implements, plus the exact-table
// bucket for the runtime type itself), channel token (equal value, or both
// absent), and, when WithTarget is given, the subscriber's runtime type.
//
// Matching buckets are snapshotted under the lock before any handler runs:
// derived-table buckets in table order followed by the exact bucket, each
// in insertion order. Handlers run outside the lock, so subscriptions added
// or invalidated by a handler take effect on subsequent publishes, never on
// the in-flight pass. Publishing with no matching subscribers is a silent
// no-op. A panic in a handler propagates to the caller and leaves the
// registry intact.
func Publish[M any](m *Messenger, msg M, opts ...Option) int {
	var cfg callConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	// Dynamic type when M is an interface. A nil interface message has no
	// runtime type and can match nothing.
	runtimeType := reflect.TypeOf(msg)
	if runtimeType == nil {
		return 0
	}

	m.mu.Lock()
	var snapshot []*subscription
	for _, key := range m.derived.order {
		if satisfies(runtimeType, key) {
			snapshot = append(snapshot, m.derived.buckets[key]...)
		}
	}
	snapshot = append(snapshot, m.exact.buckets[runtimeType]...)
	m.mu.Unlock()

	delivered := 0
	for _, sub := range snapshot {
		if !tokensMatch(sub.token, cfg.token) {
			continue
		}
		if cfg.target != nil && !satisfies(sub.subscriberType, cfg.target) {
			continue
		}
		if sub.deliver(msg) {
			delivered++
		}
	}

	m.published.Add(1)
	m.delivered.Add(int64(delivered))

	m.mu.Lock()
	m.sweepLocked()
	m.mu.Unlock()

	m.logger.Debug("published",
		"messageType", runtimeType.String(),
		"delivered", delivered,
	)

	return delivered
}

// Unsubscribe invalidates entries bound to subscriber for message type M in
// both tables. Without options it targets entries registered with no token;
// WithToken narrows to the exact token value instead (never "any token"),
// and WithHandler narrows to entries bound to that handler func. Entries
// stop receiving immediately and are removed on the next sweep. Unknown
// subscribers are a no-op.
func Unsubscribe[M any, S any](m *Messenger, subscriber *S, opts ...Option) error {
	if subscriber == nil {
		return ErrNilSubscriber
	}

	var cfg callConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	key := reflect.TypeFor[M]()
	match := func(s *subscription) bool {
		if !s.boundTo(subscriber) {
			return false
		}
		if !tokensMatch(s.token, cfg.token) {
			return false
		}
		if cfg.hasHandler && s.handlerID != cfg.handlerID {
			return false
		}
		return true
	}

	m.mu.Lock()
	n := m.exact.invalidateKey(key, match)
	n += m.derived.invalidateKey(key, match)
	m.sweepLocked()
	m.mu.Unlock()

	if n > 0 {
		m.logger.Debug("unsubscribed",
			"messageType", key.String(),
			"entries", n,
		)
	}

	return nil
}

// UnsubscribeAll invalidates every entry bound to subscriber across both
// tables, all message types and all tokens. Unknown subscribers are a
// no-op.
func UnsubscribeAll[S any](m *Messenger, subscriber *S) error {
	if subscriber == nil {
		return ErrNilSubscriber
	}

	match := func(s *subscription) bool {
		return s.boundTo(subscriber)
	}

	m.mu.Lock()
	n := m.exact.invalidate(match)
	n += m.derived.invalidate(match)
	m.sweepLocked()
	m.mu.Unlock()

	if n > 0 {
		m.logger.Debug("unsubscribed all",
			"subscriberType", reflect.TypeOf(subscriber).String(),
			"entries", n,
		)
	}

	return nil
}

// Sweep forces a cleanup pass, removing invalidated entries and entries
// whose subscriber has been collected. Sweeps also run opportunistically
// after every subscribe, publish, and unsubscribe, so calling this is
// rarely necessary.
func (m *Messenger) Sweep() {
	m.mu.Lock()
	m.sweepLocked()
	m.mu.Unlock()
}

func (m *Messenger) sweepLocked() {
	if removed := m.exact.sweep() + m.derived.sweep(); removed > 0 {
		m.swept.Add(int64(removed))
	}
}
