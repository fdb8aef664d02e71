// Package messaging implements the mbus in-process messenger: a typed
// publish/subscribe bus that lets independent components exchange messages
// without holding references to each other.
//
// Key properties:
//   - Weak subscriber tracking: the messenger never keeps a subscriber
//     alive. Entries whose subscriber has been collected stop delivering
//     and are purged by lazy cleanup sweeps.
//   - Exact and polymorphic dispatch: a subscription matches its message
//     type's exact runtime type, or, registered with WithDerived on an
//     interface type, every message type implementing it.
//   - Channel tokens: WithToken partitions subscribers of the same message
//     type into independent delivery channels.
//   - Reentrancy-safe dispatch: matching buckets are snapshotted under the
//     registry lock and handlers run outside it, so handlers may subscribe,
//     publish, or unsubscribe on the same messenger.
//
// Example usage:
//
//	m := messaging.NewMessenger()
//
//	type orderView struct{ lastID int }
//	view := &orderView{}
//
//	err := messaging.Subscribe(m, view, func(v *orderView, msg OrderPlaced) {
//		v.lastID = msg.ID
//	})
//	if err != nil {
//		return err
//	}
//
//	messaging.Publish(m, OrderPlaced{ID: 7})
//
// Because subscribers are held weakly, handlers receive the subscriber as
// their first argument instead of capturing it: a handler closure that
// captures the subscriber keeps it reachable and defeats collection.
//
// Every operation is synchronous and safe for concurrent use. Handlers run
// on the publishing goroutine; the messenger imposes no deadline on them.
package messaging
