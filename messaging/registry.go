package messaging

import (
	"reflect"
)

// channelTable maps a registered message type to its subscriptions. Entries
// within a bucket keep insertion order, which is the delivery order for that
// bucket. A separate key slice keeps bucket iteration order stable across
// publishes. All methods require the owning messenger's lock.
type channelTable struct {
	buckets map[reflect.Type][]*subscription
	order   []reflect.Type
}

func newChannelTable() *channelTable {
	return &channelTable{
		buckets: make(map[reflect.Type][]*subscription),
	}
}

// add appends sub to the bucket for key, creating the bucket if needed.
func (t *channelTable) add(key reflect.Type, sub *subscription) {
	if _, ok := t.buckets[key]; !ok {
		t.order = append(t.order, key)
	}
	t.buckets[key] = append(t.buckets[key], sub)
}

// invalidate marks every entry accepted by match as dead and returns how
// many entries changed state.
func (t *channelTable) invalidate(match func(*subscription) bool) int {
	n := 0
	for _, bucket := range t.buckets {
		for _, sub := range bucket {
			if sub.alive.Load() && match(sub) {
				sub.invalidate()
				n++
			}
		}
	}
	return n
}

// invalidateKey is invalidate restricted to the bucket registered for key.
func (t *channelTable) invalidateKey(key reflect.Type, match func(*subscription) bool) int {
	n := 0
	for _, sub := range t.buckets[key] {
		if sub.alive.Load() && match(sub) {
			sub.invalidate()
			n++
		}
	}
	return n
}

// sweep removes dead entries in place and drops message types whose bucket
// drained. Returns the number of entries removed. Dispatch snapshots copy
// bucket contents before any callback runs, so compacting the backing
// arrays here cannot disturb an in-flight pass.
func (t *channelTable) sweep() int {
	removed := 0
	keys := t.order[:0]
	for _, key := range t.order {
		bucket := t.buckets[key]
		live := bucket[:0]
		for _, sub := range bucket {
			if sub.isAlive() {
				live = append(live, sub)
			} else {
				removed++
			}
		}
		if len(live) == 0 {
			delete(t.buckets, key)
			continue
		}
		t.buckets[key] = live
		keys = append(keys, key)
	}
	t.order = keys
	return removed
}

// size counts live entries across all buckets.
func (t *channelTable) size() int {
	n := 0
	for _, bucket := range t.buckets {
		for _, sub := range bucket {
			if sub.isAlive() {
				n++
			}
		}
	}
	return n
}
