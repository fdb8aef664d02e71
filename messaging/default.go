package messaging

import (
	"sync"
)

// Process-wide default messenger. Production code should prefer passing a
// Messenger explicitly; the default instance exists for compatibility and
// test convenience.
var (
	defaultMu        sync.Mutex
	defaultMessenger *Messenger
)

// Default returns the process-wide messenger, creating it on first use.
func Default() *Messenger {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultMessenger == nil {
		defaultMessenger = NewMessenger()
	}
	return defaultMessenger
}

// OverrideDefault replaces the process-wide messenger, typically with a
// fresh instance during test setup. Passing nil behaves like ResetDefault.
// Safe to call from a single coordinating goroutine; not intended to run
// concurrently with active traffic on the previous instance.
func OverrideDefault(m *Messenger) {
	defaultMu.Lock()
	defaultMessenger = m
	defaultMu.Unlock()
}

// ResetDefault clears the process-wide messenger. The next Default call
// creates a new empty instance.
func ResetDefault() {
	OverrideDefault(nil)
}
