package messaging

// Stats is a point-in-time snapshot of messenger activity.
type Stats struct {
	Published     int64 // publish calls
	Delivered     int64 // handler invocations across all publishes
	Swept         int64 // dead entries removed by cleanup sweeps
	Subscriptions int   // live entries currently registered
}

// Stats returns a snapshot of the messenger's counters and registry size.
func (m *Messenger) Stats() Stats {
	m.mu.Lock()
	live := m.exact.size() + m.derived.size()
	m.mu.Unlock()

	return Stats{
		Published:     m.published.Load(),
		Delivered:     m.delivered.Load(),
		Swept:         m.swept.Load(),
		Subscriptions: live,
	}
}
