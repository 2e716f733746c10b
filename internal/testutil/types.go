package testutil

import "sync"

// Journal is an append-only, thread-safe event log shared by test kinds.
type Journal struct {
	mu     sync.Mutex
	events []string
}

// Record appends one event.
func (j *Journal) Record(event string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.events = append(j.events, event)
}

// Events returns a copy of all recorded events.
func (j *Journal) Events() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]string, len(j.events))
	copy(out, j.events)
	return out
}
