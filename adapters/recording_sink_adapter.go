package adapters

import "sync"

// RecordedEvent is one dispatch captured by RecordingSinkAdapter.
type RecordedEvent struct {
	Name       string
	Parameters map[string]any
}

// RecordingSinkAdapter is a thread-safe in-memory sink that records every
// dispatch in order. Useful as a test double and for host-side debugging.
type RecordingSinkAdapter struct {
	mu         sync.RWMutex
	events     []RecordedEvent
	userID     string
	properties map[string]string
}

// NewRecordingSinkAdapter creates a new empty recording sink.
func NewRecordingSinkAdapter() *RecordingSinkAdapter {
	return &RecordingSinkAdapter{
		properties: make(map[string]string),
	}
}

// LogEvent records the event with a copy of its parameters.
func (r *RecordingSinkAdapter) LogEvent(name string, parameters map[string]any) {
	params := make(map[string]any, len(parameters))
	for k, v := range parameters {
		params[k] = v
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, RecordedEvent{Name: name, Parameters: params})
}

// SetUserID records the user identity.
func (r *RecordingSinkAdapter) SetUserID(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.userID = id
}

// SetUserProperty records a user property.
func (r *RecordingSinkAdapter) SetUserProperty(name, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.properties[name] = value
}

// Events returns all recorded events in dispatch order as a copy.
func (r *RecordingSinkAdapter) Events() []RecordedEvent {
	r.mu.RLock()
	defer r.mu.RUnlock()
	events := make([]RecordedEvent, len(r.events))
	copy(events, r.events)
	return events
}

// UserID returns the last recorded user identity.
func (r *RecordingSinkAdapter) UserID() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.userID
}

// UserProperties returns all recorded user properties as a copy.
func (r *RecordingSinkAdapter) UserProperties() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	props := make(map[string]string, len(r.properties))
	for k, v := range r.properties {
		props[k] = v
	}
	return props
}

// Len returns the number of recorded events.
func (r *RecordingSinkAdapter) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.events)
}

// Clear removes all recorded events and properties.
func (r *RecordingSinkAdapter) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
	r.userID = ""
	r.properties = make(map[string]string)
}
