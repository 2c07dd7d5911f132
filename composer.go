package screentrack

// EventComposer merges explicit and default parameters into one outgoing
// EventRecord.
type EventComposer struct{}

// NewEventComposer creates a new EventComposer.
func NewEventComposer() *EventComposer {
	return &EventComposer{}
}

// Compose builds the EventRecord for eventName. Explicit parameters are
// copied in first, then default parameters on top: on a key collision the
// default value wins. Default context is authoritative for analytics
// dimensions, so a caller-supplied parameter named e.g. "tag" is silently
// overwritten by the default one. Parameter values are not validated
// beyond being scalar; unknown keys pass through untouched.
func (c *EventComposer) Compose(eventName string, explicit, defaults ParameterMap) EventRecord {
	merged := make(ParameterMap, len(explicit)+len(defaults))
	for k, v := range explicit {
		merged[k] = v
	}
	for k, v := range defaults {
		merged[k] = v
	}
	return EventRecord{Name: eventName, Parameters: merged}
}
