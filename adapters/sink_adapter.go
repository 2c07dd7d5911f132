package adapters

// SinkAdapter is an interface for the analytics ingestion endpoint.
// Implement this interface to forward events to a concrete analytics
// backend. All calls are fire-and-forget: the tracker never consumes a
// return value and never retries on the sink's behalf.
type SinkAdapter interface {
	// LogEvent dispatches one event under the given name.
	//
	// Parameters:
	//   - name: The event name
	//   - parameters: Flat key/value map of scalar parameter values
	LogEvent(name string, parameters map[string]any)

	// SetUserID associates subsequent events with a user identity.
	SetUserID(id string)

	// SetUserProperty sets a persistent user-level property on the backend.
	SetUserProperty(name, value string)
}
