package adapters

import (
	"bytes"
	"encoding/json"
	"net/http"
)

// HTTPSinkAdapter forwards events to an HTTP collection endpoint using the
// net/http package. Each LogEvent results in one POST; delivery is
// fire-and-forget and transport errors are logged and dropped, never
// surfaced to the caller.
type HTTPSinkAdapter struct {
	endpoint string
	headers  map[string]string
	client   *http.Client
	logger   LoggerAdapter
}

// Ensure HTTPSinkAdapter implements SinkAdapter interface
var _ SinkAdapter = (*HTTPSinkAdapter)(nil)

// NewHTTPSinkAdapter creates a new HTTPSinkAdapter posting to the given
// endpoint with optional custom headers.
func NewHTTPSinkAdapter(endpoint string, headers map[string]string) *HTTPSinkAdapter {
	return &HTTPSinkAdapter{
		endpoint: endpoint,
		headers:  headers,
		client:   &http.Client{},
		logger:   NewNoOpLoggerAdapter(),
	}
}

// SetLoggerAdapter sets a custom logger for transport failures.
func (h *HTTPSinkAdapter) SetLoggerAdapter(logger LoggerAdapter) {
	h.logger = logger
}

// LogEvent posts one event as JSON.
func (h *HTTPSinkAdapter) LogEvent(name string, parameters map[string]any) {
	h.post(map[string]any{
		"name":       name,
		"parameters": parameters,
	})
}

// SetUserID posts a user-identity record.
func (h *HTTPSinkAdapter) SetUserID(id string) {
	h.post(map[string]any{
		"user_id": id,
	})
}

// SetUserProperty posts a user-property record.
func (h *HTTPSinkAdapter) SetUserProperty(name, value string) {
	h.post(map[string]any{
		"user_property": map[string]string{"name": name, "value": value},
	})
}

func (h *HTTPSinkAdapter) post(payload map[string]any) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("Failed to marshal payload: %v", err)
		return
	}

	req, err := http.NewRequest("POST", h.endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		h.logger.Error("Failed to create request: %v", err)
		return
	}

	req.Header.Set("Content-Type", "application/json")
	for key, value := range h.headers {
		req.Header.Set(key, value)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		h.logger.Error("Failed to send request: %v", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		h.logger.Warn("Collection endpoint returned status %d", resp.StatusCode)
	}
}
