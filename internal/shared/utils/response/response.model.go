package response

import "time"

// ErrorResponse is the body written for every failed request
type ErrorResponse struct {
	Code      string         `json:"code"`              // stable machine-readable code
	Message   string         `json:"message"`           // human-readable message
	Details   map[string]any `json:"details,omitempty"` // field errors or ids
	Timestamp time.Time      `json:"timestamp"`
	RequestID string         `json:"requestId"` // echoed X-Request-ID
}
