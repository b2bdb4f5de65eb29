package ws

import "encoding/json"

// MessageType constants for the results feed protocol.
const (
	// Client -> Server
	TypePing = "ping"

	// Server -> Client
	TypePong            = "pong"
	TypeAttemptComplete = "attempt_complete"
	TypeError           = "error"
)

// Message wraps all WebSocket payloads with type and optional request ID.
type Message struct {
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	RequestID string          `json:"request_id,omitempty"`
}

// ErrorPayload reports a protocol-level failure to the subscriber.
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
