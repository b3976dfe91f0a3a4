// Package watch serves the live property view over WebSocket: each
// connection holds its own filter criteria and receives fresh results
// whenever the criteria change or a property is listed.
package watch

import (
	"encoding/json"

	"github.com/matthewbaird/showcase/internal/types"
)

// Message types.
const (
	TypeCriteria = "criteria"
	TypePing     = "ping"
	TypeResults  = "results"
	TypePong     = "pong"
	TypeError    = "error"
)

// ── Client → Server messages ────────────────────────────────────────────────

// ClientMessage is the envelope for all client-to-server WebSocket messages.
type ClientMessage struct {
	Type string          `json:"type"` // "criteria", "ping"
	ID   string          `json:"id"`   // Client-assigned request ID
	Data json.RawMessage `json:"data,omitempty"`
}

// ── Server → Client messages ────────────────────────────────────────────────

// ServerMessage is the envelope for all server-to-client WebSocket messages.
type ServerMessage struct {
	Type      string `json:"type"`                 // "results", "pong", "error"
	RequestID string `json:"request_id,omitempty"` // Echoes client ID; empty for pushes
	Data      any    `json:"data,omitempty"`
}

// ResultsData carries the filtered view.
type ResultsData struct {
	Total      int              `json:"total"`
	Properties []types.Property `json:"properties"`
}

// ErrorData carries an error message.
type ErrorData struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}
