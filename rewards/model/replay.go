package model

import (
	"encoding/json"
	"time"
)

// ReplayKey identifies a cached inbound request.
type ReplayKey struct {
	Resource string
	Key      string
}

// ReplayEntry is what the replay-protection middleware stores per request.
type ReplayEntry struct {
	Status          string          `json:"status"`
	RequestBodyHash string          `json:"request_body_hash"`
	Response        json.RawMessage `json:"response,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
