package model

import (
	"encoding/json"
	"time"
)

type IdempotencyStatus string

const (
	IdempotencyProcessing IdempotencyStatus = "processing"
	IdempotencyCompleted  IdempotencyStatus = "completed"
)

// IdempotencyKey scopes a client supplied key to the endpoint path it was sent to,
// so the same key may be reused for an order and for the bill that follows it.
type IdempotencyKey struct {
	Resource string
	Key      string
}

type IdempotencyCacheEntry struct {
	Status          IdempotencyStatus `json:"status"`
	RequestBodyHash string            `json:"request_body_hash"`
	Response        json.RawMessage   `json:"response,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}
