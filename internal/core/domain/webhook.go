package domain

import (
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"
)

// WebhookEventType classifies an inbound gateway callback.
type WebhookEventType string

const (
	WebhookEventSupport    WebhookEventType = "XENDIT_SUPPORT"
	WebhookEventWithdrawal WebhookEventType = "XENDIT_WITHDRAWAL"
)

// WebhookEvent is the durable dedup/audit record for an inbound gateway
// callback. It is persisted before any processing so a crash mid-processing
// leaves a retryable row, and its (type, idempotency_key) uniqueness makes
// redelivery a no-op.
type WebhookEvent struct {
	ID              uuid.UUID        `json:"id"`
	Type            WebhookEventType `json:"type"`
	ExternalID      string           `json:"external_id"`
	IdempotencyKey  string           `json:"idempotency_key"` // unique per Type
	SignatureValid  bool             `json:"signature_valid"`
	Processed       bool             `json:"processed"`
	ProcessingError string           `json:"processing_error"`
	Payload         string           `json:"payload"`
	PayloadHash     string           `json:"payload_hash"` // BLAKE2b-256 of the raw payload
	ReceivedAt      time.Time        `json:"received_at"`
	ProcessedAt     *time.Time       `json:"processed_at,omitempty"`
}

// HashPayload fingerprints a raw webhook payload for the audit record.
func HashPayload(raw []byte) string {
	sum := blake2b.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

// BuildWebhookDedupKey constructs the standard dedup key format.
func BuildWebhookDedupKey(t WebhookEventType, externalID string) string {
	return string(t) + ":" + externalID
}
