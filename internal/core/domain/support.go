package domain

import (
	"time"

	"github.com/google/uuid"
)

// SupportStatus represents the lifecycle state of a support transaction.
type SupportStatus string

const (
	SupportStatusPending    SupportStatus = "PENDING"
	SupportStatusPaid       SupportStatus = "PAID"
	SupportStatusFailed     SupportStatus = "FAILED"
	SupportStatusExpired    SupportStatus = "EXPIRED"
	SupportStatusRefunded   SupportStatus = "REFUNDED"
	SupportStatusChargeback SupportStatus = "CHARGEBACK"
)

// SupportTransaction is a donation from a supporter to a contributor.
// It is created PENDING when the invoice is requested and transitions to
// PAID exactly once.
type SupportTransaction struct {
	ID                uuid.UUID     `json:"id"`
	ContributorID     uuid.UUID     `json:"contributor_id"`
	ContextID         *uuid.UUID    `json:"context_id,omitempty"`
	AmountGross       int64         `json:"amount_gross"`
	Currency          string        `json:"currency"`
	Message           string        `json:"message"`
	IsAnonymous       bool          `json:"is_anonymous"`
	SupporterName     *string       `json:"supporter_name,omitempty"`
	SupporterEmail    *string       `json:"supporter_email,omitempty"`
	Status            SupportStatus `json:"status"`
	ExternalInvoiceID *string       `json:"external_invoice_id,omitempty"`
	ExternalPaymentID *string       `json:"external_payment_id,omitempty"`
	IdempotencyKey    string        `json:"idempotency_key"`
	PaidAt            *time.Time    `json:"paid_at,omitempty"`
	ExpiredAt         *time.Time    `json:"expired_at,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

// IsTerminal returns true once the support can no longer transition out of
// its failure states. PAID is a terminal success but may still move to
// REFUNDED or CHARGEBACK.
func (s *SupportTransaction) IsTerminal() bool {
	return s.Status == SupportStatusFailed ||
		s.Status == SupportStatusExpired ||
		s.Status == SupportStatusRefunded ||
		s.Status == SupportStatusChargeback
}
