package domain

import (
	"time"

	"github.com/google/uuid"
)

// WithdrawalStatus represents the lifecycle state of a withdrawal.
type WithdrawalStatus string

const (
	WithdrawalStatusRequested  WithdrawalStatus = "REQUESTED"
	WithdrawalStatusProcessing WithdrawalStatus = "PROCESSING"
	WithdrawalStatusCompleted  WithdrawalStatus = "COMPLETED"
	WithdrawalStatusFailed     WithdrawalStatus = "FAILED"
	WithdrawalStatusReversed   WithdrawalStatus = "REVERSED"
	WithdrawalStatusCanceled   WithdrawalStatus = "CANCELED"
)

// WithdrawalRequest is a contributor's request to pay out available funds.
// TotalDebit = AmountToUser + FeeFlat and is what the reservation locks.
type WithdrawalRequest struct {
	ID                      uuid.UUID        `json:"id"`
	ContributorID           uuid.UUID        `json:"contributor_id"`
	DestinationID           uuid.UUID        `json:"destination_id"`
	AmountToUser            int64            `json:"amount_to_user"`
	FeeFlat                 int64            `json:"fee_flat"`
	TotalDebit              int64            `json:"total_debit"`
	Currency                string           `json:"currency"`
	Status                  WithdrawalStatus `json:"status"`
	ExternalDisbursementID  *string          `json:"external_disbursement_id,omitempty"`
	GatewayIdempotencyKey   string           `json:"-"` // carried on the external disbursement call
	GatewayFeeActual        int64            `json:"gateway_fee_actual"`
	RequestedAt             time.Time        `json:"requested_at"`
	ProcessedAt             *time.Time       `json:"processed_at,omitempty"`
	CompletedAt             *time.Time       `json:"completed_at,omitempty"`
}

// IsTerminal returns true if the withdrawal reached a final state.
func (w *WithdrawalRequest) IsTerminal() bool {
	return w.Status == WithdrawalStatusCompleted ||
		w.Status == WithdrawalStatusFailed ||
		w.Status == WithdrawalStatusReversed ||
		w.Status == WithdrawalStatusCanceled
}

// PayoutChannel identifies where a disbursement is sent.
type PayoutChannel string

const (
	PayoutChannelBank    PayoutChannel = "BANK"
	PayoutChannelEwallet PayoutChannel = "EWALLET"
)

// PayoutDestination is a contributor's registered payout target.
type PayoutDestination struct {
	ID            uuid.UUID     `json:"id"`
	ContributorID uuid.UUID     `json:"contributor_id"`
	Channel       PayoutChannel `json:"channel"`
	Label         string        `json:"label"`
	IsDefault     bool          `json:"is_default"`

	BankCode          *string `json:"bank_code,omitempty"`
	BankAccountName   *string `json:"bank_account_name,omitempty"`
	BankAccountNumber *string `json:"bank_account_number,omitempty"`

	EwalletType   *string `json:"ewallet_type,omitempty"`
	EwalletNumber *string `json:"ewallet_number,omitempty"`

	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
