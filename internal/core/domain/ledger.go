package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// OwnerType identifies whose ledger an entry belongs to.
type OwnerType string

const (
	OwnerTypeContributor OwnerType = "CONTRIBUTOR"
	OwnerTypeFounder     OwnerType = "FOUNDER"
)

// Bucket is a named sub-balance within an owner's ledger.
type Bucket string

const (
	BucketAvailable Bucket = "AVAILABLE"
	BucketPending   Bucket = "PENDING"
	BucketReserved  Bucket = "RESERVED"
	BucketRevenue   Bucket = "REVENUE"
)

// Direction marks an entry as a credit or a debit.
type Direction string

const (
	DirectionCredit Direction = "CREDIT"
	DirectionDebit  Direction = "DEBIT"
)

// ReferenceType links an entry back to the aggregate that caused it.
type ReferenceType string

const (
	ReferenceTypeSupport       ReferenceType = "SUPPORT"
	ReferenceTypeWithdrawal    ReferenceType = "WITHDRAWAL"
	ReferenceTypeFounderPayout ReferenceType = "FOUNDER_PAYOUT"
	ReferenceTypeAdjustment    ReferenceType = "ADJUSTMENT"
	ReferenceTypeRefund        ReferenceType = "REFUND"
	ReferenceTypeChargeback    ReferenceType = "CHARGEBACK"
	ReferenceTypeFee           ReferenceType = "FEE"
)

// LedgerEntry is an immutable, append-only money-movement record.
// Entries are never updated or deleted; every balance is the sum of
// credits minus debits over matching entries.
type LedgerEntry struct {
	ID             uuid.UUID     `json:"id"`
	OwnerType      OwnerType     `json:"owner_type"`
	ContributorID  *uuid.UUID    `json:"contributor_id,omitempty"` // required iff OwnerType is CONTRIBUTOR
	Bucket         Bucket        `json:"bucket"`
	Direction      Direction     `json:"direction"`
	Amount         int64         `json:"amount"` // In smallest unit (e.g. IDR)
	Currency       string        `json:"currency"`
	ReferenceType  ReferenceType `json:"reference_type"`
	ReferenceID    uuid.UUID     `json:"reference_id"`
	IdempotencyKey *string       `json:"idempotency_key,omitempty"` // unique per OwnerType when present
	OccurredAt     time.Time     `json:"occurred_at"`
	CreatedAt      time.Time     `json:"created_at"`
}

// Balances holds a contributor's per-bucket balances.
type Balances struct {
	Available int64 `json:"available"`
	Pending   int64 `json:"pending"`
	Reserved  int64 `json:"reserved"`
}

func contributorEntry(contributorID uuid.UUID, bucket Bucket, dir Direction, amount int64, currency string, refType ReferenceType, refID uuid.UUID, key string, at time.Time) LedgerEntry {
	cid := contributorID
	return LedgerEntry{
		ID:             uuid.New(),
		OwnerType:      OwnerTypeContributor,
		ContributorID:  &cid,
		Bucket:         bucket,
		Direction:      dir,
		Amount:         amount,
		Currency:       currency,
		ReferenceType:  refType,
		ReferenceID:    refID,
		IdempotencyKey: &key,
		OccurredAt:     at,
		CreatedAt:      at,
	}
}

func founderEntry(bucket Bucket, dir Direction, amount int64, currency string, refType ReferenceType, refID uuid.UUID, key string, at time.Time) LedgerEntry {
	return LedgerEntry{
		ID:             uuid.New(),
		OwnerType:      OwnerTypeFounder,
		Bucket:         bucket,
		Direction:      dir,
		Amount:         amount,
		Currency:       currency,
		ReferenceType:  refType,
		ReferenceID:    refID,
		IdempotencyKey: &key,
		OccurredAt:     at,
		CreatedAt:      at,
	}
}

// SupportPaidEntries builds the bare PENDING credit applied when a support's
// invoice is confirmed paid. This is one of the two documented unpaired entry
// points: the money is sourced externally.
func SupportPaidEntries(contributorID, supportID uuid.UUID, amountGross int64, currency string, at time.Time) []LedgerEntry {
	key := fmt.Sprintf("support_paid:%s", supportID)
	return []LedgerEntry{
		contributorEntry(contributorID, BucketPending, DirectionCredit, amountGross, currency, ReferenceTypeSupport, supportID, key, at),
	}
}

// SupportReleaseEntries builds the matched pair that moves a paid support's
// funds from PENDING to AVAILABLE.
func SupportReleaseEntries(contributorID, supportID uuid.UUID, amountGross int64, currency string, at time.Time) []LedgerEntry {
	base := fmt.Sprintf("support_release:%s", supportID)
	return []LedgerEntry{
		contributorEntry(contributorID, BucketPending, DirectionDebit, amountGross, currency, ReferenceTypeSupport, supportID, base+":DEBIT_PENDING", at),
		contributorEntry(contributorID, BucketAvailable, DirectionCredit, amountGross, currency, ReferenceTypeSupport, supportID, base+":CREDIT_AVAILABLE", at),
	}
}

// ReservationEntries builds the matched pair that locks a withdrawal's total
// debit: AVAILABLE is debited and RESERVED credited by the same amount.
func ReservationEntries(contributorID, withdrawalID uuid.UUID, totalDebit int64, currency string, at time.Time) []LedgerEntry {
	base := fmt.Sprintf("reserve:%s", withdrawalID)
	return []LedgerEntry{
		contributorEntry(contributorID, BucketAvailable, DirectionDebit, totalDebit, currency, ReferenceTypeWithdrawal, withdrawalID, base+":DEBIT_AVAILABLE", at),
		contributorEntry(contributorID, BucketReserved, DirectionCredit, totalDebit, currency, ReferenceTypeWithdrawal, withdrawalID, base+":CREDIT_RESERVED", at),
	}
}

// FinalizeWithdrawalEntries builds the lone RESERVED debit that closes a
// completed withdrawal's reservation. There is no local counterpart: the funds
// left the system through the external payout.
func FinalizeWithdrawalEntries(contributorID, withdrawalID uuid.UUID, totalDebit int64, currency string, at time.Time) []LedgerEntry {
	key := fmt.Sprintf("withdraw_finalize:%s:DEBIT_RESERVED", withdrawalID)
	return []LedgerEntry{
		contributorEntry(contributorID, BucketReserved, DirectionDebit, totalDebit, currency, ReferenceTypeWithdrawal, withdrawalID, key, at),
	}
}

// ReverseReservationEntries builds the matched pair that returns a failed
// withdrawal's reservation to AVAILABLE so funds are never permanently locked.
func ReverseReservationEntries(contributorID, withdrawalID uuid.UUID, totalDebit int64, currency string, at time.Time) []LedgerEntry {
	base := fmt.Sprintf("withdraw_reverse:%s", withdrawalID)
	return []LedgerEntry{
		contributorEntry(contributorID, BucketReserved, DirectionDebit, totalDebit, currency, ReferenceTypeWithdrawal, withdrawalID, base+":DEBIT_RESERVED", at),
		contributorEntry(contributorID, BucketAvailable, DirectionCredit, totalDebit, currency, ReferenceTypeWithdrawal, withdrawalID, base+":CREDIT_AVAILABLE", at),
	}
}

// FounderRevenueEntries builds the FOUNDER/REVENUE entries for a completed
// withdrawal: the flat fee is credited and, when the gateway charged an actual
// fee, that cost is debited against it. These are the second documented
// unpaired entry point.
func FounderRevenueEntries(withdrawalID uuid.UUID, feeFlat, gatewayFeeActual int64, currency string, at time.Time) []LedgerEntry {
	var entries []LedgerEntry
	if feeFlat > 0 {
		key := fmt.Sprintf("withdraw_revenue:%s:FOUNDER_FEE_CREDIT", withdrawalID)
		entries = append(entries, founderEntry(BucketRevenue, DirectionCredit, feeFlat, currency, ReferenceTypeFee, withdrawalID, key, at))
	}
	if gatewayFeeActual > 0 {
		key := fmt.Sprintf("withdraw_revenue:%s:FOUNDER_GATEWAY_DEBIT", withdrawalID)
		entries = append(entries, founderEntry(BucketRevenue, DirectionDebit, gatewayFeeActual, currency, ReferenceTypeFee, withdrawalID, key, at))
	}
	return entries
}

// Signed returns the entry's contribution to its bucket balance.
func (e LedgerEntry) Signed() int64 {
	if e.Direction == DirectionDebit {
		return -e.Amount
	}
	return e.Amount
}
