package ports

import (
	"context"
	"time"

	"kontribo-backend/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// LedgerRepository defines persistence for the append-only ledger.
// Methods accepting pgx.Tx run inside the caller's transaction so a status
// update and its entries commit or roll back together.
type LedgerRepository interface {
	// Insert appends one entry. A collision on (owner_type, idempotency_key)
	// is a benign duplicate: the existing entry is returned with true and no
	// error.
	Insert(ctx context.Context, tx pgx.Tx, entry *domain.LedgerEntry) (*domain.LedgerEntry, bool, error)
	// LockContributor serializes ledger mutations for one contributor within
	// the given transaction. Must be taken before a balance-check-then-append
	// sequence.
	LockContributor(ctx context.Context, tx pgx.Tx, contributorID uuid.UUID) error
	GetContributorBalances(ctx context.Context, contributorID uuid.UUID) (*domain.Balances, error)
	// GetContributorBalancesTx reads balances inside a transaction, after
	// LockContributor, so the check cannot race a concurrent reservation.
	GetContributorBalancesTx(ctx context.Context, tx pgx.Tx, contributorID uuid.UUID) (*domain.Balances, error)
	SumFounderRevenue(ctx context.Context) (int64, error)
}

// SupportRepository defines persistence for support transactions.
type SupportRepository interface {
	// Create inserts a PENDING row. A collision on idempotency_key is a benign
	// race: the existing row is returned with true.
	Create(ctx context.Context, s *domain.SupportTransaction) (*domain.SupportTransaction, bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SupportTransaction, error)
	GetByIdempotencyKey(ctx context.Context, key string) (*domain.SupportTransaction, error)
	// LinkInvoice updates the existing row in place with the external invoice
	// id and expiry. It must never insert a second row.
	LinkInvoice(ctx context.Context, id uuid.UUID, invoiceID string, expiredAt *time.Time) error
	MarkPaid(ctx context.Context, tx pgx.Tx, id uuid.UUID, paymentID *string, paidAt time.Time) error
	MarkTerminated(ctx context.Context, id uuid.UUID, status domain.SupportStatus) error
}

// WithdrawalRepository defines persistence for withdrawal requests.
type WithdrawalRepository interface {
	Create(ctx context.Context, tx pgx.Tx, w *domain.WithdrawalRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WithdrawalRequest, error)
	SetProcessing(ctx context.Context, id uuid.UUID, disbursementID string, processedAt time.Time) error
	Complete(ctx context.Context, tx pgx.Tx, id uuid.UUID, disbursementID *string, gatewayFeeActual int64, completedAt time.Time) error
	Fail(ctx context.Context, tx pgx.Tx, id uuid.UUID, completedAt time.Time) error
	ListByContributor(ctx context.Context, contributorID uuid.UUID) ([]domain.WithdrawalRequest, error)
}

// ContributorRepository defines lookups for contributor profiles.
type ContributorRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Contributor, error)
	GetByUsername(ctx context.Context, username string) (*domain.Contributor, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Contributor, error)
}

// PayoutDestinationRepository defines lookups for payout destinations.
type PayoutDestinationRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PayoutDestination, error)
}

// WebhookEventRepository defines persistence for the webhook dedup log.
type WebhookEventRepository interface {
	GetByTypeAndKey(ctx context.Context, t domain.WebhookEventType, idempotencyKey string) (*domain.WebhookEvent, error)
	// Create persists the event before processing. A collision on
	// (type, idempotency_key) returns the existing row with true.
	Create(ctx context.Context, e *domain.WebhookEvent) (*domain.WebhookEvent, bool, error)
	MarkProcessed(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, processingError string) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
