package ports

import (
	"context"
	"time"

	"kontribo-backend/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// --- External collaborators ---

// GatewayInvoiceRequest holds the input for an external payment invoice.
type GatewayInvoiceRequest struct {
	ExternalID         string
	Amount             int64
	Description        string
	PayerEmail         *string
	SuccessRedirectURL *string
	FailureRedirectURL *string
	IdempotencyKey     string
}

// GatewayInvoice is the gateway's invoice result.
type GatewayInvoice struct {
	ID         string
	InvoiceURL string
	Status     string
	ExpiryDate *time.Time
}

// GatewayDisbursementRequest holds the input for an external payout.
type GatewayDisbursementRequest struct {
	ExternalID     string
	Amount         int64
	Description    string
	Destination    domain.PayoutDestination
	IdempotencyKey string
}

// GatewayDisbursement is the gateway's payout result.
type GatewayDisbursement struct {
	ID     string
	Status string
	Fee    int64
}

// GatewayClient talks to the external payment gateway. Both calls carry a
// caller-supplied idempotency key honored by the gateway.
type GatewayClient interface {
	CreateInvoice(ctx context.Context, req GatewayInvoiceRequest) (*GatewayInvoice, error)
	CreateDisbursement(ctx context.Context, req GatewayDisbursementRequest) (*GatewayDisbursement, error)
}

// WebhookDedupCache is the Redis-layer fast path in front of the durable
// webhook dedup log. Best effort: failures fall through to the DB check.
type WebhookDedupCache interface {
	IsProcessed(ctx context.Context, dedupKey string) (bool, error)
	MarkProcessed(ctx context.Context, dedupKey string, ttl time.Duration) error
}

// TokenService handles bearer tokens for contributor-facing endpoints.
type TokenService interface {
	Generate(userID uuid.UUID) (string, time.Time, error)
	Validate(tokenString string) (uuid.UUID, error)
}

// --- Service ports (business logic) ---

// LedgerService applies entry sets atomically and serves the ledger read API.
type LedgerService interface {
	// ApplyEntries appends the given entries within the caller's transaction.
	// Duplicate idempotency keys are skipped, not errors.
	ApplyEntries(ctx context.Context, tx pgx.Tx, entries []domain.LedgerEntry) error
	GetContributorBalances(ctx context.Context, contributorID uuid.UUID) (*domain.Balances, error)
	SumFounderRevenue(ctx context.Context) (int64, error)
}

// CreateSupportRequest holds validated input for donation initiation.
type CreateSupportRequest struct {
	ContributorUsername string
	Amount              int64
	Message             string
	IsAnonymous         bool
	SupporterName       *string
	SupporterEmail      *string
	IdempotencyKey      string
	SuccessRedirectURL  *string
	FailureRedirectURL  *string
}

// CreateSupportResult pairs the support row with the invoice URL to redirect
// the supporter to. InvoiceURL is empty when an existing support was returned.
type CreateSupportResult struct {
	Support    *domain.SupportTransaction
	InvoiceURL string
}

// SupportService drives the donation lifecycle.
type SupportService interface {
	CreateSupport(ctx context.Context, req CreateSupportRequest) (*CreateSupportResult, error)
	HandleInvoicePaid(ctx context.Context, supportID uuid.UUID, paymentID *string, paidAt time.Time) (*domain.SupportTransaction, error)
	HandleInvoiceExpired(ctx context.Context, supportID uuid.UUID) (*domain.SupportTransaction, error)
	HandleInvoiceFailed(ctx context.Context, supportID uuid.UUID) (*domain.SupportTransaction, error)
	ReleaseToAvailable(ctx context.Context, supportID uuid.UUID) error
}

// RequestWithdrawalInput holds validated input for a withdrawal request.
type RequestWithdrawalInput struct {
	UserID        uuid.UUID
	DestinationID uuid.UUID
	AmountToUser  int64
}

// WithdrawalService drives the withdrawal lifecycle.
type WithdrawalService interface {
	RequestWithdrawal(ctx context.Context, in RequestWithdrawalInput) (*domain.WithdrawalRequest, error)
	HandleDisbursementCompleted(ctx context.Context, withdrawalID uuid.UUID, disbursementID *string, gatewayFeeActual int64) (*domain.WithdrawalRequest, error)
	HandleDisbursementFailed(ctx context.Context, withdrawalID uuid.UUID, reason string) (*domain.WithdrawalRequest, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.WithdrawalRequest, error)
	GetBalancesForUser(ctx context.Context, userID uuid.UUID) (*domain.Balances, error)
}

// WebhookCallback is one inbound gateway delivery.
type WebhookCallback struct {
	Token   string // X-Callback-Token header value
	RawBody []byte
}

// WebhookResult reports how a delivery was handled.
type WebhookResult struct {
	Processed bool `json:"processed"`
	Deduped   bool `json:"deduped"`
}

// WebhookService ingests gateway callbacks: verify, dedup, persist, dispatch.
type WebhookService interface {
	HandleGatewayCallback(ctx context.Context, cb WebhookCallback) (*WebhookResult, error)
}
