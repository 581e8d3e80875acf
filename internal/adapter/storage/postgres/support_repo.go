package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kontribo-backend/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const supportColumns = `id, contributor_id, context_id, amount_gross, currency, message, is_anonymous,
	supporter_name, supporter_email, status, external_invoice_id, external_payment_id,
	idempotency_key, paid_at, expired_at, created_at, updated_at`

// SupportRepo implements ports.SupportRepository.
type SupportRepo struct {
	pool Pool
}

// NewSupportRepo creates a new SupportRepo.
func NewSupportRepo(pool Pool) *SupportRepo {
	return &SupportRepo{pool: pool}
}

// Create inserts a PENDING support row. A collision on the idempotency key
// returns the existing row instead of an error, so retried requests never
// accumulate duplicate rows.
func (r *SupportRepo) Create(ctx context.Context, s *domain.SupportTransaction) (*domain.SupportTransaction, bool, error) {
	query := `INSERT INTO support_transactions (` + supportColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		ON CONFLICT (idempotency_key) DO NOTHING`

	tag, err := r.pool.Exec(ctx, query,
		s.ID, s.ContributorID, s.ContextID, s.AmountGross, s.Currency,
		s.Message, s.IsAnonymous, s.SupporterName, s.SupporterEmail, s.Status,
		s.ExternalInvoiceID, s.ExternalPaymentID, s.IdempotencyKey,
		s.PaidAt, s.ExpiredAt, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return nil, false, fmt.Errorf("insert support: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return s, false, nil
	}

	existing, err := r.GetByIdempotencyKey(ctx, s.IdempotencyKey)
	if err != nil {
		return nil, false, err
	}
	if existing == nil {
		return nil, false, fmt.Errorf("insert support: duplicate not found for key %q", s.IdempotencyKey)
	}
	return existing, true, nil
}

// GetByID fetches a support transaction by UUID.
func (r *SupportRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.SupportTransaction, error) {
	query := `SELECT ` + supportColumns + ` FROM support_transactions WHERE id = $1`
	return r.scanSupport(r.pool.QueryRow(ctx, query, id))
}

// GetByIdempotencyKey fetches a support transaction by its client-supplied key.
func (r *SupportRepo) GetByIdempotencyKey(ctx context.Context, key string) (*domain.SupportTransaction, error) {
	query := `SELECT ` + supportColumns + ` FROM support_transactions WHERE idempotency_key = $1`
	return r.scanSupport(r.pool.QueryRow(ctx, query, key))
}

// LinkInvoice updates the existing row in place with the external invoice id
// and expiry returned by the gateway.
func (r *SupportRepo) LinkInvoice(ctx context.Context, id uuid.UUID, invoiceID string, expiredAt *time.Time) error {
	query := `UPDATE support_transactions
		SET external_invoice_id = $1, expired_at = $2, updated_at = NOW()
		WHERE id = $3`

	tag, err := r.pool.Exec(ctx, query, invoiceID, expiredAt, id)
	if err != nil {
		return fmt.Errorf("link invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("support not found: %s", id)
	}
	return nil
}

// MarkPaid transitions the row to PAID within a database transaction. The
// status guard keeps the transition one-way even under concurrent callbacks.
func (r *SupportRepo) MarkPaid(ctx context.Context, tx pgx.Tx, id uuid.UUID, paymentID *string, paidAt time.Time) error {
	query := `UPDATE support_transactions
		SET status = 'PAID', external_payment_id = $1, paid_at = $2, updated_at = NOW()
		WHERE id = $3 AND status = 'PENDING'`

	tag, err := tx.Exec(ctx, query, paymentID, paidAt, id)
	if err != nil {
		return fmt.Errorf("mark support paid: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("support not pending: %s", id)
	}
	return nil
}

// MarkTerminated moves a PENDING row to a terminal failure state.
func (r *SupportRepo) MarkTerminated(ctx context.Context, id uuid.UUID, status domain.SupportStatus) error {
	query := `UPDATE support_transactions
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = 'PENDING'`

	tag, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("mark support terminated: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("support not pending: %s", id)
	}
	return nil
}

func (r *SupportRepo) scanSupport(row pgx.Row) (*domain.SupportTransaction, error) {
	s := &domain.SupportTransaction{}
	err := row.Scan(
		&s.ID, &s.ContributorID, &s.ContextID, &s.AmountGross, &s.Currency,
		&s.Message, &s.IsAnonymous, &s.SupporterName, &s.SupporterEmail, &s.Status,
		&s.ExternalInvoiceID, &s.ExternalPaymentID, &s.IdempotencyKey,
		&s.PaidAt, &s.ExpiredAt, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan support: %w", err)
	}
	return s, nil
}
