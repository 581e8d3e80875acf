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

const withdrawalColumns = `id, contributor_id, destination_id, amount_to_user, fee_flat, total_debit,
	currency, status, external_disbursement_id, gateway_idempotency_key, gateway_fee_actual,
	requested_at, processed_at, completed_at`

// WithdrawalRepo implements ports.WithdrawalRepository.
type WithdrawalRepo struct {
	pool Pool
}

// NewWithdrawalRepo creates a new WithdrawalRepo.
func NewWithdrawalRepo(pool Pool) *WithdrawalRepo {
	return &WithdrawalRepo{pool: pool}
}

// Create inserts a REQUESTED withdrawal within the caller's transaction so
// the row commits atomically with the reservation ledger entries.
func (r *WithdrawalRepo) Create(ctx context.Context, tx pgx.Tx, w *domain.WithdrawalRequest) error {
	query := `INSERT INTO withdrawal_requests (` + withdrawalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := tx.Exec(ctx, query,
		w.ID, w.ContributorID, w.DestinationID, w.AmountToUser, w.FeeFlat, w.TotalDebit,
		w.Currency, w.Status, w.ExternalDisbursementID, w.GatewayIdempotencyKey, w.GatewayFeeActual,
		w.RequestedAt, w.ProcessedAt, w.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("insert withdrawal: %w", err)
	}
	return nil
}

// GetByID fetches a withdrawal request by UUID.
func (r *WithdrawalRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.WithdrawalRequest, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawal_requests WHERE id = $1`

	w, err := scanWithdrawal(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get withdrawal: %w", err)
	}
	return w, nil
}

// SetProcessing records the gateway's disbursement id once the gateway has
// accepted the request.
func (r *WithdrawalRepo) SetProcessing(ctx context.Context, id uuid.UUID, disbursementID string, processedAt time.Time) error {
	query := `UPDATE withdrawal_requests
		SET status = 'PROCESSING', external_disbursement_id = $1, processed_at = $2
		WHERE id = $3 AND status = 'REQUESTED'`

	tag, err := r.pool.Exec(ctx, query, disbursementID, processedAt, id)
	if err != nil {
		return fmt.Errorf("set withdrawal processing: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("withdrawal not in REQUESTED state: %s", id)
	}
	return nil
}

// Complete finalizes a withdrawal within the caller's transaction. The status
// guard makes the transition idempotent under duplicate callbacks.
func (r *WithdrawalRepo) Complete(ctx context.Context, tx pgx.Tx, id uuid.UUID, disbursementID *string, gatewayFeeActual int64, completedAt time.Time) error {
	query := `UPDATE withdrawal_requests
		SET status = 'COMPLETED',
			external_disbursement_id = COALESCE($1, external_disbursement_id),
			gateway_fee_actual = $2,
			completed_at = $3
		WHERE id = $4 AND status IN ('REQUESTED', 'PROCESSING')`

	tag, err := tx.Exec(ctx, query, disbursementID, gatewayFeeActual, completedAt, id)
	if err != nil {
		return fmt.Errorf("complete withdrawal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("withdrawal not completable: %s", id)
	}
	return nil
}

// Fail marks a withdrawal FAILED within the caller's transaction so the
// reservation reversal commits with the status change.
func (r *WithdrawalRepo) Fail(ctx context.Context, tx pgx.Tx, id uuid.UUID, completedAt time.Time) error {
	query := `UPDATE withdrawal_requests
		SET status = 'FAILED', completed_at = $1
		WHERE id = $2 AND status IN ('REQUESTED', 'PROCESSING')`

	tag, err := tx.Exec(ctx, query, completedAt, id)
	if err != nil {
		return fmt.Errorf("fail withdrawal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("withdrawal not failable: %s", id)
	}
	return nil
}

// ListByContributor returns the contributor's withdrawals, newest first.
func (r *WithdrawalRepo) ListByContributor(ctx context.Context, contributorID uuid.UUID) ([]domain.WithdrawalRequest, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawal_requests
		WHERE contributor_id = $1 ORDER BY requested_at DESC`

	rows, err := r.pool.Query(ctx, query, contributorID)
	if err != nil {
		return nil, fmt.Errorf("list withdrawals: %w", err)
	}
	defer rows.Close()

	var out []domain.WithdrawalRequest
	for rows.Next() {
		w, err := scanWithdrawal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan withdrawal: %w", err)
		}
		out = append(out, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list withdrawals: %w", err)
	}
	return out, nil
}

func scanWithdrawal(row pgx.Row) (*domain.WithdrawalRequest, error) {
	w := &domain.WithdrawalRequest{}
	err := row.Scan(
		&w.ID, &w.ContributorID, &w.DestinationID, &w.AmountToUser, &w.FeeFlat, &w.TotalDebit,
		&w.Currency, &w.Status, &w.ExternalDisbursementID, &w.GatewayIdempotencyKey, &w.GatewayFeeActual,
		&w.RequestedAt, &w.ProcessedAt, &w.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	return w, nil
}
