package postgres

import (
	"context"
	"errors"
	"fmt"

	"kontribo-backend/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// DestinationRepo implements ports.PayoutDestinationRepository.
type DestinationRepo struct {
	pool Pool
}

// NewDestinationRepo creates a new DestinationRepo.
func NewDestinationRepo(pool Pool) *DestinationRepo {
	return &DestinationRepo{pool: pool}
}

// GetByID fetches a payout destination by UUID.
func (r *DestinationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PayoutDestination, error) {
	query := `SELECT id, contributor_id, channel, label, is_default, bank_code, bank_account_name,
		bank_account_number, ewallet_type, ewallet_number, is_active, created_at, updated_at
		FROM payout_destinations WHERE id = $1`

	d := &domain.PayoutDestination{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.ContributorID, &d.Channel, &d.Label, &d.IsDefault, &d.BankCode, &d.BankAccountName,
		&d.BankAccountNumber, &d.EwalletType, &d.EwalletNumber, &d.IsActive, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payout destination: %w", err)
	}
	return d, nil
}
