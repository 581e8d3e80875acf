package service

import (
	"context"
	"fmt"

	"kontribo-backend/internal/core/domain"
	"kontribo-backend/internal/core/ports"
	"kontribo-backend/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// LedgerServiceImpl implements ports.LedgerService.
type LedgerServiceImpl struct {
	ledgerRepo ports.LedgerRepository
	log        zerolog.Logger
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(ledgerRepo ports.LedgerRepository, log zerolog.Logger) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		ledgerRepo: ledgerRepo,
		log:        log,
	}
}

// ApplyEntries appends the given entries within the caller's transaction.
// Entries whose idempotency key already exists are skipped silently, so
// replaying a whole set after a partial failure completes the missing rows.
func (s *LedgerServiceImpl) ApplyEntries(ctx context.Context, tx pgx.Tx, entries []domain.LedgerEntry) error {
	for i := range entries {
		e := &entries[i]
		if e.Amount <= 0 {
			return apperror.Validation(fmt.Sprintf("Ledger entry amount must be positive, got %d", e.Amount))
		}
		if e.OwnerType == domain.OwnerTypeContributor && e.ContributorID == nil {
			return apperror.Validation("Contributor ledger entry is missing contributor id")
		}

		_, dup, err := s.ledgerRepo.Insert(ctx, tx, e)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("apply ledger entry: %w", err))
		}
		if dup {
			key := ""
			if e.IdempotencyKey != nil {
				key = *e.IdempotencyKey
			}
			s.log.Debug().
				Str("idempotency_key", key).
				Str("bucket", string(e.Bucket)).
				Msg("ledger entry already applied, skipping")
		}
	}
	return nil
}

// GetContributorBalances returns the contributor's per-bucket balances.
func (s *LedgerServiceImpl) GetContributorBalances(ctx context.Context, contributorID uuid.UUID) (*domain.Balances, error) {
	b, err := s.ledgerRepo.GetContributorBalances(ctx, contributorID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get balances: %w", err))
	}
	return b, nil
}

// SumFounderRevenue returns the founder's net revenue balance.
func (s *LedgerServiceImpl) SumFounderRevenue(ctx context.Context) (int64, error) {
	sum, err := s.ledgerRepo.SumFounderRevenue(ctx)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("sum founder revenue: %w", err))
	}
	return sum, nil
}
