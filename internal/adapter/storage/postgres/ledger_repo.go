package postgres

import (
	"context"
	"errors"
	"fmt"

	"kontribo-backend/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// LedgerRepo implements ports.LedgerRepository over the append-only
// ledger_entries table. Uniqueness of (owner_type, idempotency_key) is
// enforced by a partial unique index; a colliding insert is a benign
// duplicate resolved by re-reading the existing row.
type LedgerRepo struct {
	pool Pool
}

// NewLedgerRepo creates a new LedgerRepo.
func NewLedgerRepo(pool Pool) *LedgerRepo {
	return &LedgerRepo{pool: pool}
}

// Insert appends one entry within a database transaction. ON CONFLICT DO
// NOTHING keeps the transaction alive on a key collision so the existing
// entry can be fetched in the same transaction.
func (r *LedgerRepo) Insert(ctx context.Context, tx pgx.Tx, e *domain.LedgerEntry) (*domain.LedgerEntry, bool, error) {
	query := `INSERT INTO ledger_entries (id, owner_type, contributor_id, bucket, direction, amount, currency,
		reference_type, reference_id, idempotency_key, occurred_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (owner_type, idempotency_key) DO NOTHING`

	tag, err := tx.Exec(ctx, query,
		e.ID, e.OwnerType, e.ContributorID, e.Bucket, e.Direction,
		e.Amount, e.Currency, e.ReferenceType, e.ReferenceID,
		e.IdempotencyKey, e.OccurredAt, e.CreatedAt,
	)
	if err != nil {
		return nil, false, fmt.Errorf("insert ledger entry: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return e, false, nil
	}

	if e.IdempotencyKey == nil {
		return nil, false, fmt.Errorf("insert ledger entry: no row inserted and no idempotency key to re-read")
	}
	existing, err := r.getByOwnerAndKey(ctx, tx, e.OwnerType, *e.IdempotencyKey)
	if err != nil {
		return nil, false, err
	}
	if existing == nil {
		return nil, false, fmt.Errorf("insert ledger entry: duplicate not found for key %q", *e.IdempotencyKey)
	}
	return existing, true, nil
}

// LockContributor takes a transaction-scoped advisory lock on the
// contributor's ledger aggregate so balance-check-then-append sequences
// serialize across concurrent requests.
func (r *LedgerRepo) LockContributor(ctx context.Context, tx pgx.Tx, contributorID uuid.UUID) error {
	_, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))`, contributorID)
	if err != nil {
		return fmt.Errorf("lock contributor ledger: %w", err)
	}
	return nil
}

const contributorBalancesQuery = `SELECT
	COALESCE(SUM(CASE WHEN bucket = 'AVAILABLE' THEN CASE WHEN direction = 'CREDIT' THEN amount ELSE -amount END ELSE 0 END), 0) AS available,
	COALESCE(SUM(CASE WHEN bucket = 'PENDING' THEN CASE WHEN direction = 'CREDIT' THEN amount ELSE -amount END ELSE 0 END), 0) AS pending,
	COALESCE(SUM(CASE WHEN bucket = 'RESERVED' THEN CASE WHEN direction = 'CREDIT' THEN amount ELSE -amount END ELSE 0 END), 0) AS reserved
	FROM ledger_entries
	WHERE owner_type = 'CONTRIBUTOR' AND contributor_id = $1`

// GetContributorBalances sums credits minus debits per bucket.
func (r *LedgerRepo) GetContributorBalances(ctx context.Context, contributorID uuid.UUID) (*domain.Balances, error) {
	return r.contributorBalances(ctx, r.pool, contributorID)
}

// GetContributorBalancesTx reads balances inside the caller's transaction.
func (r *LedgerRepo) GetContributorBalancesTx(ctx context.Context, tx pgx.Tx, contributorID uuid.UUID) (*domain.Balances, error) {
	return r.contributorBalances(ctx, tx, contributorID)
}

func (r *LedgerRepo) contributorBalances(ctx context.Context, q rowQuerier, contributorID uuid.UUID) (*domain.Balances, error) {
	b := &domain.Balances{}
	err := q.QueryRow(ctx, contributorBalancesQuery, contributorID).Scan(&b.Available, &b.Pending, &b.Reserved)
	if err != nil {
		return nil, fmt.Errorf("get contributor balances: %w", err)
	}
	return b, nil
}

// SumFounderRevenue returns the signed FOUNDER/REVENUE balance.
func (r *LedgerRepo) SumFounderRevenue(ctx context.Context) (int64, error) {
	query := `SELECT COALESCE(SUM(CASE WHEN direction = 'CREDIT' THEN amount ELSE -amount END), 0)
		FROM ledger_entries WHERE owner_type = 'FOUNDER' AND bucket = 'REVENUE'`

	var sum int64
	if err := r.pool.QueryRow(ctx, query).Scan(&sum); err != nil {
		return 0, fmt.Errorf("sum founder revenue: %w", err)
	}
	return sum, nil
}

func (r *LedgerRepo) getByOwnerAndKey(ctx context.Context, q rowQuerier, ownerType domain.OwnerType, key string) (*domain.LedgerEntry, error) {
	query := `SELECT id, owner_type, contributor_id, bucket, direction, amount, currency,
		reference_type, reference_id, idempotency_key, occurred_at, created_at
		FROM ledger_entries WHERE owner_type = $1 AND idempotency_key = $2`

	e := &domain.LedgerEntry{}
	err := q.QueryRow(ctx, query, ownerType, key).Scan(
		&e.ID, &e.OwnerType, &e.ContributorID, &e.Bucket, &e.Direction,
		&e.Amount, &e.Currency, &e.ReferenceType, &e.ReferenceID,
		&e.IdempotencyKey, &e.OccurredAt, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ledger entry by key: %w", err)
	}
	return e, nil
}
