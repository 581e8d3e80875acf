package postgres

import (
	"context"
	"errors"
	"fmt"

	"kontribo-backend/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const contributorColumns = `id, user_id, username, display_name, status, created_at, updated_at`

// ContributorRepo implements ports.ContributorRepository.
type ContributorRepo struct {
	pool Pool
}

// NewContributorRepo creates a new ContributorRepo.
func NewContributorRepo(pool Pool) *ContributorRepo {
	return &ContributorRepo{pool: pool}
}

// GetByID fetches a contributor by UUID.
func (r *ContributorRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Contributor, error) {
	query := `SELECT ` + contributorColumns + ` FROM contributors WHERE id = $1`
	return r.scanContributor(r.pool.QueryRow(ctx, query, id))
}

// GetByUsername fetches a contributor by public username.
func (r *ContributorRepo) GetByUsername(ctx context.Context, username string) (*domain.Contributor, error) {
	query := `SELECT ` + contributorColumns + ` FROM contributors WHERE username = $1`
	return r.scanContributor(r.pool.QueryRow(ctx, query, username))
}

// GetByUserID fetches the contributor profile owned by an authenticated user.
func (r *ContributorRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Contributor, error) {
	query := `SELECT ` + contributorColumns + ` FROM contributors WHERE user_id = $1`
	return r.scanContributor(r.pool.QueryRow(ctx, query, userID))
}

func (r *ContributorRepo) scanContributor(row pgx.Row) (*domain.Contributor, error) {
	c := &domain.Contributor{}
	err := row.Scan(&c.ID, &c.UserID, &c.Username, &c.DisplayName, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan contributor: %w", err)
	}
	return c, nil
}
