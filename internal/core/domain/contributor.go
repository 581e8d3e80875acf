package domain

import (
	"time"

	"github.com/google/uuid"
)

// ContributorStatus represents a contributor account state.
type ContributorStatus string

const (
	ContributorStatusActive    ContributorStatus = "ACTIVE"
	ContributorStatusSuspended ContributorStatus = "SUSPENDED"
)

// Contributor is a creator profile that receives supports and requests
// withdrawals.
type Contributor struct {
	ID          uuid.UUID         `json:"id"`
	UserID      uuid.UUID         `json:"user_id"`
	Username    string            `json:"username"`
	DisplayName string            `json:"display_name"`
	Status      ContributorStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// IsActive returns true if the contributor can receive supports and withdraw.
func (c *Contributor) IsActive() bool {
	return c.Status == ContributorStatusActive
}
