package service

import (
	"context"
	"fmt"
	"time"

	"kontribo-backend/config"
	"kontribo-backend/internal/core/domain"
	"kontribo-backend/internal/core/ports"
	"kontribo-backend/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// WithdrawalServiceImpl implements ports.WithdrawalService.
type WithdrawalServiceImpl struct {
	withdrawalRepo  ports.WithdrawalRepository
	contributorRepo ports.ContributorRepository
	destinationRepo ports.PayoutDestinationRepository
	ledgerRepo      ports.LedgerRepository
	ledgerSvc       ports.LedgerService
	gateway         ports.GatewayClient
	transactor      ports.DBTransactor
	payout          config.PayoutConfig
	log             zerolog.Logger
}

// NewWithdrawalService creates a new WithdrawalServiceImpl.
func NewWithdrawalService(
	withdrawalRepo ports.WithdrawalRepository,
	contributorRepo ports.ContributorRepository,
	destinationRepo ports.PayoutDestinationRepository,
	ledgerRepo ports.LedgerRepository,
	ledgerSvc ports.LedgerService,
	gateway ports.GatewayClient,
	transactor ports.DBTransactor,
	payout config.PayoutConfig,
	log zerolog.Logger,
) *WithdrawalServiceImpl {
	return &WithdrawalServiceImpl{
		withdrawalRepo:  withdrawalRepo,
		contributorRepo: contributorRepo,
		destinationRepo: destinationRepo,
		ledgerRepo:      ledgerRepo,
		ledgerSvc:       ledgerSvc,
		gateway:         gateway,
		transactor:      transactor,
		payout:          payout,
		log:             log,
	}
}

// RequestWithdrawal reserves the contributor's funds and dispatches a payout.
// The balance check and reservation run under a per-contributor advisory lock;
// the gateway call happens after commit so no lock is held across it.
func (s *WithdrawalServiceImpl) RequestWithdrawal(ctx context.Context, in ports.RequestWithdrawalInput) (*domain.WithdrawalRequest, error) {
	if in.AmountToUser < s.payout.MinWithdrawalAmount {
		return nil, apperror.ErrInvalidAmount(s.payout.MinWithdrawalAmount)
	}

	contributor, err := s.contributorRepo.GetByUserID(ctx, in.UserID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find contributor: %w", err))
	}
	if contributor == nil {
		return nil, apperror.ErrNotFound("Contributor")
	}
	if !contributor.IsActive() {
		return nil, apperror.ErrContributorSuspended()
	}

	dest, err := s.destinationRepo.GetByID(ctx, in.DestinationID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find destination: %w", err))
	}
	if dest == nil || dest.ContributorID != contributor.ID {
		return nil, apperror.ErrNotFound("Payout destination")
	}
	if !dest.IsActive {
		return nil, apperror.ErrInactiveDestination()
	}

	now := time.Now().UTC()
	withdrawal := &domain.WithdrawalRequest{
		ID:                    uuid.New(),
		ContributorID:         contributor.ID,
		DestinationID:         dest.ID,
		AmountToUser:          in.AmountToUser,
		FeeFlat:               s.payout.FeeFlat,
		TotalDebit:            in.AmountToUser + s.payout.FeeFlat,
		Currency:              s.payout.Currency,
		Status:                domain.WithdrawalStatusRequested,
		GatewayIdempotencyKey: uuid.NewString(),
		RequestedAt:           now,
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.ledgerRepo.LockContributor(ctx, dbTx, contributor.ID); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock contributor: %w", err))
	}

	balances, err := s.ledgerRepo.GetContributorBalancesTx(ctx, dbTx, contributor.ID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check balance: %w", err))
	}
	if balances.Available < withdrawal.TotalDebit {
		return nil, apperror.ErrInsufficientBalance()
	}

	if err := s.withdrawalRepo.Create(ctx, dbTx, withdrawal); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create withdrawal: %w", err))
	}

	entries := domain.ReservationEntries(contributor.ID, withdrawal.ID, withdrawal.TotalDebit, withdrawal.Currency, now)
	if err := s.ledgerSvc.ApplyEntries(ctx, dbTx, entries); err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	// Dispatch the payout outside the transaction. On a transport or gateway
	// error the outcome is unknown, so the row stays REQUESTED with funds
	// reserved; the gateway's callback settles it either way.
	disbursement, err := s.gateway.CreateDisbursement(ctx, ports.GatewayDisbursementRequest{
		ExternalID:     withdrawal.ID.String(),
		Amount:         withdrawal.AmountToUser,
		Description:    fmt.Sprintf("Withdrawal for %s", contributor.Username),
		Destination:    *dest,
		IdempotencyKey: withdrawal.GatewayIdempotencyKey,
	})
	if err != nil {
		s.log.Warn().Err(err).
			Str("withdrawal_id", withdrawal.ID.String()).
			Msg("disbursement dispatch failed, withdrawal left REQUESTED")
		return nil, err
	}

	processedAt := time.Now().UTC()
	if err := s.withdrawalRepo.SetProcessing(ctx, withdrawal.ID, disbursement.ID, processedAt); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("set processing: %w", err))
	}
	withdrawal.Status = domain.WithdrawalStatusProcessing
	withdrawal.ExternalDisbursementID = &disbursement.ID
	withdrawal.ProcessedAt = &processedAt

	s.log.Info().
		Str("withdrawal_id", withdrawal.ID.String()).
		Str("disbursement_id", disbursement.ID).
		Int64("amount_to_user", withdrawal.AmountToUser).
		Int64("total_debit", withdrawal.TotalDebit).
		Msg("withdrawal requested")

	return withdrawal, nil
}

// HandleDisbursementCompleted finalizes the reservation and books the founder's
// fee revenue against the gateway's actual cost, atomically with the status
// change. Replayed confirmations return the row unchanged.
func (s *WithdrawalServiceImpl) HandleDisbursementCompleted(ctx context.Context, withdrawalID uuid.UUID, disbursementID *string, gatewayFeeActual int64) (*domain.WithdrawalRequest, error) {
	withdrawal, err := s.withdrawalRepo.GetByID(ctx, withdrawalID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find withdrawal: %w", err))
	}
	if withdrawal == nil {
		return nil, apperror.ErrNotFound("Withdrawal")
	}
	if withdrawal.Status == domain.WithdrawalStatusCompleted {
		return withdrawal, nil
	}
	if withdrawal.IsTerminal() {
		return nil, apperror.ErrStateConflict(fmt.Sprintf("Withdrawal is %s, cannot complete", withdrawal.Status))
	}

	now := time.Now().UTC()

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.withdrawalRepo.Complete(ctx, dbTx, withdrawal.ID, disbursementID, gatewayFeeActual, now); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("complete withdrawal: %w", err))
	}

	entries := domain.FinalizeWithdrawalEntries(withdrawal.ContributorID, withdrawal.ID, withdrawal.TotalDebit, withdrawal.Currency, now)
	entries = append(entries, domain.FounderRevenueEntries(withdrawal.ID, withdrawal.FeeFlat, gatewayFeeActual, withdrawal.Currency, now)...)
	if err := s.ledgerSvc.ApplyEntries(ctx, dbTx, entries); err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	withdrawal.Status = domain.WithdrawalStatusCompleted
	if disbursementID != nil {
		withdrawal.ExternalDisbursementID = disbursementID
	}
	withdrawal.GatewayFeeActual = gatewayFeeActual
	withdrawal.CompletedAt = &now

	s.log.Info().
		Str("withdrawal_id", withdrawal.ID.String()).
		Int64("fee_flat", withdrawal.FeeFlat).
		Int64("gateway_fee_actual", gatewayFeeActual).
		Msg("withdrawal completed")

	return withdrawal, nil
}

// HandleDisbursementFailed reverses the reservation so the funds return to
// AVAILABLE, atomically with the FAILED status change.
func (s *WithdrawalServiceImpl) HandleDisbursementFailed(ctx context.Context, withdrawalID uuid.UUID, reason string) (*domain.WithdrawalRequest, error) {
	withdrawal, err := s.withdrawalRepo.GetByID(ctx, withdrawalID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find withdrawal: %w", err))
	}
	if withdrawal == nil {
		return nil, apperror.ErrNotFound("Withdrawal")
	}
	if withdrawal.Status == domain.WithdrawalStatusFailed {
		return withdrawal, nil
	}
	if withdrawal.IsTerminal() {
		return nil, apperror.ErrStateConflict(fmt.Sprintf("Withdrawal is %s, cannot fail", withdrawal.Status))
	}

	now := time.Now().UTC()

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.withdrawalRepo.Fail(ctx, dbTx, withdrawal.ID, now); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("fail withdrawal: %w", err))
	}

	entries := domain.ReverseReservationEntries(withdrawal.ContributorID, withdrawal.ID, withdrawal.TotalDebit, withdrawal.Currency, now)
	if err := s.ledgerSvc.ApplyEntries(ctx, dbTx, entries); err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	withdrawal.Status = domain.WithdrawalStatusFailed
	withdrawal.CompletedAt = &now

	s.log.Info().
		Str("withdrawal_id", withdrawal.ID.String()).
		Str("reason", reason).
		Int64("total_debit", withdrawal.TotalDebit).
		Msg("withdrawal failed, reservation reversed")

	return withdrawal, nil
}

// ListByUser returns the authenticated user's withdrawals, newest first.
func (s *WithdrawalServiceImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.WithdrawalRequest, error) {
	contributor, err := s.contributorRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find contributor: %w", err))
	}
	if contributor == nil {
		return nil, apperror.ErrNotFound("Contributor")
	}

	list, err := s.withdrawalRepo.ListByContributor(ctx, contributor.ID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list withdrawals: %w", err))
	}
	return list, nil
}

// GetBalancesForUser returns the authenticated user's per-bucket balances.
func (s *WithdrawalServiceImpl) GetBalancesForUser(ctx context.Context, userID uuid.UUID) (*domain.Balances, error) {
	contributor, err := s.contributorRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find contributor: %w", err))
	}
	if contributor == nil {
		return nil, apperror.ErrNotFound("Contributor")
	}
	return s.ledgerSvc.GetContributorBalances(ctx, contributor.ID)
}
