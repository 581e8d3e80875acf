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

// SupportServiceImpl implements ports.SupportService.
type SupportServiceImpl struct {
	supportRepo     ports.SupportRepository
	contributorRepo ports.ContributorRepository
	ledgerSvc       ports.LedgerService
	gateway         ports.GatewayClient
	transactor      ports.DBTransactor
	payout          config.PayoutConfig
	log             zerolog.Logger
}

// NewSupportService creates a new SupportServiceImpl.
func NewSupportService(
	supportRepo ports.SupportRepository,
	contributorRepo ports.ContributorRepository,
	ledgerSvc ports.LedgerService,
	gateway ports.GatewayClient,
	transactor ports.DBTransactor,
	payout config.PayoutConfig,
	log zerolog.Logger,
) *SupportServiceImpl {
	return &SupportServiceImpl{
		supportRepo:     supportRepo,
		contributorRepo: contributorRepo,
		ledgerSvc:       ledgerSvc,
		gateway:         gateway,
		transactor:      transactor,
		payout:          payout,
		log:             log,
	}
}

// CreateSupport initiates a donation: persists a PENDING support row keyed by
// the client's idempotency key, then creates a gateway invoice and links it to
// the same row in place.
func (s *SupportServiceImpl) CreateSupport(ctx context.Context, req ports.CreateSupportRequest) (*ports.CreateSupportResult, error) {
	if req.Amount < s.payout.MinSupportAmount {
		return nil, apperror.ErrInvalidAmount(s.payout.MinSupportAmount)
	}
	if req.IdempotencyKey == "" {
		return nil, apperror.Validation("Idempotency key is required")
	}

	contributor, err := s.contributorRepo.GetByUsername(ctx, req.ContributorUsername)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find contributor: %w", err))
	}
	if contributor == nil {
		return nil, apperror.ErrNotFound("Contributor")
	}
	if !contributor.IsActive() {
		return nil, apperror.ErrContributorSuspended()
	}

	now := time.Now().UTC()
	support := &domain.SupportTransaction{
		ID:             uuid.New(),
		ContributorID:  contributor.ID,
		AmountGross:    req.Amount,
		Currency:       s.payout.Currency,
		Message:        req.Message,
		IsAnonymous:    req.IsAnonymous,
		SupporterName:  req.SupporterName,
		SupporterEmail: req.SupporterEmail,
		Status:         domain.SupportStatusPending,
		IdempotencyKey: req.IdempotencyKey,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, dup, err := s.supportRepo.Create(ctx, support)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create support: %w", err))
	}
	if dup {
		s.log.Info().
			Str("support_id", created.ID.String()).
			Str("idempotency_key", req.IdempotencyKey).
			Msg("support already exists for idempotency key, returning existing")
		return &ports.CreateSupportResult{Support: created}, nil
	}

	invoice, err := s.gateway.CreateInvoice(ctx, ports.GatewayInvoiceRequest{
		ExternalID:         created.ID.String(),
		Amount:             created.AmountGross,
		Description:        fmt.Sprintf("Support for %s", contributor.Username),
		PayerEmail:         req.SupporterEmail,
		SuccessRedirectURL: req.SuccessRedirectURL,
		FailureRedirectURL: req.FailureRedirectURL,
		IdempotencyKey:     created.ID.String(),
	})
	if err != nil {
		// The PENDING row stays behind without an invoice. A client retry with
		// the same idempotency key returns it and no duplicate is created.
		return nil, err
	}

	if err := s.supportRepo.LinkInvoice(ctx, created.ID, invoice.ID, invoice.ExpiryDate); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("link invoice: %w", err))
	}
	created.ExternalInvoiceID = &invoice.ID
	created.ExpiredAt = invoice.ExpiryDate

	s.log.Info().
		Str("support_id", created.ID.String()).
		Str("contributor_id", contributor.ID.String()).
		Str("invoice_id", invoice.ID).
		Int64("amount", created.AmountGross).
		Msg("support created")

	return &ports.CreateSupportResult{Support: created, InvoiceURL: invoice.InvoiceURL}, nil
}

// HandleInvoicePaid marks the support PAID and credits the contributor's
// PENDING bucket, atomically. Replayed confirmations return the row unchanged.
func (s *SupportServiceImpl) HandleInvoicePaid(ctx context.Context, supportID uuid.UUID, paymentID *string, paidAt time.Time) (*domain.SupportTransaction, error) {
	support, err := s.supportRepo.GetByID(ctx, supportID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find support: %w", err))
	}
	if support == nil {
		return nil, apperror.ErrNotFound("Support")
	}
	if support.Status == domain.SupportStatusPaid {
		return support, nil
	}
	if support.IsTerminal() {
		return nil, apperror.ErrStateConflict(fmt.Sprintf("Support is %s, cannot mark paid", support.Status))
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.supportRepo.MarkPaid(ctx, dbTx, support.ID, paymentID, paidAt); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("mark paid: %w", err))
	}

	entries := domain.SupportPaidEntries(support.ContributorID, support.ID, support.AmountGross, support.Currency, paidAt)
	if err := s.ledgerSvc.ApplyEntries(ctx, dbTx, entries); err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	support.Status = domain.SupportStatusPaid
	support.ExternalPaymentID = paymentID
	support.PaidAt = &paidAt

	s.log.Info().
		Str("support_id", support.ID.String()).
		Int64("amount", support.AmountGross).
		Msg("support paid, pending balance credited")

	return support, nil
}

// HandleInvoiceExpired marks a PENDING support EXPIRED. No ledger movement:
// nothing was ever credited.
func (s *SupportServiceImpl) HandleInvoiceExpired(ctx context.Context, supportID uuid.UUID) (*domain.SupportTransaction, error) {
	return s.terminate(ctx, supportID, domain.SupportStatusExpired)
}

// HandleInvoiceFailed marks a PENDING support FAILED.
func (s *SupportServiceImpl) HandleInvoiceFailed(ctx context.Context, supportID uuid.UUID) (*domain.SupportTransaction, error) {
	return s.terminate(ctx, supportID, domain.SupportStatusFailed)
}

func (s *SupportServiceImpl) terminate(ctx context.Context, supportID uuid.UUID, status domain.SupportStatus) (*domain.SupportTransaction, error) {
	support, err := s.supportRepo.GetByID(ctx, supportID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find support: %w", err))
	}
	if support == nil {
		return nil, apperror.ErrNotFound("Support")
	}
	if support.Status == status {
		return support, nil
	}
	if support.Status != domain.SupportStatusPending {
		return nil, apperror.ErrStateConflict(fmt.Sprintf("Support is %s, cannot mark %s", support.Status, status))
	}

	if err := s.supportRepo.MarkTerminated(ctx, support.ID, status); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("terminate support: %w", err))
	}
	support.Status = status

	s.log.Info().
		Str("support_id", support.ID.String()).
		Str("status", string(status)).
		Msg("support terminated")

	return support, nil
}

// ReleaseToAvailable moves a paid support's funds from PENDING to AVAILABLE.
// Safe to call repeatedly: the entry pair is keyed on the support id.
func (s *SupportServiceImpl) ReleaseToAvailable(ctx context.Context, supportID uuid.UUID) error {
	support, err := s.supportRepo.GetByID(ctx, supportID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("find support: %w", err))
	}
	if support == nil {
		return apperror.ErrNotFound("Support")
	}
	if support.Status != domain.SupportStatusPaid {
		return apperror.ErrStateConflict(fmt.Sprintf("Support is %s, only PAID supports can be released", support.Status))
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	entries := domain.SupportReleaseEntries(support.ContributorID, support.ID, support.AmountGross, support.Currency, time.Now().UTC())
	if err := s.ledgerSvc.ApplyEntries(ctx, dbTx, entries); err != nil {
		return err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("support_id", support.ID.String()).
		Int64("amount", support.AmountGross).
		Msg("support released to available balance")

	return nil
}
