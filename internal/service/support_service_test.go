package service

import (
	"context"
	"testing"
	"time"

	"kontribo-backend/config"
	"kontribo-backend/internal/core/domain"
	"kontribo-backend/internal/core/ports"
	"kontribo-backend/internal/core/ports/mocks"
	"kontribo-backend/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type supportTestDeps struct {
	svc             *SupportServiceImpl
	supportRepo     *mocks.MockSupportRepository
	contributorRepo *mocks.MockContributorRepository
	ledgerSvc       *mocks.MockLedgerService
	gateway         *mocks.MockGatewayClient
	transactor      *mocks.MockDBTransactor
	ctrl            *gomock.Controller
}

func testPayoutConfig() config.PayoutConfig {
	return config.PayoutConfig{
		Currency:            "IDR",
		FeeFlat:             4500,
		MinSupportAmount:    1000,
		MinWithdrawalAmount: 1000,
	}
}

func setupSupportService(t *testing.T) *supportTestDeps {
	ctrl := gomock.NewController(t)
	d := &supportTestDeps{
		supportRepo:     mocks.NewMockSupportRepository(ctrl),
		contributorRepo: mocks.NewMockContributorRepository(ctrl),
		ledgerSvc:       mocks.NewMockLedgerService(ctrl),
		gateway:         mocks.NewMockGatewayClient(ctrl),
		transactor:      mocks.NewMockDBTransactor(ctrl),
		ctrl:            ctrl,
	}
	d.svc = NewSupportService(
		d.supportRepo, d.contributorRepo, d.ledgerSvc, d.gateway,
		d.transactor, testPayoutConfig(), zerolog.Nop(),
	)
	return d
}

func activeContributor() *domain.Contributor {
	return &domain.Contributor{
		ID:       uuid.New(),
		UserID:   uuid.New(),
		Username: "budi",
		Status:   domain.ContributorStatusActive,
	}
}

// ==================== CreateSupport Tests ====================

func TestSupportService_CreateSupport_Success(t *testing.T) {
	d := setupSupportService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	contributor := activeContributor()
	expiry := time.Now().Add(24 * time.Hour).UTC()

	req := ports.CreateSupportRequest{
		ContributorUsername: "budi",
		Amount:              50000,
		Message:             "semangat!",
		IdempotencyKey:      "client-key-001",
	}

	d.contributorRepo.EXPECT().GetByUsername(ctx, "budi").Return(contributor, nil)
	d.supportRepo.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, s *domain.SupportTransaction) (*domain.SupportTransaction, bool, error) {
			assert.Equal(t, contributor.ID, s.ContributorID)
			assert.Equal(t, int64(50000), s.AmountGross)
			assert.Equal(t, domain.SupportStatusPending, s.Status)
			assert.Equal(t, "client-key-001", s.IdempotencyKey)
			return s, false, nil
		})
	d.gateway.EXPECT().CreateInvoice(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, req ports.GatewayInvoiceRequest) (*ports.GatewayInvoice, error) {
			assert.Equal(t, int64(50000), req.Amount)
			assert.Equal(t, req.ExternalID, req.IdempotencyKey)
			return &ports.GatewayInvoice{
				ID:         "inv-123",
				InvoiceURL: "https://checkout.test/inv-123",
				Status:     "PENDING",
				ExpiryDate: &expiry,
			}, nil
		})
	d.supportRepo.EXPECT().LinkInvoice(ctx, gomock.Any(), "inv-123", &expiry).Return(nil)

	result, err := d.svc.CreateSupport(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.test/inv-123", result.InvoiceURL)
	require.NotNil(t, result.Support.ExternalInvoiceID)
	assert.Equal(t, "inv-123", *result.Support.ExternalInvoiceID)
}

func TestSupportService_CreateSupport_DuplicateKeyReturnsExisting(t *testing.T) {
	d := setupSupportService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	contributor := activeContributor()
	existing := &domain.SupportTransaction{
		ID:             uuid.New(),
		ContributorID:  contributor.ID,
		AmountGross:    50000,
		Status:         domain.SupportStatusPending,
		IdempotencyKey: "client-key-001",
	}

	d.contributorRepo.EXPECT().GetByUsername(ctx, "budi").Return(contributor, nil)
	d.supportRepo.EXPECT().Create(ctx, gomock.Any()).Return(existing, true, nil)
	// No gateway call, no second row.

	result, err := d.svc.CreateSupport(ctx, ports.CreateSupportRequest{
		ContributorUsername: "budi",
		Amount:              50000,
		IdempotencyKey:      "client-key-001",
	})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, result.Support.ID)
	assert.Empty(t, result.InvoiceURL)
}

func TestSupportService_CreateSupport_BelowMinimum(t *testing.T) {
	d := setupSupportService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.CreateSupport(context.Background(), ports.CreateSupportRequest{
		ContributorUsername: "budi",
		Amount:              500,
		IdempotencyKey:      "k",
	})
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VAL_002", appErr.Code)
}

func TestSupportService_CreateSupport_MissingIdempotencyKey(t *testing.T) {
	d := setupSupportService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.CreateSupport(context.Background(), ports.CreateSupportRequest{
		ContributorUsername: "budi",
		Amount:              50000,
	})
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VAL_001", appErr.Code)
}

func TestSupportService_CreateSupport_ContributorNotFound(t *testing.T) {
	d := setupSupportService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.contributorRepo.EXPECT().GetByUsername(ctx, "ghost").Return(nil, nil)

	_, err := d.svc.CreateSupport(ctx, ports.CreateSupportRequest{
		ContributorUsername: "ghost",
		Amount:              50000,
		IdempotencyKey:      "k",
	})
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "RES_001", appErr.Code)
}

func TestSupportService_CreateSupport_SuspendedContributor(t *testing.T) {
	d := setupSupportService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	contributor := activeContributor()
	contributor.Status = domain.ContributorStatusSuspended
	d.contributorRepo.EXPECT().GetByUsername(ctx, "budi").Return(contributor, nil)

	_, err := d.svc.CreateSupport(ctx, ports.CreateSupportRequest{
		ContributorUsername: "budi",
		Amount:              50000,
		IdempotencyKey:      "k",
	})
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SEC_003", appErr.Code)
}

func TestSupportService_CreateSupport_GatewayFailure(t *testing.T) {
	d := setupSupportService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	contributor := activeContributor()

	d.contributorRepo.EXPECT().GetByUsername(ctx, "budi").Return(contributor, nil)
	d.supportRepo.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, s *domain.SupportTransaction) (*domain.SupportTransaction, bool, error) {
			return s, false, nil
		})
	d.gateway.EXPECT().CreateInvoice(ctx, gomock.Any()).
		Return(nil, apperror.ErrGateway(assert.AnError))

	_, err := d.svc.CreateSupport(ctx, ports.CreateSupportRequest{
		ContributorUsername: "budi",
		Amount:              50000,
		IdempotencyKey:      "k",
	})
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "GW_001", appErr.Code)
}

// ==================== HandleInvoicePaid Tests ====================

func TestSupportService_HandleInvoicePaid_Success(t *testing.T) {
	d := setupSupportService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	paidAt := time.Now().UTC()
	paymentID := "pay-1"
	support := &domain.SupportTransaction{
		ID:            uuid.New(),
		ContributorID: uuid.New(),
		AmountGross:   50000,
		Currency:      "IDR",
		Status:        domain.SupportStatusPending,
	}

	d.supportRepo.EXPECT().GetByID(ctx, support.ID).Return(support, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.supportRepo.EXPECT().MarkPaid(ctx, tx, support.ID, &paymentID, paidAt).Return(nil)
	d.ledgerSvc.EXPECT().ApplyEntries(ctx, tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, entries []domain.LedgerEntry) error {
			require.Len(t, entries, 1)
			assert.Equal(t, domain.BucketPending, entries[0].Bucket)
			assert.Equal(t, domain.DirectionCredit, entries[0].Direction)
			assert.Equal(t, int64(50000), entries[0].Amount)
			return nil
		})

	result, err := d.svc.HandleInvoicePaid(ctx, support.ID, &paymentID, paidAt)
	require.NoError(t, err)
	assert.Equal(t, domain.SupportStatusPaid, result.Status)
	assert.Equal(t, &paidAt, result.PaidAt)
}

func TestSupportService_HandleInvoicePaid_AlreadyPaid(t *testing.T) {
	d := setupSupportService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	support := &domain.SupportTransaction{
		ID:     uuid.New(),
		Status: domain.SupportStatusPaid,
	}

	d.supportRepo.EXPECT().GetByID(ctx, support.ID).Return(support, nil)
	// No transaction, no ledger entries: the replay is a no-op.

	result, err := d.svc.HandleInvoicePaid(ctx, support.ID, nil, time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, domain.SupportStatusPaid, result.Status)
}

func TestSupportService_HandleInvoicePaid_TerminalState(t *testing.T) {
	d := setupSupportService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	support := &domain.SupportTransaction{
		ID:     uuid.New(),
		Status: domain.SupportStatusExpired,
	}

	d.supportRepo.EXPECT().GetByID(ctx, support.ID).Return(support, nil)

	_, err := d.svc.HandleInvoicePaid(ctx, support.ID, nil, time.Now().UTC())
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "LED_001", appErr.Code)
}

func TestSupportService_HandleInvoiceExpired(t *testing.T) {
	d := setupSupportService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	support := &domain.SupportTransaction{
		ID:     uuid.New(),
		Status: domain.SupportStatusPending,
	}

	d.supportRepo.EXPECT().GetByID(ctx, support.ID).Return(support, nil)
	d.supportRepo.EXPECT().MarkTerminated(ctx, support.ID, domain.SupportStatusExpired).Return(nil)

	result, err := d.svc.HandleInvoiceExpired(ctx, support.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SupportStatusExpired, result.Status)
}

func TestSupportService_HandleInvoiceExpired_PaidConflicts(t *testing.T) {
	d := setupSupportService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	support := &domain.SupportTransaction{
		ID:     uuid.New(),
		Status: domain.SupportStatusPaid,
	}

	d.supportRepo.EXPECT().GetByID(ctx, support.ID).Return(support, nil)

	_, err := d.svc.HandleInvoiceExpired(ctx, support.ID)
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "LED_001", appErr.Code)
}

// ==================== ReleaseToAvailable Tests ====================

func TestSupportService_ReleaseToAvailable_Success(t *testing.T) {
	d := setupSupportService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	support := &domain.SupportTransaction{
		ID:            uuid.New(),
		ContributorID: uuid.New(),
		AmountGross:   50000,
		Currency:      "IDR",
		Status:        domain.SupportStatusPaid,
	}

	d.supportRepo.EXPECT().GetByID(ctx, support.ID).Return(support, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.ledgerSvc.EXPECT().ApplyEntries(ctx, tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, entries []domain.LedgerEntry) error {
			require.Len(t, entries, 2)
			assert.Equal(t, domain.BucketPending, entries[0].Bucket)
			assert.Equal(t, domain.DirectionDebit, entries[0].Direction)
			assert.Equal(t, domain.BucketAvailable, entries[1].Bucket)
			assert.Equal(t, domain.DirectionCredit, entries[1].Direction)
			assert.Equal(t, entries[0].Amount, entries[1].Amount, "release pair must conserve value")
			return nil
		})

	err := d.svc.ReleaseToAvailable(ctx, support.ID)
	assert.NoError(t, err)
}

func TestSupportService_ReleaseToAvailable_NotPaid(t *testing.T) {
	d := setupSupportService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	support := &domain.SupportTransaction{
		ID:     uuid.New(),
		Status: domain.SupportStatusPending,
	}

	d.supportRepo.EXPECT().GetByID(ctx, support.ID).Return(support, nil)

	err := d.svc.ReleaseToAvailable(ctx, support.ID)
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "LED_001", appErr.Code)
}

func TestSupportService_ReleaseToAvailable_NotFound(t *testing.T) {
	d := setupSupportService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	id := uuid.New()
	d.supportRepo.EXPECT().GetByID(ctx, id).Return(nil, nil)

	err := d.svc.ReleaseToAvailable(ctx, id)
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "RES_001", appErr.Code)
}
