package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kontribo-backend/config"
	httpHandler "kontribo-backend/internal/adapter/http/handler"
	redisStorage "kontribo-backend/internal/adapter/storage/redis"
	"kontribo-backend/internal/core/domain"
	"kontribo-backend/internal/core/ports"
	"kontribo-backend/internal/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCallbackToken = "test-callback-token"

// testApp wires the real services and HTTP stack against in-memory
// repositories and a miniredis instance.
type testApp struct {
	server *httptest.Server
	redis  *miniredis.Miniredis

	ledgerRepo      *inMemoryLedgerRepo
	supportRepo     *inMemorySupportRepo
	withdrawalRepo  *inMemoryWithdrawalRepo
	contributorRepo *inMemoryContributorRepo
	destinationRepo *inMemoryDestinationRepo
	webhookRepo     *inMemoryWebhookEventRepo
	gateway         *fakeGateway
	tokenSvc        *service.JWTTokenService
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	log := zerolog.Nop()

	payout := config.PayoutConfig{
		Currency:            "IDR",
		FeeFlat:             4500,
		MinSupportAmount:    1000,
		MinWithdrawalAmount: 1000,
	}

	app := &testApp{
		redis:           mr,
		ledgerRepo:      newInMemoryLedgerRepo(),
		supportRepo:     newInMemorySupportRepo(),
		withdrawalRepo:  newInMemoryWithdrawalRepo(),
		contributorRepo: newInMemoryContributorRepo(),
		destinationRepo: newInMemoryDestinationRepo(),
		webhookRepo:     newInMemoryWebhookEventRepo(),
		gateway:         newFakeGateway(),
	}

	transactor := newInMemoryTransactor()
	dedupCache := redisStorage.NewWebhookDedupCache(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	app.tokenSvc = service.NewJWTTokenService("integration-test-secret", time.Hour, "kontribo-backend")
	ledgerSvc := service.NewLedgerService(app.ledgerRepo, log)
	supportSvc := service.NewSupportService(app.supportRepo, app.contributorRepo, ledgerSvc, app.gateway, transactor, payout, log)
	withdrawalSvc := service.NewWithdrawalService(
		app.withdrawalRepo,
		app.contributorRepo,
		app.destinationRepo,
		app.ledgerRepo,
		ledgerSvc,
		app.gateway,
		transactor,
		payout,
		log,
	)
	webhookSvc := service.NewWebhookService(app.webhookRepo, dedupCache, supportSvc, withdrawalSvc, testCallbackToken, log)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		SupportSvc:     supportSvc,
		WithdrawalSvc:  withdrawalSvc,
		WebhookSvc:     webhookSvc,
		LedgerSvc:      ledgerSvc,
		TokenSvc:       app.tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{redisStorage.NewHealthCheck(rdb)},
		Currency:       payout.Currency,
		Logger:         log,
	})

	app.server = httptest.NewServer(router)
	t.Cleanup(func() {
		app.server.Close()
		rdb.Close()
	})
	return app
}

func (a *testApp) request(t *testing.T, method, path string, headers map[string]string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, a.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := a.server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]interface{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", raw)
	}
	return resp.StatusCode, decoded
}

func (a *testApp) deliverWebhook(t *testing.T, token string, payload map[string]interface{}) (int, map[string]interface{}) {
	t.Helper()
	return a.request(t, http.MethodPost, "/api/v1/webhooks/xendit", map[string]string{"X-Callback-Token": token}, payload)
}

func (a *testApp) authHeader(t *testing.T, userID uuid.UUID) map[string]string {
	t.Helper()
	token, _, err := a.tokenSvc.Generate(userID)
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + token}
}

func (a *testApp) seedContributor(username string) *domain.Contributor {
	now := time.Now().UTC()
	c := &domain.Contributor{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Username:    username,
		DisplayName: username,
		Status:      domain.ContributorStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	a.contributorRepo.add(c)
	return c
}

func (a *testApp) seedDestination(contributorID uuid.UUID) *domain.PayoutDestination {
	bankCode := "BCA"
	accountName := "Account Holder"
	accountNumber := "1234567890"
	now := time.Now().UTC()
	d := &domain.PayoutDestination{
		ID:                uuid.New(),
		ContributorID:     contributorID,
		Channel:           domain.PayoutChannelBank,
		Label:             "Primary account",
		BankCode:          &bankCode,
		BankAccountName:   &accountName,
		BankAccountNumber: &accountNumber,
		IsActive:          true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	a.destinationRepo.add(d)
	return d
}

// seedAvailable credits a contributor's AVAILABLE bucket through a settled and
// released support, the same way funds arrive in production.
func (a *testApp) seedAvailable(t *testing.T, contributorID uuid.UUID, amount int64) {
	t.Helper()
	ctx := t.Context()
	supportID := uuid.New()
	now := time.Now().UTC()
	for _, e := range domain.SupportPaidEntries(contributorID, supportID, amount, "IDR", now) {
		entry := e
		_, _, err := a.ledgerRepo.Insert(ctx, nil, &entry)
		require.NoError(t, err)
	}
	for _, e := range domain.SupportReleaseEntries(contributorID, supportID, amount, "IDR", now) {
		entry := e
		_, _, err := a.ledgerRepo.Insert(ctx, nil, &entry)
		require.NoError(t, err)
	}
}

func (a *testApp) balances(t *testing.T, contributorID uuid.UUID) *domain.Balances {
	t.Helper()
	b, err := a.ledgerRepo.GetContributorBalances(t.Context(), contributorID)
	require.NoError(t, err)
	return b
}

func data(t *testing.T, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	d, ok := body["data"].(map[string]interface{})
	require.True(t, ok, "expected data envelope, got: %v", body)
	return d
}

func TestIntegration_HealthCheck(t *testing.T) {
	app := newTestApp(t)

	status, body := app.request(t, http.MethodGet, "/health", nil, nil)

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "healthy", body["status"])
}

func TestIntegration_SupportLifecycle(t *testing.T) {
	app := newTestApp(t)
	contributor := app.seedContributor("rina_art")

	// Initiate a donation.
	status, body := app.request(t, http.MethodPost, "/api/v1/supports",
		map[string]string{"X-Idempotency-Key": "sess-1"},
		map[string]interface{}{
			"contributor_username": "rina_art",
			"amount":               50000,
			"message":              "keep it up",
		})
	require.Equal(t, http.StatusCreated, status)

	d := data(t, body)
	support := d["support"].(map[string]interface{})
	supportID := support["id"].(string)
	assert.Equal(t, "PENDING", support["status"])
	assert.NotEmpty(t, d["invoice_url"])

	// Retrying with the same idempotency key returns the same support and does
	// not create a second invoice.
	status, body = app.request(t, http.MethodPost, "/api/v1/supports",
		map[string]string{"X-Idempotency-Key": "sess-1"},
		map[string]interface{}{
			"contributor_username": "rina_art",
			"amount":               50000,
			"message":              "keep it up",
		})
	require.Equal(t, http.StatusCreated, status)
	retried := data(t, body)["support"].(map[string]interface{})
	assert.Equal(t, supportID, retried["id"])
	assert.Equal(t, int64(1), app.gateway.invoiceCalls.Load())

	// Gateway confirms payment.
	status, body = app.deliverWebhook(t, testCallbackToken, map[string]interface{}{
		"event":       "invoice.paid",
		"external_id": supportID,
		"status":      "PAID",
		"payment_id":  "pay-1",
		"paid_at":     time.Now().UTC().Format(time.RFC3339),
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, data(t, body)["processed"])

	b := app.balances(t, contributor.ID)
	assert.Equal(t, int64(50000), b.Pending)
	assert.Equal(t, int64(0), b.Available)

	// Redelivery of the same confirmation is deduplicated.
	status, body = app.deliverWebhook(t, testCallbackToken, map[string]interface{}{
		"event":       "invoice.paid",
		"external_id": supportID,
		"status":      "PAID",
		"payment_id":  "pay-1",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, data(t, body)["deduped"])
	assert.Equal(t, int64(50000), app.balances(t, contributor.ID).Pending)

	// Release the settled funds to the available balance.
	status, body = app.request(t, http.MethodPost, "/api/v1/supports/"+supportID+"/release",
		app.authHeader(t, contributor.UserID), nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, data(t, body)["released"])

	b = app.balances(t, contributor.ID)
	assert.Equal(t, int64(0), b.Pending)
	assert.Equal(t, int64(50000), b.Available)

	// Releasing again is a no-op thanks to the ledger idempotency keys.
	status, _ = app.request(t, http.MethodPost, "/api/v1/supports/"+supportID+"/release",
		app.authHeader(t, contributor.UserID), nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(50000), app.balances(t, contributor.ID).Available)
}

func TestIntegration_WithdrawalLifecycle(t *testing.T) {
	app := newTestApp(t)
	contributor := app.seedContributor("budi_dev")
	dest := app.seedDestination(contributor.ID)
	app.seedAvailable(t, contributor.ID, 50000)

	auth := app.authHeader(t, contributor.UserID)

	// Request a payout of 20000; the flat fee makes the reservation 24500.
	status, body := app.request(t, http.MethodPost, "/api/v1/withdrawals", auth,
		map[string]interface{}{
			"destination_id": dest.ID.String(),
			"amount":         20000,
		})
	require.Equal(t, http.StatusCreated, status)

	d := data(t, body)
	withdrawalID := d["id"].(string)
	assert.Equal(t, float64(24500), d["total_debit"])
	assert.Equal(t, "PROCESSING", d["status"])
	assert.NotEmpty(t, d["external_disbursement_id"])

	b := app.balances(t, contributor.ID)
	assert.Equal(t, int64(25500), b.Available)
	assert.Equal(t, int64(24500), b.Reserved)

	// The dashboard balance endpoint reports the same numbers.
	status, body = app.request(t, http.MethodGet, "/api/v1/withdrawals/balance", auth, nil)
	require.Equal(t, http.StatusOK, status)
	d = data(t, body)
	assert.Equal(t, float64(25500), d["available"])
	assert.Equal(t, float64(24500), d["reserved"])
	assert.Equal(t, "IDR", d["currency"])

	// Gateway confirms the disbursement with its actual fee.
	status, body = app.deliverWebhook(t, testCallbackToken, map[string]interface{}{
		"event":       "disbursement.completed",
		"id":          "disb-settled",
		"external_id": withdrawalID,
		"status":      "COMPLETED",
		"fee":         2000,
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, data(t, body)["processed"])

	b = app.balances(t, contributor.ID)
	assert.Equal(t, int64(25500), b.Available)
	assert.Equal(t, int64(0), b.Reserved)

	// Founder revenue is the flat fee minus the gateway's actual cost.
	status, body = app.request(t, http.MethodGet, "/api/v1/ledger/revenue", auth, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(2500), data(t, body)["total_revenue"])

	// History shows the completed withdrawal.
	status, body = app.request(t, http.MethodGet, "/api/v1/withdrawals", auth, nil)
	require.Equal(t, http.StatusOK, status)
	items := data(t, body)["items"].([]interface{})
	require.Len(t, items, 1)
	item := items[0].(map[string]interface{})
	assert.Equal(t, "COMPLETED", item["status"])
	assert.Equal(t, float64(2000), item["gateway_fee_actual"])
}

func TestIntegration_WithdrawalFailureRestoresFunds(t *testing.T) {
	app := newTestApp(t)
	contributor := app.seedContributor("citra_music")
	dest := app.seedDestination(contributor.ID)
	app.seedAvailable(t, contributor.ID, 50000)

	auth := app.authHeader(t, contributor.UserID)

	status, body := app.request(t, http.MethodPost, "/api/v1/withdrawals", auth,
		map[string]interface{}{
			"destination_id": dest.ID.String(),
			"amount":         20000,
		})
	require.Equal(t, http.StatusCreated, status)
	withdrawalID := data(t, body)["id"].(string)

	require.Equal(t, int64(24500), app.balances(t, contributor.ID).Reserved)

	status, _ = app.deliverWebhook(t, testCallbackToken, map[string]interface{}{
		"event":        "disbursement.failed",
		"external_id":  withdrawalID,
		"status":       "FAILED",
		"failure_code": "REJECTED_BY_BANK",
	})
	require.Equal(t, http.StatusOK, status)

	b := app.balances(t, contributor.ID)
	assert.Equal(t, int64(50000), b.Available)
	assert.Equal(t, int64(0), b.Reserved)

	stored, err := app.withdrawalRepo.GetByID(t.Context(), uuid.MustParse(withdrawalID))
	require.NoError(t, err)
	assert.Equal(t, domain.WithdrawalStatusFailed, stored.Status)
}

func TestIntegration_WithdrawalInsufficientBalance(t *testing.T) {
	app := newTestApp(t)
	contributor := app.seedContributor("dian_photo")
	dest := app.seedDestination(contributor.ID)
	app.seedAvailable(t, contributor.ID, 10000)

	status, body := app.request(t, http.MethodPost, "/api/v1/withdrawals",
		app.authHeader(t, contributor.UserID),
		map[string]interface{}{
			"destination_id": dest.ID.String(),
			"amount":         20000,
		})

	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "LED_002", body["error_code"])
	assert.Equal(t, int64(0), app.gateway.disbursementCalls.Load())

	b := app.balances(t, contributor.ID)
	assert.Equal(t, int64(10000), b.Available)
	assert.Equal(t, int64(0), b.Reserved)
}

func TestIntegration_WebhookInvalidTokenRejected(t *testing.T) {
	app := newTestApp(t)
	contributor := app.seedContributor("eko_writes")

	supportID := uuid.New().String()
	status, body := app.deliverWebhook(t, "wrong-token", map[string]interface{}{
		"event":       "invoice.paid",
		"external_id": supportID,
		"status":      "PAID",
	})

	require.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "SEC_001", body["error_code"])
	assert.Equal(t, int64(0), app.balances(t, contributor.ID).Pending)

	// The rejected delivery is still persisted for audit.
	ev, err := app.webhookRepo.GetByTypeAndKey(t.Context(), domain.WebhookEventSupport,
		domain.BuildWebhookDedupKey(domain.WebhookEventSupport, supportID))
	require.NoError(t, err)
	require.NotNil(t, ev)
	assert.False(t, ev.SignatureValid)
	assert.False(t, ev.Processed)
}

func TestIntegration_WithdrawalsAreRateLimited(t *testing.T) {
	app := newTestApp(t)
	contributor := app.seedContributor("fajar_games")
	dest := app.seedDestination(contributor.ID)

	auth := app.authHeader(t, contributor.UserID)
	payload := map[string]interface{}{
		"destination_id": dest.ID.String(),
		"amount":         20000,
	}

	// The withdrawal group allows 10 requests per window; every attempt fails
	// on insufficient balance but still counts against the limit. The loop
	// tolerates one window rollover mid-test.
	limited := false
	for i := 0; i < 25 && !limited; i++ {
		status, body := app.request(t, http.MethodPost, "/api/v1/withdrawals", auth, payload)
		switch status {
		case http.StatusBadRequest:
			assert.Equal(t, "LED_002", body["error_code"])
		case http.StatusTooManyRequests:
			assert.Equal(t, "RATE_001", body["error_code"])
			limited = true
		default:
			t.Fatalf("unexpected status %d: %v", status, body)
		}
	}
	require.True(t, limited, "rate limit never triggered")
}

func TestIntegration_ProtectedRoutesRequireToken(t *testing.T) {
	app := newTestApp(t)

	status, body := app.request(t, http.MethodGet, "/api/v1/withdrawals", nil, nil)
	require.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "SEC_002", body["error_code"])

	status, _ = app.request(t, http.MethodGet, "/api/v1/withdrawals",
		map[string]string{"Authorization": "Bearer not-a-token"}, nil)
	require.Equal(t, http.StatusUnauthorized, status)
}
