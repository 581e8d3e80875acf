package integration

import (
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A gateway redelivering the same payment confirmation in parallel must
// credit the contributor exactly once, no matter how the requests interleave.
func TestConcurrency_DuplicateWebhookDeliveries(t *testing.T) {
	app := newTestApp(t)
	contributor := app.seedContributor("gilang_art")

	status, body := app.request(t, http.MethodPost, "/api/v1/supports",
		map[string]string{"X-Idempotency-Key": "sess-conc"},
		map[string]interface{}{
			"contributor_username": "gilang_art",
			"amount":               50000,
		})
	require.Equal(t, http.StatusCreated, status)
	supportID := data(t, body)["support"].(map[string]interface{})["id"].(string)

	payload := map[string]interface{}{
		"event":       "invoice.paid",
		"external_id": supportID,
		"status":      "PAID",
		"payment_id":  "pay-conc",
		"paid_at":     time.Now().UTC().Format(time.RFC3339),
	}

	const deliveries = 25
	var ok, failed atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < deliveries; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			status, _ := app.deliverWebhook(t, testCallbackToken, payload)
			if status == http.StatusOK {
				ok.Add(1)
			} else {
				failed.Add(1)
			}
		}()
	}
	wg.Wait()

	t.Logf("deliveries=%d ok=%d failed=%d", deliveries, ok.Load(), failed.Load())
	require.GreaterOrEqual(t, ok.Load(), int64(1))

	// Exactly one PENDING credit regardless of redelivery count.
	b := app.balances(t, contributor.ID)
	assert.Equal(t, int64(50000), b.Pending)
	assert.Equal(t, 1, app.ledgerRepo.countEntries(uuid.MustParse(supportID)))

	stored, err := app.supportRepo.GetByID(t.Context(), uuid.MustParse(supportID))
	require.NoError(t, err)
	assert.Equal(t, "PAID", string(stored.Status))
}

// Parallel withdrawal requests race for the same available balance. The
// balance check and reservation run under one lock, so the bucket can never
// go negative however many requests land at once.
func TestConcurrency_WithdrawalReservationsNeverOverdraw(t *testing.T) {
	app := newTestApp(t)
	contributor := app.seedContributor("hana_code")
	dest := app.seedDestination(contributor.ID)
	app.seedAvailable(t, contributor.ID, 50000)

	auth := app.authHeader(t, contributor.UserID)
	payload := map[string]interface{}{
		"destination_id": dest.ID.String(),
		"amount":         20000, // total debit 24500; only two fit in 50000
	}

	const attempts = 8
	var accepted, rejected atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			status, body := app.request(t, http.MethodPost, "/api/v1/withdrawals", auth, payload)
			switch status {
			case http.StatusCreated:
				accepted.Add(1)
			case http.StatusBadRequest:
				assert.Equal(t, "LED_002", body["error_code"])
				rejected.Add(1)
			default:
				t.Errorf("unexpected status %d: %v", status, body)
			}
		}()
	}
	wg.Wait()

	t.Logf("attempts=%d accepted=%d rejected=%d", attempts, accepted.Load(), rejected.Load())
	assert.Equal(t, int64(2), accepted.Load())
	assert.Equal(t, int64(attempts-2), rejected.Load())
	assert.Equal(t, int64(2), app.gateway.disbursementCalls.Load())

	b := app.balances(t, contributor.ID)
	assert.Equal(t, int64(50000-2*24500), b.Available)
	assert.Equal(t, int64(2*24500), b.Reserved)
	assert.GreaterOrEqual(t, b.Available, int64(0))
}
