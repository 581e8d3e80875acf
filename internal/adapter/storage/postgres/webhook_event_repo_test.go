package postgres

import (
	"context"
	"testing"
	"time"

	"kontribo-backend/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWebhookEvent() *domain.WebhookEvent {
	payload := []byte(`{"id":"inv-1","external_id":"sp-1","status":"PAID"}`)
	return &domain.WebhookEvent{
		ID:             uuid.New(),
		Type:           domain.WebhookEventSupport,
		ExternalID:     "inv-1",
		IdempotencyKey: "XENDIT_SUPPORT:inv-1",
		SignatureValid: true,
		Payload:        string(payload),
		PayloadHash:    domain.HashPayload(payload),
		ReceivedAt:     time.Now().UTC().Truncate(time.Microsecond),
	}
}

func webhookColumnNames() []string {
	return []string{"id", "type", "external_id", "idempotency_key", "signature_valid", "processed",
		"processing_error", "payload", "payload_hash", "received_at", "processed_at"}
}

func webhookRow(e *domain.WebhookEvent) *pgxmock.Rows {
	return pgxmock.NewRows(webhookColumnNames()).AddRow(
		e.ID, e.Type, e.ExternalID, e.IdempotencyKey, e.SignatureValid, e.Processed,
		e.ProcessingError, e.Payload, e.PayloadHash, e.ReceivedAt, e.ProcessedAt,
	)
}

func TestWebhookEventRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWebhookEventRepo(mock)
	e := newTestWebhookEvent()

	mock.ExpectExec("INSERT INTO webhook_events").
		WithArgs(e.ID, e.Type, e.ExternalID, e.IdempotencyKey, e.SignatureValid, e.Processed,
			e.ProcessingError, e.Payload, e.PayloadHash, e.ReceivedAt, e.ProcessedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	created, dup, err := repo.Create(context.Background(), e)
	require.NoError(t, err)
	assert.False(t, dup)
	assert.Equal(t, e.ID, created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWebhookEventRepo_Create_ConcurrentDuplicate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWebhookEventRepo(mock)
	existing := newTestWebhookEvent()
	retry := newTestWebhookEvent()
	retry.IdempotencyKey = existing.IdempotencyKey

	mock.ExpectExec("INSERT INTO webhook_events").
		WithArgs(retry.ID, retry.Type, retry.ExternalID, retry.IdempotencyKey, retry.SignatureValid, retry.Processed,
			retry.ProcessingError, retry.Payload, retry.PayloadHash, retry.ReceivedAt, retry.ProcessedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))
	mock.ExpectQuery("SELECT .+ FROM webhook_events WHERE type .+ idempotency_key").
		WithArgs(retry.Type, retry.IdempotencyKey).
		WillReturnRows(webhookRow(existing))

	result, dup, err := repo.Create(context.Background(), retry)
	require.NoError(t, err)
	assert.True(t, dup)
	assert.Equal(t, existing.ID, result.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWebhookEventRepo_GetByTypeAndKey_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWebhookEventRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM webhook_events").
		WithArgs(domain.WebhookEventWithdrawal, "XENDIT_WITHDRAWAL:disb-1").
		WillReturnRows(pgxmock.NewRows(webhookColumnNames()))

	result, err := repo.GetByTypeAndKey(context.Background(), domain.WebhookEventWithdrawal, "XENDIT_WITHDRAWAL:disb-1")
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWebhookEventRepo_MarkProcessed(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWebhookEventRepo(mock)
	id := uuid.New()

	mock.ExpectExec("UPDATE webhook_events SET processed").
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.MarkProcessed(context.Background(), id)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWebhookEventRepo_MarkFailed(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWebhookEventRepo(mock)
	id := uuid.New()

	mock.ExpectExec("UPDATE webhook_events SET processing_error").
		WithArgs("invalid callback token", id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.MarkFailed(context.Background(), id, "invalid callback token")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
