package postgres

import (
	"context"
	"errors"
	"fmt"

	"kontribo-backend/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const webhookEventColumns = `id, type, external_id, idempotency_key, signature_valid, processed,
	processing_error, payload, payload_hash, received_at, processed_at`

// WebhookEventRepo implements ports.WebhookEventRepository. Every callback is
// persisted before processing so replays can be recognized after a crash.
type WebhookEventRepo struct {
	pool Pool
}

// NewWebhookEventRepo creates a new WebhookEventRepo.
func NewWebhookEventRepo(pool Pool) *WebhookEventRepo {
	return &WebhookEventRepo{pool: pool}
}

// GetByTypeAndKey fetches a prior delivery of the same logical event.
func (r *WebhookEventRepo) GetByTypeAndKey(ctx context.Context, t domain.WebhookEventType, idempotencyKey string) (*domain.WebhookEvent, error) {
	query := `SELECT ` + webhookEventColumns + ` FROM webhook_events WHERE type = $1 AND idempotency_key = $2`
	return r.scanEvent(r.pool.QueryRow(ctx, query, t, idempotencyKey))
}

// Create persists an event row. A collision on (type, idempotency_key)
// returns the existing row so concurrent duplicate deliveries converge on a
// single record.
func (r *WebhookEventRepo) Create(ctx context.Context, e *domain.WebhookEvent) (*domain.WebhookEvent, bool, error) {
	query := `INSERT INTO webhook_events (` + webhookEventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (type, idempotency_key) DO NOTHING`

	tag, err := r.pool.Exec(ctx, query,
		e.ID, e.Type, e.ExternalID, e.IdempotencyKey, e.SignatureValid, e.Processed,
		e.ProcessingError, e.Payload, e.PayloadHash, e.ReceivedAt, e.ProcessedAt,
	)
	if err != nil {
		return nil, false, fmt.Errorf("insert webhook event: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return e, false, nil
	}

	existing, err := r.GetByTypeAndKey(ctx, e.Type, e.IdempotencyKey)
	if err != nil {
		return nil, false, err
	}
	if existing == nil {
		return nil, false, fmt.Errorf("insert webhook event: duplicate not found for key %q", e.IdempotencyKey)
	}
	return existing, true, nil
}

// MarkProcessed records successful processing.
func (r *WebhookEventRepo) MarkProcessed(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE webhook_events SET processed = TRUE, processing_error = '', processed_at = NOW() WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("mark webhook processed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("webhook event not found: %s", id)
	}
	return nil
}

// MarkFailed records a processing failure so the row stays replayable.
func (r *WebhookEventRepo) MarkFailed(ctx context.Context, id uuid.UUID, processingError string) error {
	query := `UPDATE webhook_events SET processing_error = $1 WHERE id = $2`

	tag, err := r.pool.Exec(ctx, query, processingError, id)
	if err != nil {
		return fmt.Errorf("mark webhook failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("webhook event not found: %s", id)
	}
	return nil
}

func (r *WebhookEventRepo) scanEvent(row pgx.Row) (*domain.WebhookEvent, error) {
	e := &domain.WebhookEvent{}
	err := row.Scan(
		&e.ID, &e.Type, &e.ExternalID, &e.IdempotencyKey, &e.SignatureValid, &e.Processed,
		&e.ProcessingError, &e.Payload, &e.PayloadHash, &e.ReceivedAt, &e.ProcessedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan webhook event: %w", err)
	}
	return e, nil
}
