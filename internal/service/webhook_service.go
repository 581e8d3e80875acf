package service

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"kontribo-backend/internal/core/domain"
	"kontribo-backend/internal/core/ports"
	"kontribo-backend/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const webhookDedupTTL = 24 * time.Hour

// gatewayEvent is the subset of a gateway callback body we act on. Fields not
// listed here are kept only in the raw payload audit record.
type gatewayEvent struct {
	Event       string     `json:"event"`
	ID          string     `json:"id"`
	ExternalID  string     `json:"external_id"`
	Status      string     `json:"status"`
	PaidAt      *time.Time `json:"paid_at"`
	ExpiryDate  *time.Time `json:"expiry_date"`
	PaymentID   string     `json:"payment_id"`
	InvoiceURL  string     `json:"invoice_url"`
	Fee         int64      `json:"fee"`
	FailureCode string     `json:"failure_code"`
}

// WebhookServiceImpl implements ports.WebhookService: verify the callback
// token, classify, dedup, persist, then dispatch to the lifecycle services.
type WebhookServiceImpl struct {
	webhookRepo   ports.WebhookEventRepository
	dedupCache    ports.WebhookDedupCache
	supportSvc    ports.SupportService
	withdrawalSvc ports.WithdrawalService
	callbackToken string
	log           zerolog.Logger
}

// NewWebhookService creates a new WebhookServiceImpl.
func NewWebhookService(
	webhookRepo ports.WebhookEventRepository,
	dedupCache ports.WebhookDedupCache,
	supportSvc ports.SupportService,
	withdrawalSvc ports.WithdrawalService,
	callbackToken string,
	log zerolog.Logger,
) *WebhookServiceImpl {
	return &WebhookServiceImpl{
		webhookRepo:   webhookRepo,
		dedupCache:    dedupCache,
		supportSvc:    supportSvc,
		withdrawalSvc: withdrawalSvc,
		callbackToken: callbackToken,
		log:           log,
	}
}

// HandleGatewayCallback processes one inbound delivery. Duplicate deliveries
// of the same logical event converge on a single persisted row and report
// deduped=true; an invalid token is persisted for audit and rejected.
func (s *WebhookServiceImpl) HandleGatewayCallback(ctx context.Context, cb ports.WebhookCallback) (*ports.WebhookResult, error) {
	var ev gatewayEvent
	if err := json.Unmarshal(cb.RawBody, &ev); err != nil {
		return nil, apperror.Validation("Malformed webhook payload")
	}
	if ev.ExternalID == "" {
		return nil, apperror.Validation("Webhook payload is missing external_id")
	}

	eventType := classifyEvent(ev)
	dedupKey := domain.BuildWebhookDedupKey(eventType, ev.ExternalID)
	tokenValid := subtle.ConstantTimeCompare([]byte(cb.Token), []byte(s.callbackToken)) == 1

	if !tokenValid {
		// Persist the rejected delivery for audit, then refuse it.
		event := s.newEvent(eventType, ev.ExternalID, dedupKey, cb.RawBody, false)
		stored, _, err := s.webhookRepo.Create(ctx, event)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("persist rejected webhook: %w", err))
		}
		if err := s.webhookRepo.MarkFailed(ctx, stored.ID, "invalid callback token"); err != nil {
			s.log.Warn().Err(err).Str("event_id", stored.ID.String()).Msg("failed to mark rejected webhook")
		}
		s.log.Warn().
			Str("type", string(eventType)).
			Str("external_id", ev.ExternalID).
			Msg("webhook rejected: invalid callback token")
		return nil, apperror.ErrInvalidCallbackToken()
	}

	// Fast path: Redis remembers recently processed deliveries. Best effort;
	// the durable row below is the source of truth.
	cached, err := s.dedupCache.IsProcessed(ctx, dedupKey)
	if err != nil {
		s.log.Warn().Err(err).Str("dedup_key", dedupKey).Msg("redis dedup check failed, falling through to DB")
	}
	if cached {
		return &ports.WebhookResult{Processed: true, Deduped: true}, nil
	}

	event := s.newEvent(eventType, ev.ExternalID, dedupKey, cb.RawBody, true)
	stored, dup, err := s.webhookRepo.Create(ctx, event)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("persist webhook: %w", err))
	}
	if dup && stored.Processed {
		return &ports.WebhookResult{Processed: true, Deduped: true}, nil
	}
	// A duplicate row that never finished processing is retried here.

	if err := s.dispatch(ctx, eventType, ev); err != nil {
		if markErr := s.webhookRepo.MarkFailed(ctx, stored.ID, err.Error()); markErr != nil {
			s.log.Warn().Err(markErr).Str("event_id", stored.ID.String()).Msg("failed to record webhook processing error")
		}
		return nil, err
	}

	if err := s.webhookRepo.MarkProcessed(ctx, stored.ID); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("mark webhook processed: %w", err))
	}
	if err := s.dedupCache.MarkProcessed(ctx, dedupKey, webhookDedupTTL); err != nil {
		s.log.Warn().Err(err).Str("dedup_key", dedupKey).Msg("failed to cache webhook dedup key")
	}

	s.log.Info().
		Str("type", string(eventType)).
		Str("external_id", ev.ExternalID).
		Str("status", ev.Status).
		Bool("deduped", dup).
		Msg("webhook processed")

	return &ports.WebhookResult{Processed: true, Deduped: dup}, nil
}

func (s *WebhookServiceImpl) newEvent(t domain.WebhookEventType, externalID, dedupKey string, raw []byte, signatureValid bool) *domain.WebhookEvent {
	return &domain.WebhookEvent{
		ID:             uuid.New(),
		Type:           t,
		ExternalID:     externalID,
		IdempotencyKey: dedupKey,
		SignatureValid: signatureValid,
		Payload:        string(raw),
		PayloadHash:    domain.HashPayload(raw),
		ReceivedAt:     time.Now().UTC(),
	}
}

func (s *WebhookServiceImpl) dispatch(ctx context.Context, t domain.WebhookEventType, ev gatewayEvent) error {
	refID, err := uuid.Parse(ev.ExternalID)
	if err != nil {
		return apperror.Validation(fmt.Sprintf("Webhook external_id is not a valid id: %s", ev.ExternalID))
	}

	switch t {
	case domain.WebhookEventSupport:
		return s.dispatchSupport(ctx, refID, ev)
	case domain.WebhookEventWithdrawal:
		return s.dispatchWithdrawal(ctx, refID, ev)
	default:
		return apperror.Validation(fmt.Sprintf("Unknown webhook event type: %s", t))
	}
}

func (s *WebhookServiceImpl) dispatchSupport(ctx context.Context, supportID uuid.UUID, ev gatewayEvent) error {
	switch ev.Status {
	case "PAID", "SETTLED":
		paidAt := time.Now().UTC()
		if ev.PaidAt != nil {
			paidAt = ev.PaidAt.UTC()
		}
		var paymentID *string
		if ev.PaymentID != "" {
			paymentID = &ev.PaymentID
		}
		_, err := s.supportSvc.HandleInvoicePaid(ctx, supportID, paymentID, paidAt)
		return err
	case "EXPIRED":
		_, err := s.supportSvc.HandleInvoiceExpired(ctx, supportID)
		return err
	case "FAILED":
		_, err := s.supportSvc.HandleInvoiceFailed(ctx, supportID)
		return err
	default:
		return apperror.Validation(fmt.Sprintf("Unhandled invoice status: %s", ev.Status))
	}
}

func (s *WebhookServiceImpl) dispatchWithdrawal(ctx context.Context, withdrawalID uuid.UUID, ev gatewayEvent) error {
	switch ev.Status {
	case "COMPLETED", "PAID", "SUCCEEDED":
		var disbursementID *string
		if ev.ID != "" {
			disbursementID = &ev.ID
		}
		_, err := s.withdrawalSvc.HandleDisbursementCompleted(ctx, withdrawalID, disbursementID, ev.Fee)
		return err
	case "FAILED":
		reason := ev.FailureCode
		if reason == "" {
			reason = "disbursement failed"
		}
		_, err := s.withdrawalSvc.HandleDisbursementFailed(ctx, withdrawalID, reason)
		return err
	default:
		return apperror.Validation(fmt.Sprintf("Unhandled disbursement status: %s", ev.Status))
	}
}

// classifyEvent decides which lifecycle a callback belongs to. The explicit
// event field wins; older payloads without one are classified by invoice-only
// fields.
func classifyEvent(ev gatewayEvent) domain.WebhookEventType {
	switch {
	case strings.HasPrefix(ev.Event, "invoice."):
		return domain.WebhookEventSupport
	case strings.HasPrefix(ev.Event, "disbursement."), strings.HasPrefix(ev.Event, "payout."):
		return domain.WebhookEventWithdrawal
	}
	if ev.PaidAt != nil || ev.ExpiryDate != nil || ev.InvoiceURL != "" {
		return domain.WebhookEventSupport
	}
	return domain.WebhookEventWithdrawal
}
