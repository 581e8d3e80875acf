package handler

import (
	"io"

	"kontribo-backend/internal/core/ports"
	"kontribo-backend/pkg/apperror"
	"kontribo-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// HeaderCallbackToken is the gateway's shared-secret verification header.
const HeaderCallbackToken = "X-Callback-Token"

// WebhookHandler receives payment gateway callbacks.
type WebhookHandler struct {
	webhookSvc ports.WebhookService
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(webhookSvc ports.WebhookService) *WebhookHandler {
	return &WebhookHandler{webhookSvc: webhookSvc}
}

// HandleXenditCallback handles POST /api/v1/webhooks/xendit. The raw body is
// passed through untouched so the audit record keeps the exact delivery.
func (h *WebhookHandler) HandleXenditCallback(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, apperror.Validation("cannot read request body"))
		return
	}

	result, err := h.webhookSvc.HandleGatewayCallback(c.Request.Context(), ports.WebhookCallback{
		Token:   c.GetHeader(HeaderCallbackToken),
		RawBody: body,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}
