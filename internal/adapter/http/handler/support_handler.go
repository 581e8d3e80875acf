package handler

import (
	"kontribo-backend/internal/adapter/http/dto"
	"kontribo-backend/internal/core/domain"
	"kontribo-backend/internal/core/ports"
	"kontribo-backend/pkg/apperror"
	"kontribo-backend/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderIdempotencyKey carries the client's idempotency key on support
// creation. Retries with the same key return the original support.
const HeaderIdempotencyKey = "X-Idempotency-Key"

// SupportHandler handles donation endpoints.
type SupportHandler struct {
	supportSvc ports.SupportService
}

// NewSupportHandler creates a new SupportHandler.
func NewSupportHandler(supportSvc ports.SupportService) *SupportHandler {
	return &SupportHandler{supportSvc: supportSvc}
}

// CreateSupport handles POST /api/v1/supports.
func (h *SupportHandler) CreateSupport(c *gin.Context) {
	idempotencyKey := c.GetHeader(HeaderIdempotencyKey)
	if idempotencyKey == "" {
		response.Error(c, apperror.Validation("X-Idempotency-Key header is required"))
		return
	}

	var req dto.CreateSupportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.supportSvc.CreateSupport(c.Request.Context(), ports.CreateSupportRequest{
		ContributorUsername: req.ContributorUsername,
		Amount:              req.Amount,
		Message:             req.Message,
		IsAnonymous:         req.IsAnonymous,
		SupporterName:       req.SupporterName,
		SupporterEmail:      req.SupporterEmail,
		IdempotencyKey:      idempotencyKey,
		SuccessRedirectURL:  req.SuccessRedirectURL,
		FailureRedirectURL:  req.FailureRedirectURL,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.CreateSupportResponse{
		Support:    toSupportResponse(result.Support),
		InvoiceURL: result.InvoiceURL,
	})
}

// Release handles POST /api/v1/supports/:id/release.
func (h *SupportHandler) Release(c *gin.Context) {
	supportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid support id"))
		return
	}

	if err := h.supportSvc.ReleaseToAvailable(c.Request.Context(), supportID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ReleaseSupportResponse{
		SupportID: supportID.String(),
		Released:  true,
	})
}

// toSupportResponse converts domain.SupportTransaction to DTO. Anonymous
// supports never expose the supporter's name.
func toSupportResponse(s *domain.SupportTransaction) dto.SupportResponse {
	resp := dto.SupportResponse{
		ID:                s.ID.String(),
		ContributorID:     s.ContributorID.String(),
		AmountGross:       s.AmountGross,
		Currency:          s.Currency,
		Message:           s.Message,
		IsAnonymous:       s.IsAnonymous,
		Status:            string(s.Status),
		ExternalInvoiceID: s.ExternalInvoiceID,
		CreatedAt:         s.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if !s.IsAnonymous {
		resp.SupporterName = s.SupporterName
	}
	if s.PaidAt != nil {
		paidAt := s.PaidAt.Format("2006-01-02T15:04:05Z07:00")
		resp.PaidAt = &paidAt
	}
	if s.ExpiredAt != nil {
		expiredAt := s.ExpiredAt.Format("2006-01-02T15:04:05Z07:00")
		resp.ExpiredAt = &expiredAt
	}
	return resp
}
