package handler

import (
	"kontribo-backend/internal/adapter/http/dto"
	"kontribo-backend/internal/adapter/http/middleware"
	"kontribo-backend/internal/core/domain"
	"kontribo-backend/internal/core/ports"
	"kontribo-backend/pkg/apperror"
	"kontribo-backend/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WithdrawalHandler handles payout endpoints.
type WithdrawalHandler struct {
	withdrawalSvc ports.WithdrawalService
	currency      string
}

// NewWithdrawalHandler creates a new WithdrawalHandler.
func NewWithdrawalHandler(withdrawalSvc ports.WithdrawalService, currency string) *WithdrawalHandler {
	return &WithdrawalHandler{withdrawalSvc: withdrawalSvc, currency: currency}
}

// RequestWithdrawal handles POST /api/v1/withdrawals.
func (h *WithdrawalHandler) RequestWithdrawal(c *gin.Context) {
	userID, ok := c.Get(middleware.CtxUserID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.CreateWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	destinationID, err := uuid.Parse(req.DestinationID)
	if err != nil {
		response.Error(c, apperror.Validation("invalid destination id"))
		return
	}

	result, err := h.withdrawalSvc.RequestWithdrawal(c.Request.Context(), ports.RequestWithdrawalInput{
		UserID:        userID.(uuid.UUID),
		DestinationID: destinationID,
		AmountToUser:  req.Amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toWithdrawalResponse(result))
}

// List handles GET /api/v1/withdrawals.
func (h *WithdrawalHandler) List(c *gin.Context) {
	userID, ok := c.Get(middleware.CtxUserID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	list, err := h.withdrawalSvc.ListByUser(c.Request.Context(), userID.(uuid.UUID))
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.WithdrawalResponse, 0, len(list))
	for i := range list {
		items = append(items, toWithdrawalResponse(&list[i]))
	}

	response.OK(c, dto.WithdrawalListResponse{Items: items})
}

// GetBalances handles GET /api/v1/withdrawals/balance.
func (h *WithdrawalHandler) GetBalances(c *gin.Context) {
	userID, ok := c.Get(middleware.CtxUserID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	balances, err := h.withdrawalSvc.GetBalancesForUser(c.Request.Context(), userID.(uuid.UUID))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BalancesResponse{
		Available: balances.Available,
		Pending:   balances.Pending,
		Reserved:  balances.Reserved,
		Currency:  h.currency,
	})
}

// toWithdrawalResponse converts domain.WithdrawalRequest to DTO.
func toWithdrawalResponse(w *domain.WithdrawalRequest) dto.WithdrawalResponse {
	resp := dto.WithdrawalResponse{
		ID:                     w.ID.String(),
		DestinationID:          w.DestinationID.String(),
		AmountToUser:           w.AmountToUser,
		FeeFlat:                w.FeeFlat,
		TotalDebit:             w.TotalDebit,
		Currency:               w.Currency,
		Status:                 string(w.Status),
		ExternalDisbursementID: w.ExternalDisbursementID,
		GatewayFeeActual:       w.GatewayFeeActual,
		RequestedAt:            w.RequestedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if w.ProcessedAt != nil {
		processedAt := w.ProcessedAt.Format("2006-01-02T15:04:05Z07:00")
		resp.ProcessedAt = &processedAt
	}
	if w.CompletedAt != nil {
		completedAt := w.CompletedAt.Format("2006-01-02T15:04:05Z07:00")
		resp.CompletedAt = &completedAt
	}
	return resp
}
