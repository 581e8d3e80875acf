package handler

import (
	"net/http"

	"kontribo-backend/internal/adapter/http/dto"
	"kontribo-backend/internal/core/ports"
	"kontribo-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// LedgerHandler handles ledger read endpoints.
type LedgerHandler struct {
	ledgerSvc ports.LedgerService
	currency  string
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerSvc ports.LedgerService, currency string) *LedgerHandler {
	return &LedgerHandler{ledgerSvc: ledgerSvc, currency: currency}
}

// GetFounderRevenue handles GET /api/v1/ledger/revenue.
func (h *LedgerHandler) GetFounderRevenue(c *gin.Context) {
	total, err := h.ledgerSvc.SumFounderRevenue(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.RevenueResponse{
		TotalRevenue: total,
		Currency:     h.currency,
	})
}

// HealthCheck handles GET /health. It pings each dependency and reports
// degraded with a 503 if any check fails.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
