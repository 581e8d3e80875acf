package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Validation (VAL) ----

// Validation returns a generic validation error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

func ErrInvalidAmount(minimum int64) *AppError {
	return New("VAL_002", fmt.Sprintf("Minimum amount is %d", minimum), http.StatusBadRequest)
}

func ErrInactiveDestination() *AppError {
	return New("VAL_003", "Payout destination is inactive", http.StatusBadRequest)
}

// ---- Lookup (RES) ----

func ErrNotFound(entity string) *AppError {
	return New("RES_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Lifecycle & balance (LED) ----

func ErrStateConflict(message string) *AppError {
	return New("LED_001", message, http.StatusBadRequest)
}

func ErrInsufficientBalance() *AppError {
	return New("LED_002", "Insufficient available balance", http.StatusBadRequest)
}

// ---- Gateway (GW) ----

// ErrGateway wraps an upstream provider failure. Never retried internally;
// the caller owns retry/backoff.
func ErrGateway(err error) *AppError {
	return Wrap("GW_001", "Payment gateway request failed", http.StatusBadGateway, err)
}

func ErrGatewayNotConfigured() *AppError {
	return New("GW_002", "Payment gateway credentials are not configured", http.StatusInternalServerError)
}

// ---- Security & authentication (SEC) ----

func ErrInvalidCallbackToken() *AppError {
	return New("SEC_001", "Invalid webhook callback token", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("SEC_002", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrContributorSuspended() *AppError {
	return New("SEC_003", "Contributor account is suspended", http.StatusForbidden)
}

// ---- Rate limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
