package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	plain := New("VAL_001", "Bad input", http.StatusBadRequest)
	assert.Equal(t, "[VAL_001] Bad input", plain.Error())

	wrapped := Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, errors.New("conn refused"))
	assert.Equal(t, "[SYS_001] Internal server error: conn refused", wrapped.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	inner := errors.New("timeout")
	err := ErrGateway(inner)

	assert.ErrorIs(t, err, inner)

	var appErr *AppError
	require.ErrorAs(t, error(err), &appErr)
	assert.Equal(t, "GW_001", appErr.Code)
}

func TestErrorCatalog(t *testing.T) {
	cases := []struct {
		err    *AppError
		code   string
		status int
	}{
		{Validation("bad"), "VAL_001", http.StatusBadRequest},
		{ErrInvalidAmount(1000), "VAL_002", http.StatusBadRequest},
		{ErrInactiveDestination(), "VAL_003", http.StatusBadRequest},
		{ErrNotFound("Contributor"), "RES_001", http.StatusNotFound},
		{ErrStateConflict("wrong state"), "LED_001", http.StatusBadRequest},
		{ErrInsufficientBalance(), "LED_002", http.StatusBadRequest},
		{ErrGateway(errors.New("x")), "GW_001", http.StatusBadGateway},
		{ErrGatewayNotConfigured(), "GW_002", http.StatusInternalServerError},
		{ErrInvalidCallbackToken(), "SEC_001", http.StatusUnauthorized},
		{ErrInvalidToken(), "SEC_002", http.StatusUnauthorized},
		{ErrContributorSuspended(), "SEC_003", http.StatusForbidden},
		{ErrRateLimitExceeded(), "RATE_001", http.StatusTooManyRequests},
		{InternalError(errors.New("x")), "SYS_001", http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.code, tc.err.Code)
		assert.Equal(t, tc.status, tc.err.HTTPStatus, "code %s", tc.code)
	}
}

func TestErrInvalidAmount_MessageIncludesMinimum(t *testing.T) {
	assert.Equal(t, "Minimum amount is 1000", ErrInvalidAmount(1000).Message)
}
