package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("PAY_001", "Insufficient balance", http.StatusPaymentRequired),
			expected: "[PAY_001] Insufficient balance",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("LDG_001", "Ledger call failed", http.StatusBadGateway, fmt.Errorf("connection refused")),
			expected: "[LDG_001] Ledger call failed: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("PAY_001", "test", http.StatusBadRequest)
	assert.Nil(t, appErr.Unwrap())
}

func TestVerificationErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"AlreadyProcessing", ErrAlreadyProcessing("THAI_BANK_001"), "VER_002", 429},
		{"SessionNotVerified", ErrSessionNotVerified(), "VER_003", 409},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestDecryptionFailureWraps(t *testing.T) {
	inner := fmt.Errorf("crypto/rsa: decryption error")
	err := ErrDecryptionFailure(inner)
	assert.Equal(t, "VER_001", err.Code)
	assert.True(t, errors.Is(err, inner))
}

func TestSettlementErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"InsufficientBalance", ErrInsufficientBalance(), "PAY_001", 402},
		{"InvalidAmount", ErrInvalidAmount(), "PAY_002", 400},
		{"UnsupportedDirection", ErrUnsupportedDirection("Thailand", "Thailand"), "PAY_003", 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestLedgerErrors(t *testing.T) {
	inner := fmt.Errorf("gateway timeout")
	callErr := ErrLedgerCallFailure(inner)
	assert.Equal(t, "LDG_001", callErr.Code)
	assert.Equal(t, 502, callErr.HTTPStatus)
	assert.True(t, errors.Is(callErr, inner))

	consErr := ErrLedgerInconsistency("session-1")
	assert.Equal(t, "LDG_002", consErr.Code)
	assert.Equal(t, 409, consErr.HTTPStatus)
	assert.Contains(t, consErr.Message, "session-1")
}

func TestUnsupportedDirectionMessage(t *testing.T) {
	err := ErrUnsupportedDirection("Singapore", "Thailand")
	assert.Contains(t, err.Message, "Singapore -> Thailand")
}

func TestNotFoundEntity(t *testing.T) {
	err := ErrNotFound("Merchant")
	assert.Contains(t, err.Message, "Merchant")
	assert.Equal(t, "NF_001", err.Code)
	assert.Equal(t, http.StatusNotFound, err.HTTPStatus)
}

func TestRateLimitError(t *testing.T) {
	err := ErrRateLimitExceeded()
	assert.Equal(t, "RATE_001", err.Code)
	assert.Equal(t, 429, err.HTTPStatus)
}
