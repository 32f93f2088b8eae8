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

// ---- Lookup (NF) ----

func ErrNotFound(entity string) *AppError {
	return New("NF_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrInvalidBank(bankID string) *AppError {
	return New("NF_002", fmt.Sprintf("Unknown bank: %s", bankID), http.StatusBadRequest)
}

// ---- Verification (VER) ----

// ErrDecryptionFailure is never surfaced over HTTP: a failed open is a
// negative verification outcome, absorbed into session state by the
// verification coordinator. The constructor exists so the envelope codec
// can signal the condition with a typed error.
func ErrDecryptionFailure(err error) *AppError {
	return Wrap("VER_001", "Failed to decrypt data - data may be corrupted or tampered with", http.StatusInternalServerError, err)
}

func ErrAlreadyProcessing(bankID string) *AppError {
	return New("VER_002", fmt.Sprintf("Verification already in progress for %s", bankID), http.StatusTooManyRequests)
}

func ErrSessionNotVerified() *AppError {
	return New("VER_003", "Session not verified", http.StatusConflict)
}

// ---- Settlement (PAY) ----

func ErrInsufficientBalance() *AppError {
	return New("PAY_001", "Insufficient balance", http.StatusPaymentRequired)
}

func ErrInvalidAmount() *AppError {
	return New("PAY_002", "Invalid amount", http.StatusBadRequest)
}

func ErrUnsupportedDirection(payerCountry, merchantCountry string) *AppError {
	return New("PAY_003",
		fmt.Sprintf("Unsupported payment direction: %s -> %s", payerCountry, merchantCountry),
		http.StatusBadRequest)
}

// ---- Ledger (LDG) ----

func ErrLedgerCallFailure(err error) *AppError {
	return Wrap("LDG_001", "Ledger call failed", http.StatusBadGateway, err)
}

func ErrLedgerInconsistency(sessionID string) *AppError {
	return New("LDG_002",
		fmt.Sprintf("Ledger consensus disagrees with local verification for session %s", sessionID),
		http.StatusConflict)
}

// ---- Auth (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_001", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

func ErrStorageFailure(err error) *AppError {
	return Wrap("SYS_002", "Bank store failure", http.StatusInternalServerError, err)
}

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New("PAY_002", message, http.StatusBadRequest)
}
