package ports

import (
	"context"
	"time"

	"crossborder-orchestrator/internal/core/domain"
)

//go:generate mockgen -source=services.go -destination=mocks/services.go -package=mocks

// EnvelopeCodec seals one verification payload per recipient bank and
// opens it with that bank's private key. The same payload is always
// sealed independently per recipient: two calls, two ciphertexts.
type EnvelopeCodec interface {
	// Seal encrypts the payload for the holder of the given PEM public
	// key (RSA-OAEP/SHA-256) and returns a base64 ciphertext.
	Seal(payload domain.VerificationPayload, publicKeyPEM string) (string, error)
	// Open decrypts a ciphertext with the given PEM private key. It
	// fails with a DecryptionFailure when the ciphertext was not sealed
	// for that key or has been corrupted.
	Open(ciphertext string, privateKeyPEM string) (*domain.VerificationPayload, error)
}

// LedgerClient issues ordered transactions to the external settlement
// contract. Every state-changing call fetches the sender nonce
// immediately before submission, attaches the fixed gas budget, blocks
// until inclusion and returns the receipt. Errors recognised as
// duplicate submissions are downgraded to idempotent successes carrying
// a sentinel receipt.
type LedgerClient interface {
	InitiateTransfer(ctx context.Context, direction domain.Direction, sessionID, merchantID, encryptedData string) (*domain.LedgerReceipt, error)
	ConfirmVerification(ctx context.Context, country string, sessionID string, verified bool, bankID string) (*domain.LedgerReceipt, error)
	ConfirmOriginSettled(ctx context.Context, sessionID string) (*domain.LedgerReceipt, error)
	ConfirmDestinationSettled(ctx context.Context, sessionID, merchantID string) (*domain.LedgerReceipt, error)
	ProcessPayment(ctx context.Context, country string, sessionID, payerUserID string, amount float64) (*domain.LedgerReceipt, error)
	GetVerificationStatus(ctx context.Context, sessionID string) (*domain.LedgerVerificationStatus, error)
}

// LedgerEventSource streams events emitted by the settlement contract.
type LedgerEventSource interface {
	// Subscribe delivers events to handler until ctx is cancelled.
	// Handler errors are logged, not fatal to the subscription.
	Subscribe(ctx context.Context, handler func(domain.LedgerEvent)) error
}

// VerifyResult is the outcome of one per-bank verification attempt.
type VerifyResult struct {
	SessionID string                `json:"sessionId"`
	Verified  bool                  `json:"verified"`
	Status    domain.SessionStatus  `json:"status"`
	Receipt   *domain.LedgerReceipt `json:"receipt,omitempty"`
}

// VerificationService reconciles local decrypt-based verification with
// ledger-reported consensus.
type VerificationService interface {
	// VerifyBank runs the per-bank verification path: guard, cached
	// short-circuit, decrypt + identity check, ledger anchoring, status
	// recompute. Idempotent per (session, bank).
	VerifyBank(ctx context.Context, sessionID, bankID string) (*VerifyResult, error)
	// EnsureLedgerConsensus reads the ledger's verification record and,
	// if it disagrees with local state, re-anchors both banks' booleans
	// once before declaring LedgerInconsistency.
	EnsureLedgerConsensus(ctx context.Context, sessionID string) error
}

// PaymentResult acknowledges settlement initiation. Funds move later,
// during the asynchronous completion phase; callers poll session status.
type PaymentResult struct {
	SessionID string                `json:"sessionId"`
	Amount    float64               `json:"amount"`
	Status    string                `json:"status"`
	Direction domain.Direction      `json:"direction"`
	Receipt   *domain.LedgerReceipt `json:"receipt,omitempty"`
}

// SettlementService debits payer, credits merchant with currency
// conversion and finalizes the session.
type SettlementService interface {
	InitiatePayment(ctx context.Context, sessionID string, amount float64) (*PaymentResult, error)
}

// ScanResult is returned from a QR scan after session creation and
// immediate dual-bank verification.
type ScanResult struct {
	SessionID    string                `json:"sessionId"`
	MerchantName string                `json:"merchantName"`
	Status       domain.SessionStatus  `json:"status"`
	Direction    domain.Direction      `json:"direction"`
	Receipt      *domain.LedgerReceipt `json:"receipt,omitempty"`
}

// QRData describes a merchant's scannable code.
type QRData struct {
	MerchantID   string `json:"merchantId"`
	MerchantName string `json:"merchantName"`
	QRCode       string `json:"qrCode"`
	Country      string `json:"country"`
	Currency     string `json:"currency"`
}

// SessionService creates sessions from scans and serves snapshots.
type SessionService interface {
	// GenerateQR looks up a merchant's scannable code in either bank.
	GenerateQR(ctx context.Context, merchantID string) (*QRData, error)
	// ScanQR creates a session, seals the payload for both banks,
	// anchors the destination ciphertext on the ledger and immediately
	// runs both banks' verification.
	ScanQR(ctx context.Context, qrCode, payerUserID, payerCountry string) (*ScanResult, error)
}

// TokenService issues and validates admin tokens for the diagnostic
// endpoints.
type TokenService interface {
	Generate(subject string) (string, time.Time, error)
	Validate(tokenString string) (string, error) // returns subject
}
