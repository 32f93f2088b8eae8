package ports

import (
	"context"

	"crossborder-orchestrator/internal/core/domain"
)

//go:generate mockgen -source=repositories.go -destination=mocks/repositories.go -package=mocks

// BankStore persists per-bank records. Writes are transactional only at
// the single-record level: Save rewrites the whole record file.
type BankStore interface {
	// LoadByCountry reads the record for a country's bank.
	LoadByCountry(ctx context.Context, country string) (*domain.BankRecord, error)
	// LoadByBankID reads the record for a bank by its identifier.
	LoadByBankID(ctx context.Context, bankID string) (*domain.BankRecord, error)
	// Save rewrites a bank record in full.
	Save(ctx context.Context, record *domain.BankRecord) error
	// FindMerchantByID searches all banks for a merchant.
	FindMerchantByID(ctx context.Context, merchantID string) (*domain.Merchant, *domain.BankRecord, error)
	// FindMerchantByQRCode searches all banks for a merchant by scannable code.
	FindMerchantByQRCode(ctx context.Context, qrCode string) (*domain.Merchant, *domain.BankRecord, error)
}

// SessionRepository is the in-memory authority for payment sessions.
// Mutation runs under a per-session lock; the per-(session,bank)
// processing guard is the sole mutual exclusion for a session's
// verification path.
type SessionRepository interface {
	// Create stores a new session. Fails if the ID already exists.
	Create(session *domain.PaymentSession) error
	// Get returns a snapshot copy of the session.
	Get(sessionID string) (*domain.PaymentSession, bool)
	// Update applies fn to the live session under its lock. Returns
	// apperror.ErrNotFound when the session is unknown; fn errors
	// propagate and leave the session as fn left it.
	Update(sessionID string, fn func(*domain.PaymentSession) error) error
	// TryBeginProcessing atomically sets the re-entrancy guard for one
	// bank of a session. False means a verification is already in flight.
	TryBeginProcessing(sessionID, bankID string) (bool, error)
	// EndProcessing clears the guard.
	EndProcessing(sessionID, bankID string)
}
