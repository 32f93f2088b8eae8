package integration

import (
	"context"
	"fmt"
	"sync"

	"crossborder-orchestrator/internal/core/domain"
)

// fakeLedger is an in-process stand-in for the settlement contract
// gateway. It records every confirmed verification per session and
// country and derives the consensus status from them, so the
// orchestrator's consensus double-check runs against real state.
type fakeLedger struct {
	mu    sync.Mutex
	nonce uint64

	// verifications[sessionID][country] = verified boolean
	verifications map[string]map[string]bool
	// confirmCalls[sessionID][country] counts non-duplicate confirms
	confirmCalls map[string]map[string]int

	// pendingStatusReads forces that many GetVerificationStatus calls to
	// report PENDING regardless of stored confirms.
	pendingStatusReads int
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{
		verifications: make(map[string]map[string]bool),
		confirmCalls:  make(map[string]map[string]int),
	}
}

func (f *fakeLedger) next() *domain.LedgerReceipt {
	f.nonce++
	return &domain.LedgerReceipt{
		TxHash:      fmt.Sprintf("0x%08x", f.nonce),
		BlockNumber: f.nonce,
	}
}

func (f *fakeLedger) InitiateTransfer(ctx context.Context, direction domain.Direction, sessionID, merchantID, encryptedData string) (*domain.LedgerReceipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.verifications[sessionID] == nil {
		f.verifications[sessionID] = make(map[string]bool)
		f.confirmCalls[sessionID] = make(map[string]int)
	}
	return f.next(), nil
}

func (f *fakeLedger) ConfirmVerification(ctx context.Context, country, sessionID string, verified bool, bankID string) (*domain.LedgerReceipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.verifications[sessionID] == nil {
		f.verifications[sessionID] = make(map[string]bool)
		f.confirmCalls[sessionID] = make(map[string]int)
	}
	if prev, ok := f.verifications[sessionID][country]; ok && prev == verified {
		return &domain.LedgerReceipt{TxHash: domain.TxHashAlreadyVerified}, nil
	}
	f.verifications[sessionID][country] = verified
	f.confirmCalls[sessionID][country]++
	return f.next(), nil
}

func (f *fakeLedger) ConfirmOriginSettled(ctx context.Context, sessionID string) (*domain.LedgerReceipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.next(), nil
}

func (f *fakeLedger) ConfirmDestinationSettled(ctx context.Context, sessionID, merchantID string) (*domain.LedgerReceipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.next(), nil
}

func (f *fakeLedger) ProcessPayment(ctx context.Context, country, sessionID, payerUserID string, amount float64) (*domain.LedgerReceipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.next(), nil
}

func (f *fakeLedger) GetVerificationStatus(ctx context.Context, sessionID string) (*domain.LedgerVerificationStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pendingStatusReads > 0 {
		f.pendingStatusReads--
		return &domain.LedgerVerificationStatus{Status: "PENDING"}, nil
	}

	confirmed := f.verifications[sessionID]
	allTrue := len(confirmed) == 2
	for _, v := range confirmed {
		allTrue = allTrue && v
	}
	status := &domain.LedgerVerificationStatus{Status: "PENDING"}
	if allTrue {
		status.Status = domain.LedgerStatusVerified
		status.OriginVerified = true
		status.DestinationVerified = true
	}
	return status, nil
}

// forcePending makes the next n status reads report missing consensus.
func (f *fakeLedger) forcePending(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pendingStatusReads = n
}

// confirms returns how many distinct confirm transactions a session's
// country verification took.
func (f *fakeLedger) confirms(sessionID, country string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.confirmCalls[sessionID][country]
}
