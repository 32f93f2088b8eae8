package domain

// Sentinel transaction hashes returned when a ledger call is downgraded
// to an idempotent success from best-known local state.
const (
	TxHashAlreadyVerified  = "already_verified"
	TxHashAlreadyProcessed = "already_processed"
)

// LedgerReceipt is the inclusion proof for a state-changing ledger call.
type LedgerReceipt struct {
	TxHash      string `json:"transactionHash"`
	BlockNumber uint64 `json:"blockNumber,omitempty"`
}

// Idempotent reports whether this receipt marks a downgraded duplicate
// rather than a fresh inclusion.
func (r *LedgerReceipt) Idempotent() bool {
	return r.TxHash == TxHashAlreadyVerified || r.TxHash == TxHashAlreadyProcessed
}

// LedgerVerificationStatus is the consensus record read back from the
// settlement contract.
type LedgerVerificationStatus struct {
	OriginVerified      bool   `json:"originVerified"`
	DestinationVerified bool   `json:"destinationVerified"`
	Status              string `json:"status"` // e.g. PENDING, VERIFIED
}

// Consensus reports whether the ledger records full dual-bank agreement.
const LedgerStatusVerified = "VERIFIED"

func (s *LedgerVerificationStatus) Consensus() bool {
	return s.Status == LedgerStatusVerified
}

// LedgerEventType tags events emitted by the settlement contract.
type LedgerEventType string

const (
	EventVerifyRequested  LedgerEventType = "VerifyRequested"
	EventVerified         LedgerEventType = "Verified"
	EventPaid             LedgerEventType = "Paid"
	EventPaymentCompleted LedgerEventType = "PaymentCompleted"
)

// LedgerEvent is one emitted contract event. Fields are populated
// according to the event type.
type LedgerEvent struct {
	Type       LedgerEventType `json:"type"`
	SessionID  string          `json:"sessionId"`
	MerchantID string          `json:"merchantId,omitempty"`
	UserID     string          `json:"userId,omitempty"`
	BankID     string          `json:"bankId,omitempty"`
	Verified   bool            `json:"verified,omitempty"`
	Amount     string          `json:"amount,omitempty"`
	Direction  string          `json:"direction,omitempty"`
	Payload    string          `json:"payload,omitempty"` // hex-encoded ciphertext
	Timestamp  int64           `json:"timestamp"`
	Cursor     uint64          `json:"cursor"`
}
