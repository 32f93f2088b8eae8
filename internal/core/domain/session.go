package domain

import "time"

// Direction identifies which bank pays and which receives.
type Direction string

const (
	DirectionThailandToMalaysia Direction = "THAILAND_TO_MALAYSIA"
	DirectionMalaysiaToThailand Direction = "MALAYSIA_TO_THAILAND"
)

// SessionStatus is the lifecycle state of a payment session.
//
// pending_verification -> {partial_verification, verification_failed, verified}
// -> payment_processing -> {completed, failed}
type SessionStatus string

const (
	StatusPendingVerification SessionStatus = "pending_verification"
	StatusPartialVerification SessionStatus = "partial_verification"
	StatusVerificationFailed  SessionStatus = "verification_failed"
	StatusVerified            SessionStatus = "verified"
	StatusPaymentProcessing   SessionStatus = "payment_processing"
	StatusCompleted           SessionStatus = "completed"
	StatusFailed              SessionStatus = "failed"
)

// VerificationState is a bank's verification outcome for a session.
// Unverified means not yet decided; Verified and Rejected are final.
type VerificationState int

const (
	Unverified VerificationState = iota
	Verified
	Rejected
)

// Decided reports whether a verification outcome has been recorded.
func (v VerificationState) Decided() bool { return v != Unverified }

// Bool converts a decided state to its boolean form. Unverified maps to false.
func (v VerificationState) Bool() bool { return v == Verified }

// StateFromBool converts a locally computed verification boolean.
func StateFromBool(ok bool) VerificationState {
	if ok {
		return Verified
	}
	return Rejected
}

// MarshalText renders the tri-state as null-ish JSON-friendly text for
// status snapshots: "unverified", "true", "false".
func (v VerificationState) String() string {
	switch v {
	case Verified:
		return "true"
	case Rejected:
		return "false"
	default:
		return "unverified"
	}
}

// PaymentSession is one in-flight payment attempt from scan to completion.
// It lives only in memory; bank records are the durable state beneath it.
type PaymentSession struct {
	SessionID       string
	MerchantID      string
	PayerUserID     string
	PayerCountry    string
	MerchantCountry string
	Direction       Direction
	OriginBank      string
	DestinationBank string

	// Same logical payload sealed once per recipient. Neither bank can
	// open the ciphertext addressed to the other.
	OriginEncryptedData      string
	DestinationEncryptedData string

	OriginBankVerified      VerificationState
	DestinationBankVerified VerificationState

	Status      SessionStatus
	Amount      float64 // zero until the payment step
	CreatedAt   time.Time
	CompletedAt *time.Time

	// processing marks banks with an in-flight verification, the
	// re-entrancy guard against overlapping HTTP requests and ledger
	// event triggers. Guarded by the session repository's lock.
	processing map[string]bool
}

// VerificationFor returns the recorded outcome for the given bank.
func (s *PaymentSession) VerificationFor(bankID string) VerificationState {
	if bankID == s.OriginBank {
		return s.OriginBankVerified
	}
	return s.DestinationBankVerified
}

// SetVerification records a bank's outcome.
func (s *PaymentSession) SetVerification(bankID string, state VerificationState) {
	if bankID == s.OriginBank {
		s.OriginBankVerified = state
	} else {
		s.DestinationBankVerified = state
	}
}

// EncryptedDataFor returns the ciphertext sealed for the given bank.
func (s *PaymentSession) EncryptedDataFor(bankID string) string {
	if bankID == s.OriginBank {
		return s.OriginEncryptedData
	}
	return s.DestinationEncryptedData
}

// References reports whether the session involves the given bank.
func (s *PaymentSession) References(bankID string) bool {
	return bankID == s.OriginBank || bankID == s.DestinationBank
}

// RecomputeStatus derives the verification-phase status from the per-bank
// outcomes. It never moves a session that already progressed past
// verification.
func (s *PaymentSession) RecomputeStatus() {
	switch s.Status {
	case StatusPaymentProcessing, StatusCompleted, StatusFailed:
		return
	}
	switch {
	case s.OriginBankVerified == Verified && s.DestinationBankVerified == Verified:
		s.Status = StatusVerified
	case s.OriginBankVerified == Rejected || s.DestinationBankVerified == Rejected:
		s.Status = StatusVerificationFailed
	case s.OriginBankVerified.Decided() || s.DestinationBankVerified.Decided():
		s.Status = StatusPartialVerification
	default:
		s.Status = StatusPendingVerification
	}
}

// IsVerified reports whether payment may be initiated.
func (s *PaymentSession) IsVerified() bool {
	return s.Status == StatusVerified &&
		s.OriginBankVerified == Verified &&
		s.DestinationBankVerified == Verified
}

// BeginProcessing sets the re-entrancy guard for a bank. It returns false
// if a verification for that bank is already in flight.
func (s *PaymentSession) BeginProcessing(bankID string) bool {
	if s.processing == nil {
		s.processing = make(map[string]bool)
	}
	if s.processing[bankID] {
		return false
	}
	s.processing[bankID] = true
	return true
}

// EndProcessing clears the re-entrancy guard for a bank.
func (s *PaymentSession) EndProcessing(bankID string) {
	if s.processing != nil {
		delete(s.processing, bankID)
	}
}

// Processing reports whether a bank's verification is in flight.
func (s *PaymentSession) Processing(bankID string) bool {
	return s.processing[bankID]
}
