package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"crossborder-orchestrator/internal/core/domain"
	"crossborder-orchestrator/internal/core/ports"
	"crossborder-orchestrator/pkg/apperror"
)

// VerificationServiceImpl runs the per-bank verification path and
// reconciles local outcomes with the ledger's consensus record.
type VerificationServiceImpl struct {
	sessions ports.SessionRepository
	banks    ports.BankStore
	codec    ports.EnvelopeCodec
	ledger   ports.LedgerClient
	log      zerolog.Logger
}

func NewVerificationService(
	sessions ports.SessionRepository,
	banks ports.BankStore,
	codec ports.EnvelopeCodec,
	ledger ports.LedgerClient,
	log zerolog.Logger,
) *VerificationServiceImpl {
	return &VerificationServiceImpl{
		sessions: sessions,
		banks:    banks,
		codec:    codec,
		ledger:   ledger,
		log:      log,
	}
}

// VerifyBank attempts one bank's verification of a session. The
// per-(session, bank) guard rejects overlapping attempts; a decided
// outcome short-circuits with a sentinel receipt instead of decrypting
// again.
func (s *VerificationServiceImpl) VerifyBank(ctx context.Context, sessionID, bankID string) (*ports.VerifyResult, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, apperror.ErrNotFound("Session")
	}
	if !session.References(bankID) {
		return nil, apperror.ErrInvalidBank(bankID)
	}

	acquired, err := s.sessions.TryBeginProcessing(sessionID, bankID)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, apperror.ErrAlreadyProcessing(bankID)
	}
	defer s.sessions.EndProcessing(sessionID, bankID)

	// Re-read under the guard: another request may have decided the
	// outcome between the first read and guard acquisition.
	session, ok = s.sessions.Get(sessionID)
	if !ok {
		return nil, apperror.ErrNotFound("Session")
	}
	if state := session.VerificationFor(bankID); state.Decided() {
		s.log.Debug().Str("session_id", sessionID).Str("bank_id", bankID).
			Bool("verified", state.Bool()).Msg("verification already decided, returning cached outcome")
		return &ports.VerifyResult{
			SessionID: sessionID,
			Verified:  state.Bool(),
			Status:    session.Status,
			Receipt:   &domain.LedgerReceipt{TxHash: domain.TxHashAlreadyVerified},
		}, nil
	}

	record, err := s.banks.LoadByBankID(ctx, bankID)
	if err != nil {
		return nil, err
	}

	verified := s.attemptOpen(session, bankID, record.BankKeys.PrivateKey)

	receipt, err := s.ledger.ConfirmVerification(ctx, record.Country, sessionID, verified, bankID)
	if err != nil {
		// The local outcome stands; the consensus check before payment
		// re-anchors it on the ledger.
		s.log.Error().Err(err).Str("session_id", sessionID).Str("bank_id", bankID).
			Msg("failed to anchor verification on ledger")
		receipt = nil
	}

	if err := s.sessions.Update(sessionID, func(ps *domain.PaymentSession) error {
		ps.SetVerification(bankID, domain.StateFromBool(verified))
		ps.RecomputeStatus()
		return nil
	}); err != nil {
		return nil, err
	}

	session, _ = s.sessions.Get(sessionID)
	s.log.Info().Str("session_id", sessionID).Str("bank_id", bankID).
		Bool("verified", verified).Str("status", string(session.Status)).
		Msg("bank verification recorded")

	return &ports.VerifyResult{
		SessionID: sessionID,
		Verified:  verified,
		Status:    session.Status,
		Receipt:   receipt,
	}, nil
}

// attemptOpen decrypts the bank's ciphertext and checks payload identity.
// Any failure is a negative outcome, never a surfaced error.
func (s *VerificationServiceImpl) attemptOpen(session *domain.PaymentSession, bankID, privateKeyPEM string) bool {
	payload, err := s.codec.Open(session.EncryptedDataFor(bankID), privateKeyPEM)
	if err != nil {
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) || appErr.Code != "VER_001" {
			s.log.Error().Err(err).Str("session_id", session.SessionID).Str("bank_id", bankID).
				Msg("unexpected error opening verification envelope")
		}
		return false
	}
	if !payload.Matches(session) {
		s.log.Warn().Str("session_id", session.SessionID).Str("bank_id", bankID).
			Msg("decrypted payload does not match session identity")
		return false
	}
	return true
}

// EnsureLedgerConsensus reads the ledger's verification record for the
// session and, when it disagrees with local state, re-anchors both
// banks' outcomes once before giving up.
func (s *VerificationServiceImpl) EnsureLedgerConsensus(ctx context.Context, sessionID string) error {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return apperror.ErrNotFound("Session")
	}

	status, err := s.ledger.GetVerificationStatus(ctx, sessionID)
	if err != nil {
		return err
	}
	if status.Consensus() {
		return nil
	}

	s.log.Warn().Str("session_id", sessionID).Str("ledger_status", status.Status).
		Msg("ledger consensus missing, re-anchoring both banks")

	anchors := []struct {
		country string
		bankID  string
		state   domain.VerificationState
	}{
		{session.PayerCountry, session.OriginBank, session.OriginBankVerified},
		{session.MerchantCountry, session.DestinationBank, session.DestinationBankVerified},
	}
	for _, a := range anchors {
		if _, err := s.ledger.ConfirmVerification(ctx, a.country, sessionID, a.state.Bool(), a.bankID); err != nil {
			return err
		}
	}

	status, err = s.ledger.GetVerificationStatus(ctx, sessionID)
	if err != nil {
		return err
	}
	if !status.Consensus() {
		return apperror.ErrLedgerInconsistency(sessionID)
	}
	return nil
}
