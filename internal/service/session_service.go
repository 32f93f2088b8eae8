package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"crossborder-orchestrator/internal/core/domain"
	"crossborder-orchestrator/internal/core/ports"
	"crossborder-orchestrator/pkg/apperror"
)

// SessionServiceImpl creates payment sessions from QR scans and serves
// merchant QR data.
type SessionServiceImpl struct {
	sessions ports.SessionRepository
	banks    ports.BankStore
	codec    ports.EnvelopeCodec
	ledger   ports.LedgerClient
	verifier ports.VerificationService
	log      zerolog.Logger
}

func NewSessionService(
	sessions ports.SessionRepository,
	banks ports.BankStore,
	codec ports.EnvelopeCodec,
	ledger ports.LedgerClient,
	verifier ports.VerificationService,
	log zerolog.Logger,
) *SessionServiceImpl {
	return &SessionServiceImpl{
		sessions: sessions,
		banks:    banks,
		codec:    codec,
		ledger:   ledger,
		verifier: verifier,
		log:      log,
	}
}

// GenerateQR returns the scannable code for a merchant, whichever bank
// it is registered at.
func (s *SessionServiceImpl) GenerateQR(ctx context.Context, merchantID string) (*ports.QRData, error) {
	merchant, record, err := s.banks.FindMerchantByID(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	return &ports.QRData{
		MerchantID:   merchant.MerchantID,
		MerchantName: merchant.Name,
		QRCode:       merchant.QRCode,
		Country:      record.Country,
		Currency:     record.Currency,
	}, nil
}

// ScanQR creates a payment session from a scanned code. The payload is
// sealed once per bank, the transfer is anchored on the ledger with the
// destination bank's ciphertext, and both banks' verification runs
// immediately so the caller usually sees a decided status.
func (s *SessionServiceImpl) ScanQR(ctx context.Context, qrCode, payerUserID, payerCountry string) (*ports.ScanResult, error) {
	merchant, destRecord, err := s.banks.FindMerchantByQRCode(ctx, qrCode)
	if err != nil {
		return nil, err
	}

	direction, ok := directionFor(payerCountry, destRecord.Country)
	if !ok {
		return nil, apperror.ErrUnsupportedDirection(payerCountry, destRecord.Country)
	}

	originRecord, err := s.banks.LoadByCountry(ctx, payerCountry)
	if err != nil {
		return nil, err
	}
	if originRecord.FindUser(payerUserID) == nil {
		return nil, apperror.ErrNotFound("User")
	}

	sessionID := uuid.NewString()
	payload := domain.VerificationPayload{
		SessionID:       sessionID,
		MerchantID:      merchant.MerchantID,
		PayerUserID:     payerUserID,
		PayerCountry:    payerCountry,
		MerchantCountry: destRecord.Country,
		Timestamp:       time.Now().UnixMilli(),
	}

	forOrigin, err := s.codec.Seal(payload, originRecord.BankKeys.PublicKey)
	if err != nil {
		return nil, err
	}
	forDestination, err := s.codec.Seal(payload, destRecord.BankKeys.PublicKey)
	if err != nil {
		return nil, err
	}

	session := &domain.PaymentSession{
		SessionID:                sessionID,
		MerchantID:               merchant.MerchantID,
		PayerUserID:              payerUserID,
		PayerCountry:             payerCountry,
		MerchantCountry:          destRecord.Country,
		Direction:                direction,
		OriginBank:               originRecord.BankID,
		DestinationBank:          destRecord.BankID,
		OriginEncryptedData:      forOrigin,
		DestinationEncryptedData: forDestination,
		Status:                   domain.StatusPendingVerification,
		CreatedAt:                time.Now(),
	}
	if err := s.sessions.Create(session); err != nil {
		return nil, err
	}

	receipt, err := s.ledger.InitiateTransfer(ctx, direction, sessionID, merchant.MerchantID, forDestination)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("session_id", sessionID).Str("merchant_id", merchant.MerchantID).
		Str("direction", string(direction)).Msg("payment session created")

	// Verify with both banks right away. Failures here are per-bank
	// outcomes, already absorbed into session state.
	for _, bankID := range []string{session.OriginBank, session.DestinationBank} {
		if _, err := s.verifier.VerifyBank(ctx, sessionID, bankID); err != nil {
			s.log.Error().Err(err).Str("session_id", sessionID).Str("bank_id", bankID).
				Msg("immediate verification attempt failed")
		}
	}

	session, _ = s.sessions.Get(sessionID)
	return &ports.ScanResult{
		SessionID:    sessionID,
		MerchantName: merchant.Name,
		Status:       session.Status,
		Direction:    direction,
		Receipt:      receipt,
	}, nil
}

// directionFor maps a payer/merchant country pair onto a supported
// corridor.
func directionFor(payerCountry, merchantCountry string) (domain.Direction, bool) {
	switch {
	case payerCountry == "Thailand" && merchantCountry == "Malaysia":
		return domain.DirectionThailandToMalaysia, true
	case payerCountry == "Malaysia" && merchantCountry == "Thailand":
		return domain.DirectionMalaysiaToThailand, true
	default:
		return "", false
	}
}
