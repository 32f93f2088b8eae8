package service

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"crossborder-orchestrator/config"
	"crossborder-orchestrator/internal/core/domain"
	"crossborder-orchestrator/internal/core/ports"
	"crossborder-orchestrator/pkg/apperror"
)

// SettlementServiceImpl moves funds between bank records. Initiation is
// synchronous up to the ledger's payment anchor; the actual debit,
// conversion and credit run later on a bounded worker pool.
type SettlementServiceImpl struct {
	sessions ports.SessionRepository
	banks    ports.BankStore
	ledger   ports.LedgerClient
	verifier ports.VerificationService
	cfg      config.SettlementConfig
	log      zerolog.Logger

	jobs chan settlementJob
	quit chan struct{}
	wg   sync.WaitGroup
}

type settlementJob struct {
	sessionID string
}

func NewSettlementService(
	sessions ports.SessionRepository,
	banks ports.BankStore,
	ledger ports.LedgerClient,
	verifier ports.VerificationService,
	cfg config.SettlementConfig,
	log zerolog.Logger,
) *SettlementServiceImpl {
	s := &SettlementServiceImpl{
		sessions: sessions,
		banks:    banks,
		ledger:   ledger,
		verifier: verifier,
		cfg:      cfg,
		log:      log,
		jobs:     make(chan settlementJob, 64),
		quit:     make(chan struct{}),
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	for i := 0; i < workers; i++ {
		s.wg.Add(1)
		go s.worker()
	}
	return s
}

// Close stops accepting settlement jobs and waits for in-flight ones.
func (s *SettlementServiceImpl) Close() {
	close(s.quit)
	close(s.jobs)
	s.wg.Wait()
}

// InitiatePayment validates funds, anchors the payment on the ledger and
// schedules the asynchronous completion. It returns as soon as the
// session reaches payment_processing.
func (s *SettlementServiceImpl) InitiatePayment(ctx context.Context, sessionID string, amount float64) (*ports.PaymentResult, error) {
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, apperror.ErrInvalidAmount()
	}

	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, apperror.ErrNotFound("Session")
	}
	if !session.IsVerified() {
		return nil, apperror.ErrSessionNotVerified()
	}

	// The ledger is the verification authority of record. Local state
	// saying verified is not enough to move money.
	if err := s.verifier.EnsureLedgerConsensus(ctx, sessionID); err != nil {
		return nil, err
	}

	origin, err := s.banks.LoadByCountry(ctx, session.PayerCountry)
	if err != nil {
		return nil, err
	}
	payer := origin.FindUser(session.PayerUserID)
	if payer == nil {
		return nil, apperror.ErrNotFound("User")
	}
	if payer.Balance < amount {
		return nil, apperror.ErrInsufficientBalance()
	}

	receipt, err := s.ledger.ProcessPayment(ctx, session.PayerCountry, sessionID, session.PayerUserID, amount)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Update(sessionID, func(ps *domain.PaymentSession) error {
		if ps.Status != domain.StatusVerified {
			return apperror.ErrSessionNotVerified()
		}
		ps.Status = domain.StatusPaymentProcessing
		ps.Amount = amount
		return nil
	}); err != nil {
		return nil, err
	}

	s.jobs <- settlementJob{sessionID: sessionID}

	s.log.Info().Str("session_id", sessionID).Float64("amount", amount).
		Str("direction", string(session.Direction)).Msg("payment initiated, settlement scheduled")

	return &ports.PaymentResult{
		SessionID: sessionID,
		Amount:    amount,
		Status:    "payment_initiated",
		Direction: session.Direction,
		Receipt:   receipt,
	}, nil
}

func (s *SettlementServiceImpl) worker() {
	defer s.wg.Done()
	for job := range s.jobs {
		select {
		case <-time.After(s.cfg.Delay):
		case <-s.quit:
			return
		}
		s.complete(job.sessionID)
	}
}

// complete performs the debit, conversion and credit. Failures mark the
// session failed without reverting anything already written; balances
// are only mutated after both sides have been validated.
func (s *SettlementServiceImpl) complete(sessionID string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.CompletionTimeout)
	defer cancel()

	if err := s.settle(ctx, sessionID); err != nil {
		s.log.Error().Err(err).Str("session_id", sessionID).Msg("settlement failed")
		if uerr := s.sessions.Update(sessionID, func(ps *domain.PaymentSession) error {
			ps.Status = domain.StatusFailed
			return nil
		}); uerr != nil {
			s.log.Error().Err(uerr).Str("session_id", sessionID).Msg("failed to mark session failed")
		}
	}
}

func (s *SettlementServiceImpl) settle(ctx context.Context, sessionID string) error {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return apperror.ErrNotFound("Session")
	}

	origin, err := s.banks.LoadByCountry(ctx, session.PayerCountry)
	if err != nil {
		return err
	}
	destination, err := s.banks.LoadByCountry(ctx, session.MerchantCountry)
	if err != nil {
		return err
	}

	payer := origin.FindUser(session.PayerUserID)
	if payer == nil {
		return apperror.ErrNotFound("User")
	}
	merchant := destination.FindMerchant(session.MerchantID)
	if merchant == nil {
		return apperror.ErrNotFound("Merchant")
	}
	if payer.Balance < session.Amount {
		return apperror.ErrInsufficientBalance()
	}

	rate, ok := s.cfg.Rate(origin.Currency, destination.Currency)
	if !ok {
		return apperror.InternalError(fmt.Errorf("no exchange rate for %s to %s", origin.Currency, destination.Currency))
	}
	credited := session.Amount * rate

	payer.Balance -= session.Amount
	merchant.Balance += credited

	if err := s.banks.Save(ctx, origin); err != nil {
		return err
	}
	if err := s.banks.Save(ctx, destination); err != nil {
		return err
	}

	// Settlement anchors are best effort: funds have moved, the session
	// completes regardless of whether the ledger accepted the confirms.
	if _, err := s.ledger.ConfirmOriginSettled(ctx, sessionID); err != nil {
		s.log.Error().Err(err).Str("session_id", sessionID).Msg("failed to anchor origin settlement")
	}
	if _, err := s.ledger.ConfirmDestinationSettled(ctx, sessionID, session.MerchantID); err != nil {
		s.log.Error().Err(err).Str("session_id", sessionID).Msg("failed to anchor destination settlement")
	}

	if err := s.sessions.Update(sessionID, func(ps *domain.PaymentSession) error {
		now := time.Now()
		ps.Status = domain.StatusCompleted
		ps.CompletedAt = &now
		return nil
	}); err != nil {
		return err
	}

	s.log.Info().Str("session_id", sessionID).
		Float64("debited", session.Amount).Float64("credited", credited).
		Str("rate_pair", origin.Currency+"_"+destination.Currency).
		Msg("settlement completed")
	return nil
}
