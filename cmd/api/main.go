package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"crossborder-orchestrator/config"
	httpHandler "crossborder-orchestrator/internal/adapter/http/handler"
	"crossborder-orchestrator/internal/adapter/ledger"
	fileStorage "crossborder-orchestrator/internal/adapter/storage/file"
	"crossborder-orchestrator/internal/adapter/storage/memory"
	redisStorage "crossborder-orchestrator/internal/adapter/storage/redis"
	"crossborder-orchestrator/internal/core/domain"
	"crossborder-orchestrator/internal/core/ports"
	"crossborder-orchestrator/internal/service"
	"crossborder-orchestrator/pkg/apperror"
	"crossborder-orchestrator/pkg/logger"

	"github.com/rs/zerolog"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Cross-Border Payment Orchestrator")

	ctx := context.Background()

	// Bank records on disk; seed missing files with fresh keypairs.
	bankStore := fileStorage.NewBankStore(cfg.Data.Dir, cfg.Banks)
	if err := bankStore.Seed(ctx, seedBankRecords(cfg.Banks), service.GenerateBankKeys); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed bank records")
	}
	log.Info().Str("dir", cfg.Data.Dir).Msg("Bank store ready")

	// Sessions live in memory only.
	sessions := memory.NewSessionRepository()

	// Ledger gateway client with its ordered dispatcher.
	ledgerClient := ledger.NewClient(cfg.Ledger, logger.Component(log, "ledger"))
	defer ledgerClient.Close()
	log.Info().Str("gateway", cfg.Ledger.GatewayURL).Str("contract", cfg.Ledger.ContractAddress).
		Msg("Ledger client ready")

	// Core services
	codec := service.NewRSAEnvelopeCodec()
	verificationSvc := service.NewVerificationService(sessions, bankStore, codec, ledgerClient, logger.Component(log, "verification"))
	settlementSvc := service.NewSettlementService(sessions, bankStore, ledgerClient, verificationSvc, cfg.Settlement, logger.Component(log, "settlement"))
	defer settlementSvc.Close()
	sessionSvc := service.NewSessionService(sessions, bankStore, codec, ledgerClient, verificationSvc, logger.Component(log, "session"))

	// Diagnostic endpoints stay open unless an admin secret is set.
	var tokenSvc ports.TokenService
	if cfg.Admin.JWTSecret != "" {
		tokenSvc = service.NewJWTTokenService(cfg.Admin)
		log.Info().Msg("Diagnostic endpoints guarded by admin tokens")
	}

	healthCheckers := []ports.HealthChecker{fileStorage.NewHealthCheck(bankStore)}

	// Optional Redis-backed rate limiting.
	var rateLimitStore *redisStorage.RateLimitStore
	if cfg.Redis.Addr != "" {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
		log.Info().Msg("Redis connected, rate limiting enabled")
	}

	// Event-driven verification: ledger verify-request events trigger the
	// same per-bank path a direct API call would.
	eventCtx, stopEvents := context.WithCancel(ctx)
	defer stopEvents()
	go func() {
		err := ledgerClient.Subscribe(eventCtx, func(ev domain.LedgerEvent) {
			handleLedgerEvent(eventCtx, ev, sessions, verificationSvc, log)
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Error().Err(err).Msg("Ledger event subscription ended")
		}
	}()

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		SessionSvc:      sessionSvc,
		VerificationSvc: verificationSvc,
		SettlementSvc:   settlementSvc,
		Sessions:        sessions,
		Banks:           bankStore,
		TokenSvc:        tokenSvc,
		RateLimitStore:  rateLimitStore,
		HealthCheckers:  healthCheckers,
		LedgerCfg:       cfg.Ledger,
		Logger:          log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")
	stopEvents()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// handleLedgerEvent routes contract events. Verification is dual
// triggered (API call or ledger event); the per-(session, bank) guard
// and the decided-outcome cache make the duplicate trigger harmless.
func handleLedgerEvent(
	ctx context.Context,
	ev domain.LedgerEvent,
	sessions ports.SessionRepository,
	verificationSvc ports.VerificationService,
	log zerolog.Logger,
) {
	if ev.Type != domain.EventVerifyRequested {
		return
	}
	session, ok := sessions.Get(ev.SessionID)
	if !ok {
		log.Debug().Str("session_id", ev.SessionID).Msg("verify-request event for unknown session")
		return
	}

	for _, bankID := range []string{session.OriginBank, session.DestinationBank} {
		if _, err := verificationSvc.VerifyBank(ctx, ev.SessionID, bankID); err != nil {
			var appErr *apperror.AppError
			if errors.As(err, &appErr) && appErr.Code == "VER_002" {
				continue // another trigger is already verifying this bank
			}
			log.Error().Err(err).Str("session_id", ev.SessionID).Str("bank_id", bankID).
				Msg("event-triggered verification failed")
		}
	}
}

// seedBankRecords returns the default account book for each configured
// bank, used only when its data file does not exist yet.
func seedBankRecords(banks []config.BankConfig) []*domain.BankRecord {
	records := make([]*domain.BankRecord, 0, len(banks))
	for _, b := range banks {
		record := &domain.BankRecord{
			BankID:   b.ID,
			Country:  b.Country,
			Currency: b.Currency,
		}
		switch b.Country {
		case "Thailand":
			record.Users = []domain.User{
				{UserID: "USER_001", Name: "Somchai Jaidee", Balance: 29980, AccountNumber: "TH-001-2468", Phone: "+66-81-234-5678"},
				{UserID: "USER_003", Name: "Niran Chaiyo", Balance: 12500, AccountNumber: "TH-001-1357"},
			}
			record.Merchants = []domain.Merchant{
				{MerchantID: "MERCHANT_TH", Name: "Bangkok Coffee House", Balance: 5000, AccountNumber: "TH-M-0001", QRCode: "QR_MERCHANT_TH"},
			}
		case "Malaysia":
			record.Users = []domain.User{
				{UserID: "USER_002", Name: "Ahmad Rahman", Balance: 2500, AccountNumber: "MY-001-8642", Phone: "+60-12-345-6789"},
			}
			record.Merchants = []domain.Merchant{
				{MerchantID: "MERCHANT_001", Name: "KL Street Food", Balance: 15000, AccountNumber: "MY-M-0001", QRCode: "QR_MERCHANT_001"},
			}
		}
		records = append(records, record)
	}
	return records
}
