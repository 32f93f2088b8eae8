package handler

import (
	"crossborder-orchestrator/config"
	"crossborder-orchestrator/internal/adapter/http/middleware"
	redisStore "crossborder-orchestrator/internal/adapter/storage/redis"
	"crossborder-orchestrator/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	SessionSvc      ports.SessionService
	VerificationSvc ports.VerificationService
	SettlementSvc   ports.SettlementService
	Sessions        ports.SessionRepository
	Banks           ports.BankStore
	TokenSvc        ports.TokenService            // nil = diagnostic endpoints left open
	RateLimitStore  *redisStore.RateLimitStore    // nil = rate limiting disabled
	HealthCheckers  []ports.HealthChecker
	LedgerCfg       config.LedgerConfig
	Logger          zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
// The payment protocol endpoints live at the root, not under a version
// prefix; mobile clients address them by those exact paths.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.AuditLog(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (verifies bank store readability)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// --- Payment protocol ---
	sessionHandler := NewSessionHandler(deps.SessionSvc)
	paymentHandler := NewPaymentHandler(deps.VerificationSvc, deps.SettlementSvc, deps.Sessions)

	r.GET("/generate-qr/:merchantId", rl("status"), sessionHandler.GenerateQR)
	r.POST("/scan-qr", rl("scan_qr"), sessionHandler.ScanQR)
	r.POST("/verify-bank", rl("verify_bank"), paymentHandler.VerifyBank)
	r.POST("/process-payment", rl("process_payment"), paymentHandler.ProcessPayment)
	r.GET("/payment-status/:sessionId", rl("status"), paymentHandler.PaymentStatus)

	// --- Diagnostics (admin-guarded when a token service is configured) ---
	adminAuth := middleware.AdminAuth(deps.TokenSvc, deps.Logger)
	debugHandler := NewDebugHandler(deps.Banks, deps.Sessions, deps.LedgerCfg)

	r.GET("/contract-info", rl("diagnostics"), debugHandler.ContractInfo)
	r.GET("/get-bank-private-key/:bankId", rl("diagnostics"), adminAuth, debugHandler.GetBankPrivateKey)
	r.GET("/debug-session/:sessionId", rl("diagnostics"), adminAuth, debugHandler.DebugSession)

	return r
}
