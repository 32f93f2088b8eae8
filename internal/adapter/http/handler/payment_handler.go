package handler

import (
	"time"

	"crossborder-orchestrator/internal/adapter/http/dto"
	"crossborder-orchestrator/internal/core/ports"
	"crossborder-orchestrator/pkg/apperror"
	"crossborder-orchestrator/pkg/response"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles verification and settlement endpoints.
type PaymentHandler struct {
	verificationSvc ports.VerificationService
	settlementSvc   ports.SettlementService
	sessions        ports.SessionRepository
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(
	verificationSvc ports.VerificationService,
	settlementSvc ports.SettlementService,
	sessions ports.SessionRepository,
) *PaymentHandler {
	return &PaymentHandler{
		verificationSvc: verificationSvc,
		settlementSvc:   settlementSvc,
		sessions:        sessions,
	}
}

// VerifyBank handles POST /verify-bank.
func (h *PaymentHandler) VerifyBank(c *gin.Context) {
	var req dto.VerifyBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.verificationSvc.VerifyBank(c.Request.Context(), req.SessionID, req.BankID)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.VerifyBankResponse{
		SessionID: result.SessionID,
		Verified:  result.Verified,
		Status:    string(result.Status),
	}
	if result.Receipt != nil {
		resp.TransactionHash = result.Receipt.TxHash
		resp.BlockNumber = result.Receipt.BlockNumber
	}
	response.OK(c, resp)
}

// ProcessPayment handles POST /process-payment.
func (h *PaymentHandler) ProcessPayment(c *gin.Context) {
	var req dto.ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.settlementSvc.InitiatePayment(c.Request.Context(), req.SessionID, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.ProcessPaymentResponse{
		SessionID: result.SessionID,
		Amount:    result.Amount,
		Status:    result.Status,
		Direction: string(result.Direction),
	}
	if result.Receipt != nil {
		resp.TransactionHash = result.Receipt.TxHash
		resp.BlockNumber = result.Receipt.BlockNumber
	}
	response.OK(c, resp)
}

// PaymentStatus handles GET /payment-status/:sessionId.
func (h *PaymentHandler) PaymentStatus(c *gin.Context) {
	session, ok := h.sessions.Get(c.Param("sessionId"))
	if !ok {
		response.Error(c, apperror.ErrNotFound("Session"))
		return
	}

	resp := dto.PaymentStatusResponse{
		SessionID:               session.SessionID,
		MerchantID:              session.MerchantID,
		PayerUserID:             session.PayerUserID,
		Amount:                  session.Amount,
		Status:                  string(session.Status),
		Direction:               string(session.Direction),
		Timestamp:               session.CreatedAt.UTC().Format(time.RFC3339),
		OriginBankVerified:      session.OriginBankVerified.String(),
		DestinationBankVerified: session.DestinationBankVerified.String(),
	}
	if session.CompletedAt != nil {
		completed := session.CompletedAt.UTC().Format(time.RFC3339)
		resp.CompletedAt = &completed
	}
	response.OK(c, resp)
}
