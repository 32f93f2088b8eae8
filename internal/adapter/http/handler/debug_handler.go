package handler

import (
	"time"

	"crossborder-orchestrator/config"
	"crossborder-orchestrator/internal/adapter/http/dto"
	"crossborder-orchestrator/internal/core/ports"
	"crossborder-orchestrator/pkg/apperror"
	"crossborder-orchestrator/pkg/response"

	"github.com/gin-gonic/gin"
)

// DebugHandler serves the diagnostic endpoints used by test tooling.
// These are not part of the settlement protocol; in production they sit
// behind admin auth.
type DebugHandler struct {
	banks     ports.BankStore
	sessions  ports.SessionRepository
	ledgerCfg config.LedgerConfig
}

// NewDebugHandler creates a new DebugHandler.
func NewDebugHandler(banks ports.BankStore, sessions ports.SessionRepository, ledgerCfg config.LedgerConfig) *DebugHandler {
	return &DebugHandler{banks: banks, sessions: sessions, ledgerCfg: ledgerCfg}
}

// GetBankPrivateKey handles GET /get-bank-private-key/:bankId.
func (h *DebugHandler) GetBankPrivateKey(c *gin.Context) {
	bankID := c.Param("bankId")
	record, err := h.banks.LoadByBankID(c.Request.Context(), bankID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BankKeyResponse{
		BankID:     record.BankID,
		PrivateKey: record.BankKeys.PrivateKey,
	})
}

// ContractInfo handles GET /contract-info.
func (h *DebugHandler) ContractInfo(c *gin.Context) {
	response.OK(c, dto.ContractInfoResponse{
		ContractAddress: h.ledgerCfg.ContractAddress,
		Network:         h.ledgerCfg.Network,
		GatewayURL:      h.ledgerCfg.GatewayURL,
	})
}

// DebugSession handles GET /debug-session/:sessionId.
func (h *DebugHandler) DebugSession(c *gin.Context) {
	session, ok := h.sessions.Get(c.Param("sessionId"))
	if !ok {
		response.Error(c, apperror.ErrNotFound("Session"))
		return
	}

	resp := dto.DebugSessionResponse{
		SessionID:                session.SessionID,
		MerchantID:               session.MerchantID,
		PayerUserID:              session.PayerUserID,
		PayerCountry:             session.PayerCountry,
		MerchantCountry:          session.MerchantCountry,
		Direction:                string(session.Direction),
		OriginBank:               session.OriginBank,
		DestinationBank:          session.DestinationBank,
		OriginEncryptedData:      session.OriginEncryptedData,
		DestinationEncryptedData: session.DestinationEncryptedData,
		OriginBankVerified:       session.OriginBankVerified.String(),
		DestinationBankVerified:  session.DestinationBankVerified.String(),
		Status:                   string(session.Status),
		Amount:                   session.Amount,
		CreatedAt:                session.CreatedAt.UTC().Format(time.RFC3339),
	}
	if session.CompletedAt != nil {
		completed := session.CompletedAt.UTC().Format(time.RFC3339)
		resp.CompletedAt = &completed
	}
	response.OK(c, resp)
}
