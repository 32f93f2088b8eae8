package handler

import (
	"crossborder-orchestrator/internal/adapter/http/dto"
	"crossborder-orchestrator/internal/core/ports"
	"crossborder-orchestrator/pkg/apperror"
	"crossborder-orchestrator/pkg/response"

	"github.com/gin-gonic/gin"
)

// SessionHandler handles QR generation and scanning.
type SessionHandler struct {
	sessionSvc ports.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessionSvc ports.SessionService) *SessionHandler {
	return &SessionHandler{sessionSvc: sessionSvc}
}

// GenerateQR handles GET /generate-qr/:merchantId.
func (h *SessionHandler) GenerateQR(c *gin.Context) {
	merchantID := c.Param("merchantId")
	qr, err := h.sessionSvc.GenerateQR(c.Request.Context(), merchantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.QRDataResponse{QRData: dto.QRData{
		MerchantID:   qr.MerchantID,
		MerchantName: qr.MerchantName,
		QRCode:       qr.QRCode,
		Country:      qr.Country,
		Currency:     qr.Currency,
	}})
}

// ScanQR handles POST /scan-qr.
func (h *SessionHandler) ScanQR(c *gin.Context) {
	var req dto.ScanQRRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.sessionSvc.ScanQR(c.Request.Context(), req.QRCode, req.PayerUserID, req.PayerCountry)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.ScanQRResponse{
		SessionID:    result.SessionID,
		MerchantName: result.MerchantName,
		Status:       string(result.Status),
		Direction:    string(result.Direction),
	}
	if result.Receipt != nil {
		resp.TransactionHash = result.Receipt.TxHash
		resp.BlockNumber = result.Receipt.BlockNumber
	}
	response.OK(c, resp)
}
