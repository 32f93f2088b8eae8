package dto

// ScanQRRequest is the request body for scanning a merchant QR code.
type ScanQRRequest struct {
	QRCode       string `json:"qrCode" binding:"required,max=100,safe_id"`
	PayerUserID  string `json:"payerUserId" binding:"required,max=100,safe_id"`
	PayerCountry string `json:"payerCountry" binding:"required,max=50"`
}

// VerifyBankRequest is the request body for one bank's verification.
type VerifyBankRequest struct {
	SessionID string `json:"sessionId" binding:"required,max=100,safe_id"`
	BankID    string `json:"bankId" binding:"required,max=100,safe_id"`
}

// ProcessPaymentRequest is the request body for initiating settlement.
type ProcessPaymentRequest struct {
	SessionID string  `json:"sessionId" binding:"required,max=100,safe_id"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
}

// QRDataResponse wraps merchant QR data.
type QRDataResponse struct {
	QRData QRData `json:"qrData"`
}

// QRData describes a merchant's scannable code.
type QRData struct {
	MerchantID   string `json:"merchantId"`
	MerchantName string `json:"merchantName"`
	QRCode       string `json:"qrCode"`
	Country      string `json:"country"`
	Currency     string `json:"currency"`
}

// ScanQRResponse is the response to a QR scan.
type ScanQRResponse struct {
	SessionID       string `json:"sessionId"`
	MerchantName    string `json:"merchantName"`
	Status          string `json:"status"`
	Direction       string `json:"direction"`
	TransactionHash string `json:"transactionHash,omitempty"`
	BlockNumber     uint64 `json:"blockNumber,omitempty"`
}

// VerifyBankResponse is the response to a verification attempt.
type VerifyBankResponse struct {
	SessionID       string `json:"sessionId"`
	Verified        bool   `json:"verified"`
	Status          string `json:"status"`
	TransactionHash string `json:"transactionHash,omitempty"`
	BlockNumber     uint64 `json:"blockNumber,omitempty"`
}

// ProcessPaymentResponse acknowledges settlement initiation.
type ProcessPaymentResponse struct {
	SessionID       string  `json:"sessionId"`
	Amount          float64 `json:"amount"`
	Status          string  `json:"status"`
	Direction       string  `json:"direction"`
	TransactionHash string  `json:"transactionHash,omitempty"`
	BlockNumber     uint64  `json:"blockNumber,omitempty"`
}

// PaymentStatusResponse is the session snapshot served for polling.
type PaymentStatusResponse struct {
	SessionID               string  `json:"sessionId"`
	MerchantID              string  `json:"merchantId"`
	PayerUserID             string  `json:"payerUserId"`
	Amount                  float64 `json:"amount"`
	Status                  string  `json:"status"`
	Direction               string  `json:"direction"`
	Timestamp               string  `json:"timestamp"`
	OriginBankVerified      string  `json:"originBankVerified"`
	DestinationBankVerified string  `json:"destinationBankVerified"`
	CompletedAt             *string `json:"completedAt,omitempty"`
}

// BankKeyResponse exposes a bank's private key for test tooling.
type BankKeyResponse struct {
	BankID     string `json:"bankId"`
	PrivateKey string `json:"privateKey"`
}

// ContractInfoResponse describes the settlement contract deployment.
type ContractInfoResponse struct {
	ContractAddress string `json:"contractAddress"`
	Network         string `json:"network"`
	GatewayURL      string `json:"gatewayUrl"`
}

// DebugSessionResponse dumps the full internal session state.
type DebugSessionResponse struct {
	SessionID                string  `json:"sessionId"`
	MerchantID               string  `json:"merchantId"`
	PayerUserID              string  `json:"payerUserId"`
	PayerCountry             string  `json:"payerCountry"`
	MerchantCountry          string  `json:"merchantCountry"`
	Direction                string  `json:"direction"`
	OriginBank               string  `json:"originBank"`
	DestinationBank          string  `json:"destinationBank"`
	OriginEncryptedData      string  `json:"originEncryptedData"`
	DestinationEncryptedData string  `json:"destinationEncryptedData"`
	OriginBankVerified       string  `json:"originBankVerified"`
	DestinationBankVerified  string  `json:"destinationBankVerified"`
	Status                   string  `json:"status"`
	Amount                   float64 `json:"amount"`
	CreatedAt                string  `json:"createdAt"`
	CompletedAt              *string `json:"completedAt,omitempty"`
}
