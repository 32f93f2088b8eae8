package domain

import "encoding/json"

// VerificationPayload is the logical content sealed into both per-bank
// ciphertexts. Both must decrypt to byte-identical payloads; a decrypted
// payload failing the identity check against its session is evidence of
// tampering or key mismatch, not a format error.
type VerificationPayload struct {
	SessionID       string `json:"sessionId"`
	MerchantID      string `json:"merchantId"`
	PayerUserID     string `json:"payerUserId"`
	PayerCountry    string `json:"payerCountry"`
	MerchantCountry string `json:"merchantCountry"`
	Timestamp       int64  `json:"timestamp"` // unix milliseconds
}

// Encode renders the payload as canonical JSON bytes for sealing.
func (p VerificationPayload) Encode() ([]byte, error) {
	return json.Marshal(p)
}

// DecodeVerificationPayload parses payload bytes produced by Encode.
func DecodeVerificationPayload(data []byte) (*VerificationPayload, error) {
	var p VerificationPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Matches performs the identity check against a session: the payload must
// name the same session, merchant and payer.
func (p *VerificationPayload) Matches(s *PaymentSession) bool {
	return p.SessionID == s.SessionID &&
		p.MerchantID != "" && p.MerchantID == s.MerchantID &&
		p.PayerUserID != "" && p.PayerUserID == s.PayerUserID
}
