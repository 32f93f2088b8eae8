package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// --- SanitizeStruct tests ---

func TestSanitizeStruct_TrimsWhitespace(t *testing.T) {
	req := ScanQRRequest{
		QRCode:       "  QR_MERCHANT_001  ",
		PayerUserID:  " USER_001 ",
		PayerCountry: " Thailand ",
	}
	SanitizeStruct(&req)

	assert.Equal(t, "QR_MERCHANT_001", req.QRCode)
	assert.Equal(t, "USER_001", req.PayerUserID)
	assert.Equal(t, "Thailand", req.PayerCountry)
}

func TestSanitizeStruct_EscapesHTML(t *testing.T) {
	req := VerifyBankRequest{
		SessionID: "sess-001",
		BankID:    "<script>alert('x')</script>",
	}
	SanitizeStruct(&req)

	assert.Contains(t, req.BankID, "&lt;script&gt;")
	assert.NotContains(t, req.BankID, "<script>")
}

func TestSanitizeStruct_NonPointerIsNoOp(t *testing.T) {
	s := "hello"
	SanitizeStruct(s) // should not panic
}

// --- Custom Validator tests ---

func TestSafeID_Valid(t *testing.T) {
	cases := []string{
		"QR_MERCHANT_001",
		"THAI_BANK_001",
		"a.b.c",
		"simple123",
		"c1f6a5e0-9d5e-4c41-a7a2-1b2c3d4e5f60",
	}
	for _, tc := range cases {
		assert.True(t, safeStringRe.MatchString(tc), "expected valid: %s", tc)
	}
}

func TestSafeID_Invalid(t *testing.T) {
	cases := []string{
		"sess 001",    // space
		"sess<001>",   // angle brackets
		"sess;DROP",   // semicolon
		"",            // empty
		"hello world", // space
		"sess\n001",   // newline
	}
	for _, tc := range cases {
		assert.False(t, safeStringRe.MatchString(tc), "expected invalid: %s", tc)
	}
}
