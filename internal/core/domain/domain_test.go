package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerificationState_Decided(t *testing.T) {
	tests := []struct {
		name  string
		state VerificationState
		want  bool
	}{
		{"unverified", Unverified, false},
		{"verified", Verified, true},
		{"rejected", Rejected, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.Decided())
		})
	}
}

func TestStateFromBool(t *testing.T) {
	assert.Equal(t, Verified, StateFromBool(true))
	assert.Equal(t, Rejected, StateFromBool(false))
}

func TestSession_RecomputeStatus(t *testing.T) {
	tests := []struct {
		name   string
		origin VerificationState
		dest   VerificationState
		want   SessionStatus
	}{
		{"both undecided", Unverified, Unverified, StatusPendingVerification},
		{"origin only", Verified, Unverified, StatusPartialVerification},
		{"destination only", Unverified, Verified, StatusPartialVerification},
		{"both verified", Verified, Verified, StatusVerified},
		{"origin rejected", Rejected, Unverified, StatusVerificationFailed},
		{"destination rejected", Verified, Rejected, StatusVerificationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &PaymentSession{
				Status:                  StatusPendingVerification,
				OriginBankVerified:      tt.origin,
				DestinationBankVerified: tt.dest,
			}
			s.RecomputeStatus()
			assert.Equal(t, tt.want, s.Status)
		})
	}
}

func TestSession_RecomputeStatus_DoesNotRegressTerminalStates(t *testing.T) {
	for _, status := range []SessionStatus{StatusPaymentProcessing, StatusCompleted, StatusFailed} {
		s := &PaymentSession{
			Status:                  status,
			OriginBankVerified:      Verified,
			DestinationBankVerified: Verified,
		}
		s.RecomputeStatus()
		assert.Equal(t, status, s.Status)
	}
}

func TestSession_IsVerified_RequiresBothBanks(t *testing.T) {
	s := &PaymentSession{
		Status:                  StatusVerified,
		OriginBankVerified:      Verified,
		DestinationBankVerified: Unverified,
	}
	assert.False(t, s.IsVerified(), "verified requires both banks")

	s.DestinationBankVerified = Verified
	assert.True(t, s.IsVerified())
}

func TestSession_ProcessingGuard(t *testing.T) {
	s := &PaymentSession{OriginBank: "THAI_BANK_001", DestinationBank: "MAYBANK_001"}

	require.True(t, s.BeginProcessing("THAI_BANK_001"))
	assert.False(t, s.BeginProcessing("THAI_BANK_001"), "second begin must trip the guard")
	assert.True(t, s.BeginProcessing("MAYBANK_001"), "guard is per-bank, not session-global")

	s.EndProcessing("THAI_BANK_001")
	assert.True(t, s.BeginProcessing("THAI_BANK_001"))
}

func TestSession_EncryptedDataFor(t *testing.T) {
	s := &PaymentSession{
		OriginBank:               "THAI_BANK_001",
		DestinationBank:          "MAYBANK_001",
		OriginEncryptedData:      "cipher-origin",
		DestinationEncryptedData: "cipher-dest",
	}
	assert.Equal(t, "cipher-origin", s.EncryptedDataFor("THAI_BANK_001"))
	assert.Equal(t, "cipher-dest", s.EncryptedDataFor("MAYBANK_001"))
}

func TestVerificationPayload_RoundTrip(t *testing.T) {
	p := VerificationPayload{
		SessionID:       "s-1",
		MerchantID:      "MERCH_TH_001",
		PayerUserID:     "USER_MY_001",
		PayerCountry:    "Malaysia",
		MerchantCountry: "Thailand",
		Timestamp:       1700000000000,
	}

	data, err := p.Encode()
	require.NoError(t, err)

	decoded, err := DecodeVerificationPayload(data)
	require.NoError(t, err)
	assert.Equal(t, p, *decoded)
}

func TestVerificationPayload_Matches(t *testing.T) {
	s := &PaymentSession{SessionID: "s-1", MerchantID: "M1", PayerUserID: "U1"}

	ok := &VerificationPayload{SessionID: "s-1", MerchantID: "M1", PayerUserID: "U1"}
	assert.True(t, ok.Matches(s))

	wrongSession := &VerificationPayload{SessionID: "s-2", MerchantID: "M1", PayerUserID: "U1"}
	assert.False(t, wrongSession.Matches(s))

	emptyMerchant := &VerificationPayload{SessionID: "s-1", PayerUserID: "U1"}
	assert.False(t, emptyMerchant.Matches(s))
}

func TestBankRecord_Lookups(t *testing.T) {
	b := &BankRecord{
		BankID:   "THAI_BANK_001",
		Country:  "Thailand",
		Currency: "THB",
		Users: []User{
			{UserID: "USER_TH_001", Name: "Somchai", Balance: 29980},
		},
		Merchants: []Merchant{
			{MerchantID: "MERCH_TH_001", Name: "Bangkok Street Food", QRCode: "QR_TH_001"},
		},
	}

	require.NotNil(t, b.FindUser("USER_TH_001"))
	assert.Nil(t, b.FindUser("USER_TH_999"))

	require.NotNil(t, b.FindMerchant("MERCH_TH_001"))
	assert.Nil(t, b.FindMerchant("MERCH_TH_999"))

	m := b.FindMerchantByQRCode("QR_TH_001")
	require.NotNil(t, m)
	assert.Equal(t, "MERCH_TH_001", m.MerchantID)
	assert.Nil(t, b.FindMerchantByQRCode("QR_XX"))
}

func TestLedgerReceipt_Idempotent(t *testing.T) {
	assert.True(t, (&LedgerReceipt{TxHash: TxHashAlreadyProcessed}).Idempotent())
	assert.True(t, (&LedgerReceipt{TxHash: TxHashAlreadyVerified}).Idempotent())
	assert.False(t, (&LedgerReceipt{TxHash: "0xabc"}).Idempotent())
}

func TestLedgerVerificationStatus_Consensus(t *testing.T) {
	assert.True(t, (&LedgerVerificationStatus{Status: LedgerStatusVerified}).Consensus())
	assert.False(t, (&LedgerVerificationStatus{Status: "PENDING"}).Consensus())
}
