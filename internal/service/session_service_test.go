package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"crossborder-orchestrator/internal/adapter/storage/memory"
	"crossborder-orchestrator/internal/core/domain"
	"crossborder-orchestrator/internal/core/ports"
	"crossborder-orchestrator/internal/core/ports/mocks"
	"crossborder-orchestrator/pkg/apperror"
)

type sessionFixture struct {
	svc      *SessionServiceImpl
	sessions *memory.SessionRepository
	banks    *mocks.MockBankStore
	ledger   *mocks.MockLedgerClient
	verifier *mocks.MockVerificationService
	thai     *domain.BankRecord
	malay    *domain.BankRecord
	merchant *domain.Merchant
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	thaiKeys, err := GenerateBankKeys()
	require.NoError(t, err)
	malayKeys, err := GenerateBankKeys()
	require.NoError(t, err)

	merchant := &domain.Merchant{
		MerchantID: "MERCHANT_001", Name: "KL Street Food", Balance: 15000, QRCode: "QR_MERCHANT_001",
	}
	thai := &domain.BankRecord{
		BankID: "THAI_BANK_001", Country: "Thailand", Currency: "THB", BankKeys: thaiKeys,
		Users: []domain.User{{UserID: "USER_001", Name: "Somchai", Balance: 29980}},
	}
	malay := &domain.BankRecord{
		BankID: "MAYBANK_001", Country: "Malaysia", Currency: "MYR", BankKeys: malayKeys,
		Merchants: []domain.Merchant{*merchant},
	}

	sessions := memory.NewSessionRepository()
	banks := mocks.NewMockBankStore(ctrl)
	ledger := mocks.NewMockLedgerClient(ctrl)
	verifier := mocks.NewMockVerificationService(ctrl)

	svc := NewSessionService(sessions, banks, NewRSAEnvelopeCodec(), ledger, verifier, zerolog.Nop())
	return &sessionFixture{
		svc: svc, sessions: sessions, banks: banks, ledger: ledger, verifier: verifier,
		thai: thai, malay: malay, merchant: merchant,
	}
}

func TestGenerateQR(t *testing.T) {
	f := newSessionFixture(t)
	f.banks.EXPECT().FindMerchantByID(gomock.Any(), "MERCHANT_001").Return(f.merchant, f.malay, nil)

	qr, err := f.svc.GenerateQR(context.Background(), "MERCHANT_001")
	require.NoError(t, err)
	assert.Equal(t, "QR_MERCHANT_001", qr.QRCode)
	assert.Equal(t, "KL Street Food", qr.MerchantName)
	assert.Equal(t, "Malaysia", qr.Country)
	assert.Equal(t, "MYR", qr.Currency)
}

func TestGenerateQR_UnknownMerchant(t *testing.T) {
	f := newSessionFixture(t)
	f.banks.EXPECT().FindMerchantByID(gomock.Any(), "NOBODY").
		Return(nil, nil, apperror.ErrNotFound("Merchant"))

	_, err := f.svc.GenerateQR(context.Background(), "NOBODY")
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "NF_001", appErr.Code)
}

func TestScanQR_CreatesSessionAndVerifiesBoth(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	f.banks.EXPECT().FindMerchantByQRCode(gomock.Any(), "QR_MERCHANT_001").Return(f.merchant, f.malay, nil)
	f.banks.EXPECT().LoadByCountry(gomock.Any(), "Thailand").Return(f.thai, nil)
	f.ledger.EXPECT().InitiateTransfer(gomock.Any(), domain.DirectionThailandToMalaysia, gomock.Any(), "MERCHANT_001", gomock.Any()).
		Return(&domain.LedgerReceipt{TxHash: "0xinit"}, nil)
	f.verifier.EXPECT().VerifyBank(gomock.Any(), gomock.Any(), "THAI_BANK_001").
		Return(&ports.VerifyResult{Verified: true}, nil)
	f.verifier.EXPECT().VerifyBank(gomock.Any(), gomock.Any(), "MAYBANK_001").
		Return(&ports.VerifyResult{Verified: true}, nil)

	res, err := f.svc.ScanQR(ctx, "QR_MERCHANT_001", "USER_001", "Thailand")
	require.NoError(t, err)
	assert.NotEmpty(t, res.SessionID)
	assert.Equal(t, "KL Street Food", res.MerchantName)
	assert.Equal(t, domain.DirectionThailandToMalaysia, res.Direction)
	assert.Equal(t, "0xinit", res.Receipt.TxHash)

	session, ok := f.sessions.Get(res.SessionID)
	require.True(t, ok)
	assert.Equal(t, "THAI_BANK_001", session.OriginBank)
	assert.Equal(t, "MAYBANK_001", session.DestinationBank)
	assert.NotEqual(t, session.OriginEncryptedData, session.DestinationEncryptedData)

	// Each ciphertext opens only with its own bank's key and carries the
	// session identity.
	codec := NewRSAEnvelopeCodec()
	payload, err := codec.Open(session.OriginEncryptedData, f.thai.BankKeys.PrivateKey)
	require.NoError(t, err)
	assert.True(t, payload.Matches(session))
	_, err = codec.Open(session.DestinationEncryptedData, f.thai.BankKeys.PrivateKey)
	assert.Error(t, err)
	payload, err = codec.Open(session.DestinationEncryptedData, f.malay.BankKeys.PrivateKey)
	require.NoError(t, err)
	assert.True(t, payload.Matches(session))
}

func TestScanQR_UnsupportedDirection(t *testing.T) {
	f := newSessionFixture(t)
	f.banks.EXPECT().FindMerchantByQRCode(gomock.Any(), "QR_MERCHANT_001").Return(f.merchant, f.malay, nil)

	_, err := f.svc.ScanQR(context.Background(), "QR_MERCHANT_001", "USER_MY", "Malaysia")
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "PAY_003", appErr.Code)
}

func TestScanQR_UnknownPayer(t *testing.T) {
	f := newSessionFixture(t)
	f.banks.EXPECT().FindMerchantByQRCode(gomock.Any(), "QR_MERCHANT_001").Return(f.merchant, f.malay, nil)
	f.banks.EXPECT().LoadByCountry(gomock.Any(), "Thailand").Return(f.thai, nil)

	_, err := f.svc.ScanQR(context.Background(), "QR_MERCHANT_001", "GHOST", "Thailand")
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "NF_001", appErr.Code)
}

func TestScanQR_LedgerFailurePropagates(t *testing.T) {
	f := newSessionFixture(t)
	f.banks.EXPECT().FindMerchantByQRCode(gomock.Any(), "QR_MERCHANT_001").Return(f.merchant, f.malay, nil)
	f.banks.EXPECT().LoadByCountry(gomock.Any(), "Thailand").Return(f.thai, nil)
	f.ledger.EXPECT().InitiateTransfer(gomock.Any(), domain.DirectionThailandToMalaysia, gomock.Any(), "MERCHANT_001", gomock.Any()).
		Return(nil, apperror.ErrLedgerCallFailure(errors.New("gateway down")))

	_, err := f.svc.ScanQR(context.Background(), "QR_MERCHANT_001", "USER_001", "Thailand")
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "LDG_001", appErr.Code)
}
