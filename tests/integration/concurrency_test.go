package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crossborder-orchestrator/internal/core/domain"
)

// TestConcurrentVerifyBank hammers one session's verification from many
// goroutines. The per-(session, bank) guard plus the decided-outcome
// cache must keep the ledger at exactly one confirm per bank: every
// request either returns the cached outcome or a 429.
func TestConcurrentVerifyBank(t *testing.T) {
	app := newTestApp(t, "")
	sessionID := app.scan(t)

	const workers = 20
	var wg sync.WaitGroup
	var ok200, busy429, other atomic.Int64

	for i := 0; i < workers; i++ {
		bankID := "THAI_BANK_001"
		if i%2 == 1 {
			bankID = "MAYBANK_001"
		}
		wg.Add(1)
		go func(bankID string) {
			defer wg.Done()
			body := fmt.Sprintf(`{"sessionId":%q,"bankId":%q}`, sessionID, bankID)
			resp, err := http.Post(app.server.URL+"/verify-bank", "application/json", bytes.NewBufferString(body))
			if err != nil {
				other.Add(1)
				return
			}
			defer resp.Body.Close()
			switch resp.StatusCode {
			case http.StatusOK:
				ok200.Add(1)
			case http.StatusTooManyRequests:
				busy429.Add(1)
			default:
				other.Add(1)
			}
		}(bankID)
	}
	wg.Wait()

	assert.Equal(t, int64(0), other.Load())
	assert.Equal(t, int64(workers), ok200.Load()+busy429.Load())

	// Exactly one confirm transaction per bank reached the ledger.
	assert.Equal(t, 1, app.ledger.confirms(sessionID, "Thailand"))
	assert.Equal(t, 1, app.ledger.confirms(sessionID, "Malaysia"))
}

// TestConcurrentProcessPayment fires the same settlement request many
// times at once. Only one may transition the session and move funds.
func TestConcurrentProcessPayment(t *testing.T) {
	app := newTestApp(t, "")
	sessionID := app.scan(t)

	const workers = 10
	var wg sync.WaitGroup
	var accepted atomic.Int64

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			body := fmt.Sprintf(`{"sessionId":%q,"amount":1000}`, sessionID)
			resp, err := http.Post(app.server.URL+"/process-payment", "application/json", bytes.NewBufferString(body))
			if err != nil {
				return
			}
			defer resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				var parsed map[string]any
				_ = json.NewDecoder(resp.Body).Decode(&parsed)
				accepted.Add(1)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, int64(1), accepted.Load(), "exactly one settlement may win")

	app.waitForStatus(t, sessionID, "completed")

	// Single debit, single converted credit.
	thai, err := app.banks.LoadByCountry(context.Background(), "Thailand")
	require.NoError(t, err)
	assert.InDelta(t, 28980, thai.FindUser("USER_001").Balance, 1e-9)

	malay, err := app.banks.LoadByCountry(context.Background(), "Malaysia")
	require.NoError(t, err)
	assert.InDelta(t, 15130, malay.FindMerchant("MERCHANT_001").Balance, 1e-9)

	s, ok := app.sessions.Get(sessionID)
	require.True(t, ok)
	assert.Equal(t, domain.StatusCompleted, s.Status)
}
