package memory

import (
	"sync"
	"testing"
	"time"

	"crossborder-orchestrator/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(id string) *domain.PaymentSession {
	return &domain.PaymentSession{
		SessionID:       id,
		OriginBank:      "THAI_BANK_001",
		DestinationBank: "MAYBANK_001",
		Status:          domain.StatusPendingVerification,
		CreatedAt:       time.Now().UTC(),
	}
}

func TestSessionRepository_CreateAndGet(t *testing.T) {
	repo := NewSessionRepository()

	require.NoError(t, repo.Create(newSession("s-1")))

	got, ok := repo.Get("s-1")
	require.True(t, ok)
	assert.Equal(t, domain.StatusPendingVerification, got.Status)

	_, ok = repo.Get("s-2")
	assert.False(t, ok)
}

func TestSessionRepository_CreateDuplicateFails(t *testing.T) {
	repo := NewSessionRepository()
	require.NoError(t, repo.Create(newSession("s-1")))
	require.Error(t, repo.Create(newSession("s-1")))
}

func TestSessionRepository_GetReturnsSnapshot(t *testing.T) {
	repo := NewSessionRepository()
	require.NoError(t, repo.Create(newSession("s-1")))

	snap, ok := repo.Get("s-1")
	require.True(t, ok)
	snap.Status = domain.StatusCompleted

	fresh, _ := repo.Get("s-1")
	assert.Equal(t, domain.StatusPendingVerification, fresh.Status,
		"mutating a snapshot must not leak into the repository")
}

func TestSessionRepository_Update(t *testing.T) {
	repo := NewSessionRepository()
	require.NoError(t, repo.Create(newSession("s-1")))

	err := repo.Update("s-1", func(s *domain.PaymentSession) error {
		s.Status = domain.StatusVerified
		return nil
	})
	require.NoError(t, err)

	got, _ := repo.Get("s-1")
	assert.Equal(t, domain.StatusVerified, got.Status)

	require.Error(t, repo.Update("missing", func(s *domain.PaymentSession) error { return nil }))
}

func TestSessionRepository_ProcessingGuard_Atomic(t *testing.T) {
	repo := NewSessionRepository()
	require.NoError(t, repo.Create(newSession("s-1")))

	const attempts = 32
	var wg sync.WaitGroup
	acquired := make(chan bool, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := repo.TryBeginProcessing("s-1", "THAI_BANK_001")
			require.NoError(t, err)
			acquired <- ok
		}()
	}
	wg.Wait()
	close(acquired)

	wins := 0
	for ok := range acquired {
		if ok {
			wins++
		}
	}
	assert.Equal(t, 1, wins, "exactly one goroutine may hold the per-bank guard")

	// Guard is per-bank, not session-global.
	ok, err := repo.TryBeginProcessing("s-1", "MAYBANK_001")
	require.NoError(t, err)
	assert.True(t, ok)

	repo.EndProcessing("s-1", "THAI_BANK_001")
	ok, err = repo.TryBeginProcessing("s-1", "THAI_BANK_001")
	require.NoError(t, err)
	assert.True(t, ok, "guard is reusable after EndProcessing")
}

func TestSessionRepository_ProcessingGuard_UnknownSession(t *testing.T) {
	repo := NewSessionRepository()
	_, err := repo.TryBeginProcessing("missing", "THAI_BANK_001")
	require.Error(t, err)
	repo.EndProcessing("missing", "THAI_BANK_001") // no panic
}
