package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// HealthCheck verifies the bank record files are readable.
type HealthCheck struct {
	store *BankStore
}

// NewHealthCheck creates a bank-store health checker.
func NewHealthCheck(store *BankStore) *HealthCheck {
	return &HealthCheck{store: store}
}

// Ping verifies every configured record file exists and is readable.
func (h *HealthCheck) Ping(ctx context.Context) error {
	for _, cfg := range h.store.banks {
		if _, err := os.Stat(filepath.Join(h.store.dir, cfg.File)); err != nil {
			return fmt.Errorf("bank record %s: %w", cfg.ID, err)
		}
	}
	return nil
}

// Name returns the dependency name.
func (h *HealthCheck) Name() string {
	return "bankstore"
}
