package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"crossborder-orchestrator/config"
	"crossborder-orchestrator/internal/core/domain"
	"crossborder-orchestrator/pkg/apperror"
)

// Seed writes initial bank records for any configured bank whose file
// does not exist yet. Each freshly created record gets a keypair from
// keygen. Existing files are left untouched.
func (s *BankStore) Seed(ctx context.Context, records []*domain.BankRecord, keygen func() (domain.BankKeys, error)) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return apperror.ErrStorageFailure(fmt.Errorf("create data dir: %w", err))
	}

	for _, record := range records {
		cfg, ok := s.bankByID(record.BankID)
		if !ok {
			return apperror.ErrInvalidBank(record.BankID)
		}
		if _, err := os.Stat(filepath.Join(s.dir, cfg.File)); err == nil {
			continue
		} else if !errors.Is(err, os.ErrNotExist) {
			return apperror.ErrStorageFailure(fmt.Errorf("stat bank record %s: %w", record.BankID, err))
		}

		keys, err := keygen()
		if err != nil {
			return apperror.InternalError(fmt.Errorf("generating keys for %s: %w", record.BankID, err))
		}
		record.BankKeys = keys
		if err := s.Save(ctx, record); err != nil {
			return err
		}
	}
	return nil
}

func (s *BankStore) bankByID(bankID string) (config.BankConfig, bool) {
	for _, cfg := range s.banks {
		if cfg.ID == bankID {
			return cfg, true
		}
	}
	return config.BankConfig{}, false
}
