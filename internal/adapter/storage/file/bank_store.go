// Package file persists bank records as one JSON file per bank,
// rewritten in full on every mutation.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"crossborder-orchestrator/config"
	"crossborder-orchestrator/internal/core/domain"
	"crossborder-orchestrator/pkg/apperror"
)

// BankStore implements ports.BankStore over flat per-bank JSON files.
// A single mutex serializes all file access: record-level transactions
// only, no cross-record coordination.
type BankStore struct {
	mu    sync.Mutex
	dir   string
	banks []config.BankConfig
}

// NewBankStore creates a store rooted at dir for the configured banks.
func NewBankStore(dir string, banks []config.BankConfig) *BankStore {
	return &BankStore{dir: dir, banks: banks}
}

// LoadByCountry reads the record for a country's bank.
func (s *BankStore) LoadByCountry(ctx context.Context, country string) (*domain.BankRecord, error) {
	cfg, ok := s.bankByCountry(country)
	if !ok {
		return nil, apperror.ErrNotFound("Bank")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(cfg)
}

// LoadByBankID reads the record for a bank by its identifier.
func (s *BankStore) LoadByBankID(ctx context.Context, bankID string) (*domain.BankRecord, error) {
	for _, cfg := range s.banks {
		if cfg.ID == bankID {
			s.mu.Lock()
			defer s.mu.Unlock()
			return s.read(cfg)
		}
	}
	return nil, apperror.ErrInvalidBank(bankID)
}

// Save rewrites a bank record in full. The write goes to a temp file in
// the same directory and is renamed into place so readers never observe
// a torn record.
func (s *BankStore) Save(ctx context.Context, record *domain.BankRecord) error {
	var cfg *config.BankConfig
	for i := range s.banks {
		if s.banks[i].ID == record.BankID {
			cfg = &s.banks[i]
			break
		}
	}
	if cfg == nil {
		return apperror.ErrInvalidBank(record.BankID)
	}

	for _, u := range record.Users {
		if u.Balance < 0 {
			return apperror.InternalError(fmt.Errorf("negative balance for user %s", u.UserID))
		}
	}
	for _, m := range record.Merchants {
		if m.Balance < 0 {
			return apperror.InternalError(fmt.Errorf("negative balance for merchant %s", m.MerchantID))
		}
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return apperror.ErrStorageFailure(fmt.Errorf("marshal bank record: %w", err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	target := filepath.Join(s.dir, cfg.File)
	tmp, err := os.CreateTemp(s.dir, cfg.File+".tmp-*")
	if err != nil {
		return apperror.ErrStorageFailure(fmt.Errorf("create temp file: %w", err))
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return apperror.ErrStorageFailure(fmt.Errorf("write bank record: %w", err))
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return apperror.ErrStorageFailure(fmt.Errorf("close temp file: %w", err))
	}
	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return apperror.ErrStorageFailure(fmt.Errorf("replace bank record: %w", err))
	}
	return nil
}

// FindMerchantByID searches all banks for a merchant.
func (s *BankStore) FindMerchantByID(ctx context.Context, merchantID string) (*domain.Merchant, *domain.BankRecord, error) {
	return s.findMerchant(func(b *domain.BankRecord) *domain.Merchant {
		return b.FindMerchant(merchantID)
	})
}

// FindMerchantByQRCode searches all banks for a merchant by scannable code.
func (s *BankStore) FindMerchantByQRCode(ctx context.Context, qrCode string) (*domain.Merchant, *domain.BankRecord, error) {
	return s.findMerchant(func(b *domain.BankRecord) *domain.Merchant {
		return b.FindMerchantByQRCode(qrCode)
	})
}

func (s *BankStore) findMerchant(match func(*domain.BankRecord) *domain.Merchant) (*domain.Merchant, *domain.BankRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cfg := range s.banks {
		record, err := s.read(cfg)
		if err != nil {
			return nil, nil, err
		}
		if m := match(record); m != nil {
			return m, record, nil
		}
	}
	return nil, nil, apperror.ErrNotFound("Merchant")
}

func (s *BankStore) bankByCountry(country string) (config.BankConfig, bool) {
	for _, cfg := range s.banks {
		if cfg.Country == country {
			return cfg, true
		}
	}
	return config.BankConfig{}, false
}

func (s *BankStore) read(cfg config.BankConfig) (*domain.BankRecord, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, cfg.File))
	if err != nil {
		return nil, apperror.ErrStorageFailure(fmt.Errorf("read bank record %s: %w", cfg.ID, err))
	}
	var record domain.BankRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, apperror.ErrStorageFailure(fmt.Errorf("parse bank record %s: %w", cfg.ID, err))
	}
	return &record, nil
}
