package ledger

import (
	"errors"
	"fmt"
	"time"
	"wallet_backend/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// EntryParams carries the fields of a new ledger entry.
type EntryParams struct {
	From       string
	To         string
	Amount     float64
	Token      string
	Commission float64
	Timestamp  *time.Time // Defaults to now when nil
}

// CreateEntry records a transfer intent with status pending.
func (s *Service) CreateEntry(params EntryParams) (*domain.AllTransaction, error) {
	timestamp := time.Now()
	if params.Timestamp != nil {
		timestamp = *params.Timestamp
	}
	entry := &domain.AllTransaction{
		From:       params.From,
		To:         params.To,
		Amount:     params.Amount,
		Token:      params.Token,
		Commission: params.Commission,
		Timestamp:  timestamp,
		Status:     domain.StatusPending,
	}
	if err := s.db.Create(entry).Error; err != nil {
		return nil, fmt.Errorf("failed to create transaction in AllTransaction: %w", err)
	}
	return entry, nil
}

// FindEntry loads one ledger entry by id.
func (s *Service) FindEntry(id uint) (*domain.AllTransaction, error) {
	var entry domain.AllTransaction
	err := s.db.First(&entry, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: id %d", ErrEntryNotFound, id)
	} else if err != nil {
		return nil, fmt.Errorf("failed to retrieve transaction: %w", err)
	}
	return &entry, nil
}

// ListEntries returns every ledger entry.
func (s *Service) ListEntries() ([]domain.AllTransaction, error) {
	var entries []domain.AllTransaction
	if err := s.db.Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve transactions: %w", err)
	}
	return entries, nil
}

// ListPendingEntries returns pending ledger entries sorted by timestamp
// ascending, oldest first.
func (s *Service) ListPendingEntries() ([]domain.AllTransaction, error) {
	var entries []domain.AllTransaction
	err := s.db.Where("status = ?", domain.StatusPending).
		Order("timestamp asc").Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve pending transactions: %w", err)
	}
	return entries, nil
}

// UpdateEntry applies field updates to a ledger entry and returns the
// updated row.
func (s *Service) UpdateEntry(id uint, updates map[string]any) (*domain.AllTransaction, error) {
	entry, err := s.FindEntry(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(entry).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update transaction %d: %w", id, err)
	}
	return s.FindEntry(id)
}

// CompleteEntry flips a ledger entry to complete and records the miner.
// Complete is terminal; the transition is never reversed.
func (s *Service) CompleteEntry(id uint, minerWallet string) (*domain.AllTransaction, error) {
	return s.UpdateEntry(id, map[string]any{
		"status":       domain.StatusComplete,
		"miner_wallet": minerWallet,
	})
}

// DeleteEntry removes one ledger entry.
func (s *Service) DeleteEntry(id uint) error {
	result := s.db.Delete(&domain.AllTransaction{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete transaction %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: id %d", ErrEntryNotFound, id)
	}
	return nil
}
