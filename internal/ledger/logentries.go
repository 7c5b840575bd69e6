package ledger

import (
	"errors"
	"fmt"
	"wallet_backend/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// AddLogEntry appends a transaction-log entry to the wallet addressed by
// publicKey and returns the stored entry.
func (s *Service) AddLogEntry(publicKey string, entry domain.WalletTransaction) (*domain.WalletTransaction, error) {
	wallet, err := s.FindWalletByPublicKey(publicKey)
	if err != nil {
		return nil, err
	}
	entry.WalletID = wallet.ID
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("failed to add transaction to wallet %s: %w", publicKey, err)
	}
	return &entry, nil
}

// FindLogEntry loads one log entry of the wallet addressed by publicKey.
func (s *Service) FindLogEntry(publicKey string, id uint) (*domain.WalletTransaction, error) {
	wallet, err := s.FindWalletByPublicKey(publicKey)
	if err != nil {
		return nil, err
	}
	var entry domain.WalletTransaction
	err = s.db.Where("wallet_id = ?", wallet.ID).First(&entry, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: id %d in wallet %s", ErrLogEntryNotFound, id, publicKey)
	} else if err != nil {
		return nil, fmt.Errorf("failed to retrieve wallet transaction: %w", err)
	}
	return &entry, nil
}

// FindLogEntryByAllTransactionID locates the log entry of one wallet that
// references the given ledger entry. The back-reference is a lookup key
// only, not an ownership edge.
func (s *Service) FindLogEntryByAllTransactionID(publicKey string, allTransactionID uint) (*domain.WalletTransaction, error) {
	wallet, err := s.FindWalletByPublicKey(publicKey)
	if err != nil {
		return nil, err
	}
	entry := wallet.LogEntryByAllTransactionID(allTransactionID)
	if entry == nil {
		return nil, fmt.Errorf("%w for allTransactionId %d in wallet %s",
			ErrLogEntryNotFound, allTransactionID, publicKey)
	}
	return entry, nil
}

// UpdateLogEntry applies field updates to one log entry of a wallet.
func (s *Service) UpdateLogEntry(publicKey string, id uint, updates map[string]any) (*domain.WalletTransaction, error) {
	entry, err := s.FindLogEntry(publicKey, id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(entry).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update wallet transaction %d: %w", id, err)
	}
	return entry, nil
}

// DeleteLogEntry removes one log entry of a wallet.
func (s *Service) DeleteLogEntry(publicKey string, id uint) error {
	entry, err := s.FindLogEntry(publicKey, id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(entry).Error; err != nil {
		return fmt.Errorf("failed to delete wallet transaction %d: %w", id, err)
	}
	return nil
}
