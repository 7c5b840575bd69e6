package ledger

import (
	"errors"
	"fmt"
	"wallet_backend/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// SeedToken is the holding every new wallet starts with, at amount zero.
const SeedToken = "SOL"

// CreateWallet registers a wallet seeded with a zero SOL holding. The
// password is expected to be hashed already.
func (s *Service) CreateWallet(mnemonic, publicKey, password string) (*domain.Wallet, error) {
	// Reject duplicate public keys up front
	var existing domain.Wallet
	if err := s.db.Where("public_key = ?", publicKey).First(&existing).Error; err == nil {
		return nil, ErrWalletExists
	}
	wallet := &domain.Wallet{
		Mnemonic:       mnemonic,
		PublicKey:      publicKey,
		Password:       password,
		CryptoHoldings: []domain.CryptoHolding{{Token: SeedToken, Amount: 0}},
		Transactions:   []domain.WalletTransaction{},
	}
	if err := s.db.Create(wallet).Error; err != nil {
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}
	return wallet, nil
}

// FindWalletByID loads a wallet with its holdings and transaction log.
func (s *Service) FindWalletByID(id uint) (*domain.Wallet, error) {
	var wallet domain.Wallet
	err := s.db.Preload("CryptoHoldings").Preload("Transactions").First(&wallet, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: id %d", ErrWalletNotFound, id)
	} else if err != nil {
		return nil, fmt.Errorf("failed to retrieve wallet: %w", err)
	}
	return &wallet, nil
}

// FindWalletByPublicKey loads a wallet with its holdings and transaction log.
func (s *Service) FindWalletByPublicKey(publicKey string) (*domain.Wallet, error) {
	var wallet domain.Wallet
	err := s.db.Preload("CryptoHoldings").Preload("Transactions").
		Where("public_key = ?", publicKey).First(&wallet).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w for public key %s", ErrWalletNotFound, publicKey)
	} else if err != nil {
		return nil, fmt.Errorf("failed to retrieve wallet: %w", err)
	}
	return &wallet, nil
}

// FindWalletByMnemonic resolves the login identifier to a wallet.
func (s *Service) FindWalletByMnemonic(mnemonic string) (*domain.Wallet, error) {
	var wallet domain.Wallet
	err := s.db.Preload("CryptoHoldings").Preload("Transactions").
		Where("mnemonic = ?", mnemonic).First(&wallet).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrWalletNotFound
	} else if err != nil {
		return nil, fmt.Errorf("failed to retrieve wallet: %w", err)
	}
	return &wallet, nil
}

// ListWallets returns all wallets with holdings and transaction logs.
func (s *Service) ListWallets() ([]domain.Wallet, error) {
	var wallets []domain.Wallet
	if err := s.db.Preload("CryptoHoldings").Preload("Transactions").Find(&wallets).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve wallets: %w", err)
	}
	return wallets, nil
}

// SaveWallet persists the wallet row together with every holding and log
// entry it carries, in one database transaction. This is the analogue of a
// single document write: one wallet's state lands atomically, with no
// isolation across wallets.
func (s *Service) SaveWallet(wallet *domain.Wallet) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for i := range wallet.CryptoHoldings {
			wallet.CryptoHoldings[i].WalletID = wallet.ID
			if err := tx.Save(&wallet.CryptoHoldings[i]).Error; err != nil {
				return err
			}
		}
		for i := range wallet.Transactions {
			wallet.Transactions[i].WalletID = wallet.ID
			if err := tx.Save(&wallet.Transactions[i]).Error; err != nil {
				return err
			}
		}
		return tx.Omit("CryptoHoldings", "Transactions").Save(wallet).Error
	})
	if err != nil {
		return fmt.Errorf("failed to update wallet %d: %w", wallet.ID, err)
	}
	return nil
}

// DeleteWallet removes a wallet and its owned rows. Admin use only.
func (s *Service) DeleteWallet(id uint) error {
	wallet, err := s.FindWalletByID(id)
	if err != nil {
		return err
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("wallet_id = ?", wallet.ID).Delete(&domain.CryptoHolding{}).Error; err != nil {
			return err
		}
		if err := tx.Where("wallet_id = ?", wallet.ID).Delete(&domain.WalletTransaction{}).Error; err != nil {
			return err
		}
		return tx.Delete(wallet).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete wallet %d: %w", id, err)
	}
	return nil
}

// RemoveHolding drops one holding row and detaches it from the wallet's
// in-memory slice.
func (s *Service) RemoveHolding(wallet *domain.Wallet, token string) error {
	holding := wallet.Holding(token)
	if holding == nil {
		return fmt.Errorf("%w for token %s in wallet %d", ErrHoldingNotFound, token, wallet.ID)
	}
	if err := s.db.Delete(&domain.CryptoHolding{}, holding.ID).Error; err != nil {
		return fmt.Errorf("failed to delete holding %d: %w", holding.ID, err)
	}
	kept := wallet.CryptoHoldings[:0]
	for _, h := range wallet.CryptoHoldings {
		if h.Token != token {
			kept = append(kept, h)
		}
	}
	wallet.CryptoHoldings = kept
	return nil
}
