package ledger

import (
	"fmt"
	"wallet_backend/internal/domain" // Importing domain models
)

// ListHoldings returns every holding of the wallet addressed by publicKey.
func (s *Service) ListHoldings(publicKey string) ([]domain.CryptoHolding, error) {
	wallet, err := s.FindWalletByPublicKey(publicKey)
	if err != nil {
		return nil, err
	}
	return wallet.CryptoHoldings, nil
}

// AddHolding creates a holding for a token the wallet does not hold yet.
func (s *Service) AddHolding(publicKey, token string, amount float64) (*domain.CryptoHolding, error) {
	wallet, err := s.FindWalletByPublicKey(publicKey)
	if err != nil {
		return nil, err
	}
	if wallet.Holding(token) != nil {
		return nil, fmt.Errorf("%w: token %s in wallet %s", ErrHoldingExists, token, publicKey)
	}
	holding := domain.CryptoHolding{WalletID: wallet.ID, Token: token, Amount: amount}
	if err := s.db.Create(&holding).Error; err != nil {
		return nil, fmt.Errorf("failed to add holding to wallet %s: %w", publicKey, err)
	}
	return &holding, nil
}

// UpdateHolding sets the amount of one holding.
func (s *Service) UpdateHolding(publicKey, token string, amount float64) (*domain.CryptoHolding, error) {
	wallet, err := s.FindWalletByPublicKey(publicKey)
	if err != nil {
		return nil, err
	}
	holding := wallet.Holding(token)
	if holding == nil {
		return nil, fmt.Errorf("%w for token %s in wallet %s", ErrHoldingNotFound, token, publicKey)
	}
	holding.Amount = amount
	if err := s.db.Save(holding).Error; err != nil {
		return nil, fmt.Errorf("failed to update holding %d: %w", holding.ID, err)
	}
	return holding, nil
}

// DeleteHolding drops one holding of a wallet.
func (s *Service) DeleteHolding(publicKey, token string) error {
	wallet, err := s.FindWalletByPublicKey(publicKey)
	if err != nil {
		return err
	}
	return s.RemoveHolding(wallet, token)
}
