package ledger

import (
	"errors"
	"fmt"
	"wallet_backend/internal/domain" // Importing domain models

	"github.com/google/uuid"        // Order references
	"github.com/shopspring/decimal" // Exact decimal amounts
	"gorm.io/gorm"                  // GORM ORM library
)

// Quoted price per asset unit. The exchange quotes a flat price; live
// pricing is out of scope.
var assetUnitPrice = decimal.NewFromInt(100)

// ListAssets returns every listed asset.
func (s *Service) ListAssets() ([]domain.Asset, error) {
	var assets []domain.Asset
	if err := s.db.Find(&assets).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve assets: %w", err)
	}
	return assets, nil
}

// GetAssetPrice quotes the price of one listed asset.
func (s *Service) GetAssetPrice(symbol string) (decimal.Decimal, error) {
	var asset domain.Asset
	err := s.db.Where("symbol = ?", symbol).First(&asset).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrAssetNotFound, symbol)
	} else if err != nil {
		return decimal.Zero, fmt.Errorf("failed to retrieve asset: %w", err)
	}
	return assetUnitPrice, nil
}

// CreateOrder records a swap order against a listed asset.
func (s *Service) CreateOrder(symbol string, amount, price decimal.Decimal) (*domain.Order, error) {
	var asset domain.Asset
	err := s.db.Where("symbol = ?", symbol).First(&asset).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, symbol)
	} else if err != nil {
		return nil, fmt.Errorf("failed to retrieve asset: %w", err)
	}
	order := &domain.Order{
		AssetID:   asset.ID,
		Amount:    amount,
		Price:     price,
		Status:    "created",
		Reference: uuid.NewString(),
	}
	if err := s.db.Create(order).Error; err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return order, nil
}
