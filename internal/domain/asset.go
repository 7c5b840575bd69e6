package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Asset Model. A swappable token listed by the exchange.
type Asset struct {
	ID     uint   `gorm:"primaryKey" json:"id"`               // Primary key
	Symbol string `gorm:"uniqueIndex;not null" json:"symbol"` // Token symbol
	Name   string `gorm:"not null" json:"name"`               // Display name
}

// Order Model. A swap order against a listed asset. Amounts are exact
// decimals, not floats.
type Order struct {
	ID        uint            `gorm:"primaryKey" json:"id"`              // Primary key
	AssetID   uint            `gorm:"index;not null" json:"assetId"`     // Ordered asset
	Amount    decimal.Decimal `gorm:"type:decimal(10,2)" json:"amount"`  // Ordered amount
	Price     decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`   // Quoted price
	Status    string          `gorm:"not null" json:"status"`            // created, filled, cancelled
	Reference string          `gorm:"uniqueIndex" json:"reference"`      // Client-facing order reference
	CreatedAt time.Time       `json:"createdAt"`                         // Creation timestamp
}
