package domain

import "time"

// Wallet Model. Holdings and the transaction log belong exclusively to the
// wallet; they are loaded and persisted together with it.
type Wallet struct {
	ID             uint                `gorm:"primaryKey" json:"id"`                              // Primary key
	CreatedAt      time.Time           `json:"createdAt"`                                         // Creation timestamp
	Mnemonic       string              `gorm:"uniqueIndex;not null" json:"mnemonic"`              // Login identifier
	PublicKey      string              `gorm:"uniqueIndex;not null" json:"publicKey"`             // Public address
	Password       string              `gorm:"not null" json:"-"`                                 // Bcrypt hash, never serialized
	CryptoHoldings []CryptoHolding     `gorm:"constraint:OnDelete:CASCADE" json:"cryptoHoldings"` // Per-token balances
	Transactions   []WalletTransaction `gorm:"constraint:OnDelete:CASCADE" json:"transactions"`   // Embedded transaction log
}

// CryptoHolding Model. One row per token per wallet.
type CryptoHolding struct {
	ID       uint    `gorm:"primaryKey" json:"id"`                               // Primary key
	WalletID uint    `gorm:"uniqueIndex:idx_wallet_token;not null" json:"-"`     // Owning wallet
	Token    string  `gorm:"uniqueIndex:idx_wallet_token;not null" json:"token"` // Token symbol
	Amount   float64 `gorm:"not null;default:0" json:"amount"`                   // Current balance
}

// Holding returns the wallet's holding for token, or nil if absent.
func (w *Wallet) Holding(token string) *CryptoHolding {
	for i := range w.CryptoHoldings {
		if w.CryptoHoldings[i].Token == token {
			return &w.CryptoHoldings[i]
		}
	}
	return nil
}

// LogEntryByAllTransactionID returns the wallet's log entry referencing the
// given ledger entry, or nil if absent.
func (w *Wallet) LogEntryByAllTransactionID(allTransactionID uint) *WalletTransaction {
	for i := range w.Transactions {
		if w.Transactions[i].AllTransactionID == allTransactionID {
			return &w.Transactions[i]
		}
	}
	return nil
}
