package domain

import "time"

// Transaction log entry types
const (
	TypePending = "pending" // Seeded before settlement
	TypeSend    = "send"    // Origin side after settlement
	TypeReceive = "receive" // Destination/miner side after settlement
	TypeFailed  = "failed"  // Terminal failure
)

// WalletTransaction Model. A log entry embedded in one wallet. The
// AllTransactionID is a lookup key back to the ledger entry, not an
// ownership edge.
type WalletTransaction struct {
	ID               uint      `gorm:"primaryKey" json:"id"`        // Primary key
	WalletID         uint      `gorm:"index;not null" json:"-"`     // Owning wallet
	Type             string    `gorm:"not null" json:"type"`        // pending, send, receive or failed
	Token            string    `gorm:"not null" json:"token"`       // Token symbol
	Amount           float64   `gorm:"not null" json:"amount"`      // Transferred amount
	Address          string    `gorm:"not null" json:"address"`     // Counterparty public key
	Timestamp        time.Time `json:"timestamp"`                   // Time of the transfer intent
	AllTransactionID uint      `gorm:"index" json:"allTransactionId"` // Back-reference to the ledger entry
}
