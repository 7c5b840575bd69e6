package domain

import "time"

// Ledger entry statuses. A pending entry either completes or stays pending
// after a failed settlement attempt; complete is terminal.
const (
	StatusPending  = "pending"
	StatusComplete = "complete"
	StatusFailed   = "failed"
)

// AllTransaction Model. The canonical record of one transfer intent and its
// settlement status.
type AllTransaction struct {
	ID          uint      `gorm:"primaryKey" json:"id"`          // Primary key
	From        string    `gorm:"index;not null" json:"from"`    // Sender public key
	To          string    `gorm:"index;not null" json:"to"`      // Receiver public key
	Amount      float64   `gorm:"not null" json:"amount"`        // Transferred amount
	Token       string    `gorm:"not null" json:"token"`         // Token symbol
	Commission  float64   `gorm:"not null" json:"commission"`    // Fee paid to the settling miner
	Timestamp   time.Time `gorm:"index" json:"timestamp"`        // Intent creation time
	Status      string    `gorm:"index;not null" json:"status"`  // pending, complete or failed
	MinerWallet string    `json:"minerWallet"`                   // Set when settled
}
