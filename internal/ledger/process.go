package ledger

import (
	"fmt"
	"time"
	"wallet_backend/internal/domain" // Importing domain models

	"github.com/google/uuid"     // Correlation ids
	"github.com/sirupsen/logrus" // Logging library
)

// ProcessParams carries a transfer intent request.
type ProcessParams struct {
	From       string
	To         string
	Amount     float64
	Token      string
	Commission float64
}

// WalletTransactionRef identifies a pending log entry seeded in one wallet.
type WalletTransactionRef struct {
	ID        uint   `json:"id"`        // Log entry id
	PublicKey string `json:"publicKey"` // Wallet the entry was seeded in
}

// ProcessResult is the payload of a successfully created transfer intent.
type ProcessResult struct {
	AllTransactionID             uint                 `json:"allTransactionId"`
	OriginWalletTransaction      WalletTransactionRef `json:"originWalletTransaction"`
	DestinationWalletTransaction WalletTransactionRef `json:"destinationWalletTransaction"`
}

// CreateTransferProcess creates a ledger entry with status pending, then
// seeds one pending log entry in the origin wallet (addressed to the
// receiver) and one in the destination wallet (addressed to the sender),
// all three sharing the ledger entry id and one timestamp. No balance is
// touched; the sender's funds are not reserved until settlement.
//
// The three inserts form a saga with LIFO compensation: if the ledger entry
// insert fails nothing happened; if either log insert fails, every record
// already inserted is deleted before the error is reported.
func (s *Service) CreateTransferProcess(params ProcessParams) (*ProcessResult, error) {
	timestamp := time.Now()
	log := logrus.WithFields(logrus.Fields{
		"attempt": uuid.NewString(), // Correlates the saga steps in the log
		"from":    params.From,
		"to":      params.To,
		"token":   params.Token,
		"amount":  params.Amount,
	})

	// Step 1: the ledger entry. Failure here needs no compensation.
	entry, err := s.CreateEntry(EntryParams{
		From:       params.From,
		To:         params.To,
		Amount:     params.Amount,
		Token:      params.Token,
		Commission: params.Commission,
		Timestamp:  &timestamp,
	})
	if err != nil {
		log.WithError(err).Error("Failed to create transaction in AllTransaction")
		return nil, err
	}

	// Step 2: pending entry in the origin wallet, addressed to the receiver.
	originEntry, err := s.AddLogEntry(params.From, domain.WalletTransaction{
		Type:             domain.TypePending,
		Token:            params.Token,
		Amount:           params.Amount,
		Address:          params.To,
		Timestamp:        timestamp,
		AllTransactionID: entry.ID,
	})
	if err != nil {
		log.WithError(err).Error("Failed to seed pending transaction in origin wallet")
		s.unwindProcess(log, entry.ID, nil, "")
		return nil, fmt.Errorf("origin wallet transaction creation error: %w", err)
	}

	// Step 3: pending entry in the destination wallet, addressed to the sender.
	destinationEntry, err := s.AddLogEntry(params.To, domain.WalletTransaction{
		Type:             domain.TypePending,
		Token:            params.Token,
		Amount:           params.Amount,
		Address:          params.From,
		Timestamp:        timestamp,
		AllTransactionID: entry.ID,
	})
	if err != nil {
		log.WithError(err).Error("Failed to seed pending transaction in destination wallet")
		s.unwindProcess(log, entry.ID, originEntry, params.From)
		return nil, fmt.Errorf("destination wallet transaction creation error: %w", err)
	}

	log.WithField("allTransactionId", entry.ID).Info("Transfer intent created")
	return &ProcessResult{
		AllTransactionID: entry.ID,
		OriginWalletTransaction: WalletTransactionRef{
			ID:        originEntry.ID,
			PublicKey: params.From,
		},
		DestinationWalletTransaction: WalletTransactionRef{
			ID:        destinationEntry.ID,
			PublicKey: params.To,
		},
	}, nil
}

// unwindProcess deletes, in reverse order, whatever the intent saga already
// inserted. Compensation failures are logged, not propagated; the caller
// reports the original error.
func (s *Service) unwindProcess(log *logrus.Entry, entryID uint, originEntry *domain.WalletTransaction, originKey string) {
	if originEntry != nil {
		if err := s.DeleteLogEntry(originKey, originEntry.ID); err != nil {
			log.WithError(err).Warn("Rollback failed: could not delete origin pending transaction")
		}
	}
	if err := s.DeleteEntry(entryID); err != nil {
		log.WithError(err).Warn("Rollback failed: could not delete AllTransaction entry")
	}
}
