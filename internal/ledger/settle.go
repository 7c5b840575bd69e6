package ledger

import (
	"fmt"
	"time"
	"wallet_backend/internal/domain" // Importing domain models

	"github.com/google/uuid"     // Correlation ids
	"github.com/sirupsen/logrus" // Logging library
)

// RollbackState is the saga context of one settlement attempt. It is built
// up as steps commit and carries exactly the fields compensation needs; on
// failure it is reported alongside the original error so a partially
// applied settlement can be reconciled by hand if compensation also failed.
type RollbackState struct {
	OriginWalletID      uint    `json:"originWalletId,omitempty"`
	OriginEntryID       uint    `json:"originTransactionId,omitempty"`
	DestinationWalletID uint    `json:"destinationWalletId,omitempty"`
	DestinationEntryID  uint    `json:"destinationTransactionId,omitempty"`
	MinerWalletID       uint    `json:"minerWalletId,omitempty"`
	MinerEntryID        uint    `json:"minerTransactionId,omitempty"`
	AllTransactionID    uint    `json:"allTransactionId,omitempty"`
	Amount              float64 `json:"amount,omitempty"`
	Commission          float64 `json:"commissionAmount,omitempty"`
	Token               string  `json:"token,omitempty"`
}

// SettleResult is the payload of a successful settlement.
type SettleResult struct {
	UpdatedTransaction *domain.AllTransaction    `json:"updatedTransaction"`
	WalletOrigin       *domain.Wallet            `json:"walletOrigin"`
	WalletDestination  *domain.Wallet            `json:"walletDestination"`
	MinerTransaction   *domain.WalletTransaction `json:"minerTransaction"`
}

// SettlePending finalizes a pending ledger entry: it debits the sender by
// amount+commission, credits the receiver with the amount, credits the miner
// with the commission, flips the seeded log entries to send/receive, appends
// a receive entry to the miner's wallet and marks the ledger entry complete.
//
// Each wallet write is persisted before the next begins; there is no
// multi-document transaction. Any failure after the first committed write
// triggers best-effort compensation of every applied side effect, and the
// ledger entry stays pending. An advisory lock per entry id serializes
// concurrent attempts against the same entry.
func (s *Service) SettlePending(id uint, minerWallet string) (*SettleResult, error) {
	unlock := s.locks.lock(id)
	defer unlock()

	log := logrus.WithFields(logrus.Fields{
		"attempt":          uuid.NewString(), // Correlates the saga steps in the log
		"allTransactionId": id,
		"minerWallet":      minerWallet,
	})

	// Preconditions on the ledger entry itself; nothing to roll back yet.
	entry, err := s.FindEntry(id)
	if err != nil {
		return nil, err
	}
	if entry.Status != domain.StatusPending {
		return nil, fmt.Errorf("%w: transaction %d is %s", ErrNotPending, id, entry.Status)
	}

	rollback := RollbackState{
		AllTransactionID: id,
		Amount:           entry.Amount,
		Commission:       entry.Commission,
		Token:            entry.Token,
	}

	// Step 1: debit the origin wallet and flip its pending entry to send.
	origin, err := s.FindWalletByPublicKey(entry.From)
	if err != nil {
		return nil, s.settleFail(log, rollback, fmt.Errorf("origin wallet: %w", err))
	}
	originEntry := origin.LogEntryByAllTransactionID(id)
	if originEntry == nil {
		return nil, s.settleFail(log, rollback, fmt.Errorf(
			"%w in origin wallet %s for allTransactionId %d", ErrLogEntryNotFound, entry.From, id))
	}
	originHolding := origin.Holding(entry.Token)
	if originHolding == nil {
		return nil, s.settleFail(log, rollback, fmt.Errorf(
			"%w for token %s in the origin wallet %s", ErrHoldingNotFound, entry.Token, entry.From))
	}
	required := entry.Amount + entry.Commission
	// Strict inequality: a balance exactly equal to amount+commission is
	// rejected, matching the historical settlement behavior.
	if originHolding.Amount <= required {
		return nil, s.settleFail(log, rollback, fmt.Errorf(
			"%w in the origin wallet %s: available %v, required %v",
			ErrInsufficientFunds, entry.From, originHolding.Amount, required))
	}
	originHolding.Amount -= required
	originEntry.Type = domain.TypeSend
	if err := s.SaveWallet(origin); err != nil {
		return nil, s.settleFail(log, rollback, fmt.Errorf("failed to update origin wallet holdings: %w", err))
	}
	rollback.OriginWalletID = origin.ID
	rollback.OriginEntryID = originEntry.ID
	log.WithField("originWalletId", origin.ID).Info("Origin wallet debited")

	// Step 2: credit the destination wallet and flip its entry to receive.
	destination, err := s.FindWalletByPublicKey(entry.To)
	if err != nil {
		return nil, s.settleFail(log, rollback, fmt.Errorf("destination wallet: %w", err))
	}
	destinationEntry := destination.LogEntryByAllTransactionID(id)
	if destinationEntry == nil {
		return nil, s.settleFail(log, rollback, fmt.Errorf(
			"%w in destination wallet %s for allTransactionId %d", ErrLogEntryNotFound, entry.To, id))
	}
	if holding := destination.Holding(entry.Token); holding != nil {
		holding.Amount += entry.Amount
	} else {
		destination.CryptoHoldings = append(destination.CryptoHoldings, domain.CryptoHolding{
			WalletID: destination.ID,
			Token:    entry.Token,
			Amount:   entry.Amount,
		})
	}
	destinationEntry.Type = domain.TypeReceive
	if err := s.SaveWallet(destination); err != nil {
		return nil, s.settleFail(log, rollback, fmt.Errorf("failed to update destination wallet holdings: %w", err))
	}
	rollback.DestinationWalletID = destination.ID
	rollback.DestinationEntryID = destinationEntry.ID
	log.WithField("destinationWalletId", destination.ID).Info("Destination wallet credited")

	// Step 3: credit the miner with the commission and append its receive
	// entry.
	miner, err := s.FindWalletByPublicKey(minerWallet)
	if err != nil {
		return nil, s.settleFail(log, rollback, fmt.Errorf("miner wallet: %w", err))
	}
	if holding := miner.Holding(entry.Token); holding != nil {
		holding.Amount += entry.Commission
	} else {
		miner.CryptoHoldings = append(miner.CryptoHoldings, domain.CryptoHolding{
			WalletID: miner.ID,
			Token:    entry.Token,
			Amount:   entry.Commission,
		})
	}
	miner.Transactions = append(miner.Transactions, domain.WalletTransaction{
		WalletID:         miner.ID,
		Type:             domain.TypeReceive,
		Token:            entry.Token,
		Amount:           entry.Commission,
		Address:          entry.From,
		Timestamp:        time.Now(),
		AllTransactionID: id,
	})
	if err := s.SaveWallet(miner); err != nil {
		return nil, s.settleFail(log, rollback, fmt.Errorf("failed to update miner wallet holdings: %w", err))
	}
	minerEntry := &miner.Transactions[len(miner.Transactions)-1]
	rollback.MinerWalletID = miner.ID
	rollback.MinerEntryID = minerEntry.ID
	log.WithField("minerWalletId", miner.ID).Info("Miner wallet credited")

	// Step 4: flip the ledger entry to complete. The update is the commit
	// point: complete is terminal, and once it lands nothing is compensated,
	// so a refunded balance can never coexist with a completed entry.
	err = s.db.Model(&domain.AllTransaction{}).Where("id = ?", id).
		Updates(map[string]any{
			"status":       domain.StatusComplete,
			"miner_wallet": minerWallet,
		}).Error
	if err != nil {
		return nil, s.settleFail(log, rollback, fmt.Errorf("failed to update transaction %d: %w", id, err))
	}
	entry.Status = domain.StatusComplete
	entry.MinerWallet = minerWallet

	log.Info("Pending transaction settled")
	return &SettleResult{
		UpdatedTransaction: entry,
		WalletOrigin:       origin,
		WalletDestination:  destination,
		MinerTransaction:   minerEntry,
	}, nil
}

// settleFail compensates whatever the rollback state recorded and wraps the
// original error with the snapshot.
func (s *Service) settleFail(log *logrus.Entry, rollback RollbackState, cause error) error {
	log.WithError(cause).Error("Failed to update pending transaction, rolling back")
	s.compensate(log, rollback)
	return &SettlementError{Err: cause, Rollback: rollback}
}

// compensate undoes committed settlement steps in reverse, best-effort.
// Every sub-step failure is logged and swallowed: the caller reports the
// original error, and the snapshot in SettlementError is the reconciliation
// aid when part of this unwinding did not land.
func (s *Service) compensate(log *logrus.Entry, rollback RollbackState) {
	if rollback.MinerWalletID != 0 {
		miner, err := s.FindWalletByID(rollback.MinerWalletID)
		if err != nil {
			log.WithError(err).Warn("Rollback failed: could not load miner wallet")
		} else {
			if holding := miner.Holding(rollback.Token); holding != nil {
				holding.Amount -= rollback.Commission
			}
			if rollback.MinerEntryID != 0 {
				if err := s.db.Delete(&domain.WalletTransaction{}, rollback.MinerEntryID).Error; err != nil {
					log.WithError(err).Warn("Rollback failed: could not delete miner transaction")
				}
				kept := miner.Transactions[:0]
				for _, tx := range miner.Transactions {
					if tx.ID != rollback.MinerEntryID {
						kept = append(kept, tx)
					}
				}
				miner.Transactions = kept
			}
			if err := s.SaveWallet(miner); err != nil {
				log.WithError(err).Warn("Rollback failed: could not restore miner wallet")
			}
		}
	}

	if rollback.DestinationWalletID != 0 {
		destination, err := s.FindWalletByID(rollback.DestinationWalletID)
		if err != nil {
			log.WithError(err).Warn("Rollback failed: could not load destination wallet")
		} else {
			if holding := destination.Holding(rollback.Token); holding != nil {
				holding.Amount -= rollback.Amount
				if holding.Amount == 0 {
					if err := s.RemoveHolding(destination, rollback.Token); err != nil {
						log.WithError(err).Warn("Rollback failed: could not drop destination holding")
					}
				}
			}
			if entry := findEntryByID(destination, rollback.DestinationEntryID); entry != nil {
				entry.Type = domain.TypePending
			}
			if err := s.SaveWallet(destination); err != nil {
				log.WithError(err).Warn("Rollback failed: could not restore destination wallet")
			}
		}
	}

	if rollback.OriginWalletID != 0 {
		origin, err := s.FindWalletByID(rollback.OriginWalletID)
		if err != nil {
			log.WithError(err).Warn("Rollback failed: could not load origin wallet")
		} else {
			if holding := origin.Holding(rollback.Token); holding != nil {
				holding.Amount += rollback.Amount + rollback.Commission
			}
			if entry := findEntryByID(origin, rollback.OriginEntryID); entry != nil {
				entry.Type = domain.TypePending
			}
			if err := s.SaveWallet(origin); err != nil {
				log.WithError(err).Warn("Rollback failed: could not restore origin wallet")
			}
		}
	}
}

func findEntryByID(wallet *domain.Wallet, id uint) *domain.WalletTransaction {
	if id == 0 {
		return nil
	}
	for i := range wallet.Transactions {
		if wallet.Transactions[i].ID == id {
			return &wallet.Transactions[i]
		}
	}
	return nil
}
