package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Sentinel errors for the stores and the settlement engine. Callers branch
// with errors.Is; wrapped messages carry the identifying context.
var (
	ErrWalletNotFound       = errors.New("wallet not found")
	ErrWalletExists         = errors.New("a wallet with the same public key already exists")
	ErrEntryNotFound        = errors.New("transaction not found")
	ErrLogEntryNotFound     = errors.New("wallet transaction not found")
	ErrHoldingNotFound      = errors.New("no holding found")
	ErrHoldingExists        = errors.New("holding already exists in the wallet")
	ErrNotPending           = errors.New("transaction is not in pending state")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrAssetNotFound        = errors.New("asset not found")
)

// SettlementError reports a failed settlement attempt together with the
// snapshot of whatever partial rollback state was recorded, to aid manual
// reconciliation when compensation itself failed.
type SettlementError struct {
	Err      error         // Original failure
	Rollback RollbackState // Snapshot recorded up to the point of failure
}

func (e *SettlementError) Error() string {
	snapshot, _ := json.Marshal(e.Rollback)
	return fmt.Sprintf("%v rollbackData: %s", e.Err, snapshot)
}

func (e *SettlementError) Unwrap() error {
	return e.Err
}
