package ledger

import (
	"testing"
	"time"
	"wallet_backend/internal/domain"
)

func TestCreateTransferProcess_SeedsIntent(t *testing.T) {
	svc := setupTestService(t)
	newTestWallet(t, svc, "sender", 10)
	newTestWallet(t, svc, "receiver", 0)

	result, err := svc.CreateTransferProcess(ProcessParams{
		From: "sender", To: "receiver", Amount: 3, Token: SeedToken, Commission: 1,
	})
	if err != nil {
		t.Fatalf("CreateTransferProcess failed: %v", err)
	}

	entry, err := svc.FindEntry(result.AllTransactionID)
	if err != nil {
		t.Fatalf("FindEntry failed: %v", err)
	}
	if entry.Status != domain.StatusPending {
		t.Errorf("Expected status %s, got %s", domain.StatusPending, entry.Status)
	}
	if entry.From != "sender" || entry.To != "receiver" {
		t.Errorf("Expected entry sender/receiver, got %s/%s", entry.From, entry.To)
	}

	// No funds move at intent time.
	if got := holdingAmount(t, svc, "sender", SeedToken); got != 10 {
		t.Errorf("Expected sender balance untouched at 10, got %v", got)
	}

	originEntry, err := svc.FindLogEntry("sender", result.OriginWalletTransaction.ID)
	if err != nil {
		t.Fatalf("Origin log entry lookup failed: %v", err)
	}
	if originEntry.Type != domain.TypePending {
		t.Errorf("Expected origin log entry type %s, got %s", domain.TypePending, originEntry.Type)
	}
	if originEntry.Address != "receiver" {
		t.Errorf("Expected origin entry addressed to receiver, got %q", originEntry.Address)
	}
	if originEntry.AllTransactionID != entry.ID {
		t.Errorf("Expected origin entry to reference ledger entry %d, got %d",
			entry.ID, originEntry.AllTransactionID)
	}

	destinationEntry, err := svc.FindLogEntry("receiver", result.DestinationWalletTransaction.ID)
	if err != nil {
		t.Fatalf("Destination log entry lookup failed: %v", err)
	}
	if destinationEntry.Address != "sender" {
		t.Errorf("Expected destination entry addressed to sender, got %q", destinationEntry.Address)
	}

	pending, err := svc.ListPendingEntries()
	if err != nil {
		t.Fatalf("ListPendingEntries failed: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != entry.ID {
		t.Errorf("Expected the intent in the pending list, got %d entries", len(pending))
	}
}

func TestCreateTransferProcess_UnwindsWhenDestinationMissing(t *testing.T) {
	svc := setupTestService(t)
	newTestWallet(t, svc, "sender", 10)

	_, err := svc.CreateTransferProcess(ProcessParams{
		From: "sender", To: "ghost", Amount: 3, Token: SeedToken, Commission: 1,
	})
	if err == nil {
		t.Fatalf("Expected CreateTransferProcess to fail for a missing destination")
	}

	// Both inserts that happened before the failure must be gone.
	entries, err := svc.ListEntries()
	if err != nil {
		t.Fatalf("ListEntries failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no ledger entries after unwind, got %d", len(entries))
	}
	sender, err := svc.FindWalletByPublicKey("sender")
	if err != nil {
		t.Fatalf("FindWalletByPublicKey failed: %v", err)
	}
	if len(sender.Transactions) != 0 {
		t.Errorf("Expected no log entries in the sender wallet after unwind, got %d", len(sender.Transactions))
	}
}

func TestListPendingEntries_OldestFirst(t *testing.T) {
	svc := setupTestService(t)

	older := time.Now().Add(-2 * time.Hour)
	newer := time.Now().Add(-1 * time.Hour)
	second, err := svc.CreateEntry(EntryParams{
		From: "a", To: "b", Amount: 1, Token: SeedToken, Timestamp: &newer,
	})
	if err != nil {
		t.Fatalf("CreateEntry failed: %v", err)
	}
	first, err := svc.CreateEntry(EntryParams{
		From: "b", To: "a", Amount: 2, Token: SeedToken, Timestamp: &older,
	})
	if err != nil {
		t.Fatalf("CreateEntry failed: %v", err)
	}

	pending, err := svc.ListPendingEntries()
	if err != nil {
		t.Fatalf("ListPendingEntries failed: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("Expected 2 pending entries, got %d", len(pending))
	}
	if pending[0].ID != first.ID || pending[1].ID != second.ID {
		t.Errorf("Expected pending entries oldest first, got [%d %d]", pending[0].ID, pending[1].ID)
	}

	if _, err := svc.CompleteEntry(first.ID, "miner"); err != nil {
		t.Fatalf("CompleteEntry failed: %v", err)
	}
	pending, err = svc.ListPendingEntries()
	if err != nil {
		t.Fatalf("ListPendingEntries failed: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != second.ID {
		t.Errorf("Expected only the unsettled entry to stay pending, got %d entries", len(pending))
	}
}
