package ledger

import (
	"errors"
	"testing"
	"wallet_backend/internal/domain"
)

func TestCreateWallet_SeedsZeroHolding(t *testing.T) {
	svc := setupTestService(t)

	wallet, err := svc.CreateWallet("some mnemonic", "pk-1", "hashed-password")
	if err != nil {
		t.Fatalf("CreateWallet failed: %v", err)
	}
	if len(wallet.CryptoHoldings) != 1 {
		t.Fatalf("Expected 1 seeded holding, got %d", len(wallet.CryptoHoldings))
	}
	if wallet.CryptoHoldings[0].Token != SeedToken || wallet.CryptoHoldings[0].Amount != 0 {
		t.Errorf("Expected a zero %s holding, got %s %v",
			SeedToken, wallet.CryptoHoldings[0].Token, wallet.CryptoHoldings[0].Amount)
	}

	_, err = svc.CreateWallet("other mnemonic", "pk-1", "hashed-password")
	if !errors.Is(err, ErrWalletExists) {
		t.Fatalf("Expected ErrWalletExists for a duplicate public key, got: %v", err)
	}
}

func TestFindWalletByPublicKey_NotFound(t *testing.T) {
	svc := setupTestService(t)

	_, err := svc.FindWalletByPublicKey("ghost")
	if !errors.Is(err, ErrWalletNotFound) {
		t.Fatalf("Expected ErrWalletNotFound, got: %v", err)
	}
}

func TestDeleteWallet_RemovesOwnedRows(t *testing.T) {
	svc := setupTestService(t)
	wallet := newTestWallet(t, svc, "pk-1", 5)
	if _, err := svc.AddLogEntry("pk-1", domain.WalletTransaction{
		Type: domain.TypeReceive, Token: SeedToken, Amount: 5, Address: "faucet",
	}); err != nil {
		t.Fatalf("AddLogEntry failed: %v", err)
	}

	if err := svc.DeleteWallet(wallet.ID); err != nil {
		t.Fatalf("DeleteWallet failed: %v", err)
	}

	if _, err := svc.FindWalletByID(wallet.ID); !errors.Is(err, ErrWalletNotFound) {
		t.Fatalf("Expected ErrWalletNotFound after delete, got: %v", err)
	}
	var holdings int64
	svc.DB().Model(&domain.CryptoHolding{}).Where("wallet_id = ?", wallet.ID).Count(&holdings)
	if holdings != 0 {
		t.Errorf("Expected no holdings left for wallet %d, got %d", wallet.ID, holdings)
	}
	var logEntries int64
	svc.DB().Model(&domain.WalletTransaction{}).Where("wallet_id = ?", wallet.ID).Count(&logEntries)
	if logEntries != 0 {
		t.Errorf("Expected no log entries left for wallet %d, got %d", wallet.ID, logEntries)
	}
}

func TestHoldings_Lifecycle(t *testing.T) {
	svc := setupTestService(t)
	newTestWallet(t, svc, "pk-1", 0)

	_, err := svc.AddHolding("pk-1", SeedToken, 1)
	if !errors.Is(err, ErrHoldingExists) {
		t.Fatalf("Expected ErrHoldingExists for the seeded token, got: %v", err)
	}

	if _, err := svc.AddHolding("pk-1", "ETH", 2); err != nil {
		t.Fatalf("AddHolding failed: %v", err)
	}
	if got := holdingAmount(t, svc, "pk-1", "ETH"); got != 2 {
		t.Errorf("Expected ETH balance 2, got %v", got)
	}

	if _, err := svc.UpdateHolding("pk-1", "ETH", 7); err != nil {
		t.Fatalf("UpdateHolding failed: %v", err)
	}
	if got := holdingAmount(t, svc, "pk-1", "ETH"); got != 7 {
		t.Errorf("Expected ETH balance 7, got %v", got)
	}

	if err := svc.DeleteHolding("pk-1", "ETH"); err != nil {
		t.Fatalf("DeleteHolding failed: %v", err)
	}
	holdings, err := svc.ListHoldings("pk-1")
	if err != nil {
		t.Fatalf("ListHoldings failed: %v", err)
	}
	if len(holdings) != 1 || holdings[0].Token != SeedToken {
		t.Errorf("Expected only the %s holding to remain, got %d holdings", SeedToken, len(holdings))
	}

	if err := svc.DeleteHolding("pk-1", "ETH"); !errors.Is(err, ErrHoldingNotFound) {
		t.Fatalf("Expected ErrHoldingNotFound for a deleted token, got: %v", err)
	}
}
