package api

import (
	"net/http"
	"testing"
	"wallet_backend/internal/domain"

	"github.com/gin-gonic/gin"
)

func TestCreateTransactionHandler_CreatedEnvelope(t *testing.T) {
	r, svc := setupTestRouter(t)
	if _, err := svc.CreateWallet("some mnemonic", "pk-1", "hashed"); err != nil {
		t.Fatalf("CreateWallet failed: %v", err)
	}

	w, resp := doRequest(t, r, http.MethodPost, "/transactions", gin.H{
		"address": "pk-1",
		"type":    domain.TypeReceive,
		"token":   "SOL",
		"amount":  5,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected HTTP 201, got %d", w.Code)
	}
	if !resp.Success {
		t.Fatalf("Expected a success envelope, got %+v", resp)
	}
	// Wire status and envelope status agree on creation routes.
	if resp.StatusCode != http.StatusCreated {
		t.Errorf("Expected envelope status 201, got %d", resp.StatusCode)
	}

	wallet, err := svc.FindWalletByPublicKey("pk-1")
	if err != nil {
		t.Fatalf("FindWalletByPublicKey failed: %v", err)
	}
	if len(wallet.Transactions) != 1 || wallet.Transactions[0].Type != domain.TypeReceive {
		t.Errorf("Expected one receive log entry, got %d", len(wallet.Transactions))
	}
}
