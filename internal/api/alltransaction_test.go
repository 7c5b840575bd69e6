package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"wallet_backend/internal/domain"
	"wallet_backend/internal/ledger"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *ledger.Service) {
	gin.SetMode(gin.TestMode)
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	err = db.AutoMigrate(
		&domain.Wallet{},
		&domain.CryptoHolding{},
		&domain.WalletTransaction{},
		&domain.AllTransaction{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test schema: %v", err)
	}
	svc := ledger.NewService(db)

	// nil Redis client disables caching
	r := gin.New()
	r.POST("/transactions", CreateTransactionHandler(svc))
	r.POST("/all-transactions/process", ProcessTransactionHandler(svc, nil))
	r.PUT("/all-transactions/update-pending/:id", UpdatePendingTransactionHandler(svc, nil))
	return r, svc
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, Response) {
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Failed to marshal request body: %v", err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response envelope: %v", err)
	}
	return w, resp
}

func TestUpdatePendingTransactionHandler_SettlesIntent(t *testing.T) {
	r, svc := setupTestRouter(t)
	for _, key := range []string{"sender", "receiver", "miner"} {
		if _, err := svc.CreateWallet("mnemonic for "+key, key, "hashed"); err != nil {
			t.Fatalf("CreateWallet(%s) failed: %v", key, err)
		}
	}
	if _, err := svc.UpdateHolding("sender", ledger.SeedToken, 10); err != nil {
		t.Fatalf("Failed to fund sender: %v", err)
	}

	w, resp := doRequest(t, r, http.MethodPost, "/all-transactions/process", gin.H{
		"from": "sender", "to": "receiver", "amount": 3,
		"token": ledger.SeedToken, "commission": 1,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected HTTP 201 from process, got %d", w.Code)
	}
	if !resp.Success || resp.StatusCode != http.StatusCreated {
		t.Fatalf("Expected a success envelope from process, got %+v", resp)
	}
	intent := resp.Data.(map[string]any)
	entryID := uint(intent["allTransactionId"].(float64))

	w, resp = doRequest(t, r, http.MethodPut,
		fmt.Sprintf("/all-transactions/update-pending/%d", entryID),
		gin.H{"minerWallet": "miner"})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected HTTP 200 from settlement, got %d", w.Code)
	}
	if !resp.Success || resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected a success envelope from settlement, got %+v", resp)
	}

	entry, err := svc.FindEntry(entryID)
	if err != nil {
		t.Fatalf("FindEntry failed: %v", err)
	}
	if entry.Status != domain.StatusComplete {
		t.Errorf("Expected entry status %s, got %s", domain.StatusComplete, entry.Status)
	}
}

func TestUpdatePendingTransactionHandler_NonPendingEnvelope(t *testing.T) {
	r, svc := setupTestRouter(t)
	entry, err := svc.CreateEntry(ledger.EntryParams{
		From: "sender", To: "receiver", Amount: 3, Token: ledger.SeedToken, Commission: 1,
	})
	if err != nil {
		t.Fatalf("CreateEntry failed: %v", err)
	}
	if _, err := svc.CompleteEntry(entry.ID, "miner"); err != nil {
		t.Fatalf("CompleteEntry failed: %v", err)
	}

	// Failures still ride an HTTP 200; callers branch on the envelope.
	w, resp := doRequest(t, r, http.MethodPut,
		fmt.Sprintf("/all-transactions/update-pending/%d", entry.ID),
		gin.H{"minerWallet": "miner"})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected HTTP 200, got %d", w.Code)
	}
	if resp.Success {
		t.Fatalf("Expected a failure envelope, got %+v", resp)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected envelope status 400, got %d", resp.StatusCode)
	}
	if resp.Message != "Transaction is not in pending state" {
		t.Errorf("Unexpected envelope message: %q", resp.Message)
	}
}

func TestUpdatePendingTransactionHandler_UnknownEntry(t *testing.T) {
	r, _ := setupTestRouter(t)

	w, resp := doRequest(t, r, http.MethodPut,
		"/all-transactions/update-pending/4242", gin.H{"minerWallet": "miner"})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected HTTP 200, got %d", w.Code)
	}
	if resp.Success || resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected a 404 failure envelope, got %+v", resp)
	}
	if resp.Message != "Transaction not found" {
		t.Errorf("Unexpected envelope message: %q", resp.Message)
	}
}
