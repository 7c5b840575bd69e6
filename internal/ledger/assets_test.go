package ledger

import (
	"errors"
	"testing"
	"wallet_backend/internal/domain"

	"github.com/shopspring/decimal"
)

func seedAsset(t *testing.T, svc *Service, symbol, name string) {
	if err := svc.DB().Create(&domain.Asset{Symbol: symbol, Name: name}).Error; err != nil {
		t.Fatalf("Failed to seed asset %s: %v", symbol, err)
	}
}

func TestGetAssetPrice(t *testing.T) {
	svc := setupTestService(t)
	seedAsset(t, svc, "BTC", "Bitcoin")

	price, err := svc.GetAssetPrice("BTC")
	if err != nil {
		t.Fatalf("GetAssetPrice failed: %v", err)
	}
	if !price.Equal(decimal.NewFromInt(100)) {
		t.Errorf("Expected flat quote 100, got %s", price.String())
	}

	_, err = svc.GetAssetPrice("DOGE")
	if !errors.Is(err, ErrAssetNotFound) {
		t.Fatalf("Expected ErrAssetNotFound for an unlisted asset, got: %v", err)
	}
}

func TestCreateOrder(t *testing.T) {
	svc := setupTestService(t)
	seedAsset(t, svc, "BTC", "Bitcoin")

	amount := decimal.NewFromFloat(0.5)
	price := decimal.NewFromInt(100)
	order, err := svc.CreateOrder("BTC", amount, price)
	if err != nil {
		t.Fatalf("CreateOrder failed: %v", err)
	}
	if order.Status != "created" {
		t.Errorf("Expected order status created, got %q", order.Status)
	}
	if order.Reference == "" {
		t.Errorf("Expected a generated order reference")
	}
	if !order.Amount.Equal(amount) {
		t.Errorf("Expected amount %s, got %s", amount.String(), order.Amount.String())
	}

	_, err = svc.CreateOrder("DOGE", amount, price)
	if !errors.Is(err, ErrAssetNotFound) {
		t.Fatalf("Expected ErrAssetNotFound for an unlisted asset, got: %v", err)
	}
}
