package api

import (
	"context"                        // Context for Redis operations
	"net/http"                       // HTTP status codes
	"time"                           // Cache TTL
	"wallet_backend/internal/domain" // Importing domain models
	"wallet_backend/internal/ledger" // Wallet and settlement service
	"wallet_backend/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"      // Gin web framework
	"github.com/redis/go-redis/v9"  // Redis client
	"github.com/shopspring/decimal" // Exact decimal amounts
)

// CreateOrderRequest carries a swap order against a listed asset.
type CreateOrderRequest struct {
	Asset  string          `json:"asset" binding:"required"`  // Asset symbol
	Amount decimal.Decimal `json:"amount" binding:"required"` // Ordered amount
	Price  decimal.Decimal `json:"price" binding:"required"`  // Quoted price
}

// AssetPrice is the quote payload of one asset.
type AssetPrice struct {
	Symbol string          `json:"symbol"` // Asset symbol
	Price  decimal.Decimal `json:"price"`  // Quoted price
}

// ListAssetsHandler returns every listed asset, cached for 60 seconds.
func ListAssetsHandler(svc *ledger.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Context for Redis operations
		var cached []domain.Asset
		// Serve from cache when present
		if found, err := utils.GetCache(ctx, rdb, "assets:list", &cached); err == nil && found {
			respond(c, ok(http.StatusOK, "Assets retrieved successfully", cached))
			return
		}
		assets, err := svc.ListAssets()
		if err != nil {
			respond(c, failFrom(err, "Failed to retrieve assets"))
			return
		}
		_ = utils.SetCache(ctx, rdb, "assets:list", assets, 60*time.Second) // Cache the asset list
		respond(c, ok(http.StatusOK, "Assets retrieved successfully", assets))
	}
}

// GetAssetPriceHandler quotes one asset, cached for 60 seconds.
func GetAssetPriceHandler(svc *ledger.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		symbol := c.Param("symbol")
		ctx := context.Background()          // Context for Redis operations
		cacheKey := "assets:price:" + symbol // Cache key per symbol
		var cached AssetPrice
		// Serve from cache when present
		if found, err := utils.GetCache(ctx, rdb, cacheKey, &cached); err == nil && found {
			respond(c, ok(http.StatusOK, "Asset price retrieved successfully", cached))
			return
		}
		price, err := svc.GetAssetPrice(symbol)
		if err != nil {
			respond(c, failFrom(err, "Failed to retrieve asset price"))
			return
		}
		quote := AssetPrice{Symbol: symbol, Price: price}
		_ = utils.SetCache(ctx, rdb, cacheKey, quote, 60*time.Second) // Cache the quote
		respond(c, ok(http.StatusOK, "Asset price retrieved successfully", quote))
	}
}

// CreateOrderHandler records a swap order.
func CreateOrderHandler(svc *ledger.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil || !req.Amount.IsPositive() {
			respondCreated(c, fail(http.StatusBadRequest, "Invalid request", nil))
			return
		}
		order, err := svc.CreateOrder(req.Asset, req.Amount, req.Price)
		if err != nil {
			respondCreated(c, failFrom(err, "Failed to create order"))
			return
		}
		respondCreated(c, ok(http.StatusCreated, "Order created successfully", order))
	}
}
