package api

import (
	"context"                        // Context for Redis operations
	"errors"                         // Error matching
	"net/http"                       // HTTP status codes
	"time"                           // Cache TTL and timestamps
	"wallet_backend/internal/domain" // Importing domain models
	"wallet_backend/internal/ledger" // Wallet and settlement service
	"wallet_backend/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// pendingCacheKey caches the pending ledger entries; every mutation of the
// AllTransaction collection invalidates it.
const pendingCacheKey = "alltransactions:pending"

// CreateAllTransactionRequest carries a raw ledger entry creation.
type CreateAllTransactionRequest struct {
	From       string     `json:"from" binding:"required"`   // Sender public key
	To         string     `json:"to" binding:"required"`     // Receiver public key
	Amount     float64    `json:"amount" binding:"required"` // Transferred amount
	Token      string     `json:"token" binding:"required"`  // Token symbol
	Commission float64    `json:"commission"`                // Miner fee
	Timestamp  *time.Time `json:"timestamp"`                 // Defaults to now
}

// UpdateAllTransactionRequest carries updatable ledger entry fields.
type UpdateAllTransactionRequest struct {
	Status      *string `json:"status"`      // New status, if set
	MinerWallet *string `json:"minerWallet"` // New miner wallet, if set
}

// MinerWalletRequest identifies the settling miner.
type MinerWalletRequest struct {
	MinerWallet string `json:"minerWallet" binding:"required"` // Miner public key
}

// CreateAllTransactionHandler records a ledger entry with status pending.
func CreateAllTransactionHandler(svc *ledger.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateAllTransactionRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			respondCreated(c, fail(http.StatusBadRequest, "Invalid request", nil))
			return
		}
		entry, err := svc.CreateEntry(ledger.EntryParams{
			From:       req.From,
			To:         req.To,
			Amount:     req.Amount,
			Token:      req.Token,
			Commission: req.Commission,
			Timestamp:  req.Timestamp,
		})
		if err != nil {
			respondCreated(c, failFrom(err, "Failed to create transaction in AllTransaction"))
			return
		}
		invalidatePendingCache(rdb)
		respondCreated(c, ok(http.StatusCreated, "Transaction created in AllTransaction successfully", entry))
	}
}

// ListAllTransactionsHandler returns every ledger entry.
func ListAllTransactionsHandler(svc *ledger.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries, err := svc.ListEntries()
		if err != nil {
			respond(c, failFrom(err, "Failed to retrieve transactions"))
			return
		}
		respond(c, ok(http.StatusOK, "Transactions retrieved successfully", entries))
	}
}

// ListPendingTransactionsHandler returns pending ledger entries sorted by
// timestamp ascending, served from cache when fresh.
func ListPendingTransactionsHandler(svc *ledger.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Context for Redis operations
		var cached []domain.AllTransaction
		// Serve from cache when present
		if found, err := utils.GetCache(ctx, rdb, pendingCacheKey, &cached); err == nil && found {
			respond(c, ok(http.StatusOK, "Pending transactions retrieved successfully", cached))
			return
		}
		entries, err := svc.ListPendingEntries()
		if err != nil {
			respond(c, failFrom(err, "Failed to retrieve pending transactions"))
			return
		}
		// Cache the result for 30 seconds
		_ = utils.SetCache(ctx, rdb, pendingCacheKey, entries, 30*time.Second)
		respond(c, ok(http.StatusOK, "Pending transactions retrieved successfully", entries))
	}
}

// GetAllTransactionHandler returns one ledger entry by id.
func GetAllTransactionHandler(svc *ledger.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, errResp := pathID(c, "id")
		if errResp != nil {
			respond(c, *errResp)
			return
		}
		entry, err := svc.FindEntry(id)
		if err != nil {
			respond(c, failFrom(err, "Failed to retrieve transaction"))
			return
		}
		respond(c, ok(http.StatusOK, "Transaction retrieved successfully", entry))
	}
}

// UpdateAllTransactionHandler applies partial updates to a ledger entry.
func UpdateAllTransactionHandler(svc *ledger.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, errResp := pathID(c, "id")
		if errResp != nil {
			respond(c, *errResp)
			return
		}
		var req UpdateAllTransactionRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			respond(c, fail(http.StatusBadRequest, "Invalid request", nil))
			return
		}
		updates := map[string]any{}
		if req.Status != nil {
			updates["status"] = *req.Status
		}
		if req.MinerWallet != nil {
			updates["miner_wallet"] = *req.MinerWallet
		}
		entry, err := svc.UpdateEntry(id, updates)
		if err != nil {
			respond(c, failFrom(err, "Failed to update transaction"))
			return
		}
		invalidatePendingCache(rdb)
		respond(c, ok(http.StatusOK, "Transaction updated successfully", entry))
	}
}

// UpdateMinerWalletHandler marks a ledger entry complete and records the
// miner, without touching any balance.
func UpdateMinerWalletHandler(svc *ledger.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, errResp := pathID(c, "id")
		if errResp != nil {
			respond(c, *errResp)
			return
		}
		var req MinerWalletRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			respond(c, fail(http.StatusBadRequest, "Invalid request", nil))
			return
		}
		entry, err := svc.CompleteEntry(id, req.MinerWallet)
		if err != nil {
			respond(c, failFrom(err, "Failed to update transaction"))
			return
		}
		invalidatePendingCache(rdb)
		respond(c, ok(http.StatusOK, "Miner wallet updated successfully", entry))
	}
}

// DeleteAllTransactionHandler removes one ledger entry.
func DeleteAllTransactionHandler(svc *ledger.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, errResp := pathID(c, "id")
		if errResp != nil {
			respond(c, *errResp)
			return
		}
		if err := svc.DeleteEntry(id); err != nil {
			respond(c, failFrom(err, "Failed to delete transaction"))
			return
		}
		invalidatePendingCache(rdb)
		respond(c, ok(http.StatusOK, "Transaction deleted successfully", nil))
	}
}

// ProcessTransactionHandler creates a transfer intent: one pending ledger
// entry plus the pending log entries seeded in both wallets.
func ProcessTransactionHandler(svc *ledger.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateAllTransactionRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			respondCreated(c, fail(http.StatusBadRequest, "Invalid request", nil))
			return
		}
		result, err := svc.CreateTransferProcess(ledger.ProcessParams{
			From:       req.From,
			To:         req.To,
			Amount:     req.Amount,
			Token:      req.Token,
			Commission: req.Commission,
		})
		if err != nil {
			respondCreated(c, failFrom(err, "Failed to complete transaction"))
			return
		}
		invalidatePendingCache(rdb)
		respondCreated(c, ok(http.StatusCreated, "Transaction created successfully", result))
	}
}

// UpdatePendingTransactionHandler finalizes a pending ledger entry on behalf
// of a miner. Failures keep the entry pending; the envelope carries the
// original error plus the recorded rollback snapshot.
func UpdatePendingTransactionHandler(svc *ledger.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, errResp := pathID(c, "id")
		if errResp != nil {
			respond(c, *errResp)
			return
		}
		var req MinerWalletRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			respond(c, fail(http.StatusBadRequest, "Invalid request", nil))
			return
		}
		result, err := svc.SettlePending(id, req.MinerWallet)
		if err != nil {
			respond(c, settleFailure(err))
			return
		}
		invalidatePendingCache(rdb)
		respond(c, ok(http.StatusOK, "Transaction updated successfully", result))
	}
}

// settleFailure maps settlement errors onto the envelope: the two
// precondition failures keep their dedicated messages, everything else is
// reported as a failed update with the raw error and rollback snapshot.
func settleFailure(err error) Response {
	switch {
	case errors.Is(err, ledger.ErrEntryNotFound):
		return fail(http.StatusNotFound, "Transaction not found", err.Error())
	case errors.Is(err, ledger.ErrNotPending):
		return fail(http.StatusBadRequest, "Transaction is not in pending state", err.Error())
	default:
		return fail(http.StatusInternalServerError, "Failed to update pending transaction",
			"Exception: "+err.Error())
	}
}

// invalidatePendingCache drops the cached pending list after a mutation.
func invalidatePendingCache(rdb *redis.Client) {
	_ = utils.DeleteCache(context.Background(), rdb, pendingCacheKey)
}
