package api

import (
	"net/http"                       // HTTP status codes
	"time"                           // Timestamps
	"wallet_backend/internal/domain" // Importing domain models
	"wallet_backend/internal/ledger" // Wallet and settlement service

	"github.com/gin-gonic/gin" // Gin web framework
)

// CreateLogEntryRequest appends a log entry to the wallet addressed by
// Address.
type CreateLogEntryRequest struct {
	Address          string     `json:"address" binding:"required"` // Wallet to append to
	Type             string     `json:"type" binding:"required"`    // Entry type
	Token            string     `json:"token" binding:"required"`   // Token symbol
	Amount           float64    `json:"amount" binding:"required"`  // Amount
	Timestamp        *time.Time `json:"timestamp"`                  // Defaults to now
	AllTransactionID uint       `json:"allTransactionId"`           // Optional back-reference
}

// UpdateLogEntryRequest carries the updatable log entry fields.
type UpdateLogEntryRequest struct {
	Type    *string  `json:"type"`    // New type, if set
	Token   *string  `json:"token"`   // New token, if set
	Amount  *float64 `json:"amount"`  // New amount, if set
	Address *string  `json:"address"` // New counterparty, if set
}

// CreateTransactionHandler appends a transaction-log entry to a wallet.
func CreateTransactionHandler(svc *ledger.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateLogEntryRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			respondCreated(c, fail(http.StatusBadRequest, "Invalid request", nil))
			return
		}
		timestamp := time.Now()
		if req.Timestamp != nil {
			timestamp = *req.Timestamp
		}
		entry, err := svc.AddLogEntry(req.Address, domain.WalletTransaction{
			Type:             req.Type,
			Token:            req.Token,
			Amount:           req.Amount,
			Address:          req.Address,
			Timestamp:        timestamp,
			AllTransactionID: req.AllTransactionID,
		})
		if err != nil {
			respondCreated(c, failFrom(err, "Failed to complete transaction"))
			return
		}
		respondCreated(c, ok(http.StatusCreated, "Transaction added successfully", entry))
	}
}

// ListTransactionsHandler returns the transaction log of one wallet.
func ListTransactionsHandler(svc *ledger.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		wallet, err := svc.FindWalletByPublicKey(c.Param("publicKey"))
		if err != nil {
			respond(c, failFrom(err, "Failed to retrieve transactions"))
			return
		}
		respond(c, ok(http.StatusOK, "Transactions retrieved successfully", wallet.Transactions))
	}
}

// GetTransactionHandler returns one log entry of a wallet.
func GetTransactionHandler(svc *ledger.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, errResp := pathID(c, "id")
		if errResp != nil {
			respond(c, *errResp)
			return
		}
		entry, err := svc.FindLogEntry(c.Param("publicKey"), id)
		if err != nil {
			respond(c, failFrom(err, "Failed to retrieve transaction"))
			return
		}
		respond(c, ok(http.StatusOK, "Transaction retrieved successfully", entry))
	}
}

// UpdateTransactionHandler applies partial updates to one log entry.
func UpdateTransactionHandler(svc *ledger.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, errResp := pathID(c, "id")
		if errResp != nil {
			respond(c, *errResp)
			return
		}
		var req UpdateLogEntryRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			respond(c, fail(http.StatusBadRequest, "Invalid request", nil))
			return
		}
		updates := map[string]any{}
		if req.Type != nil {
			updates["type"] = *req.Type
		}
		if req.Token != nil {
			updates["token"] = *req.Token
		}
		if req.Amount != nil {
			updates["amount"] = *req.Amount
		}
		if req.Address != nil {
			updates["address"] = *req.Address
		}
		entry, err := svc.UpdateLogEntry(c.Param("publicKey"), id, updates)
		if err != nil {
			respond(c, failFrom(err, "Failed to update transaction"))
			return
		}
		respond(c, ok(http.StatusOK, "Transaction updated successfully", entry))
	}
}

// DeleteTransactionHandler removes one log entry of a wallet.
func DeleteTransactionHandler(svc *ledger.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, errResp := pathID(c, "id")
		if errResp != nil {
			respond(c, *errResp)
			return
		}
		if err := svc.DeleteLogEntry(c.Param("publicKey"), id); err != nil {
			respond(c, failFrom(err, "Failed to delete transaction"))
			return
		}
		respond(c, ok(http.StatusOK, "Transaction deleted successfully", nil))
	}
}
