package api

import (
	"net/http"                       // HTTP status codes
	"wallet_backend/internal/ledger" // Wallet and settlement service

	"github.com/gin-gonic/gin" // Gin web framework
)

// CreateHoldingRequest adds a token holding to a wallet.
type CreateHoldingRequest struct {
	Token  string  `json:"token" binding:"required"` // Token symbol
	Amount float64 `json:"amount"`                   // Initial amount, may be zero
}

// UpdateHoldingRequest sets the amount of an existing holding.
type UpdateHoldingRequest struct {
	Amount float64 `json:"amount"` // New amount
}

// CreateHoldingHandler adds a holding for a token the wallet does not hold.
func CreateHoldingHandler(svc *ledger.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateHoldingRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			respondCreated(c, fail(http.StatusBadRequest, "Invalid request", nil))
			return
		}
		holding, err := svc.AddHolding(c.Param("publicKey"), req.Token, req.Amount)
		if err != nil {
			respondCreated(c, failFrom(err, "Failed to add crypto holding"))
			return
		}
		respondCreated(c, ok(http.StatusCreated, "CryptoHolding added to wallet successfully", holding))
	}
}

// ListHoldingsHandler returns every holding of a wallet.
func ListHoldingsHandler(svc *ledger.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		holdings, err := svc.ListHoldings(c.Param("publicKey"))
		if err != nil {
			respond(c, failFrom(err, "Failed to retrieve crypto holdings"))
			return
		}
		respond(c, ok(http.StatusOK, "CryptoHoldings retrieved successfully", holdings))
	}
}

// UpdateHoldingHandler sets the amount of one holding.
func UpdateHoldingHandler(svc *ledger.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateHoldingRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			respond(c, fail(http.StatusBadRequest, "Invalid request", nil))
			return
		}
		holding, err := svc.UpdateHolding(c.Param("publicKey"), c.Param("token"), req.Amount)
		if err != nil {
			respond(c, failFrom(err, "Failed to update crypto holding"))
			return
		}
		respond(c, ok(http.StatusOK, "CryptoHolding updated successfully", holding))
	}
}

// DeleteHoldingHandler drops one holding of a wallet.
func DeleteHoldingHandler(svc *ledger.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteHolding(c.Param("publicKey"), c.Param("token")); err != nil {
			respond(c, failFrom(err, "Failed to delete crypto holding"))
			return
		}
		respond(c, ok(http.StatusOK, "CryptoHolding deleted successfully", nil))
	}
}
