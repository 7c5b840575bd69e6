package api

import (
	"net/http"                       // HTTP status codes
	"strconv"                        // String conversion
	"wallet_backend/internal/ledger" // Wallet and settlement service

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password hashing
)

// CreateWalletRequest carries the fields of a plain wallet creation, without
// token issuance.
type CreateWalletRequest struct {
	Mnemonic  string `json:"mnemonic" binding:"required"`  // Mnemonic must be provided
	PublicKey string `json:"publicKey" binding:"required"` // Public key must be provided
	Password  string `json:"password" binding:"required"`  // Password must be provided
}

// UpdateWalletRequest carries the updatable wallet fields.
type UpdateWalletRequest struct {
	Mnemonic *string `json:"mnemonic"` // New mnemonic, if set
	Password *string `json:"password"` // New password, hashed before storage
}

// CreateWalletHandler creates a wallet seeded with a zero SOL holding.
func CreateWalletHandler(svc *ledger.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateWalletRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			respondCreated(c, fail(http.StatusBadRequest, "Missing wallet data", nil))
			return
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			respondCreated(c, fail(http.StatusInternalServerError, "Failed to hash password", nil))
			return
		}
		wallet, err := svc.CreateWallet(req.Mnemonic, req.PublicKey, string(hash))
		if err != nil {
			respondCreated(c, failFrom(err, "Failed to create wallet"))
			return
		}
		respondCreated(c, ok(http.StatusCreated, "Wallet created successfully", wallet))
	}
}

// ListWalletsHandler returns every wallet with holdings and transaction log.
func ListWalletsHandler(svc *ledger.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		wallets, err := svc.ListWallets()
		if err != nil {
			respond(c, failFrom(err, "Failed to retrieve wallets"))
			return
		}
		respond(c, ok(http.StatusOK, "Wallets retrieved successfully", wallets))
	}
}

// GetWalletHandler returns one wallet by id.
func GetWalletHandler(svc *ledger.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, errResp := pathID(c, "id")
		if errResp != nil {
			respond(c, *errResp)
			return
		}
		wallet, err := svc.FindWalletByID(id)
		if err != nil {
			respond(c, failFrom(err, "Failed to retrieve wallet"))
			return
		}
		respond(c, ok(http.StatusOK, "Wallet retrieved successfully", wallet))
	}
}

// GetWalletByPublicKeyHandler returns one wallet by public key.
func GetWalletByPublicKeyHandler(svc *ledger.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		wallet, err := svc.FindWalletByPublicKey(c.Param("publicKey"))
		if err != nil {
			respond(c, failFrom(err, "Failed to retrieve wallet by public key"))
			return
		}
		respond(c, ok(http.StatusOK, "Wallet retrieved successfully", wallet))
	}
}

// UpdateWalletHandler applies partial updates to a wallet.
func UpdateWalletHandler(svc *ledger.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, errResp := pathID(c, "id")
		if errResp != nil {
			respond(c, *errResp)
			return
		}
		var req UpdateWalletRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			respond(c, fail(http.StatusBadRequest, "Invalid request", nil))
			return
		}
		wallet, err := svc.FindWalletByID(id)
		if err != nil {
			respond(c, failFrom(err, "Failed to update wallet"))
			return
		}
		if req.Mnemonic != nil {
			wallet.Mnemonic = *req.Mnemonic
		}
		if req.Password != nil {
			hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
			if err != nil {
				respond(c, fail(http.StatusInternalServerError, "Failed to hash password", nil))
				return
			}
			wallet.Password = string(hash)
		}
		if err := svc.SaveWallet(wallet); err != nil {
			respond(c, failFrom(err, "Failed to update wallet"))
			return
		}
		respond(c, ok(http.StatusOK, "Wallet updated successfully", wallet))
	}
}

// DeleteWalletHandler removes a wallet. Reachable only through the admin-key
// middleware; wallets are never deleted in the normal flow.
func DeleteWalletHandler(svc *ledger.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, errResp := pathID(c, "id")
		if errResp != nil {
			respond(c, *errResp)
			return
		}
		if err := svc.DeleteWallet(id); err != nil {
			respond(c, failFrom(err, "Failed to delete wallet"))
			return
		}
		// Log the destructive operation
		logrus.WithField("wallet_id", id).Warn("Wallet deleted")
		respond(c, ok(http.StatusOK, "Wallet deleted successfully", nil))
	}
}

// pathID parses a numeric path parameter, returning a bad-request envelope
// when it is not a positive integer.
func pathID(c *gin.Context, name string) (uint, *Response) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		resp := fail(http.StatusBadRequest, "Invalid "+name+" parameter", nil)
		return 0, &resp
	}
	return uint(v), nil
}
