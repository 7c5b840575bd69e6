package api

import (
	"net/http"                       // HTTP status codes
	"strings"                        // String manipulation
	"wallet_backend/internal/ledger" // Wallet and settlement service
	"wallet_backend/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password hashing
)

// RegisterRequest creates a wallet from client-generated credentials.
type RegisterRequest struct {
	Mnemonic  string `json:"mnemonic" binding:"required"`  // Mnemonic must be provided
	PublicKey string `json:"publicKey" binding:"required"` // Public key must be provided
	Password  string `json:"password" binding:"required"`  // Password must be provided
}

// LoginRequest authenticates with the mnemonic as identifier.
type LoginRequest struct {
	Mnemonic string `json:"mnemonic" binding:"required"` // Mnemonic must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// TokenPair is the payload of a successful registration or login.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`  // Short-lived access token
	RefreshToken string `json:"refreshToken"` // Long-lived refresh token
}

// RegisterHandler creates a wallet and issues its first token pair.
func RegisterHandler(svc *ledger.Service, accessSecret, refreshSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request envelope
			respondCreated(c, fail(http.StatusBadRequest, "Missing wallet data", nil))
			return
		}
		// Hash the password before it is stored
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
		tokens, err := issueTokens(wallet.ID, accessSecret, refreshSecret)
		if err != nil {
			respondCreated(c, fail(http.StatusInternalServerError, "Failed to generate tokens", err.Error()))
			return
		}
		// Log successful wallet registration
		logrus.WithFields(logrus.Fields{
			"wallet_id":  wallet.ID,        // Wallet ID
			"public_key": wallet.PublicKey, // Public key
		}).Info("Wallet registered")
		respondCreated(c, ok(http.StatusCreated, "Wallet created successfully", tokens))
	}
}

// LoginHandler verifies mnemonic+password and issues a token pair.
func LoginHandler(svc *ledger.Service, accessSecret, refreshSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			respondCreated(c, fail(http.StatusBadRequest, "Missing credentials", nil))
			return
		}
		wallet, err := svc.FindWalletByMnemonic(req.Mnemonic)
		if err != nil {
			// Do not reveal whether the mnemonic exists
			respondCreated(c, fail(http.StatusUnauthorized, "Invalid credentials", nil))
			return
		}
		// Compare provided password with stored hash
		if err := bcrypt.CompareHashAndPassword([]byte(wallet.Password), []byte(req.Password)); err != nil {
			respondCreated(c, fail(http.StatusUnauthorized, "Invalid credentials", nil))
			return
		}
		tokens, err := issueTokens(wallet.ID, accessSecret, refreshSecret)
		if err != nil {
			respondCreated(c, fail(http.StatusInternalServerError, "Failed to generate tokens", err.Error()))
			return
		}
		respondCreated(c, ok(http.StatusOK, "Credentials are correct", tokens))
	}
}

// VerifyAccessTokenHandler reports whether the access token in the
// Authorization header is valid.
func VerifyAccessTokenHandler(accessSecret string) gin.HandlerFunc {
	return verifyTokenHandler(accessSecret, "Access token verified")
}

// VerifyRefreshTokenHandler reports whether the refresh token in the
// Authorization header is valid.
func VerifyRefreshTokenHandler(refreshSecret string) gin.HandlerFunc {
	return verifyTokenHandler(refreshSecret, "Refresh token verified")
}

// verifyTokenHandler validates the bearer token against one secret; the
// envelope data is the verdict, success only marks the check itself.
func verifyTokenHandler(secret, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, err := utils.ParseJWT(bearerToken(c), secret)
		respondCreated(c, ok(http.StatusOK, message, err == nil))
	}
}

// RefreshAccessTokenHandler mints a new access token from a valid refresh
// token supplied in the Authorization header.
func RefreshAccessTokenHandler(accessSecret, refreshSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		accessToken, err := utils.RefreshAccessToken(bearerToken(c), refreshSecret, accessSecret)
		if err != nil {
			respondCreated(c, fail(http.StatusInternalServerError,
				"Failed to generate access token from refresh token", nil))
			return
		}
		respondCreated(c, ok(http.StatusOK, "Access token generated from refresh token", accessToken))
	}
}

// bearerToken extracts the token from the Authorization header, with or
// without the Bearer prefix.
func bearerToken(c *gin.Context) string {
	return strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
}

// issueTokens mints the access/refresh pair for a wallet.
func issueTokens(walletID uint, accessSecret, refreshSecret string) (*TokenPair, error) {
	accessToken, err := utils.GenerateAccessToken(walletID, accessSecret)
	if err != nil {
		return nil, err
	}
	refreshToken, err := utils.GenerateRefreshToken(walletID, refreshSecret)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
