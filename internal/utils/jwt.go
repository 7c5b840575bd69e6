package utils

import (
	"time" // Time for token expiration

	"github.com/golang-jwt/jwt/v5" // JWT library
)

// Token lifetimes
const (
	AccessTokenTTL  = 15 * time.Minute   // Short-lived access token
	RefreshTokenTTL = 7 * 24 * time.Hour // Long-lived refresh token
)

// JWT Claims
type Claims struct {
	WalletID             uint `json:"wallet_id"` // Custom claim for wallet ID
	jwt.RegisteredClaims      // Standard JWT claims
}

// GenerateAccessToken creates a short-lived access token for a wallet.
func GenerateAccessToken(walletID uint, secret string) (string, error) {
	return generateToken(walletID, secret, AccessTokenTTL)
}

// GenerateRefreshToken creates a long-lived refresh token for a wallet.
func GenerateRefreshToken(walletID uint, secret string) (string, error) {
	return generateToken(walletID, secret, RefreshTokenTTL)
}

// generateToken signs a token with the wallet ID claim and the given TTL.
func generateToken(walletID uint, secret string, ttl time.Duration) (string, error) {
	claims := Claims{
		WalletID: walletID, // Custom claim for wallet ID
		// Standard claims
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)), // Expiration
			IssuedAt:  jwt.NewNumericDate(time.Now()),          // Issued at current time
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	return token.SignedString([]byte(secret))                  // Sign the token with the secret
}

// ParseJWT parses and validates a token string against the given secret.
func ParseJWT(tokenStr, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil // Return the secret key for validation
	})
	// Check for parsing errors
	if err != nil {
		return nil, err // Return error if parsing fails
	}
	// Validate token and extract claims
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil // Return claims if valid
	}
	// Return error if token is invalid
	return nil, jwt.ErrSignatureInvalid
}

// RefreshAccessToken validates a refresh token and mints a new access token
// for the same wallet.
func RefreshAccessToken(refreshToken, refreshSecret, accessSecret string) (string, error) {
	claims, err := ParseJWT(refreshToken, refreshSecret)
	if err != nil {
		return "", err
	}
	return GenerateAccessToken(claims.WalletID, accessSecret)
}
