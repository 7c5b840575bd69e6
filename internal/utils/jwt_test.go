package utils

import (
	"testing"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := GenerateAccessToken(42, "access-secret")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	claims, err := ParseJWT(token, "access-secret")
	if err != nil {
		t.Fatalf("ParseJWT failed: %v", err)
	}
	if claims.WalletID != 42 {
		t.Errorf("Expected wallet ID 42, got %d", claims.WalletID)
	}
}

func TestParseJWT_WrongSecret(t *testing.T) {
	token, err := GenerateAccessToken(42, "access-secret")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	if _, err := ParseJWT(token, "other-secret"); err == nil {
		t.Fatalf("Expected ParseJWT to reject a token signed with another secret")
	}
}

func TestRefreshAccessToken(t *testing.T) {
	refresh, err := GenerateRefreshToken(7, "refresh-secret")
	if err != nil {
		t.Fatalf("GenerateRefreshToken failed: %v", err)
	}

	access, err := RefreshAccessToken(refresh, "refresh-secret", "access-secret")
	if err != nil {
		t.Fatalf("RefreshAccessToken failed: %v", err)
	}
	claims, err := ParseJWT(access, "access-secret")
	if err != nil {
		t.Fatalf("ParseJWT failed: %v", err)
	}
	if claims.WalletID != 7 {
		t.Errorf("Expected wallet ID 7, got %d", claims.WalletID)
	}

	// An access token must not pass as a refresh token.
	if _, err := RefreshAccessToken(access, "refresh-secret", "access-secret"); err == nil {
		t.Fatalf("Expected RefreshAccessToken to reject an access token")
	}
}
