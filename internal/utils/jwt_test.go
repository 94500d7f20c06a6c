package utils

import (
	"testing"
	"time"
)

func TestSignAndParseJWT(t *testing.T) {
	tok, err := SignJWT("secret", 7, "admin", "admin", time.Hour)
	if err != nil {
		t.Fatalf("SignJWT: %v", err)
	}
	claims, err := ParseJWT("secret", tok)
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if claims.UserID != 7 || claims.Username != "admin" || claims.Role != "admin" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestParseJWTWrongSecret(t *testing.T) {
	tok, err := SignJWT("secret", 7, "admin", "admin", time.Hour)
	if err != nil {
		t.Fatalf("SignJWT: %v", err)
	}
	if _, err := ParseJWT("other", tok); err == nil {
		t.Fatalf("expected verification failure with wrong secret")
	}
}

func TestParseJWTExpired(t *testing.T) {
	tok, err := SignJWT("secret", 7, "admin", "admin", -time.Minute)
	if err != nil {
		t.Fatalf("SignJWT: %v", err)
	}
	if _, err := ParseJWT("secret", tok); err == nil {
		t.Fatalf("expected expired token to fail")
	}
}
