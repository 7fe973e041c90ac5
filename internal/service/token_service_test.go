package service

import (
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func signServerToken(t *testing.T, secret, subject, matchingID string) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": subject}
	if matchingID != "" {
		claims["matching_id"] = matchingID
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestVerifyMatchingTokenValid(t *testing.T) {
	svc := NewServerTokenService("secret")
	token := signServerToken(t, "secret", "server-to-server", "match-7")

	matchingID, err := svc.VerifyMatchingToken(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if matchingID != "match-7" {
		t.Fatalf("expected match-7, got %s", matchingID)
	}
}

func TestVerifyMatchingTokenRejects(t *testing.T) {
	svc := NewServerTokenService("secret")

	cases := map[string]string{
		"wrong subject":      signServerToken(t, "secret", "user", "match-7"),
		"missing matchingID": signServerToken(t, "secret", "server-to-server", ""),
		"wrong secret":       signServerToken(t, "other", "server-to-server", "match-7"),
		"garbage":            "not-a-token",
	}
	for name, token := range cases {
		if _, err := svc.VerifyMatchingToken(token); !errors.Is(err, ErrTokenInvalid) {
			t.Fatalf("%s: expected ErrTokenInvalid, got %v", name, err)
		}
	}
}

func TestVerifyMatchingTokenEmptySecret(t *testing.T) {
	svc := NewServerTokenService("")
	token := signServerToken(t, "secret", "server-to-server", "match-7")
	if _, err := svc.VerifyMatchingToken(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
