package utils

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func TestVerifyTokenValid(t *testing.T) {
	signed := signToken(t, testSecret, jwt.MapClaims{
		"sub": 42,
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Authorization", "Bearer "+signed)

	claims, err := VerifyToken(r, testSecret)
	if err != nil {
		t.Fatalf("VerifyToken returned error: %v", err)
	}

	userID, err := GetUserIDFromClaims(claims)
	if err != nil {
		t.Fatalf("GetUserIDFromClaims returned error: %v", err)
	}
	if userID != 42 {
		t.Fatalf("expected user 42, got %d", userID)
	}
}

func TestVerifyTokenMissingHeader(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	if _, err := VerifyToken(r, testSecret); !errors.Is(err, ErrMissingAuthHeader) {
		t.Fatalf("expected ErrMissingAuthHeader, got %v", err)
	}

	r.Header.Set("Authorization", "Basic abc")
	if _, err := VerifyToken(r, testSecret); !errors.Is(err, ErrMissingAuthHeader) {
		t.Fatalf("expected ErrMissingAuthHeader for non-bearer scheme, got %v", err)
	}
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	signed := signToken(t, "other-secret", jwt.MapClaims{
		"sub": 1,
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Authorization", "Bearer "+signed)

	if _, err := VerifyToken(r, testSecret); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyTokenExpired(t *testing.T) {
	signed := signToken(t, testSecret, jwt.MapClaims{
		"sub": 1,
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Authorization", "Bearer "+signed)

	if _, err := VerifyToken(r, testSecret); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestGetUserIDFromClaimsInvalid(t *testing.T) {
	if _, err := GetUserIDFromClaims(jwt.MapClaims{}); err == nil {
		t.Fatalf("expected error for missing sub")
	}
	if _, err := GetUserIDFromClaims(jwt.MapClaims{"sub": "abc"}); err == nil {
		t.Fatalf("expected error for non-numeric sub")
	}
	if _, err := GetUserIDFromClaims(jwt.MapClaims{"sub": float64(0)}); err == nil {
		t.Fatalf("expected error for non-positive sub")
	}
}
