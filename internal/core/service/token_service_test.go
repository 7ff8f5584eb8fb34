package service

import (
	"errors"
	"testing"
	"time"

	"github.com/breatheright/health-system/internal/core/domain"
)

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue(42, domain.RolePatient)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("expected user_id 42, got %d", claims.UserID)
	}
	if claims.Role != domain.RolePatient {
		t.Fatalf("expected role patient, got %s", claims.Role)
	}
}

func TestTokenService_VerifyIdempotent(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue(7, domain.RoleDoctor)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	first, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("first verify: %v", err)
	}
	second, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("second verify: %v", err)
	}
	if *first != *second {
		t.Fatalf("repeated verify returned different claims: %+v vs %+v", first, second)
	}
}

func TestTokenService_DefaultTTL(t *testing.T) {
	svc := NewTokenService("secret", 0)
	if svc.ttl != defaultTokenTTL {
		t.Fatalf("expected default TTL %v, got %v", defaultTokenTTL, svc.ttl)
	}
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	issuedAt := time.Now()
	svc.now = func() time.Time { return issuedAt }
	token, err := svc.Issue(1, domain.RolePatient)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	svc.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }
	if _, err := svc.Verify(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_ExpiryBoundaryInclusive(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	issuedAt := time.Unix(1700000000, 0)
	svc.now = func() time.Time { return issuedAt }
	token, err := svc.Issue(1, domain.RolePatient)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// A token presented at exactly its expiry instant is expired.
	svc.now = func() time.Time { return issuedAt.Add(time.Hour) }
	if _, err := svc.Verify(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired at exact expiry, got %v", err)
	}

	// One second earlier it still verifies.
	svc.now = func() time.Time { return issuedAt.Add(time.Hour - time.Second) }
	if _, err := svc.Verify(token); err != nil {
		t.Fatalf("expected valid token just before expiry, got %v", err)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	if _, err := svc.Verify("not-a-token"); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
	if _, err := svc.Verify(""); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for empty string, got %v", err)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, err := issuer.Issue(1, domain.RolePatient)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := verifier.Verify(token); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for tampered signature, got %v", err)
	}
}
