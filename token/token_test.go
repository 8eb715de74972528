package token

import (
	"errors"
	"strings"
	"testing"
	"time"
)

var testSecret = []byte("test-secret")

func TestIssueVerifyRoundTrip(t *testing.T) {
	tok, err := Issue(42, "a@x.com", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if tok == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := Verify(tok, testSecret)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("expected user id 42 got %d", claims.UserID)
	}
	if claims.Email != "a@x.com" {
		t.Fatalf("expected email a@x.com got %s", claims.Email)
	}
}

func TestVerifyTamperedSignature(t *testing.T) {
	tok, err := Issue(1, "a@x.com", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	parts := strings.Split(tok, ".")
	if len(parts) != 3 {
		t.Fatalf("expected 3 segments got %d", len(parts))
	}

	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if _, err := Verify(tampered, testSecret); !errors.Is(err, ErrBadSignature) {
		t.Fatalf("expected ErrBadSignature got %v", err)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	tok, err := Issue(1, "a@x.com", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, err := Verify(tok, []byte("other-secret")); !errors.Is(err, ErrBadSignature) {
		t.Fatalf("expected ErrBadSignature got %v", err)
	}
}

func TestVerifyExpired(t *testing.T) {
	tok, err := Issue(1, "a@x.com", testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, err := Verify(tok, testSecret); !errors.Is(err, ErrExpired) {
		t.Fatalf("expected ErrExpired got %v", err)
	}
}

func TestVerifyMalformed(t *testing.T) {
	for _, tok := range []string{"", "garbage", "a.b", "a.b.c.d", "!!!.###.$$$"} {
		if _, err := Verify(tok, testSecret); !errors.Is(err, ErrMalformed) {
			t.Fatalf("expected ErrMalformed for %q got %v", tok, err)
		}
	}
}
