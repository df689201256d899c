package auth

import (
	"testing"
	"time"
)

func TestTokenIssuer_IssueAndVerify(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer("test-secret", time.Minute)

	token, err := issuer.Issue("user-123")
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected non-empty token")
	}

	subject, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error: %v", err)
	}
	if subject != "user-123" {
		t.Fatalf("expected subject %q, got %q", "user-123", subject)
	}
}

func TestTokenIssuer_RejectsExpiredToken(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer("test-secret", -time.Minute)

	token, err := issuer.Issue("user-123")
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}

	if _, err := issuer.Verify(token); err == nil {
		t.Fatalf("expected expired token to be rejected")
	}
}

func TestTokenIssuer_RejectsWrongSecret(t *testing.T) {
	t.Parallel()

	token, err := NewTokenIssuer("secret-a", time.Minute).Issue("user-123")
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}

	if _, err := NewTokenIssuer("secret-b", time.Minute).Verify(token); err == nil {
		t.Fatalf("expected token signed with another secret to be rejected")
	}
}

func TestTokenIssuer_RejectsGarbage(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer("test-secret", time.Minute)

	if _, err := issuer.Verify("not.a.token"); err == nil {
		t.Fatalf("expected garbage token to be rejected")
	}
}

func TestPasswords_HashAndCheck(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}
	if hash == "hunter2" {
		t.Fatalf("hash must not equal the plain password")
	}

	if !CheckPassword("hunter2", hash) {
		t.Fatalf("expected correct password to verify")
	}
	if CheckPassword("wrong", hash) {
		t.Fatalf("expected wrong password to fail")
	}
}
