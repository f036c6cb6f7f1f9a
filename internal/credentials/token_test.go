package credentials

import (
	"errors"
	"strings"
	"testing"
	"time"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestIssueAndResolveRoundTrip(t *testing.T) {
	svc, err := NewTokenService(testSecret)
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}

	token, err := svc.Issue("a@x.com", time.Hour)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	subject, err := svc.Resolve(token)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if subject != "a@x.com" {
		t.Fatalf("expected subject a@x.com, got %s", subject)
	}
}

func TestResolveExpiredToken(t *testing.T) {
	svc, err := NewTokenService(testSecret)
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}
	issued := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }

	token, err := svc.Issue("a@x.com", 30*time.Minute)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	svc.now = func() time.Time { return issued.Add(31 * time.Minute) }
	if _, err := svc.Resolve(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestResolveTamperedToken(t *testing.T) {
	svc, err := NewTokenService(testSecret)
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}

	token, err := svc.Issue("a@x.com", time.Hour)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("expected three token segments")
	}
	tampered := parts[0] + "." + parts[1] + ".AAAA" + parts[2][4:]
	if _, err := svc.Resolve(tampered); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestResolveGarbageToken(t *testing.T) {
	svc, err := NewTokenService(testSecret)
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}
	if _, err := svc.Resolve("not-a-token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestResolveRejectsTokenFromOtherSecret(t *testing.T) {
	svc, err := NewTokenService(testSecret)
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}
	other, err := NewTokenService("another-secret-value-entirely")
	if err != nil {
		t.Fatalf("NewTokenService other: %v", err)
	}

	token, err := other.Issue("a@x.com", time.Hour)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := svc.Resolve(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestNewTokenServiceRejectsShortSecret(t *testing.T) {
	if _, err := NewTokenService("short"); err == nil {
		t.Fatalf("expected error for short secret")
	}
}
