package jwt

import (
	"errors"
	"strings"
	"testing"
	"time"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

type fakeUUID struct{}

func (fakeUUID) Generate() string { return "test-token-id" }

func testConfig(clk *fakeClock) Config {
	return Config{
		Secret:     []byte(strings.Repeat("s", 64)),
		Issuer:     "securevault",
		Audiences:  []string{"securevault"},
		TTLMinutes: time.Hour,
		Clock:      clk,
		UUID:       fakeUUID{},
	}
}

func TestNewHS512_RejectsShortSecret(t *testing.T) {
	_, err := NewHS512(Config{Secret: []byte("too-short")})
	if !errors.Is(err, ErrSigningKeyTooShort) {
		t.Fatalf("expected ErrSigningKeyTooShort, got %v", err)
	}
}

func TestSymmetric_GenerateVerifyRoundTrip(t *testing.T) {
	clk := &fakeClock{now: time.Now()}
	token, err := NewHS512(testConfig(clk))
	if err != nil {
		t.Fatalf("failed to build token signer: %v", err)
	}

	signed, err := token.Generate(42, "user@example.com")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	claims, err := token.Verify(signed)
	if err != nil {
		t.Fatalf("failed to verify token: %v", err)
	}

	if claims.UserID != 42 || claims.UserEmail != "user@example.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.Subject != "42" {
		t.Fatalf("expected subject 42, got %q", claims.Subject)
	}
}

func TestSymmetric_VerifyExpiredToken(t *testing.T) {
	clk := &fakeClock{now: time.Now().Add(-2 * time.Hour)}
	token, err := NewHS512(testConfig(clk))
	if err != nil {
		t.Fatalf("failed to build token signer: %v", err)
	}

	signed, err := token.Generate(42, "user@example.com")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	if _, err := token.Verify(signed); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestSymmetric_VerifyForeignSignature(t *testing.T) {
	clk := &fakeClock{now: time.Now()}

	token, err := NewHS512(testConfig(clk))
	if err != nil {
		t.Fatalf("failed to build token signer: %v", err)
	}

	otherCfg := testConfig(clk)
	otherCfg.Secret = []byte(strings.Repeat("x", 64))
	other, err := NewHS512(otherCfg)
	if err != nil {
		t.Fatalf("failed to build token signer: %v", err)
	}

	signed, err := other.Generate(42, "user@example.com")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	if _, err := token.Verify(signed); err == nil {
		t.Fatal("expected verification to fail for a foreign signature")
	}
}
