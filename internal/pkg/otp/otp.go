package otp

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
	"strconv"
	"strings"
)

// Purpose namespaces codes by the flow that issued them, so a signup code can
// never satisfy a login challenge.
type Purpose string

const (
	// PurposeSignup gates account creation.
	PurposeSignup Purpose = "signup"
	// PurposeLogin gates the second factor of login.
	PurposeLogin Purpose = "login"
)

// ErrIssue is returned when a code could not be generated or stored.
var ErrIssue = errors.New("failed to issue one-time passcode")

// Registry stores at most one active code per (purpose, email).
type Registry interface {
	// Issue generates a fresh code, stores it with the configured TTL
	// (replacing any previous code for the pair), and returns the plaintext
	// code for delivery.
	Issue(ctx context.Context, purpose Purpose, email string) (string, error)

	// Redeem atomically consumes the active code if the supplied value
	// matches. It returns true on a match; on a mismatch or expired code it
	// returns false and leaves any stored code untouched.
	Redeem(ctx context.Context, purpose Purpose, email, code string) (bool, error)
}

// generateCode returns a uniform 6-digit code in [100000, 999999].
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}

	return strconv.FormatInt(n.Int64()+100000, 10), nil
}

// canonical normalizes a user-supplied code before comparison: surrounding
// whitespace and leading zeros are not significant.
func canonical(code string) string {
	code = strings.TrimSpace(code)
	if v, err := strconv.ParseInt(code, 10, 64); err == nil {
		return strconv.FormatInt(v, 10)
	}

	return code
}
