package usecase

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRequestOTP(t *testing.T) {
	t.Run("EmptyEmail", func(t *testing.T) {
		f := newFixture(t)

		err := f.uc.RequestOTP(t.Context(), RequestOTPInput{Email: "   "})

		requireBusinessError(t, err, "Email is required.", http.StatusBadRequest)
	})

	t.Run("MalformedEmail", func(t *testing.T) {
		f := newFixture(t)

		err := f.uc.RequestOTP(t.Context(), RequestOTPInput{Email: "not-an-email"})

		requireBusinessError(t, err, "Invalid or non-existent email.", http.StatusBadRequest)
		require.Empty(t, f.mailer.sent)
	})

	t.Run("UndeliverableEmail", func(t *testing.T) {
		f := newFixture(t)
		f.verifier.verdict = false

		err := f.uc.RequestOTP(t.Context(), RequestOTPInput{Email: "ghost@example.com"})

		requireBusinessError(t, err, "Invalid or non-existent email.", http.StatusBadRequest)
		require.Equal(t, []string{"ghost@example.com"}, f.verifier.checked)
	})

	t.Run("AlreadyRegistered", func(t *testing.T) {
		f := newFixture(t)
		f.seedAccount(t, "taken@example.com", "Secret123!", false)

		err := f.uc.RequestOTP(t.Context(), RequestOTPInput{Email: "taken@example.com"})

		requireBusinessError(t, err, "Email already registered.", http.StatusBadRequest)
		require.Empty(t, f.mailer.sent)
	})

	t.Run("IssuesAndMailsCode", func(t *testing.T) {
		f := newFixture(t)

		err := f.uc.RequestOTP(t.Context(), RequestOTPInput{Email: "new@example.com"})

		require.NoError(t, err)
		require.Len(t, f.mailer.sent, 1)
		require.Equal(t, []string{"new@example.com"}, f.mailer.sent[0].To)
		require.Equal(t, "Your OTP for Signup", f.mailer.sent[0].Subject)
		require.Contains(t, f.mailer.sent[0].TextBody, f.registry.lastCode)
		require.Contains(t, f.mailer.sent[0].TextBody, "valid for 5 minutes")
	})
}
