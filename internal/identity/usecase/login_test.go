package usecase

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	t.Run("MissingFields", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.Login(t.Context(), LoginInput{Email: "user@example.com"})

		requireBusinessError(t, err, "Email and password required.", http.StatusBadRequest)
	})

	t.Run("UnknownEmailAndWrongPasswordAreIndistinguishable", func(t *testing.T) {
		f := newFixture(t)
		f.seedAccount(t, "user@example.com", "Secret123!", false)

		_, errUnknown := f.uc.Login(t.Context(), LoginInput{
			Email:    "nobody@example.com",
			Password: "Secret123!",
		})
		_, errWrongPass := f.uc.Login(t.Context(), LoginInput{
			Email:    "user@example.com",
			Password: "WrongPass1!",
		})

		requireBusinessError(t, errUnknown, "Invalid email or password.", http.StatusUnauthorized)
		requireBusinessError(t, errWrongPass, "Invalid email or password.", http.StatusUnauthorized)
	})

	t.Run("WithoutTwoFactorMintsToken", func(t *testing.T) {
		f := newFixture(t)
		acc := f.seedAccount(t, "user@example.com", "Secret123!", false)

		out, err := f.uc.Login(t.Context(), LoginInput{
			Email:    "user@example.com",
			Password: "Secret123!",
		})

		require.NoError(t, err)
		require.False(t, out.TwoFactorRequired)
		require.NotEmpty(t, out.Token)

		claims, err := f.signer.Verify(out.Token)
		require.NoError(t, err)
		require.Equal(t, acc.ID, claims.UserID)
		require.Equal(t, acc.Email, claims.UserEmail)
	})

	t.Run("WithTwoFactorMailsCodeAndWithholdsToken", func(t *testing.T) {
		f := newFixture(t)
		f.seedAccount(t, "user@example.com", "Secret123!", true)

		out, err := f.uc.Login(t.Context(), LoginInput{
			Email:    "user@example.com",
			Password: "Secret123!",
		})

		require.NoError(t, err)
		require.True(t, out.TwoFactorRequired)
		require.Empty(t, out.Token, "a two-factor account must not get a token from login")
		require.Len(t, f.mailer.sent, 1)
		require.Equal(t, "Your 2FA Code", f.mailer.sent[0].Subject)
		require.Contains(t, f.mailer.sent[0].TextBody, f.registry.lastCode)
	})
}
