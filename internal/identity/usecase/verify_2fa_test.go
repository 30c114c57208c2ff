package usecase

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVerify2FA(t *testing.T) {
	t.Run("WrongOrMissingCode", func(t *testing.T) {
		f := newFixture(t)
		f.seedAccount(t, "user@example.com", "Secret123!", true)

		_, err := f.uc.Verify2FA(t.Context(), Verify2FAInput{
			Email: "user@example.com",
			OTP:   "000000",
		})

		requireBusinessError(t, err, "Invalid or expired 2FA code.", http.StatusBadRequest)
	})

	t.Run("RedeemsCodeAndMintsToken", func(t *testing.T) {
		f := newFixture(t)
		acc := f.seedAccount(t, "user@example.com", "Secret123!", true)

		_, err := f.uc.Login(t.Context(), LoginInput{
			Email:    "user@example.com",
			Password: "Secret123!",
		})
		require.NoError(t, err)

		out, err := f.uc.Verify2FA(t.Context(), Verify2FAInput{
			Email: "user@example.com",
			OTP:   f.registry.lastCode,
		})

		require.NoError(t, err)
		require.NotEmpty(t, out.Token)

		claims, err := f.signer.Verify(out.Token)
		require.NoError(t, err)
		require.Equal(t, acc.ID, claims.UserID)
	})

	t.Run("CodeIsSingleUse", func(t *testing.T) {
		f := newFixture(t)
		f.seedAccount(t, "user@example.com", "Secret123!", true)

		_, err := f.uc.Login(t.Context(), LoginInput{
			Email:    "user@example.com",
			Password: "Secret123!",
		})
		require.NoError(t, err)

		code := f.registry.lastCode
		_, err = f.uc.Verify2FA(t.Context(), Verify2FAInput{Email: "user@example.com", OTP: code})
		require.NoError(t, err)

		_, err = f.uc.Verify2FA(t.Context(), Verify2FAInput{Email: "user@example.com", OTP: code})
		requireBusinessError(t, err, "Invalid or expired 2FA code.", http.StatusBadRequest)
	})
}
