package usecase

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Codewith-Raja/securevault/internal/pkg/hash"
	"github.com/Codewith-Raja/securevault/internal/pkg/otp"
)

func TestSignup(t *testing.T) {
	t.Run("MissingFields", func(t *testing.T) {
		f := newFixture(t)

		err := f.uc.Signup(t.Context(), SignupInput{Email: "new@example.com"})

		requireBusinessError(t, err, "Email, password, and OTP are required.", http.StatusBadRequest)
	})

	t.Run("WrongCode", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.registry.Issue(t.Context(), otp.PurposeSignup, "new@example.com")
		require.NoError(t, err)

		err = f.uc.Signup(t.Context(), SignupInput{
			Email:    "new@example.com",
			Password: "Secret123!",
			OTP:      "000000",
		})

		requireBusinessError(t, err, "Invalid OTP. Please try again.", http.StatusBadRequest)
		require.Empty(t, f.repo.accounts)
	})

	t.Run("CreatesAccount", func(t *testing.T) {
		f := newFixture(t)
		code, err := f.registry.Issue(t.Context(), otp.PurposeSignup, "new@example.com")
		require.NoError(t, err)

		err = f.uc.Signup(t.Context(), SignupInput{
			Email:    "new@example.com",
			Password: "Secret123!",
			OTP:      code,
		})

		require.NoError(t, err)
		acc, ok := f.repo.accounts["new@example.com"]
		require.True(t, ok)
		require.NotZero(t, acc.ID)
		require.NotEqual(t, "Secret123!", acc.Password, "password must be stored hashed")
		require.True(t, hash.NewBcrypt(4, "").Verify(acc.Password, "Secret123!"))
	})

	t.Run("CodeIsSingleUse", func(t *testing.T) {
		f := newFixture(t)
		code, err := f.registry.Issue(t.Context(), otp.PurposeSignup, "new@example.com")
		require.NoError(t, err)

		in := SignupInput{Email: "new@example.com", Password: "Secret123!", OTP: code}
		require.NoError(t, f.uc.Signup(t.Context(), in))

		delete(f.repo.accounts, "new@example.com")
		err = f.uc.Signup(t.Context(), in)
		requireBusinessError(t, err, "Invalid OTP. Please try again.", http.StatusBadRequest)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		f := newFixture(t)
		f.seedAccount(t, "taken@example.com", "Secret123!", false)
		code, err := f.registry.Issue(t.Context(), otp.PurposeSignup, "taken@example.com")
		require.NoError(t, err)

		err = f.uc.Signup(t.Context(), SignupInput{
			Email:    "taken@example.com",
			Password: "Another123!",
			OTP:      code,
		})

		requireBusinessError(t, err, "Email already registered.", http.StatusBadRequest)
	})
}
