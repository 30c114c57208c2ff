package usecase

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUserInfo(t *testing.T) {
	t.Run("Unauthenticated", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.UserInfo(t.Context())

		requireBusinessError(t, err, "Authentication required", http.StatusUnauthorized)
	})

	t.Run("ReturnsAccountWithoutPassword", func(t *testing.T) {
		f := newFixture(t)
		acc := f.seedAccount(t, "user@example.com", "Secret123!", true)

		out, err := f.uc.UserInfo(authCtx(t, acc))

		require.NoError(t, err)
		require.Equal(t, acc.ID, out.ID)
		require.Equal(t, "user@example.com", out.Email)
		require.True(t, out.TwoFactorEnabled)
	})

	t.Run("AccountGone", func(t *testing.T) {
		f := newFixture(t)
		acc := f.seedAccount(t, "user@example.com", "Secret123!", false)
		delete(f.repo.accounts, acc.Email)

		_, err := f.uc.UserInfo(authCtx(t, acc))

		requireBusinessError(t, err, "User not found", http.StatusNotFound)
	})
}

func TestSaveRecoveryEmail(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		f := newFixture(t)
		acc := f.seedAccount(t, "user@example.com", "Secret123!", false)

		err := f.uc.SaveRecoveryEmail(authCtx(t, acc), SaveRecoveryEmailInput{RecoveryEmail: " "})

		requireBusinessError(t, err, "Recovery email required", http.StatusBadRequest)
	})

	t.Run("Saves", func(t *testing.T) {
		f := newFixture(t)
		acc := f.seedAccount(t, "user@example.com", "Secret123!", false)

		err := f.uc.SaveRecoveryEmail(authCtx(t, acc), SaveRecoveryEmailInput{
			RecoveryEmail: "backup@example.com",
		})

		require.NoError(t, err)
		require.Equal(t, "backup@example.com", f.repo.accounts["user@example.com"].RecoveryEmail)
	})
}

func TestTwoFactorLifecycle(t *testing.T) {
	f := newFixture(t)
	acc := f.seedAccount(t, "user@example.com", "Secret123!", false)
	ctx := authCtx(t, acc)

	status, err := f.uc.TwoFAStatus(ctx)
	require.NoError(t, err)
	require.False(t, status.TwoFactorEnabled)

	require.NoError(t, f.uc.Enable2FA(ctx))

	status, err = f.uc.TwoFAStatus(ctx)
	require.NoError(t, err)
	require.True(t, status.TwoFactorEnabled)

	out, err := f.uc.Toggle2FA(ctx, Toggle2FAInput{Enabled: false})
	require.NoError(t, err)
	require.False(t, out.Enabled)
	require.False(t, f.repo.accounts["user@example.com"].TwoFactorEnabled)
}

func TestDeleteAccount(t *testing.T) {
	t.Run("Unauthenticated", func(t *testing.T) {
		f := newFixture(t)

		err := f.uc.DeleteAccount(t.Context())

		requireBusinessError(t, err, "Authentication required", http.StatusUnauthorized)
	})

	t.Run("RemovesAccount", func(t *testing.T) {
		f := newFixture(t)
		acc := f.seedAccount(t, "user@example.com", "Secret123!", false)

		err := f.uc.DeleteAccount(authCtx(t, acc))

		require.NoError(t, err)
		require.NotContains(t, f.repo.accounts, "user@example.com")
		require.Equal(t, []int64{acc.ID}, f.repo.deleted)
	})
}
