package otp

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/Codewith-Raja/securevault/internal/pkg/hash"
)

func newTestRegistry(t *testing.T) (*RedisRegistry, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisRegistry(client, hash.NewHMACSHA256("test-secret"), 5*time.Minute), mr
}

func TestRedisRegistry_RedeemIsSingleUse(t *testing.T) {
	reg, _ := newTestRegistry(t)
	ctx := t.Context()

	code, err := reg.Issue(ctx, PurposeSignup, "user@example.com")
	require.NoError(t, err)
	require.Len(t, code, 6)

	ok, err := reg.Redeem(ctx, PurposeSignup, "user@example.com", code)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = reg.Redeem(ctx, PurposeSignup, "user@example.com", code)
	require.NoError(t, err)
	require.False(t, ok, "a redeemed code must not redeem twice")
}

func TestRedisRegistry_WrongCodeKeepsEntry(t *testing.T) {
	reg, _ := newTestRegistry(t)
	ctx := t.Context()

	code, err := reg.Issue(ctx, PurposeSignup, "user@example.com")
	require.NoError(t, err)

	ok, err := reg.Redeem(ctx, PurposeSignup, "user@example.com", "000000")
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = reg.Redeem(ctx, PurposeSignup, "user@example.com", code)
	require.NoError(t, err)
	require.True(t, ok, "a failed guess must not burn the active code")
}

func TestRedisRegistry_ReissueReplacesPrevious(t *testing.T) {
	reg, _ := newTestRegistry(t)
	ctx := t.Context()

	first, err := reg.Issue(ctx, PurposeSignup, "user@example.com")
	require.NoError(t, err)

	second, err := reg.Issue(ctx, PurposeSignup, "user@example.com")
	require.NoError(t, err)

	if first != second {
		ok, err := reg.Redeem(ctx, PurposeSignup, "user@example.com", first)
		require.NoError(t, err)
		require.False(t, ok, "an overwritten code must be dead")
	}

	ok, err := reg.Redeem(ctx, PurposeSignup, "user@example.com", second)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestRedisRegistry_ExpiredCodeDoesNotRedeem(t *testing.T) {
	reg, mr := newTestRegistry(t)
	ctx := t.Context()

	code, err := reg.Issue(ctx, PurposeSignup, "user@example.com")
	require.NoError(t, err)

	mr.FastForward(5*time.Minute + time.Second)

	ok, err := reg.Redeem(ctx, PurposeSignup, "user@example.com", code)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRedisRegistry_PurposesAreIsolated(t *testing.T) {
	reg, _ := newTestRegistry(t)
	ctx := t.Context()

	code, err := reg.Issue(ctx, PurposeSignup, "user@example.com")
	require.NoError(t, err)

	ok, err := reg.Redeem(ctx, PurposeLogin, "user@example.com", code)
	require.NoError(t, err)
	require.False(t, ok, "a signup code must not pass as a login code")
}

func TestRedisRegistry_EmailIsCaseInsensitive(t *testing.T) {
	reg, _ := newTestRegistry(t)
	ctx := t.Context()

	code, err := reg.Issue(ctx, PurposeSignup, "User@Example.com")
	require.NoError(t, err)

	ok, err := reg.Redeem(ctx, PurposeSignup, "user@example.com", code)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestRedisRegistry_RedeemCanonicalizesCode(t *testing.T) {
	reg, _ := newTestRegistry(t)
	ctx := t.Context()

	code, err := reg.Issue(ctx, PurposeSignup, "user@example.com")
	require.NoError(t, err)

	ok, err := reg.Redeem(ctx, PurposeSignup, "user@example.com", "  "+code+"\n")
	require.NoError(t, err)
	require.True(t, ok, "surrounding whitespace must not matter")
}
