package otp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// consume deletes the key only when its value matches, so a concurrent redeem
// of the same code cannot succeed twice.
var consume = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type hasher interface {
	Hash(plaintext string) ([]byte, error)
}

// RedisRegistry is a Registry backed by redis with server-side expiry.
type RedisRegistry struct {
	client redis.Cmdable
	hasher hasher
	ttl    time.Duration
}

// NewRedisRegistry constructs a RedisRegistry.
//
// Stored values are digests produced by h, never plaintext codes. ttl bounds
// the lifetime of every issued code.
func NewRedisRegistry(client redis.Cmdable, h hasher, ttl time.Duration) *RedisRegistry {
	return &RedisRegistry{client: client, hasher: h, ttl: ttl}
}

// Issue generates and stores a fresh code for the pair, replacing any
// previous one, and returns the plaintext for delivery.
func (r *RedisRegistry) Issue(ctx context.Context, purpose Purpose, email string) (string, error) {
	code, err := generateCode()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrIssue, err)
	}

	digest, err := r.hasher.Hash(code)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrIssue, err)
	}

	if err := r.client.Set(ctx, r.key(purpose, email), digest, r.ttl).Err(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrIssue, err)
	}

	return code, nil
}

// Redeem consumes the active code when the supplied value matches it.
func (r *RedisRegistry) Redeem(ctx context.Context, purpose Purpose, email, code string) (bool, error) {
	digest, err := r.hasher.Hash(canonical(code))
	if err != nil {
		return false, err
	}

	n, err := consume.Run(ctx, r.client, []string{r.key(purpose, email)}, digest).Int()
	if err != nil {
		return false, err
	}

	return n == 1, nil
}

func (r *RedisRegistry) key(purpose Purpose, email string) string {
	return fmt.Sprintf("otp:%s:%s", purpose, strings.ToLower(email))
}
