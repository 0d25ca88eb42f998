package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	attemptWindow = 15 * time.Minute
	maxAttempts   = 5
)

// LoginThrottle counts consecutive failed logins per username in Redis.
// Key format: login_attempts:<lowercased username>, expiring after
// attemptWindow so a locked account frees itself without intervention.
type LoginThrottle struct {
	client *redis.Client
}

// NewLoginThrottle creates a LoginThrottle wrapping the given Redis client.
func NewLoginThrottle(client *redis.Client) *LoginThrottle {
	return &LoginThrottle{client: client}
}

// TooManyAttempts reports whether the username has exhausted its window.
func (t *LoginThrottle) TooManyAttempts(ctx context.Context, username string) (bool, error) {
	n, err := t.client.Get(ctx, t.key(username)).Int64()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("throttle check: %w", err)
	}
	return n >= maxAttempts, nil
}

// RecordFailure increments the failure counter, starting the expiry window
// on the first failure.
func (t *LoginThrottle) RecordFailure(ctx context.Context, username string) error {
	key := t.key(username)
	n, err := t.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("throttle incr: %w", err)
	}
	if n == 1 {
		if err := t.client.Expire(ctx, key, attemptWindow).Err(); err != nil {
			return fmt.Errorf("throttle expire: %w", err)
		}
	}
	return nil
}

// Reset clears the counter after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, username string) error {
	return t.client.Del(ctx, t.key(username)).Err()
}

func (t *LoginThrottle) key(username string) string {
	return "login_attempts:" + strings.ToLower(strings.TrimSpace(username))
}
