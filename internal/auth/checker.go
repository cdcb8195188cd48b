package auth

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// SessionChecker resolves session tokens to the id of the logged in user.
type SessionChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
}

func NewSessionChecker(ttl time.Duration, redisClient *redis.Client) *SessionChecker {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &SessionChecker{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

// UserID returns ErrSessionNotFound for unknown or expired tokens.
func (c *SessionChecker) UserID(ctx context.Context, token string) (int, error) {
	cmd := c.redisClient.Get(ctx, sessionKeyPrefix+token)
	if errors.Is(cmd.Err(), redis.Nil) {
		return 0, ErrSessionNotFound
	}
	if err := cmd.Err(); err != nil {
		return 0, err
	}

	userID, createdAt, err := parseSessionValue(cmd.Val())
	if err != nil {
		return 0, err
	}
	if time.Since(createdAt) > c.ttl {
		return 0, ErrSessionNotFound
	}

	return userID, nil
}
