package middleware

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SessionConfig for the Redis-backed bearer-token session store.
type SessionConfig struct {
	Secret   string
	RedisURL string
}

const (
	sessionPrefix = "session:"
	// Express signed 30-day JWTs; the Redis tokens carry the same lifetime.
	sessionMaxAge = 30 * 24 * time.Hour
)

// SessionUser is the shape stored in Redis per token and exposed in Locals.
type SessionUser struct {
	UserID     string `json:"userId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	IsVerified bool   `json:"isVerified"`
}

// NewRedis builds the Redis client for the session store.
func NewRedis(cfg SessionConfig) (*redis.Client, error) {
	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, err
	}
	return redis.NewClient(opt), nil
}

// Session returns a Fiber middleware that resolves "Authorization: Bearer
// <token>" against Redis and stores the session user in Locals. Requests
// without a valid token pass through with a nil user; RequireAuth rejects
// them on protected groups.
func Session(rdb *redis.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("user", nil)

		header := c.Get(fiber.HeaderAuthorization)
		if strings.HasPrefix(header, "Bearer ") {
			token := strings.TrimPrefix(header, "Bearer ")
			b, err := rdb.Get(context.Background(), sessionPrefix+token).Bytes()
			if err == nil {
				var u SessionUser
				if json.Unmarshal(b, &u) == nil && u.UserID != "" {
					c.Locals("user", &u)
					c.Locals("session_token", token)
				}
			}
		}
		return c.Next()
	}
}

// IssueToken stores the user under a fresh token and returns it. Called by
// login and register.
func IssueToken(ctx context.Context, rdb *redis.Client, u SessionUser) (string, error) {
	token := uuid.New().String()
	b, err := json.Marshal(u)
	if err != nil {
		return "", err
	}
	if err := rdb.Set(ctx, sessionPrefix+token, b, sessionMaxAge).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// RefreshSession rewrites the stored user for the current token (e.g. after
// email verification flips isVerified).
func RefreshSession(ctx context.Context, rdb *redis.Client, c *fiber.Ctx, u SessionUser) error {
	token, _ := c.Locals("session_token").(string)
	if token == "" {
		return nil
	}
	b, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, sessionPrefix+token, b, redis.KeepTTL).Err()
}

// RevokeToken deletes the current request's session token. Called by logout.
func RevokeToken(ctx context.Context, rdb *redis.Client, c *fiber.Ctx) error {
	token, _ := c.Locals("session_token").(string)
	if token == "" {
		return nil
	}
	return rdb.Del(ctx, sessionPrefix+token).Err()
}
