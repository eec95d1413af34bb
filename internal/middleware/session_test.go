package middleware

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSessionTest(t *testing.T) *redis.Client {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		rdb.Close()
		mr.Close()
	})
	return rdb
}

func whoami(c *fiber.Ctx) error {
	if u := GetUser(c); u != nil {
		return c.JSON(u)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func TestSession_ResolvesBearerToken(t *testing.T) {
	rdb := setupSessionTest(t)

	token, err := IssueToken(context.Background(), rdb, SessionUser{
		UserID: "u-1",
		Name:   "王小明",
		Email:  "ming@example.com",
	})
	require.NoError(t, err)

	app := fiber.New()
	app.Use(Session(rdb))
	app.Get("/whoami", whoami)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestSession_UnknownTokenPassesThroughAnonymous(t *testing.T) {
	rdb := setupSessionTest(t)

	app := fiber.New()
	app.Use(Session(rdb))
	app.Get("/whoami", whoami)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestRequireAuth_RejectsAnonymous(t *testing.T) {
	rdb := setupSessionTest(t)

	app := fiber.New()
	app.Use(Session(rdb))
	app.Get("/protected", RequireAuth(), whoami)

	req := httptest.NewRequest("GET", "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRevokeToken(t *testing.T) {
	rdb := setupSessionTest(t)

	token, err := IssueToken(context.Background(), rdb, SessionUser{UserID: "u-1"})
	require.NoError(t, err)

	app := fiber.New()
	app.Use(Session(rdb))
	app.Delete("/logout", func(c *fiber.Ctx) error {
		require.NoError(t, RevokeToken(c.Context(), rdb, c))
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/whoami", whoami)

	req := httptest.NewRequest("DELETE", "/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestRefreshSession_RewritesStoredUser(t *testing.T) {
	rdb := setupSessionTest(t)

	token, err := IssueToken(context.Background(), rdb, SessionUser{
		UserID:     "u-1",
		IsVerified: false,
	})
	require.NoError(t, err)

	app := fiber.New()
	app.Use(Session(rdb))
	app.Post("/flip", func(c *fiber.Ctx) error {
		u := GetUser(c)
		require.NotNil(t, u)
		u.IsVerified = true
		require.NoError(t, RefreshSession(c.Context(), rdb, c, *u))
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("POST", "/flip", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	b, err := rdb.Get(context.Background(), "session:"+token).Bytes()
	require.NoError(t, err)
	assert.Contains(t, string(b), `"isVerified":true`)
}
