package session

import (
	"context"
	"elearning/cache"
	"elearning/config"
	"elearning/models"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Env:                "development",
		AccessTokenSecret:  "access",
		RefreshTokenSecret: "refresh",
		ActivationSecret:   "activation",
		AccessTokenExpire:  5 * time.Minute,
		RefreshTokenExpire: 7 * 24 * time.Hour,
		ActivationExpire:   5 * time.Minute,
		SessionTTL:         7 * 24 * time.Hour,
	}
}

func newManager(t *testing.T) (*Manager, cache.Store) {
	t.Helper()
	store, err := cache.Open("", zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return NewManager(testConfig(), store), store
}

func cookiesByName(resp *http.Response) map[string]*http.Cookie {
	out := map[string]*http.Cookie{}
	for _, ck := range resp.Cookies() {
		out[ck.Name] = ck
	}
	return out
}

func TestAccessTokenRoundTrip(t *testing.T) {
	m, _ := newManager(t)

	tok, err := m.SignAccessToken("user-1")
	require.NoError(t, err)

	claims, err := m.ParseAccessToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.ID)
	assert.NotEmpty(t, claims.RegisteredClaims.ID)

	_, err = m.ParseRefreshToken(tok)
	assert.Error(t, err, "access tokens are not valid refresh tokens")
}

func TestExpiredAccessToken(t *testing.T) {
	m, _ := newManager(t)
	m.now = func() time.Time { return time.Now().Add(-time.Hour) }

	tok, err := m.SignAccessToken("user-1")
	require.NoError(t, err)

	_, err = m.ParseAccessToken(tok)
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestActivationToken(t *testing.T) {
	m, _ := newManager(t)
	m.newCode = func() string { return "4242" }

	tok, code, err := m.CreateActivationToken(Registration{Name: "Ann", Email: "ann@example.com", Password: "hash"})
	require.NoError(t, err)
	assert.Equal(t, "4242", code)

	claims, err := m.ParseActivationToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "4242", claims.ActivationCode)
	assert.Equal(t, "ann@example.com", claims.User.Email)

	m.now = func() time.Time { return time.Now().Add(-10 * time.Minute) }
	stale, _, err := m.CreateActivationToken(Registration{Email: "ann@example.com"})
	require.NoError(t, err)
	_, err = m.ParseActivationToken(stale)
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestIssueAndRefresh(t *testing.T) {
	m, store := newManager(t)
	user := &models.User{Base: models.Base{ID: "user-1"}, Name: "Ann", Role: models.RoleUser}

	app := fiber.New()
	app.Get("/login", func(c *fiber.Ctx) error {
		tok, err := m.Issue(c, user)
		if err != nil {
			return err
		}
		return c.SendString(tok)
	})
	app.Get("/refresh", func(c *fiber.Ctx) error {
		_, tok, _, err := m.Refresh(c)
		if err != nil {
			return err
		}
		return c.SendString(tok)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/login", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	login := cookiesByName(resp)
	require.Contains(t, login, AccessCookie)
	require.Contains(t, login, RefreshCookie)
	assert.True(t, login[AccessCookie].HttpOnly)

	cached, err := m.Load(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Ann", cached.Name)

	req := httptest.NewRequest(http.MethodGet, "/refresh", nil)
	req.AddCookie(login[RefreshCookie])
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	refreshed := cookiesByName(resp)
	assert.NotEqual(t, login[AccessCookie].Value, refreshed[AccessCookie].Value)
	assert.NotEqual(t, login[RefreshCookie].Value, refreshed[RefreshCookie].Value)

	// without a session the refresh token is useless
	require.NoError(t, store.Delete(context.Background(), cache.SessionKey("user-1")))
	req = httptest.NewRequest(http.MethodGet, "/refresh", nil)
	req.AddCookie(refreshed[RefreshCookie])
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/refresh", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSaveIfActive(t *testing.T) {
	m, _ := newManager(t)
	ctx := context.Background()
	user := &models.User{Base: models.Base{ID: "user-2"}, Name: "Bob"}

	require.NoError(t, m.SaveIfActive(ctx, user))
	_, err := m.Load(ctx, "user-2")
	assert.ErrorIs(t, err, cache.ErrNotFound, "no session is created for logged-out users")

	require.NoError(t, m.Save(ctx, user, 0))
	user.Role = models.RoleAdmin
	require.NoError(t, m.SaveIfActive(ctx, user))
	cached, err := m.Load(ctx, "user-2")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, cached.Role)
}
