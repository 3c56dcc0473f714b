// Package session issues access/refresh token pairs and keeps the
// serialized user of every logged-in account in the cache store.
package session

import (
	"context"
	"elearning/cache"
	"elearning/config"
	"elearning/models"
	"elearning/utils"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	AccessCookie  = "access_token"
	RefreshCookie = "refresh_token"
)

// Manager owns token signing and the session entries in the cache store.
type Manager struct {
	cfg     *config.Config
	store   cache.Store
	now     func() time.Time
	newCode func() string
}

func NewManager(cfg *config.Config, store cache.Store) *Manager {
	return &Manager{
		cfg:     cfg,
		store:   store,
		now:     time.Now,
		newCode: utils.GenerateActivationCode,
	}
}

// Load returns the cached user for userID, or cache.ErrNotFound.
func (m *Manager) Load(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	if err := cache.GetJSON(ctx, m.store, cache.SessionKey(userID), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Save writes user under its session key. A ttl of zero never expires.
func (m *Manager) Save(ctx context.Context, user *models.User, ttl time.Duration) error {
	return cache.SetJSON(ctx, m.store, cache.SessionKey(user.ID), user, ttl)
}

// SaveIfActive rewrites the session of user only when one exists.
func (m *Manager) SaveIfActive(ctx context.Context, user *models.User) error {
	_, err := m.store.Get(ctx, cache.SessionKey(user.ID))
	if errors.Is(err, cache.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return m.Save(ctx, user, m.cfg.SessionTTL)
}

func (m *Manager) Delete(ctx context.Context, userID string) error {
	return m.store.Delete(ctx, cache.SessionKey(userID))
}

type tokenPair struct {
	access  string
	refresh string
}

func (m *Manager) signPair(userID string) (tokenPair, error) {
	access, err := m.SignAccessToken(userID)
	if err != nil {
		return tokenPair{}, err
	}
	refresh, err := m.SignRefreshToken(userID)
	if err != nil {
		return tokenPair{}, err
	}
	return tokenPair{access: access, refresh: refresh}, nil
}

// Issue logs user in: signs both tokens, caches the user without expiry and
// sets the token cookies. It returns the access token.
func (m *Manager) Issue(c *fiber.Ctx, user *models.User) (string, error) {
	pair, err := m.signPair(user.ID)
	if err != nil {
		return "", err
	}
	if err := m.Save(c.UserContext(), user, 0); err != nil {
		return "", err
	}
	m.setCookies(c, pair)
	return pair.access, nil
}

// Refresh exchanges the refresh cookie for a new token pair and extends the
// cached session. It returns the new access and refresh tokens.
func (m *Manager) Refresh(c *fiber.Ctx) (*models.User, string, string, error) {
	claims, err := m.ParseRefreshToken(c.Cookies(RefreshCookie))
	if err != nil || claims.ID == "" {
		return nil, "", "", fiber.NewError(fiber.StatusUnauthorized, "Invalid refresh token")
	}

	ctx := c.UserContext()
	user, err := m.Load(ctx, claims.ID)
	if errors.Is(err, cache.ErrNotFound) {
		return nil, "", "", fiber.NewError(fiber.StatusBadRequest, "Please login to access this resource")
	}
	if err != nil {
		return nil, "", "", err
	}

	pair, err := m.signPair(user.ID)
	if err != nil {
		return nil, "", "", err
	}
	if err := m.Save(ctx, user, m.cfg.SessionTTL); err != nil {
		return nil, "", "", err
	}
	m.setCookies(c, pair)
	return user, pair.access, pair.refresh, nil
}

// Destroy deletes the cached session and expires both cookies.
func (m *Manager) Destroy(c *fiber.Ctx, userID string) error {
	m.ClearCookies(c)
	return m.Delete(c.UserContext(), userID)
}

func (m *Manager) setCookies(c *fiber.Ctx, pair tokenPair) {
	// both cookies outlive the access token so an expired token reaches the
	// gate and yields 401 rather than a missing-cookie 400
	expires := m.now().Add(m.cfg.RefreshTokenExpire)
	c.Cookie(m.cookie(AccessCookie, pair.access, expires))
	c.Cookie(m.cookie(RefreshCookie, pair.refresh, expires))
}

func (m *Manager) ClearCookies(c *fiber.Ctx) {
	expired := time.Unix(0, 0)
	c.Cookie(m.cookie(AccessCookie, "", expired))
	c.Cookie(m.cookie(RefreshCookie, "", expired))
}

func (m *Manager) cookie(name, value string, expires time.Time) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   m.cfg.IsProduction(),
	}
}
