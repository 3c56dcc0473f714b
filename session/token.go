package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// Claims identify the user an access or refresh token was issued for.
type Claims struct {
	ID string `json:"id"`
	jwt.RegisteredClaims
}

// Registration is the unpersisted profile carried by an activation token.
// Password holds the bcrypt hash, never the plain text.
type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ActivationClaims struct {
	User           Registration `json:"user"`
	ActivationCode string       `json:"activationCode"`
	jwt.RegisteredClaims
}

func (m *Manager) registered(ttl time.Duration) jwt.RegisteredClaims {
	issued := m.now()
	return jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(issued),
		ExpiresAt: jwt.NewNumericDate(issued.Add(ttl)),
	}
}

func sign(claims jwt.Claims, secret string) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func parse(token string, claims jwt.Claims, secret string) error {
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	return err
}

// SignAccessToken issues a short-lived token for userID.
func (m *Manager) SignAccessToken(userID string) (string, error) {
	return sign(Claims{ID: userID, RegisteredClaims: m.registered(m.cfg.AccessTokenExpire)}, m.cfg.AccessTokenSecret)
}

// SignRefreshToken issues a long-lived token for userID.
func (m *Manager) SignRefreshToken(userID string) (string, error) {
	return sign(Claims{ID: userID, RegisteredClaims: m.registered(m.cfg.RefreshTokenExpire)}, m.cfg.RefreshTokenSecret)
}

// ParseAccessToken verifies token and returns its claims. Errors are
// *jwt.ValidationError values.
func (m *Manager) ParseAccessToken(token string) (*Claims, error) {
	claims := &Claims{}
	if err := parse(token, claims, m.cfg.AccessTokenSecret); err != nil {
		return nil, err
	}
	return claims, nil
}

func (m *Manager) ParseRefreshToken(token string) (*Claims, error) {
	claims := &Claims{}
	if err := parse(token, claims, m.cfg.RefreshTokenSecret); err != nil {
		return nil, err
	}
	return claims, nil
}

// CreateActivationToken signs reg together with a fresh 4-digit code.
func (m *Manager) CreateActivationToken(reg Registration) (token, code string, err error) {
	code = m.newCode()
	token, err = sign(ActivationClaims{
		User:             reg,
		ActivationCode:   code,
		RegisteredClaims: m.registered(m.cfg.ActivationExpire),
	}, m.cfg.ActivationSecret)
	if err != nil {
		return "", "", err
	}
	return token, code, nil
}

func (m *Manager) ParseActivationToken(token string) (*ActivationClaims, error) {
	claims := &ActivationClaims{}
	if err := parse(token, claims, m.cfg.ActivationSecret); err != nil {
		return nil, err
	}
	return claims, nil
}
