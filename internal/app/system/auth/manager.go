package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

var (
	// ErrInvalidToken is returned for malformed, mis-signed, or expired tokens.
	ErrInvalidToken = errors.New("invalid token")
)

// DemoAccount is a synthetic identity that bypasses the user store.
// The allow-list is empty unless explicitly configured; it exists for
// demo deployments only.
type DemoAccount struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       string `json:"role"`
	Department string `json:"department,omitempty"`
	Year       int    `json:"year,omitempty"`
	Section    string `json:"section,omitempty"`
}

// Manager issues and verifies bearer tokens and resolves their subjects.
type Manager struct {
	secret []byte
	expiry time.Duration
	users  UserLookup
	log    *zap.Logger

	demoByEmail map[string]DemoAccount
	demoIDs     map[string]DemoAccount
}

// NewManager builds a token manager. demo may be nil.
func NewManager(secret string, expiry time.Duration, users UserLookup, demo []DemoAccount, logger *zap.Logger) *Manager {
	m := &Manager{
		secret:      []byte(secret),
		expiry:      expiry,
		users:       users,
		log:         logger,
		demoByEmail: make(map[string]DemoAccount, len(demo)),
		demoIDs:     make(map[string]DemoAccount, len(demo)),
	}
	for _, d := range demo {
		m.demoByEmail[strings.ToLower(d.Email)] = d
		m.demoIDs[d.ID] = d
	}
	return m
}

// IssueToken signs a token whose subject is the user's hex ID.
func (m *Manager) IssueToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// ParseToken verifies a signed token and returns its subject.
func (m *Manager) ParseToken(raw string) (string, error) {
	tok, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !tok.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := tok.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// DemoByCredentials matches email+password against the demo allow-list.
func (m *Manager) DemoByCredentials(email, password string) (*AuthUser, bool) {
	d, ok := m.demoByEmail[strings.ToLower(email)]
	if !ok || d.Password != password {
		return nil, false
	}
	return demoUser(d), true
}

func (m *Manager) demoByID(id string) (*AuthUser, bool) {
	d, ok := m.demoIDs[id]
	if !ok {
		return nil, false
	}
	return demoUser(d), true
}

func demoUser(d DemoAccount) *AuthUser {
	return &AuthUser{
		ID:         d.ID,
		Name:       d.Name,
		Email:      d.Email,
		Role:       d.Role,
		Department: d.Department,
		Year:       d.Year,
		Section:    d.Section,
	}
}
