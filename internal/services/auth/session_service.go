// filepath: internal/services/auth/session_service.go
// Package auth implements the admin session gate: a domain-restricted login
// that issues a signed session token delivered as a cookie, plus the
// middleware that guards the admin API.
package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/patrickmn/go-cache"
	"golang.org/x/crypto/bcrypt"

	"hcsl_site/internal/config"
	"hcsl_site/internal/shared"
)

// CookieName is the session cookie checked by the admin middleware.
const CookieName = "auth_token"

// sessionClaims defines the claims carried by a session token.
type sessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Session describes an authenticated admin session.
type Session struct {
	Email     string
	ExpiresAt time.Time
}

// SessionService issues and validates admin session tokens.
type SessionService interface {
	Login(email, password string) (string, *Session, error)
	Validate(token string) (*Session, error)
	Logout(token string)
	Duration() time.Duration
}

var _ SessionService = (*sessionService)(nil)

type sessionService struct {
	cfg          *config.Config
	passwordHash []byte
	// sessions is the allow list of live token ids. A token whose jti is no
	// longer present has been logged out, even if its signature still checks.
	sessions *cache.Cache
}

// NewSessionService hashes the configured admin password once at startup.
func NewSessionService(cfg *config.Config) (SessionService, error) {
	password := cfg.AdminPassword
	if password == "" {
		password = "admin"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}
	ttl := time.Duration(cfg.Auth.SessionDurationHours) * time.Hour
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &sessionService{
		cfg:          cfg,
		passwordHash: hash,
		sessions:     cache.New(ttl, 2*ttl),
	}, nil
}

// Duration returns the configured session lifetime.
func (s *sessionService) Duration() time.Duration {
	ttl := time.Duration(s.cfg.Auth.SessionDurationHours) * time.Hour
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return ttl
}

// Login checks the email domain and password, then issues a signed session
// token. Any account under the admin domain is accepted; there is no user
// table behind this gate.
func (s *sessionService) Login(email, password string) (string, *Session, error) {
	domain := s.cfg.Auth.AdminDomain
	if domain == "" {
		domain = "hscgroup.org"
	}
	normalized := strings.ToLower(strings.TrimSpace(email))
	if !strings.HasSuffix(normalized, "@"+domain) {
		return "", nil, shared.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", nil, shared.ErrInvalidCredentials
	}

	expiry := time.Now().Add(s.Duration())
	jtiBytes := make([]byte, 16)
	if _, err := rand.Read(jtiBytes); err != nil {
		return "", nil, fmt.Errorf("failed to generate session id: %w", err)
	}
	jti := hex.EncodeToString(jtiBytes)

	claims := &sessionClaims{
		Email: normalized,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiry),
			Issuer:    "hcsl_site",
			Subject:   normalized,
			ID:        jti,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.SessionSecret))
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	s.sessions.Set(jti, normalized, s.Duration())
	return signed, &Session{Email: normalized, ExpiresAt: expiry}, nil
}

// Validate checks the token signature and expiry, then checks the session
// allow list so logged-out tokens stop working immediately.
func (s *sessionService) Validate(tokenString string) (*Session, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SessionSecret), nil
	})
	if err != nil {
		return nil, err // Handles expired tokens as well
	}
	if !token.Valid {
		return nil, errors.New("invalid session token")
	}
	if _, found := s.sessions.Get(claims.ID); !found {
		return nil, errors.New("session revoked or expired")
	}
	return &Session{Email: claims.Email, ExpiresAt: claims.ExpiresAt.Time}, nil
}

// Logout revokes the session behind a token. Unparseable tokens are ignored;
// logout never fails.
func (s *sessionService) Logout(tokenString string) {
	claims := &sessionClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return
	}
	s.sessions.Delete(claims.ID)
}
