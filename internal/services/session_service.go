package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// GuestSession is the placeholder identity attached to comments and
// purchases. There is no real authentication: every visitor gets a stable
// per-session guest identity with placeholder contact fields, the way the
// platform operated before accounts shipped.
type GuestSession struct {
	ID    string
	Name  string
	Email string
	Phone string
	City  string
	State string
}

// SessionService issues and verifies signed guest session tokens
type SessionService struct {
	secret []byte
	maxAge time.Duration
}

// NewSessionService creates a new session service
func NewSessionService(secret string, maxAge time.Duration) *SessionService {
	return &SessionService{secret: []byte(secret), maxAge: maxAge}
}

type sessionClaims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	City  string `json:"city"`
	State string `json:"state"`
	jwt.RegisteredClaims
}

// Issue creates a fresh guest session and its signed token
func (s *SessionService) Issue() (string, GuestSession, error) {
	id := uuid.New().String()
	session := GuestSession{
		ID:    id,
		Name:  "Visitante",
		Email: fmt.Sprintf("visitante-%s@videopecas.invalid", id[:8]),
		Phone: "",
		City:  "São Paulo",
		State: "SP",
	}

	now := time.Now()
	claims := sessionClaims{
		Name:  session.Name,
		Email: session.Email,
		Phone: session.Phone,
		City:  session.City,
		State: session.State,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   session.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.maxAge)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", GuestSession{}, fmt.Errorf("sign session token: %w", err)
	}
	return token, session, nil
}

// Parse verifies a session token and reconstructs the guest identity
func (s *SessionService) Parse(token string) (GuestSession, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return GuestSession{}, fmt.Errorf("parse session token: %w", err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return GuestSession{}, fmt.Errorf("invalid session token")
	}

	return GuestSession{
		ID:    claims.Subject,
		Name:  claims.Name,
		Email: claims.Email,
		Phone: claims.Phone,
		City:  claims.City,
		State: claims.State,
	}, nil
}
