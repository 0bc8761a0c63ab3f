package session

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"friendlyeats/pkg/errors"
)

// Profile is the identity attached to a signed-in session.
type Profile struct {
	UID         string
	Email       string
	DisplayName string
}

type sessionClaims struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Store issues and resolves session tokens. Tokens are HS256 JWTs, but
// every live session is also tracked server-side so logout revokes it
// before the signature expires. Expiry is checked on every Resolve.
type Store struct {
	secret []byte
	ttl    time.Duration

	mu     sync.RWMutex
	active map[string]time.Time // session id -> expiry
}

func NewStore(secret string, ttl time.Duration) *Store {
	return &Store{
		secret: []byte(secret),
		ttl:    ttl,
		active: make(map[string]time.Time),
	}
}

func (s *Store) Issue(profile Profile) (string, error) {
	now := time.Now()
	expiresAt := now.Add(s.ttl)
	sessionID := uuid.New().String()

	claims := sessionClaims{
		Email: profile.Email,
		Name:  profile.DisplayName,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			Subject:   profile.UID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Internal("Failed to create session", err)
	}

	s.mu.Lock()
	s.active[sessionID] = expiresAt
	s.mu.Unlock()

	return token, nil
}

func (s *Store) Resolve(token string) (*Profile, error) {
	claims, err := s.parse(token)
	if err != nil {
		return nil, errors.Unauthorized("Invalid or expired session", err)
	}

	s.mu.Lock()
	expiresAt, ok := s.active[claims.ID]
	if ok && !time.Now().Before(expiresAt) {
		delete(s.active, claims.ID)
		ok = false
	}
	s.mu.Unlock()

	if !ok {
		return nil, errors.Unauthorized("Session has ended", nil)
	}

	return &Profile{
		UID:         claims.Subject,
		Email:       claims.Email,
		DisplayName: claims.Name,
	}, nil
}

func (s *Store) Revoke(token string) {
	claims, err := s.parse(token)
	if err != nil {
		return
	}

	s.mu.Lock()
	delete(s.active, claims.ID)
	s.mu.Unlock()
}

func (s *Store) parse(token string) (*sessionClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// StartCleanup drops expired sessions in the background so the map does
// not grow without bound.
func (s *Store) StartCleanup(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.purge()
			}
		}
	}()
}

func (s *Store) purge() {
	now := time.Now()
	s.mu.Lock()
	for id, expiresAt := range s.active {
		if !now.Before(expiresAt) {
			delete(s.active, id)
		}
	}
	s.mu.Unlock()
}
