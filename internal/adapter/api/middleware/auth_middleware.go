package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"friendlyeats/internal/infrastructure/session"
	"friendlyeats/pkg/errors"
	"friendlyeats/pkg/response"
)

type AuthMiddleware struct {
	sessions *session.Store
}

func NewAuthMiddleware(sessions *session.Store) *AuthMiddleware {
	return &AuthMiddleware{
		sessions: sessions,
	}
}

// Authenticate resolves the Bearer session token. Expiry is checked on
// every request, so a session that ran out mid-browse fails here rather
// than at some later read.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Error(c, errors.Unauthorized("Authorization header is required", nil))
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return response.Error(c, errors.Unauthorized("Invalid authorization format", nil))
		}

		profile, err := m.sessions.Resolve(parts[1])
		if err != nil {
			return response.Error(c, errors.Unauthorized("Invalid or expired session", err))
		}

		c.Set("uid", profile.UID)
		c.Set("email", profile.Email)
		c.Set("displayName", profile.DisplayName)

		return next(c)
	}
}
