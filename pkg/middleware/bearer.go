package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"collegefaq/pkg/auth/token"
)

const userIDKey = "user_id"

// RequireAuth rejects requests without a valid bearer token. Endpoints like
// chat history use this.
func RequireAuth(tm *token.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid, ok := bearerUserID(c, tm)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing or invalid token"})
			}
			c.Set(userIDKey, uid)
			return next(c)
		}
	}
}

// OptionalAuth attaches an identity when a valid bearer token is present and
// silently continues without one otherwise. The chat endpoint uses this: the
// same question works for anonymous and logged-in callers, only history
// persistence differs.
func OptionalAuth(tm *token.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if uid, ok := bearerUserID(c, tm); ok {
				c.Set(userIDKey, uid)
			}
			return next(c)
		}
	}
}

// UserID returns the authenticated user id, or 0 when the request is
// anonymous.
func UserID(c echo.Context) uint {
	uid, _ := c.Get(userIDKey).(uint)
	return uid
}

func bearerUserID(c echo.Context, tm *token.Manager) (uint, bool) {
	h := c.Request().Header.Get(echo.HeaderAuthorization)
	if h == "" {
		return 0, false
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return 0, false
	}
	uid, err := tm.Verify(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, false
	}
	return uid, true
}
