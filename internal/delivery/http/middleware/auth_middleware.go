// Package middleware contains the echo middleware for the HTTP delivery.
package middleware

import (
	"strings"

	"conduit/internal/delivery/http/response"
	"conduit/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// tokenScheme is the exact Authorization scheme, trailing space included.
// Matching is case sensitive; "token" or "Bearer" are rejected.
const tokenScheme = "Token "

// ContextUserIDKey is the echo context key under which the authenticated
// subject identifier is stored.
const ContextUserIDKey = "userID"

// AuthMiddleware validates the request's token and places the resolved
// user ID on the context for handlers.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate requires a valid token. Requests without one, or with a
// malformed or expired one, are rejected with 401 before the handler runs.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, errResp := m.extractIdentity(c)
		if errResp != nil {
			return errResp(c)
		}

		c.Set(ContextUserIDKey, userID)

		return next(c)
	}
}

// AuthenticateOptional admits anonymous requests: a missing Authorization
// header passes through with no identity set. A header that is present but
// unusable is still a 401; anonymity is the absence of a credential, not
// forgiveness for a bad one.
func (m *AuthMiddleware) AuthenticateOptional(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Header.Get("Authorization") == "" {
			return next(c)
		}

		userID, errResp := m.extractIdentity(c)
		if errResp != nil {
			return errResp(c)
		}

		c.Set(ContextUserIDKey, userID)

		return next(c)
	}
}

func (m *AuthMiddleware) extractIdentity(c echo.Context) (int64, func(echo.Context) error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return 0, func(c echo.Context) error {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}
	}

	tokenString := strings.TrimPrefix(authHeader, tokenScheme)
	if tokenString == authHeader || tokenString == "" {
		return 0, func(c echo.Context) error {
			return response.Unauthorized(c, "INVALID_TOKEN_SCHEME", "Authorization scheme must be 'Token'")
		}
	}

	userID, err := m.tokenSvc.Validate(tokenString)
	if err != nil {
		return 0, func(c echo.Context) error {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}
	}

	return userID, nil
}

// UserID reads the authenticated subject identifier set by Authenticate.
// The second return is false on anonymous requests.
func UserID(c echo.Context) (int64, bool) {
	userID, ok := c.Get(ContextUserIDKey).(int64)

	return userID, ok
}
