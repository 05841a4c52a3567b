package middleware

import (
	"strings"

	"fitplan/internal/delivery/api/response"
	"fitplan/internal/domain/constants"
	"fitplan/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const contextKeyEmail = "email"

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Verifier service.TokenVerifier
}

// AuthMiddleware authenticates requests with the identity provider session token.
type AuthMiddleware struct {
	verifier service.TokenVerifier
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{verifier: params.Verifier}
}

// Authenticate accepts "Authorization: Bearer <token>" or the __session cookie
// the identity provider sets for same-site browsers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := bearerToken(c)
		if token == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		claims, err := m.verifier.Verify(token)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(contextKeyEmail, claims.Email)

		return next(c)
	}
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}

	if cookie, err := c.Cookie("__session"); err == nil {
		return cookie.Value
	}

	return ""
}

// GetUserID returns the authenticated user id set by Authenticate.
func GetUserID(c echo.Context) (string, bool) {
	userID, ok := c.Get(constants.ContextKeyUserID).(string)

	return userID, ok && userID != ""
}

// GetEmail returns the email claim of the session token, if any.
func GetEmail(c echo.Context) string {
	email, _ := c.Get(contextKeyEmail).(string)

	return email
}
