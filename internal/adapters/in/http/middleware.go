package http

import (
	"net/http"
	"strings"

	"tracker/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// identityContextKey is the echo context key the authenticated username is
// stored under.
const identityContextKey = "identity"

// BearerAuth returns middleware that rejects requests lacking a valid bearer
// token. The authenticated identity is stored on the echo context for
// downstream handlers.
func BearerAuth(provider ports.TokenProvider) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Missing bearer token",
				})
			}

			identity, err := provider.Validate(c.Request().Context(), token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Invalid or expired token",
				})
			}

			c.Set(identityContextKey, identity)
			return next(c)
		}
	}
}

// callerIdentity returns the authenticated username stored by BearerAuth,
// or an empty string when the request did not pass through it.
func callerIdentity(c echo.Context) string {
	identity, _ := c.Get(identityContextKey).(string)
	return identity
}
