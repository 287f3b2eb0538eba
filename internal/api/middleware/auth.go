package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/afyalink/health-system-api/internal/core/ports"
)

// AuthContextKey is the echo context key the verified principal is stored
// under.
const AuthContextKey = "auth"

// Auth extracts the bearer token, verifies it through the credential store,
// and injects the resulting AuthContext into the request context. Every
// mutation behind this middleware receives an explicit principal; there is no
// process-wide auth state.
func Auth(authService ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			principal, err := authService.Verify(c.Request().Context(), parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(AuthContextKey, principal)
			return next(c)
		}
	}
}
