package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/afyalink/health-system-api/internal/api/middleware"
	"github.com/afyalink/health-system-api/internal/core/domain"
)

// ctxAuth extracts the AuthContext injected by the Auth middleware. Its
// presence proves the middleware ran; a handler reached without it is a
// routing mistake and is rejected rather than trusted.
func ctxAuth(c echo.Context) (domain.AuthContext, error) {
	principal, ok := c.Get(middleware.AuthContextKey).(domain.AuthContext)
	if !ok || principal.UserID == 0 {
		return domain.AuthContext{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return principal, nil
}
