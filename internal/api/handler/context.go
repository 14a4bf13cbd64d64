package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/raktasangham/bloodbank-api/internal/api/middleware"
	"github.com/raktasangham/bloodbank-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails before any service call: a zero user id means the middleware
// never ran on this route, which is a wiring bug surfaced as 401 rather
// than a panic downstream.
func ctxIdentity(c echo.Context) (userID int64, role domain.Role, err error) {
	userID, _ = c.Get(middleware.ContextUserID).(int64)
	if userID == 0 {
		return 0, 0, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	role, _ = c.Get(middleware.ContextRole).(domain.Role)
	return userID, role, nil
}
