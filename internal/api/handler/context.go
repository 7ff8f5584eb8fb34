package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/breatheright/health-system/internal/api/middleware"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// performs a fast-fail check before any service call: a non-zero user id and
// non-empty role prove the middleware ran.
func ctxIdentity(c echo.Context) (userID int64, role string, err error) {
	userID, _ = c.Get(middleware.CtxUserID).(int64)
	role, _ = c.Get(middleware.CtxRole).(string)
	if userID == 0 || role == "" {
		return 0, "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, role, nil
}
