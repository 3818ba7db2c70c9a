package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxUserID extracts the authenticated user id injected by the Auth
// middleware. A missing or non-positive id means the middleware did not run
// or the token carried no usable identity; fail fast with 401 before any
// service call.
func ctxUserID(c echo.Context) (int64, error) {
	userID, _ := c.Get("user_id").(int64)
	if userID <= 0 {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, nil
}
