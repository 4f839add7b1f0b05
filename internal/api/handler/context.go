package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxUserID returns the subject injected by the Auth middleware. Its absence
// means the route was registered without the middleware or the token carries
// no subject; both are reported as 401.
func ctxUserID(c echo.Context) (string, error) {
	userID, _ := c.Get("user_id").(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, nil
}
