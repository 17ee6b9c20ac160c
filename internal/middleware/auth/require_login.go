package auth

import (
	"github.com/labstack/echo/v4"

	"github.com/febdev/feb_shop/internal/logging"
	"github.com/febdev/feb_shop/internal/tokens"
)

// RequireLogin rejects the request with 401 before the handler runs unless a
// valid unexpired bearer token is presented. Every request is verified
// independently, nothing is cached between requests.
func RequireLogin(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			l := logging.FromContext(c.Request().Context()).With("middleware", "require_login")

			raw := bearerToken(c)
			if raw == "" {
				l.Warn("auth_failed", "status", 401, "reason", "no bearer token")
				return unauthorized(c)
			}

			userID, err := tokens.Parse(raw, secret)
			if err != nil {
				l.Warn("auth_failed", "status", 401, "reason", "token rejected", "error", err)
				return unauthorized(c)
			}

			setUserContext(c, userID)
			return next(c)
		}
	}
}
