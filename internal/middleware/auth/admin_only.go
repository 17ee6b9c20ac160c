package auth

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/febdev/feb_shop/internal/logging"
	"github.com/febdev/feb_shop/internal/models"
)

// AdminOnly resolves the caller's stored is_admin flag and rejects with 403
// when it is false. Must be composed after RequireLogin, so the admin check
// always runs before the handler looks anything else up.
func AdminOnly(db *gorm.DB) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			l := logging.FromContext(c.Request().Context()).With("middleware", "admin_only")

			userID, ok := UserID(c)
			if !ok {
				l.Warn("admin_check_failed", "status", 401, "reason", "no user in context")
				return unauthorized(c)
			}

			var user models.User
			if err := db.First(&user, userID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					l.Warn("admin_check_failed", "status", 401, "reason", "token user not found", "user_id", userID)
					return unauthorized(c)
				}
				l.Error("admin_check_failed", "status", 500, "error", err)
				return errorJSON(c, http.StatusInternalServerError, "cannot load user")
			}

			if !user.IsAdmin {
				l.Warn("admin_check_failed", "status", 403, "user_id", userID)
				return errorJSON(c, http.StatusForbidden, "Not authorised to delete a product")
			}

			return next(c)
		}
	}
}
