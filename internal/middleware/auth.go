package middleware

import (
	"net/http"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"complaints_backend_echo/internal/models"
	"complaints_backend_echo/internal/services"
)

const currentUserKey = "currentUser"

// RequireAuth verifies the Firebase session cookie and resolves the
// matching user record. Handlers downstream read it with CurrentUser.
func RequireAuth(authClient *auth.Client, db *gorm.DB) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if authClient == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication is not configured")
			}

			cookie, err := c.Cookie("session")
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
			}

			decodedToken, err := authClient.VerifySessionCookie(c.Request().Context(), cookie.Value)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired session")
			}

			email, _ := decodedToken.Claims["email"].(string)
			if email == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Session carries no email claim")
			}

			var user models.User
			err = db.Preload("Role").Where("email = ? AND is_active = ?", email, true).First(&user).Error
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unknown or disabled account")
			}

			c.Set(currentUserKey, &user)
			return next(c)
		}
	}
}

// RequirePermission gates a route on the central authorization policy.
// Must run after RequireAuth.
func RequirePermission(action services.Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := CurrentUser(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
			}
			if !services.Allowed(user.Role.Name, action) {
				return echo.NewHTTPError(http.StatusForbidden, "You don't have permission to perform this action")
			}
			return next(c)
		}
	}
}

// CurrentUser returns the authenticated user set by RequireAuth
func CurrentUser(c echo.Context) (*models.User, bool) {
	user, ok := c.Get(currentUserKey).(*models.User)
	return user, ok
}
