package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"complaints_backend_echo/internal/middleware"
	"complaints_backend_echo/internal/services"
)

// NotificationHandler lets users read their in-app notifications
type NotificationHandler struct {
	notifications *services.NotificationService
}

func NewNotificationHandler(notifications *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// List returns the caller's notifications, newest first
func (h *NotificationHandler) List(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	notifications, err := h.notifications.ListForUser(user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"notifications": notifications})
}

// MarkRead flags one of the caller's notifications as read
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return services.NotFoundError("notification")
	}

	if err := h.notifications.MarkRead(uint(id), user.ID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Notification marked as read"})
}
