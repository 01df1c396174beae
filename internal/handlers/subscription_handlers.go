package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"complaints_backend_echo/internal/middleware"
	"complaints_backend_echo/internal/services"
)

// SubscriptionHandler exposes subscription status, pricing and the
// admin settings surface
type SubscriptionHandler struct {
	engine   *services.SubscriptionService
	payments *services.PaymentService
	settings *services.SettingsService
}

func NewSubscriptionHandler(engine *services.SubscriptionService, payments *services.PaymentService, settings *services.SettingsService) *SubscriptionHandler {
	return &SubscriptionHandler{engine: engine, payments: payments, settings: settings}
}

// Status returns the caller's current subscription and pending payment
func (h *SubscriptionHandler) Status(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	status, err := h.engine.Status(user.ID, h.payments)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, status)
}

// Price returns the annual subscription price
func (h *SubscriptionHandler) Price(c echo.Context) error {
	price, err := h.settings.AnnualPrice()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"price":    price,
		"currency": "YER",
	})
}

// GetSettings returns all settings rows for admins
func (h *SubscriptionHandler) GetSettings(c echo.Context) error {
	settings, err := h.settings.All()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"settings": settings})
}

// UpdateSettings bulk-upserts setting values
func (h *SubscriptionHandler) UpdateSettings(c echo.Context) error {
	var values map[string]string
	if err := c.Bind(&values); err != nil {
		return services.ValidationError("request body must be a key/value object")
	}
	if len(values) == 0 {
		return services.ValidationError("no settings provided")
	}

	if err := h.settings.Upsert(values); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Settings updated"})
}
