package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"complaints_backend_echo/internal/models"
	"complaints_backend_echo/internal/services"
)

const paymentMethodsCacheKey = "payment_methods:active"

// PaymentMethodHandler exposes the payment method registry. The public
// listing is cached; every admin mutation invalidates the cache.
type PaymentMethodHandler struct {
	methods *services.PaymentMethodService
	cache   *services.RedisCache
}

func NewPaymentMethodHandler(methods *services.PaymentMethodService, cache *services.RedisCache) *PaymentMethodHandler {
	return &PaymentMethodHandler{methods: methods, cache: cache}
}

// PublicList returns active methods in display order
func (h *PaymentMethodHandler) PublicList(c echo.Context) error {
	var methods []models.PaymentMethod
	var err error

	if h.cache != nil {
		methods, err = services.GetOrSet(h.cache, c.Request().Context(), paymentMethodsCacheKey, 5*time.Minute, h.methods.ListActive)
	} else {
		methods, err = h.methods.ListActive()
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"payment_methods": methods})
}

// AdminList returns every method, including disabled ones
func (h *PaymentMethodHandler) AdminList(c echo.Context) error {
	methods, err := h.methods.ListAll()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"payment_methods": methods})
}

// Create adds a payment method
func (h *PaymentMethodHandler) Create(c echo.Context) error {
	var in services.PaymentMethodInput
	if err := c.Bind(&in); err != nil {
		return services.ValidationError("invalid request body")
	}

	method, err := h.methods.Create(in)
	if err != nil {
		return err
	}

	h.invalidateCache(c.Request().Context())
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Payment method added",
		"method":  method,
	})
}

// Update edits the fields present in the request body
func (h *PaymentMethodHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return services.NotFoundError("payment method")
	}

	var in services.PaymentMethodInput
	if err := c.Bind(&in); err != nil {
		return services.ValidationError("invalid request body")
	}

	method, err := h.methods.Update(uint(id), in)
	if err != nil {
		return err
	}

	h.invalidateCache(c.Request().Context())
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Payment method updated",
		"method":  method,
	})
}

// Delete removes a method. Destructive admin action; prefer disabling
// via is_active.
func (h *PaymentMethodHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return services.NotFoundError("payment method")
	}

	if err := h.methods.Delete(uint(id)); err != nil {
		return err
	}

	h.invalidateCache(c.Request().Context())
	return c.JSON(http.StatusOK, map[string]string{"message": "Payment method deleted"})
}

func (h *PaymentMethodHandler) invalidateCache(ctx context.Context) {
	if h.cache != nil {
		_ = h.cache.Delete(ctx, paymentMethodsCacheKey)
	}
}
