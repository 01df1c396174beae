package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"complaints_backend_echo/internal/services"
)

// CustomErrorHandler maps core service errors and echo HTTP errors to
// JSON responses without leaking storage detail
func CustomErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Something went wrong. Please try again later."

	switch {
	case errors.Is(err, services.ErrValidation):
		code = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, services.ErrNotFound):
		code = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, services.ErrInvalidState):
		code = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, services.ErrForbidden):
		code = http.StatusForbidden
		message = err.Error()
	default:
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			code = httpErr.Code
			if msg, ok := httpErr.Message.(string); ok && msg != "" {
				message = msg
			} else {
				message = http.StatusText(code)
			}
		} else {
			// Internal errors are logged, not surfaced
			c.Logger().Error(err)
		}
	}

	if writeErr := c.JSON(code, map[string]string{"message": message}); writeErr != nil {
		c.Logger().Error(writeErr)
	}
}
