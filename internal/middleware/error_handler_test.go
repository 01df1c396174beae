package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"complaints_backend_echo/internal/services"
)

func TestCustomErrorHandlerMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "validation error",
			err:      services.ValidationError("rejection reason is required"),
			wantCode: http.StatusBadRequest,
			wantBody: "rejection reason is required",
		},
		{
			name:     "not found",
			err:      services.NotFoundError("payment"),
			wantCode: http.StatusNotFound,
			wantBody: "payment not found",
		},
		{
			name:     "invalid state",
			err:      services.InvalidStateError("payment already reviewed"),
			wantCode: http.StatusBadRequest,
			wantBody: "payment already reviewed",
		},
		{
			name:     "echo http error",
			err:      echo.NewHTTPError(http.StatusForbidden, "You don't have permission to perform this action"),
			wantCode: http.StatusForbidden,
			wantBody: "permission",
		},
		{
			name:     "internal errors stay generic",
			err:      errors.New("pq: connection refused"),
			wantCode: http.StatusInternalServerError,
			wantBody: "Something went wrong",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			CustomErrorHandler(tt.err, c)

			if rec.Code != tt.wantCode {
				t.Errorf("status = %d; want %d", rec.Code, tt.wantCode)
			}
			if !strings.Contains(rec.Body.String(), tt.wantBody) {
				t.Errorf("body = %q; want it to contain %q", rec.Body.String(), tt.wantBody)
			}
		})
	}
}
