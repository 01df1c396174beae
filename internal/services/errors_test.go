package services

import (
	"errors"
	"testing"
)

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind error
	}{
		{"validation", ValidationError("amount must be greater than zero"), ErrValidation},
		{"not found", NotFoundError("payment"), ErrNotFound},
		{"invalid state", InvalidStateError("payment already reviewed"), ErrInvalidState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.kind) {
				t.Errorf("errors.Is(%v, %v) = false; want true", tt.err, tt.kind)
			}
		})
	}
}

func TestErrorMessagesStayClean(t *testing.T) {
	err := ValidationError("rejection reason is required")
	if got := err.Error(); got != "rejection reason is required" {
		t.Errorf("Error() = %q; want the bare message", got)
	}

	if got := NotFoundError("payment").Error(); got != "payment not found" {
		t.Errorf("Error() = %q; want %q", got, "payment not found")
	}
}
