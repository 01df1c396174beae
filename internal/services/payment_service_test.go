package services

import (
	"errors"
	"testing"
	"time"
)

func validSubmission() SubmitPaymentInput {
	return SubmitPaymentInput{
		MethodID:             1,
		SenderName:           "Ahmed Saleh",
		SenderPhone:          "771234567",
		Amount:               50000,
		TransactionReference: "TX-1001",
		PaymentDate:          "2026-02-20T10:30:00Z",
		ReceiptPath:          "abc_receipt.png",
	}
}

func TestValidateSubmission(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SubmitPaymentInput)
		wantErr bool
	}{
		{
			name:   "valid RFC3339 date",
			mutate: func(in *SubmitPaymentInput) {},
		},
		{
			name:   "valid bare date",
			mutate: func(in *SubmitPaymentInput) { in.PaymentDate = "2026-02-20" },
		},
		{
			name:    "missing method",
			mutate:  func(in *SubmitPaymentInput) { in.MethodID = 0 },
			wantErr: true,
		},
		{
			name:    "missing sender name",
			mutate:  func(in *SubmitPaymentInput) { in.SenderName = "" },
			wantErr: true,
		},
		{
			name:    "missing sender phone",
			mutate:  func(in *SubmitPaymentInput) { in.SenderPhone = "" },
			wantErr: true,
		},
		{
			name:    "zero amount",
			mutate:  func(in *SubmitPaymentInput) { in.Amount = 0 },
			wantErr: true,
		},
		{
			name:    "negative amount",
			mutate:  func(in *SubmitPaymentInput) { in.Amount = -100 },
			wantErr: true,
		},
		{
			name:    "missing receipt",
			mutate:  func(in *SubmitPaymentInput) { in.ReceiptPath = "" },
			wantErr: true,
		},
		{
			name:    "missing payment date",
			mutate:  func(in *SubmitPaymentInput) { in.PaymentDate = "" },
			wantErr: true,
		},
		{
			name:    "unparseable payment date",
			mutate:  func(in *SubmitPaymentInput) { in.PaymentDate = "20/02/2026" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validSubmission()
			tt.mutate(&in)

			parsed, err := ValidateSubmission(in)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected validation error, got nil")
				}
				if !errors.Is(err, ErrValidation) {
					t.Errorf("error kind = %v; want ErrValidation", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if parsed.IsZero() {
				t.Error("parsed payment date is zero")
			}
		})
	}
}

func TestValidateSubmissionParsesBareDate(t *testing.T) {
	in := validSubmission()
	in.PaymentDate = "2026-02-20"

	parsed, err := ValidateSubmission(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)
	if !parsed.Equal(want) {
		t.Errorf("parsed = %v; want %v", parsed, want)
	}
}
