package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"complaints_backend_echo/internal/models"
)

// SubmitPaymentInput carries the trader-declared fields of a payment
// proof submission. ReceiptPath references the already-stored receipt
// artifact.
type SubmitPaymentInput struct {
	MethodID             uint
	SenderName           string
	SenderPhone          string
	Amount               float64
	TransactionReference string
	PaymentDate          string
	ReceiptPath          string
}

// PaymentService is the payment ledger: it records submitted payment
// proofs and exposes them to reviewers. Review decisions live in the
// SubscriptionService, the only component allowed to move a payment
// out of pending.
type PaymentService struct {
	db            *gorm.DB
	notifications *NotificationService
}

func NewPaymentService(db *gorm.DB, notifications *NotificationService) *PaymentService {
	return &PaymentService{db: db, notifications: notifications}
}

// ValidateSubmission checks the declared fields and returns the parsed
// payment date
func ValidateSubmission(in SubmitPaymentInput) (time.Time, error) {
	if in.MethodID == 0 {
		return time.Time{}, ValidationError("method_id is required")
	}
	if in.SenderName == "" {
		return time.Time{}, ValidationError("sender_name is required")
	}
	if in.SenderPhone == "" {
		return time.Time{}, ValidationError("sender_phone is required")
	}
	if in.Amount <= 0 {
		return time.Time{}, ValidationError("amount must be greater than zero")
	}
	if in.ReceiptPath == "" {
		return time.Time{}, ValidationError("receipt image is required")
	}
	if in.PaymentDate == "" {
		return time.Time{}, ValidationError("payment_date is required")
	}

	paymentDate, err := time.Parse(time.RFC3339, in.PaymentDate)
	if err != nil {
		// Accept a bare date too, the mobile client sends both forms
		paymentDate, err = time.Parse("2006-01-02", in.PaymentDate)
		if err != nil {
			return time.Time{}, ValidationError("payment_date is not a valid date")
		}
	}
	return paymentDate, nil
}

// Submit records a pending payment proof and fans a notification out
// to every reviewer, atomically
func (s *PaymentService) Submit(userID uint, in SubmitPaymentInput) (*models.Payment, error) {
	paymentDate, err := ValidateSubmission(in)
	if err != nil {
		return nil, err
	}

	var method models.PaymentMethod
	if err := s.db.First(&method, in.MethodID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ValidationError("unknown payment method")
		}
		return nil, err
	}
	if !method.IsActive {
		return nil, ValidationError("payment method is no longer available")
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, NotFoundError("user")
	}

	payment := models.Payment{
		UserID:               userID,
		MethodID:             in.MethodID,
		SenderName:           in.SenderName,
		SenderPhone:          in.SenderPhone,
		Amount:               in.Amount,
		TransactionReference: in.TransactionReference,
		PaymentDate:          paymentDate,
		ReceiptPath:          in.ReceiptPath,
		Status:               models.PaymentStatusPending,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}
		message := fmt.Sprintf("New payment submission from %s for %.0f YER", user.FullName, in.Amount)
		return s.notifications.NotifyReviewers(tx, message, models.NotificationTypePaymentSubmission)
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// ListByStatus returns payments in the given review state, newest first
func (s *PaymentService) ListByStatus(status models.PaymentStatus) ([]models.Payment, error) {
	var payments []models.Payment
	err := s.db.Preload("User").Preload("Method").
		Where("status = ?", status).
		Order("created_at desc").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

// GetByID fetches one payment
func (s *PaymentService) GetByID(id uint) (*models.Payment, error) {
	var payment models.Payment
	err := s.db.Preload("User").Preload("Method").First(&payment, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, NotFoundError("payment")
		}
		return nil, err
	}
	return &payment, nil
}

// GetByReceipt resolves a payment from its stored receipt filename
func (s *PaymentService) GetByReceipt(receiptPath string) (*models.Payment, error) {
	var payment models.Payment
	err := s.db.Where("receipt_path = ?", receiptPath).First(&payment).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, NotFoundError("receipt")
		}
		return nil, err
	}
	return &payment, nil
}

// PendingForUser returns the user's pending payment, if any
func (s *PaymentService) PendingForUser(userID uint) (*models.Payment, error) {
	var payment models.Payment
	err := s.db.Where("user_id = ? AND status = ?", userID, models.PaymentStatusPending).
		Order("created_at desc").
		First(&payment).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}
