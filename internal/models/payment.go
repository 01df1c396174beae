package models

import (
	"time"
)

// PaymentStatus represents the review state of a submitted payment
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusRejected PaymentStatus = "rejected"
)

// Payment records a trader-submitted payment proof awaiting committee
// review. Status moves from pending to approved or rejected exactly
// once and never back; records are never deleted.
type Payment struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID               uint          `gorm:"index" json:"user_id"`
	MethodID             uint          `gorm:"index" json:"method_id"`
	SenderName           string        `gorm:"type:varchar(255)" json:"sender_name"`
	SenderPhone          string        `gorm:"type:varchar(50)" json:"sender_phone"`
	Amount               float64       `gorm:"type:decimal(15,2)" json:"amount"`
	TransactionReference string        `gorm:"type:varchar(255)" json:"transaction_reference"`
	PaymentDate          time.Time     `json:"payment_date"`
	ReceiptPath          string        `gorm:"type:varchar(255);index" json:"receipt_path"`
	Status               PaymentStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`

	// Review fields, populated exactly once when a reviewer decides
	ReviewedByID *uint      `json:"reviewed_by_id"`
	ReviewedAt   *time.Time `json:"reviewed_at"`
	ReviewNotes  string     `gorm:"type:text" json:"review_notes"`

	// Relationships
	User       User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Method     PaymentMethod `gorm:"foreignKey:MethodID" json:"method,omitempty"`
	ReviewedBy *User         `gorm:"foreignKey:ReviewedByID" json:"reviewed_by,omitempty"`
}
