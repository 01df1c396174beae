package models

import (
	"time"
)

// Notification types emitted by the subscription core
const (
	NotificationTypePaymentSubmission = "payment_submission"
	NotificationTypePaymentApproved   = "payment_approved"
	NotificationTypePaymentRejected   = "payment_rejected"
	NotificationTypeRenewalReminder14 = "renewal_reminder_14d"
	NotificationTypeRenewalReminder7  = "renewal_reminder_7d"
	NotificationTypeRenewalReminder3  = "renewal_reminder_3d"
)

// Notification is an append-only in-app message addressed to one user.
// The read flag is the only mutable field, toggled by the recipient.
// ComplaintID is a bare reference; complaint records live outside this
// service.
type Notification struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID         uint   `gorm:"index" json:"user_id"`
	ComplaintID    *uint  `json:"complaint_id"`
	SubscriptionID *uint  `json:"subscription_id"`
	Message        string `gorm:"type:text" json:"message"`
	Type           string `gorm:"type:varchar(50)" json:"type"`
	IsRead         bool   `gorm:"default:false" json:"is_read"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
