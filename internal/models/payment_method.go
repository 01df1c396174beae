package models

import (
	"time"

	"gorm.io/gorm"
)

// PaymentMethod is an admin-configured payment channel traders can
// transfer the subscription fee through. Disabling a method hides it
// from traders without touching payments that already reference it.
type PaymentMethod struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Name          string `gorm:"type:varchar(255)" json:"name"`
	AccountNumber string `gorm:"type:varchar(100)" json:"account_number"`
	AccountHolder string `gorm:"type:varchar(255)" json:"account_holder"`
	QRImagePath   string `gorm:"type:varchar(255)" json:"qr_image_path"`
	Notes         string `gorm:"type:text" json:"notes"`
	IsActive      bool   `gorm:"default:true" json:"is_active"`
	DisplayOrder  int    `gorm:"default:0" json:"display_order"`

	// Relationships
	Payments []Payment `gorm:"foreignKey:MethodID" json:"payments,omitempty"`
}
