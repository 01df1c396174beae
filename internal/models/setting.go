package models

import (
	"time"
)

// Setting keys used by the subscription core
const (
	SettingAnnualSubscriptionPrice = "annual_subscription_price"
	SettingGracePeriodDays         = "grace_period_days"
)

// Setting is a key/value configuration row managed by admins
type Setting struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Key         string `gorm:"type:varchar(100);uniqueIndex" json:"key"`
	Value       string `gorm:"type:text" json:"value"`
	Description string `gorm:"type:text" json:"description"`
}
