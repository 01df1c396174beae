package models

import (
	"time"
)

// SubscriptionStatus represents the lifecycle state of a subscription
type SubscriptionStatus string

const (
	SubscriptionStatusActive  SubscriptionStatus = "active"
	SubscriptionStatusExpired SubscriptionStatus = "expired"
)

// Renewal reminder watch points, in days before expiry
const (
	WatchPoint14d = 14
	WatchPoint7d  = 7
	WatchPoint3d  = 3
)

// Subscription is one annual subscription period for a user. Renewals
// chain off the previous period's end date, so a user has at most one
// current record (active with a future end date) at any time. Only the
// daily sweep flips status to expired; records are never deleted.
type Subscription struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID    uint               `gorm:"index" json:"user_id"`
	StartDate time.Time          `json:"start_date"`
	EndDate   time.Time          `gorm:"index" json:"end_date"`
	Status    SubscriptionStatus `gorm:"type:varchar(20);default:'active';index" json:"status"`

	// Reminder flags, each fires at most once per subscription lifetime
	Notified14d bool `gorm:"default:false" json:"notified_14d"`
	Notified7d  bool `gorm:"default:false" json:"notified_7d"`
	Notified3d  bool `gorm:"default:false" json:"notified_3d"`

	// When enabled, expiry is pushed back by the configured grace window
	GracePeriodEnabled bool `gorm:"default:false" json:"grace_period_enabled"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// IsCurrent reports whether the subscription is active with an end date
// still in the future relative to now
func (s Subscription) IsCurrent(now time.Time) bool {
	return s.Status == SubscriptionStatusActive && s.EndDate.After(now)
}
