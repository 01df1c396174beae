package models

import (
	"time"

	"gorm.io/gorm"
)

// Role names seeded at migration time
const (
	RoleTrader             = "Trader"
	RoleTechnicalCommittee = "Technical Committee"
	RoleHigherCommittee    = "Higher Committee"
)

// Role represents an authorization role assigned to users
type Role struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name        string `gorm:"type:varchar(50);uniqueIndex" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	// Relationships
	Users []User `gorm:"foreignKey:RoleID" json:"users,omitempty"`
}

// User represents a registered user in the system.
// Credential handling lives behind the Firebase auth collaborator;
// this record only carries identity and role data.
type User struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	FullName string `gorm:"type:varchar(255)" json:"full_name"`
	Email    string `gorm:"type:varchar(255);uniqueIndex" json:"email"`
	Phone    string `gorm:"type:varchar(50)" json:"phone"`
	Address  string `gorm:"type:text" json:"address"`
	RoleID   uint   `gorm:"index" json:"role_id"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	// Relationships
	Role          Role           `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	Payments      []Payment      `gorm:"foreignKey:UserID" json:"payments,omitempty"`
	Subscriptions []Subscription `gorm:"foreignKey:UserID" json:"subscriptions,omitempty"`
	Notifications []Notification `gorm:"foreignKey:UserID" json:"notifications,omitempty"`
}

// IsReviewer reports whether the user's role can review payments
func (u User) IsReviewer() bool {
	return u.Role.Name == RoleTechnicalCommittee || u.Role.Name == RoleHigherCommittee
}
