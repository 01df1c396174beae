package services

import (
	"log"

	"gorm.io/gorm"

	"complaints_backend_echo/internal/models"
)

// NotificationService appends in-app notification rows and handles
// best-effort delivery. Row creation runs on the transaction handle
// the caller passes in, so it commits or rolls back with the calling
// operation; email delivery happens after commit and never fails the
// request.
type NotificationService struct {
	db    *gorm.DB
	email *EmailService
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db, email: NewEmailService()}
}

// Notify appends a notification row for one user inside tx
func (s *NotificationService) Notify(tx *gorm.DB, userID uint, message, notifType string, subscriptionID *uint) error {
	notification := models.Notification{
		UserID:         userID,
		SubscriptionID: subscriptionID,
		Message:        message,
		Type:           notifType,
	}
	return tx.Create(&notification).Error
}

// NotifyReviewers fans a notification out to every user holding a
// reviewer role, inside tx
func (s *NotificationService) NotifyReviewers(tx *gorm.DB, message, notifType string) error {
	var reviewers []models.User
	err := tx.Joins("JOIN roles ON roles.id = users.role_id").
		Where("roles.name IN ?", ReviewerRoles()).
		Find(&reviewers).Error
	if err != nil {
		return err
	}

	for _, reviewer := range reviewers {
		notification := models.Notification{
			UserID:  reviewer.ID,
			Message: message,
			Type:    notifType,
		}
		if err := tx.Create(&notification).Error; err != nil {
			return err
		}
	}
	return nil
}

// DeliverEmail sends an email to the user after the owning transaction
// has committed. Failures are logged, never propagated.
func (s *NotificationService) DeliverEmail(userID uint, subject, body string) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		log.Printf("Email delivery skipped, user %d not found: %v", userID, err)
		return
	}
	if user.Email == "" {
		return
	}
	if err := s.email.SendEmail([]string{user.Email}, subject, body); err != nil {
		log.Printf("Failed to deliver email to %s: %v", user.Email, err)
	}
}

// ListForUser returns the user's notifications, newest first
func (s *NotificationService) ListForUser(userID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := s.db.Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkRead flags a notification as read; only the recipient may do so
func (s *NotificationService) MarkRead(notificationID, userID uint) error {
	res := s.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("is_read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return NotFoundError("notification")
	}
	return nil
}
