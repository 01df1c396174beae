package services

import (
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"complaints_backend_echo/internal/models"
)

// AnnualTerm is the fixed subscription length. Leap years still get a
// 365-day term; the term is a duration, not a calendar year.
const AnnualTerm = 365 * 24 * time.Hour

// SubscriptionService is the lifecycle engine: it owns every payment
// review decision and every subscription state change. It is the only
// component that creates Subscription records.
type SubscriptionService struct {
	db            *gorm.DB
	notifications *NotificationService
	settings      *SettingsService
}

func NewSubscriptionService(db *gorm.DB, notifications *NotificationService, settings *SettingsService) *SubscriptionService {
	return &SubscriptionService{db: db, notifications: notifications, settings: settings}
}

// RenewalWindow computes the period a newly approved payment buys.
// A renewal stacks on the current subscription's end date, no gap and
// no overlap; a fresh subscription starts now.
func RenewalWindow(current *models.Subscription, now time.Time) (start, end time.Time) {
	start = now
	if current != nil && current.IsCurrent(now) {
		start = current.EndDate
	}
	return start, start.Add(AnnualTerm)
}

// DaysRemaining returns the whole days between now and the end date,
// floored. Negative once the end date has passed.
func DaysRemaining(end, now time.Time) int {
	return int(math.Floor(end.Sub(now).Hours() / 24))
}

// EffectiveExpiry is the instant a subscription actually lapses: the
// end date, pushed back by the grace window when the flag is enabled
func EffectiveExpiry(sub models.Subscription, graceDays int) time.Time {
	if sub.GracePeriodEnabled {
		return sub.EndDate.Add(time.Duration(graceDays) * 24 * time.Hour)
	}
	return sub.EndDate
}

// DueWatchPoint picks the reminder that should fire for a subscription,
// if any. Triggers on "at most N days remaining" rather than exact
// equality so a sweep that skipped a day still sends the reminder.
// Watch points are checked in descending order, first match wins: a
// badly delayed scheduler catches up one threshold per run.
func DueWatchPoint(sub models.Subscription, now time.Time) (int, bool) {
	days := DaysRemaining(sub.EndDate, now)
	if days < 0 {
		return 0, false
	}
	switch {
	case days <= models.WatchPoint14d && !sub.Notified14d:
		return models.WatchPoint14d, true
	case days <= models.WatchPoint7d && !sub.Notified7d:
		return models.WatchPoint7d, true
	case days <= models.WatchPoint3d && !sub.Notified3d:
		return models.WatchPoint3d, true
	}
	return 0, false
}

// ReminderMessage builds the reminder wording and notification type
// for a watch point, escalating as expiry approaches
func ReminderMessage(watchPoint int, endDate time.Time) (message, notifType string) {
	date := endDate.Format("2006-01-02")
	switch watchPoint {
	case models.WatchPoint3d:
		return fmt.Sprintf("Urgent: your subscription expires in 3 days on %s. Renew immediately.", date),
			models.NotificationTypeRenewalReminder3
	case models.WatchPoint7d:
		return fmt.Sprintf("Important: your subscription expires in 7 days on %s. Please renew.", date),
			models.NotificationTypeRenewalReminder7
	default:
		return fmt.Sprintf("Your subscription expires in 14 days on %s. Please renew soon.", date),
			models.NotificationTypeRenewalReminder14
	}
}

func notifiedColumn(watchPoint int) string {
	switch watchPoint {
	case models.WatchPoint3d:
		return "notified_3d"
	case models.WatchPoint7d:
		return "notified_7d"
	default:
		return "notified_14d"
	}
}

// Approve moves a pending payment to approved and creates the
// subscription period it pays for. The payment update, subscription
// creation and owner notification commit as one transaction; a
// concurrent second approval of the same payment loses the
// conditional update and observes ErrInvalidState.
func (s *SubscriptionService) Approve(paymentID, reviewerID uint, notes string) (*models.Subscription, error) {
	var subscription models.Subscription
	var ownerID uint

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var payment models.Payment
		if err := tx.First(&payment, paymentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFoundError("payment")
			}
			return err
		}

		now := time.Now().UTC()

		// Only the first transition out of pending wins
		res := tx.Model(&models.Payment{}).
			Where("id = ? AND status = ?", paymentID, models.PaymentStatusPending).
			Updates(map[string]interface{}{
				"status":         models.PaymentStatusApproved,
				"reviewed_by_id": reviewerID,
				"reviewed_at":    now,
				"review_notes":   notes,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return InvalidStateError("payment already reviewed")
		}

		// Lock the owner's current subscription so two approvals for
		// the same user cannot both stack on the same end date
		var current models.Subscription
		var currentPtr *models.Subscription
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND status = ? AND end_date > ?",
				payment.UserID, models.SubscriptionStatusActive, now).
			Order("end_date desc").
			First(&current).Error
		if err == nil {
			currentPtr = &current
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		start, end := RenewalWindow(currentPtr, now)
		subscription = models.Subscription{
			UserID:    payment.UserID,
			StartDate: start,
			EndDate:   end,
			Status:    models.SubscriptionStatusActive,
		}
		if err := tx.Create(&subscription).Error; err != nil {
			return err
		}

		ownerID = payment.UserID
		message := fmt.Sprintf("Your payment was approved. Your subscription is valid until %s.", end.Format("2006-01-02"))
		return s.notifications.Notify(tx, payment.UserID, message, models.NotificationTypePaymentApproved, &subscription.ID)
	})
	if err != nil {
		return nil, err
	}

	s.notifications.DeliverEmail(ownerID, "Payment approved",
		fmt.Sprintf("Your payment was approved. Your subscription is valid until %s.", subscription.EndDate.Format("2006-01-02")))

	return &subscription, nil
}

// Reject moves a pending payment to rejected with a required reason
// and notifies the owner, atomically. No subscription is touched.
func (s *SubscriptionService) Reject(paymentID, reviewerID uint, reason string) error {
	if reason == "" {
		return ValidationError("rejection reason is required")
	}

	var ownerID uint
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var payment models.Payment
		if err := tx.First(&payment, paymentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFoundError("payment")
			}
			return err
		}

		now := time.Now().UTC()
		res := tx.Model(&models.Payment{}).
			Where("id = ? AND status = ?", paymentID, models.PaymentStatusPending).
			Updates(map[string]interface{}{
				"status":         models.PaymentStatusRejected,
				"reviewed_by_id": reviewerID,
				"reviewed_at":    now,
				"review_notes":   reason,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return InvalidStateError("payment already reviewed")
		}

		ownerID = payment.UserID
		message := fmt.Sprintf("Your payment was rejected. Reason: %s. You can submit a new payment proof.", reason)
		return s.notifications.Notify(tx, payment.UserID, message, models.NotificationTypePaymentRejected, nil)
	})
	if err != nil {
		return err
	}

	s.notifications.DeliverEmail(ownerID, "Payment rejected",
		fmt.Sprintf("Your payment was rejected. Reason: %s", reason))
	return nil
}

// SweepExpire flips every lapsed active subscription to expired and
// returns how many were flipped. Implemented as conditional bulk
// updates, so re-running it is a no-op. Expiry itself is silent;
// reminders were already sent in advance.
func (s *SubscriptionService) SweepExpire(now time.Time) (int64, error) {
	graceDays := s.settings.GracePeriodDays()

	res := s.db.Model(&models.Subscription{}).
		Where("status = ? AND grace_period_enabled = ? AND end_date < ?",
			models.SubscriptionStatusActive, false, now).
		Update("status", models.SubscriptionStatusExpired)
	if res.Error != nil {
		return 0, res.Error
	}
	expired := res.RowsAffected

	graceCutoff := now.Add(-time.Duration(graceDays) * 24 * time.Hour)
	res = s.db.Model(&models.Subscription{}).
		Where("status = ? AND grace_period_enabled = ? AND end_date < ?",
			models.SubscriptionStatusActive, true, graceCutoff).
		Update("status", models.SubscriptionStatusExpired)
	if res.Error != nil {
		return expired, res.Error
	}
	return expired + res.RowsAffected, nil
}

// SweepRemind sends due renewal reminders for active subscriptions and
// returns how many were sent. Each flag flip is a conditional update
// committed together with its notification, so a concurrent sweep
// cannot double-send.
func (s *SubscriptionService) SweepRemind(now time.Time) (int64, error) {
	var subscriptions []models.Subscription
	err := s.db.Where("status = ?", models.SubscriptionStatusActive).Find(&subscriptions).Error
	if err != nil {
		return 0, err
	}

	var sent int64
	for _, sub := range subscriptions {
		watchPoint, due := DueWatchPoint(sub, now)
		if !due {
			continue
		}

		err := s.db.Transaction(func(tx *gorm.DB) error {
			res := tx.Model(&models.Subscription{}).
				Where("id = ? AND status = ? AND "+notifiedColumn(watchPoint)+" = ?",
					sub.ID, models.SubscriptionStatusActive, false).
				Update(notifiedColumn(watchPoint), true)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				// Another sweep got here first
				return nil
			}

			message, notifType := ReminderMessage(watchPoint, sub.EndDate)
			if err := s.notifications.Notify(tx, sub.UserID, message, notifType, &sub.ID); err != nil {
				return err
			}
			sent++
			return nil
		})
		if err != nil {
			log.Printf("Reminder for subscription %d failed: %v", sub.ID, err)
		}
	}
	return sent, nil
}

// SubscriptionStatus is the per-user view returned by the status
// endpoint
type SubscriptionStatus struct {
	HasActiveSubscription bool                 `json:"has_active_subscription"`
	Subscription          *models.Subscription `json:"subscription"`
	HasPendingPayment     bool                 `json:"has_pending_payment"`
	PendingPayment        *models.Payment      `json:"pending_payment"`
}

// Status reports the user's current subscription and pending payment
func (s *SubscriptionService) Status(userID uint, payments *PaymentService) (*SubscriptionStatus, error) {
	status := &SubscriptionStatus{}

	var current models.Subscription
	err := s.db.Where("user_id = ? AND status = ? AND end_date > ?",
		userID, models.SubscriptionStatusActive, time.Now().UTC()).
		Order("end_date desc").
		First(&current).Error
	if err == nil {
		status.HasActiveSubscription = true
		status.Subscription = &current
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	pending, err := payments.PendingForUser(userID)
	if err != nil {
		return nil, err
	}
	if pending != nil {
		status.HasPendingPayment = true
		status.PendingPayment = pending
	}
	return status, nil
}
