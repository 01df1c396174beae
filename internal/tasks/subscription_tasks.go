package tasks

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/gorm"

	"complaints_backend_echo/internal/models"
	"complaints_backend_echo/internal/services"
)

const (
	dailySweepRule    = "FREQ=DAILY"
	dailySweepLockKey = "lock:subscription_daily_sweep"
	dailySweepLockTTL = 10 * time.Minute
)

// DailySweepTaskDef drives the subscription lifecycle once per day:
// expire lapsed subscriptions, then send due renewal reminders. The
// two sweeps run in independent failure boundaries so one failing
// never stops the other.
type DailySweepTaskDef struct{}

// TaskID returns the unique identifier for this task
func (t *DailySweepTaskDef) TaskID() string {
	return "subscription_daily_sweep"
}

// HandleExecution runs both sweeps and reports per-sweep outcomes
func (t *DailySweepTaskDef) HandleExecution(ctx context.Context, db *gorm.DB, task models.ScheduledTask) (map[string]interface{}, error) {
	// Advisory lock so two worker instances cannot double-send
	// reminders. Without Redis configured we rely on single-instance
	// deployment; the per-flag check-and-set still prevents duplicates.
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		cache, err := services.NewRedisCache(redisURL)
		if err != nil {
			log.Printf("Sweep lock unavailable, continuing without it: %v", err)
		} else {
			defer cache.Close()
			acquired, err := cache.AcquireLock(ctx, dailySweepLockKey, dailySweepLockTTL)
			if err != nil {
				log.Printf("Sweep lock unavailable, continuing without it: %v", err)
			} else if !acquired {
				return map[string]interface{}{"status": "skipped", "message": "Another sweep is already running"}, nil
			} else {
				defer cache.ReleaseLock(context.Background(), dailySweepLockKey)
			}
		}
	}

	engine := services.NewSubscriptionService(db, services.NewNotificationService(db), services.NewSettingsService(db))
	now := time.Now().UTC()

	expired, expireErr := engine.SweepExpire(now)
	if expireErr != nil {
		log.Printf("Expiry sweep failed: %v", expireErr)
	}

	sent, remindErr := engine.SweepRemind(now)
	if remindErr != nil {
		log.Printf("Reminder sweep failed: %v", remindErr)
	}

	result := map[string]interface{}{
		"expired_count":  expired,
		"expire_success": expireErr == nil,
		"reminders_sent": sent,
		"remind_success": remindErr == nil,
	}
	if expireErr != nil && remindErr != nil {
		return result, fmt.Errorf("both sweeps failed: expire: %v, remind: %v", expireErr, remindErr)
	}
	return result, nil
}

// DailySweepTask is the singleton instance of DailySweepTaskDef
var DailySweepTask = &DailySweepTaskDef{}

// EnsureDailySweepTask seeds the recurring daily sweep if no active
// instance exists. Called on worker startup.
func EnsureDailySweepTask(db *gorm.DB) error {
	var count int64
	err := db.Model(&models.ScheduledTask{}).
		Where("task_name = ? AND status = ?", DailySweepTask.TaskID(), models.ScheduledTaskStatusActive).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	// First run at the next midnight UTC, then daily via the rrule
	now := time.Now().UTC()
	due := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).Add(24 * time.Hour)

	rule := dailySweepRule
	task, err := BuildScheduledTask(DailySweepTask.TaskID(), map[string]interface{}{}, due, &rule, models.ScheduledTaskTypeRecurring, 3)
	if err != nil {
		return err
	}

	if err := db.Create(task).Error; err != nil {
		return err
	}
	log.Printf("Seeded recurring task %s, first run %s", DailySweepTask.TaskID(), due)
	return nil
}
