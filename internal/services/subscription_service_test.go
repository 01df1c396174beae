package services

import (
	"strings"
	"testing"
	"time"

	"complaints_backend_echo/internal/models"
)

func date(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestRenewalWindow(t *testing.T) {
	now := date("2026-03-01T12:00:00Z")

	tests := []struct {
		name      string
		current   *models.Subscription
		wantStart time.Time
	}{
		{
			name:      "no current subscription starts now",
			current:   nil,
			wantStart: now,
		},
		{
			name: "current subscription stacks on its end date",
			current: &models.Subscription{
				Status:  models.SubscriptionStatusActive,
				EndDate: date("2026-06-15T00:00:00Z"),
			},
			wantStart: date("2026-06-15T00:00:00Z"),
		},
		{
			name: "lapsed subscription does not stack",
			current: &models.Subscription{
				Status:  models.SubscriptionStatusActive,
				EndDate: date("2026-01-01T00:00:00Z"),
			},
			wantStart: now,
		},
		{
			name: "expired subscription does not stack",
			current: &models.Subscription{
				Status:  models.SubscriptionStatusExpired,
				EndDate: date("2026-06-15T00:00:00Z"),
			},
			wantStart: now,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := RenewalWindow(tt.current, now)
			if !start.Equal(tt.wantStart) {
				t.Errorf("start = %v; want %v", start, tt.wantStart)
			}
			if wantEnd := tt.wantStart.Add(AnnualTerm); !end.Equal(wantEnd) {
				t.Errorf("end = %v; want %v", end, wantEnd)
			}
			if got := end.Sub(start); got != 365*24*time.Hour {
				t.Errorf("term = %v; want 365 days", got)
			}
		})
	}
}

func TestDaysRemaining(t *testing.T) {
	now := date("2026-03-01T12:00:00Z")

	tests := []struct {
		name string
		end  time.Time
		want int
	}{
		{"exactly 14 days", now.Add(14 * 24 * time.Hour), 14},
		{"13 and a half days floors to 13", now.Add(13*24*time.Hour + 12*time.Hour), 13},
		{"under a day floors to zero", now.Add(6 * time.Hour), 0},
		{"half a day past is negative", now.Add(-12 * time.Hour), -1},
		{"same instant", now, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysRemaining(tt.end, now); got != tt.want {
				t.Errorf("DaysRemaining = %d; want %d", got, tt.want)
			}
		})
	}
}

func TestDueWatchPoint(t *testing.T) {
	now := date("2026-03-01T00:00:00Z")
	endIn := func(days int) time.Time { return now.Add(time.Duration(days) * 24 * time.Hour) }

	tests := []struct {
		name     string
		sub      models.Subscription
		want     int
		wantFire bool
	}{
		{
			name:     "14 days out fires the 14d reminder",
			sub:      models.Subscription{EndDate: endIn(14)},
			want:     14,
			wantFire: true,
		},
		{
			name: "14 days out already notified is silent",
			sub:  models.Subscription{EndDate: endIn(14), Notified14d: true},
		},
		{
			name:     "7 days out with 14d sent fires only the 7d reminder",
			sub:      models.Subscription{EndDate: endIn(7), Notified14d: true},
			want:     7,
			wantFire: true,
		},
		{
			name:     "delayed sweep at 10 days catches up the 14d reminder",
			sub:      models.Subscription{EndDate: endIn(10)},
			want:     14,
			wantFire: true,
		},
		{
			name:     "badly delayed sweep at 2 days catches up the oldest unsent reminder",
			sub:      models.Subscription{EndDate: endIn(2)},
			want:     14,
			wantFire: true,
		},
		{
			name:     "2 days out with earlier reminders sent fires the 3d reminder",
			sub:      models.Subscription{EndDate: endIn(2), Notified14d: true, Notified7d: true},
			want:     3,
			wantFire: true,
		},
		{
			name: "all flags sent is silent",
			sub:  models.Subscription{EndDate: endIn(3), Notified14d: true, Notified7d: true, Notified3d: true},
		},
		{
			name: "past end date never reminds",
			sub:  models.Subscription{EndDate: now.Add(-24 * time.Hour)},
		},
		{
			name: "far from expiry is silent",
			sub:  models.Subscription{EndDate: endIn(200)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, fired := DueWatchPoint(tt.sub, now)
			if fired != tt.wantFire {
				t.Fatalf("fired = %v; want %v", fired, tt.wantFire)
			}
			if fired && got != tt.want {
				t.Errorf("watch point = %d; want %d", got, tt.want)
			}
		})
	}
}

func TestDueWatchPointFiresOncePerFlag(t *testing.T) {
	now := date("2026-03-01T00:00:00Z")
	sub := models.Subscription{EndDate: now.Add(14 * 24 * time.Hour)}

	watchPoint, fired := DueWatchPoint(sub, now)
	if !fired || watchPoint != 14 {
		t.Fatalf("first check = (%d, %v); want (14, true)", watchPoint, fired)
	}

	// Simulate the check-and-set having flipped the flag
	sub.Notified14d = true
	if _, fired := DueWatchPoint(sub, now); fired {
		t.Error("second check at the same instant fired again")
	}
}

func TestEffectiveExpiry(t *testing.T) {
	end := date("2026-03-01T00:00:00Z")

	sub := models.Subscription{EndDate: end}
	if got := EffectiveExpiry(sub, 7); !got.Equal(end) {
		t.Errorf("without grace = %v; want %v", got, end)
	}

	sub.GracePeriodEnabled = true
	want := end.Add(7 * 24 * time.Hour)
	if got := EffectiveExpiry(sub, 7); !got.Equal(want) {
		t.Errorf("with grace = %v; want %v", got, want)
	}
}

func TestReminderMessage(t *testing.T) {
	end := date("2026-03-15T00:00:00Z")

	tests := []struct {
		watchPoint   int
		wantType     string
		wantContains string
	}{
		{models.WatchPoint14d, models.NotificationTypeRenewalReminder14, "14 days"},
		{models.WatchPoint7d, models.NotificationTypeRenewalReminder7, "7 days"},
		{models.WatchPoint3d, models.NotificationTypeRenewalReminder3, "3 days"},
	}

	for _, tt := range tests {
		message, notifType := ReminderMessage(tt.watchPoint, end)
		if notifType != tt.wantType {
			t.Errorf("watch point %d: type = %q; want %q", tt.watchPoint, notifType, tt.wantType)
		}
		if !strings.Contains(message, tt.wantContains) || !strings.Contains(message, "2026-03-15") {
			t.Errorf("watch point %d: message %q missing expected detail", tt.watchPoint, message)
		}
	}
}
