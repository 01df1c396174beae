package models

import (
	"testing"
	"time"
)

func TestSubscriptionIsCurrent(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		sub  Subscription
		want bool
	}{
		{
			name: "active with future end date",
			sub:  Subscription{Status: SubscriptionStatusActive, EndDate: now.Add(24 * time.Hour)},
			want: true,
		},
		{
			name: "active but lapsed",
			sub:  Subscription{Status: SubscriptionStatusActive, EndDate: now.Add(-time.Second)},
		},
		{
			name: "active ending exactly now",
			sub:  Subscription{Status: SubscriptionStatusActive, EndDate: now},
		},
		{
			name: "expired with future end date",
			sub:  Subscription{Status: SubscriptionStatusExpired, EndDate: now.Add(24 * time.Hour)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sub.IsCurrent(now); got != tt.want {
				t.Errorf("IsCurrent = %v; want %v", got, tt.want)
			}
		})
	}
}
