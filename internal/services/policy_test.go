package services

import (
	"testing"

	"complaints_backend_echo/internal/models"
)

func TestAllowed(t *testing.T) {
	tests := []struct {
		name   string
		role   string
		action Action
		want   bool
	}{
		{"technical committee reviews payments", models.RoleTechnicalCommittee, ActionReviewPayments, true},
		{"higher committee reviews payments", models.RoleHigherCommittee, ActionReviewPayments, true},
		{"trader cannot review payments", models.RoleTrader, ActionReviewPayments, false},
		{"trader cannot manage payment methods", models.RoleTrader, ActionManagePaymentMethods, false},
		{"higher committee manages settings", models.RoleHigherCommittee, ActionManageSettings, true},
		{"empty role denied", "", ActionReviewPayments, false},
		{"unknown action denied", models.RoleHigherCommittee, Action("unknown"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Allowed(tt.role, tt.action); got != tt.want {
				t.Errorf("Allowed(%q, %q) = %v; want %v", tt.role, tt.action, got, tt.want)
			}
		})
	}
}

func TestReviewerRoles(t *testing.T) {
	roles := ReviewerRoles()
	if len(roles) != 2 {
		t.Fatalf("got %d reviewer roles; want 2", len(roles))
	}
	for _, role := range roles {
		if !Allowed(role, ActionReviewPayments) {
			t.Errorf("reviewer role %q cannot review payments", role)
		}
	}
}
