package services

import (
	"complaints_backend_echo/internal/models"
)

// Action is a capability checked against the authorization policy
type Action string

const (
	ActionReviewPayments       Action = "review_payments"
	ActionManagePaymentMethods Action = "manage_payment_methods"
	ActionManageSettings       Action = "manage_settings"
)

// policy is the single place mapping actions to the roles allowed to
// perform them. Entry points consult this table instead of carrying
// their own role-name lists.
var policy = map[Action][]string{
	ActionReviewPayments:       {models.RoleTechnicalCommittee, models.RoleHigherCommittee},
	ActionManagePaymentMethods: {models.RoleTechnicalCommittee, models.RoleHigherCommittee},
	ActionManageSettings:       {models.RoleTechnicalCommittee, models.RoleHigherCommittee},
}

// Allowed reports whether a role may perform the given action
func Allowed(roleName string, action Action) bool {
	for _, allowed := range policy[action] {
		if roleName == allowed {
			return true
		}
	}
	return false
}

// ReviewerRoles returns the role names that can review payments,
// used for notification fan-out on payment submission
func ReviewerRoles() []string {
	return policy[ActionReviewPayments]
}
