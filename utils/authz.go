// utils/authz.go
package utils

import "github.com/wen-dev/wen_backend/models"

// Actions gated by the authorization policy.
const (
	ActionApproveBusiness = "business:approve"
	ActionManageUsers     = "user:manage"
	ActionManageCategory  = "category:manage"
	ActionManageBusiness  = "business:manage"
	ActionViewQueue       = "embedding:view"
)

// rolePermissions is the single source of truth for role gating. Every
// privileged handler consults Allow instead of re-implementing its own
// role check.
var rolePermissions = map[string]map[string]bool{
	models.RoleAdmin: {
		ActionApproveBusiness: true,
		ActionManageUsers:     true,
		ActionManageCategory:  true,
		ActionManageBusiness:  true,
		ActionViewQueue:       true,
	},
	models.RoleOwner: {
		ActionManageBusiness: true,
	},
	models.RoleUser: {},
}

// Allow reports whether the given role may perform the given action. Unknown
// roles and unknown actions are denied.
func Allow(role, action string) bool {
	perms, ok := rolePermissions[role]
	if !ok {
		return false
	}
	return perms[action]
}
