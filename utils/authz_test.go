package utils

import (
	"testing"

	"github.com/wen-dev/wen_backend/models"
)

func TestAllow(t *testing.T) {
	cases := []struct {
		role, action string
		want         bool
	}{
		{models.RoleAdmin, ActionApproveBusiness, true},
		{models.RoleAdmin, ActionManageUsers, true},
		{models.RoleAdmin, ActionManageCategory, true},
		{models.RoleOwner, ActionApproveBusiness, false},
		{models.RoleOwner, ActionManageUsers, false},
		{models.RoleOwner, ActionManageBusiness, true},
		{models.RoleUser, ActionManageBusiness, false},
		{models.RoleUser, ActionApproveBusiness, false},
		{"", ActionApproveBusiness, false},
		{"superuser", ActionManageUsers, false},
		{models.RoleAdmin, "unknown:action", false},
	}
	for _, tc := range cases {
		if got := Allow(tc.role, tc.action); got != tc.want {
			t.Errorf("Allow(%q, %q) = %v, want %v", tc.role, tc.action, got, tc.want)
		}
	}
}
