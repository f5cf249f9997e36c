package adminuser

import (
	"testing"

	"github.com/storelane/store-backend/pkg/admin-user/types"
)

func TestHasPermission(t *testing.T) {
	t.Run("admin role overrides every check", func(t *testing.T) {
		alice := &types.AdminUser{Username: "alice", Role: types.ADMIN_USER_ROLE_ADMIN}

		for _, perm := range []string{
			PERMISSION_PRODUCTS_READ,
			PERMISSION_SETTINGS_UPDATE,
			"anything.not.in.any.list",
		} {
			if !HasPermission(alice, perm) {
				t.Errorf("admin should hold %s", perm)
			}
		}
	})

	t.Run("non-admin roles use the permission set", func(t *testing.T) {
		bob := &types.AdminUser{
			Username:    "bob",
			Role:        types.ADMIN_USER_ROLE_EDITOR,
			Permissions: []string{PERMISSION_PRODUCTS_READ},
		}

		if !HasPermission(bob, PERMISSION_PRODUCTS_READ) {
			t.Error("granted permission should pass")
		}
		if HasPermission(bob, PERMISSION_PRODUCTS_UPDATE) {
			t.Error("missing permission should fail")
		}
		if HasPermission(bob, PERMISSION_SETTINGS_UPDATE) {
			t.Error("missing permission should fail")
		}
	})

	t.Run("manager without permissions", func(t *testing.T) {
		m := &types.AdminUser{Username: "m", Role: types.ADMIN_USER_ROLE_MANAGER}
		if HasPermission(m, PERMISSION_ORDERS_READ) {
			t.Error("empty permission set should fail")
		}
	})

	t.Run("nil principal", func(t *testing.T) {
		if HasPermission(nil, PERMISSION_PRODUCTS_READ) {
			t.Error("nil principal should fail")
		}
	})
}
