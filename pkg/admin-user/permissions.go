package adminuser

import (
	"github.com/storelane/store-backend/pkg/admin-user/types"
)

// Permission tokens checked by the route-level authorization guards.
// Accounts with the admin role implicitly hold all of them.
const (
	PERMISSION_PRODUCTS_READ     = "products.read"
	PERMISSION_PRODUCTS_UPDATE   = "products.update"
	PERMISSION_CATEGORIES_UPDATE = "categories.update"
	PERMISSION_ORDERS_READ       = "orders.read"
	PERMISSION_ORDERS_UPDATE     = "orders.update"
	PERMISSION_REVIEWS_MODERATE  = "reviews.moderate"
	PERMISSION_ANALYTICS_READ    = "analytics.read"
	PERMISSION_SETTINGS_UPDATE   = "settings.update"
	PERMISSION_UPLOADS_CREATE    = "uploads.create"
)

// HasPermission reports whether the account may perform the action identified
// by the permission token. Pure function, no I/O.
func HasPermission(user *types.AdminUser, permission string) bool {
	if user == nil {
		return false
	}
	if user.Role == types.ADMIN_USER_ROLE_ADMIN {
		return true
	}
	for _, p := range user.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}
