package middlewares

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	adminuser "github.com/storelane/store-backend/pkg/admin-user"
	adminUserTypes "github.com/storelane/store-backend/pkg/admin-user/types"
)

const (
	HeaderAuthorization = "Authorization"

	// context key holding the authenticated admin account
	CTX_KEY_ADMIN_USER = "adminUser"
)

// AdminAuthMiddleware extracts the bearer token from the request and resolves
// it into the current admin account through the guard.
func AdminAuthMiddleware(guard *adminuser.Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := extractToken(c)
		if err != nil {
			slog.Warn("no Authorization token found")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		account, err := guard.VerifySession(token)
		if err != nil {
			slog.Warn("session verification failed", slog.String("error", err.Error()))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "error during token validation"})
			c.Abort()
			return
		}
		c.Set(CTX_KEY_ADMIN_USER, account)
	}
}

// RequirePermission blocks the request if the authenticated admin account
// does not hold the given permission. Must run after AdminAuthMiddleware.
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		account := GetAdminUserFromContext(c)
		if account == nil {
			slog.Warn("RequirePermission: admin account not found in context")
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "admin account not found in context"})
			return
		}

		if !adminuser.HasPermission(account, permission) {
			slog.Warn("permission denied",
				slog.String("accountID", account.ID.Hex()),
				slog.String("permission", permission),
				slog.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "permission denied"})
			return
		}
	}
}

// RequireAdminRole blocks the request for any account that does not hold the
// admin role, independent of its permission list.
func RequireAdminRole() gin.HandlerFunc {
	return func(c *gin.Context) {
		account := GetAdminUserFromContext(c)
		if account == nil {
			slog.Warn("RequireAdminRole: admin account not found in context")
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "admin account not found in context"})
			return
		}

		if account.Role != adminUserTypes.ADMIN_USER_ROLE_ADMIN {
			slog.Warn("non admin account tried to access admin only endpoint",
				slog.String("accountID", account.ID.Hex()),
				slog.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "unauthorized access to admin endpoint"})
			return
		}
	}
}

func GetAdminUserFromContext(c *gin.Context) *adminUserTypes.AdminUser {
	val, ok := c.Get(CTX_KEY_ADMIN_USER)
	if !ok {
		return nil
	}
	account, ok := val.(*adminUserTypes.AdminUser)
	if !ok {
		return nil
	}
	return account
}

func extractToken(c *gin.Context) (string, error) {
	req := c.Request

	var token string
	tokens, ok := req.Header[HeaderAuthorization]
	if ok && len(tokens) > 0 {
		token = tokens[0]
		token = strings.TrimPrefix(token, "Bearer ")
		if len(token) == 0 {
			return token, errors.New("no token found in Authorization header")
		}
	} else {
		return token, errors.New("no Authorization header found")
	}
	return token, nil
}
