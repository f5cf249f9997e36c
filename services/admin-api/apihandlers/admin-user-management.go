package apihandlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	adminuser "github.com/storelane/store-backend/pkg/admin-user"
	adminUserTypes "github.com/storelane/store-backend/pkg/admin-user/types"
	mw "github.com/storelane/store-backend/pkg/apihelpers/middlewares"
)

// Account management endpoints are restricted to the admin role.
func (h *HttpEndpoints) AddAdminUserManagementAPI(rg *gin.RouterGroup) {
	accountsGroup := rg.Group("/admin-users")
	accountsGroup.Use(mw.AdminAuthMiddleware(h.guard))
	accountsGroup.Use(mw.RequireAdminRole())
	{
		accountsGroup.GET("", h.getAllAdminUsers)
		accountsGroup.POST("", mw.RequirePayload(), h.createAdminUser)
		accountsGroup.PUT("/:accountID/permissions", mw.RequirePayload(), h.updateAdminUserPermissions)
		accountsGroup.PUT("/:accountID/active-state", mw.RequirePayload(), h.setAdminUserActiveState)
	}
}

func (h *HttpEndpoints) getAllAdminUsers(c *gin.Context) {
	accounts, err := h.adminUserDB.GetAllAdminUsers()
	if err != nil {
		slog.Error("failed to fetch admin users", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch admin users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"accounts": accounts})
}

type CreateAdminUserReq struct {
	Username    string   `json:"username"`
	Password    string   `json:"password"`
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

func (h *HttpEndpoints) createAdminUser(c *gin.Context) {
	var req CreateAdminUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, err := adminuser.NewAccount(req.Username, req.Password, req.Email, req.Role, req.Permissions)
	if err != nil {
		if errors.Is(err, adminuser.ErrWeakPassword) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "password does not fulfill the requirements"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.adminUserDB.CreateAdminUser(account)
	if err != nil {
		slog.Error("failed to create admin user", slog.String("username", req.Username), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create admin user"})
		return
	}

	slog.Info("admin user created", slog.String("accountID", created.ID.Hex()), slog.String("username", created.Username))
	sanitized := created.Sanitized()
	c.JSON(http.StatusCreated, gin.H{"account": sanitized})
}

type UpdatePermissionsReq struct {
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

func (h *HttpEndpoints) updateAdminUserPermissions(c *gin.Context) {
	accountID := c.Param("accountID")

	var req UpdatePermissionsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !adminUserTypes.IsValidRole(req.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role"})
		return
	}

	if err := h.adminUserDB.UpdateAdminUserPermissions(accountID, req.Role, req.Permissions); err != nil {
		slog.Error("failed to update permissions", slog.String("accountID", accountID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update permissions"})
		return
	}

	slog.Info("admin user permissions updated", slog.String("accountID", accountID), slog.String("role", req.Role))
	c.JSON(http.StatusOK, gin.H{"message": "permissions updated"})
}

type SetActiveStateReq struct {
	IsActive *bool `json:"isActive"`
}

func (h *HttpEndpoints) setAdminUserActiveState(c *gin.Context) {
	accountID := c.Param("accountID")

	var req SetActiveStateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.IsActive == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing isActive"})
		return
	}

	currentAccount := mw.GetAdminUserFromContext(c)
	if currentAccount != nil && currentAccount.ID.Hex() == accountID && !*req.IsActive {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot disable own account"})
		return
	}

	if err := h.adminUserDB.SetAdminUserActiveState(accountID, *req.IsActive); err != nil {
		slog.Error("failed to update active state", slog.String("accountID", accountID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update active state"})
		return
	}

	slog.Info("admin user active state updated", slog.String("accountID", accountID))
	c.JSON(http.StatusOK, gin.H{"message": "active state updated"})
}
