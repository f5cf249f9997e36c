package apihandlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	adminuser "github.com/storelane/store-backend/pkg/admin-user"
	mw "github.com/storelane/store-backend/pkg/apihelpers/middlewares"
)

func (h *HttpEndpoints) AddAdminAuthAPI(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/login", mw.RequirePayload(), h.login)
	}

	authSessionGroup := authGroup.Group("")
	authSessionGroup.Use(mw.AdminAuthMiddleware(h.guard))
	{
		authSessionGroup.GET("/me", h.getCurrentAccount)
		authSessionGroup.POST("/change-password", mw.RequirePayload(), h.changePassword)
	}
}

type LoginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *HttpEndpoints) login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Username == "" || req.Password == "" {
		slog.Error("missing required fields")
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields"})
		return
	}

	account, token, err := h.guard.Authenticate(req.Username, req.Password)
	if err != nil {
		randomWait(5, 10)
		switch {
		case errors.Is(err, adminuser.ErrAccountLocked):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "account is locked, try again later"})
		case errors.Is(err, adminuser.ErrAccountDisabled):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "account is disabled"})
		case errors.Is(err, adminuser.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
		default:
			slog.Error("unexpected error during login", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"accessToken": token,
		"expiresAt":   time.Now().Add(h.guard.SessionTTL()).Unix(),
		"account":     account,
	})
}

func (h *HttpEndpoints) getCurrentAccount(c *gin.Context) {
	account := mw.GetAdminUserFromContext(c)
	if account == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "admin account not found in context"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"account": account})
}

type ChangePasswordReq struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (h *HttpEndpoints) changePassword(c *gin.Context) {
	account := mw.GetAdminUserFromContext(c)
	if account == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "admin account not found in context"})
		return
	}

	var req ChangePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.guard.ChangePassword(account.ID.Hex(), req.CurrentPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, adminuser.ErrInvalidCredentials):
			randomWait(5, 10)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid current password"})
		case errors.Is(err, adminuser.ErrWeakPassword):
			c.JSON(http.StatusBadRequest, gin.H{"error": "new password does not fulfill the requirements"})
		default:
			slog.Error("unexpected error during password change", slog.String("accountID", account.ID.Hex()), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	slog.Info("password changed", slog.String("accountID", account.ID.Hex()))
	c.JSON(http.StatusOK, gin.H{"message": "password changed"})
}
