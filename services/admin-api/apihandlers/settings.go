package apihandlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	adminuser "github.com/storelane/store-backend/pkg/admin-user"
	adminUserUtils "github.com/storelane/store-backend/pkg/admin-user/utils"
	mw "github.com/storelane/store-backend/pkg/apihelpers/middlewares"
	settingsDB "github.com/storelane/store-backend/pkg/db/settings"
)

func (h *HttpEndpoints) AddSettingsAPI(rg *gin.RouterGroup) {
	settingsGroup := rg.Group("/settings")
	settingsGroup.Use(mw.AdminAuthMiddleware(h.guard))
	{
		settingsGroup.GET("", mw.RequirePermission(adminuser.PERMISSION_SETTINGS_UPDATE), h.getStoreSettings)
		settingsGroup.PUT("", mw.RequirePermission(adminuser.PERMISSION_SETTINGS_UPDATE), mw.RequirePayload(), h.updateStoreSettings)
	}
}

func (h *HttpEndpoints) getStoreSettings(c *gin.Context) {
	settings, err := h.settingsDBConn.GetStoreSettings()
	if err != nil {
		slog.Error("failed to fetch store settings", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch store settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

type StoreSettingsReq struct {
	StoreName       string  `json:"storeName"`
	Currency        string  `json:"currency"`
	ContactEmail    string  `json:"contactEmail"`
	TaxRatePercent  float64 `json:"taxRatePercent"`
	ShippingFee     int64   `json:"shippingFee"`
	MaintenanceMode bool    `json:"maintenanceMode"`
}

func (h *HttpEndpoints) updateStoreSettings(c *gin.Context) {
	var req StoreSettingsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.StoreName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing store name"})
		return
	}
	if len(req.Currency) != 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "currency must be a three letter code"})
		return
	}
	if req.ContactEmail != "" && !adminUserUtils.CheckEmailFormat(req.ContactEmail) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contact email"})
		return
	}
	if req.TaxRatePercent < 0 || req.TaxRatePercent > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tax rate must be between 0 and 100"})
		return
	}
	if req.ShippingFee < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "shipping fee cannot be negative"})
		return
	}

	saved, err := h.settingsDBConn.SaveStoreSettings(&settingsDB.StoreSettings{
		StoreName:       req.StoreName,
		Currency:        req.Currency,
		ContactEmail:    req.ContactEmail,
		TaxRatePercent:  req.TaxRatePercent,
		ShippingFee:     req.ShippingFee,
		MaintenanceMode: req.MaintenanceMode,
	})
	if err != nil {
		slog.Error("failed to save store settings", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save store settings"})
		return
	}

	slog.Info("store settings updated", slog.String("storeName", saved.StoreName))
	c.JSON(http.StatusOK, gin.H{"settings": saved})
}
