package apihandlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *HttpEndpoints) AddStoreInfoAPI(rg *gin.RouterGroup) {
	rg.GET("/store-info", h.getStoreInfo)
}

// getStoreInfo exposes the public subset of the store settings.
func (h *HttpEndpoints) getStoreInfo(c *gin.Context) {
	settings, err := h.settingsDBConn.GetStoreSettings()
	if err != nil {
		slog.Error("failed to fetch store settings", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch store info"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"storeName":       settings.StoreName,
		"currency":        settings.Currency,
		"taxRatePercent":  settings.TaxRatePercent,
		"shippingFee":     settings.ShippingFee,
		"maintenanceMode": settings.MaintenanceMode,
	})
}
