package apihandlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	adminuser "github.com/storelane/store-backend/pkg/admin-user"
	mw "github.com/storelane/store-backend/pkg/apihelpers/middlewares"
)

func (h *HttpEndpoints) AddAnalyticsAPI(rg *gin.RouterGroup) {
	analyticsGroup := rg.Group("/analytics")
	analyticsGroup.Use(mw.AdminAuthMiddleware(h.guard))
	analyticsGroup.Use(mw.RequirePermission(adminuser.PERMISSION_ANALYTICS_READ))
	{
		analyticsGroup.GET("/revenue", h.getDailyRevenue)
		analyticsGroup.GET("/top-products", h.getTopProducts)
	}
}

// parseDateRange reads `from` and `until` query params as RFC 3339 dates,
// defaulting to the last 30 days.
func parseDateRange(c *gin.Context) (from time.Time, until time.Time, err error) {
	until = time.Now()
	from = until.AddDate(0, 0, -30)

	if fromStr := c.DefaultQuery("from", ""); fromStr != "" {
		from, err = time.Parse(time.RFC3339, fromStr)
		if err != nil {
			return
		}
	}
	if untilStr := c.DefaultQuery("until", ""); untilStr != "" {
		until, err = time.Parse(time.RFC3339, untilStr)
		if err != nil {
			return
		}
	}
	return
}

func (h *HttpEndpoints) getDailyRevenue(c *gin.Context) {
	from, until, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date range"})
		return
	}

	results, err := h.orderDBConn.GetDailyRevenue(from, until)
	if err != nil {
		slog.Error("failed to compute daily revenue", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute daily revenue"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"from":    from,
		"until":   until,
		"revenue": results,
	})
}

func (h *HttpEndpoints) getTopProducts(c *gin.Context) {
	from, until, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date range"})
		return
	}

	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}

	results, err := h.orderDBConn.GetTopProducts(from, until, limit)
	if err != nil {
		slog.Error("failed to compute top products", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute top products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"from":     from,
		"until":    until,
		"products": results,
	})
}
