package apihandlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	adminuser "github.com/storelane/store-backend/pkg/admin-user"
	"github.com/storelane/store-backend/pkg/apihelpers"
	mw "github.com/storelane/store-backend/pkg/apihelpers/middlewares"
	orderDB "github.com/storelane/store-backend/pkg/db/order"
)

func (h *HttpEndpoints) AddOrderManagementAPI(rg *gin.RouterGroup) {
	ordersGroup := rg.Group("/orders")
	ordersGroup.Use(mw.AdminAuthMiddleware(h.guard))
	{
		ordersGroup.GET("", mw.RequirePermission(adminuser.PERMISSION_ORDERS_READ), h.getOrders)
		ordersGroup.GET("/:orderID", mw.RequirePermission(adminuser.PERMISSION_ORDERS_READ), h.getOrder)
		ordersGroup.PUT("/:orderID/status", mw.RequirePermission(adminuser.PERMISSION_ORDERS_UPDATE), mw.RequirePayload(), h.updateOrderStatus)
	}
}

func (h *HttpEndpoints) getOrders(c *gin.Context) {
	query, err := apihelpers.ParsePaginatedQueryFromCtx(c)
	if err != nil {
		slog.Error("failed to parse query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter := bson.M{}
	if status := c.DefaultQuery("status", ""); status != "" {
		filter["status"] = status
	}
	if customerEmail := c.DefaultQuery("customerEmail", ""); customerEmail != "" {
		filter["customerEmail"] = customerEmail
	}

	orders, paginationInfo, err := h.orderDBConn.GetOrders(filter, query.Page, query.Limit)
	if err != nil {
		slog.Error("failed to fetch orders", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders":     orders,
		"pagination": paginationInfo,
	})
}

func (h *HttpEndpoints) getOrder(c *gin.Context) {
	order, err := h.orderDBConn.GetOrderByID(c.Param("orderID"))
	if err != nil {
		slog.Warn("order not found", slog.String("orderID", c.Param("orderID")))
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

type UpdateOrderStatusReq struct {
	Status string `json:"status"`
}

func (h *HttpEndpoints) updateOrderStatus(c *gin.Context) {
	orderID := c.Param("orderID")

	var req UpdateOrderStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.orderDBConn.UpdateOrderStatus(orderID, req.Status)
	if err != nil {
		if errors.Is(err, orderDB.ErrInvalidStatusTransition) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order status transition"})
			return
		}
		slog.Error("failed to update order status", slog.String("orderID", orderID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order status"})
		return
	}

	slog.Info("order status updated", slog.String("orderID", orderID), slog.String("status", updated.Status))
	c.JSON(http.StatusOK, gin.H{"order": updated})
}
