package apihandlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	adminUserUtils "github.com/storelane/store-backend/pkg/admin-user/utils"
	mw "github.com/storelane/store-backend/pkg/apihelpers/middlewares"
	catalogDB "github.com/storelane/store-backend/pkg/db/catalog"
	orderDB "github.com/storelane/store-backend/pkg/db/order"
	"github.com/storelane/store-backend/pkg/messaging"
)

const MAX_ITEMS_PER_ORDER = 50

func (h *HttpEndpoints) AddOrderAPI(rg *gin.RouterGroup) {
	ordersGroup := rg.Group("/orders")
	{
		ordersGroup.POST("", mw.RequirePayload(), h.placeOrder)
		ordersGroup.GET("/:orderID", h.getOwnOrder)
	}
}

type OrderItemReq struct {
	ProductID string `json:"productId"`
	Quantity  int64  `json:"quantity"`
}

type PlaceOrderReq struct {
	CustomerEmail   string                  `json:"customerEmail"`
	Items           []OrderItemReq          `json:"items"`
	ShippingAddress orderDB.ShippingAddress `json:"shippingAddress"`
}

func (r PlaceOrderReq) validate() string {
	if !adminUserUtils.CheckEmailFormat(r.CustomerEmail) {
		return "invalid customer email"
	}
	if len(r.Items) < 1 {
		return "order has no items"
	}
	if len(r.Items) > MAX_ITEMS_PER_ORDER {
		return "too many items"
	}
	for _, item := range r.Items {
		if item.Quantity < 1 {
			return "item quantity must be positive"
		}
	}
	if r.ShippingAddress.Name == "" || r.ShippingAddress.Street == "" ||
		r.ShippingAddress.City == "" || r.ShippingAddress.Country == "" {
		return "incomplete shipping address"
	}
	return ""
}

// placeOrder creates a new order. Prices are taken from the current catalog,
// never from the request. Stock is decremented per item before the order is
// stored.
func (h *HttpEndpoints) placeOrder(c *gin.Context) {
	var req PlaceOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	storeSettings, err := h.settingsDBConn.GetStoreSettings()
	if err != nil {
		slog.Error("failed to fetch store settings", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if storeSettings.MaintenanceMode {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "store is temporarily closed"})
		return
	}

	order := orderDB.Order{
		CustomerEmail:   adminUserUtils.SanitizeEmail(req.CustomerEmail),
		ShippingAddress: req.ShippingAddress,
		ShippingFee:     storeSettings.ShippingFee,
	}

	var claimed []orderDB.OrderItem
	for _, itemReq := range req.Items {
		product, err := h.catalogDBConn.GetProductByID(itemReq.ProductID)
		if err != nil || !product.IsPublished {
			h.releaseClaimedStock(claimed)
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown product in order"})
			return
		}

		if err := h.catalogDBConn.DecrementProductStock(product.ID, itemReq.Quantity); err != nil {
			h.releaseClaimedStock(claimed)
			if errors.Is(err, catalogDB.ErrInsufficientStock) {
				c.JSON(http.StatusConflict, gin.H{"error": "insufficient stock for " + product.Slug})
				return
			}
			slog.Error("failed to claim stock", slog.String("productID", product.ID.Hex()), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		item := orderDB.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			UnitPrice:   product.Price,
			Quantity:    itemReq.Quantity,
		}
		claimed = append(claimed, item)
		order.Items = append(order.Items, item)
	}

	created, err := h.orderDBConn.CreateOrder(&order)
	if err != nil {
		h.releaseClaimedStock(claimed)
		slog.Error("failed to create order", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create order"})
		return
	}

	slog.Info("order placed", slog.String("orderID", created.ID.Hex()))

	go func() {
		if err := messaging.SendOrderConfirmationEmail(created, storeSettings.StoreName, storeSettings.Currency); err != nil {
			slog.Error("failed to send order confirmation", slog.String("orderID", created.ID.Hex()), slog.String("error", err.Error()))
		}
	}()

	c.JSON(http.StatusCreated, gin.H{"order": created})
}

// releaseClaimedStock returns already decremented stock when order placement
// fails halfway through.
func (h *HttpEndpoints) releaseClaimedStock(items []orderDB.OrderItem) {
	for _, item := range items {
		if err := h.catalogDBConn.DecrementProductStock(item.ProductID, -item.Quantity); err != nil {
			slog.Error("failed to release claimed stock", slog.String("productID", item.ProductID.Hex()), slog.String("error", err.Error()))
		}
	}
}

// getOwnOrder returns an order if the caller can name both its id and the
// customer email it was placed with.
func (h *HttpEndpoints) getOwnOrder(c *gin.Context) {
	order, err := h.orderDBConn.GetOrderByID(c.Param("orderID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}

	email := adminUserUtils.SanitizeEmail(c.DefaultQuery("email", ""))
	if email == "" || order.CustomerEmail != email {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": order})
}
