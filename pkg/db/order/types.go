package order

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ORDER_STATUS_PENDING   = "pending"
	ORDER_STATUS_PAID      = "paid"
	ORDER_STATUS_SHIPPED   = "shipped"
	ORDER_STATUS_DELIVERED = "delivered"
	ORDER_STATUS_CANCELLED = "cancelled"
)

var ErrInvalidStatusTransition = errors.New("invalid order status transition")

type OrderItem struct {
	ProductID   primitive.ObjectID `bson:"productId" json:"productId"`
	ProductName string             `bson:"productName" json:"productName"`
	// unit price in minor units at the time the order was placed
	UnitPrice int64 `bson:"unitPrice" json:"unitPrice"`
	Quantity  int64 `bson:"quantity" json:"quantity"`
	Subtotal  int64 `bson:"subtotal" json:"subtotal"`
}

type ShippingAddress struct {
	Name       string `bson:"name" json:"name"`
	Street     string `bson:"street" json:"street"`
	City       string `bson:"city" json:"city"`
	PostalCode string `bson:"postalCode" json:"postalCode"`
	Country    string `bson:"country" json:"country"`
}

type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CustomerEmail string             `bson:"customerEmail" json:"customerEmail"`
	Items         []OrderItem        `bson:"items" json:"items"`
	ShippingFee   int64              `bson:"shippingFee" json:"shippingFee"`
	Total         int64              `bson:"total" json:"total"`
	Status        string             `bson:"status" json:"status"`

	ShippingAddress ShippingAddress `bson:"shippingAddress" json:"shippingAddress"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ComputeTotals recalculates all item subtotals and the order total from the
// stored unit prices and the shipping fee, so client supplied amounts never
// reach the database.
func (o *Order) ComputeTotals() {
	var total int64
	for i := range o.Items {
		o.Items[i].Subtotal = o.Items[i].UnitPrice * o.Items[i].Quantity
		total += o.Items[i].Subtotal
	}
	o.Total = total + o.ShippingFee
}

// allowed transitions form a simple forward chain, cancellation is possible
// until the order has shipped
var allowedStatusTransitions = map[string][]string{
	ORDER_STATUS_PENDING:   {ORDER_STATUS_PAID, ORDER_STATUS_CANCELLED},
	ORDER_STATUS_PAID:      {ORDER_STATUS_SHIPPED, ORDER_STATUS_CANCELLED},
	ORDER_STATUS_SHIPPED:   {ORDER_STATUS_DELIVERED},
	ORDER_STATUS_DELIVERED: {},
	ORDER_STATUS_CANCELLED: {},
}

func CanTransitionStatus(from string, to string) bool {
	targets, ok := allowedStatusTransitions[from]
	if !ok {
		return false
	}
	for _, t := range targets {
		if t == to {
			return true
		}
	}
	return false
}
