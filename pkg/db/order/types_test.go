package order

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestComputeTotals(t *testing.T) {
	t.Run("empty order", func(t *testing.T) {
		o := Order{}
		o.ComputeTotals()
		if o.Total != 0 {
			t.Errorf("unexpected total: %d", o.Total)
		}
	})

	t.Run("multiple items", func(t *testing.T) {
		o := Order{
			Items: []OrderItem{
				{ProductID: primitive.NewObjectID(), UnitPrice: 1999, Quantity: 2},
				{ProductID: primitive.NewObjectID(), UnitPrice: 500, Quantity: 3},
			},
		}
		o.ComputeTotals()
		if o.Items[0].Subtotal != 3998 {
			t.Errorf("unexpected subtotal: %d", o.Items[0].Subtotal)
		}
		if o.Items[1].Subtotal != 1500 {
			t.Errorf("unexpected subtotal: %d", o.Items[1].Subtotal)
		}
		if o.Total != 5498 {
			t.Errorf("unexpected total: %d", o.Total)
		}
	})

	t.Run("with shipping fee", func(t *testing.T) {
		o := Order{
			ShippingFee: 499,
			Items: []OrderItem{
				{ProductID: primitive.NewObjectID(), UnitPrice: 1000, Quantity: 1},
			},
		}
		o.ComputeTotals()
		if o.Total != 1499 {
			t.Errorf("unexpected total: %d", o.Total)
		}
	})

	t.Run("overrides client supplied amounts", func(t *testing.T) {
		o := Order{
			Total: 1,
			Items: []OrderItem{
				{UnitPrice: 100, Quantity: 1, Subtotal: 999999},
			},
		}
		o.ComputeTotals()
		if o.Items[0].Subtotal != 100 {
			t.Errorf("unexpected subtotal: %d", o.Items[0].Subtotal)
		}
		if o.Total != 100 {
			t.Errorf("unexpected total: %d", o.Total)
		}
	})
}

func TestCanTransitionStatus(t *testing.T) {
	allowed := []struct{ from, to string }{
		{ORDER_STATUS_PENDING, ORDER_STATUS_PAID},
		{ORDER_STATUS_PENDING, ORDER_STATUS_CANCELLED},
		{ORDER_STATUS_PAID, ORDER_STATUS_SHIPPED},
		{ORDER_STATUS_PAID, ORDER_STATUS_CANCELLED},
		{ORDER_STATUS_SHIPPED, ORDER_STATUS_DELIVERED},
	}
	for _, c := range allowed {
		t.Run(c.from+" to "+c.to, func(t *testing.T) {
			if !CanTransitionStatus(c.from, c.to) {
				t.Error("should be allowed")
			}
		})
	}

	forbidden := []struct{ from, to string }{
		{ORDER_STATUS_PENDING, ORDER_STATUS_SHIPPED},
		{ORDER_STATUS_SHIPPED, ORDER_STATUS_CANCELLED},
		{ORDER_STATUS_DELIVERED, ORDER_STATUS_PENDING},
		{ORDER_STATUS_CANCELLED, ORDER_STATUS_PAID},
		{"bogus", ORDER_STATUS_PAID},
	}
	for _, c := range forbidden {
		t.Run(c.from+" to "+c.to, func(t *testing.T) {
			if CanTransitionStatus(c.from, c.to) {
				t.Error("should not be allowed")
			}
		})
	}
}
