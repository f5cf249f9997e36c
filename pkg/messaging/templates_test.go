package messaging

import (
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	orderDB "github.com/storelane/store-backend/pkg/db/order"
)

func TestResolveTemplate(t *testing.T) {
	t.Run("empty template", func(t *testing.T) {
		_, err := ResolveTemplate("test", "", nil)
		if err == nil {
			t.Error("should fail for empty template")
		}
	})

	t.Run("broken template", func(t *testing.T) {
		_, err := ResolveTemplate("test", "{{.Missing", nil)
		if err == nil {
			t.Error("should fail for broken template")
		}
	})

	t.Run("with content infos", func(t *testing.T) {
		content, err := ResolveTemplate("test", "Hello {{.Name}}", map[string]string{"Name": "World"})
		if err != nil {
			t.Errorf("unexpected error: %v", err)
			return
		}
		if content != "Hello World" {
			t.Errorf("unexpected content: %s", content)
		}
	})
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		amount   int64
		currency string
		expected string
	}{
		{1999, "EUR", "19.99 EUR"},
		{100, "USD", "1.00 USD"},
		{5, "EUR", "0.05 EUR"},
		{0, "EUR", "0.00 EUR"},
	}
	for _, c := range cases {
		got := FormatAmount(c.amount, c.currency)
		if got != c.expected {
			t.Errorf("unexpected formatted amount: %s", got)
		}
	}
}

func TestOrderConfirmationTemplate(t *testing.T) {
	order := orderDB.Order{
		ID:            primitive.NewObjectID(),
		CustomerEmail: "customer@example.com",
		Items: []orderDB.OrderItem{
			{ProductName: "Blue Mug", Quantity: 2, UnitPrice: 500},
		},
	}
	order.ComputeTotals()

	infos := orderConfirmationInfos{
		StoreName:   "Test Store",
		OrderID:     order.ID.Hex(),
		ShippingFee: FormatAmount(order.ShippingFee, "EUR"),
		Total:       FormatAmount(order.Total, "EUR"),
	}
	for _, item := range order.Items {
		infos.Items = append(infos.Items, orderConfirmationItem{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Subtotal:    FormatAmount(item.Subtotal, "EUR"),
		})
	}

	content, err := ResolveTemplate("order-confirmation", orderConfirmationTemplate, infos)
	if err != nil {
		t.Errorf("unexpected error: %v", err)
		return
	}
	if !strings.Contains(content, "Test Store") {
		t.Error("store name missing from content")
	}
	if !strings.Contains(content, order.ID.Hex()) {
		t.Error("order reference missing from content")
	}
	if !strings.Contains(content, "10.00 EUR") {
		t.Error("total missing from content")
	}
}
