package messaging

import (
	"errors"
	"fmt"
	"log/slog"

	orderDB "github.com/storelane/store-backend/pkg/db/order"
	smtpclient "github.com/storelane/store-backend/pkg/smtp-client"
)

var (
	smtpClients *smtpclient.SmtpClients
)

func InitMessageSendingVariables(sc *smtpclient.SmtpClients) {
	smtpClients = sc
}

type orderConfirmationItem struct {
	ProductName string
	Quantity    int64
	Subtotal    string
}

type orderConfirmationInfos struct {
	StoreName   string
	OrderID     string
	Items       []orderConfirmationItem
	ShippingFee string
	Total       string
}

// FormatAmount renders a minor unit amount with its currency code, e.g.
// 1999 EUR becomes "19.99 EUR".
func FormatAmount(amount int64, currency string) string {
	return fmt.Sprintf("%d.%02d %s", amount/100, amount%100, currency)
}

func SendOrderConfirmationEmail(order *orderDB.Order, storeName string, currency string) error {
	if smtpClients == nil {
		return errors.New("smtp clients not initialized")
	}

	infos := orderConfirmationInfos{
		StoreName:   storeName,
		OrderID:     order.ID.Hex(),
		ShippingFee: FormatAmount(order.ShippingFee, currency),
		Total:       FormatAmount(order.Total, currency),
	}
	for _, item := range order.Items {
		infos.Items = append(infos.Items, orderConfirmationItem{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Subtotal:    FormatAmount(item.Subtotal, currency),
		})
	}

	content, err := ResolveTemplate("order-confirmation", orderConfirmationTemplate, infos)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Your order at %s", storeName)
	err = smtpClients.SendMail(
		[]string{order.CustomerEmail},
		subject,
		content,
		nil,
	)
	if err != nil {
		slog.Error("failed to send order confirmation email", slog.String("orderID", order.ID.Hex()), slog.String("error", err.Error()))
		return err
	}
	return nil
}
