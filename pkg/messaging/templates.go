package messaging

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"strings"
)

func ResolveTemplate(tempName string, templateDef string, contentInfos any) (content string, err error) {
	if strings.TrimSpace(templateDef) == "" {
		return "", errors.New("empty template `" + tempName)
	}
	tmpl, err := template.New(tempName).Parse(templateDef)
	if err != nil {
		err = fmt.Errorf("error when parsing template %s: %v", tempName, err)
		return "", err
	}
	var tpl bytes.Buffer

	err = tmpl.Execute(&tpl, contentInfos)
	if err != nil {
		err = fmt.Errorf("error during executing template %s: %v", tempName, err)
		return "", err
	}
	return tpl.String(), nil
}

const orderConfirmationTemplate = `<html>
<body>
<h1>Thank you for your order at {{.StoreName}}</h1>
<p>Order reference: {{.OrderID}}</p>
<table>
{{range .Items}}<tr><td>{{.Quantity}} x {{.ProductName}}</td><td>{{.Subtotal}}</td></tr>
{{end}}</table>
<p>Shipping: {{.ShippingFee}}</p>
<p><strong>Total: {{.Total}}</strong></p>
<p>We will let you know when your order has shipped.</p>
</body>
</html>`
