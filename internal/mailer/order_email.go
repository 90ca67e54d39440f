package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"biovibe-backend/internal/models"
)

// emailData is the view model shared by both order templates. Derived
// display values (default processing fee, omitted blocks) are computed here
// so the templates stay purely declarative.
type emailData struct {
	OrderNumber    string
	FullName       string
	Email          string
	Phone          string
	AddressLines   []string
	Items          []models.OrderItem
	Subtotal       float64
	ProcessingFee  float64
	ShippingCost   float64
	ShippingOption string
	Total          float64
	Notes          string
}

var tmplFuncs = template.FuncMap{
	"usd": func(v float64) string { return fmt.Sprintf("$%.2f", v) },
}

var (
	confirmationTmpl = template.Must(template.New("confirmation").Funcs(tmplFuncs).Parse(orderConfirmationHTML))
	resendTmpl       = template.Must(template.New("resend").Funcs(tmplFuncs).Parse(invoiceResendHTML))
)

// OrderNumber is the short invoice number shown to customers: the last 8
// characters of the order's public id, uppercased, or PENDING when the
// order has not been assigned one.
func OrderNumber(o *models.Order) string {
	if o.PublicID == "" {
		return "PENDING"
	}
	id := o.PublicID
	if len(id) > 8 {
		id = id[len(id)-8:]
	}
	return strings.ToUpper(id)
}

func buildEmailData(o *models.Order) emailData {
	fullName := o.FirstName + " " + o.LastName
	if o.Title != "" {
		fullName = o.Title + " " + fullName
	}

	phone := o.Phone
	if phone == "" {
		phone = "Not provided"
	}

	var addressLines []string
	if o.Street != "" {
		addressLines = append(addressLines, o.Street)
	}
	if o.Street2 != "" {
		addressLines = append(addressLines, o.Street2)
	}
	var cityParts []string
	for _, p := range []string{o.City, o.State, o.Zip} {
		if p != "" {
			cityParts = append(cityParts, p)
		}
	}
	if len(cityParts) > 0 {
		addressLines = append(addressLines, strings.Join(cityParts, ", "))
	}

	fee := o.ProcessingFee
	if fee == 0 {
		fee = o.Subtotal * 0.05
	}

	return emailData{
		OrderNumber:    OrderNumber(o),
		FullName:       fullName,
		Email:          o.Email,
		Phone:          phone,
		AddressLines:   addressLines,
		Items:          o.Items,
		Subtotal:       o.Subtotal,
		ProcessingFee:  fee,
		ShippingCost:   o.ShippingCost,
		ShippingOption: o.ShippingOption,
		Total:          o.Total,
		Notes:          o.Notes,
	}
}

// RenderOrderConfirmation renders the order-confirmation/invoice HTML body.
func RenderOrderConfirmation(o *models.Order) (string, error) {
	var buf bytes.Buffer
	if err := confirmationTmpl.Execute(&buf, buildEmailData(o)); err != nil {
		return "", fmt.Errorf("render order confirmation: %w", err)
	}
	return buf.String(), nil
}

// RenderInvoiceResend renders the short body that accompanies a re-sent
// PDF invoice.
func RenderInvoiceResend(o *models.Order) (string, error) {
	var buf bytes.Buffer
	if err := resendTmpl.Execute(&buf, buildEmailData(o)); err != nil {
		return "", fmt.Errorf("render invoice resend: %w", err)
	}
	return buf.String(), nil
}

// ConfirmationMessage builds the full confirmation message for an order.
func ConfirmationMessage(from string, o *models.Order) (Message, error) {
	html, err := RenderOrderConfirmation(o)
	if err != nil {
		return Message{}, err
	}
	return Message{
		From:    from,
		To:      o.Email,
		Subject: fmt.Sprintf("Order Invoice #%s - BioVibe Peptides", OrderNumber(o)),
		HTML:    html,
	}, nil
}

// InvoiceResendMessage builds the resend message with the PDF attached. The
// PDF bytes are produced elsewhere; this component only carries them.
func InvoiceResendMessage(from string, o *models.Order, pdf []byte) (Message, error) {
	html, err := RenderInvoiceResend(o)
	if err != nil {
		return Message{}, err
	}
	n := OrderNumber(o)
	return Message{
		From:    from,
		To:      o.Email,
		Subject: fmt.Sprintf("Invoice #%s - BioVibe Peptides (Resent)", n),
		HTML:    html,
		Attachments: []Attachment{{
			Filename:    fmt.Sprintf("BioVibe_Invoice_%s.pdf", n),
			Content:     pdf,
			ContentType: "application/pdf",
		}},
	}, nil
}
