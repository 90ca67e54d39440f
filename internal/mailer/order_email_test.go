package mailer

import (
	"strings"
	"testing"

	"biovibe-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrder() *models.Order {
	return &models.Order{
		PublicID:  "3f2b4a1c-9d8e-4f6a-b1c2-d3e4f5a6b7c8",
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Items: []models.OrderItem{
			{Name: "Retatrutide 15mg", Quantity: 2, Price: 99.00},
			{Name: "BPC-157 5mg", Quantity: 1, Price: 45.50},
		},
		Subtotal: 243.50,
		Total:    255.68,
	}
}

func TestOrderNumber(t *testing.T) {
	o := sampleOrder()
	assert.Equal(t, "F5A6B7C8", OrderNumber(o)) // last 8 of the public id, uppercased

	assert.Equal(t, "PENDING", OrderNumber(&models.Order{}))
}

func TestRenderOmitsShippingLineWhenZero(t *testing.T) {
	o := sampleOrder()
	o.ShippingCost = 0

	html, err := RenderOrderConfirmation(o)
	require.NoError(t, err)
	assert.NotContains(t, html, "Shipping:")
	assert.NotContains(t, html, "Shipping (")
}

func TestRenderIncludesShippingLineWithLiteralAmount(t *testing.T) {
	o := sampleOrder()
	o.ShippingCost = 12.5
	o.ShippingOption = "Express"

	html, err := RenderOrderConfirmation(o)
	require.NoError(t, err)
	assert.Contains(t, html, "$12.50")
	assert.Contains(t, html, "Shipping (Express):")
}

func TestRenderDefaultsProcessingFeeToFivePercent(t *testing.T) {
	o := sampleOrder()
	o.Subtotal = 100.00
	o.ProcessingFee = 0

	html, err := RenderOrderConfirmation(o)
	require.NoError(t, err)
	assert.Contains(t, html, "$5.00")
}

func TestRenderUsesExplicitProcessingFee(t *testing.T) {
	o := sampleOrder()
	o.Subtotal = 100.00
	o.ProcessingFee = 7.25

	html, err := RenderOrderConfirmation(o)
	require.NoError(t, err)
	assert.Contains(t, html, "$7.25")
	assert.NotContains(t, html, "$5.00")
}

func TestRenderOmitsAddressBlockWhenAbsent(t *testing.T) {
	o := sampleOrder()
	require.False(t, o.HasAddress())

	html, err := RenderOrderConfirmation(o)
	require.NoError(t, err)
	assert.NotContains(t, html, "Shipping:")
}

func TestRenderAddressBlock(t *testing.T) {
	o := sampleOrder()
	o.Street = "123 Main St"
	o.Street2 = "Suite 4"
	o.City = "Austin"
	o.State = "TX"
	o.Zip = "78701"
	require.True(t, o.HasAddress())

	html, err := RenderOrderConfirmation(o)
	require.NoError(t, err)
	assert.Contains(t, html, "123 Main St")
	assert.Contains(t, html, "Suite 4")
	assert.Contains(t, html, "Austin, TX, 78701")
}

func TestRenderOmitsNotesWhenAbsent(t *testing.T) {
	o := sampleOrder()

	html, err := RenderOrderConfirmation(o)
	require.NoError(t, err)
	assert.NotContains(t, html, "Order Notes")
}

func TestRenderEscapesCustomerSuppliedText(t *testing.T) {
	o := sampleOrder()
	o.Notes = "<script>alert('pwn')</script>"
	o.FirstName = "<b>Jane</b>"
	o.Items[0].Name = "Weird <img src=x> product"

	html, err := RenderOrderConfirmation(o)
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>")
	assert.NotContains(t, html, "<img src=x>")
	assert.NotContains(t, html, "<b>Jane</b>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestRenderPhoneFallback(t *testing.T) {
	o := sampleOrder()
	o.Phone = ""

	html, err := RenderOrderConfirmation(o)
	require.NoError(t, err)
	assert.Contains(t, html, "Not provided")
}

func TestConfirmationMessage(t *testing.T) {
	o := sampleOrder()

	msg, err := ConfirmationMessage(`"BioVibe Peptides" <orders@biovibepeptides.com>`, o)
	require.NoError(t, err)

	assert.Equal(t, "jane@example.com", msg.To)
	assert.Equal(t, "Order Invoice #F5A6B7C8 - BioVibe Peptides", msg.Subject)
	assert.True(t, strings.Contains(msg.HTML, "Thank you for your order!"))
	assert.Empty(t, msg.Attachments)
}

func TestInvoiceResendMessageCarriesOnePDF(t *testing.T) {
	o := sampleOrder()
	pdf := []byte("%PDF-1.4 fake")

	msg, err := InvoiceResendMessage(`"BioVibe Peptides" <orders@biovibepeptides.com>`, o, pdf)
	require.NoError(t, err)

	assert.Equal(t, "Invoice #F5A6B7C8 - BioVibe Peptides (Resent)", msg.Subject)
	require.Len(t, msg.Attachments, 1)
	assert.Equal(t, "BioVibe_Invoice_F5A6B7C8.pdf", msg.Attachments[0].Filename)
	assert.Equal(t, "application/pdf", msg.Attachments[0].ContentType)
	assert.Equal(t, pdf, msg.Attachments[0].Content)
	assert.Contains(t, msg.HTML, "Invoice #")
	assert.Contains(t, msg.HTML, "$255.68")
}
