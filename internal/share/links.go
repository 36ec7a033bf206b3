// Package share builds the WhatsApp and email share links the invoice
// screens hand back to the browser. The links carry a text summary only;
// the PDF itself travels through the download endpoint.
package share

import (
	"fmt"
	"net/url"

	"github.com/solarline/pos-gateway/internal/domain/entity"
)

// WhatsAppInvoice returns a wa.me link summarizing a stored invoice.
func WhatsAppInvoice(inv *entity.Invoice, customerName string) string {
	if customerName == "" {
		customerName = "Customer"
	}
	text := fmt.Sprintf("Invoice %s for %s - Total: $%s",
		inv.InvoiceNumber, customerName, inv.TotalAmount.StringFixed(2))
	return "https://wa.me/?text=" + url.QueryEscape(text)
}

// EmailInvoice returns a mailto link with a prefilled subject and body.
func EmailInvoice(inv *entity.Invoice, customer *entity.Customer, businessName string) string {
	if businessName == "" {
		businessName = "Business"
	}
	customerName := "Customer"
	to := ""
	if customer != nil {
		if customer.Name != "" {
			customerName = customer.Name
		}
		to = customer.Email
	}

	due := ""
	if inv.DueDate != nil {
		due = inv.DueDate.Format("2006-01-02")
	}
	subject := fmt.Sprintf("Invoice %s from %s", inv.InvoiceNumber, businessName)
	body := fmt.Sprintf(
		"Dear %s,\n\nPlease find your invoice details:\n\nInvoice #: %s\nTotal Amount: $%s\nDue Date: %s\n\nBest regards,\n%s",
		customerName, inv.InvoiceNumber, inv.TotalAmount.StringFixed(2), due, businessName)

	return fmt.Sprintf("mailto:%s?subject=%s&body=%s",
		to, url.QueryEscape(subject), url.QueryEscape(body))
}

// WhatsAppReceipt returns a wa.me link summarizing a receipt.
func WhatsAppReceipt(rc *entity.Receipt) string {
	name := rc.CustomerName
	if name == "" {
		name = "Customer"
	}
	text := fmt.Sprintf("Receipt %s for %s - Total: $%s on %s",
		rc.ReceiptNumber, name, rc.TotalAmount.StringFixed(2),
		rc.PrintedAt.Format("2006-01-02"))
	return "https://wa.me/?text=" + url.QueryEscape(text)
}
