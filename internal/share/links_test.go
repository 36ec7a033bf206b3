package share

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/solarline/pos-gateway/internal/domain/entity"
)

func TestWhatsAppInvoice(t *testing.T) {
	inv := &entity.Invoice{
		InvoiceNumber: "INV-1001",
		TotalAmount:   decimal.RequireFromString("230.00"),
	}

	link := WhatsAppInvoice(inv, "T. Moyo")
	if !strings.HasPrefix(link, "https://wa.me/?text=") {
		t.Fatalf("unexpected link prefix: %s", link)
	}
	text, err := url.QueryUnescape(strings.TrimPrefix(link, "https://wa.me/?text="))
	if err != nil {
		t.Fatal(err)
	}
	if text != "Invoice INV-1001 for T. Moyo - Total: $230.00" {
		t.Errorf("text = %q", text)
	}

	anon := WhatsAppInvoice(inv, "")
	if !strings.Contains(anon, url.QueryEscape("for Customer")) {
		t.Errorf("missing customer fallback: %s", anon)
	}
}

func TestEmailInvoice(t *testing.T) {
	due := time.Date(2026, 9, 29, 0, 0, 0, 0, time.UTC)
	inv := &entity.Invoice{
		InvoiceNumber: "INV-1001",
		TotalAmount:   decimal.RequireFromString("230.00"),
		DueDate:       &due,
	}
	customer := &entity.Customer{Name: "T. Moyo", Email: "tmoyo@example.com"}

	link := EmailInvoice(inv, customer, "Solarline Supplies")
	if !strings.HasPrefix(link, "mailto:tmoyo@example.com?") {
		t.Fatalf("unexpected recipient: %s", link)
	}
	u, err := url.Parse(link)
	if err != nil {
		t.Fatal(err)
	}
	q := u.Query()
	if got := q.Get("subject"); got != "Invoice INV-1001 from Solarline Supplies" {
		t.Errorf("subject = %q", got)
	}
	body := q.Get("body")
	for _, want := range []string{"Dear T. Moyo", "Invoice #: INV-1001", "Total Amount: $230.00", "Due Date: 2026-09-29"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q:\n%s", want, body)
		}
	}
}

func TestEmailInvoiceNilCustomer(t *testing.T) {
	inv := &entity.Invoice{InvoiceNumber: "INV-2", TotalAmount: decimal.Zero}

	link := EmailInvoice(inv, nil, "")
	if !strings.HasPrefix(link, "mailto:?") {
		t.Fatalf("expected empty recipient, got %s", link)
	}
	if !strings.Contains(link, url.QueryEscape("Dear Customer")) {
		t.Errorf("missing customer fallback: %s", link)
	}
	if !strings.Contains(link, url.QueryEscape("from Business")) {
		t.Errorf("missing business fallback: %s", link)
	}
}

func TestWhatsAppReceipt(t *testing.T) {
	rc := &entity.Receipt{
		ReceiptNumber: "RCT-42",
		CustomerName:  "Walk-in",
		TotalAmount:   decimal.RequireFromString("36.00"),
		PrintedAt:     time.Date(2026, 8, 30, 9, 30, 0, 0, time.UTC),
	}

	link := WhatsAppReceipt(rc)
	text, err := url.QueryUnescape(strings.TrimPrefix(link, "https://wa.me/?text="))
	if err != nil {
		t.Fatal(err)
	}
	if text != "Receipt RCT-42 for Walk-in - Total: $36.00 on 2026-08-30" {
		t.Errorf("text = %q", text)
	}
}
