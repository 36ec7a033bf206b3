package pdfgen

import (
	"bytes"
	"context"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/solarline/pos-gateway/internal/domain/entity"
)

func fixedClock() func() time.Time {
	t := time.Date(2026, time.August, 30, 10, 0, 0, 0, time.UTC)
	return func() time.Time { return t }
}

func sampleDocument() Document {
	return Document{
		Business: entity.BusinessProfile{
			BusinessName:       "Solarline Supplies",
			Address:            "12 Samora Machel Ave, Harare",
			Phone:              "+263 77 000 0000",
			Email:              "sales@solarline.co.zw",
			InvoiceHeaderColor: "#0064C8",
		},
		Customer: &entity.Customer{
			Name:    "T. Moyo",
			Address: "5 Borrowdale Rd",
			PhoneNo: "+263 71 111 1111",
			Email:   "tmoyo@example.com",
		},
		InvoiceNumber: "INV-1001",
		Date:          time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		DueDate:       time.Date(2026, 9, 29, 0, 0, 0, 0, time.UTC),
		Items: []Line{
			{Description: "Solar Panel 450W", Quantity: 2, UnitPrice: decimal.NewFromInt(180), TotalPrice: decimal.NewFromInt(360)},
			{Description: "Inverter 5kVA", Quantity: 1, UnitPrice: decimal.NewFromInt(550), TotalPrice: decimal.NewFromInt(550)},
		},
		Subtotal: decimal.NewFromInt(910),
		Total:    decimal.NewFromInt(910),
		Notes:    "Delivery within 3 working days.",
	}
}

func TestInvoiceRegenerationIsByteStable(t *testing.T) {
	g := NewGenerator(nil).WithClock(fixedClock())
	doc := sampleDocument()

	first, err := g.Invoice(context.Background(), doc)
	if err != nil {
		t.Fatalf("first render: %v", err)
	}
	second, err := g.Invoice(context.Background(), doc)
	if err != nil {
		t.Fatalf("second render: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("regenerating the same document produced different bytes")
	}
	if len(first) == 0 {
		t.Error("rendered PDF is empty")
	}
	if !bytes.HasPrefix(first, []byte("%PDF")) {
		t.Error("output does not start with a PDF header")
	}
}

func TestInvoiceRendersWithTaxBox(t *testing.T) {
	g := NewGenerator(nil).WithClock(fixedClock())
	doc := sampleDocument()
	doc.Taxed = true
	doc.TaxRate = decimal.NewFromInt(15)
	doc.TaxAmount = decimal.RequireFromString("136.50")
	doc.Total = decimal.RequireFromString("1046.50")

	out, err := g.Invoice(context.Background(), doc)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("empty output")
	}
}

func TestInvoiceRendersWithoutCustomerOrItems(t *testing.T) {
	g := NewGenerator(nil).WithClock(fixedClock())
	doc := sampleDocument()
	doc.Customer = nil
	doc.Items = nil

	if _, err := g.Invoice(context.Background(), doc); err != nil {
		t.Fatalf("render without customer or items: %v", err)
	}
}

func TestInvoiceLongItemListPaginates(t *testing.T) {
	g := NewGenerator(nil).WithClock(fixedClock())
	doc := sampleDocument()
	doc.Items = nil
	for i := 0; i < 40; i++ {
		doc.Items = append(doc.Items, Line{
			Description: "Cable 6mm",
			Quantity:    1,
			UnitPrice:   decimal.NewFromInt(3),
			TotalPrice:  decimal.NewFromInt(3),
		})
	}

	if _, err := g.Invoice(context.Background(), doc); err != nil {
		t.Fatalf("render long item list: %v", err)
	}
}

func TestLinesFromInvoiceMissingProduct(t *testing.T) {
	products := entity.IndexProducts([]entity.Product{{ID: 1, Name: "Battery 200Ah"}})
	items := []entity.InvoiceItem{
		{Product: 1, Quantity: 2, UnitPrice: decimal.NewFromInt(250), TotalPrice: decimal.NewFromInt(500)},
		{Product: 999, Quantity: 1, UnitPrice: decimal.Zero, TotalPrice: decimal.Zero},
	}

	lines := LinesFromInvoice(items, products)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0].Description != "Battery 200Ah" {
		t.Errorf("lines[0].Description = %q", lines[0].Description)
	}
	if lines[1].Description != "Product" {
		t.Errorf("deleted product should render as %q, got %q", "Product", lines[1].Description)
	}
	if !lines[1].UnitPrice.IsZero() {
		t.Errorf("deleted product unit price = %s, want 0", lines[1].UnitPrice)
	}
}

func TestReceiptRenders(t *testing.T) {
	g := NewGenerator(nil).WithClock(fixedClock())
	data := entity.ReceiptPrintData{
		Receipt: entity.Receipt{
			ReceiptNumber: "RCT-42",
			CustomerName:  "Walk-in",
			TotalAmount:   decimal.RequireFromString("36.00"),
			PaymentMethod: "CASH",
			PrintedAt:     time.Date(2026, 8, 30, 9, 30, 0, 0, time.UTC),
		},
		Business: entity.BusinessProfile{BusinessName: "Solarline Supplies"},
		Items: []entity.TransactionItem{
			{Product: 7, Quantity: 3, UnitPrice: decimal.NewFromInt(12), TotalPrice: decimal.NewFromInt(36)},
		},
	}
	products := entity.IndexProducts([]entity.Product{{ID: 7, Name: "LED Bulb 12V"}})

	out, err := g.Receipt(context.Background(), data, products)
	if err != nil {
		t.Fatalf("render receipt: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Error("output does not start with a PDF header")
	}

	again, err := g.Receipt(context.Background(), data, products)
	if err != nil {
		t.Fatalf("second render: %v", err)
	}
	if !bytes.Equal(out, again) {
		t.Error("regenerating the same receipt produced different bytes")
	}
}

func TestFilenames(t *testing.T) {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	if got := InvoiceFilename("INV-1001", now); got != "invoice-INV-1001.pdf" {
		t.Errorf("InvoiceFilename = %q", got)
	}
	if got := InvoiceFilename("", now); got != "invoice-1788084000000.pdf" {
		t.Errorf("InvoiceFilename fallback = %q", got)
	}
	if got := ReceiptFilename("RCT-42", now); got != "receipt-RCT-42.pdf" {
		t.Errorf("ReceiptFilename = %q", got)
	}
}

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		in      string
		r, g, b int
	}{
		{"#0064C8", 0, 100, 200},
		{"#FF0000", 255, 0, 0},
		{"", 0, 100, 200},
		{"blue", 0, 100, 200},
		{"#GGGGGG", 0, 100, 200},
	}
	for _, c := range cases {
		r, g, b := parseHexColor(c.in)
		if r != c.r || g != c.g || b != c.b {
			t.Errorf("parseHexColor(%q) = (%d,%d,%d), want (%d,%d,%d)", c.in, r, g, b, c.r, c.g, c.b)
		}
	}
}

func TestTruncateRunesKeepsMultiByteCharactersWhole(t *testing.T) {
	cases := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"short ascii untouched", "Solar Panel", 20, "Solar Panel"},
		{"long ascii cut", "Solar Panel 450W Monocrystalline", 20, "Solar Panel 450W Mon"},
		{"multi-byte cut on rune boundary", "Café Crème Économique Spécial", 20, "Café Crème Économiqu"},
		{"exact length untouched", "12345678901234567890", 20, "12345678901234567890"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := truncateRunes(tc.in, tc.n)
			if got != tc.want {
				t.Errorf("truncateRunes(%q, %d) = %q, want %q", tc.in, tc.n, got, tc.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncateRunes(%q, %d) produced invalid UTF-8", tc.in, tc.n)
			}
		})
	}
}
