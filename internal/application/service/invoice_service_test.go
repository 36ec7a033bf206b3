package service

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/solarline/pos-gateway/internal/config"
	"github.com/solarline/pos-gateway/internal/domain/entity"
	"github.com/solarline/pos-gateway/internal/pdfgen"
	"github.com/solarline/pos-gateway/internal/upstream"
)

func testClock() func() time.Time {
	t := time.Date(2026, time.August, 30, 10, 0, 0, 0, time.UTC)
	return func() time.Time { return t }
}

func invoiceTestConfig() config.InvoiceConfig {
	return config.InvoiceConfig{
		DefaultDueDays:     30,
		DefaultHeaderColor: "#0064C8",
		DefaultFooterText:  "Thank you for your business!",
	}
}

func newTestClient(t *testing.T, handler http.Handler) (*upstream.Client, func()) {
	t.Helper()
	srv := httptest.NewServer(handler)
	client := upstream.New(config.UpstreamConfig{BaseURL: srv.URL, Timeout: 5 * time.Second})
	return client, srv.Close
}

func TestComputeTotalsWithTax(t *testing.T) {
	profile := &entity.BusinessProfile{
		ZimraEnabled: true,
		ZimraTaxRate: decimal.NewFromInt(15),
	}
	items := []ItemInput{
		{ProductID: 1, Quantity: 2, UnitPrice: decimal.NewFromInt(50)},
		{ProductID: 2, Quantity: 1, UnitPrice: decimal.NewFromInt(100)},
	}

	totals := ComputeTotals(items, profile)
	if !totals.Subtotal.Equal(decimal.NewFromInt(200)) {
		t.Errorf("subtotal = %s, want 200", totals.Subtotal)
	}
	if !totals.TaxAmount.Equal(decimal.NewFromInt(30)) {
		t.Errorf("tax = %s, want 30", totals.TaxAmount)
	}
	if !totals.Total.Equal(decimal.NewFromInt(230)) {
		t.Errorf("total = %s, want 230", totals.Total)
	}
	if !totals.Total.Equal(totals.Subtotal.Add(totals.TaxAmount)) {
		t.Error("total != subtotal + tax")
	}
}

func TestComputeTotalsTaxDisabled(t *testing.T) {
	profile := &entity.BusinessProfile{ZimraEnabled: false, ZimraTaxRate: decimal.NewFromInt(15)}
	items := []ItemInput{{ProductID: 1, Quantity: 3, UnitPrice: decimal.RequireFromString("19.99")}}

	totals := ComputeTotals(items, profile)
	if !totals.TaxAmount.IsZero() {
		t.Errorf("tax = %s, want 0 when disabled", totals.TaxAmount)
	}
	if !totals.Total.Equal(totals.Subtotal) {
		t.Errorf("total = %s, want subtotal %s", totals.Total, totals.Subtotal)
	}
	if !totals.Subtotal.Equal(decimal.RequireFromString("59.97")) {
		t.Errorf("subtotal = %s, want 59.97", totals.Subtotal)
	}
}

func TestValidItemsFiltering(t *testing.T) {
	items := []ItemInput{
		{ProductID: 1, Quantity: 2, UnitPrice: decimal.NewFromInt(10)},
		{ProductID: 0, Quantity: 5, UnitPrice: decimal.NewFromInt(10)},
		{ProductID: 3, Quantity: 0, UnitPrice: decimal.NewFromInt(10)},
		{ProductID: 4, Quantity: -1, UnitPrice: decimal.NewFromInt(10)},
	}

	valid := ValidItems(items)
	if len(valid) != 1 || valid[0].ProductID != 1 {
		t.Errorf("valid = %+v, want only product 1", valid)
	}
}

func TestGenerateRequiresCustomerAndItems(t *testing.T) {
	client, closeFn := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("no upstream call expected, got %s %s", r.Method, r.URL.Path)
	}))
	defer closeFn()
	svc := NewInvoiceService(client, pdfgen.NewGenerator(nil), invoiceTestConfig()).WithClock(testClock())

	_, err := svc.Generate(context.Background(), &GenerateInput{
		Items: []ItemInput{{ProductID: 1, Quantity: 1, UnitPrice: decimal.NewFromInt(5)}},
	})
	if err == nil {
		t.Error("expected error for missing customer")
	}

	_, err = svc.Generate(context.Background(), &GenerateInput{
		CustomerID: 1,
		Items:      []ItemInput{{ProductID: 0, Quantity: 1, UnitPrice: decimal.NewFromInt(5)}},
	})
	if err == nil {
		t.Error("expected error when no item is valid")
	}
}

func TestGenerateAbortsWhenSaveFails(t *testing.T) {
	client, closeFn := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && r.URL.Path == "/invoices/" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		t.Errorf("unexpected call after failed save: %s %s", r.Method, r.URL.Path)
	}))
	defer closeFn()
	svc := NewInvoiceService(client, pdfgen.NewGenerator(nil), invoiceTestConfig()).WithClock(testClock())

	out, err := svc.Generate(context.Background(), &GenerateInput{
		CustomerID: 1,
		Items:      []ItemInput{{ProductID: 1, Quantity: 1, UnitPrice: decimal.NewFromInt(5)}},
	})
	if err == nil {
		t.Fatal("expected error when upstream save fails")
	}
	if out != nil {
		t.Error("no PDF should be produced when the save fails")
	}
}

func TestGenerateSavesThenRenders(t *testing.T) {
	var savedBody upstream.CreateInvoiceInput
	stored := entity.Invoice{
		ID:            10,
		InvoiceNumber: "INV-1001",
		Subtotal:      decimal.NewFromInt(200),
		TaxAmount:     decimal.NewFromInt(30),
		TotalAmount:   decimal.NewFromInt(230),
		DateCreated:   time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		Items: []entity.InvoiceItem{
			{Product: 1, Quantity: 2, UnitPrice: decimal.NewFromInt(100), TotalPrice: decimal.NewFromInt(200)},
		},
	}

	client, closeFn := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/invoices/":
			if err := json.NewDecoder(r.Body).Decode(&savedBody); err != nil {
				t.Errorf("decode save body: %v", err)
			}
			json.NewEncoder(w).Encode(stored)
		case r.URL.Path == "/business-profile/":
			json.NewEncoder(w).Encode([]entity.BusinessProfile{{
				BusinessName: "Solarline Supplies",
				ZimraEnabled: true,
				ZimraTaxRate: decimal.NewFromInt(15),
			}})
		case r.URL.Path == "/products/":
			json.NewEncoder(w).Encode([]entity.Product{{ID: 1, Name: "Solar Panel 450W"}})
		default:
			http.NotFound(w, r)
		}
	}))
	defer closeFn()
	svc := NewInvoiceService(client, pdfgen.NewGenerator(nil).WithClock(testClock()), invoiceTestConfig()).WithClock(testClock())

	out, err := svc.Generate(context.Background(), &GenerateInput{
		CustomerID: 7,
		Items: []ItemInput{
			{ProductID: 1, Quantity: 2, UnitPrice: decimal.NewFromInt(100)},
			{ProductID: 0, Quantity: 9, UnitPrice: decimal.NewFromInt(1)}, // dropped
		},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if savedBody.Customer != 7 {
		t.Errorf("saved customer = %d, want 7", savedBody.Customer)
	}
	if len(savedBody.Items) != 1 {
		t.Errorf("saved %d items, want 1 (invalid line dropped)", len(savedBody.Items))
	}
	if savedBody.DueDate != "2026-09-29" {
		t.Errorf("due date = %q, want 30 days out", savedBody.DueDate)
	}
	if !bytes.HasPrefix(out.PDF, []byte("%PDF")) {
		t.Error("output is not a PDF")
	}
	if out.Filename != "invoice-INV-1001.pdf" {
		t.Errorf("filename = %q", out.Filename)
	}
}

func TestGenerateComputesTotalsForFreshRecord(t *testing.T) {
	// The upstream record comes back with empty totals; the generated PDF
	// must carry totals computed from the submitted items.
	stored := entity.Invoice{
		ID:            11,
		InvoiceNumber: "INV-1002",
		DateCreated:   time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		Items: []entity.InvoiceItem{
			{Product: 1, Quantity: 2, UnitPrice: decimal.NewFromInt(100), TotalPrice: decimal.NewFromInt(200)},
		},
	}
	client, closeFn := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/invoices/":
			json.NewEncoder(w).Encode(stored)
		case r.URL.Path == "/invoices/11/":
			json.NewEncoder(w).Encode(stored)
		case r.URL.Path == "/business-profile/":
			json.NewEncoder(w).Encode([]entity.BusinessProfile{{
				BusinessName: "Solarline Supplies",
				ZimraEnabled: true,
				ZimraTaxRate: decimal.NewFromInt(15),
			}})
		case r.URL.Path == "/products/":
			json.NewEncoder(w).Encode([]entity.Product{{ID: 1, Name: "Solar Panel 450W"}})
		default:
			http.NotFound(w, r)
		}
	}))
	defer closeFn()
	svc := NewInvoiceService(client, pdfgen.NewGenerator(nil).WithClock(testClock()), invoiceTestConfig()).WithClock(testClock())

	generated, err := svc.Generate(context.Background(), &GenerateInput{
		CustomerID: 7,
		Items:      []ItemInput{{ProductID: 1, Quantity: 2, UnitPrice: decimal.NewFromInt(100)}},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	// Re-rendering the stored record uses its (empty) totals; both renders
	// share a pinned clock, so any byte difference comes from the totals.
	rerendered, err := svc.Render(context.Background(), 11)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if bytes.Equal(generated.PDF, rerendered.PDF) {
		t.Error("generated PDF matches the empty-totals render; submitted items were not totalled")
	}
}

func TestRenderStoredInvoiceIsByteStable(t *testing.T) {
	stored := entity.Invoice{
		ID:            10,
		InvoiceNumber: "INV-1001",
		Subtotal:      decimal.NewFromInt(100),
		TotalAmount:   decimal.NewFromInt(100),
		DateCreated:   time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		Items: []entity.InvoiceItem{
			{Product: 999, Quantity: 1, UnitPrice: decimal.Zero, TotalPrice: decimal.Zero},
		},
	}
	client, closeFn := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/invoices/10/":
			json.NewEncoder(w).Encode(stored)
		case "/business-profile/":
			json.NewEncoder(w).Encode([]entity.BusinessProfile{})
		case "/products/":
			json.NewEncoder(w).Encode([]entity.Product{})
		default:
			http.NotFound(w, r)
		}
	}))
	defer closeFn()
	svc := NewInvoiceService(client, pdfgen.NewGenerator(nil).WithClock(testClock()), invoiceTestConfig()).WithClock(testClock())

	first, err := svc.Render(context.Background(), 10)
	if err != nil {
		t.Fatalf("first render: %v", err)
	}
	second, err := svc.Render(context.Background(), 10)
	if err != nil {
		t.Fatalf("second render: %v", err)
	}
	if !bytes.Equal(first.PDF, second.PDF) {
		t.Error("rendering the same stored invoice twice produced different bytes")
	}
}
