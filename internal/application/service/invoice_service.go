package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/solarline/pos-gateway/internal/config"
	"github.com/solarline/pos-gateway/internal/domain/entity"
	"github.com/solarline/pos-gateway/internal/pdfgen"
	"github.com/solarline/pos-gateway/internal/share"
	"github.com/solarline/pos-gateway/internal/upstream"
	"github.com/solarline/pos-gateway/pkg/apperror"
)

var oneHundred = decimal.NewFromInt(100)

// InvoiceService validates, persists and renders invoices. The invoice
// record is always saved upstream before any PDF bytes exist; a failed
// save aborts the whole generation.
type InvoiceService struct {
	client *upstream.Client
	gen    *pdfgen.Generator
	cfg    config.InvoiceConfig
	now    func() time.Time
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(client *upstream.Client, gen *pdfgen.Generator, cfg config.InvoiceConfig) *InvoiceService {
	return &InvoiceService{client: client, gen: gen, cfg: cfg, now: time.Now}
}

// WithClock replaces the service's clock.
func (s *InvoiceService) WithClock(now func() time.Time) *InvoiceService {
	s.now = now
	return s
}

// ItemInput is one requested line item. Lines without a product or with a
// non-positive quantity are dropped during validation.
type ItemInput struct {
	ProductID int64           `json:"product"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// GenerateInput is a request to create and render an invoice.
type GenerateInput struct {
	CustomerID int64       `json:"customer"`
	DueDate    *time.Time  `json:"due_date"`
	Notes      string      `json:"notes"`
	Items      []ItemInput `json:"items"`
}

// GenerateOutput carries the stored record plus the rendered bytes.
type GenerateOutput struct {
	Invoice  *entity.Invoice
	PDF      []byte
	Filename string
}

// Totals holds the computed money amounts for a validated item set.
type Totals struct {
	Subtotal  decimal.Decimal
	TaxAmount decimal.Decimal
	Total     decimal.Decimal
	TaxRate   decimal.Decimal
	Taxed     bool
}

// ValidItems filters out incomplete lines, mirroring what the invoice
// form accepts.
func ValidItems(items []ItemInput) []ItemInput {
	var valid []ItemInput
	for _, it := range items {
		if it.ProductID > 0 && it.Quantity > 0 {
			valid = append(valid, it)
		}
	}
	return valid
}

// ComputeTotals sums the valid items and applies the configured tax rate
// when the business profile enables it.
func ComputeTotals(items []ItemInput, profile *entity.BusinessProfile) Totals {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}

	t := Totals{Subtotal: subtotal, TaxAmount: decimal.Zero}
	if profile != nil && profile.ZimraEnabled {
		t.Taxed = true
		t.TaxRate = profile.ZimraTaxRate
		t.TaxAmount = subtotal.Mul(profile.ZimraTaxRate).Div(oneHundred)
	}
	t.Total = t.Subtotal.Add(t.TaxAmount)
	return t
}

// Generate validates the request, saves the invoice upstream, then
// renders the PDF from the stored record.
func (s *InvoiceService) Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	if input.CustomerID <= 0 {
		return nil, apperror.NewBadRequestError("Please select a customer")
	}
	valid := ValidItems(input.Items)
	if len(valid) == 0 {
		return nil, apperror.NewBadRequestError("Please add at least one valid item")
	}

	dueDate := s.now().AddDate(0, 0, s.cfg.DefaultDueDays)
	if input.DueDate != nil {
		dueDate = *input.DueDate
	}

	wire := upstream.CreateInvoiceInput{
		Customer: input.CustomerID,
		DueDate:  dueDate.Format("2006-01-02"),
		Notes:    input.Notes,
		Items:    make([]upstream.CreateInvoiceItem, 0, len(valid)),
	}
	for _, it := range valid {
		wire.Items = append(wire.Items, upstream.CreateInvoiceItem{
			Product:   it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}

	invoice, err := s.client.Invoices.Create(ctx, wire)
	if err != nil {
		return nil, err
	}

	pdf, err := s.render(ctx, invoice, valid)
	if err != nil {
		return nil, err
	}
	return &GenerateOutput{
		Invoice:  invoice,
		PDF:      pdf,
		Filename: pdfgen.InvoiceFilename(invoice.InvoiceNumber, s.now()),
	}, nil
}

// Render regenerates the PDF for a stored invoice.
func (s *InvoiceService) Render(ctx context.Context, id int64) (*GenerateOutput, error) {
	invoice, err := s.client.Invoices.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	pdf, err := s.render(ctx, invoice, nil)
	if err != nil {
		return nil, err
	}
	return &GenerateOutput{
		Invoice:  invoice,
		PDF:      pdf,
		Filename: pdfgen.InvoiceFilename(invoice.InvoiceNumber, s.now()),
	}, nil
}

// render draws the PDF. freshItems, when non-nil, are the submitted items
// of a just-created invoice; totals are then computed from them the way the
// invoice form does, since the stored record may not carry them yet.
func (s *InvoiceService) render(ctx context.Context, invoice *entity.Invoice, freshItems []ItemInput) ([]byte, error) {
	profile := s.profile(ctx)

	var customer *entity.Customer
	if invoice.Customer != nil {
		// Best effort: a deleted customer still renders with placeholders.
		customer, _ = s.client.Customers.Get(ctx, *invoice.Customer)
	}

	products, err := s.client.Products.List(ctx)
	if err != nil {
		products = nil
	}

	dueDate := invoice.DateCreated.AddDate(0, 0, s.cfg.DefaultDueDays)
	if invoice.DueDate != nil {
		dueDate = *invoice.DueDate
	}

	doc := pdfgen.Document{
		Customer:      customer,
		InvoiceNumber: invoice.InvoiceNumber,
		Date:          invoice.DateCreated,
		DueDate:       dueDate,
		Items:         pdfgen.LinesFromInvoice(invoice.Items, entity.IndexProducts(products)),
		Subtotal:      invoice.Subtotal,
		TaxAmount:     invoice.TaxAmount,
		Total:         invoice.TotalAmount,
		Notes:         invoice.Notes,
	}
	if profile != nil {
		doc.Business = *profile
		doc.Taxed = profile.ZimraEnabled
		doc.TaxRate = profile.ZimraTaxRate
	}
	if freshItems != nil {
		totals := ComputeTotals(freshItems, profile)
		doc.Subtotal = totals.Subtotal
		doc.TaxAmount = totals.TaxAmount
		doc.Total = totals.Total
		doc.Taxed = totals.Taxed
		doc.TaxRate = totals.TaxRate
	}
	if doc.Business.InvoiceHeaderColor == "" {
		doc.Business.InvoiceHeaderColor = s.cfg.DefaultHeaderColor
	}
	if doc.Business.InvoiceFooterText == "" {
		doc.Business.InvoiceFooterText = s.cfg.DefaultFooterText
	}

	return s.gen.Invoice(ctx, doc)
}

func (s *InvoiceService) profile(ctx context.Context) *entity.BusinessProfile {
	profile, err := s.client.Business.Profile(ctx)
	if err != nil {
		return nil
	}
	return profile
}

// ShareLinks builds the WhatsApp and email share links for a stored
// invoice.
func (s *InvoiceService) ShareLinks(ctx context.Context, id int64) (whatsapp, email string, err error) {
	invoice, err := s.client.Invoices.Get(ctx, id)
	if err != nil {
		return "", "", err
	}

	var customer *entity.Customer
	if invoice.Customer != nil {
		customer, _ = s.client.Customers.Get(ctx, *invoice.Customer)
	}
	businessName := ""
	if profile := s.profile(ctx); profile != nil {
		businessName = profile.BusinessName
	}

	customerName := invoice.CustomerName
	if customer != nil && customer.Name != "" {
		customerName = customer.Name
	}
	return share.WhatsAppInvoice(invoice, customerName),
		share.EmailInvoice(invoice, customer, businessName),
		nil
}
