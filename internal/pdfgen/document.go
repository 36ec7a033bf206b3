package pdfgen

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/solarline/pos-gateway/internal/domain/entity"
)

// Line is one rendered table row. Description and totals are resolved
// before rendering; the renderer never touches the catalog.
type Line struct {
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
}

// Document is the normalized model a PDF is rendered from. Built once per
// generation request and never mutated after bytes are produced.
type Document struct {
	Business      entity.BusinessProfile
	Customer      *entity.Customer
	InvoiceNumber string
	Date          time.Time
	DueDate       time.Time
	Items         []Line
	Subtotal      decimal.Decimal
	TaxAmount     decimal.Decimal
	Total         decimal.Decimal
	TaxRate       decimal.Decimal
	Taxed         bool
	Notes         string
}

// fallbackDescription labels a line whose product has been deleted since
// the invoice was stored.
const fallbackDescription = "Product"

// LinesFromInvoice resolves stored invoice items against the product index.
// Missing products keep the line renderable with a placeholder name;
// the stored unit price already defaults to zero in that case.
func LinesFromInvoice(items []entity.InvoiceItem, products entity.ProductIndex) []Line {
	lines := make([]Line, 0, len(items))
	for _, it := range items {
		name := fallbackDescription
		if p, ok := products[it.Product]; ok {
			name = p.Name
		}
		lines = append(lines, Line{
			Description: name,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  it.TotalPrice,
		})
	}
	return lines
}
