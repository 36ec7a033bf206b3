package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/solarline/pos-gateway/internal/domain/enum"
)

// Invoice is the persisted invoice record from the upstream /invoices/
// resource. The PDF itself is ephemeral and regenerated on demand from
// this record.
type Invoice struct {
	ID            int64              `json:"id"`
	InvoiceNumber string             `json:"invoice_number"`
	Customer      *int64             `json:"customer"`
	CustomerName  string             `json:"customer_name,omitempty"`
	Status        enum.InvoiceStatus `json:"status"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	TaxAmount     decimal.Decimal    `json:"tax_amount"`
	TotalAmount   decimal.Decimal    `json:"total_amount"`
	Notes         string             `json:"notes"`
	DateCreated   time.Time          `json:"date_created"`
	DueDate       *time.Time         `json:"due_date"`
	Items         []InvoiceItem      `json:"items"`
}

// InvoiceItem is a line item on a persisted invoice.
type InvoiceItem struct {
	ID         int64           `json:"id"`
	Product    int64           `json:"product"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}
