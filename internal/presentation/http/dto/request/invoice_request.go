package request

import "github.com/shopspring/decimal"

// InvoiceItemRequest represents a single invoice line item
type InvoiceItemRequest struct {
	Product   int64           `json:"product"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// GenerateInvoiceRequest represents a request to create and render an invoice
type GenerateInvoiceRequest struct {
	Customer int64                `json:"customer" binding:"required"`
	DueDate  string               `json:"due_date"` // YYYY-MM-DD, defaults when empty
	Notes    string               `json:"notes"`
	Items    []InvoiceItemRequest `json:"items" binding:"required"`
}
