package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/solarline/pos-gateway/internal/domain/enum"
)

// Receipt is served by the upstream /receipts/ resource.
type Receipt struct {
	ID             int64              `json:"id"`
	ReceiptNumber  string             `json:"receipt_number"`
	Transaction    *int64             `json:"transaction"`
	Customer       *int64             `json:"customer"`
	CustomerName   string             `json:"customer_name,omitempty"`
	TotalAmount    decimal.Decimal    `json:"total_amount"`
	TaxAmount      decimal.Decimal    `json:"tax_amount"`
	PaymentMethod  enum.PaymentMethod `json:"payment_method"`
	ZimraReceiptNo string             `json:"zimra_receipt_no"`
	PrintedAt      time.Time          `json:"printed_at"`
}

// ReceiptPrintData is the structured payload returned by the upstream
// /receipts/{id}/print_receipt/ action, used to lay out a printable receipt.
type ReceiptPrintData struct {
	Receipt  Receipt           `json:"receipt"`
	Business BusinessProfile   `json:"business"`
	Items    []TransactionItem `json:"items"`
}
