package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/solarline/pos-gateway/internal/domain/enum"
)

// Transaction is a stock receipt or sale served by the upstream
// /transactions/ resource. Immutable once fetched; every screen load pulls
// a fresh copy.
type Transaction struct {
	ID              int64                  `json:"id"`
	TransactionCode string                 `json:"transaction_code"`
	Product         *int64                 `json:"product"`
	ProductName     string                 `json:"product_names,omitempty"`
	Customer        *int64                 `json:"customer"`
	CustomerName    string                 `json:"customer_name,omitempty"`
	Reseller        *int64                 `json:"reseller"`
	Supplier        *int64                 `json:"supplier"`
	Quantity        int                    `json:"quantity"`
	Status          enum.TransactionStatus `json:"status"`
	DealershipPrice decimal.Decimal        `json:"dealership_price"`
	SalePrice       decimal.Decimal        `json:"sale_price"`
	TotalAmount     decimal.Decimal        `json:"total_amount"`
	TaxAmount       decimal.Decimal        `json:"tax_amount"`
	IsTaxed         bool                   `json:"is_taxed"`
	ZimraReceiptNo  string                 `json:"zimra_receipt_no"`
	Notes           string                 `json:"notes"`
	PaymentMethod   enum.PaymentMethod     `json:"payment_method"`
	Timestamp       time.Time              `json:"timestamp"`
	Items           []TransactionItem      `json:"items,omitempty"`
}

// TransactionItem is a line on a multi-item transaction.
type TransactionItem struct {
	ID         int64           `json:"id"`
	Product    int64           `json:"product"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// Profit returns total_amount minus the dealership cost basis. A missing or
// non-positive quantity falls back to a single unit, matching upstream
// records created before quantity became mandatory.
func (t *Transaction) Profit() decimal.Decimal {
	qty := t.Quantity
	if qty <= 0 {
		qty = 1
	}
	cost := t.DealershipPrice.Mul(decimal.NewFromInt(int64(qty)))
	return t.TotalAmount.Sub(cost)
}
