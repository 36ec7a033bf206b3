package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog item served by the upstream /products/ resource.
type Product struct {
	ID                int64           `json:"id"`
	Name              string          `json:"name"`
	ProductUniqueCode string          `json:"product_unique_code"`
	Barcode           string          `json:"barcode"`
	Category          *int64          `json:"category"`
	CategoryName      string          `json:"category_name,omitempty"`
	Unit              string          `json:"unit"`
	CostPriceAvg      decimal.Decimal `json:"cost_price_avg"`
	LastPurchasePrice decimal.Decimal `json:"last_purchase_price"`
	DefaultSalePrice  decimal.Decimal `json:"default_sale_price"`
	TaxGroup          string          `json:"tax_group"`
	StockQuantity     int             `json:"stock_quantity"`
	ReorderLevel      int             `json:"reorder_level"`
	LowStockThreshold int             `json:"low_stock_threshold"`
	WarrantyMonths    *int            `json:"warranty_months"`
	IsActive          bool            `json:"is_active"`
	CreatedAt         time.Time       `json:"created_at"`
}

// IsLowStock reports whether the product is at or below its threshold.
func (p *Product) IsLowStock() bool {
	return p.StockQuantity <= p.LowStockThreshold
}

// ProductIndex is a lookup map built once per fetch so line items and
// transaction rows resolve product references without repeated scans.
type ProductIndex map[int64]*Product

// IndexProducts builds a ProductIndex from a fetched product list.
func IndexProducts(products []Product) ProductIndex {
	idx := make(ProductIndex, len(products))
	for i := range products {
		idx[products[i].ID] = &products[i]
	}
	return idx
}
