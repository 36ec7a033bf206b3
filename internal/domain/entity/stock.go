package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/solarline/pos-gateway/internal/domain/enum"
)

// StockMovement is served by the upstream /stock-movements/ resource.
type StockMovement struct {
	ID               int64                  `json:"id"`
	MovementType     enum.StockMovementType `json:"movement_type"`
	Product          *int64                 `json:"product"`
	ProductName      string                 `json:"product_name,omitempty"`
	Quantity         int                    `json:"quantity"`
	UnitCost         decimal.Decimal        `json:"unit_cost"`
	ReferenceDocType string                 `json:"reference_doc_type"`
	ReferenceDocID   *int64                 `json:"reference_doc_id"`
	Reason           string                 `json:"reason"`
	Notes            string                 `json:"notes"`
	Timestamp        time.Time              `json:"timestamp"`
}

// StockTake is a physical count record served by /stock-takes/.
type StockTake struct {
	ID              int64     `json:"id"`
	Product         *int64    `json:"product"`
	ProductName     string    `json:"product_name,omitempty"`
	CountedQuantity int       `json:"counted_quantity"`
	SystemQuantity  int       `json:"system_quantity"`
	Difference      int       `json:"difference"`
	Notes           string    `json:"notes"`
	Date            time.Time `json:"date"`
}
