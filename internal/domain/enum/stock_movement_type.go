package enum

// StockMovementType classifies a stock movement entry
type StockMovementType string

const (
	StockMovementReceipt       StockMovementType = "RECEIPT"
	StockMovementSale          StockMovementType = "SALE"
	StockMovementAdjustmentIn  StockMovementType = "ADJUSTMENT_IN"
	StockMovementAdjustmentOut StockMovementType = "ADJUSTMENT_OUT"
	StockMovementReturnIn      StockMovementType = "RETURN_IN"
	StockMovementReturnOut     StockMovementType = "RETURN_OUT"
)
