package enum

// SettlementMode is how a reseller is compensated: by keeping the margin
// over the dealership price, or by a percentage commission.
type SettlementMode string

const (
	SettlementPriceDifference   SettlementMode = "PRICE_DIFFERENCE"
	SettlementPercentCommission SettlementMode = "PERCENT_COMMISSION"
)
