package enum

// TransactionStatus represents the lifecycle state of a POS transaction
type TransactionStatus string

const (
	TransactionStatusReceived       TransactionStatus = "RECEIVED"
	TransactionStatusSold           TransactionStatus = "SOLD"
	TransactionStatusPaidToCollect  TransactionStatus = "PAID_TO_COLLECT"
	TransactionStatusCollectedToPay TransactionStatus = "COLLECTED_TO_PAY"
)

// IsSale reports whether the transaction counts as a completed sale
// for revenue and profit purposes.
func (s TransactionStatus) IsSale() bool {
	return s == TransactionStatusSold || s == TransactionStatusPaidToCollect
}

// IsRevenue reports whether the transaction contributes to total sales,
// including goods collected but not yet paid for.
func (s TransactionStatus) IsRevenue() bool {
	return s.IsSale() || s == TransactionStatusCollectedToPay
}

func (s TransactionStatus) Valid() bool {
	switch s {
	case TransactionStatusReceived, TransactionStatusSold,
		TransactionStatusPaidToCollect, TransactionStatusCollectedToPay:
		return true
	}
	return false
}
