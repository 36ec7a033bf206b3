package enum

// CollectionType classifies what a payment collection entry tracks
type CollectionType string

const (
	CollectionTypeCustomerDebt    CollectionType = "CUSTOMER_DEBT"
	CollectionTypeItemToCollect   CollectionType = "ITEM_TO_COLLECT"
	CollectionTypeResellerPayment CollectionType = "RESELLER_PAYMENT"
)

// CollectionStatus represents the state of a payment collection entry
type CollectionStatus string

const (
	CollectionStatusPending   CollectionStatus = "PENDING"
	CollectionStatusPaid      CollectionStatus = "PAID"
	CollectionStatusCollected CollectionStatus = "COLLECTED"
	CollectionStatusCancelled CollectionStatus = "CANCELLED"
)
