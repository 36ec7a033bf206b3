package enum

// PaymentMethod represents how a transaction or payment was settled
type PaymentMethod string

const (
	PaymentMethodCash      PaymentMethod = "CASH"
	PaymentMethodEcocash   PaymentMethod = "ECOCASH"
	PaymentMethodOneMoney  PaymentMethod = "ONE_MONEY"
	PaymentMethodMukuru    PaymentMethod = "MUKURU"
	PaymentMethodInbucks   PaymentMethod = "INBUCKS"
	PaymentMethodMamaMoney PaymentMethod = "MAMA_MONEY"
	PaymentMethodBank      PaymentMethod = "BANK"
	PaymentMethodCard      PaymentMethod = "CARD"
	PaymentMethodOther     PaymentMethod = "OTHER"
)
