package enum

// NotificationType classifies a notification
type NotificationType string

const (
	NotificationStockAlert NotificationType = "STOCK_ALERT"
	NotificationPaymentDue NotificationType = "PAYMENT_DUE"
	NotificationLowStock   NotificationType = "LOW_STOCK"
	NotificationGeneral    NotificationType = "GENERAL"
)
