package entity

import (
	"time"

	"github.com/solarline/pos-gateway/internal/domain/enum"
)

// Notification is served by the upstream /notifications/ resource.
type Notification struct {
	ID               int64                 `json:"id"`
	Message          string                `json:"message"`
	NotificationType enum.NotificationType `json:"notification_type"`
	IsRead           bool                  `json:"is_read"`
	RelatedProduct   *int64                `json:"related_product"`
	RelatedCustomer  *int64                `json:"related_customer"`
	RelatedReseller  *int64                `json:"related_reseller"`
	Timestamp        time.Time             `json:"timestamp"`
}
