package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// GenerateInvoiceNumber derives a preview invoice number from the
// generation instant. Stored invoices keep the number assigned upstream.
func GenerateInvoiceNumber(now time.Time) string {
	return fmt.Sprintf("INV-%d", now.UnixMilli())
}
