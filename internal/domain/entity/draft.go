package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Draft is a best-effort autosaved form payload keyed by screen name.
// Overwritten on every save, cleared on successful submission. No schema
// versioning: a stale payload that no longer decodes is simply discarded.
type Draft struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Username  string         `gorm:"size:150;not null;uniqueIndex:idx_drafts_user_form" json:"username"`
	FormKey   string         `gorm:"size:100;not null;uniqueIndex:idx_drafts_user_form" json:"form_key"`
	Payload   datatypes.JSON `gorm:"type:jsonb" json:"payload"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new draft
func (d *Draft) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Draft model
func (Draft) TableName() string {
	return "drafts"
}
