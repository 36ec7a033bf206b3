package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Session is a gateway-owned record pairing a browser session with the
// upstream API token obtained at login. Revoked on logout or on the first
// upstream 401.
type Session struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Username      string         `gorm:"size:150;not null;index" json:"username"`
	UpstreamToken string         `gorm:"size:255;not null" json:"-"`
	User          datatypes.JSON `gorm:"type:jsonb" json:"user"`
	RevokedAt     *time.Time     `gorm:"index" json:"revoked_at,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new session
func (s *Session) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Session model
func (Session) TableName() string {
	return "sessions"
}

// Active reports whether the session has not been revoked.
func (s *Session) Active() bool {
	return s.RevokedAt == nil
}
