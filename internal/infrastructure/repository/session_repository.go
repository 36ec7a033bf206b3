package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/solarline/pos-gateway/internal/domain/entity"
	domainRepo "github.com/solarline/pos-gateway/internal/domain/repository"
)

type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *gorm.DB) domainRepo.SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *sessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	var session entity.Session
	err := r.db.WithContext(ctx).First(&session, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &session, err
}

func (r *sessionRepository) Revoke(ctx context.Context, id uuid.UUID) error {
	now := time.Now()
	return r.db.WithContext(ctx).Model(&entity.Session{}).
		Where("id = ? AND revoked_at IS NULL", id).
		Update("revoked_at", &now).Error
}

func (r *sessionRepository) RevokeAllForUser(ctx context.Context, username string) error {
	now := time.Now()
	return r.db.WithContext(ctx).Model(&entity.Session{}).
		Where("username = ? AND revoked_at IS NULL", username).
		Update("revoked_at", &now).Error
}
