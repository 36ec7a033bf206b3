package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/solarline/pos-gateway/internal/domain/entity"
)

// SessionRepository defines the interface for gateway session storage
type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)
	Revoke(ctx context.Context, id uuid.UUID) error
	RevokeAllForUser(ctx context.Context, username string) error
}
