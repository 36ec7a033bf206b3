package repository

import (
	"context"

	"github.com/solarline/pos-gateway/internal/domain/entity"
)

// DraftRepository defines the interface for autosaved form drafts
type DraftRepository interface {
	// Save overwrites any existing draft for the same (username, formKey).
	Save(ctx context.Context, draft *entity.Draft) error
	Get(ctx context.Context, username, formKey string) (*entity.Draft, error)
	ListForUser(ctx context.Context, username string) ([]entity.Draft, error)
	Delete(ctx context.Context, username, formKey string) error
}
