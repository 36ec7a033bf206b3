package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/solarline/pos-gateway/internal/domain/entity"
	domainRepo "github.com/solarline/pos-gateway/internal/domain/repository"
)

type draftRepository struct {
	db *gorm.DB
}

// NewDraftRepository creates a new draft repository
func NewDraftRepository(db *gorm.DB) domainRepo.DraftRepository {
	return &draftRepository{db: db}
}

func (r *draftRepository) Save(ctx context.Context, draft *entity.Draft) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}, {Name: "form_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(draft).Error
}

func (r *draftRepository) Get(ctx context.Context, username, formKey string) (*entity.Draft, error) {
	var draft entity.Draft
	err := r.db.WithContext(ctx).
		First(&draft, "username = ? AND form_key = ?", username, formKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &draft, err
}

func (r *draftRepository) ListForUser(ctx context.Context, username string) ([]entity.Draft, error) {
	var drafts []entity.Draft
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		Order("updated_at DESC").
		Find(&drafts).Error
	return drafts, err
}

func (r *draftRepository) Delete(ctx context.Context, username, formKey string) error {
	return r.db.WithContext(ctx).
		Delete(&entity.Draft{}, "username = ? AND form_key = ?", username, formKey).Error
}
