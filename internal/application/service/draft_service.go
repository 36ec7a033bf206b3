package service

import (
	"context"
	"encoding/json"

	"github.com/solarline/pos-gateway/internal/domain/entity"
	"github.com/solarline/pos-gateway/internal/domain/repository"
)

// DraftService stores best-effort form drafts keyed by (user, form).
type DraftService struct {
	draftRepo repository.DraftRepository
}

// NewDraftService creates a new draft service
func NewDraftService(draftRepo repository.DraftRepository) *DraftService {
	return &DraftService{draftRepo: draftRepo}
}

// Save overwrites the draft for the given form key.
func (s *DraftService) Save(ctx context.Context, username, formKey string, payload json.RawMessage) error {
	draft := &entity.Draft{
		Username: username,
		FormKey:  formKey,
		Payload:  []byte(payload),
	}
	return s.draftRepo.Save(ctx, draft)
}

// Load returns the stored draft, or nil when none exists. A payload that
// no longer decodes is treated as absent rather than surfaced.
func (s *DraftService) Load(ctx context.Context, username, formKey string) (*entity.Draft, error) {
	draft, err := s.draftRepo.Get(ctx, username, formKey)
	if err != nil {
		return nil, err
	}
	if draft == nil || !json.Valid(draft.Payload) {
		return nil, nil
	}
	return draft, nil
}

// List returns every draft the user has.
func (s *DraftService) List(ctx context.Context, username string) ([]entity.Draft, error) {
	return s.draftRepo.ListForUser(ctx, username)
}

// Clear removes the draft after a successful submission.
func (s *DraftService) Clear(ctx context.Context, username, formKey string) error {
	return s.draftRepo.Delete(ctx, username, formKey)
}
