package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/solarline/pos-gateway/internal/domain/entity"
)

type memoryDraftRepo struct {
	drafts map[string]*entity.Draft
}

func newMemoryDraftRepo() *memoryDraftRepo {
	return &memoryDraftRepo{drafts: make(map[string]*entity.Draft)}
}

func (r *memoryDraftRepo) key(username, formKey string) string {
	return username + "/" + formKey
}

func (r *memoryDraftRepo) Save(_ context.Context, draft *entity.Draft) error {
	copied := *draft
	r.drafts[r.key(draft.Username, draft.FormKey)] = &copied
	return nil
}

func (r *memoryDraftRepo) Get(_ context.Context, username, formKey string) (*entity.Draft, error) {
	draft, ok := r.drafts[r.key(username, formKey)]
	if !ok {
		return nil, nil
	}
	return draft, nil
}

func (r *memoryDraftRepo) ListForUser(_ context.Context, username string) ([]entity.Draft, error) {
	var out []entity.Draft
	for _, d := range r.drafts {
		if d.Username == username {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *memoryDraftRepo) Delete(_ context.Context, username, formKey string) error {
	delete(r.drafts, r.key(username, formKey))
	return nil
}

func TestDraftSaveOverwritesPerFormKey(t *testing.T) {
	repo := newMemoryDraftRepo()
	svc := NewDraftService(repo)
	ctx := context.Background()

	if err := svc.Save(ctx, "tariro", "invoice-form", json.RawMessage(`{"customer":1}`)); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := svc.Save(ctx, "tariro", "invoice-form", json.RawMessage(`{"customer":2}`)); err != nil {
		t.Fatalf("second save: %v", err)
	}

	draft, err := svc.Load(ctx, "tariro", "invoice-form")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if draft == nil {
		t.Fatal("expected a draft")
	}
	if string(draft.Payload) != `{"customer":2}` {
		t.Errorf("payload = %s, want latest save", draft.Payload)
	}
}

func TestDraftLoadMissingReturnsNil(t *testing.T) {
	svc := NewDraftService(newMemoryDraftRepo())

	draft, err := svc.Load(context.Background(), "tariro", "no-such-form")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if draft != nil {
		t.Errorf("draft = %+v, want nil", draft)
	}
}

func TestDraftLoadCorruptPayloadTreatedAsAbsent(t *testing.T) {
	repo := newMemoryDraftRepo()
	repo.drafts[repo.key("tariro", "invoice-form")] = &entity.Draft{
		Username: "tariro",
		FormKey:  "invoice-form",
		Payload:  []byte(`{"customer":`),
	}
	svc := NewDraftService(repo)

	draft, err := svc.Load(context.Background(), "tariro", "invoice-form")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if draft != nil {
		t.Errorf("draft = %+v, want nil for corrupt payload", draft)
	}
}

func TestDraftClearRemovesOnlyThatForm(t *testing.T) {
	repo := newMemoryDraftRepo()
	svc := NewDraftService(repo)
	ctx := context.Background()

	if err := svc.Save(ctx, "tariro", "invoice-form", json.RawMessage(`{}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := svc.Save(ctx, "tariro", "expense-form", json.RawMessage(`{}`)); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := svc.Clear(ctx, "tariro", "invoice-form"); err != nil {
		t.Fatalf("clear: %v", err)
	}

	drafts, err := svc.List(ctx, "tariro")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(drafts) != 1 || drafts[0].FormKey != "expense-form" {
		t.Errorf("drafts = %+v, want only expense-form", drafts)
	}
}
