package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/solarline/pos-gateway/internal/domain/entity"
)

// CollectionsAPI wraps the upstream /payment-collections/ resource.
type CollectionsAPI struct {
	c *Client
}

func (a *CollectionsAPI) List(ctx context.Context) ([]entity.PaymentCollection, error) {
	return list[entity.PaymentCollection](ctx, a.c, "/payment-collections/")
}

func (a *CollectionsAPI) Get(ctx context.Context, id int64) (*entity.PaymentCollection, error) {
	return get[entity.PaymentCollection](ctx, a.c, fmt.Sprintf("/payment-collections/%d/", id))
}

func (a *CollectionsAPI) Create(ctx context.Context, body any) (*entity.PaymentCollection, error) {
	return create[entity.PaymentCollection](ctx, a.c, "/payment-collections/", body)
}

func (a *CollectionsAPI) Update(ctx context.Context, id int64, body any) (*entity.PaymentCollection, error) {
	return update[entity.PaymentCollection](ctx, a.c, fmt.Sprintf("/payment-collections/%d/", id), body)
}

func (a *CollectionsAPI) Delete(ctx context.Context, id int64) error {
	return del(ctx, a.c, fmt.Sprintf("/payment-collections/%d/", id))
}

func (a *CollectionsAPI) MarkPaid(ctx context.Context, id int64) (*entity.PaymentCollection, error) {
	var out entity.PaymentCollection
	err := a.c.do(ctx, http.MethodPost, fmt.Sprintf("/payment-collections/%d/mark_paid/", id), nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *CollectionsAPI) MarkCollected(ctx context.Context, id int64) (*entity.PaymentCollection, error) {
	var out entity.PaymentCollection
	err := a.c.do(ctx, http.MethodPost, fmt.Sprintf("/payment-collections/%d/mark_collected/", id), nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
