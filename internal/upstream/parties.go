package upstream

import (
	"context"
	"fmt"

	"github.com/solarline/pos-gateway/internal/domain/entity"
)

// CustomersAPI wraps the upstream /customers/ resource.
type CustomersAPI struct {
	c *Client
}

func (a *CustomersAPI) List(ctx context.Context) ([]entity.Customer, error) {
	return list[entity.Customer](ctx, a.c, "/customers/")
}

func (a *CustomersAPI) Get(ctx context.Context, id int64) (*entity.Customer, error) {
	return get[entity.Customer](ctx, a.c, fmt.Sprintf("/customers/%d/", id))
}

func (a *CustomersAPI) Create(ctx context.Context, body any) (*entity.Customer, error) {
	return create[entity.Customer](ctx, a.c, "/customers/", body)
}

func (a *CustomersAPI) Update(ctx context.Context, id int64, body any) (*entity.Customer, error) {
	return update[entity.Customer](ctx, a.c, fmt.Sprintf("/customers/%d/", id), body)
}

func (a *CustomersAPI) Delete(ctx context.Context, id int64) error {
	return del(ctx, a.c, fmt.Sprintf("/customers/%d/", id))
}

// ResellersAPI wraps the upstream /resellers/ resource.
type ResellersAPI struct {
	c *Client
}

func (a *ResellersAPI) List(ctx context.Context) ([]entity.Reseller, error) {
	return list[entity.Reseller](ctx, a.c, "/resellers/")
}

func (a *ResellersAPI) Get(ctx context.Context, id int64) (*entity.Reseller, error) {
	return get[entity.Reseller](ctx, a.c, fmt.Sprintf("/resellers/%d/", id))
}

func (a *ResellersAPI) Create(ctx context.Context, body any) (*entity.Reseller, error) {
	return create[entity.Reseller](ctx, a.c, "/resellers/", body)
}

func (a *ResellersAPI) Update(ctx context.Context, id int64, body any) (*entity.Reseller, error) {
	return update[entity.Reseller](ctx, a.c, fmt.Sprintf("/resellers/%d/", id), body)
}

func (a *ResellersAPI) Delete(ctx context.Context, id int64) error {
	return del(ctx, a.c, fmt.Sprintf("/resellers/%d/", id))
}
