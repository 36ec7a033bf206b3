package upstream

import (
	"context"
	"fmt"
	"net/url"

	"github.com/solarline/pos-gateway/internal/domain/entity"
)

// ProductsAPI wraps the upstream /products/ resource.
type ProductsAPI struct {
	c *Client
}

func (p *ProductsAPI) List(ctx context.Context) ([]entity.Product, error) {
	return list[entity.Product](ctx, p.c, "/products/")
}

func (p *ProductsAPI) Search(ctx context.Context, query string) ([]entity.Product, error) {
	return list[entity.Product](ctx, p.c, "/products/?search="+url.QueryEscape(query))
}

func (p *ProductsAPI) Get(ctx context.Context, id int64) (*entity.Product, error) {
	return get[entity.Product](ctx, p.c, fmt.Sprintf("/products/%d/", id))
}

func (p *ProductsAPI) Create(ctx context.Context, body any) (*entity.Product, error) {
	return create[entity.Product](ctx, p.c, "/products/", body)
}

func (p *ProductsAPI) Update(ctx context.Context, id int64, body any) (*entity.Product, error) {
	return update[entity.Product](ctx, p.c, fmt.Sprintf("/products/%d/", id), body)
}

func (p *ProductsAPI) Delete(ctx context.Context, id int64) error {
	return del(ctx, p.c, fmt.Sprintf("/products/%d/", id))
}

// CategoriesAPI wraps /categories/ and /expense-categories/.
type CategoriesAPI struct {
	c *Client
}

func (a *CategoriesAPI) List(ctx context.Context) ([]entity.Category, error) {
	return list[entity.Category](ctx, a.c, "/categories/")
}

func (a *CategoriesAPI) Create(ctx context.Context, body any) (*entity.Category, error) {
	return create[entity.Category](ctx, a.c, "/categories/", body)
}

func (a *CategoriesAPI) Update(ctx context.Context, id int64, body any) (*entity.Category, error) {
	return update[entity.Category](ctx, a.c, fmt.Sprintf("/categories/%d/", id), body)
}

func (a *CategoriesAPI) Delete(ctx context.Context, id int64) error {
	return del(ctx, a.c, fmt.Sprintf("/categories/%d/", id))
}

func (a *CategoriesAPI) ListExpenseCategories(ctx context.Context) ([]entity.ExpenseCategory, error) {
	return list[entity.ExpenseCategory](ctx, a.c, "/expense-categories/")
}

func (a *CategoriesAPI) CreateExpenseCategory(ctx context.Context, body any) (*entity.ExpenseCategory, error) {
	return create[entity.ExpenseCategory](ctx, a.c, "/expense-categories/", body)
}
