package upstream

import (
	"context"
	"fmt"

	"github.com/solarline/pos-gateway/internal/domain/entity"
)

// TransactionsAPI wraps the upstream /transactions/ resource.
type TransactionsAPI struct {
	c *Client
}

func (a *TransactionsAPI) List(ctx context.Context) ([]entity.Transaction, error) {
	return list[entity.Transaction](ctx, a.c, "/transactions/")
}

func (a *TransactionsAPI) Get(ctx context.Context, id int64) (*entity.Transaction, error) {
	return get[entity.Transaction](ctx, a.c, fmt.Sprintf("/transactions/%d/", id))
}

func (a *TransactionsAPI) Create(ctx context.Context, body any) (*entity.Transaction, error) {
	return create[entity.Transaction](ctx, a.c, "/transactions/", body)
}

func (a *TransactionsAPI) Update(ctx context.Context, id int64, body any) (*entity.Transaction, error) {
	return update[entity.Transaction](ctx, a.c, fmt.Sprintf("/transactions/%d/", id), body)
}

func (a *TransactionsAPI) Delete(ctx context.Context, id int64) error {
	return del(ctx, a.c, fmt.Sprintf("/transactions/%d/", id))
}

// ExpensesAPI wraps the upstream /expenses/ resource.
type ExpensesAPI struct {
	c *Client
}

func (a *ExpensesAPI) List(ctx context.Context) ([]entity.Expense, error) {
	return list[entity.Expense](ctx, a.c, "/expenses/")
}

func (a *ExpensesAPI) Get(ctx context.Context, id int64) (*entity.Expense, error) {
	return get[entity.Expense](ctx, a.c, fmt.Sprintf("/expenses/%d/", id))
}

func (a *ExpensesAPI) Create(ctx context.Context, body any) (*entity.Expense, error) {
	return create[entity.Expense](ctx, a.c, "/expenses/", body)
}

func (a *ExpensesAPI) Update(ctx context.Context, id int64, body any) (*entity.Expense, error) {
	return update[entity.Expense](ctx, a.c, fmt.Sprintf("/expenses/%d/", id), body)
}

func (a *ExpensesAPI) Delete(ctx context.Context, id int64) error {
	return del(ctx, a.c, fmt.Sprintf("/expenses/%d/", id))
}
