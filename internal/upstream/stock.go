package upstream

import (
	"context"
	"fmt"

	"github.com/solarline/pos-gateway/internal/domain/entity"
)

// StockAPI wraps the upstream stock movement and stock take resources.
type StockAPI struct {
	c *Client
}

func (a *StockAPI) Movements(ctx context.Context) ([]entity.StockMovement, error) {
	return list[entity.StockMovement](ctx, a.c, "/stock-movements/")
}

func (a *StockAPI) CreateMovement(ctx context.Context, body any) (*entity.StockMovement, error) {
	return create[entity.StockMovement](ctx, a.c, "/stock-movements/", body)
}

func (a *StockAPI) Takes(ctx context.Context) ([]entity.StockTake, error) {
	return list[entity.StockTake](ctx, a.c, "/stock-takes/")
}

func (a *StockAPI) CreateTake(ctx context.Context, body any) (*entity.StockTake, error) {
	return create[entity.StockTake](ctx, a.c, "/stock-takes/", body)
}

func (a *StockAPI) DeleteTake(ctx context.Context, id int64) error {
	return del(ctx, a.c, fmt.Sprintf("/stock-takes/%d/", id))
}
