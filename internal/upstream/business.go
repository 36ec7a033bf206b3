package upstream

import (
	"context"
	"fmt"

	"github.com/solarline/pos-gateway/internal/domain/entity"
)

// BusinessAPI wraps the upstream /business-profile/ resource. The
// upstream exposes it as a list endpoint holding at most one profile.
type BusinessAPI struct {
	c *Client
}

// Profile returns the business profile, or nil when none is configured.
func (a *BusinessAPI) Profile(ctx context.Context) (*entity.BusinessProfile, error) {
	profiles, err := list[entity.BusinessProfile](ctx, a.c, "/business-profile/")
	if err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, nil
	}
	return &profiles[0], nil
}

func (a *BusinessAPI) Update(ctx context.Context, id int64, body any) (*entity.BusinessProfile, error) {
	return update[entity.BusinessProfile](ctx, a.c, fmt.Sprintf("/business-profile/%d/", id), body)
}

func (a *BusinessAPI) Create(ctx context.Context, body any) (*entity.BusinessProfile, error) {
	return create[entity.BusinessProfile](ctx, a.c, "/business-profile/", body)
}
