package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/solarline/pos-gateway/internal/domain/entity"
)

// NotificationsAPI wraps the upstream /notifications/ resource.
type NotificationsAPI struct {
	c *Client
}

func (a *NotificationsAPI) List(ctx context.Context) ([]entity.Notification, error) {
	return list[entity.Notification](ctx, a.c, "/notifications/")
}

func (a *NotificationsAPI) MarkRead(ctx context.Context, id int64) (*entity.Notification, error) {
	return patch[entity.Notification](ctx, a.c, fmt.Sprintf("/notifications/%d/", id), map[string]bool{"is_read": true})
}

func (a *NotificationsAPI) MarkAllRead(ctx context.Context) error {
	return a.c.do(ctx, http.MethodPost, "/notifications/mark_all_read/", nil, nil)
}

func (a *NotificationsAPI) Delete(ctx context.Context, id int64) error {
	return del(ctx, a.c, fmt.Sprintf("/notifications/%d/", id))
}

func (a *NotificationsAPI) DeleteAll(ctx context.Context) error {
	return a.c.do(ctx, http.MethodDelete, "/notifications/delete_all/", nil, nil)
}

// CreateTest asks the upstream to seed sample notifications.
func (a *NotificationsAPI) CreateTest(ctx context.Context) error {
	return a.c.do(ctx, http.MethodPost, "/notifications/create_test_notifications/", nil, nil)
}
