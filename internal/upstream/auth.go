package upstream

import (
	"context"
	"net/http"

	"github.com/solarline/pos-gateway/internal/domain/entity"
)

// AuthAPI wraps the upstream /auth/ endpoints.
type AuthAPI struct {
	c *Client
}

// LoginResult is the upstream response to a successful credential exchange.
type LoginResult struct {
	User  entity.User `json:"user"`
	Token string      `json:"token"`
}

// Login exchanges credentials for an API token.
func (a *AuthAPI) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	body := map[string]string{"username": username, "password": password}
	var out LoginResult
	if err := a.c.do(ctx, http.MethodPost, "/auth/login/", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout invalidates the upstream token. Best-effort: the session is
// revoked locally regardless of the outcome.
func (a *AuthAPI) Logout(ctx context.Context) error {
	return a.c.do(ctx, http.MethodPost, "/auth/logout/", nil, nil)
}
