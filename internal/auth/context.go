package auth

import "context"

type contextKey struct{}

// WithState attaches a session's auth state to the request context.
func WithState(ctx context.Context, state *State) context.Context {
	return context.WithValue(ctx, contextKey{}, state)
}

// StateFromContext returns the auth state attached to the context, or nil.
func StateFromContext(ctx context.Context) *State {
	state, _ := ctx.Value(contextKey{}).(*State)
	return state
}

// TokenFromContext returns the upstream token for the request, or "" when
// the request is unauthenticated.
func TokenFromContext(ctx context.Context) string {
	if state := StateFromContext(ctx); state != nil {
		return state.Token()
	}
	return ""
}
