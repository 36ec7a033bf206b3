package auth

import "sync"

// State is the single holder for a session's upstream API token. The
// upstream client reads it at dispatch time for every call instead of
// caching the header value, so a cleared state takes effect immediately.
//
// Clear is idempotent: logout subscribers fire exactly once per login,
// which keeps a burst of concurrent 401 responses from looping the
// forced-logout side effect.
type State struct {
	mu          sync.Mutex
	token       string
	cleared     bool
	subscribers []func()
}

// NewState creates an auth state holding the given upstream token.
func NewState(token string) *State {
	return &State{token: token}
}

// Token returns the current upstream token, or "" after Clear.
func (s *State) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// SetToken installs a fresh token and re-arms the logout notification.
func (s *State) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.cleared = false
}

// Clear drops the token and notifies logout subscribers. Repeated calls
// are no-ops until SetToken re-arms the state.
func (s *State) Clear() {
	s.mu.Lock()
	if s.cleared {
		s.mu.Unlock()
		return
	}
	s.token = ""
	s.cleared = true
	subs := make([]func(), len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

// Cleared reports whether the state has been cleared since the last SetToken.
func (s *State) Cleared() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cleared
}

// OnLogout registers a callback invoked once when the state is cleared.
func (s *State) OnLogout(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}
