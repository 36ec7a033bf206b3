package auth

import (
	"context"
	"sync"
	"testing"
)

func TestStateTokenLifecycle(t *testing.T) {
	s := NewState("abc")
	if got := s.Token(); got != "abc" {
		t.Errorf("Token() = %q", got)
	}

	s.Clear()
	if got := s.Token(); got != "" {
		t.Errorf("Token() after Clear = %q, want empty", got)
	}
	if !s.Cleared() {
		t.Error("Cleared() = false after Clear")
	}

	s.SetToken("def")
	if s.Cleared() {
		t.Error("SetToken should re-arm the state")
	}
	if got := s.Token(); got != "def" {
		t.Errorf("Token() = %q", got)
	}
}

func TestClearFiresSubscribersExactlyOnce(t *testing.T) {
	s := NewState("abc")
	var mu sync.Mutex
	calls := 0
	s.OnLogout(func() {
		mu.Lock()
		calls++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Clear()
		}()
	}
	wg.Wait()

	if calls != 1 {
		t.Errorf("logout fired %d times, want exactly once", calls)
	}

	// A fresh login re-arms the notification.
	s.SetToken("def")
	s.Clear()
	if calls != 2 {
		t.Errorf("logout after re-arm fired %d times total, want 2", calls)
	}
}

func TestContextRoundTrip(t *testing.T) {
	s := NewState("tok")
	ctx := WithState(context.Background(), s)

	if got := StateFromContext(ctx); got != s {
		t.Error("StateFromContext did not return the injected state")
	}
	if got := TokenFromContext(ctx); got != "tok" {
		t.Errorf("TokenFromContext = %q", got)
	}

	bare := context.Background()
	if StateFromContext(bare) != nil {
		t.Error("StateFromContext on bare context should be nil")
	}
	if TokenFromContext(bare) != "" {
		t.Error("TokenFromContext on bare context should be empty")
	}
}
