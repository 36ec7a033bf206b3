package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/solarline/pos-gateway/internal/auth"
	"github.com/solarline/pos-gateway/internal/config"
	"github.com/solarline/pos-gateway/internal/domain/entity"
	"github.com/solarline/pos-gateway/pkg/apperror"
)

func newClient(t *testing.T, handler http.Handler) (*Client, func()) {
	t.Helper()
	srv := httptest.NewServer(handler)
	c := New(config.UpstreamConfig{BaseURL: srv.URL, Timeout: 5 * time.Second})
	return c, srv.Close
}

func authedCtx(token string) context.Context {
	return auth.WithState(context.Background(), auth.NewState(token))
}

func TestTokenHeaderSentPerRequest(t *testing.T) {
	var gotAuth string
	c, closeFn := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]entity.Product{})
	}))
	defer closeFn()

	if _, err := c.Products.List(authedCtx("secret-token")); err != nil {
		t.Fatal(err)
	}
	if gotAuth != "Token secret-token" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Token secret-token")
	}

	// No state: no header instead of an empty one.
	if _, err := c.Products.List(context.Background()); err != nil {
		t.Fatal(err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization without state = %q, want empty", gotAuth)
	}
}

func TestLoginCookieNotReplayedAcrossSessions(t *testing.T) {
	var gotCookie string
	c, closeFn := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/login/" {
			// Django's login() view sets a session cookie alongside the token.
			http.SetCookie(w, &http.Cookie{Name: "sessionid", Value: "alice-session", Path: "/"})
			json.NewEncoder(w).Encode(map[string]any{
				"token": "tok-alice",
				"user":  map[string]any{"username": "alice"},
			})
			return
		}
		gotCookie = r.Header.Get("Cookie")
		json.NewEncoder(w).Encode([]entity.Product{})
	}))
	defer closeFn()

	if _, err := c.Auth.Login(context.Background(), "alice", "pw"); err != nil {
		t.Fatal(err)
	}

	// A different session's request must carry only its own token.
	if _, err := c.Products.List(authedCtx("tok-bob")); err != nil {
		t.Fatal(err)
	}
	if gotCookie != "" {
		t.Errorf("Cookie = %q, want none: one session's upstream cookie leaked into another's request", gotCookie)
	}
}

func TestListDecodesEnvelopeAndBareArray(t *testing.T) {
	products := []entity.Product{{ID: 1, Name: "Panel"}, {ID: 2, Name: "Inverter"}}

	cases := map[string]any{
		"envelope":          map[string]any{"count": 2, "results": products},
		"bare array":        products,
		"envelope no array": map[string]any{"detail": "weird"},
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			c, closeFn := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(payload)
			}))
			defer closeFn()

			got, err := c.Products.List(context.Background())
			if err != nil {
				t.Fatal(err)
			}
			switch name {
			case "envelope no array":
				if len(got) != 0 {
					t.Errorf("got %d products, want 0", len(got))
				}
			default:
				if len(got) != 2 || got[0].Name != "Panel" {
					t.Errorf("got %+v", got)
				}
			}
		})
	}
}

func TestUnauthorizedClearsStateOnce(t *testing.T) {
	var calls int32
	c, closeFn := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Invalid token."}`))
	}))
	defer closeFn()

	state := auth.NewState("expired")
	logouts := 0
	state.OnLogout(func() { logouts++ })
	ctx := auth.WithState(context.Background(), state)

	_, err := c.Products.List(ctx)
	if !errors.Is(err, apperror.ErrSessionExpired) {
		t.Fatalf("err = %v, want ErrSessionExpired", err)
	}
	if !state.Cleared() {
		t.Error("state not cleared after 401")
	}

	// Further calls fail the same way but never re-fire the logout.
	_, _ = c.Customers.List(ctx)
	_, _ = c.Expenses.List(ctx)
	if logouts != 1 {
		t.Errorf("logout fired %d times, want 1", logouts)
	}
	if atomic.LoadInt32(&calls) != 3 {
		t.Errorf("upstream saw %d calls, want 3 (no retry loop)", calls)
	}
}

func TestUpstreamErrorsAreHumanReadable(t *testing.T) {
	c, closeFn := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/products/1/":
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"detail":"Not found."}`))
		case "/customers/":
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"phone_no":["This field is required."]}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`<html>traceback</html>`))
		}
	}))
	defer closeFn()
	ctx := context.Background()

	_, err := c.Products.Get(ctx, 1)
	appErr := apperror.GetAppError(err)
	if appErr.Code != http.StatusNotFound || appErr.Message != "Not found." {
		t.Errorf("not found error = %+v", appErr)
	}

	_, err = c.Customers.Create(ctx, map[string]string{"name": "x"})
	appErr = apperror.GetAppError(err)
	if appErr.Code != http.StatusBadRequest {
		t.Errorf("bad request code = %d", appErr.Code)
	}
	if len(appErr.Errors) != 1 || appErr.Errors[0].Field != "phone_no" {
		t.Errorf("field errors = %+v", appErr.Errors)
	}

	_, err = c.Expenses.List(ctx)
	if !errors.Is(err, apperror.ErrUpstream) {
		t.Errorf("500 should map to ErrUpstream, got %v", err)
	}
}

func TestCollectionsActions(t *testing.T) {
	c, closeFn := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		switch r.URL.Path {
		case "/payment-collections/5/mark_paid/":
			json.NewEncoder(w).Encode(entity.PaymentCollection{ID: 5})
		case "/payment-collections/5/mark_collected/":
			json.NewEncoder(w).Encode(entity.PaymentCollection{ID: 5})
		default:
			http.NotFound(w, r)
		}
	}))
	defer closeFn()

	if _, err := c.Collections.MarkPaid(context.Background(), 5); err != nil {
		t.Errorf("mark_paid: %v", err)
	}
	if _, err := c.Collections.MarkCollected(context.Background(), 5); err != nil {
		t.Errorf("mark_collected: %v", err)
	}
}

func TestBusinessProfileListUnwrapsFirst(t *testing.T) {
	c, closeFn := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]entity.BusinessProfile{{
			ID:           1,
			BusinessName: "Solarline Supplies",
			ZimraTaxRate: decimal.NewFromInt(15),
		}})
	}))
	defer closeFn()

	profile, err := c.Business.Profile(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if profile == nil || profile.BusinessName != "Solarline Supplies" {
		t.Errorf("profile = %+v", profile)
	}
}

func TestBusinessProfileEmptyList(t *testing.T) {
	c, closeFn := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]entity.BusinessProfile{})
	}))
	defer closeFn()

	profile, err := c.Business.Profile(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if profile != nil {
		t.Errorf("profile = %+v, want nil when unconfigured", profile)
	}
}
