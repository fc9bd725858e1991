package spacetraders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// newTestClient builds a client pointed at a test server, with the rate
// limiter opened wide so tests never sleep.
func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := New("testuser", "test-token",
		WithBaseURL(srv.URL),
		WithRateLimit(CategoryAccount, 1000, time.Second),
		WithRateLimit(CategoryGame, 1000, time.Second),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return client
}

func TestNewWithToken(t *testing.T) {
	client, err := New("testuser", "test-token")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := client.Username(); got != "testuser" {
		t.Errorf("Username() = %q, want %q", got, "testuser")
	}
	if got := client.Token(); got != "test-token" {
		t.Errorf("Token() = %q, want %q", got, "test-token")
	}
	if client.Ships == nil || client.Loans == nil || client.Systems == nil {
		t.Error("expected services to be initialized")
	}
	if client.Agent == nil || client.Navigation == nil {
		t.Error("expected v2 services to be initialized")
	}
}

func TestNewClaimsToken(t *testing.T) {
	var claims int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/users/bob/claim" {
			if r.Method != http.MethodPost {
				t.Errorf("claim method = %s, want POST", r.Method)
			}
			if r.Header.Get("Authorization") != "" {
				t.Error("claim request should not carry a token")
			}
			claims++
			json.NewEncoder(w).Encode(map[string]any{
				"token": "claimed-token",
				"user":  map[string]any{"username": "bob", "credits": 0},
			})
			return
		}
		if got := r.Header.Get("Authorization"); got != "Bearer claimed-token" {
			t.Errorf("Authorization = %q, want claimed token", got)
		}
		json.NewEncoder(w).Encode(map[string]any{"status": "ok"})
	}))
	defer srv.Close()

	client, err := New("bob", "", WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if claims != 1 {
		t.Errorf("claim requests = %d, want 1", claims)
	}
	if got := client.Token(); got != "claimed-token" {
		t.Errorf("Token() = %q, want %q", got, "claimed-token")
	}

	// Subsequent calls dispatch with the claimed token.
	if _, err := client.Game.Status(context.Background()); err != nil {
		t.Fatalf("Status() error = %v", err)
	}
}

func TestNewRequiresUsernameWithoutToken(t *testing.T) {
	_, err := New("", "")
	if !errors.Is(err, ErrMissingUsername) {
		t.Fatalf("New() error = %v, want ErrMissingUsername", err)
	}
}

func TestNewClaimFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "Username has already been taken.", "code": 40901},
		})
	}))
	defer srv.Close()

	_, err := New("bob", "", WithBaseURL(srv.URL))
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("New() error = %v, want ErrConflict", err)
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("New() error type = %T, want *APIError", err)
	}
	if apiErr.Code != 40901 {
		t.Errorf("Code = %d, want 40901", apiErr.Code)
	}
}
