package spacetraders

import (
	"context"
	"net/http"

	"github.com/spacetraders/client-go/internal/api"
)

// AccountService reads the user's account record.
type AccountService struct {
	api *api.Client
}

// Info returns the user's account details: credits, ships, and loans.
func (s *AccountService) Info(ctx context.Context) (*User, error) {
	var result struct {
		User User `json:"user"`
	}
	if err := s.api.Do(ctx, http.MethodGet, "my/account", nil, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return &result.User, nil
}
