package spacetraders

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/spacetraders/client-go/internal/api"
)

// LoansService manages the user's loans.
type LoansService struct {
	api *api.Client
}

// List returns the user's loans.
func (s *LoansService) List(ctx context.Context) ([]Loan, error) {
	var result struct {
		Loans []Loan `json:"loans"`
	}
	if err := s.api.Do(ctx, http.MethodGet, "my/loans", nil, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return result.Loans, nil
}

// Request takes out a new loan of the given type, e.g. STARTUP.
func (s *LoansService) Request(ctx context.Context, loanType string) (json.RawMessage, error) {
	body := map[string]any{"type": loanType}

	var result json.RawMessage
	if err := s.api.Do(ctx, http.MethodPost, "my/loans", nil, body, &result); err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// PayOff pays off the loan with the given ID.
func (s *LoansService) PayOff(ctx context.Context, loanID string) (json.RawMessage, error) {
	path := fmt.Sprintf("my/loans/%s", url.PathEscape(loanID))

	var result json.RawMessage
	if err := s.api.Do(ctx, http.MethodPut, path, nil, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}
