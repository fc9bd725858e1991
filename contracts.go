package spacetraders

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/spacetraders/client-go/internal/api"
)

// ContractsService handles v2 contracts.
type ContractsService struct {
	api *api.Client
}

// List returns all of the agent's contracts.
func (s *ContractsService) List(ctx context.Context) (json.RawMessage, error) {
	var result json.RawMessage
	if err := s.api.Do(ctx, http.MethodGet, "my/contracts", nil, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// Get returns the details of one contract.
func (s *ContractsService) Get(ctx context.Context, contractID string) (json.RawMessage, error) {
	path := fmt.Sprintf("my/contracts/%s", url.PathEscape(contractID))

	var result json.RawMessage
	if err := s.api.Do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// Accept accepts a contract.
func (s *ContractsService) Accept(ctx context.Context, contractID string) (json.RawMessage, error) {
	path := fmt.Sprintf("my/contracts/%s/accept", url.PathEscape(contractID))

	var result json.RawMessage
	if err := s.api.Do(ctx, http.MethodPost, path, nil, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// Deliver delivers cargo from the ship toward a contract.
func (s *ContractsService) Deliver(ctx context.Context, shipSymbol, contractID, tradeSymbol string, units int) (json.RawMessage, error) {
	path := fmt.Sprintf("my/ships/%s/deliver", url.PathEscape(shipSymbol))
	body := map[string]any{
		"contractId":  contractID,
		"tradeSymbol": tradeSymbol,
		"units":       units,
	}

	var result json.RawMessage
	if err := s.api.Do(ctx, http.MethodPost, path, nil, body, &result); err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}
