package spacetraders

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/spacetraders/client-go/internal/api"
)

// AgentService manages the v2 agent. The v2 alpha schema is still moving,
// so v2 services return the raw JSON payload.
type AgentService struct {
	api *api.Client
}

// Details returns the agent's details.
func (s *AgentService) Details(ctx context.Context) (json.RawMessage, error) {
	var result json.RawMessage
	if err := s.api.Do(ctx, http.MethodGet, "my/agent", nil, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// Register creates a new agent with the given symbol and faction.
func (s *AgentService) Register(ctx context.Context, symbol, faction string) (json.RawMessage, error) {
	body := map[string]any{
		"symbol":  symbol,
		"faction": faction,
	}

	var result json.RawMessage
	if err := s.api.Do(ctx, http.MethodPost, "agents", nil, body, &result); err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}
