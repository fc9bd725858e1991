package spacetraders

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/spacetraders/client-go/internal/api"
)

// WarpJumpService sends ships through warp jumps between systems.
type WarpJumpService struct {
	api *api.Client
}

// Attempt sends the ship through a warp jump.
func (s *WarpJumpService) Attempt(ctx context.Context, shipID string) (json.RawMessage, error) {
	body := map[string]any{"shipId": shipID}

	var result json.RawMessage
	if err := s.api.Do(ctx, http.MethodPost, "my/warp-jumps", nil, body, &result); err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}
