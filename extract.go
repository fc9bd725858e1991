package spacetraders

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/spacetraders/client-go/internal/api"
)

// ExtractService mines resources from v2 waypoints.
type ExtractService struct {
	api *api.Client
}

// Extract pulls resources from the waypoint into the ship. Pass a survey
// to target specific yields; the entire survey must be sent because it
// carries a signature the backend verifies. A nil survey extracts blind.
func (s *ExtractService) Extract(ctx context.Context, shipSymbol string, survey any) (json.RawMessage, error) {
	path := fmt.Sprintf("my/ships/%s/extract", url.PathEscape(shipSymbol))

	var result json.RawMessage
	if err := s.api.Do(ctx, http.MethodPost, path, nil, survey, &result); err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// Cooldown returns the status of the last extraction.
func (s *ExtractService) Cooldown(ctx context.Context, shipSymbol string) (json.RawMessage, error) {
	path := fmt.Sprintf("my/ships/%s/extract", url.PathEscape(shipSymbol))

	var result json.RawMessage
	if err := s.api.Do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// Survey surveys the waypoint the ship is at, producing deposits that can
// target later extractions.
func (s *ExtractService) Survey(ctx context.Context, shipSymbol string) (json.RawMessage, error) {
	path := fmt.Sprintf("my/ships/%s/survey", url.PathEscape(shipSymbol))

	var result json.RawMessage
	if err := s.api.Do(ctx, http.MethodPost, path, nil, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// SurveyCooldown returns the cooldown before the ship may survey again, or
// a not-found error when no cooldown is active.
func (s *ExtractService) SurveyCooldown(ctx context.Context, shipSymbol string) (json.RawMessage, error) {
	path := fmt.Sprintf("my/ships/%s/survey", url.PathEscape(shipSymbol))

	var result json.RawMessage
	if err := s.api.Do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}
