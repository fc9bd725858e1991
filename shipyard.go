package spacetraders

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/spacetraders/client-go/internal/api"
)

// ShipyardService browses v2 shipyards and buys ships from them.
type ShipyardService struct {
	api *api.Client
}

// Purchase buys the ship listed under the given listing ID.
func (s *ShipyardService) Purchase(ctx context.Context, listingID string) (json.RawMessage, error) {
	body := map[string]any{"id": listingID}

	var result json.RawMessage
	if err := s.api.Do(ctx, http.MethodPost, "my/ships", nil, body, &result); err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// List returns the shipyards in the system.
func (s *ShipyardService) List(ctx context.Context, systemSymbol string) (json.RawMessage, error) {
	path := fmt.Sprintf("systems/%s/shipyards", url.PathEscape(systemSymbol))

	var result json.RawMessage
	if err := s.api.Do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// Details returns the details of the waypoint's shipyard.
func (s *ShipyardService) Details(ctx context.Context, systemSymbol, waypointSymbol string) (json.RawMessage, error) {
	path := fmt.Sprintf("systems/%s/shipyards/%s", url.PathEscape(systemSymbol), url.PathEscape(waypointSymbol))

	var result json.RawMessage
	if err := s.api.Do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// Listings returns the ships for sale at the waypoint's shipyard.
func (s *ShipyardService) Listings(ctx context.Context, systemSymbol, waypointSymbol string) (json.RawMessage, error) {
	path := fmt.Sprintf("systems/%s/shipyards/%s/ships", url.PathEscape(systemSymbol), url.PathEscape(waypointSymbol))

	var result json.RawMessage
	if err := s.api.Do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}
