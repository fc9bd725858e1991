package spacetraders

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/spacetraders/client-go/internal/api"
)

// MarketsService reads v2 trade data and deploys communication relays.
type MarketsService struct {
	api *api.Client
}

// Deploy installs a communications relay at the ship's waypoint. The relay
// consumes one unit of the given trade good from the ship's cargo and makes
// the waypoint's market visible remotely.
func (s *MarketsService) Deploy(ctx context.Context, shipSymbol, tradeSymbol string) (json.RawMessage, error) {
	path := fmt.Sprintf("my/ships/%s/deploy", url.PathEscape(shipSymbol))
	body := map[string]any{"tradeSymbol": tradeSymbol}

	var result json.RawMessage
	if err := s.api.Do(ctx, http.MethodPost, path, nil, body, &result); err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// Imports returns the waypoints importing the trade good.
func (s *MarketsService) Imports(ctx context.Context, tradeSymbol string) (json.RawMessage, error) {
	path := fmt.Sprintf("trade/%s/imports", url.PathEscape(tradeSymbol))

	var result json.RawMessage
	if err := s.api.Do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// Exports returns the waypoints exporting the trade good.
func (s *MarketsService) Exports(ctx context.Context, tradeSymbol string) (json.RawMessage, error) {
	path := fmt.Sprintf("trade/%s/exports", url.PathEscape(tradeSymbol))

	var result json.RawMessage
	if err := s.api.Do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// Exchanges returns the waypoints exchanging the trade good.
func (s *MarketsService) Exchanges(ctx context.Context, tradeSymbol string) (json.RawMessage, error) {
	path := fmt.Sprintf("trade/%s/exchange", url.PathEscape(tradeSymbol))

	var result json.RawMessage
	if err := s.api.Do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// List returns the marketplaces in the system.
func (s *MarketsService) List(ctx context.Context, systemSymbol string) (json.RawMessage, error) {
	path := fmt.Sprintf("systems/%s/markets", url.PathEscape(systemSymbol))

	var result json.RawMessage
	if err := s.api.Do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// View returns the trade data of the waypoint's marketplace. Detailed data
// requires a ship or relay at the waypoint.
func (s *MarketsService) View(ctx context.Context, systemSymbol, waypointSymbol string) (json.RawMessage, error) {
	path := fmt.Sprintf("systems/%s/markets/%s", url.PathEscape(systemSymbol), url.PathEscape(waypointSymbol))

	var result json.RawMessage
	if err := s.api.Do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}
