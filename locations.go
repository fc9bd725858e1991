package spacetraders

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/spacetraders/client-go/internal/api"
)

// LocationsService reads locations and their marketplaces.
type LocationsService struct {
	api *api.Client
}

// Get returns info on the location with the given symbol, e.g. OE-PM.
func (s *LocationsService) Get(ctx context.Context, symbol string) (*Location, error) {
	path := fmt.Sprintf("locations/%s", url.PathEscape(symbol))

	var result struct {
		Location Location `json:"location"`
	}
	if err := s.api.Do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return &result.Location, nil
}

// Ships returns the ships docked at the location.
func (s *LocationsService) Ships(ctx context.Context, symbol string) ([]DockedShip, error) {
	path := fmt.Sprintf("locations/%s/ships", url.PathEscape(symbol))

	var result struct {
		Ships []DockedShip `json:"ships"`
	}
	if err := s.api.Do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return result.Ships, nil
}

// Marketplace returns the goods traded at the location.
func (s *LocationsService) Marketplace(ctx context.Context, symbol string) ([]MarketplaceGood, error) {
	path := fmt.Sprintf("locations/%s/marketplace", url.PathEscape(symbol))

	var result struct {
		Marketplace []MarketplaceGood `json:"marketplace"`
	}
	if err := s.api.Do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return result.Marketplace, nil
}
