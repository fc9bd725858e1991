package spacetraders

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/spacetraders/client-go/internal/api"
)

// SystemsService reads star systems and what is in them.
type SystemsService struct {
	api *api.Client
}

// List returns all systems and their locations.
func (s *SystemsService) List(ctx context.Context) ([]System, error) {
	var result struct {
		Systems []System `json:"systems"`
	}
	if err := s.api.Do(ctx, http.MethodGet, "game/systems", nil, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return result.Systems, nil
}

// Get returns info on the system with the given symbol, e.g. OE.
func (s *SystemsService) Get(ctx context.Context, symbol string) (*System, error) {
	path := fmt.Sprintf("systems/%s", url.PathEscape(symbol))

	var result struct {
		System System `json:"system"`
	}
	if err := s.api.Do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return &result.System, nil
}

// Locations returns the locations in the system, optionally filtered by
// location type. The filter is only sent when non-empty.
func (s *SystemsService) Locations(ctx context.Context, symbol, locationType string) ([]Location, error) {
	path := fmt.Sprintf("systems/%s/locations", url.PathEscape(symbol))

	var query url.Values
	if locationType != "" {
		query = url.Values{"type": {locationType}}
	}

	var result struct {
		Locations []Location `json:"locations"`
	}
	if err := s.api.Do(ctx, http.MethodGet, path, query, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return result.Locations, nil
}

// FlightPlans returns the currently active flight plans in the system,
// across all accounts.
func (s *SystemsService) FlightPlans(ctx context.Context, symbol string) ([]FlightPlan, error) {
	path := fmt.Sprintf("systems/%s/flight-plans", url.PathEscape(symbol))

	var result struct {
		FlightPlans []FlightPlan `json:"flightPlans"`
	}
	if err := s.api.Do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return result.FlightPlans, nil
}

// DockedShips returns the ships docked in the system.
func (s *SystemsService) DockedShips(ctx context.Context, symbol string) ([]DockedShip, error) {
	path := fmt.Sprintf("systems/%s/ships", url.PathEscape(symbol))

	var result struct {
		Ships []DockedShip `json:"ships"`
	}
	if err := s.api.Do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return result.Ships, nil
}

// ShipListings returns the ships for sale in the system.
func (s *SystemsService) ShipListings(ctx context.Context, symbol string) ([]ShipListing, error) {
	path := fmt.Sprintf("systems/%s/ship-listings", url.PathEscape(symbol))

	var result struct {
		ShipListings []ShipListing `json:"shipListings"`
	}
	if err := s.api.Do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return result.ShipListings, nil
}

// Chart charts a new system or waypoint with the given ship. Returns the
// symbols that were charted.
func (s *SystemsService) Chart(ctx context.Context, shipSymbol string) (json.RawMessage, error) {
	path := fmt.Sprintf("my/ships/%s/chart", url.PathEscape(shipSymbol))

	var result json.RawMessage
	if err := s.api.Do(ctx, http.MethodPost, path, nil, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// Waypoints returns all waypoints in the system. The system must be
// charted or a ship must be present for details to come back.
func (s *SystemsService) Waypoints(ctx context.Context, systemSymbol string) (json.RawMessage, error) {
	path := fmt.Sprintf("systems/%s/waypoints", url.PathEscape(systemSymbol))

	var result json.RawMessage
	if err := s.api.Do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// Waypoint returns the details of one waypoint.
func (s *SystemsService) Waypoint(ctx context.Context, systemSymbol, waypointSymbol string) (json.RawMessage, error) {
	path := fmt.Sprintf("systems/%s/waypoints/%s",
		url.PathEscape(systemSymbol), url.PathEscape(waypointSymbol))

	var result json.RawMessage
	if err := s.api.Do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}
