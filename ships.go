package spacetraders

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/spacetraders/client-go/internal/api"
)

// ShipsService manages the user's fleet.
type ShipsService struct {
	api *api.Client
}

// List returns all ships the user owns.
func (s *ShipsService) List(ctx context.Context) ([]Ship, error) {
	var result struct {
		Ships []Ship `json:"ships"`
	}
	if err := s.api.Do(ctx, http.MethodGet, "my/ships", nil, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return result.Ships, nil
}

// Get returns info on one owned ship.
func (s *ShipsService) Get(ctx context.Context, shipID string) (*Ship, error) {
	path := fmt.Sprintf("my/ships/%s", url.PathEscape(shipID))

	var result struct {
		Ship Ship `json:"ship"`
	}
	if err := s.api.Do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return &result.Ship, nil
}

// BuyShipResult is the outcome of buying a ship.
type BuyShipResult struct {
	Credits int  `json:"credits"`
	Ship    Ship `json:"ship"`
}

// Buy purchases a ship of the given type at the given location. Certain
// ship types are only sold at specific locations.
func (s *ShipsService) Buy(ctx context.Context, location, shipType string) (*BuyShipResult, error) {
	body := map[string]any{
		"location": location,
		"type":     shipType,
	}

	var result BuyShipResult
	if err := s.api.Do(ctx, http.MethodPost, "my/ships", nil, body, &result); err != nil {
		return nil, wrapError(err)
	}
	return &result, nil
}

// JettisonResult reports the quantity of the good left on board.
type JettisonResult struct {
	ShipID            string `json:"shipId"`
	Good              string `json:"good"`
	QuantityRemaining int    `json:"quantityRemaining"`
}

// Jettison dumps cargo overboard.
func (s *ShipsService) Jettison(ctx context.Context, shipID, good string, quantity int) (*JettisonResult, error) {
	path := fmt.Sprintf("my/ships/%s/jettison", url.PathEscape(shipID))
	body := map[string]any{
		"good":     good,
		"quantity": quantity,
	}

	var result JettisonResult
	if err := s.api.Do(ctx, http.MethodPost, path, nil, body, &result); err != nil {
		return nil, wrapError(err)
	}
	return &result, nil
}

// TransferResult holds the updated state of both ships after a transfer.
type TransferResult struct {
	FromShip Ship `json:"fromShip"`
	ToShip   Ship `json:"toShip"`
}

// Transfer moves cargo between two of the user's ships at the same
// location.
func (s *ShipsService) Transfer(ctx context.Context, fromShipID, toShipID, good string, quantity int) (*TransferResult, error) {
	path := fmt.Sprintf("my/ships/%s/transfer", url.PathEscape(fromShipID))
	body := map[string]any{
		"toShipId": toShipID,
		"good":     good,
		"quantity": quantity,
	}

	var result TransferResult
	if err := s.api.Do(ctx, http.MethodPost, path, nil, body, &result); err != nil {
		return nil, wrapError(err)
	}
	return &result, nil
}

// Scrap sells the ship for a small amount of credits. Ships can only be
// scrapped at a location with a shipyard.
func (s *ShipsService) Scrap(ctx context.Context, shipID string) error {
	path := fmt.Sprintf("my/ships/%s", url.PathEscape(shipID))
	if err := s.api.Do(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return wrapError(err)
	}
	return nil
}

// Scan executes a ship scan in the given mode: APPROACHING_SHIPS,
// DEPARTING_SHIPS, SYSTEM, or WAYPOINT.
func (s *ShipsService) Scan(ctx context.Context, shipSymbol, mode string) (json.RawMessage, error) {
	path := fmt.Sprintf("my/ships/%s/scan", url.PathEscape(shipSymbol))
	body := map[string]any{"mode": mode}

	var result json.RawMessage
	if err := s.api.Do(ctx, http.MethodPost, path, nil, body, &result); err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// ScanCooldown reports how long the ship must wait before scanning again.
func (s *ShipsService) ScanCooldown(ctx context.Context, shipSymbol string) (json.RawMessage, error) {
	path := fmt.Sprintf("my/ships/%s/scan", url.PathEscape(shipSymbol))

	var result json.RawMessage
	if err := s.api.Do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}
