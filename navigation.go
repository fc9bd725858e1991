package spacetraders

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/spacetraders/client-go/internal/api"
)

// NavigationService moves v2 ships between waypoints and systems.
type NavigationService struct {
	api *api.Client
}

// Dock docks the ship at its current waypoint.
func (s *NavigationService) Dock(ctx context.Context, shipSymbol string) (json.RawMessage, error) {
	return s.post(ctx, shipSymbol, "dock", nil)
}

// Orbit moves the ship into orbit around its current waypoint.
func (s *NavigationService) Orbit(ctx context.Context, shipSymbol string) (json.RawMessage, error) {
	return s.post(ctx, shipSymbol, "orbit", nil)
}

// Jump jumps the ship to another system. The ship must carry a jump drive.
func (s *NavigationService) Jump(ctx context.Context, shipSymbol, destination string) (json.RawMessage, error) {
	return s.post(ctx, shipSymbol, "jump", map[string]any{"destination": destination})
}

// JumpCooldown returns the cooldown before the ship may jump again.
func (s *NavigationService) JumpCooldown(ctx context.Context, shipSymbol string) (json.RawMessage, error) {
	return s.get(ctx, shipSymbol, "jump")
}

// Refuel fills the ship's fuel tank from the local market.
func (s *NavigationService) Refuel(ctx context.Context, shipSymbol string) (json.RawMessage, error) {
	return s.post(ctx, shipSymbol, "refuel", nil)
}

// Navigate flies the ship to a waypoint within its current system.
func (s *NavigationService) Navigate(ctx context.Context, shipSymbol, destination string) (json.RawMessage, error) {
	return s.post(ctx, shipSymbol, "navigate", map[string]any{"destination": destination})
}

// Status returns the ship's current navigation state.
func (s *NavigationService) Status(ctx context.Context, shipSymbol string) (json.RawMessage, error) {
	return s.get(ctx, shipSymbol, "navigate")
}

func (s *NavigationService) post(ctx context.Context, shipSymbol, action string, body any) (json.RawMessage, error) {
	path := fmt.Sprintf("my/ships/%s/%s", url.PathEscape(shipSymbol), action)

	var result json.RawMessage
	if err := s.api.Do(ctx, http.MethodPost, path, nil, body, &result); err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

func (s *NavigationService) get(ctx context.Context, shipSymbol, action string) (json.RawMessage, error) {
	path := fmt.Sprintf("my/ships/%s/%s", url.PathEscape(shipSymbol), action)

	var result json.RawMessage
	if err := s.api.Do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}
