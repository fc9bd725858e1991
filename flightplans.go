package spacetraders

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/spacetraders/client-go/internal/api"
)

// FlightPlansService manages the user's flight plans.
type FlightPlansService struct {
	api *api.Client
}

// Get returns the details of a currently active flight plan.
func (s *FlightPlansService) Get(ctx context.Context, flightPlanID string) (*FlightPlan, error) {
	path := fmt.Sprintf("my/flight-plans/%s", url.PathEscape(flightPlanID))

	var result struct {
		FlightPlan FlightPlan `json:"flightPlan"`
	}
	if err := s.api.Do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return &result.FlightPlan, nil
}

// Create submits a new flight plan flying the ship to the destination.
func (s *FlightPlansService) Create(ctx context.Context, shipID, destination string) (*FlightPlan, error) {
	body := map[string]any{
		"shipId":      shipID,
		"destination": destination,
	}

	var result struct {
		FlightPlan FlightPlan `json:"flightPlan"`
	}
	if err := s.api.Do(ctx, http.MethodPost, "my/flight-plans", nil, body, &result); err != nil {
		return nil, wrapError(err)
	}
	return &result.FlightPlan, nil
}
