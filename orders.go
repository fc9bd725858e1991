package spacetraders

import (
	"context"
	"net/http"

	"github.com/spacetraders/client-go/internal/api"
)

// OrderResult is the outcome of a purchase or sell order: the user's
// remaining credits, the order just made, and the ship's updated state.
type OrderResult struct {
	Credits int   `json:"credits"`
	Order   Order `json:"order"`
	Ship    Ship  `json:"ship"`
}

// PurchaseOrdersService buys goods at the ship's current location.
type PurchaseOrdersService struct {
	api *api.Client
}

// Create places a purchase order loading the good onto the ship.
func (s *PurchaseOrdersService) Create(ctx context.Context, shipID, good string, quantity int) (*OrderResult, error) {
	body := map[string]any{
		"shipId":   shipID,
		"good":     good,
		"quantity": quantity,
	}

	var result OrderResult
	if err := s.api.Do(ctx, http.MethodPost, "my/purchase-orders", nil, body, &result); err != nil {
		return nil, wrapError(err)
	}
	return &result, nil
}

// SellOrdersService sells goods at the ship's current location.
type SellOrdersService struct {
	api *api.Client
}

// Create places a sell order offloading the good from the ship.
func (s *SellOrdersService) Create(ctx context.Context, shipID, good string, quantity int) (*OrderResult, error) {
	body := map[string]any{
		"shipId":   shipID,
		"good":     good,
		"quantity": quantity,
	}

	var result OrderResult
	if err := s.api.Do(ctx, http.MethodPost, "my/sell-orders", nil, body, &result); err != nil {
		return nil, wrapError(err)
	}
	return &result, nil
}
