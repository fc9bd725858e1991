package spacetraders

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/spacetraders/client-go/internal/api"
)

// TradeService buys and sells cargo at v2 marketplaces.
type TradeService struct {
	api *api.Client
}

// PurchaseCargo buys units of a trade good into the ship's cargo. The ship
// must be docked at a waypoint selling the good.
func (s *TradeService) PurchaseCargo(ctx context.Context, shipSymbol, tradeSymbol string, units int) (json.RawMessage, error) {
	return s.post(ctx, shipSymbol, "purchase", tradeSymbol, units)
}

// SellCargo sells units of a trade good out of the ship's cargo.
func (s *TradeService) SellCargo(ctx context.Context, shipSymbol, tradeSymbol string, units int) (json.RawMessage, error) {
	return s.post(ctx, shipSymbol, "sell", tradeSymbol, units)
}

func (s *TradeService) post(ctx context.Context, shipSymbol, action, tradeSymbol string, units int) (json.RawMessage, error) {
	path := fmt.Sprintf("my/ships/%s/%s", url.PathEscape(shipSymbol), action)
	body := map[string]any{
		"tradeSymbol": tradeSymbol,
		"units":       units,
	}

	var result json.RawMessage
	if err := s.api.Do(ctx, http.MethodPost, path, nil, body, &result); err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}
