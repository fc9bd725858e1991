package spacetraders

import (
	"context"
	"net/http"

	"github.com/spacetraders/client-go/internal/api"
)

// GameService checks game-wide state.
type GameService struct {
	api *api.Client
}

// Status reports whether the game is up.
func (s *GameService) Status(ctx context.Context) (string, error) {
	var result struct {
		Status string `json:"status"`
	}
	if err := s.api.Do(ctx, http.MethodGet, "game/status", nil, nil, &result); err != nil {
		return "", wrapError(err)
	}
	return result.Status, nil
}

// LeaderboardService ranks players by net worth.
type LeaderboardService struct {
	api *api.Client
}

// NetWorthResult holds the top players and the user's own standing.
type NetWorthResult struct {
	NetWorth     []NetWorthEntry `json:"netWorth"`
	UserNetWorth NetWorthEntry   `json:"userNetWorth"`
}

// NetWorth returns the wealthiest players and the user's net worth.
func (s *LeaderboardService) NetWorth(ctx context.Context) (*NetWorthResult, error) {
	var result NetWorthResult
	if err := s.api.Do(ctx, http.MethodGet, "game/leaderboard/net-worth", nil, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return &result, nil
}
