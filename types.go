package spacetraders

import (
	"context"
	"net/http"
	"net/url"

	"github.com/spacetraders/client-go/internal/api"
)

// TypesService lists the kinds of things that exist in the game.
type TypesService struct {
	api *api.Client
}

// Goods returns all goods in the game.
func (s *TypesService) Goods(ctx context.Context) ([]Good, error) {
	var result struct {
		Goods []Good `json:"goods"`
	}
	if err := s.api.Do(ctx, http.MethodGet, "types/goods", nil, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return result.Goods, nil
}

// Loans returns all loan types available to take.
func (s *TypesService) Loans(ctx context.Context) ([]LoanType, error) {
	var result struct {
		Loans []LoanType `json:"loans"`
	}
	if err := s.api.Do(ctx, http.MethodGet, "types/loans", nil, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return result.Loans, nil
}

// Structures returns all structure types available to build.
func (s *TypesService) Structures(ctx context.Context) ([]StructureType, error) {
	var result struct {
		Structures []StructureType `json:"structures"`
	}
	if err := s.api.Do(ctx, http.MethodGet, "types/structures", nil, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return result.Structures, nil
}

// Ships returns all purchasable ship types, optionally filtered by class
// level, e.g. MK-II. The filter is only sent when non-empty.
func (s *TypesService) Ships(ctx context.Context, class string) ([]ShipListing, error) {
	var query url.Values
	if class != "" {
		query = url.Values{"class": {class}}
	}

	var result struct {
		Ships []ShipListing `json:"ships"`
	}
	if err := s.api.Do(ctx, http.MethodGet, "types/ships", query, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return result.Ships, nil
}
