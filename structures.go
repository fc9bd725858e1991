package spacetraders

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/spacetraders/client-go/internal/api"
)

// StructuresService manages built structures. Structure lookups and
// deposits exist in a user-owned and a public variant; the userOwned
// parameter picks the endpoint.
type StructuresService struct {
	api *api.Client
}

// Create builds a new structure at the location. Only certain structure
// types can be built at a given location.
func (s *StructuresService) Create(ctx context.Context, location, structureType string) (json.RawMessage, error) {
	body := map[string]any{
		"location": location,
		"type":     structureType,
	}

	var result json.RawMessage
	if err := s.api.Do(ctx, http.MethodPost, "my/structures", nil, body, &result); err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// Get returns info about a structure.
func (s *StructuresService) Get(ctx context.Context, structureID string, userOwned bool) (*Structure, error) {
	path := fmt.Sprintf("structures/%s", url.PathEscape(structureID))
	if userOwned {
		path = "my/" + path
	}

	var result struct {
		Structure Structure `json:"structure"`
	}
	if err := s.api.Do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return &result.Structure, nil
}

// List returns the structures the user owns.
func (s *StructuresService) List(ctx context.Context) ([]Structure, error) {
	var result struct {
		Structures []Structure `json:"structures"`
	}
	if err := s.api.Do(ctx, http.MethodGet, "my/structures", nil, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return result.Structures, nil
}

// Deposit moves goods from a ship into a structure. The ship must be at
// the structure's location.
func (s *StructuresService) Deposit(ctx context.Context, structureID, shipID, good string, quantity int, userOwned bool) (json.RawMessage, error) {
	path := fmt.Sprintf("structures/%s/deposit", url.PathEscape(structureID))
	if userOwned {
		path = "my/" + path
	}
	body := map[string]any{
		"shipId":   shipID,
		"good":     good,
		"quantity": quantity,
	}

	var result json.RawMessage
	if err := s.api.Do(ctx, http.MethodPost, path, nil, body, &result); err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// Transfer moves goods from one of the user's structures into a docked
// ship.
func (s *StructuresService) Transfer(ctx context.Context, structureID, shipID, good string, quantity int) (json.RawMessage, error) {
	path := fmt.Sprintf("my/structures/%s/transfer", url.PathEscape(structureID))
	body := map[string]any{
		"shipId":   shipID,
		"good":     good,
		"quantity": quantity,
	}

	var result json.RawMessage
	if err := s.api.Do(ctx, http.MethodPost, path, nil, body, &result); err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}
