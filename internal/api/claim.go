package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// ClaimTokenResult is the response from claiming a token for a username.
type ClaimTokenResult struct {
	Token string          `json:"token"`
	User  json.RawMessage `json:"user"`
}

// ClaimToken registers the username with the game and returns its bearer
// token. The claim endpoint is the one call that takes no authentication.
func (c *Client) ClaimToken(ctx context.Context, username string) (*ClaimTokenResult, error) {
	path := fmt.Sprintf("users/%s/claim", url.PathEscape(username))

	var result ClaimTokenResult
	if err := c.Do(ctx, http.MethodPost, path, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
