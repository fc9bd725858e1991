package spacetraders

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/spacetraders/client-go/internal/api"
	"github.com/spacetraders/client-go/internal/ratelimit"
)

// Client is the entry point to the game API. Every service on it shares one
// dispatcher, so they all use the same token, base URL, and rate limiter.
type Client struct {
	api      *api.Client
	username string

	Account        *AccountService
	FlightPlans    *FlightPlansService
	Game           *GameService
	Leaderboard    *LeaderboardService
	Loans          *LoansService
	Locations      *LocationsService
	PurchaseOrders *PurchaseOrdersService
	SellOrders     *SellOrdersService
	Ships          *ShipsService
	Structures     *StructuresService
	Systems        *SystemsService
	Types          *TypesService
	WarpJump       *WarpJumpService

	// v2 surface, meaningful with WithV2.
	Agent      *AgentService
	Contracts  *ContractsService
	Extract    *ExtractService
	Markets    *MarketsService
	Navigation *NavigationService
	Shipyard   *ShipyardService
	Trade      *TradeService
}

// New creates a client for the given account. When token is empty, one is
// claimed for the username before any service is built, so every service
// dispatches with the claimed token.
func New(username, token string, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		timeout: api.DefaultTimeout,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.baseURL == "" {
		cfg.baseURL = api.DefaultBaseURL
		if cfg.v2 {
			cfg.baseURL = api.V2BaseURL
		}
	}
	if cfg.httpClient == nil {
		cfg.httpClient = &http.Client{Timeout: cfg.timeout}
	}

	limiter := ratelimit.New(cfg.quotas)

	if token == "" {
		if username == "" {
			return nil, ErrMissingUsername
		}

		claimClient, err := api.NewClient(api.Config{
			BaseURL:    cfg.baseURL,
			HTTPClient: cfg.httpClient,
			Limiter:    limiter,
			Logger:     cfg.logger,
		})
		if err != nil {
			return nil, err
		}

		ctx, cancel := context.WithTimeout(context.Background(), cfg.timeout)
		defer cancel()

		claim, err := claimClient.ClaimToken(ctx, username)
		if err != nil {
			return nil, wrapError(err)
		}
		token = claim.Token
	}

	apiClient, err := api.NewClient(api.Config{
		BaseURL:    cfg.baseURL,
		Token:      token,
		HTTPClient: cfg.httpClient,
		Limiter:    limiter,
		Logger:     cfg.logger,
	})
	if err != nil {
		return nil, err
	}

	c := &Client{
		api:      apiClient,
		username: username,
	}
	c.Account = &AccountService{api: apiClient}
	c.FlightPlans = &FlightPlansService{api: apiClient}
	c.Game = &GameService{api: apiClient}
	c.Leaderboard = &LeaderboardService{api: apiClient}
	c.Loans = &LoansService{api: apiClient}
	c.Locations = &LocationsService{api: apiClient}
	c.PurchaseOrders = &PurchaseOrdersService{api: apiClient}
	c.SellOrders = &SellOrdersService{api: apiClient}
	c.Ships = &ShipsService{api: apiClient}
	c.Structures = &StructuresService{api: apiClient}
	c.Systems = &SystemsService{api: apiClient}
	c.Types = &TypesService{api: apiClient}
	c.WarpJump = &WarpJumpService{api: apiClient}

	c.Agent = &AgentService{api: apiClient}
	c.Contracts = &ContractsService{api: apiClient}
	c.Extract = &ExtractService{api: apiClient}
	c.Markets = &MarketsService{api: apiClient}
	c.Navigation = &NavigationService{api: apiClient}
	c.Shipyard = &ShipyardService{api: apiClient}
	c.Trade = &TradeService{api: apiClient}

	return c, nil
}

// Username returns the account name the client was built with.
func (c *Client) Username() string {
	return c.username
}

// Token returns the bearer token in use, claimed or provided.
func (c *Client) Token() string {
	return c.api.Token()
}
