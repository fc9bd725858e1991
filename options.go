package spacetraders

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/spacetraders/client-go/internal/ratelimit"
)

// Category groups related endpoints sharing one rate quota.
type Category = ratelimit.Category

// Rate limit categories.
const (
	// CategoryAccount covers account-mutating calls under my/ and users/.
	CategoryAccount = ratelimit.CategoryAccount
	// CategoryGame covers read-only game data lookups.
	CategoryGame = ratelimit.CategoryGame
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	logger     zerolog.Logger
	quotas     map[ratelimit.Category]ratelimit.Quota
	v2         bool
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL sets the API base URL. It overrides the URL implied by
// WithV2.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the timeout used for the automatic token claim and as
// the default HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithLogger sets the logger used for request debug logging.
// Default: a no-op logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithRateLimit overrides the admitted-request quota for a category: at
// most limit requests within any period-length sliding window. The exact
// quotas per category are tuning constants against the live service, not
// invariants; the default is 2 requests per 1.2 seconds.
func WithRateLimit(category Category, limit int, period time.Duration) Option {
	return func(c *clientConfig) {
		if c.quotas == nil {
			c.quotas = make(map[ratelimit.Category]ratelimit.Quota)
		}
		c.quotas[category] = ratelimit.Quota{Limit: limit, Period: period}
	}
}

// WithV2 points the client at the v2 alpha API.
func WithV2() Option {
	return func(c *clientConfig) {
		c.v2 = true
	}
}
