package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/spacetraders/client-go/internal/ratelimit"
)

// Base URLs for the game API.
const (
	DefaultBaseURL = "https://api.spacetraders.io/"
	V2BaseURL      = "https://v2-0-0.alpha.spacetraders.io/"
)

// DefaultTimeout is the default HTTP client timeout.
const DefaultTimeout = 30 * time.Second

// Client is the shared HTTP dispatcher. Every facade service sends its
// requests through one Client so they all share the same token, rate
// limiter, and transport.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	limiter    *ratelimit.Limiter
	logger     zerolog.Logger
}

// Config holds the dispatcher configuration. The token is fixed at
// construction; a client claiming a token builds a fresh Client afterwards
// instead of mutating this one.
type Config struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
	Limiter    *ratelimit.Limiter
	Logger     zerolog.Logger
}

// NewClient creates a dispatcher from the given config.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}

	c := &Client{
		baseURL:    cfg.BaseURL,
		token:      cfg.Token,
		httpClient: cfg.HTTPClient,
		limiter:    cfg.Limiter,
		logger:     cfg.Logger,
	}
	if !strings.HasSuffix(c.baseURL, "/") {
		c.baseURL += "/"
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	if c.limiter == nil {
		c.limiter = ratelimit.New(nil)
	}

	return c, nil
}

// Token returns the bearer token the dispatcher attaches to requests.
func (c *Client) Token() string {
	return c.token
}

// BaseURL returns the base URL requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do dispatches one API request. It blocks in the rate limiter until the
// request may be sent, attaches the bearer token when the client holds one,
// encodes query for GET/DELETE-style reads and body as JSON for mutations,
// and decodes a 2xx response into result (ignored when result is nil).
// Non-2xx responses become *APIError; transport failures *NetworkError.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, result any) error {
	if err := c.limiter.Acquire(ctx, ratelimit.CategoryFor(path)); err != nil {
		return err
	}

	u := c.baseURL + strings.TrimPrefix(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if bodyReader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err, URL: u}
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("api request")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseErrorResponse(resp)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}

// parseErrorResponse turns a non-2xx response into an *APIError, reading
// the {"error": {"message", "code"}} envelope when present.
func parseErrorResponse(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var envelope struct {
		Error struct {
			Message string `json:"message"`
			Code    int    `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil &&
		(envelope.Error.Message != "" || envelope.Error.Code != 0) {
		return &APIError{
			StatusCode: resp.StatusCode,
			Code:       envelope.Error.Code,
			Message:    envelope.Error.Message,
		}
	}

	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return &APIError{StatusCode: resp.StatusCode, Message: msg}
}
