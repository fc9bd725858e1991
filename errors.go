package spacetraders

import (
	"errors"
	"fmt"

	"github.com/spacetraders/client-go/internal/api"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingUsername is returned when no username is provided and no
	// token exists to skip the claim.
	ErrMissingUsername = errors.New("username is required to claim a token")

	// ErrUnauthorized is returned when the token is invalid or expired.
	ErrUnauthorized = errors.New("invalid or expired token")

	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrConflict is returned when the server rejects a duplicate submission.
	ErrConflict = errors.New("conflicting request")

	// ErrRateLimited is returned when the server throttled a request despite
	// the client-side pacing.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrInsufficientCredits is returned when the account cannot afford a
	// purchase.
	ErrInsufficientCredits = errors.New("insufficient credits")
)

// Game error codes the client maps to sentinels.
const (
	throttleCode            = 42901
	insufficientCreditsCode = 600
)

// APIError represents a structured error from the game API. Callers can
// branch on Code, or use errors.Is with the package sentinels.
type APIError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("API error %d (code %d): %s", e.StatusCode, e.Code, e.Message)
	}
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	if e.Code == throttleCode && target == ErrRateLimited {
		return true
	}
	if e.Code == insufficientCreditsCode && target == ErrInsufficientCredits {
		return true
	}
	switch e.StatusCode {
	case 401:
		return target == ErrUnauthorized
	case 404:
		return target == ErrNotFound
	case 409:
		return target == ErrConflict
	case 429:
		return target == ErrRateLimited
	}
	return false
}

// NetworkError represents a transport-level failure. The library does not
// retry it.
type NetworkError struct {
	Err error
	URL string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// wrapError converts internal API errors to public errors so that
// errors.Is() and errors.As() work with the exported types.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode: apiErr.StatusCode,
			Code:       apiErr.Code,
			Message:    apiErr.Message,
		}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &NetworkError{
			Err: netErr.Err,
			URL: netErr.URL,
		}
	}

	return err
}
