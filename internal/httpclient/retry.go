package httpclient

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/rs/zerolog"
)

// RetryHandler handles HTTP request retries with exponential backoff.
type RetryHandler struct {
	maxRetries       int
	baseDelay        time.Duration
	maxDelay         time.Duration
	enableJitter     bool
	retryStatusCodes map[int]bool
	logger           zerolog.Logger
}

// RetryHandlerConfig configuration for retry handler.
type RetryHandlerConfig struct {
	MaxRetries       int           `json:"max_retries"`
	BaseDelay        time.Duration `json:"base_delay"`
	MaxDelay         time.Duration `json:"max_delay"`
	EnableJitter     bool          `json:"enable_jitter"`
	RetryStatusCodes []int         `json:"retry_status_codes"`
}

// DefaultRetryStatusCodes are the responses worth retrying: secondary rate
// limits and transient server errors.
var DefaultRetryStatusCodes = []int{429, 500, 502, 503, 504}

// NewRetryHandler creates a new retry handler.
func NewRetryHandler(config RetryHandlerConfig, logger zerolog.Logger) *RetryHandler {
	statusCodeMap := make(map[int]bool)
	for _, code := range config.RetryStatusCodes {
		statusCodeMap[code] = true
	}

	return &RetryHandler{
		maxRetries:       config.MaxRetries,
		baseDelay:        config.BaseDelay,
		maxDelay:         config.MaxDelay,
		enableJitter:     config.EnableJitter,
		retryStatusCodes: statusCodeMap,
		logger:           logger.With().Str("component", "RetryHandler").Logger(),
	}
}

// ShouldRetry determines if a request should be retried based on status code.
func (rh *RetryHandler) ShouldRetry(statusCode int, attempt int) bool {
	if attempt >= rh.maxRetries {
		return false
	}
	return rh.retryStatusCodes[statusCode]
}

// CalculateDelay calculates the delay for the next retry attempt using
// exponential backoff.
func (rh *RetryHandler) CalculateDelay(attempt int) time.Duration {
	if attempt <= 0 {
		return rh.baseDelay
	}

	delay := rh.baseDelay * time.Duration(math.Pow(2, float64(attempt)))
	if delay > rh.maxDelay {
		delay = rh.maxDelay
	}

	// Jitter prevents thundering herd on shared rate-limit windows.
	if rh.enableJitter && delay >= 10*time.Millisecond {
		jitter := time.Duration(rand.Intn(int(delay.Milliseconds()/10))) * time.Millisecond
		delay += jitter
	}

	return delay
}

// WaitForRetry waits for the calculated delay before retrying, respecting
// context cancellation.
func (rh *RetryHandler) WaitForRetry(ctx context.Context, attempt int, statusCode int, url string) error {
	delay := rh.CalculateDelay(attempt)

	rh.logger.Warn().
		Str("url", url).
		Int("status_code", statusCode).
		Int("attempt", attempt+1).
		Int("max_retries", rh.maxRetries).
		Dur("delay", delay).
		Msg("Retryable response, waiting before retry")

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
