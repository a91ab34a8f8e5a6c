package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Client wraps net/http with the retry handler. Requests with a replayable
// body (GET, or POST built via http.NewRequest with a bytes reader) are
// retried on retryable status codes; everything else goes through once.
type Client struct {
	httpClient   *http.Client
	retryHandler *RetryHandler
	logger       zerolog.Logger
}

// ClientConfig configuration for building a Client.
type ClientConfig struct {
	Timeout time.Duration
	Retry   RetryHandlerConfig
}

// NewClient creates a retrying HTTP client.
func NewClient(cfg ClientConfig, logger zerolog.Logger) *Client {
	return &Client{
		httpClient:   &http.Client{Timeout: cfg.Timeout},
		retryHandler: NewRetryHandler(cfg.Retry, logger),
		logger:       logger.With().Str("component", "HTTPClient").Logger(),
	}
}

// Do executes the request, retrying per the retry handler. The response body
// of discarded attempts is closed here; the final response body belongs to
// the caller.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	req = req.WithContext(ctx)

	var resp *http.Response
	for attempt := 0; ; attempt++ {
		var err error
		resp, err = c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("request to '%s' failed: %w", req.URL.String(), err)
		}

		if !c.retryHandler.ShouldRetry(resp.StatusCode, attempt) || !replayable(req) {
			return resp, nil
		}

		resp.Body.Close()
		if err := c.retryHandler.WaitForRetry(ctx, attempt, resp.StatusCode, req.URL.String()); err != nil {
			return nil, err
		}

		if req.Body != nil {
			body, bodyErr := req.GetBody()
			if bodyErr != nil {
				return nil, fmt.Errorf("failed to rewind request body for retry: %w", bodyErr)
			}
			req.Body = body
		}
	}
}

func replayable(req *http.Request) bool {
	return req.Body == nil || req.GetBody != nil
}
