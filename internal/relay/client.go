// Package relay forwards raw chat messages to the conversational engine's
// REST webhook and hands back its reply list unchanged.
package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// ErrEngineStatus is returned when the engine answers with a non-200 status.
var ErrEngineStatus = errors.New("engine returned non-200 status")

// Client is the HTTP client for the engine webhook.
type Client struct {
	httpClient *http.Client
	url        string
	sender     string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient creates a rate-limited engine client. A non-positive
// requestsPerMinute disables the limiter.
func NewClient(url, sender string, timeout time.Duration, requestsPerMinute int, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	limit := rate.Inf
	if requestsPerMinute > 0 {
		limit = rate.Limit(float64(requestsPerMinute) / 60.0)
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		url:        url,
		sender:     sender,
		limiter:    rate.NewLimiter(limit, 1),
		logger:     logger,
	}
}

// URL is the webhook the client posts to.
func (c *Client) URL() string { return c.url }

type outbound struct {
	Sender  string `json:"sender"`
	Message string `json:"message"`
}

// Send posts one message and returns the engine's reply items verbatim.
func (c *Client) Send(ctx context.Context, message string) ([]json.RawMessage, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	body, err := json.Marshal(outbound{Sender: c.sender, Message: message})
	if err != nil {
		return nil, fmt.Errorf("encode message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", c.url, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	c.logger.Debug("engine replied", "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d: %s", ErrEngineStatus, resp.StatusCode, truncate(raw, 200))
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return items, nil
}

func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
