package statsapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/clientdesk/backend/internal/entity"
)

// Client fetches campaign stats from the operator-supplied analytics
// endpoint of each connection. RetryMax defaults to 0: the sync job records
// per-connection failures instead of retrying.
type Client struct {
	c *retryablehttp.Client
}

func NewClient(retryMax int, timeout time.Duration) *Client {
	c := retryablehttp.NewClient()
	c.RetryMax = retryMax
	c.HTTPClient.Timeout = timeout
	c.Logger = nil
	// Hand exhausted responses back so the status check below sees them.
	c.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &Client{c: c}
}

// Fetch GETs the endpoint with the API key header and normalizes whichever
// known payload shape comes back.
func (c *Client) Fetch(ctx context.Context, endpoint, apiKey string) (entity.NormalizedStats, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return entity.NormalizedStats{}, fmt.Errorf("create request: %w", err)
	}

	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}

	resp, err := c.c.Do(req)
	if err != nil {
		return entity.NormalizedStats{}, fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return entity.NormalizedStats{}, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return entity.NormalizedStats{}, fmt.Errorf("%w: status %d: %s", entity.ErrUpstream, resp.StatusCode, body)
	}

	stats, err := Normalize(body)
	if err != nil {
		return entity.NormalizedStats{}, fmt.Errorf("normalize payload: %w", err)
	}

	return stats, nil
}
