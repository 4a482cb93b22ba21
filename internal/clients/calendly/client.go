package calendly

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/clientdesk/backend/internal/entity"
	"github.com/clientdesk/backend/pkg/transport"
)

// Client talks to the scheduling provider's REST API. Tokens are per client
// connection, so every method takes the token rather than the constructor.
type Client struct {
	baseURL string
	c       *http.Client
}

func NewClient(baseURL string) *Client {
	const timeout = 10 * time.Second

	return &Client{
		baseURL: baseURL,
		c: &http.Client{
			Timeout:   timeout,
			Transport: transport.NewLoggingRoundTripper(http.DefaultTransport),
		},
	}
}

type User struct {
	URI                 string `json:"uri"`
	Name                string `json:"name"`
	Email               string `json:"email"`
	SchedulingURL       string `json:"scheduling_url"`
	Timezone            string `json:"timezone"`
	CurrentOrganization string `json:"current_organization"`
}

type meResponse struct {
	Resource User `json:"resource"`
}

// Me validates a token against the provider's who-am-I endpoint and returns
// the token owner's user and organization URIs.
func (c *Client) Me(ctx context.Context, token string) (User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/users/me", nil)
	if err != nil {
		return User{}, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.c.Do(req)
	if err != nil {
		return User{}, fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return User{}, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return User{}, fmt.Errorf("%w: status %d: %s", entity.ErrUpstream, resp.StatusCode, body)
	}

	var respData meResponse

	err = json.Unmarshal(body, &respData)
	if err != nil {
		return User{}, fmt.Errorf("unmarshal response: %w", err)
	}

	return respData.Resource, nil
}

type createSubscriptionRequest struct {
	URL          string   `json:"url"`
	Events       []string `json:"events"`
	Organization string   `json:"organization"`
	User         string   `json:"user"`
	Scope        string   `json:"scope"`
}

type createSubscriptionResponse struct {
	Resource struct {
		URI string `json:"uri"`
	} `json:"resource"`
}

// CreateWebhookSubscription registers an inbound webhook for invitee events
// and returns the subscription URI.
func (c *Client) CreateWebhookSubscription(ctx context.Context, token, orgURI, userURI, callbackURL string) (string, error) {
	reqData := createSubscriptionRequest{
		URL:          callbackURL,
		Events:       []string{entity.WebhookEventInviteeCreated, entity.WebhookEventInviteeCanceled},
		Organization: orgURI,
		User:         userURI,
		Scope:        "user",
	}

	b, err := json.Marshal(reqData)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/webhook_subscriptions", bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.c.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d: %s", entity.ErrUpstream, resp.StatusCode, body)
	}

	var respData createSubscriptionResponse

	err = json.Unmarshal(body, &respData)
	if err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	return respData.Resource.URI, nil
}

// DeleteWebhookSubscription removes a subscription by its full URI.
func (c *Client) DeleteWebhookSubscription(ctx context.Context, token, subscriptionURI string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, subscriptionURI, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.c.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: status %d: %s", entity.ErrUpstream, resp.StatusCode, body)
	}

	return nil
}
