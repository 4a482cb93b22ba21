package highlevel

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

// Client talks to the CRM's REST API. The API key and location are per
// client connection; the API version rides on a header.
type Client struct {
	baseURL string
	version string
	c       *http.Client
}

func NewClient(baseURL, version string) *Client {
	const timeout = 10 * time.Second

	return &Client{
		baseURL: baseURL,
		version: version,
		c: &http.Client{
			Timeout:   timeout,
			Transport: transport.NewLoggingRoundTripper(http.DefaultTransport),
		},
	}
}

type Contact struct {
	Name       string
	Email      string
	Phone      string
	Source     string
	LocationID string
}

type upsertContactRequest struct {
	Name       string   `json:"name,omitempty"`
	Email      string   `json:"email,omitempty"`
	Phone      string   `json:"phone,omitempty"`
	Source     string   `json:"source,omitempty"`
	LocationID string   `json:"locationId"`
	Tags       []string `json:"tags,omitempty"`
}

type upsertContactResponse struct {
	Contact struct {
		ID string `json:"id"`
	} `json:"contact"`
}

// UpsertContact creates or updates a CRM contact in the given location and
// returns the contact id.
func (c *Client) UpsertContact(ctx context.Context, apiKey string, contact Contact) (string, error) {
	reqData := upsertContactRequest{
		Name:       contact.Name,
		Email:      contact.Email,
		Phone:      contact.Phone,
		Source:     contact.Source,
		LocationID: contact.LocationID,
		Tags:       []string{"calendly-booking"},
	}

	b, err := json.Marshal(reqData)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/contacts/upsert", bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Version", c.version)

	resp, err := c.c.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("%w: status %d: %s", entity.ErrUpstream, resp.StatusCode, body)
	}

	var respData upsertContactResponse

	err = json.Unmarshal(body, &respData)
	if err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	return respData.Contact.ID, nil
}
