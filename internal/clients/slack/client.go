package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/clientdesk/backend/internal/entity"
	"github.com/clientdesk/backend/pkg/transport"
)

// Client talks to the Slack Web API with a single workspace bot token.
type Client struct {
	baseURL  string
	botToken string
	c        *http.Client
}

func NewClient(baseURL, botToken string) *Client {
	const timeout = 10 * time.Second

	return &Client{
		baseURL:  baseURL,
		botToken: botToken,
		c: &http.Client{
			Timeout:   timeout,
			Transport: transport.NewLoggingRoundTripper(http.DefaultTransport),
		},
	}
}

type Channel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type listChannelsResponse struct {
	OK               bool      `json:"ok"`
	Error            string    `json:"error"`
	Channels         []Channel `json:"channels"`
	ResponseMetadata struct {
		NextCursor string `json:"next_cursor"`
	} `json:"response_metadata"`
}

// ListChannels pages through conversations.list and returns public channels
// the bot can see.
func (c *Client) ListChannels(ctx context.Context) ([]Channel, error) {
	var (
		channels []Channel
		cursor   string
	)

	for {
		q := url.Values{}
		q.Set("types", "public_channel")
		q.Set("limit", "200")
		q.Set("exclude_archived", "true")

		if cursor != "" {
			q.Set("cursor", cursor)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/conversations.list?"+q.Encode(), nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}

		req.Header.Set("Authorization", "Bearer "+c.botToken)

		resp, err := c.c.Do(req)
		if err != nil {
			return nil, fmt.Errorf("do request: %w", err)
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()

		if err != nil {
			return nil, fmt.Errorf("read response: %w", err)
		}

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("%w: status %d: %s", entity.ErrUpstream, resp.StatusCode, body)
		}

		var respData listChannelsResponse

		err = json.Unmarshal(body, &respData)
		if err != nil {
			return nil, fmt.Errorf("unmarshal response: %w", err)
		}

		if !respData.OK {
			return nil, fmt.Errorf("%w: %s", entity.ErrUpstream, respData.Error)
		}

		channels = append(channels, respData.Channels...)

		cursor = respData.ResponseMetadata.NextCursor
		if cursor == "" {
			return channels, nil
		}
	}
}

// Message is a chat.postMessage payload. Blocks are optional rich content;
// Text doubles as the notification fallback.
type Message struct {
	Channel string  `json:"channel"`
	Text    string  `json:"text"`
	Blocks  []Block `json:"blocks,omitempty"`
}

type Block struct {
	Type   string      `json:"type"`
	Text   *BlockText  `json:"text,omitempty"`
	Fields []BlockText `json:"fields,omitempty"`
}

type BlockText struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type postMessageResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
	TS    string `json:"ts"`
}

func (c *Client) PostMessage(ctx context.Context, msg Message) error {
	b, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat.postMessage", bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Authorization", "Bearer "+c.botToken)

	resp, err := c.c.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d: %s", entity.ErrUpstream, resp.StatusCode, body)
	}

	var respData postMessageResponse

	err = json.Unmarshal(body, &respData)
	if err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}

	if !respData.OK {
		return fmt.Errorf("%w: %s", entity.ErrUpstream, respData.Error)
	}

	return nil
}
