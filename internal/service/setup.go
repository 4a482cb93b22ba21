package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/clientdesk/backend/internal/clients/calendly"
	"github.com/clientdesk/backend/internal/clients/slack"
	"github.com/clientdesk/backend/internal/entity"
)

type SetupRequest struct {
	ClientName        string   `json:"client_name"`
	CalendlyToken     string   `json:"calendly_token"`
	GHLLocationID     string   `json:"ghl_location_id"`
	GHLAPIKey         string   `json:"ghl_api_key"`
	SlackChannelID    string   `json:"slack_channel_id"`
	SlackChannelName  string   `json:"slack_channel_name"`
	ChatWebhookURL    string   `json:"chat_webhook_url"`
	StatsAPIURL       string   `json:"stats_api_url"`
	StatsAPIKey       string   `json:"stats_api_key"`
	WatchedEventTypes []string `json:"watched_event_types"`
	Timezone          string   `json:"timezone"`
}

// SetupClient onboards a client: validates the scheduling token, registers
// the inbound webhook (non-fatal), persists the connection and posts a
// confirmation to the chosen channel (non-fatal).
func (s *Service) SetupClient(ctx context.Context, req SetupRequest) (entity.ClientConnection, []entity.DeliveryResult, error) {
	if req.ClientName == "" || req.CalendlyToken == "" {
		return entity.ClientConnection{}, nil,
			fmt.Errorf("%w: client_name and calendly_token are required", entity.ErrInvalidArgument)
	}

	user, err := s.scheduling.Me(ctx, req.CalendlyToken)
	if err != nil {
		return entity.ClientConnection{}, nil, fmt.Errorf("validate scheduling token: %w", err)
	}

	now := time.Now()

	conn := entity.ClientConnection{
		ID:                uuid.Must(uuid.NewV4()),
		ClientName:        req.ClientName,
		CalendlyToken:     req.CalendlyToken,
		CalendlyUserURI:   user.URI,
		CalendlyOrgURI:    user.CurrentOrganization,
		GHLLocationID:     req.GHLLocationID,
		GHLAPIKey:         req.GHLAPIKey,
		SlackChannelID:    req.SlackChannelID,
		SlackChannelName:  req.SlackChannelName,
		ChatWebhookURL:    req.ChatWebhookURL,
		StatsAPIURL:       req.StatsAPIURL,
		StatsAPIKey:       req.StatsAPIKey,
		Active:            true,
		WatchedEventTypes: req.WatchedEventTypes,
		Timezone:          req.Timezone,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if conn.Timezone == "" {
		conn.Timezone = user.Timezone
	}

	// Registration may 409 when a subscription for this callback already
	// exists; either way the connection still goes in.
	callbackURL := s.opts.PublicBaseURL + "/webhooks/calendly"

	subURI, err := s.scheduling.CreateWebhookSubscription(ctx, req.CalendlyToken, user.CurrentOrganization, user.URI, callbackURL)
	if err != nil {
		slog.WarnContext(ctx, "register webhook subscription", "error", err, "client_name", req.ClientName)
	} else {
		conn.WebhookSubscriptionURI = subURI
	}

	err = s.createWithFreshAccessCode(ctx, &conn)
	if err != nil {
		return entity.ClientConnection{}, nil, fmt.Errorf("create connection: %w", err)
	}

	var deliveries []entity.DeliveryResult

	if conn.SlackChannelID != "" {
		msg := slack.Message{
			Channel: conn.SlackChannelID,
			Text: fmt.Sprintf("✅ %s is connected. Booking notifications will land here. Dashboard code: %s",
				conn.ClientName, conn.AccessToken),
		}

		err = s.slack.PostMessage(ctx, msg)
		if err != nil {
			slog.WarnContext(ctx, "post setup confirmation", "error", err, "channel", conn.SlackChannelID)
			deliveries = append(deliveries, entity.NotDelivered("slack", err))
		} else {
			deliveries = append(deliveries, entity.Delivered("slack"))
		}
	}

	return conn, deliveries, nil
}

// createWithFreshAccessCode inserts the connection, regenerating the access
// code on the off chance it collides with an existing one.
func (s *Service) createWithFreshAccessCode(ctx context.Context, conn *entity.ClientConnection) error {
	const maxAttempts = 5

	for i := 0; i < maxAttempts; i++ {
		code, err := entity.NewAccessCode()
		if err != nil {
			return err
		}

		conn.AccessToken = code

		err = s.repo.CreateConnection(ctx, *conn)
		if err == nil {
			return nil
		}

		if !errors.Is(err, entity.ErrDuplicate) {
			return err
		}
	}

	return fmt.Errorf("%w: could not allocate a unique access code", entity.ErrDuplicate)
}

// ValidateToken checks a scheduling token and reports who it belongs to.
func (s *Service) ValidateToken(ctx context.Context, token string) (calendly.User, error) {
	if token == "" {
		return calendly.User{}, fmt.Errorf("%w: token is required", entity.ErrInvalidArgument)
	}

	user, err := s.scheduling.Me(ctx, token)
	if err != nil {
		return calendly.User{}, fmt.Errorf("validate scheduling token: %w", err)
	}

	return user, nil
}

func (s *Service) ListChannels(ctx context.Context) ([]slack.Channel, error) {
	return s.slack.ListChannels(ctx)
}

func (s *Service) Connections(ctx context.Context) ([]entity.ClientConnection, error) {
	return s.repo.Connections(ctx)
}

func (s *Service) Connection(ctx context.Context, id uuid.UUID) (entity.ClientConnection, error) {
	return s.repo.Connection(ctx, id)
}

type UpdateConnectionRequest struct {
	ClientName        *string   `json:"client_name,omitempty"`
	GHLLocationID     *string   `json:"ghl_location_id,omitempty"`
	GHLAPIKey         *string   `json:"ghl_api_key,omitempty"`
	SlackChannelID    *string   `json:"slack_channel_id,omitempty"`
	SlackChannelName  *string   `json:"slack_channel_name,omitempty"`
	ChatWebhookURL    *string   `json:"chat_webhook_url,omitempty"`
	StatsAPIURL       *string   `json:"stats_api_url,omitempty"`
	StatsAPIKey       *string   `json:"stats_api_key,omitempty"`
	WatchedEventTypes *[]string `json:"watched_event_types,omitempty"`
	Timezone          *string   `json:"timezone,omitempty"`
}

func (s *Service) UpdateConnection(ctx context.Context, id uuid.UUID, req UpdateConnectionRequest) (entity.ClientConnection, error) {
	conn, err := s.repo.Connection(ctx, id)
	if err != nil {
		return entity.ClientConnection{}, err
	}

	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	apply(&conn.ClientName, req.ClientName)
	apply(&conn.GHLLocationID, req.GHLLocationID)
	apply(&conn.GHLAPIKey, req.GHLAPIKey)
	apply(&conn.SlackChannelID, req.SlackChannelID)
	apply(&conn.SlackChannelName, req.SlackChannelName)
	apply(&conn.ChatWebhookURL, req.ChatWebhookURL)
	apply(&conn.StatsAPIURL, req.StatsAPIURL)
	apply(&conn.StatsAPIKey, req.StatsAPIKey)
	apply(&conn.Timezone, req.Timezone)

	if req.WatchedEventTypes != nil {
		conn.WatchedEventTypes = *req.WatchedEventTypes
	}

	conn.UpdatedAt = time.Now()

	err = s.repo.UpdateConnection(ctx, conn)
	if err != nil {
		return entity.ClientConnection{}, err
	}

	return conn, nil
}

func (s *Service) SetConnectionActive(ctx context.Context, id uuid.UUID, active bool) error {
	return s.repo.SetConnectionActive(ctx, id, active, time.Now())
}

// DeleteConnection removes the row and best-effort unregisters the provider
// webhook subscription.
func (s *Service) DeleteConnection(ctx context.Context, id uuid.UUID) error {
	conn, err := s.repo.Connection(ctx, id)
	if err != nil {
		return err
	}

	if conn.WebhookSubscriptionURI != "" {
		err = s.scheduling.DeleteWebhookSubscription(ctx, conn.CalendlyToken, conn.WebhookSubscriptionURI)
		if err != nil {
			slog.WarnContext(ctx, "delete webhook subscription", "error", err, "connection_id", id)
		}
	}

	return s.repo.DeleteConnection(ctx, id)
}
