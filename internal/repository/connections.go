package repository

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/clientdesk/backend/internal/entity"
)

const selectConnection = `
SELECT
	id,
	client_name,
	calendly_token,
	calendly_user_uri,
	calendly_org_uri,
	webhook_subscription_uri,
	ghl_location_id,
	ghl_api_key,
	slack_channel_id,
	slack_channel_name,
	chat_webhook_url,
	stats_api_url,
	stats_api_key,
	access_token,
	active,
	watched_event_types,
	timezone,
	created_at,
	updated_at
FROM client_connections`

func scanConnection(row pgx.Row) (entity.ClientConnection, error) {
	var c entity.ClientConnection

	err := row.Scan(
		&c.ID,
		&c.ClientName,
		&c.CalendlyToken,
		&c.CalendlyUserURI,
		&c.CalendlyOrgURI,
		&c.WebhookSubscriptionURI,
		&c.GHLLocationID,
		&c.GHLAPIKey,
		&c.SlackChannelID,
		&c.SlackChannelName,
		&c.ChatWebhookURL,
		&c.StatsAPIURL,
		&c.StatsAPIKey,
		&c.AccessToken,
		&c.Active,
		&c.WatchedEventTypes,
		&c.Timezone,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return entity.ClientConnection{}, mapErr(err)
	}

	return c, nil
}

func (r *Repository) CreateConnection(ctx context.Context, c entity.ClientConnection) error {
	const q = `
	INSERT INTO client_connections (
		id,
		client_name,
		calendly_token,
		calendly_user_uri,
		calendly_org_uri,
		webhook_subscription_uri,
		ghl_location_id,
		ghl_api_key,
		slack_channel_id,
		slack_channel_name,
		chat_webhook_url,
		stats_api_url,
		stats_api_key,
		access_token,
		active,
		watched_event_types,
		timezone,
		created_at,
		updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	`

	_, err := r.db.Exec(
		ctx,
		q,
		c.ID,
		c.ClientName,
		c.CalendlyToken,
		c.CalendlyUserURI,
		c.CalendlyOrgURI,
		c.WebhookSubscriptionURI,
		c.GHLLocationID,
		c.GHLAPIKey,
		c.SlackChannelID,
		c.SlackChannelName,
		c.ChatWebhookURL,
		c.StatsAPIURL,
		c.StatsAPIKey,
		c.AccessToken,
		c.Active,
		c.WatchedEventTypes,
		c.Timezone,
		c.CreatedAt,
		c.UpdatedAt,
	)

	return mapErr(err)
}

func (r *Repository) Connection(ctx context.Context, id uuid.UUID) (entity.ClientConnection, error) {
	q := selectConnection + " WHERE id = $1"
	return scanConnection(r.db.QueryRow(ctx, q, id))
}

func (r *Repository) ConnectionByAccessToken(ctx context.Context, accessToken string) (entity.ClientConnection, error) {
	q := selectConnection + " WHERE access_token = $1"
	return scanConnection(r.db.QueryRow(ctx, q, accessToken))
}

func (r *Repository) Connections(ctx context.Context) ([]entity.ClientConnection, error) {
	q := selectConnection + " ORDER BY created_at DESC"
	return r.queryConnections(ctx, q)
}

// ActiveConnections returns connections eligible for webhook matching and
// stats polling.
func (r *Repository) ActiveConnections(ctx context.Context) ([]entity.ClientConnection, error) {
	q := selectConnection + " WHERE active ORDER BY created_at"
	return r.queryConnections(ctx, q)
}

func (r *Repository) queryConnections(ctx context.Context, q string, args ...any) ([]entity.ClientConnection, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, mapErr(err)
	}

	defer rows.Close()

	var conns []entity.ClientConnection

	for rows.Next() {
		c, err := scanConnection(rows)
		if err != nil {
			return nil, err
		}

		conns = append(conns, c)
	}

	return conns, rows.Err()
}

func (r *Repository) UpdateConnection(ctx context.Context, c entity.ClientConnection) error {
	const q = `
	UPDATE client_connections SET
		client_name = $1,
		calendly_token = $2,
		calendly_user_uri = $3,
		calendly_org_uri = $4,
		webhook_subscription_uri = $5,
		ghl_location_id = $6,
		ghl_api_key = $7,
		slack_channel_id = $8,
		slack_channel_name = $9,
		chat_webhook_url = $10,
		stats_api_url = $11,
		stats_api_key = $12,
		active = $13,
		watched_event_types = $14,
		timezone = $15,
		updated_at = $16
	WHERE id = $17
	`

	result, err := r.db.Exec(
		ctx,
		q,
		c.ClientName,
		c.CalendlyToken,
		c.CalendlyUserURI,
		c.CalendlyOrgURI,
		c.WebhookSubscriptionURI,
		c.GHLLocationID,
		c.GHLAPIKey,
		c.SlackChannelID,
		c.SlackChannelName,
		c.ChatWebhookURL,
		c.StatsAPIURL,
		c.StatsAPIKey,
		c.Active,
		c.WatchedEventTypes,
		c.Timezone,
		c.UpdatedAt,
		c.ID,
	)
	if err != nil {
		return mapErr(err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) SetConnectionActive(ctx context.Context, id uuid.UUID, active bool, updatedAt time.Time) error {
	const q = `UPDATE client_connections SET active = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.Exec(ctx, q, active, updatedAt, id)
	if err != nil {
		return mapErr(err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) DeleteConnection(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM client_connections WHERE id = $1`

	result, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return mapErr(err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}
