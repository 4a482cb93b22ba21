package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/clientdesk/backend/internal/entity"
)

const selectStats = `
SELECT
	id,
	connection_id,
	stat_date,
	sent,
	responses,
	connections,
	response_rate,
	connection_rate,
	raw,
	created_at,
	updated_at
FROM campaign_stats`

func scanStats(row pgx.Row) (entity.CampaignStats, error) {
	var s entity.CampaignStats

	err := row.Scan(
		&s.ID,
		&s.ConnectionID,
		&s.StatDate,
		&s.Sent,
		&s.Responses,
		&s.Connections,
		&s.ResponseRate,
		&s.ConnectionRate,
		&s.Raw,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return entity.CampaignStats{}, mapErr(err)
	}

	return s, nil
}

// UpsertCampaignStats writes the day's counters, replacing any earlier sync
// for the same connection and calendar day.
func (r *Repository) UpsertCampaignStats(ctx context.Context, s entity.CampaignStats) error {
	const q = `
	INSERT INTO campaign_stats (
		id,
		connection_id,
		stat_date,
		sent,
		responses,
		connections,
		response_rate,
		connection_rate,
		raw,
		created_at,
		updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	ON CONFLICT (connection_id, stat_date) DO UPDATE SET
		sent = EXCLUDED.sent,
		responses = EXCLUDED.responses,
		connections = EXCLUDED.connections,
		response_rate = EXCLUDED.response_rate,
		connection_rate = EXCLUDED.connection_rate,
		raw = EXCLUDED.raw,
		updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.Exec(
		ctx,
		q,
		s.ID,
		s.ConnectionID,
		s.StatDate,
		s.Sent,
		s.Responses,
		s.Connections,
		s.ResponseRate,
		s.ConnectionRate,
		s.Raw,
		s.CreatedAt,
		s.UpdatedAt,
	)

	return mapErr(err)
}

func (r *Repository) CampaignStatsByConnection(ctx context.Context, connectionID uuid.UUID, limit int) ([]entity.CampaignStats, error) {
	q := selectStats + " WHERE connection_id = $1 ORDER BY stat_date DESC"

	args := []any{connectionID}
	if limit > 0 {
		q += " LIMIT $2"
		args = append(args, limit)
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, mapErr(err)
	}

	defer rows.Close()

	var stats []entity.CampaignStats

	for rows.Next() {
		s, err := scanStats(rows)
		if err != nil {
			return nil, err
		}

		stats = append(stats, s)
	}

	return stats, rows.Err()
}
