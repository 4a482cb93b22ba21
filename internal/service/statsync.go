package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/clientdesk/backend/internal/entity"
)

// SyncCampaignStats polls every active connection with a configured
// analytics endpoint and upserts one row per connection per local calendar
// day. Per-connection failures are recorded and the loop moves on: one bad
// endpoint never blocks the rest.
func (s *Service) SyncCampaignStats(ctx context.Context) (entity.SyncSummary, error) {
	conns, err := s.repo.ActiveConnections(ctx)
	if err != nil {
		return entity.SyncSummary{}, fmt.Errorf("load active connections: %w", err)
	}

	var summary entity.SyncSummary

	for _, conn := range conns {
		if conn.StatsAPIURL == "" {
			continue
		}

		summary.Total++

		result := entity.SyncResult{
			ConnectionID: conn.ID,
			ClientName:   conn.ClientName,
		}

		err := s.syncConnectionStats(ctx, conn)
		if err != nil {
			slog.WarnContext(ctx, "stats sync failed", "connection_id", conn.ID, "error", err)
			result.Error = err.Error()
		} else {
			result.Synced = true
			summary.Synced++
		}

		summary.Results = append(summary.Results, result)
	}

	slog.InfoContext(ctx, "stats sync finished", "synced", summary.Synced, "total", summary.Total)

	return summary, nil
}

func (s *Service) syncConnectionStats(ctx context.Context, conn entity.ClientConnection) error {
	stats, err := s.stats.Fetch(ctx, conn.StatsAPIURL, conn.StatsAPIKey)
	if err != nil {
		return fmt.Errorf("fetch stats: %w", err)
	}

	responseRate, connectionRate := stats.Rates()

	now := time.Now()
	localDay := now.In(conn.Location())

	row := entity.CampaignStats{
		ID:             uuid.Must(uuid.NewV4()),
		ConnectionID:   conn.ID,
		StatDate:       time.Date(localDay.Year(), localDay.Month(), localDay.Day(), 0, 0, 0, 0, time.UTC),
		Sent:           stats.Sent,
		Responses:      stats.Responses,
		Connections:    stats.Connections,
		ResponseRate:   responseRate,
		ConnectionRate: connectionRate,
		Raw:            stats.Raw,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = s.repo.UpsertCampaignStats(ctx, row)
	if err != nil {
		return fmt.Errorf("upsert stats: %w", err)
	}

	return nil
}
