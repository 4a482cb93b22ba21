package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/clientdesk/backend/internal/entity"
	"github.com/clientdesk/backend/internal/service"
)

func TestService_SyncCampaignStats_PartialFailure(t *testing.T) {
	t.Parallel()

	ts := newTestService(t, service.Options{})
	ctx := context.Background()

	conns := []entity.ClientConnection{
		{ID: uuid.Must(uuid.NewV4()), ClientName: "one", StatsAPIURL: "https://stats.example.com/1"},
		{ID: uuid.Must(uuid.NewV4()), ClientName: "two", StatsAPIURL: "https://stats.example.com/2"},
		{ID: uuid.Must(uuid.NewV4()), ClientName: "three", StatsAPIURL: "https://stats.example.com/3"},
	}

	ts.repo.EXPECT().ActiveConnections(ctx).Return(conns, nil)

	ts.stats.EXPECT().Fetch(gomock.Any(), conns[0].StatsAPIURL, "").
		Return(entity.NormalizedStats{Sent: 200, Responses: 30, Connections: 12}, nil)
	ts.stats.EXPECT().Fetch(gomock.Any(), conns[1].StatsAPIURL, "").
		Return(entity.NormalizedStats{}, errors.New("status 500"))
	ts.stats.EXPECT().Fetch(gomock.Any(), conns[2].StatsAPIURL, "").
		Return(entity.NormalizedStats{Sent: 50, Responses: 5, Connections: 1}, nil)

	ts.repo.EXPECT().UpsertCampaignStats(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	summary, err := ts.s.SyncCampaignStats(ctx)
	require.NoError(t, err)

	require.Equal(t, 2, summary.Synced)
	require.Equal(t, 3, summary.Total)
	require.Len(t, summary.Results, 3)

	require.True(t, summary.Results[0].Synced)
	require.False(t, summary.Results[1].Synced)
	require.Contains(t, summary.Results[1].Error, "status 500")
	require.True(t, summary.Results[2].Synced)
}

func TestService_SyncCampaignStats_SkipsUnconfigured(t *testing.T) {
	t.Parallel()

	ts := newTestService(t, service.Options{})
	ctx := context.Background()

	conns := []entity.ClientConnection{
		{ID: uuid.Must(uuid.NewV4()), ClientName: "no stats"},
	}

	ts.repo.EXPECT().ActiveConnections(ctx).Return(conns, nil)

	summary, err := ts.s.SyncCampaignStats(ctx)
	require.NoError(t, err)
	require.Zero(t, summary.Total)
	require.Empty(t, summary.Results)
}

func TestService_SyncCampaignStats_RowShape(t *testing.T) {
	t.Parallel()

	ts := newTestService(t, service.Options{})
	ctx := context.Background()

	conn := entity.ClientConnection{
		ID:          uuid.Must(uuid.NewV4()),
		ClientName:  "acme",
		StatsAPIURL: "https://stats.example.com/acme",
		StatsAPIKey: "sk-1",
	}

	ts.repo.EXPECT().ActiveConnections(ctx).Return([]entity.ClientConnection{conn}, nil)
	ts.stats.EXPECT().Fetch(gomock.Any(), conn.StatsAPIURL, conn.StatsAPIKey).
		Return(entity.NormalizedStats{Sent: 400, Responses: 100, Connections: 25}, nil)

	var row entity.CampaignStats

	ts.repo.EXPECT().UpsertCampaignStats(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s entity.CampaignStats) error {
			row = s
			return nil
		})

	_, err := ts.s.SyncCampaignStats(ctx)
	require.NoError(t, err)

	require.Equal(t, conn.ID, row.ConnectionID)
	require.Equal(t, 400, row.Sent)
	require.True(t, decimal.RequireFromString("25").Equal(row.ResponseRate))
	require.True(t, decimal.RequireFromString("6.25").Equal(row.ConnectionRate))

	// Stat date is a pure calendar day.
	require.Zero(t, row.StatDate.Hour())
	require.Zero(t, row.StatDate.Minute())
}
