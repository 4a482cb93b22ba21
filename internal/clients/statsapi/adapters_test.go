package statsapi_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clientdesk/backend/internal/clients/statsapi"
)

func TestNormalize_TotalsShape(t *testing.T) {
	body := []byte(`{"totals":{"sent":400,"responses":100,"connections":25},"period":"30d"}`)

	stats, err := statsapi.Normalize(body)
	require.NoError(t, err)

	require.Equal(t, 400, stats.Sent)
	require.Equal(t, 100, stats.Responses)
	require.Equal(t, 25, stats.Connections)
	require.Equal(t, body, stats.Raw)
}

func TestNormalize_CampaignListShape(t *testing.T) {
	body := []byte(`{"campaigns":[
		{"name":"outreach-a","stats":{"sent":120,"responses":30,"connections":6}},
		{"name":"outreach-b","stats":{"sent":80,"responses":10,"connections":4}}
	]}`)

	stats, err := statsapi.Normalize(body)
	require.NoError(t, err)

	require.Equal(t, 200, stats.Sent)
	require.Equal(t, 40, stats.Responses)
	require.Equal(t, 10, stats.Connections)
}

func TestNormalize_EmptyCampaignList(t *testing.T) {
	stats, err := statsapi.Normalize([]byte(`{"campaigns":[]}`))
	require.NoError(t, err)
	require.Zero(t, stats.Sent)
}

func TestNormalize_UnknownShape(t *testing.T) {
	_, err := statsapi.Normalize([]byte(`{"rows":[[1,2,3]]}`))
	require.ErrorIs(t, err, statsapi.ErrUnknownShape)
}

func TestNormalize_InvalidJSON(t *testing.T) {
	_, err := statsapi.Normalize([]byte(`{"totals":`))
	require.Error(t, err)
}
