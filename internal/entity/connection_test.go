package entity_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clientdesk/backend/internal/entity"
)

func TestNewAccessCode_Format(t *testing.T) {
	format := regexp.MustCompile(`^[A-Z]{3}[0-9]{4}$`)

	for i := 0; i < 100; i++ {
		code, err := entity.NewAccessCode()
		require.NoError(t, err)
		require.Regexp(t, format, code)

		for _, c := range code[:3] {
			require.NotContains(t, "ILO", string(c), "ambiguous letter in %q", code)
		}
	}
}

func TestWatchesEventType(t *testing.T) {
	all := entity.ClientConnection{}
	require.True(t, all.WatchesEventType("Discovery Call"))
	require.True(t, all.WatchesEventType(""))

	scoped := entity.ClientConnection{WatchedEventTypes: []string{"Discovery Call", "Intro"}}
	require.True(t, scoped.WatchesEventType("Discovery Call"))
	require.True(t, scoped.WatchesEventType("discovery call"))
	require.False(t, scoped.WatchesEventType("Follow-up"))
}

func TestRedacted(t *testing.T) {
	conn := entity.ClientConnection{
		ClientName:     "Acme Roofing",
		CalendlyToken:  "cal-secret",
		GHLAPIKey:      "ghl-secret",
		StatsAPIKey:    "stats-secret",
		ChatWebhookURL: "https://hooks.example.com/abc",
		AccessToken:    "KTX4821",
	}

	red := conn.Redacted()

	require.Empty(t, red.CalendlyToken)
	require.Empty(t, red.GHLAPIKey)
	require.Empty(t, red.StatsAPIKey)
	require.Empty(t, red.ChatWebhookURL)
	require.Equal(t, "Acme Roofing", red.ClientName)
	require.Equal(t, "KTX4821", red.AccessToken)

	// the receiver is untouched
	require.Equal(t, "cal-secret", conn.CalendlyToken)
}

func TestLocation_Fallbacks(t *testing.T) {
	require.Equal(t, "UTC", entity.ClientConnection{}.Location().String())
	require.Equal(t, "UTC", entity.ClientConnection{Timezone: "Mars/Olympus"}.Location().String())

	loc := entity.ClientConnection{Timezone: "America/Chicago"}.Location()
	require.Equal(t, "America/Chicago", loc.String())
}
