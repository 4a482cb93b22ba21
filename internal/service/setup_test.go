package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/clientdesk/backend/internal/clients/calendly"
	"github.com/clientdesk/backend/internal/entity"
	"github.com/clientdesk/backend/internal/service"
)

func TestService_SetupClient(t *testing.T) {
	t.Parallel()

	ts := newTestService(t, service.Options{PublicBaseURL: "https://app.clientdesk.io"})
	ctx := context.Background()

	user := calendly.User{
		URI:                 "https://api.calendly.com/users/USER1",
		Name:                "Acme Owner",
		Email:               "owner@acme.com",
		Timezone:            "America/Chicago",
		CurrentOrganization: "https://api.calendly.com/organizations/ORG1",
	}

	req := service.SetupRequest{
		ClientName:        "Acme",
		CalendlyToken:     "tok-1",
		GHLLocationID:     "loc-1",
		GHLAPIKey:         "ghl-key",
		SlackChannelID:    "C123",
		SlackChannelName:  "#acme",
		ChatWebhookURL:    "https://chat.example.com/hook",
		StatsAPIURL:       "https://stats.example.com/acme",
		StatsAPIKey:       "sk-1",
		WatchedEventTypes: []string{"Discovery Call"},
	}

	ts.scheduling.EXPECT().Me(ctx, "tok-1").Return(user, nil)
	ts.scheduling.EXPECT().
		CreateWebhookSubscription(ctx, "tok-1", user.CurrentOrganization, user.URI,
			"https://app.clientdesk.io/webhooks/calendly").
		Return("https://api.calendly.com/webhook_subscriptions/SUB1", nil)

	var stored entity.ClientConnection

	ts.repo.EXPECT().CreateConnection(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, c entity.ClientConnection) error {
			stored = c
			return nil
		})
	ts.slack.EXPECT().PostMessage(ctx, gomock.Any()).Return(nil)

	conn, deliveries, err := ts.s.SetupClient(ctx, req)
	require.NoError(t, err)

	require.Equal(t, "Acme", conn.ClientName)
	require.Equal(t, user.URI, conn.CalendlyUserURI)
	require.Equal(t, user.CurrentOrganization, conn.CalendlyOrgURI)
	require.Equal(t, "https://api.calendly.com/webhook_subscriptions/SUB1", conn.WebhookSubscriptionURI)
	require.Equal(t, "loc-1", conn.GHLLocationID)
	require.Equal(t, "C123", conn.SlackChannelID)
	require.Equal(t, "#acme", conn.SlackChannelName)
	require.Equal(t, []string{"Discovery Call"}, conn.WatchedEventTypes)
	require.True(t, conn.Active)

	// Timezone falls back to the scheduling profile when not supplied.
	require.Equal(t, "America/Chicago", conn.Timezone)

	require.Equal(t, stored, conn)
	require.NotEmpty(t, conn.AccessToken)

	require.Len(t, deliveries, 1)
	require.True(t, deliveries[0].Delivered)
}

func TestService_SetupClient_MissingFields(t *testing.T) {
	t.Parallel()

	ts := newTestService(t, service.Options{})

	_, _, err := ts.s.SetupClient(context.Background(), service.SetupRequest{ClientName: "Acme"})
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestService_SetupClient_SubscriptionFailureIsNonFatal(t *testing.T) {
	t.Parallel()

	ts := newTestService(t, service.Options{})
	ctx := context.Background()

	ts.scheduling.EXPECT().Me(ctx, "tok-1").Return(calendly.User{URI: "u"}, nil)
	ts.scheduling.EXPECT().
		CreateWebhookSubscription(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("status 409"))
	ts.repo.EXPECT().CreateConnection(ctx, gomock.Any()).Return(nil)

	conn, _, err := ts.s.SetupClient(ctx, service.SetupRequest{ClientName: "Acme", CalendlyToken: "tok-1"})
	require.NoError(t, err)
	require.Empty(t, conn.WebhookSubscriptionURI)
}

func TestService_SetupClient_RetriesAccessCodeCollision(t *testing.T) {
	t.Parallel()

	ts := newTestService(t, service.Options{})
	ctx := context.Background()

	ts.scheduling.EXPECT().Me(ctx, "tok-1").Return(calendly.User{URI: "u"}, nil)
	ts.scheduling.EXPECT().
		CreateWebhookSubscription(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("sub", nil)

	var codes []string

	gomock.InOrder(
		ts.repo.EXPECT().CreateConnection(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, c entity.ClientConnection) error {
				codes = append(codes, c.AccessToken)
				return entity.ErrDuplicate
			}),
		ts.repo.EXPECT().CreateConnection(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, c entity.ClientConnection) error {
				codes = append(codes, c.AccessToken)
				return nil
			}),
	)

	conn, _, err := ts.s.SetupClient(ctx, service.SetupRequest{ClientName: "Acme", CalendlyToken: "tok-1"})
	require.NoError(t, err)
	require.Len(t, codes, 2)
	require.NotEqual(t, codes[0], codes[1])
	require.Equal(t, codes[1], conn.AccessToken)
}

func TestService_DeleteConnection_UnsubscribesFirst(t *testing.T) {
	t.Parallel()

	ts := newTestService(t, service.Options{})
	ctx := context.Background()

	conn := entity.ClientConnection{
		ID:                     uuid.Must(uuid.NewV4()),
		CalendlyToken:          "tok-1",
		WebhookSubscriptionURI: "https://api.calendly.com/webhook_subscriptions/SUB1",
	}

	ts.repo.EXPECT().Connection(ctx, conn.ID).Return(conn, nil)
	ts.scheduling.EXPECT().DeleteWebhookSubscription(ctx, "tok-1", conn.WebhookSubscriptionURI).
		Return(errors.New("status 500"))
	ts.repo.EXPECT().DeleteConnection(ctx, conn.ID).Return(nil)

	// Unsubscribe failure must not block the delete.
	err := ts.s.DeleteConnection(ctx, conn.ID)
	require.NoError(t, err)
}

func TestService_UpdateConnection_PartialPatch(t *testing.T) {
	t.Parallel()

	ts := newTestService(t, service.Options{})
	ctx := context.Background()

	existing := entity.ClientConnection{
		ID:             uuid.Must(uuid.NewV4()),
		ClientName:     "Acme",
		SlackChannelID: "C123",
		StatsAPIURL:    "https://stats.example.com/acme",
	}

	newName := "Acme Inc"
	watched := []string{"Discovery Call"}

	ts.repo.EXPECT().Connection(ctx, existing.ID).Return(existing, nil)

	var updated entity.ClientConnection

	ts.repo.EXPECT().UpdateConnection(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, c entity.ClientConnection) error {
			updated = c
			return nil
		})

	conn, err := ts.s.UpdateConnection(ctx, existing.ID, service.UpdateConnectionRequest{
		ClientName:        &newName,
		WatchedEventTypes: &watched,
	})
	require.NoError(t, err)

	require.Equal(t, "Acme Inc", conn.ClientName)
	require.Equal(t, watched, conn.WatchedEventTypes)

	// Untouched fields survive the patch.
	require.Equal(t, "C123", conn.SlackChannelID)
	require.Equal(t, "https://stats.example.com/acme", conn.StatsAPIURL)
	require.Equal(t, updated.ClientName, conn.ClientName)
}
