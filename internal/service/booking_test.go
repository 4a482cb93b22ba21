package service_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/clientdesk/backend/internal/entity"
	"github.com/clientdesk/backend/internal/mocks"
	"github.com/clientdesk/backend/internal/service"
)

type testService struct {
	s          *service.Service
	repo       *mocks.MockRepository
	scheduling *mocks.MockSchedulingClient
	crm        *mocks.MockCRMClient
	slack      *mocks.MockSlackClient
	poster     *mocks.MockWebhookPoster
	stats      *mocks.MockStatsClient
	files      *mocks.MockFileStore
	producer   *mocks.MockProducer
	mailer     *mocks.MockMailer
}

func newTestService(t *testing.T, opts service.Options) testService {
	t.Helper()

	ctrl := gomock.NewController(t)

	ts := testService{
		repo:       mocks.NewMockRepository(ctrl),
		scheduling: mocks.NewMockSchedulingClient(ctrl),
		crm:        mocks.NewMockCRMClient(ctrl),
		slack:      mocks.NewMockSlackClient(ctrl),
		poster:     mocks.NewMockWebhookPoster(ctrl),
		stats:      mocks.NewMockStatsClient(ctrl),
		files:      mocks.NewMockFileStore(ctrl),
		producer:   mocks.NewMockProducer(ctrl),
		mailer:     mocks.NewMockMailer(ctrl),
	}

	ts.s = service.New(ts.repo, ts.scheduling, ts.crm, ts.slack, ts.poster,
		ts.stats, ts.files, ts.producer, ts.mailer, opts)

	return ts
}

func webhookEvent(t *testing.T, body string) entity.WebhookEvent {
	t.Helper()

	var event entity.WebhookEvent

	err := json.Unmarshal([]byte(body), &event)
	require.NoError(t, err)

	return event
}

const createdEventBody = `{
	"event": "invitee.created",
	"payload": {
		"name": "Jamie Rivera",
		"email": "jamie@example.com",
		"text_reminder_number": "+15550100",
		"event_type": {"name": "Discovery Call"},
		"scheduled_event": {
			"uri": "https://api.calendly.com/scheduled_events/EV1",
			"start_time": "2026-09-01T15:00:00Z",
			"event_memberships": [{"user": "https://api.calendly.com/users/USER1"}]
		}
	}
}`

func TestService_ProcessBookingEvent_Created(t *testing.T) {
	t.Parallel()

	ts := newTestService(t, service.Options{})
	ctx := context.Background()

	conn := entity.ClientConnection{
		ID:              uuid.Must(uuid.NewV4()),
		ClientName:      "Acme",
		CalendlyUserURI: "https://api.calendly.com/users/USER1",
		SlackChannelID:  "C123",
		ChatWebhookURL:  "https://chat.example.com/hook",
		Active:          true,
	}

	raw := []byte(createdEventBody)
	event := webhookEvent(t, createdEventBody)

	ts.repo.EXPECT().ActiveConnections(ctx).Return([]entity.ClientConnection{conn}, nil)
	ts.slack.EXPECT().PostMessage(gomock.Any(), gomock.Any()).Return(nil)
	ts.poster.EXPECT().Post(gomock.Any(), conn.ChatWebhookURL, gomock.Any()).Return(nil)

	var stored entity.Booking

	ts.repo.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b entity.Booking) error {
			stored = b
			return nil
		})
	ts.producer.EXPECT().PublishBookingEvent(gomock.Any(), "booking.created", gomock.Any(), gomock.Any())

	result, err := ts.s.ProcessBookingEvent(ctx, event, raw)
	require.NoError(t, err)
	require.False(t, result.Ignored)
	require.Equal(t, stored.ID, result.BookingID)

	require.Equal(t, conn.ID, stored.ConnectionID)
	require.Equal(t, entity.BookingStatusScheduled, stored.Status)
	require.Equal(t, "Jamie Rivera", stored.ContactName)
	require.Equal(t, "jamie@example.com", stored.ContactEmail)
	require.Equal(t, "+15550100", stored.ContactPhone)
	require.Equal(t, "Discovery Call", stored.EventType)
	require.Equal(t, raw, stored.RawPayload)

	require.Len(t, result.Deliveries, 2)
	for _, d := range result.Deliveries {
		require.True(t, d.Delivered)
	}
}

func TestService_ProcessBookingEvent_Canceled(t *testing.T) {
	t.Parallel()

	ts := newTestService(t, service.Options{})
	ctx := context.Background()

	conn := entity.ClientConnection{
		ID:              uuid.Must(uuid.NewV4()),
		CalendlyUserURI: "https://api.calendly.com/users/USER1",
		Active:          true,
	}

	booking := entity.Booking{
		ID:           uuid.Must(uuid.NewV4()),
		ConnectionID: conn.ID,
		ContactEmail: "jamie@example.com",
		Status:       entity.BookingStatusScheduled,
		StartTime:    time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC),
	}

	body := `{
		"event": "invitee.canceled",
		"payload": {
			"email": "jamie@example.com",
			"scheduled_event": {
				"event_memberships": [{"user": "https://api.calendly.com/users/USER1"}]
			}
		}
	}`

	ts.repo.EXPECT().ActiveConnections(ctx).Return([]entity.ClientConnection{conn}, nil)
	ts.repo.EXPECT().LatestBookingByInvitee(gomock.Any(), conn.ID, "jamie@example.com").Return(booking, nil)
	ts.repo.EXPECT().UpdateBookingStatus(gomock.Any(), booking.ID, entity.BookingStatusCanceled, gomock.Any()).Return(nil)
	ts.producer.EXPECT().PublishBookingEvent(gomock.Any(), "booking.canceled", gomock.Any(), gomock.Any())

	result, err := ts.s.ProcessBookingEvent(ctx, webhookEvent(t, body), []byte(body))
	require.NoError(t, err)
	require.False(t, result.Ignored)
	require.Equal(t, booking.ID, result.BookingID)
	require.Empty(t, result.Deliveries)
}

func TestService_ProcessBookingEvent_UnwatchedType(t *testing.T) {
	t.Parallel()

	ts := newTestService(t, service.Options{})
	ctx := context.Background()

	conn := entity.ClientConnection{
		ID:                uuid.Must(uuid.NewV4()),
		CalendlyUserURI:   "https://api.calendly.com/users/USER1",
		WatchedEventTypes: []string{"Strategy Session"},
		Active:            true,
	}

	ts.repo.EXPECT().ActiveConnections(ctx).Return([]entity.ClientConnection{conn}, nil)

	result, err := ts.s.ProcessBookingEvent(ctx, webhookEvent(t, createdEventBody), []byte(createdEventBody))
	require.NoError(t, err)
	require.True(t, result.Ignored)
	require.Contains(t, result.Reason, "not watched")
}

func TestService_ProcessBookingEvent_SuffixMatch(t *testing.T) {
	t.Parallel()

	ts := newTestService(t, service.Options{})
	ctx := context.Background()

	// Stored URI is host-relative; the event carries the absolute form.
	conn := entity.ClientConnection{
		ID:              uuid.Must(uuid.NewV4()),
		CalendlyUserURI: "users/USER1",
		Active:          true,
	}

	ts.repo.EXPECT().ActiveConnections(ctx).Return([]entity.ClientConnection{conn}, nil)
	ts.repo.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(nil)
	ts.producer.EXPECT().PublishBookingEvent(gomock.Any(), "booking.created", gomock.Any(), gomock.Any())

	result, err := ts.s.ProcessBookingEvent(ctx, webhookEvent(t, createdEventBody), []byte(createdEventBody))
	require.NoError(t, err)
	require.False(t, result.Ignored)
}

func TestService_ProcessBookingEvent_UnknownUser(t *testing.T) {
	t.Parallel()

	ts := newTestService(t, service.Options{})
	ctx := context.Background()

	ts.repo.EXPECT().ActiveConnections(ctx).Return(nil, nil)

	result, err := ts.s.ProcessBookingEvent(ctx, webhookEvent(t, createdEventBody), []byte(createdEventBody))
	require.NoError(t, err)
	require.True(t, result.Ignored)
}

func TestService_ProcessBookingEvent_OtherKind(t *testing.T) {
	t.Parallel()

	ts := newTestService(t, service.Options{})

	result, err := ts.s.ProcessBookingEvent(context.Background(),
		entity.WebhookEvent{Event: "routing_form_submission.created"}, nil)
	require.NoError(t, err)
	require.True(t, result.Ignored)
}
