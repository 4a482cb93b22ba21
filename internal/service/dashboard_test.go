package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/clientdesk/backend/internal/entity"
	"github.com/clientdesk/backend/internal/service"
)

func TestService_Dashboard_RedactsCredentials(t *testing.T) {
	ts := newTestService(t, service.Options{})
	ctx := context.Background()

	conn := entity.ClientConnection{
		ID:            uuid.Must(uuid.NewV4()),
		ClientName:    "Acme Roofing",
		CalendlyToken: "cal-secret",
		GHLAPIKey:     "ghl-secret",
		StatsAPIKey:   "stats-secret",
		AccessToken:   "ABC1234",
		Active:        true,
	}

	ts.repo.EXPECT().ConnectionByAccessToken(gomock.Any(), "ABC1234").Return(conn, nil)
	ts.repo.EXPECT().CampaignStatsByConnection(gomock.Any(), conn.ID, 90).
		Return([]entity.CampaignStats{{ConnectionID: conn.ID}}, nil)
	ts.repo.EXPECT().Bookings(gomock.Any(), entity.BookingFilter{ConnectionID: conn.ID, Limit: 200}).
		Return([]entity.Booking{{ConnectionID: conn.ID}}, nil)

	payload, err := ts.s.Dashboard(ctx, "ABC1234")
	require.NoError(t, err)

	require.Empty(t, payload.Connection.CalendlyToken)
	require.Empty(t, payload.Connection.GHLAPIKey)
	require.Empty(t, payload.Connection.StatsAPIKey)
	require.Equal(t, "ABC1234", payload.Connection.AccessToken)
	require.Len(t, payload.Stats, 1)
	require.Len(t, payload.Bookings, 1)
}

func TestService_Dashboard_UnknownCode(t *testing.T) {
	ts := newTestService(t, service.Options{})

	ts.repo.EXPECT().ConnectionByAccessToken(gomock.Any(), "ZZZ0000").
		Return(entity.ClientConnection{}, entity.ErrNotFound)

	_, err := ts.s.Dashboard(context.Background(), "ZZZ0000")
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestService_UpdateDashboardBooking_ForeignBooking(t *testing.T) {
	ts := newTestService(t, service.Options{})
	ctx := context.Background()

	conn := entity.ClientConnection{ID: uuid.Must(uuid.NewV4())}
	booking := entity.Booking{
		ID:           uuid.Must(uuid.NewV4()),
		ConnectionID: uuid.Must(uuid.NewV4()),
	}

	ts.repo.EXPECT().ConnectionByAccessToken(gomock.Any(), "ABC1234").Return(conn, nil)
	ts.repo.EXPECT().Booking(gomock.Any(), booking.ID).Return(booking, nil)

	_, err := ts.s.UpdateDashboardBooking(ctx, "ABC1234", booking.ID, entity.BookingOutcome{})
	require.ErrorIs(t, err, entity.ErrForbidden)
}

func TestService_UpdateDashboardBooking_BadStatus(t *testing.T) {
	ts := newTestService(t, service.Options{})
	ctx := context.Background()

	conn := entity.ClientConnection{ID: uuid.Must(uuid.NewV4())}
	booking := entity.Booking{ID: uuid.Must(uuid.NewV4()), ConnectionID: conn.ID}

	ts.repo.EXPECT().ConnectionByAccessToken(gomock.Any(), "ABC1234").Return(conn, nil)
	ts.repo.EXPECT().Booking(gomock.Any(), booking.ID).Return(booking, nil)

	bad := entity.BookingStatus("no-show-ish")

	_, err := ts.s.UpdateDashboardBooking(ctx, "ABC1234", booking.ID, entity.BookingOutcome{Status: &bad})
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestService_UpdateDashboardBooking_Applies(t *testing.T) {
	ts := newTestService(t, service.Options{})
	ctx := context.Background()

	conn := entity.ClientConnection{ID: uuid.Must(uuid.NewV4())}
	booking := entity.Booking{ID: uuid.Must(uuid.NewV4()), ConnectionID: conn.ID}

	showedUp := true
	status := entity.BookingStatusCompleted
	outcome := entity.BookingOutcome{Status: &status, ShowedUp: &showedUp}

	ts.repo.EXPECT().ConnectionByAccessToken(gomock.Any(), "ABC1234").Return(conn, nil)
	ts.repo.EXPECT().Booking(gomock.Any(), booking.ID).Return(booking, nil)
	ts.repo.EXPECT().UpdateBookingOutcome(gomock.Any(), booking.ID, outcome, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, o entity.BookingOutcome, at time.Time) (entity.Booking, error) {
			updated := booking
			updated.Status = *o.Status
			updated.ShowedUp = o.ShowedUp
			updated.UpdatedAt = at
			return updated, nil
		})

	updated, err := ts.s.UpdateDashboardBooking(ctx, "ABC1234", booking.ID, outcome)
	require.NoError(t, err)
	require.Equal(t, entity.BookingStatusCompleted, updated.Status)
	require.NotNil(t, updated.ShowedUp)
	require.True(t, *updated.ShowedUp)
}
