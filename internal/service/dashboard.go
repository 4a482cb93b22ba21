package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/clientdesk/backend/internal/entity"
)

// DashboardPayload is everything the client-facing dashboard needs in one
// response: the connection (credentials redacted), recent stats and
// bookings.
type DashboardPayload struct {
	Connection entity.ClientConnection `json:"connection"`
	Stats      []entity.CampaignStats  `json:"stats"`
	Bookings   []entity.Booking        `json:"bookings"`
}

const (
	dashboardStatsDays    = 90
	dashboardBookingLimit = 200
)

// Dashboard looks a connection up by its access code. The code is the sole
// bearer credential; a miss is ErrNotFound, never a hint about validity.
func (s *Service) Dashboard(ctx context.Context, accessToken string) (DashboardPayload, error) {
	conn, err := s.repo.ConnectionByAccessToken(ctx, accessToken)
	if err != nil {
		return DashboardPayload{}, err
	}

	stats, err := s.repo.CampaignStatsByConnection(ctx, conn.ID, dashboardStatsDays)
	if err != nil {
		return DashboardPayload{}, fmt.Errorf("load stats: %w", err)
	}

	bookings, err := s.repo.Bookings(ctx, entity.BookingFilter{
		ConnectionID: conn.ID,
		Limit:        dashboardBookingLimit,
	})
	if err != nil {
		return DashboardPayload{}, fmt.Errorf("load bookings: %w", err)
	}

	return DashboardPayload{
		Connection: conn.Redacted(),
		Stats:      stats,
		Bookings:   bookings,
	}, nil
}

// UpdateDashboardBooking applies an operator action (showed-up, outcome,
// notes, archive/complete) to a booking owned by the access code's
// connection.
func (s *Service) UpdateDashboardBooking(ctx context.Context, accessToken string, bookingID uuid.UUID, o entity.BookingOutcome) (entity.Booking, error) {
	conn, err := s.repo.ConnectionByAccessToken(ctx, accessToken)
	if err != nil {
		return entity.Booking{}, err
	}

	booking, err := s.repo.Booking(ctx, bookingID)
	if err != nil {
		return entity.Booking{}, err
	}

	if booking.ConnectionID != conn.ID {
		return entity.Booking{}, entity.ErrForbidden
	}

	if o.Status != nil && !o.Status.Valid() {
		return entity.Booking{}, fmt.Errorf("%w: bad status %q", entity.ErrInvalidArgument, *o.Status)
	}

	return s.repo.UpdateBookingOutcome(ctx, bookingID, o, time.Now())
}

func (s *Service) Bookings(ctx context.Context, f entity.BookingFilter) ([]entity.Booking, error) {
	return s.repo.Bookings(ctx, f)
}

// DashboardReports lists the connection's uploaded report artifacts.
func (s *Service) DashboardReports(ctx context.Context, accessToken string) ([]entity.Report, error) {
	conn, err := s.repo.ConnectionByAccessToken(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	return s.repo.Reports(ctx, conn.ID)
}
