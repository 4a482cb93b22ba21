package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/clientdesk/backend/internal/clients/highlevel"
	"github.com/clientdesk/backend/internal/clients/slack"
	"github.com/clientdesk/backend/internal/entity"
	"github.com/clientdesk/backend/pkg/logger"
)

// BookingEventResult is what the webhook handler reports back. Ignored
// events and best-effort delivery failures are still success to the caller:
// the one hard requirement is durability of the booking row.
type BookingEventResult struct {
	Ignored    bool                    `json:"ignored,omitempty"`
	Reason     string                  `json:"reason,omitempty"`
	BookingID  uuid.UUID               `json:"booking_id,omitempty"`
	Deliveries []entity.DeliveryResult `json:"deliveries,omitempty"`
}

func ignored(reason string) BookingEventResult {
	return BookingEventResult{Ignored: true, Reason: reason}
}

// ProcessBookingEvent runs the inbound pipeline: event filter, client
// matching, watched-type gate, then cancel or create. raw is the verbatim
// request body, persisted with the booking for audit.
func (s *Service) ProcessBookingEvent(ctx context.Context, event entity.WebhookEvent, raw []byte) (BookingEventResult, error) {
	switch event.Event {
	case entity.WebhookEventInviteeCreated, entity.WebhookEventInviteeCanceled:
	default:
		return ignored("unhandled event kind: " + event.Event), nil
	}

	userURI := event.UserURI()
	if userURI == "" {
		return ignored("event carries no user reference"), nil
	}

	conns, err := s.repo.ActiveConnections(ctx)
	if err != nil {
		return BookingEventResult{}, fmt.Errorf("load active connections: %w", err)
	}

	conn, ok := matchConnection(ctx, conns, userURI)
	if !ok {
		return ignored("no active connection for user " + userURI), nil
	}

	ctx = logger.WithConnectionID(ctx, conn.ID)

	if !conn.WatchesEventType(event.Payload.EventType.Name) {
		return ignored("event type not watched: " + event.Payload.EventType.Name), nil
	}

	if event.Event == entity.WebhookEventInviteeCanceled {
		return s.processCancellation(ctx, conn, event)
	}

	return s.processCreation(ctx, conn, event, raw)
}

// matchConnection scans for the connection owning the event's user URI:
// exact match first, suffix fallback second. The fallback exists because
// older rows may hold a host-relative URI; which pass hit is logged so the
// data-normalization question stays visible.
func matchConnection(ctx context.Context, conns []entity.ClientConnection, userURI string) (entity.ClientConnection, bool) {
	for _, c := range conns {
		if c.CalendlyUserURI == userURI {
			return c, true
		}
	}

	for _, c := range conns {
		if c.CalendlyUserURI == "" {
			continue
		}

		if strings.HasSuffix(userURI, c.CalendlyUserURI) || strings.HasSuffix(c.CalendlyUserURI, userURI) {
			slog.WarnContext(ctx, "connection matched by URI suffix only",
				"stored", c.CalendlyUserURI, "event", userURI)
			return c, true
		}
	}

	return entity.ClientConnection{}, false
}

func (s *Service) processCancellation(ctx context.Context, conn entity.ClientConnection, event entity.WebhookEvent) (BookingEventResult, error) {
	booking, err := s.repo.LatestBookingByInvitee(ctx, conn.ID, event.Payload.Email)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return ignored("no booking on file for " + event.Payload.Email), nil
		}

		return BookingEventResult{}, fmt.Errorf("find booking: %w", err)
	}

	err = s.repo.UpdateBookingStatus(ctx, booking.ID, entity.BookingStatusCanceled, time.Now())
	if err != nil {
		return BookingEventResult{}, fmt.Errorf("cancel booking: %w", err)
	}

	booking.Status = entity.BookingStatusCanceled

	result := BookingEventResult{BookingID: booking.ID}

	if conn.SlackChannelID != "" {
		text := fmt.Sprintf("❌ %s canceled their %s call (%s).",
			booking.ContactName, booking.EventType, booking.StartTime.In(conn.Location()).Format("Mon Jan 2, 3:04 PM"))

		result.Deliveries = append(result.Deliveries,
			s.deliverSlack(ctx, slack.Message{Channel: conn.SlackChannelID, Text: text}))
	}

	if conn.ChatWebhookURL != "" {
		result.Deliveries = append(result.Deliveries,
			s.deliverChatWebhook(ctx, conn.ChatWebhookURL, cancellationNotice(conn, booking)))
	}

	s.producer.PublishBookingEvent(ctx, "booking.canceled", booking, conn)

	return result, nil
}

func (s *Service) processCreation(ctx context.Context, conn entity.ClientConnection, event entity.WebhookEvent, raw []byte) (BookingEventResult, error) {
	now := time.Now()

	status := entity.BookingStatusScheduled
	if event.Payload.Rescheduled {
		status = entity.BookingStatusRescheduled
	}

	booking := entity.Booking{
		ID:           uuid.Must(uuid.NewV4()),
		ConnectionID: conn.ID,
		ContactName:  event.Payload.Name,
		ContactEmail: event.Payload.Email,
		ContactPhone: event.Phone(),
		EventType:    event.Payload.EventType.Name,
		EventURI:     event.Payload.ScheduledEvent.URI,
		StartTime:    event.Payload.ScheduledEvent.StartTime,
		Status:       status,
		RawPayload:   raw,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	result := BookingEventResult{BookingID: booking.ID}

	if conn.GHLLocationID != "" && conn.GHLAPIKey != "" {
		contact := highlevel.Contact{
			Name:       booking.ContactName,
			Email:      booking.ContactEmail,
			Phone:      booking.ContactPhone,
			Source:     "calendly",
			LocationID: conn.GHLLocationID,
		}

		_, err := s.crm.UpsertContact(ctx, conn.GHLAPIKey, contact)
		if err != nil {
			slog.WarnContext(ctx, "crm contact upsert", "error", err)
			result.Deliveries = append(result.Deliveries, entity.NotDelivered("crm", err))
		} else {
			result.Deliveries = append(result.Deliveries, entity.Delivered("crm"))
		}
	}

	if conn.SlackChannelID != "" {
		result.Deliveries = append(result.Deliveries,
			s.deliverSlack(ctx, bookingMessage(conn, booking, event)))
	}

	if conn.ChatWebhookURL != "" {
		result.Deliveries = append(result.Deliveries,
			s.deliverChatWebhook(ctx, conn.ChatWebhookURL, bookingNotice(conn, booking, event)))
	}

	// The only failure the caller ever sees: the booking row must land.
	err := s.repo.CreateBooking(ctx, booking)
	if err != nil {
		return BookingEventResult{}, fmt.Errorf("persist booking: %w", err)
	}

	s.producer.PublishBookingEvent(ctx, "booking.created", booking, conn)

	return result, nil
}

func (s *Service) deliverSlack(ctx context.Context, msg slack.Message) entity.DeliveryResult {
	err := s.slack.PostMessage(ctx, msg)
	if err != nil {
		slog.WarnContext(ctx, "slack notification", "error", err, "channel", msg.Channel)
		return entity.NotDelivered("slack", err)
	}

	return entity.Delivered("slack")
}

func (s *Service) deliverChatWebhook(ctx context.Context, url string, payload any) entity.DeliveryResult {
	err := s.poster.Post(ctx, url, payload)
	if err != nil {
		slog.WarnContext(ctx, "chat webhook notification", "error", err)
		return entity.NotDelivered("chat_webhook", err)
	}

	return entity.Delivered("chat_webhook")
}
