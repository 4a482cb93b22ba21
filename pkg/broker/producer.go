package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"

	"github.com/clientdesk/backend/internal/entity"
)

type Producer struct {
	l     *slog.Logger
	w     *kafka.Writer
	topic string
}

func NewProducer(l *slog.Logger, brokers []string, topic string) *Producer {
	l = l.WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  "",
		Balancer:               &kafka.LeastBytes{},
		Async:                  true,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:     l,
		w:     w,
		topic: topic,
	}
}

type BookingEvent struct {
	Type         string    `json:"type"`
	BookingID    uuid.UUID `json:"booking_id"`
	ConnectionID uuid.UUID `json:"connection_id"`
	ClientName   string    `json:"client_name"`
	ContactEmail string    `json:"contact_email"`
	EventType    string    `json:"event_type"`
	StartTime    time.Time `json:"start_time"`
	Status       string    `json:"status"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// PublishBookingEvent is fire-and-forget: failures are logged, never
// returned, so the webhook pipeline's durability contract is unaffected.
func (p *Producer) PublishBookingEvent(ctx context.Context, eventType string, b entity.Booking, conn entity.ClientConnection) {
	event := BookingEvent{
		Type:         eventType,
		BookingID:    b.ID,
		ConnectionID: conn.ID,
		ClientName:   conn.ClientName,
		ContactEmail: b.ContactEmail,
		EventType:    b.EventType,
		StartTime:    b.StartTime,
		Status:       string(b.Status),
		OccurredAt:   time.Now(),
	}

	body, err := json.Marshal(event)
	if err != nil {
		p.l.Error(fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(conn.ID.String()),
		Value: body,
		Topic: p.topic,
	})
	if err != nil {
		p.l.Error(fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}

// NopProducer satisfies the producer seam when the event stream is disabled.
type NopProducer struct{}

func (NopProducer) PublishBookingEvent(context.Context, string, entity.Booking, entity.ClientConnection) {
}

func (NopProducer) Close() {}
