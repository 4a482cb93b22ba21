package entity

import (
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
)

type BookingStatus string

const (
	BookingStatusScheduled   BookingStatus = "scheduled"
	BookingStatusCompleted   BookingStatus = "completed"
	BookingStatusCanceled    BookingStatus = "canceled"
	BookingStatusRescheduled BookingStatus = "rescheduled"
	BookingStatusArchived    BookingStatus = "archived"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusScheduled, BookingStatusCompleted, BookingStatusCanceled,
		BookingStatusRescheduled, BookingStatusArchived:
		return true
	}

	return false
}

type Booking struct {
	ID           uuid.UUID     `json:"id"`
	ConnectionID uuid.UUID     `json:"connection_id"`
	ContactName  string        `json:"contact_name"`
	ContactEmail string        `json:"contact_email"`
	ContactPhone string        `json:"contact_phone"`
	EventType    string        `json:"event_type"`
	EventURI     string        `json:"event_uri"`
	StartTime    time.Time     `json:"start_time"`
	Status       BookingStatus `json:"status"`
	ShowedUp     *bool         `json:"showed_up,omitempty"`
	CallOutcome  string        `json:"call_outcome,omitempty"`
	Notes        string        `json:"notes,omitempty"`
	RawPayload   []byte        `json:"-"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// BookingOutcome carries the operator-editable fields of a booking.
type BookingOutcome struct {
	Status      *BookingStatus `json:"status,omitempty"`
	ShowedUp    *bool          `json:"showed_up,omitempty"`
	CallOutcome *string        `json:"call_outcome,omitempty"`
	Notes       *string        `json:"notes,omitempty"`
}

type BookingFilter struct {
	ConnectionID uuid.UUID
	Status       BookingStatus
	From         *time.Time
	To           *time.Time
	Limit        int
	Offset       int
}

// WebhookEvent is the inbound Calendly event envelope. Only the fields the
// pipeline reads are modeled; the raw body is persisted alongside the booking.
type WebhookEvent struct {
	Event     string    `json:"event"`
	CreatedAt time.Time `json:"created_at"`
	Payload   struct {
		URI       string `json:"uri"`
		Name      string `json:"name"`
		Email     string `json:"email"`
		Timezone  string `json:"timezone"`
		EventType struct {
			URI  string `json:"uri"`
			Name string `json:"name"`
		} `json:"event_type"`
		ScheduledEvent struct {
			URI              string    `json:"uri"`
			StartTime        time.Time `json:"start_time"`
			EventMemberships []struct {
				User string `json:"user"`
			} `json:"event_memberships"`
		} `json:"scheduled_event"`
		QuestionsAndAnswers []struct {
			Question string `json:"question"`
			Answer   string `json:"answer"`
		} `json:"questions_and_answers"`
		TextReminderNumber string `json:"text_reminder_number"`
		Rescheduled        bool   `json:"rescheduled"`
		CancelURL          string `json:"cancel_url"`
		RescheduleURL      string `json:"reschedule_url"`
	} `json:"payload"`
}

const (
	WebhookEventInviteeCreated  = "invitee.created"
	WebhookEventInviteeCanceled = "invitee.canceled"
)

// UserURI returns the provider user reference the event belongs to.
func (e WebhookEvent) UserURI() string {
	if len(e.Payload.ScheduledEvent.EventMemberships) == 0 {
		return ""
	}

	return e.Payload.ScheduledEvent.EventMemberships[0].User
}

// Phone returns the invitee phone, preferring the text-reminder number and
// falling back to a question answer that looks like a phone question.
func (e WebhookEvent) Phone() string {
	if e.Payload.TextReminderNumber != "" {
		return e.Payload.TextReminderNumber
	}

	for _, qa := range e.Payload.QuestionsAndAnswers {
		if strings.Contains(strings.ToLower(qa.Question), "phone") {
			return qa.Answer
		}
	}

	return ""
}
