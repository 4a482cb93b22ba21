package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clientdesk/backend/internal/entity"
)

func mustEvent(t *testing.T, body string) entity.WebhookEvent {
	t.Helper()

	var event entity.WebhookEvent
	require.NoError(t, json.Unmarshal([]byte(body), &event))

	return event
}

func TestWebhookEvent_Phone(t *testing.T) {
	reminder := mustEvent(t, `{"payload":{"text_reminder_number":"+15550100"}}`)
	require.Equal(t, "+15550100", reminder.Phone())

	answered := mustEvent(t, `{"payload":{"questions_and_answers":[
		{"question":"Company size","answer":"12"},
		{"question":"Best phone number?","answer":"+15550199"}
	]}}`)
	require.Equal(t, "+15550199", answered.Phone())

	neither := mustEvent(t, `{"payload":{}}`)
	require.Empty(t, neither.Phone())
}

func TestWebhookEvent_UserURI(t *testing.T) {
	event := mustEvent(t, `{"payload":{"scheduled_event":{"event_memberships":[
		{"user":"https://api.calendly.com/users/USER1"},
		{"user":"https://api.calendly.com/users/USER2"}
	]}}}`)
	require.Equal(t, "https://api.calendly.com/users/USER1", event.UserURI())

	require.Empty(t, mustEvent(t, `{"payload":{}}`).UserURI())
}

func TestBookingStatus_Valid(t *testing.T) {
	for _, s := range []entity.BookingStatus{
		entity.BookingStatusScheduled,
		entity.BookingStatusCompleted,
		entity.BookingStatusCanceled,
		entity.BookingStatusRescheduled,
		entity.BookingStatusArchived,
	} {
		require.True(t, s.Valid(), s)
	}

	require.False(t, entity.BookingStatus("no-show").Valid())
	require.False(t, entity.BookingStatus("").Valid())
}
