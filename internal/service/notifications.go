package service

import (
	"fmt"

	"github.com/clientdesk/backend/internal/clients/chatwebhook"
	"github.com/clientdesk/backend/internal/clients/slack"
	"github.com/clientdesk/backend/internal/entity"
)

const (
	embedColorGreen = 0x2ecc71
	embedColorRed   = 0xe74c3c
)

// bookingMessage builds the rich Slack notification for a new booking.
func bookingMessage(conn entity.ClientConnection, b entity.Booking, event entity.WebhookEvent) slack.Message {
	when := b.StartTime.In(conn.Location()).Format("Mon Jan 2, 3:04 PM MST")

	headline := fmt.Sprintf("📅 New booking for %s", conn.ClientName)
	if b.Status == entity.BookingStatusRescheduled {
		headline = fmt.Sprintf("🔁 Rescheduled booking for %s", conn.ClientName)
	}

	fields := []slack.BlockText{
		{Type: "mrkdwn", Text: "*Contact:*\n" + b.ContactName},
		{Type: "mrkdwn", Text: "*When:*\n" + when},
		{Type: "mrkdwn", Text: "*Event type:*\n" + b.EventType},
	}

	if b.ContactEmail != "" {
		fields = append(fields, slack.BlockText{Type: "mrkdwn", Text: "*Email:*\n" + b.ContactEmail})
	}

	if b.ContactPhone != "" {
		fields = append(fields, slack.BlockText{Type: "mrkdwn", Text: "*Phone:*\n" + b.ContactPhone})
	}

	blocks := []slack.Block{
		{
			Type: "section",
			Text: &slack.BlockText{Type: "mrkdwn", Text: "*" + headline + "*"},
		},
		{
			Type:   "section",
			Fields: fields,
		},
	}

	if event.Payload.RescheduleURL != "" || event.Payload.CancelURL != "" {
		links := ""

		if event.Payload.RescheduleURL != "" {
			links += fmt.Sprintf("<%s|Reschedule>", event.Payload.RescheduleURL)
		}

		if event.Payload.CancelURL != "" {
			if links != "" {
				links += "  ·  "
			}

			links += fmt.Sprintf("<%s|Cancel>", event.Payload.CancelURL)
		}

		blocks = append(blocks, slack.Block{
			Type: "section",
			Text: &slack.BlockText{Type: "mrkdwn", Text: links},
		})
	}

	return slack.Message{
		Channel: conn.SlackChannelID,
		Text:    fmt.Sprintf("%s: %s, %s", headline, b.ContactName, when),
		Blocks:  blocks,
	}
}

// bookingNotice is the embed-shaped equivalent for the webhook chat provider.
func bookingNotice(conn entity.ClientConnection, b entity.Booking, event entity.WebhookEvent) chatwebhook.Notice {
	when := b.StartTime.In(conn.Location()).Format("Mon Jan 2, 3:04 PM MST")

	title := "New booking: " + conn.ClientName
	if b.Status == entity.BookingStatusRescheduled {
		title = "Rescheduled booking: " + conn.ClientName
	}

	fields := []chatwebhook.EmbedField{
		{Name: "Contact", Value: b.ContactName, Inline: true},
		{Name: "When", Value: when, Inline: true},
		{Name: "Event type", Value: b.EventType, Inline: true},
	}

	if b.ContactEmail != "" {
		fields = append(fields, chatwebhook.EmbedField{Name: "Email", Value: b.ContactEmail, Inline: true})
	}

	if b.ContactPhone != "" {
		fields = append(fields, chatwebhook.EmbedField{Name: "Phone", Value: b.ContactPhone, Inline: true})
	}

	return chatwebhook.Notice{
		Embeds: []chatwebhook.Embed{
			{
				Title:  title,
				URL:    event.Payload.RescheduleURL,
				Color:  embedColorGreen,
				Fields: fields,
			},
		},
	}
}

func cancellationNotice(conn entity.ClientConnection, b entity.Booking) chatwebhook.Notice {
	when := b.StartTime.In(conn.Location()).Format("Mon Jan 2, 3:04 PM MST")

	return chatwebhook.Notice{
		Embeds: []chatwebhook.Embed{
			{
				Title:       "Booking canceled: " + conn.ClientName,
				Description: fmt.Sprintf("%s canceled the %s call set for %s.", b.ContactName, b.EventType, when),
				Color:       embedColorRed,
			},
		},
	}
}
