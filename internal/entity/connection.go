package entity

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
)

// ClientConnection is one onboarded client: its Calendly credentials, CRM
// location, notification channels and the access token its dashboard uses.
type ClientConnection struct {
	ID                     uuid.UUID  `json:"id"`
	ClientName             string     `json:"client_name"`
	CalendlyToken          string     `json:"calendly_token,omitempty"`
	CalendlyUserURI        string     `json:"calendly_user_uri"`
	CalendlyOrgURI         string     `json:"calendly_org_uri"`
	WebhookSubscriptionURI string     `json:"webhook_subscription_uri,omitempty"`
	GHLLocationID          string     `json:"ghl_location_id"`
	GHLAPIKey              string     `json:"ghl_api_key,omitempty"`
	SlackChannelID         string     `json:"slack_channel_id"`
	SlackChannelName       string     `json:"slack_channel_name"`
	ChatWebhookURL         string     `json:"chat_webhook_url,omitempty"`
	StatsAPIURL            string     `json:"stats_api_url,omitempty"`
	StatsAPIKey            string     `json:"stats_api_key,omitempty"`
	AccessToken            string     `json:"access_token"`
	Active                 bool       `json:"active"`
	WatchedEventTypes      []string   `json:"watched_event_types"`
	Timezone               string     `json:"timezone"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`
}

// Redacted returns a copy safe to hand to the client-facing dashboard:
// provider credentials are stripped, the access token stays (it is the
// dashboard's own credential).
func (c ClientConnection) Redacted() ClientConnection {
	c.CalendlyToken = ""
	c.GHLAPIKey = ""
	c.StatsAPIKey = ""
	c.ChatWebhookURL = ""
	return c
}

// WatchesEventType reports whether the connection processes events of the
// given event-type name. An empty watch list means everything is watched.
func (c ClientConnection) WatchesEventType(name string) bool {
	if len(c.WatchedEventTypes) == 0 {
		return true
	}

	for _, t := range c.WatchedEventTypes {
		if strings.EqualFold(t, name) {
			return true
		}
	}

	return false
}

// Location resolves the connection's timezone, falling back to UTC when the
// stored value is empty or invalid.
func (c ClientConnection) Location() *time.Location {
	if c.Timezone == "" {
		return time.UTC
	}

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}

	return loc
}

const (
	accessCodeLetters = "ABCDEFGHJKMNPQRSTUVWXYZ" // no I, L, O
	accessCodeDigits  = "0123456789"
)

// NewAccessCode generates the 3-letter+4-digit dashboard code, e.g. "KTX4821".
func NewAccessCode() (string, error) {
	var b strings.Builder

	for i := 0; i < 3; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(accessCodeLetters))))
		if err != nil {
			return "", fmt.Errorf("read random: %w", err)
		}

		b.WriteByte(accessCodeLetters[n.Int64()])
	}

	for i := 0; i < 4; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(accessCodeDigits))))
		if err != nil {
			return "", fmt.Errorf("read random: %w", err)
		}

		b.WriteByte(accessCodeDigits[n.Int64()])
	}

	return b.String(), nil
}
