package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// CampaignStats is one connection's aggregate counters for one calendar day
// in the connection's timezone. Unique on (ConnectionID, StatDate).
type CampaignStats struct {
	ID             uuid.UUID       `json:"id"`
	ConnectionID   uuid.UUID       `json:"connection_id"`
	StatDate       time.Time       `json:"stat_date"`
	Sent           int             `json:"sent"`
	Responses      int             `json:"responses"`
	Connections    int             `json:"connections"`
	ResponseRate   decimal.Decimal `json:"response_rate"`
	ConnectionRate decimal.Decimal `json:"connection_rate"`
	Raw            []byte          `json:"-"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// NormalizedStats is the provider-shape-independent result of one stats
// fetch, produced by the statsapi adapters.
type NormalizedStats struct {
	Sent        int
	Responses   int
	Connections int
	Raw         []byte
}

func (n NormalizedStats) Rates() (responseRate, connectionRate decimal.Decimal) {
	if n.Sent == 0 {
		return decimal.Zero, decimal.Zero
	}

	sent := decimal.NewFromInt(int64(n.Sent))
	responseRate = decimal.NewFromInt(int64(n.Responses)).Div(sent).Mul(decimal.NewFromInt(100)).Round(2)
	connectionRate = decimal.NewFromInt(int64(n.Connections)).Div(sent).Mul(decimal.NewFromInt(100)).Round(2)

	return responseRate, connectionRate
}

// SyncResult is one connection's outcome within a stats-sync run.
type SyncResult struct {
	ConnectionID uuid.UUID `json:"connection_id"`
	ClientName   string    `json:"client_name"`
	Synced       bool      `json:"synced"`
	Error        string    `json:"error,omitempty"`
}

// SyncSummary is the partial-success summary of a full stats-sync run.
type SyncSummary struct {
	Synced  int          `json:"synced"`
	Total   int          `json:"total"`
	Results []SyncResult `json:"results"`
}
