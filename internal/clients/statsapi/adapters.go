package statsapi

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/clientdesk/backend/internal/entity"
)

// The analytics endpoint has shipped (at least) two response shapes over
// time. Each known shape gets its own adapter; Normalize sniffs the shape
// and picks one, so the brittleness stays here instead of leaking into the
// aggregation logic.

var ErrUnknownShape = errors.New("unrecognized stats payload shape")

type adapter func([]byte) (entity.NormalizedStats, bool, error)

var adapters = []adapter{
	normalizeTotalsShape,
	normalizeCampaignListShape,
}

func Normalize(body []byte) (entity.NormalizedStats, error) {
	for _, a := range adapters {
		stats, ok, err := a(body)
		if err != nil {
			return entity.NormalizedStats{}, err
		}

		if ok {
			stats.Raw = body
			return stats, nil
		}
	}

	return entity.NormalizedStats{}, ErrUnknownShape
}

// totalsShape: {"totals": {"sent": N, "responses": N, "connections": N}, ...}
type totalsShape struct {
	Totals *struct {
		Sent        int `json:"sent"`
		Responses   int `json:"responses"`
		Connections int `json:"connections"`
	} `json:"totals"`
}

func normalizeTotalsShape(body []byte) (entity.NormalizedStats, bool, error) {
	var p totalsShape

	err := json.Unmarshal(body, &p)
	if err != nil {
		return entity.NormalizedStats{}, false, fmt.Errorf("unmarshal totals shape: %w", err)
	}

	if p.Totals == nil {
		return entity.NormalizedStats{}, false, nil
	}

	return entity.NormalizedStats{
		Sent:        p.Totals.Sent,
		Responses:   p.Totals.Responses,
		Connections: p.Totals.Connections,
	}, true, nil
}

// campaignListShape: {"campaigns": [{"stats": {"sent": N, ...}}, ...]},
// the older shape, aggregated by summing per-campaign counters.
type campaignListShape struct {
	Campaigns []struct {
		Stats struct {
			Sent        int `json:"sent"`
			Responses   int `json:"responses"`
			Connections int `json:"connections"`
		} `json:"stats"`
	} `json:"campaigns"`
}

func normalizeCampaignListShape(body []byte) (entity.NormalizedStats, bool, error) {
	var p campaignListShape

	err := json.Unmarshal(body, &p)
	if err != nil {
		return entity.NormalizedStats{}, false, fmt.Errorf("unmarshal campaign list shape: %w", err)
	}

	if p.Campaigns == nil {
		return entity.NormalizedStats{}, false, nil
	}

	var stats entity.NormalizedStats

	for _, c := range p.Campaigns {
		stats.Sent += c.Stats.Sent
		stats.Responses += c.Stats.Responses
		stats.Connections += c.Stats.Connections
	}

	return stats, true, nil
}
