package api

import (
	"net/http"

	"github.com/clientdesk/backend/internal/entity"
)

type SyncStatsResponse struct {
	Success bool               `json:"success"`
	Synced  int                `json:"synced"`
	Total   int                `json:"total"`
	Results []entity.SyncResult `json:"results"`
}

// SyncStats runs a full campaign-stats poll on demand. The same code path
// runs on the cron schedule.
func (h *Handler) SyncStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summary, err := h.s.SyncCampaignStats(ctx)
	if err != nil {
		SendServiceErr(ctx, w, err, "failed to sync stats")
		return
	}

	SendJSON(ctx, w, http.StatusOK, SyncStatsResponse{
		Success: true,
		Synced:  summary.Synced,
		Total:   summary.Total,
		Results: summary.Results,
	})
}
