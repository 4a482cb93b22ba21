package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/clientdesk/backend/internal/entity"
	"github.com/clientdesk/backend/pkg/security"
)

const signatureHeader = "Calendly-Webhook-Signature"

type WebhookResponse struct {
	Success    bool                    `json:"success"`
	Ignored    bool                    `json:"ignored,omitempty"`
	Reason     string                  `json:"reason,omitempty"`
	Deliveries []entity.DeliveryResult `json:"deliveries,omitempty"`
}

// CalendlyWebhook receives scheduling events. The raw body is read before
// anything else: the signature covers the exact bytes on the wire, and the
// pipeline persists them verbatim with the booking.
func (h *Handler) CalendlyWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "read request body")
		return
	}

	if h.webhookSigningKey == "" {
		slog.WarnContext(ctx, "webhook signing key not configured, accepting unverified event")
	} else {
		err = security.VerifyWebhookSignature(
			r.Header.Get(signatureHeader), body, h.webhookSigningKey, h.webhookReplayFrame, time.Now())
		if err != nil {
			SendJSONErr(ctx, w, http.StatusUnauthorized, err, "invalid webhook signature")
			return
		}
	}

	var event entity.WebhookEvent

	err = json.Unmarshal(body, &event)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid JSON")
		return
	}

	result, err := h.s.ProcessBookingEvent(ctx, event, body)
	if err != nil {
		SendServiceErr(ctx, w, err, "failed to process event")
		return
	}

	SendJSON(ctx, w, http.StatusOK, WebhookResponse{
		Success:    true,
		Ignored:    result.Ignored,
		Reason:     result.Reason,
		Deliveries: result.Deliveries,
	})
}
