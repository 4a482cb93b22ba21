package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clientdesk/backend/internal/entity"
)

type DashboardResponse struct {
	Success    bool                    `json:"success"`
	Connection entity.ClientConnection `json:"connection"`
	Stats      []entity.CampaignStats  `json:"stats"`
	Bookings   []entity.Booking        `json:"bookings"`
}

// Dashboard serves the client-facing view keyed by access code. An unknown
// code answers 404 with a generic message, never a hint about code validity.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accessToken := chi.URLParam(r, "accessToken")
	if accessToken == "" {
		SendJSONErr(ctx, w, http.StatusBadRequest, nil, "access code is required")
		return
	}

	payload, err := h.s.Dashboard(ctx, accessToken)
	if err != nil {
		SendServiceErr(ctx, w, err, "dashboard not found")
		return
	}

	SendJSON(ctx, w, http.StatusOK, DashboardResponse{
		Success:    true,
		Connection: payload.Connection.Redacted(),
		Stats:      payload.Stats,
		Bookings:   payload.Bookings,
	})
}

type UpdateBookingResponse struct {
	Success bool           `json:"success"`
	Booking entity.Booking `json:"booking"`
}

// UpdateDashboardBooking records a call outcome on a booking owned by the
// dashboard's connection.
func (h *Handler) UpdateDashboardBooking(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accessToken := chi.URLParam(r, "accessToken")
	if accessToken == "" {
		SendJSONErr(ctx, w, http.StatusBadRequest, nil, "access code is required")
		return
	}

	bookingID, err := pathUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'id' must be a UUID")
		return
	}

	var outcome entity.BookingOutcome

	err = json.NewDecoder(r.Body).Decode(&outcome)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid JSON")
		return
	}

	booking, err := h.s.UpdateDashboardBooking(ctx, accessToken, bookingID, outcome)
	if err != nil {
		SendServiceErr(ctx, w, err, "failed to update booking")
		return
	}

	SendJSON(ctx, w, http.StatusOK, UpdateBookingResponse{Success: true, Booking: booking})
}

type DashboardReportsResponse struct {
	Success bool            `json:"success"`
	Reports []entity.Report `json:"reports"`
}

func (h *Handler) DashboardReports(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accessToken := chi.URLParam(r, "accessToken")
	if accessToken == "" {
		SendJSONErr(ctx, w, http.StatusBadRequest, nil, "access code is required")
		return
	}

	reports, err := h.s.DashboardReports(ctx, accessToken)
	if err != nil {
		SendServiceErr(ctx, w, err, "failed to list reports")
		return
	}

	SendJSON(ctx, w, http.StatusOK, DashboardReportsResponse{Success: true, Reports: reports})
}
