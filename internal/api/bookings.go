package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/clientdesk/backend/internal/entity"
)

type BookingsResponse struct {
	Success  bool             `json:"success"`
	Bookings []entity.Booking `json:"bookings"`
}

// Bookings lists bookings across connections for the admin view. All query
// parameters are optional: connection_id, status, from, to (RFC 3339),
// limit, offset.
func (h *Handler) Bookings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	var f entity.BookingFilter

	if v := q.Get("connection_id"); v != "" {
		id, err := uuid.FromString(v)
		if err != nil {
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "'connection_id' must be a UUID")
			return
		}

		f.ConnectionID = id
	}

	if v := q.Get("status"); v != "" {
		status := entity.BookingStatus(v)
		if !status.Valid() {
			SendJSONErr(ctx, w, http.StatusUnprocessableEntity, nil, "unknown booking status")
			return
		}

		f.Status = status
	}

	for name, dst := range map[string]**time.Time{"from": &f.From, "to": &f.To} {
		if v := q.Get(name); v != "" {
			ts, err := time.Parse(time.RFC3339, v)
			if err != nil {
				SendJSONErr(ctx, w, http.StatusBadRequest, err, "'"+name+"' must be RFC 3339")
				return
			}

			*dst = &ts
		}
	}

	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "'limit' must be a non-negative integer")
			return
		}

		f.Limit = n
	}

	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "'offset' must be a non-negative integer")
			return
		}

		f.Offset = n
	}

	bookings, err := h.s.Bookings(ctx, f)
	if err != nil {
		SendServiceErr(ctx, w, err, "failed to list bookings")
		return
	}

	SendJSON(ctx, w, http.StatusOK, BookingsResponse{Success: true, Bookings: bookings})
}
