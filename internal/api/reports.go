package api

import (
	"io"
	"net/http"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/clientdesk/backend/internal/entity"
)

const maxUploadBytes = 32 << 20

type ReportResponse struct {
	Success bool          `json:"success"`
	Report  entity.Report `json:"report"`
}

// UploadReport accepts a multipart form with connection_id, name,
// report_date (YYYY-MM-DD) and a single file part.
func (h *Handler) UploadReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := r.ParseMultipartForm(maxUploadBytes)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid multipart form")
		return
	}

	connectionID, err := uuid.FromString(r.FormValue("connection_id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'connection_id' must be a UUID")
		return
	}

	name := r.FormValue("name")

	reportDate, err := time.Parse("2006-01-02", r.FormValue("report_date"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'report_date' must be YYYY-MM-DD")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'file' part is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "read uploaded file")
		return
	}

	report, err := h.s.UploadReport(ctx, connectionID, name, reportDate,
		header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		SendServiceErr(ctx, w, err, "failed to upload report")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, ReportResponse{Success: true, Report: report})
}

type ReportsResponse struct {
	Success bool            `json:"success"`
	Reports []entity.Report `json:"reports"`
}

func (h *Handler) Reports(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var connectionID uuid.UUID

	if q := r.URL.Query().Get("connection_id"); q != "" {
		id, err := uuid.FromString(q)
		if err != nil {
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "'connection_id' must be a UUID")
			return
		}

		connectionID = id
	}

	reports, err := h.s.Reports(ctx, connectionID)
	if err != nil {
		SendServiceErr(ctx, w, err, "failed to list reports")
		return
	}

	SendJSON(ctx, w, http.StatusOK, ReportsResponse{Success: true, Reports: reports})
}

func (h *Handler) DeleteReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'id' must be a UUID")
		return
	}

	err = h.s.DeleteReport(ctx, id)
	if err != nil {
		SendServiceErr(ctx, w, err, "failed to delete report")
		return
	}

	SendJSON(ctx, w, http.StatusOK, SuccessResponse{Success: true})
}
