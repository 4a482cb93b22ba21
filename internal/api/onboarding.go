package api

import (
	"io"
	"net/http"

	"github.com/clientdesk/backend/internal/entity"
	"github.com/clientdesk/backend/internal/service"
)

type OnboardingResponse struct {
	Success    bool                        `json:"success"`
	Submission entity.OnboardingSubmission `json:"submission"`
	Deliveries []entity.DeliveryResult     `json:"deliveries,omitempty"`
}

// SubmitOnboarding accepts the public intake form: business_name,
// contact_email, an answers JSON field, and any number of file parts
// under "files".
func (h *Handler) SubmitOnboarding(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := r.ParseMultipartForm(maxUploadBytes)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid multipart form")
		return
	}

	req := service.OnboardingRequest{
		BusinessName: r.FormValue("business_name"),
		ContactEmail: r.FormValue("contact_email"),
		Answers:      []byte(r.FormValue("answers")),
	}

	if r.MultipartForm != nil {
		for _, header := range r.MultipartForm.File["files"] {
			file, err := header.Open()
			if err != nil {
				SendJSONErr(ctx, w, http.StatusBadRequest, err, "open uploaded file")
				return
			}

			data, err := io.ReadAll(file)
			file.Close()

			if err != nil {
				SendJSONErr(ctx, w, http.StatusInternalServerError, err, "read uploaded file")
				return
			}

			req.Files = append(req.Files, service.OnboardingFile{
				Filename:    header.Filename,
				ContentType: header.Header.Get("Content-Type"),
				Data:        data,
			})
		}
	}

	submission, deliveries, err := h.s.SubmitOnboarding(ctx, req)
	if err != nil {
		SendServiceErr(ctx, w, err, "failed to submit onboarding")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, OnboardingResponse{
		Success:    true,
		Submission: submission,
		Deliveries: deliveries,
	})
}

type OnboardingListResponse struct {
	Success     bool                          `json:"success"`
	Submissions []entity.OnboardingSubmission `json:"submissions"`
}

func (h *Handler) OnboardingSubmissions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	submissions, err := h.s.OnboardingSubmissions(ctx)
	if err != nil {
		SendServiceErr(ctx, w, err, "failed to list submissions")
		return
	}

	SendJSON(ctx, w, http.StatusOK, OnboardingListResponse{Success: true, Submissions: submissions})
}

func (h *Handler) OnboardingSubmission(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'id' must be a UUID")
		return
	}

	submission, err := h.s.OnboardingSubmission(ctx, id)
	if err != nil {
		SendServiceErr(ctx, w, err, "submission not found")
		return
	}

	SendJSON(ctx, w, http.StatusOK, OnboardingResponse{Success: true, Submission: submission})
}
