package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/clientdesk/backend/internal/entity"
)

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SendJSONErr logs the origin error with full detail and answers the caller
// with only the public message. Persistence and upstream internals never
// leave the process in a response body.
func SendJSONErr(ctx context.Context, w http.ResponseWriter, code int, originErr error, msgToSend string) {
	if originErr != nil {
		slog.ErrorContext(ctx, "api error", "error", originErr.Error())
	}

	SendJSON(ctx, w, code, ErrorResponse{Success: false, Message: msgToSend})
}

func SendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		code = http.StatusInternalServerError
		http.Error(w, http.StatusText(code), code)

		slog.ErrorContext(ctx, "encode response", "error", err)
	}
}

// SendServiceErr maps the service sentinel errors onto HTTP statuses.
func SendServiceErr(ctx context.Context, w http.ResponseWriter, err error, msgToSend string) {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		SendJSONErr(ctx, w, http.StatusNotFound, err, msgToSend)
	case errors.Is(err, entity.ErrInvalidArgument):
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, msgToSend)
	case errors.Is(err, entity.ErrUnauthenticated):
		SendJSONErr(ctx, w, http.StatusUnauthorized, err, msgToSend)
	case errors.Is(err, entity.ErrForbidden):
		SendJSONErr(ctx, w, http.StatusForbidden, err, msgToSend)
	case errors.Is(err, entity.ErrDuplicate):
		SendJSONErr(ctx, w, http.StatusConflict, err, msgToSend)
	case errors.Is(err, entity.ErrUpstream):
		SendJSONErr(ctx, w, http.StatusBadGateway, err, msgToSend)
	default:
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, msgToSend)
	}
}
