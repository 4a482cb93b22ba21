package api

import (
	"encoding/json"
	"net/http"

	"github.com/clientdesk/backend/internal/entity"
	"github.com/clientdesk/backend/internal/service"
)

type SetupClientResponse struct {
	Success    bool                    `json:"success"`
	Connection entity.ClientConnection `json:"connection"`
	Deliveries []entity.DeliveryResult `json:"deliveries,omitempty"`
}

// SetupClient onboards a new client connection end to end.
func (h *Handler) SetupClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req service.SetupRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid JSON")
		return
	}

	conn, deliveries, err := h.s.SetupClient(ctx, req)
	if err != nil {
		SendServiceErr(ctx, w, err, "failed to set up client")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, SetupClientResponse{
		Success:    true,
		Connection: conn.Redacted(),
		Deliveries: deliveries,
	})
}

type ValidateTokenRequest struct {
	CalendlyToken string `json:"calendly_token"`
}

type ValidateTokenResponse struct {
	Success bool   `json:"success"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	URI     string `json:"uri"`
}

// ValidateToken checks a scheduling token without persisting anything.
func (h *Handler) ValidateToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ValidateTokenRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid JSON")
		return
	}

	if req.CalendlyToken == "" {
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, nil, "calendly_token is required")
		return
	}

	user, err := h.s.ValidateToken(ctx, req.CalendlyToken)
	if err != nil {
		SendServiceErr(ctx, w, err, "token validation failed")
		return
	}

	SendJSON(ctx, w, http.StatusOK, ValidateTokenResponse{
		Success: true,
		Name:    user.Name,
		Email:   user.Email,
		URI:     user.URI,
	})
}

type ChannelsResponse struct {
	Success  bool      `json:"success"`
	Channels []Channel `json:"channels"`
}

type Channel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (h *Handler) ListChannels(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	channels, err := h.s.ListChannels(ctx)
	if err != nil {
		SendServiceErr(ctx, w, err, "failed to list channels")
		return
	}

	res := make([]Channel, 0, len(channels))
	for _, c := range channels {
		res = append(res, Channel{ID: c.ID, Name: c.Name})
	}

	SendJSON(ctx, w, http.StatusOK, ChannelsResponse{Success: true, Channels: res})
}

type ConnectionsResponse struct {
	Success     bool                      `json:"success"`
	Connections []entity.ClientConnection `json:"connections"`
}

func (h *Handler) Connections(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	conns, err := h.s.Connections(ctx)
	if err != nil {
		SendServiceErr(ctx, w, err, "failed to list connections")
		return
	}

	res := make([]entity.ClientConnection, 0, len(conns))
	for _, c := range conns {
		res = append(res, c.Redacted())
	}

	SendJSON(ctx, w, http.StatusOK, ConnectionsResponse{Success: true, Connections: res})
}

type ConnectionResponse struct {
	Success    bool                    `json:"success"`
	Connection entity.ClientConnection `json:"connection"`
}

func (h *Handler) Connection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'id' must be a UUID")
		return
	}

	conn, err := h.s.Connection(ctx, id)
	if err != nil {
		SendServiceErr(ctx, w, err, "connection not found")
		return
	}

	SendJSON(ctx, w, http.StatusOK, ConnectionResponse{Success: true, Connection: conn.Redacted()})
}

func (h *Handler) UpdateConnection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'id' must be a UUID")
		return
	}

	var req service.UpdateConnectionRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid JSON")
		return
	}

	conn, err := h.s.UpdateConnection(ctx, id, req)
	if err != nil {
		SendServiceErr(ctx, w, err, "failed to update connection")
		return
	}

	SendJSON(ctx, w, http.StatusOK, ConnectionResponse{Success: true, Connection: conn.Redacted()})
}

type SetActiveRequest struct {
	Active bool `json:"active"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

func (h *Handler) SetConnectionActive(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'id' must be a UUID")
		return
	}

	var req SetActiveRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid JSON")
		return
	}

	err = h.s.SetConnectionActive(ctx, id, req.Active)
	if err != nil {
		SendServiceErr(ctx, w, err, "failed to update connection")
		return
	}

	SendJSON(ctx, w, http.StatusOK, SuccessResponse{Success: true})
}

func (h *Handler) DeleteConnection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'id' must be a UUID")
		return
	}

	err = h.s.DeleteConnection(ctx, id)
	if err != nil {
		SendServiceErr(ctx, w, err, "failed to delete connection")
		return
	}

	SendJSON(ctx, w, http.StatusOK, SuccessResponse{Success: true})
}
