package api

import (
	"encoding/json"
	"net/http"

	"github.com/gofrs/uuid/v5"

	"github.com/clientdesk/backend/internal/entity"
	"github.com/clientdesk/backend/internal/service"
)

type WorkspaceRequest struct {
	Name               string `json:"name"`
	SharedLinkPassword string `json:"shared_link_password"`
}

type WorkspaceResponse struct {
	Success   bool             `json:"success"`
	Workspace entity.Workspace `json:"workspace"`
}

func (h *Handler) CreateWorkspace(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req WorkspaceRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid JSON")
		return
	}

	ws, err := h.s.CreateWorkspace(ctx, req.Name, req.SharedLinkPassword)
	if err != nil {
		SendServiceErr(ctx, w, err, "failed to create workspace")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, WorkspaceResponse{Success: true, Workspace: ws})
}

type WorkspacesResponse struct {
	Success    bool               `json:"success"`
	Workspaces []entity.Workspace `json:"workspaces"`
}

func (h *Handler) Workspaces(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	workspaces, err := h.s.Workspaces(ctx)
	if err != nil {
		SendServiceErr(ctx, w, err, "failed to list workspaces")
		return
	}

	SendJSON(ctx, w, http.StatusOK, WorkspacesResponse{Success: true, Workspaces: workspaces})
}

func (h *Handler) UpdateWorkspace(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "workspaceID")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'workspaceID' must be a UUID")
		return
	}

	var req WorkspaceRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid JSON")
		return
	}

	ws, err := h.s.UpdateWorkspace(ctx, id, req.Name, req.SharedLinkPassword)
	if err != nil {
		SendServiceErr(ctx, w, err, "failed to update workspace")
		return
	}

	SendJSON(ctx, w, http.StatusOK, WorkspaceResponse{Success: true, Workspace: ws})
}

func (h *Handler) DeleteWorkspace(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "workspaceID")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'workspaceID' must be a UUID")
		return
	}

	err = h.s.DeleteWorkspace(ctx, id)
	if err != nil {
		SendServiceErr(ctx, w, err, "failed to delete workspace")
		return
	}

	SendJSON(ctx, w, http.StatusOK, SuccessResponse{Success: true})
}

type VerifyPasswordRequest struct {
	Password string `json:"password"`
}

type VerifyPasswordResponse struct {
	Success bool `json:"success"`
	Valid   bool `json:"valid"`
}

func (h *Handler) VerifyWorkspacePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "workspaceID")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'workspaceID' must be a UUID")
		return
	}

	var req VerifyPasswordRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid JSON")
		return
	}

	valid, err := h.s.VerifyWorkspacePassword(ctx, id, req.Password)
	if err != nil {
		SendServiceErr(ctx, w, err, "failed to verify password")
		return
	}

	SendJSON(ctx, w, http.StatusOK, VerifyPasswordResponse{Success: true, Valid: valid})
}

type BoardRequest struct {
	Name               string `json:"name"`
	SharedLinkPassword string `json:"shared_link_password"`
}

type BoardResponse struct {
	Success bool         `json:"success"`
	Board   entity.Board `json:"board"`
}

func (h *Handler) CreateBoard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	workspaceID, err := pathUUID(r, "workspaceID")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'workspaceID' must be a UUID")
		return
	}

	var req BoardRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid JSON")
		return
	}

	board, err := h.s.CreateBoard(ctx, workspaceID, req.Name, req.SharedLinkPassword)
	if err != nil {
		SendServiceErr(ctx, w, err, "failed to create board")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, BoardResponse{Success: true, Board: board})
}

type BoardsResponse struct {
	Success bool           `json:"success"`
	Boards  []entity.Board `json:"boards"`
}

func (h *Handler) Boards(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	workspaceID, err := pathUUID(r, "workspaceID")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'workspaceID' must be a UUID")
		return
	}

	boards, err := h.s.BoardsByWorkspace(ctx, workspaceID)
	if err != nil {
		SendServiceErr(ctx, w, err, "failed to list boards")
		return
	}

	SendJSON(ctx, w, http.StatusOK, BoardsResponse{Success: true, Boards: boards})
}

func (h *Handler) DeleteBoard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "boardID")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'boardID' must be a UUID")
		return
	}

	err = h.s.DeleteBoard(ctx, id)
	if err != nil {
		SendServiceErr(ctx, w, err, "failed to delete board")
		return
	}

	SendJSON(ctx, w, http.StatusOK, SuccessResponse{Success: true})
}

func (h *Handler) VerifyBoardPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "boardID")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'boardID' must be a UUID")
		return
	}

	var req VerifyPasswordRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid JSON")
		return
	}

	valid, err := h.s.VerifyBoardPassword(ctx, id, req.Password)
	if err != nil {
		SendServiceErr(ctx, w, err, "failed to verify password")
		return
	}

	SendJSON(ctx, w, http.StatusOK, VerifyPasswordResponse{Success: true, Valid: valid})
}

type ColumnResponse struct {
	Success bool          `json:"success"`
	Column  entity.Column `json:"column"`
}

func (h *Handler) CreateColumn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	boardID, err := pathUUID(r, "boardID")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'boardID' must be a UUID")
		return
	}

	var req service.ColumnRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid JSON")
		return
	}

	column, err := h.s.CreateColumn(ctx, boardID, req)
	if err != nil {
		SendServiceErr(ctx, w, err, "failed to create column")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, ColumnResponse{Success: true, Column: column})
}

type ColumnsResponse struct {
	Success bool            `json:"success"`
	Columns []entity.Column `json:"columns"`
}

func (h *Handler) Columns(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	boardID, err := pathUUID(r, "boardID")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'boardID' must be a UUID")
		return
	}

	columns, err := h.s.ColumnsByBoard(ctx, boardID)
	if err != nil {
		SendServiceErr(ctx, w, err, "failed to list columns")
		return
	}

	SendJSON(ctx, w, http.StatusOK, ColumnsResponse{Success: true, Columns: columns})
}

func (h *Handler) UpdateColumn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "columnID")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'columnID' must be a UUID")
		return
	}

	var req service.ColumnRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid JSON")
		return
	}

	column, err := h.s.UpdateColumn(ctx, id, req)
	if err != nil {
		SendServiceErr(ctx, w, err, "failed to update column")
		return
	}

	SendJSON(ctx, w, http.StatusOK, ColumnResponse{Success: true, Column: column})
}

func (h *Handler) DeleteColumn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "columnID")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'columnID' must be a UUID")
		return
	}

	err = h.s.DeleteColumn(ctx, id)
	if err != nil {
		SendServiceErr(ctx, w, err, "failed to delete column")
		return
	}

	SendJSON(ctx, w, http.StatusOK, SuccessResponse{Success: true})
}

type CardResponse struct {
	Success bool        `json:"success"`
	Card    entity.Card `json:"card"`
}

func (h *Handler) CreateCard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	columnID, err := pathUUID(r, "columnID")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'columnID' must be a UUID")
		return
	}

	var req service.CardRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid JSON")
		return
	}

	card, err := h.s.CreateCard(ctx, columnID, req)
	if err != nil {
		SendServiceErr(ctx, w, err, "failed to create card")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, CardResponse{Success: true, Card: card})
}

type CardsResponse struct {
	Success bool          `json:"success"`
	Cards   []entity.Card `json:"cards"`
}

func (h *Handler) Cards(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	columnID, err := pathUUID(r, "columnID")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'columnID' must be a UUID")
		return
	}

	cards, err := h.s.CardsByColumn(ctx, columnID)
	if err != nil {
		SendServiceErr(ctx, w, err, "failed to list cards")
		return
	}

	SendJSON(ctx, w, http.StatusOK, CardsResponse{Success: true, Cards: cards})
}

func (h *Handler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "cardID")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'cardID' must be a UUID")
		return
	}

	var req service.CardRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid JSON")
		return
	}

	card, err := h.s.UpdateCard(ctx, id, req)
	if err != nil {
		SendServiceErr(ctx, w, err, "failed to update card")
		return
	}

	SendJSON(ctx, w, http.StatusOK, CardResponse{Success: true, Card: card})
}

func (h *Handler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "cardID")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'cardID' must be a UUID")
		return
	}

	err = h.s.DeleteCard(ctx, id)
	if err != nil {
		SendServiceErr(ctx, w, err, "failed to delete card")
		return
	}

	SendJSON(ctx, w, http.StatusOK, SuccessResponse{Success: true})
}

type MoveCardRequest struct {
	ColumnID string `json:"column_id"`
	Position int    `json:"position"`
}

type MoveCardResponse struct {
	Success    bool                    `json:"success"`
	Card       entity.Card             `json:"card"`
	Deliveries []entity.DeliveryResult `json:"deliveries,omitempty"`
}

// MoveCard relocates a card and reports any column-webhook delivery outcome.
func (h *Handler) MoveCard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "cardID")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'cardID' must be a UUID")
		return
	}

	var req MoveCardRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid JSON")
		return
	}

	columnID, err := uuid.FromString(req.ColumnID)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'column_id' must be a UUID")
		return
	}

	card, deliveries, err := h.s.MoveCard(ctx, id, columnID, req.Position)
	if err != nil {
		SendServiceErr(ctx, w, err, "failed to move card")
		return
	}

	SendJSON(ctx, w, http.StatusOK, MoveCardResponse{
		Success:    true,
		Card:       card,
		Deliveries: deliveries,
	})
}
