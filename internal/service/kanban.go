package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/clientdesk/backend/internal/entity"
)

// Kanban holds the task-tracker operations. It shares the repository with
// the integration domain but has no other coupling to it.

func (s *Service) CreateWorkspace(ctx context.Context, name, sharedLinkPassword string) (entity.Workspace, error) {
	if name == "" {
		return entity.Workspace{}, fmt.Errorf("%w: name is required", entity.ErrInvalidArgument)
	}

	w := entity.Workspace{
		ID:                 uuid.Must(uuid.NewV4()),
		Name:               name,
		SharedLinkPassword: sharedLinkPassword,
		HasPassword:        sharedLinkPassword != "",
		CreatedAt:          time.Now(),
	}

	err := s.repo.CreateWorkspace(ctx, w)
	if err != nil {
		return entity.Workspace{}, err
	}

	return w, nil
}

func (s *Service) Workspaces(ctx context.Context) ([]entity.Workspace, error) {
	return s.repo.Workspaces(ctx)
}

func (s *Service) UpdateWorkspace(ctx context.Context, id uuid.UUID, name, sharedLinkPassword string) (entity.Workspace, error) {
	w, err := s.repo.Workspace(ctx, id)
	if err != nil {
		return entity.Workspace{}, err
	}

	if name != "" {
		w.Name = name
	}

	w.SharedLinkPassword = sharedLinkPassword
	w.HasPassword = sharedLinkPassword != ""

	err = s.repo.UpdateWorkspace(ctx, w)
	if err != nil {
		return entity.Workspace{}, err
	}

	return w, nil
}

func (s *Service) DeleteWorkspace(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteWorkspace(ctx, id)
}

// VerifyWorkspacePassword is the shared-link gate. It deters casual link
// sharing and is not an authentication boundary.
func (s *Service) VerifyWorkspacePassword(ctx context.Context, id uuid.UUID, password string) (bool, error) {
	w, err := s.repo.Workspace(ctx, id)
	if err != nil {
		return false, err
	}

	if w.SharedLinkPassword == "" {
		return true, nil
	}

	return subtle.ConstantTimeCompare([]byte(w.SharedLinkPassword), []byte(password)) == 1, nil
}

func (s *Service) CreateBoard(ctx context.Context, workspaceID uuid.UUID, name, sharedLinkPassword string) (entity.Board, error) {
	if name == "" {
		return entity.Board{}, fmt.Errorf("%w: name is required", entity.ErrInvalidArgument)
	}

	if _, err := s.repo.Workspace(ctx, workspaceID); err != nil {
		return entity.Board{}, err
	}

	b := entity.Board{
		ID:                 uuid.Must(uuid.NewV4()),
		WorkspaceID:        workspaceID,
		Name:               name,
		SharedLinkPassword: sharedLinkPassword,
		HasPassword:        sharedLinkPassword != "",
		CreatedAt:          time.Now(),
	}

	err := s.repo.CreateBoard(ctx, b)
	if err != nil {
		return entity.Board{}, err
	}

	return b, nil
}

func (s *Service) BoardsByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]entity.Board, error) {
	return s.repo.BoardsByWorkspace(ctx, workspaceID)
}

func (s *Service) VerifyBoardPassword(ctx context.Context, id uuid.UUID, password string) (bool, error) {
	b, err := s.repo.Board(ctx, id)
	if err != nil {
		return false, err
	}

	if b.SharedLinkPassword == "" {
		return true, nil
	}

	return subtle.ConstantTimeCompare([]byte(b.SharedLinkPassword), []byte(password)) == 1, nil
}

func (s *Service) DeleteBoard(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteBoard(ctx, id)
}

type ColumnRequest struct {
	Name               string                    `json:"name"`
	Position           int                       `json:"position"`
	WebhookURL         string                    `json:"webhook_url"`
	WebhookTriggerMode entity.WebhookTriggerMode `json:"webhook_trigger_mode"`
}

func (s *Service) CreateColumn(ctx context.Context, boardID uuid.UUID, req ColumnRequest) (entity.Column, error) {
	if req.Name == "" {
		return entity.Column{}, fmt.Errorf("%w: name is required", entity.ErrInvalidArgument)
	}

	if req.WebhookTriggerMode == "" {
		req.WebhookTriggerMode = entity.TriggerEveryTime
	}

	if !req.WebhookTriggerMode.Valid() {
		return entity.Column{}, fmt.Errorf("%w: bad webhook_trigger_mode %q", entity.ErrInvalidArgument, req.WebhookTriggerMode)
	}

	if _, err := s.repo.Board(ctx, boardID); err != nil {
		return entity.Column{}, err
	}

	c := entity.Column{
		ID:                 uuid.Must(uuid.NewV4()),
		BoardID:            boardID,
		Name:               req.Name,
		Position:           req.Position,
		WebhookURL:         req.WebhookURL,
		WebhookTriggerMode: req.WebhookTriggerMode,
		CreatedAt:          time.Now(),
	}

	err := s.repo.CreateColumn(ctx, c)
	if err != nil {
		return entity.Column{}, err
	}

	return c, nil
}

func (s *Service) ColumnsByBoard(ctx context.Context, boardID uuid.UUID) ([]entity.Column, error) {
	return s.repo.ColumnsByBoard(ctx, boardID)
}

func (s *Service) UpdateColumn(ctx context.Context, id uuid.UUID, req ColumnRequest) (entity.Column, error) {
	c, err := s.repo.Column(ctx, id)
	if err != nil {
		return entity.Column{}, err
	}

	if req.Name != "" {
		c.Name = req.Name
	}

	c.Position = req.Position
	c.WebhookURL = req.WebhookURL

	if req.WebhookTriggerMode != "" {
		if !req.WebhookTriggerMode.Valid() {
			return entity.Column{}, fmt.Errorf("%w: bad webhook_trigger_mode %q", entity.ErrInvalidArgument, req.WebhookTriggerMode)
		}

		c.WebhookTriggerMode = req.WebhookTriggerMode
	}

	err = s.repo.UpdateColumn(ctx, c)
	if err != nil {
		return entity.Column{}, err
	}

	return c, nil
}

func (s *Service) DeleteColumn(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteColumn(ctx, id)
}

type CardRequest struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Priority    entity.CardPriority `json:"priority"`
	DueDate     *time.Time          `json:"due_date"`
}

func (s *Service) CreateCard(ctx context.Context, columnID uuid.UUID, req CardRequest) (entity.Card, error) {
	if req.Title == "" {
		return entity.Card{}, fmt.Errorf("%w: title is required", entity.ErrInvalidArgument)
	}

	if _, err := s.repo.Column(ctx, columnID); err != nil {
		return entity.Card{}, err
	}

	existing, err := s.repo.CardsByColumn(ctx, columnID)
	if err != nil {
		return entity.Card{}, err
	}

	now := time.Now()

	c := entity.Card{
		ID:          uuid.Must(uuid.NewV4()),
		ColumnID:    columnID,
		Title:       req.Title,
		Description: req.Description,
		Position:    len(existing),
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.repo.CreateCard(ctx, c)
	if err != nil {
		return entity.Card{}, err
	}

	return c, nil
}

func (s *Service) CardsByColumn(ctx context.Context, columnID uuid.UUID) ([]entity.Card, error) {
	return s.repo.CardsByColumn(ctx, columnID)
}

func (s *Service) UpdateCard(ctx context.Context, id uuid.UUID, req CardRequest) (entity.Card, error) {
	c, err := s.repo.Card(ctx, id)
	if err != nil {
		return entity.Card{}, err
	}

	if req.Title != "" {
		c.Title = req.Title
	}

	c.Description = req.Description
	c.Priority = req.Priority
	c.DueDate = req.DueDate
	c.UpdatedAt = time.Now()

	err = s.repo.UpdateCard(ctx, c)
	if err != nil {
		return entity.Card{}, err
	}

	return c, nil
}

func (s *Service) DeleteCard(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteCard(ctx, id)
}

// MoveCard re-sequences the card into its destination column and fires the
// column webhook according to its trigger mode. The webhook only fires when
// the card enters a column it was not already in; a reorder within the same
// column is silent. Webhook delivery is best-effort.
func (s *Service) MoveCard(ctx context.Context, cardID, toColumnID uuid.UUID, position int) (entity.Card, []entity.DeliveryResult, error) {
	card, err := s.repo.Card(ctx, cardID)
	if err != nil {
		return entity.Card{}, nil, fmt.Errorf("load card: %w", err)
	}

	entering := card.ColumnID != toColumnID

	column, err := s.repo.Column(ctx, toColumnID)
	if err != nil {
		return entity.Card{}, nil, fmt.Errorf("load destination column: %w", err)
	}

	card, err = s.repo.MoveCard(ctx, cardID, toColumnID, position, time.Now())
	if err != nil {
		return entity.Card{}, nil, fmt.Errorf("move card: %w", err)
	}

	if !entering {
		return card, nil, nil
	}

	deliveries := s.fireColumnWebhook(ctx, column, &card)

	return card, deliveries, nil
}

// fireColumnWebhook posts the card-entered payload when the column's
// trigger mode calls for it, then marks the card as triggered.
func (s *Service) fireColumnWebhook(ctx context.Context, column entity.Column, card *entity.Card) []entity.DeliveryResult {
	if column.WebhookURL == "" {
		return nil
	}

	if column.WebhookTriggerMode == entity.TriggerFirstTimeOnly && card.WebhookTriggered {
		return nil
	}

	board, err := s.repo.Board(ctx, column.BoardID)
	if err != nil {
		slog.WarnContext(ctx, "load board for column webhook", "error", err)
		return []entity.DeliveryResult{entity.NotDelivered("column_webhook", err)}
	}

	workspace, err := s.repo.Workspace(ctx, board.WorkspaceID)
	if err != nil {
		slog.WarnContext(ctx, "load workspace for column webhook", "error", err)
		return []entity.DeliveryResult{entity.NotDelivered("column_webhook", err)}
	}

	payload := entity.CardWebhookPayload{
		Card:      *card,
		Column:    column,
		Board:     board,
		Workspace: workspace,
		MovedAt:   time.Now(),
	}

	var result entity.DeliveryResult

	err = s.poster.Post(ctx, column.WebhookURL, payload)
	if err != nil {
		slog.WarnContext(ctx, "column webhook", "error", err, "column_id", column.ID)
		result = entity.NotDelivered("column_webhook", err)
	} else {
		result = entity.Delivered("column_webhook")
	}

	if !card.WebhookTriggered {
		err = s.repo.SetCardWebhookTriggered(ctx, card.ID, time.Now())
		if err != nil {
			slog.WarnContext(ctx, "mark card webhook triggered", "error", err, "card_id", card.ID)
		} else {
			card.WebhookTriggered = true
		}
	}

	return []entity.DeliveryResult{result}
}
