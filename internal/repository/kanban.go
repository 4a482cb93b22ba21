package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/clientdesk/backend/internal/entity"
)

func (r *Repository) CreateWorkspace(ctx context.Context, w entity.Workspace) error {
	const q = `
	INSERT INTO kanban_workspaces (id, name, shared_link_password, created_at)
	VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, q, w.ID, w.Name, w.SharedLinkPassword, w.CreatedAt)

	return mapErr(err)
}

func scanWorkspace(row pgx.Row) (entity.Workspace, error) {
	var w entity.Workspace

	err := row.Scan(&w.ID, &w.Name, &w.SharedLinkPassword, &w.CreatedAt)
	if err != nil {
		return entity.Workspace{}, mapErr(err)
	}

	w.HasPassword = w.SharedLinkPassword != ""

	return w, nil
}

func (r *Repository) Workspace(ctx context.Context, id uuid.UUID) (entity.Workspace, error) {
	const q = `SELECT id, name, shared_link_password, created_at FROM kanban_workspaces WHERE id = $1`
	return scanWorkspace(r.db.QueryRow(ctx, q, id))
}

func (r *Repository) Workspaces(ctx context.Context) ([]entity.Workspace, error) {
	const q = `SELECT id, name, shared_link_password, created_at FROM kanban_workspaces ORDER BY created_at`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, mapErr(err)
	}

	defer rows.Close()

	var ws []entity.Workspace

	for rows.Next() {
		w, err := scanWorkspace(rows)
		if err != nil {
			return nil, err
		}

		ws = append(ws, w)
	}

	return ws, rows.Err()
}

func (r *Repository) UpdateWorkspace(ctx context.Context, w entity.Workspace) error {
	const q = `UPDATE kanban_workspaces SET name = $1, shared_link_password = $2 WHERE id = $3`
	return r.execExisting(ctx, q, w.Name, w.SharedLinkPassword, w.ID)
}

func (r *Repository) DeleteWorkspace(ctx context.Context, id uuid.UUID) error {
	return r.execExisting(ctx, `DELETE FROM kanban_workspaces WHERE id = $1`, id)
}

func (r *Repository) CreateBoard(ctx context.Context, b entity.Board) error {
	const q = `
	INSERT INTO kanban_boards (id, workspace_id, name, shared_link_password, created_at)
	VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, q, b.ID, b.WorkspaceID, b.Name, b.SharedLinkPassword, b.CreatedAt)

	return mapErr(err)
}

func scanBoard(row pgx.Row) (entity.Board, error) {
	var b entity.Board

	err := row.Scan(&b.ID, &b.WorkspaceID, &b.Name, &b.SharedLinkPassword, &b.CreatedAt)
	if err != nil {
		return entity.Board{}, mapErr(err)
	}

	b.HasPassword = b.SharedLinkPassword != ""

	return b, nil
}

func (r *Repository) Board(ctx context.Context, id uuid.UUID) (entity.Board, error) {
	const q = `SELECT id, workspace_id, name, shared_link_password, created_at FROM kanban_boards WHERE id = $1`
	return scanBoard(r.db.QueryRow(ctx, q, id))
}

func (r *Repository) BoardsByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]entity.Board, error) {
	const q = `SELECT id, workspace_id, name, shared_link_password, created_at
	FROM kanban_boards WHERE workspace_id = $1 ORDER BY created_at`

	rows, err := r.db.Query(ctx, q, workspaceID)
	if err != nil {
		return nil, mapErr(err)
	}

	defer rows.Close()

	var boards []entity.Board

	for rows.Next() {
		b, err := scanBoard(rows)
		if err != nil {
			return nil, err
		}

		boards = append(boards, b)
	}

	return boards, rows.Err()
}

func (r *Repository) UpdateBoard(ctx context.Context, b entity.Board) error {
	const q = `UPDATE kanban_boards SET name = $1, shared_link_password = $2 WHERE id = $3`
	return r.execExisting(ctx, q, b.Name, b.SharedLinkPassword, b.ID)
}

func (r *Repository) DeleteBoard(ctx context.Context, id uuid.UUID) error {
	return r.execExisting(ctx, `DELETE FROM kanban_boards WHERE id = $1`, id)
}

func (r *Repository) CreateColumn(ctx context.Context, c entity.Column) error {
	const q = `
	INSERT INTO kanban_columns (id, board_id, name, position, webhook_url, webhook_trigger_mode, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, q, c.ID, c.BoardID, c.Name, c.Position, c.WebhookURL, c.WebhookTriggerMode, c.CreatedAt)

	return mapErr(err)
}

func scanColumn(row pgx.Row) (entity.Column, error) {
	var c entity.Column

	err := row.Scan(&c.ID, &c.BoardID, &c.Name, &c.Position, &c.WebhookURL, &c.WebhookTriggerMode, &c.CreatedAt)
	if err != nil {
		return entity.Column{}, mapErr(err)
	}

	return c, nil
}

func (r *Repository) Column(ctx context.Context, id uuid.UUID) (entity.Column, error) {
	const q = `SELECT id, board_id, name, position, webhook_url, webhook_trigger_mode, created_at
	FROM kanban_columns WHERE id = $1`

	return scanColumn(r.db.QueryRow(ctx, q, id))
}

func (r *Repository) ColumnsByBoard(ctx context.Context, boardID uuid.UUID) ([]entity.Column, error) {
	const q = `SELECT id, board_id, name, position, webhook_url, webhook_trigger_mode, created_at
	FROM kanban_columns WHERE board_id = $1 ORDER BY position`

	rows, err := r.db.Query(ctx, q, boardID)
	if err != nil {
		return nil, mapErr(err)
	}

	defer rows.Close()

	var cols []entity.Column

	for rows.Next() {
		c, err := scanColumn(rows)
		if err != nil {
			return nil, err
		}

		cols = append(cols, c)
	}

	return cols, rows.Err()
}

func (r *Repository) UpdateColumn(ctx context.Context, c entity.Column) error {
	const q = `UPDATE kanban_columns SET name = $1, position = $2, webhook_url = $3, webhook_trigger_mode = $4 WHERE id = $5`
	return r.execExisting(ctx, q, c.Name, c.Position, c.WebhookURL, c.WebhookTriggerMode, c.ID)
}

func (r *Repository) DeleteColumn(ctx context.Context, id uuid.UUID) error {
	return r.execExisting(ctx, `DELETE FROM kanban_columns WHERE id = $1`, id)
}

const selectCard = `
SELECT id, column_id, title, description, position, priority, due_date, webhook_triggered, created_at, updated_at
FROM kanban_cards`

func scanCard(row pgx.Row) (entity.Card, error) {
	var c entity.Card

	err := row.Scan(
		&c.ID,
		&c.ColumnID,
		&c.Title,
		&c.Description,
		&c.Position,
		&c.Priority,
		&c.DueDate,
		&c.WebhookTriggered,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return entity.Card{}, mapErr(err)
	}

	return c, nil
}

func (r *Repository) CreateCard(ctx context.Context, c entity.Card) error {
	const q = `
	INSERT INTO kanban_cards (id, column_id, title, description, position, priority, due_date, webhook_triggered, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, q,
		c.ID, c.ColumnID, c.Title, c.Description, c.Position,
		c.Priority, c.DueDate, c.WebhookTriggered, c.CreatedAt, c.UpdatedAt,
	)

	return mapErr(err)
}

func (r *Repository) Card(ctx context.Context, id uuid.UUID) (entity.Card, error) {
	q := selectCard + " WHERE id = $1"
	return scanCard(r.db.QueryRow(ctx, q, id))
}

func (r *Repository) CardsByColumn(ctx context.Context, columnID uuid.UUID) ([]entity.Card, error) {
	q := selectCard + " WHERE column_id = $1 ORDER BY position"

	rows, err := r.db.Query(ctx, q, columnID)
	if err != nil {
		return nil, mapErr(err)
	}

	defer rows.Close()

	var cards []entity.Card

	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, err
		}

		cards = append(cards, c)
	}

	return cards, rows.Err()
}

func (r *Repository) UpdateCard(ctx context.Context, c entity.Card) error {
	const q = `
	UPDATE kanban_cards SET
		title = $1,
		description = $2,
		priority = $3,
		due_date = $4,
		updated_at = $5
	WHERE id = $6
	`

	return r.execExisting(ctx, q, c.Title, c.Description, c.Priority, c.DueDate, c.UpdatedAt, c.ID)
}

func (r *Repository) DeleteCard(ctx context.Context, id uuid.UUID) error {
	return r.execExisting(ctx, `DELETE FROM kanban_cards WHERE id = $1`, id)
}

func (r *Repository) SetCardWebhookTriggered(ctx context.Context, id uuid.UUID, updatedAt time.Time) error {
	const q = `UPDATE kanban_cards SET webhook_triggered = TRUE, updated_at = $1 WHERE id = $2`
	return r.execExisting(ctx, q, updatedAt, id)
}

// MoveCard places the card into the destination column at the requested
// position and re-sequences both affected columns inside one transaction.
// Positions are dense integers reassigned on every move, no fractional
// ordering.
func (r *Repository) MoveCard(ctx context.Context, cardID, toColumnID uuid.UUID, position int, movedAt time.Time) (entity.Card, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return entity.Card{}, err
	}

	defer tx.Rollback(ctx) //nolint:errcheck

	card, err := scanCard(tx.QueryRow(ctx, selectCard+" WHERE id = $1 FOR UPDATE", cardID))
	if err != nil {
		return entity.Card{}, err
	}

	fromColumnID := card.ColumnID

	_, err = tx.Exec(ctx,
		`UPDATE kanban_cards SET column_id = $1, position = $2, updated_at = $3 WHERE id = $4`,
		toColumnID, position, movedAt, cardID,
	)
	if err != nil {
		return entity.Card{}, mapErr(err)
	}

	err = resequenceColumn(ctx, tx, toColumnID, cardID, position, movedAt)
	if err != nil {
		return entity.Card{}, err
	}

	if fromColumnID != toColumnID {
		err = resequenceColumn(ctx, tx, fromColumnID, uuid.Nil, -1, movedAt)
		if err != nil {
			return entity.Card{}, err
		}
	}

	card, err = scanCard(tx.QueryRow(ctx, selectCard+" WHERE id = $1", cardID))
	if err != nil {
		return entity.Card{}, err
	}

	err = tx.Commit(ctx)
	if err != nil {
		return entity.Card{}, err
	}

	return card, nil
}

// resequenceColumn rewrites the full position list of a column. movedID, when
// set, is pinned at pinnedPos and the rest flow around it.
func resequenceColumn(ctx context.Context, tx pgx.Tx, columnID, movedID uuid.UUID, pinnedPos int, at time.Time) error {
	rows, err := tx.Query(ctx,
		`SELECT id FROM kanban_cards WHERE column_id = $1 ORDER BY position, updated_at`,
		columnID,
	)
	if err != nil {
		return mapErr(err)
	}

	var ids []uuid.UUID

	for rows.Next() {
		var id uuid.UUID

		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return err
		}

		ids = append(ids, id)
	}

	rows.Close()

	if err := rows.Err(); err != nil {
		return err
	}

	ordered := make([]uuid.UUID, 0, len(ids))

	for _, id := range ids {
		if id == movedID {
			continue
		}

		ordered = append(ordered, id)
	}

	if movedID != uuid.Nil {
		if pinnedPos < 0 || pinnedPos > len(ordered) {
			pinnedPos = len(ordered)
		}

		withMoved := make([]uuid.UUID, 0, len(ordered)+1)
		withMoved = append(withMoved, ordered[:pinnedPos]...)
		withMoved = append(withMoved, movedID)
		withMoved = append(withMoved, ordered[pinnedPos:]...)
		ordered = withMoved
	}

	for i, id := range ordered {
		_, err := tx.Exec(ctx,
			`UPDATE kanban_cards SET position = $1, updated_at = $2 WHERE id = $3`,
			i, at, id,
		)
		if err != nil {
			return fmt.Errorf("resequence card %s: %w", id, err)
		}
	}

	return nil
}

func (r *Repository) execExisting(ctx context.Context, q string, args ...any) error {
	result, err := r.db.Exec(ctx, q, args...)
	if err != nil {
		return mapErr(err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}
