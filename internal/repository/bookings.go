package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/clientdesk/backend/internal/entity"
)

const selectBooking = `
SELECT
	id,
	connection_id,
	contact_name,
	contact_email,
	contact_phone,
	event_type,
	event_uri,
	start_time,
	status,
	showed_up,
	call_outcome,
	notes,
	raw_payload,
	created_at,
	updated_at
FROM bookings`

func scanBooking(row pgx.Row) (entity.Booking, error) {
	var b entity.Booking

	err := row.Scan(
		&b.ID,
		&b.ConnectionID,
		&b.ContactName,
		&b.ContactEmail,
		&b.ContactPhone,
		&b.EventType,
		&b.EventURI,
		&b.StartTime,
		&b.Status,
		&b.ShowedUp,
		&b.CallOutcome,
		&b.Notes,
		&b.RawPayload,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return entity.Booking{}, mapErr(err)
	}

	return b, nil
}

func (r *Repository) CreateBooking(ctx context.Context, b entity.Booking) error {
	const q = `
	INSERT INTO bookings (
		id,
		connection_id,
		contact_name,
		contact_email,
		contact_phone,
		event_type,
		event_uri,
		start_time,
		status,
		showed_up,
		call_outcome,
		notes,
		raw_payload,
		created_at,
		updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := r.db.Exec(
		ctx,
		q,
		b.ID,
		b.ConnectionID,
		b.ContactName,
		b.ContactEmail,
		b.ContactPhone,
		b.EventType,
		b.EventURI,
		b.StartTime,
		b.Status,
		b.ShowedUp,
		b.CallOutcome,
		b.Notes,
		b.RawPayload,
		b.CreatedAt,
		b.UpdatedAt,
	)

	return mapErr(err)
}

func (r *Repository) Booking(ctx context.Context, id uuid.UUID) (entity.Booking, error) {
	q := selectBooking + " WHERE id = $1"
	return scanBooking(r.db.QueryRow(ctx, q, id))
}

// LatestBookingByInvitee finds the most recent non-canceled booking for an
// invitee email under a connection, used by the cancellation path.
func (r *Repository) LatestBookingByInvitee(ctx context.Context, connectionID uuid.UUID, email string) (entity.Booking, error) {
	q := selectBooking + ` WHERE connection_id = $1 AND contact_email = $2 AND status <> $3
	ORDER BY created_at DESC LIMIT 1`

	return scanBooking(r.db.QueryRow(ctx, q, connectionID, email, entity.BookingStatusCanceled))
}

func (r *Repository) Bookings(ctx context.Context, f entity.BookingFilter) ([]entity.Booking, error) {
	stmt := sq.Select(
		"id", "connection_id", "contact_name", "contact_email", "contact_phone",
		"event_type", "event_uri", "start_time", "status", "showed_up",
		"call_outcome", "notes", "raw_payload", "created_at", "updated_at",
	).
		From("bookings").
		OrderBy("start_time DESC").
		PlaceholderFormat(sq.Dollar)

	if f.ConnectionID != uuid.Nil {
		stmt = stmt.Where(sq.Eq{"connection_id": f.ConnectionID})
	}

	if f.Status != "" {
		stmt = stmt.Where(sq.Eq{"status": f.Status})
	}

	if f.From != nil {
		stmt = stmt.Where(sq.GtOrEq{"start_time": *f.From})
	}

	if f.To != nil {
		stmt = stmt.Where(sq.Lt{"start_time": *f.To})
	}

	if f.Limit > 0 {
		stmt = stmt.Limit(uint64(f.Limit))
	}

	if f.Offset > 0 {
		stmt = stmt.Offset(uint64(f.Offset))
	}

	q, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, mapErr(err)
	}

	defer rows.Close()

	var bookings []entity.Booking

	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}

		bookings = append(bookings, b)
	}

	return bookings, rows.Err()
}

func (r *Repository) UpdateBookingStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus, updatedAt time.Time) error {
	const q = `UPDATE bookings SET status = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.Exec(ctx, q, status, updatedAt, id)
	if err != nil {
		return mapErr(err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) UpdateBookingOutcome(ctx context.Context, id uuid.UUID, o entity.BookingOutcome, updatedAt time.Time) (entity.Booking, error) {
	stmt := sq.Update("bookings").
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": id}).
		Suffix(`RETURNING
			id, connection_id, contact_name, contact_email, contact_phone,
			event_type, event_uri, start_time, status, showed_up,
			call_outcome, notes, raw_payload, created_at, updated_at`).
		PlaceholderFormat(sq.Dollar)

	if o.Status != nil {
		stmt = stmt.Set("status", *o.Status)
	}

	if o.ShowedUp != nil {
		stmt = stmt.Set("showed_up", *o.ShowedUp)
	}

	if o.CallOutcome != nil {
		stmt = stmt.Set("call_outcome", *o.CallOutcome)
	}

	if o.Notes != nil {
		stmt = stmt.Set("notes", *o.Notes)
	}

	q, args, err := stmt.ToSql()
	if err != nil {
		return entity.Booking{}, err
	}

	return scanBooking(r.db.QueryRow(ctx, q, args...))
}
