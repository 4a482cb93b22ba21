package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/clientdesk/backend/internal/entity"
)

func (r *Repository) CreateReport(ctx context.Context, rep entity.Report) error {
	const q = `
	INSERT INTO reports (id, connection_id, name, report_date, file_url, created_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, q, rep.ID, rep.ConnectionID, rep.Name, rep.ReportDate, rep.FileURL, rep.CreatedAt)

	return mapErr(err)
}

func scanReport(row pgx.Row) (entity.Report, error) {
	var rep entity.Report

	err := row.Scan(&rep.ID, &rep.ConnectionID, &rep.Name, &rep.ReportDate, &rep.FileURL, &rep.CreatedAt)
	if err != nil {
		return entity.Report{}, mapErr(err)
	}

	return rep, nil
}

func (r *Repository) Report(ctx context.Context, id uuid.UUID) (entity.Report, error) {
	const q = `SELECT id, connection_id, name, report_date, file_url, created_at FROM reports WHERE id = $1`
	return scanReport(r.db.QueryRow(ctx, q, id))
}

func (r *Repository) Reports(ctx context.Context, connectionID uuid.UUID) ([]entity.Report, error) {
	stmt := sq.Select("id", "connection_id", "name", "report_date", "file_url", "created_at").
		From("reports").
		OrderBy("report_date DESC").
		PlaceholderFormat(sq.Dollar)

	if connectionID != uuid.Nil {
		stmt = stmt.Where(sq.Eq{"connection_id": connectionID})
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

	var reports []entity.Report

	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, err
		}

		reports = append(reports, rep)
	}

	return reports, rows.Err()
}

func (r *Repository) DeleteReport(ctx context.Context, id uuid.UUID) error {
	return r.execExisting(ctx, `DELETE FROM reports WHERE id = $1`, id)
}
