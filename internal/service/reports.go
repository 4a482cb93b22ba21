package service

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/clientdesk/backend/internal/entity"
)

// UploadReport stores the file in the reports bucket and records the row
// with a signed download URL.
func (s *Service) UploadReport(ctx context.Context, connectionID uuid.UUID, name string, reportDate time.Time, filename, contentType string, data []byte) (entity.Report, error) {
	if name == "" || len(data) == 0 {
		return entity.Report{}, fmt.Errorf("%w: name and file are required", entity.ErrInvalidArgument)
	}

	conn, err := s.repo.Connection(ctx, connectionID)
	if err != nil {
		return entity.Report{}, err
	}

	id := uuid.Must(uuid.NewV4())
	objectPath := path.Join(conn.ID.String(), id.String()+"_"+filename)

	_, err = s.files.Upload(ctx, s.opts.ReportsBucket, objectPath, contentType, data)
	if err != nil {
		return entity.Report{}, fmt.Errorf("upload report file: %w", err)
	}

	fileURL, err := s.files.SignedURL(ctx, s.opts.ReportsBucket, objectPath, s.opts.SignedURLTTL)
	if err != nil {
		return entity.Report{}, fmt.Errorf("sign report url: %w", err)
	}

	report := entity.Report{
		ID:           id,
		ConnectionID: conn.ID,
		Name:         name,
		ReportDate:   reportDate,
		FileURL:      fileURL,
		CreatedAt:    time.Now(),
	}

	err = s.repo.CreateReport(ctx, report)
	if err != nil {
		return entity.Report{}, fmt.Errorf("create report: %w", err)
	}

	return report, nil
}

func (s *Service) Reports(ctx context.Context, connectionID uuid.UUID) ([]entity.Report, error) {
	return s.repo.Reports(ctx, connectionID)
}

func (s *Service) DeleteReport(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteReport(ctx, id)
}
