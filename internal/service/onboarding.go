package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/clientdesk/backend/internal/entity"
)

type OnboardingFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

type OnboardingRequest struct {
	BusinessName string
	ContactEmail string
	Answers      json.RawMessage
	Files        []OnboardingFile
}

// SubmitOnboarding stores the intake form and its attachments, then
// best-effort emails the operators.
func (s *Service) SubmitOnboarding(ctx context.Context, req OnboardingRequest) (entity.OnboardingSubmission, []entity.DeliveryResult, error) {
	if req.BusinessName == "" {
		return entity.OnboardingSubmission{}, nil,
			fmt.Errorf("%w: business_name is required", entity.ErrInvalidArgument)
	}

	id := uuid.Must(uuid.NewV4())

	var filePaths []string

	for _, f := range req.Files {
		objectPath := path.Join(id.String(), f.Filename)

		stored, err := s.files.Upload(ctx, s.opts.UploadsBucket, objectPath, f.ContentType, f.Data)
		if err != nil {
			return entity.OnboardingSubmission{}, nil, fmt.Errorf("upload %s: %w", f.Filename, err)
		}

		filePaths = append(filePaths, stored)
	}

	sub := entity.OnboardingSubmission{
		ID:           id,
		BusinessName: req.BusinessName,
		ContactEmail: req.ContactEmail,
		Answers:      req.Answers,
		FilePaths:    filePaths,
		CreatedAt:    time.Now(),
	}

	err := s.repo.CreateOnboardingSubmission(ctx, sub)
	if err != nil {
		return entity.OnboardingSubmission{}, nil, fmt.Errorf("create submission: %w", err)
	}

	var deliveries []entity.DeliveryResult

	if len(s.opts.NotifyEmails) > 0 {
		subject := "New onboarding submission: " + req.BusinessName
		message := fmt.Sprintf("Business: %s\nContact: %s\nFiles: %d\nSubmitted: %s\n",
			req.BusinessName, req.ContactEmail, len(req.Files), sub.CreatedAt.Format(time.RFC1123))

		err = s.mailer.SendMessage(subject, message, s.opts.NotifyEmails)
		if err != nil {
			slog.WarnContext(ctx, "onboarding notification email", "error", err)
			deliveries = append(deliveries, entity.NotDelivered("email", err))
		} else {
			deliveries = append(deliveries, entity.Delivered("email"))
		}
	}

	return sub, deliveries, nil
}

func (s *Service) OnboardingSubmissions(ctx context.Context) ([]entity.OnboardingSubmission, error) {
	return s.repo.OnboardingSubmissions(ctx)
}

func (s *Service) OnboardingSubmission(ctx context.Context, id uuid.UUID) (entity.OnboardingSubmission, error) {
	return s.repo.OnboardingSubmission(ctx, id)
}
