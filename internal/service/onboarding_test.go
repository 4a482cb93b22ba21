package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/clientdesk/backend/internal/entity"
	"github.com/clientdesk/backend/internal/service"
)

func TestService_SubmitOnboarding(t *testing.T) {
	ts := newTestService(t, service.Options{
		UploadsBucket: "onboarding-uploads",
		NotifyEmails:  []string{"ops@clientdesk.io"},
	})
	ctx := context.Background()

	req := service.OnboardingRequest{
		BusinessName: "Acme Roofing",
		ContactEmail: "owner@acme.test",
		Answers:      []byte(`{"goal":"more booked calls"}`),
		Files: []service.OnboardingFile{
			{Filename: "logo.png", ContentType: "image/png", Data: []byte("png-bytes")},
		},
	}

	ts.files.EXPECT().
		Upload(gomock.Any(), "onboarding-uploads", gomock.Any(), "image/png", []byte("png-bytes")).
		DoAndReturn(func(_ context.Context, _, objectPath, _ string, _ []byte) (string, error) {
			require.Contains(t, objectPath, "logo.png")
			return objectPath, nil
		})

	var stored entity.OnboardingSubmission

	ts.repo.EXPECT().CreateOnboardingSubmission(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sub entity.OnboardingSubmission) error {
			stored = sub
			return nil
		})

	ts.mailer.EXPECT().
		SendMessage(gomock.Any(), gomock.Any(), []string{"ops@clientdesk.io"}).
		DoAndReturn(func(subject, message string, _ []string) error {
			require.Contains(t, subject, "Acme Roofing")
			require.Contains(t, message, "owner@acme.test")
			return nil
		})

	sub, deliveries, err := ts.s.SubmitOnboarding(ctx, req)
	require.NoError(t, err)

	require.Equal(t, stored, sub)
	require.Equal(t, "Acme Roofing", sub.BusinessName)
	require.Len(t, sub.FilePaths, 1)
	require.Contains(t, sub.FilePaths[0], sub.ID.String())

	require.Len(t, deliveries, 1)
	require.Equal(t, "email", deliveries[0].Target)
	require.True(t, deliveries[0].Delivered)
}

func TestService_SubmitOnboarding_MailFailureIsNonFatal(t *testing.T) {
	ts := newTestService(t, service.Options{NotifyEmails: []string{"ops@clientdesk.io"}})

	ts.repo.EXPECT().CreateOnboardingSubmission(gomock.Any(), gomock.Any()).Return(nil)
	ts.mailer.EXPECT().SendMessage(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(context.DeadlineExceeded)

	_, deliveries, err := ts.s.SubmitOnboarding(context.Background(), service.OnboardingRequest{
		BusinessName: "Acme Roofing",
	})
	require.NoError(t, err)
	require.Len(t, deliveries, 1)
	require.False(t, deliveries[0].Delivered)
}

func TestService_SubmitOnboarding_MissingBusinessName(t *testing.T) {
	ts := newTestService(t, service.Options{})

	_, _, err := ts.s.SubmitOnboarding(context.Background(), service.OnboardingRequest{})
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestService_UploadReport(t *testing.T) {
	ts := newTestService(t, service.Options{
		ReportsBucket: "reports",
		SignedURLTTL:  time.Hour,
	})
	ctx := context.Background()

	conn := entity.ClientConnection{ID: uuid.Must(uuid.NewV4())}
	reportDate := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	ts.repo.EXPECT().Connection(gomock.Any(), conn.ID).Return(conn, nil)
	ts.files.EXPECT().
		Upload(gomock.Any(), "reports", gomock.Any(), "application/pdf", []byte("pdf-bytes")).
		DoAndReturn(func(_ context.Context, _, objectPath, _ string, _ []byte) (string, error) {
			require.Contains(t, objectPath, conn.ID.String())
			require.Contains(t, objectPath, "august.pdf")
			return objectPath, nil
		})
	ts.files.EXPECT().
		SignedURL(gomock.Any(), "reports", gomock.Any(), time.Hour).
		Return("https://files.example.com/signed/august.pdf", nil)
	ts.repo.EXPECT().CreateReport(gomock.Any(), gomock.Any()).Return(nil)

	report, err := ts.s.UploadReport(ctx, conn.ID, "August performance", reportDate, "august.pdf", "application/pdf", []byte("pdf-bytes"))
	require.NoError(t, err)

	require.Equal(t, conn.ID, report.ConnectionID)
	require.Equal(t, "August performance", report.Name)
	require.Equal(t, reportDate, report.ReportDate)
	require.Equal(t, "https://files.example.com/signed/august.pdf", report.FileURL)
}

func TestService_UploadReport_MissingFile(t *testing.T) {
	ts := newTestService(t, service.Options{})

	_, err := ts.s.UploadReport(context.Background(), uuid.Must(uuid.NewV4()),
		"August performance", time.Now(), "august.pdf", "application/pdf", nil)
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}
