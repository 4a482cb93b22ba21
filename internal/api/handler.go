package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"

	"github.com/clientdesk/backend/internal/clients/calendly"
	"github.com/clientdesk/backend/internal/clients/slack"
	"github.com/clientdesk/backend/internal/entity"
	"github.com/clientdesk/backend/internal/service"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/api.go -package=mocks -typed

type Service interface {
	SetupClient(ctx context.Context, req service.SetupRequest) (entity.ClientConnection, []entity.DeliveryResult, error)
	ValidateToken(ctx context.Context, token string) (calendly.User, error)
	ListChannels(ctx context.Context) ([]slack.Channel, error)
	Connections(ctx context.Context) ([]entity.ClientConnection, error)
	Connection(ctx context.Context, id uuid.UUID) (entity.ClientConnection, error)
	UpdateConnection(ctx context.Context, id uuid.UUID, req service.UpdateConnectionRequest) (entity.ClientConnection, error)
	SetConnectionActive(ctx context.Context, id uuid.UUID, active bool) error
	DeleteConnection(ctx context.Context, id uuid.UUID) error

	ProcessBookingEvent(ctx context.Context, event entity.WebhookEvent, raw []byte) (service.BookingEventResult, error)
	Bookings(ctx context.Context, f entity.BookingFilter) ([]entity.Booking, error)

	SyncCampaignStats(ctx context.Context) (entity.SyncSummary, error)

	CreateWorkspace(ctx context.Context, name, sharedLinkPassword string) (entity.Workspace, error)
	Workspaces(ctx context.Context) ([]entity.Workspace, error)
	UpdateWorkspace(ctx context.Context, id uuid.UUID, name, sharedLinkPassword string) (entity.Workspace, error)
	DeleteWorkspace(ctx context.Context, id uuid.UUID) error
	VerifyWorkspacePassword(ctx context.Context, id uuid.UUID, password string) (bool, error)
	CreateBoard(ctx context.Context, workspaceID uuid.UUID, name, sharedLinkPassword string) (entity.Board, error)
	BoardsByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]entity.Board, error)
	VerifyBoardPassword(ctx context.Context, id uuid.UUID, password string) (bool, error)
	DeleteBoard(ctx context.Context, id uuid.UUID) error
	CreateColumn(ctx context.Context, boardID uuid.UUID, req service.ColumnRequest) (entity.Column, error)
	ColumnsByBoard(ctx context.Context, boardID uuid.UUID) ([]entity.Column, error)
	UpdateColumn(ctx context.Context, id uuid.UUID, req service.ColumnRequest) (entity.Column, error)
	DeleteColumn(ctx context.Context, id uuid.UUID) error
	CreateCard(ctx context.Context, columnID uuid.UUID, req service.CardRequest) (entity.Card, error)
	CardsByColumn(ctx context.Context, columnID uuid.UUID) ([]entity.Card, error)
	UpdateCard(ctx context.Context, id uuid.UUID, req service.CardRequest) (entity.Card, error)
	DeleteCard(ctx context.Context, id uuid.UUID) error
	MoveCard(ctx context.Context, cardID, toColumnID uuid.UUID, position int) (entity.Card, []entity.DeliveryResult, error)

	Dashboard(ctx context.Context, accessToken string) (service.DashboardPayload, error)
	UpdateDashboardBooking(ctx context.Context, accessToken string, bookingID uuid.UUID, o entity.BookingOutcome) (entity.Booking, error)
	DashboardReports(ctx context.Context, accessToken string) ([]entity.Report, error)

	UploadReport(ctx context.Context, connectionID uuid.UUID, name string, reportDate time.Time, filename, contentType string, data []byte) (entity.Report, error)
	Reports(ctx context.Context, connectionID uuid.UUID) ([]entity.Report, error)
	DeleteReport(ctx context.Context, id uuid.UUID) error

	SubmitOnboarding(ctx context.Context, req service.OnboardingRequest) (entity.OnboardingSubmission, []entity.DeliveryResult, error)
	OnboardingSubmissions(ctx context.Context) ([]entity.OnboardingSubmission, error)
	OnboardingSubmission(ctx context.Context, id uuid.UUID) (entity.OnboardingSubmission, error)
}

type Handler struct {
	s                  Service
	webhookSigningKey  string
	webhookReplayFrame time.Duration
}

func NewHandler(s Service, webhookSigningKey string, webhookReplayFrame time.Duration) *Handler {
	return &Handler{
		s:                  s,
		webhookSigningKey:  webhookSigningKey,
		webhookReplayFrame: webhookReplayFrame,
	}
}

func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("ok\n"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "service unavailable")
		return
	}
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.FromString(chi.URLParam(r, name))
}
