package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/clientdesk/backend/internal/clients/calendly"
	"github.com/clientdesk/backend/internal/clients/highlevel"
	"github.com/clientdesk/backend/internal/clients/slack"
	"github.com/clientdesk/backend/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type Repository interface {
	CreateConnection(ctx context.Context, c entity.ClientConnection) error
	Connection(ctx context.Context, id uuid.UUID) (entity.ClientConnection, error)
	ConnectionByAccessToken(ctx context.Context, accessToken string) (entity.ClientConnection, error)
	Connections(ctx context.Context) ([]entity.ClientConnection, error)
	ActiveConnections(ctx context.Context) ([]entity.ClientConnection, error)
	UpdateConnection(ctx context.Context, c entity.ClientConnection) error
	SetConnectionActive(ctx context.Context, id uuid.UUID, active bool, updatedAt time.Time) error
	DeleteConnection(ctx context.Context, id uuid.UUID) error

	CreateBooking(ctx context.Context, b entity.Booking) error
	Booking(ctx context.Context, id uuid.UUID) (entity.Booking, error)
	LatestBookingByInvitee(ctx context.Context, connectionID uuid.UUID, email string) (entity.Booking, error)
	Bookings(ctx context.Context, f entity.BookingFilter) ([]entity.Booking, error)
	UpdateBookingStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus, updatedAt time.Time) error
	UpdateBookingOutcome(ctx context.Context, id uuid.UUID, o entity.BookingOutcome, updatedAt time.Time) (entity.Booking, error)

	UpsertCampaignStats(ctx context.Context, s entity.CampaignStats) error
	CampaignStatsByConnection(ctx context.Context, connectionID uuid.UUID, limit int) ([]entity.CampaignStats, error)

	CreateReport(ctx context.Context, rep entity.Report) error
	Report(ctx context.Context, id uuid.UUID) (entity.Report, error)
	Reports(ctx context.Context, connectionID uuid.UUID) ([]entity.Report, error)
	DeleteReport(ctx context.Context, id uuid.UUID) error

	CreateOnboardingSubmission(ctx context.Context, s entity.OnboardingSubmission) error
	OnboardingSubmission(ctx context.Context, id uuid.UUID) (entity.OnboardingSubmission, error)
	OnboardingSubmissions(ctx context.Context) ([]entity.OnboardingSubmission, error)

	CreateWorkspace(ctx context.Context, w entity.Workspace) error
	Workspace(ctx context.Context, id uuid.UUID) (entity.Workspace, error)
	Workspaces(ctx context.Context) ([]entity.Workspace, error)
	UpdateWorkspace(ctx context.Context, w entity.Workspace) error
	DeleteWorkspace(ctx context.Context, id uuid.UUID) error
	CreateBoard(ctx context.Context, b entity.Board) error
	Board(ctx context.Context, id uuid.UUID) (entity.Board, error)
	BoardsByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]entity.Board, error)
	UpdateBoard(ctx context.Context, b entity.Board) error
	DeleteBoard(ctx context.Context, id uuid.UUID) error
	CreateColumn(ctx context.Context, c entity.Column) error
	Column(ctx context.Context, id uuid.UUID) (entity.Column, error)
	ColumnsByBoard(ctx context.Context, boardID uuid.UUID) ([]entity.Column, error)
	UpdateColumn(ctx context.Context, c entity.Column) error
	DeleteColumn(ctx context.Context, id uuid.UUID) error
	CreateCard(ctx context.Context, c entity.Card) error
	Card(ctx context.Context, id uuid.UUID) (entity.Card, error)
	CardsByColumn(ctx context.Context, columnID uuid.UUID) ([]entity.Card, error)
	UpdateCard(ctx context.Context, c entity.Card) error
	DeleteCard(ctx context.Context, id uuid.UUID) error
	SetCardWebhookTriggered(ctx context.Context, id uuid.UUID, updatedAt time.Time) error
	MoveCard(ctx context.Context, cardID, toColumnID uuid.UUID, position int, movedAt time.Time) (entity.Card, error)
}

type SchedulingClient interface {
	Me(ctx context.Context, token string) (calendly.User, error)
	CreateWebhookSubscription(ctx context.Context, token, orgURI, userURI, callbackURL string) (string, error)
	DeleteWebhookSubscription(ctx context.Context, token, subscriptionURI string) error
}

type CRMClient interface {
	UpsertContact(ctx context.Context, apiKey string, contact highlevel.Contact) (string, error)
}

type SlackClient interface {
	ListChannels(ctx context.Context) ([]slack.Channel, error)
	PostMessage(ctx context.Context, msg slack.Message) error
}

// WebhookPoster delivers JSON to operator-provided webhook URLs (the second
// chat provider and kanban column webhooks).
type WebhookPoster interface {
	Post(ctx context.Context, webhookURL string, payload any) error
}

type StatsClient interface {
	Fetch(ctx context.Context, endpoint, apiKey string) (entity.NormalizedStats, error)
}

type FileStore interface {
	Upload(ctx context.Context, bucket, path, contentType string, data []byte) (string, error)
	PublicURL(bucket, path string) string
	SignedURL(ctx context.Context, bucket, path string, ttl time.Duration) (string, error)
}

type Producer interface {
	PublishBookingEvent(ctx context.Context, eventType string, b entity.Booking, conn entity.ClientConnection)
}

type Mailer interface {
	SendMessage(subject, message string, recipients []string) error
}

// Options carries the non-client knobs the service needs.
type Options struct {
	PublicBaseURL string
	ReportsBucket string
	UploadsBucket string
	SignedURLTTL  time.Duration
	NotifyEmails  []string
}

type Service struct {
	repo       Repository
	scheduling SchedulingClient
	crm        CRMClient
	slack      SlackClient
	poster     WebhookPoster
	stats      StatsClient
	files      FileStore
	producer   Producer
	mailer     Mailer
	opts       Options
}

func New(
	repo Repository,
	scheduling SchedulingClient,
	crm CRMClient,
	slackClient SlackClient,
	poster WebhookPoster,
	stats StatsClient,
	files FileStore,
	producer Producer,
	mailer Mailer,
	opts Options,
) *Service {
	return &Service{
		repo:       repo,
		scheduling: scheduling,
		crm:        crm,
		slack:      slackClient,
		poster:     poster,
		stats:      stats,
		files:      files,
		producer:   producer,
		mailer:     mailer,
		opts:       opts,
	}
}
