package config

import (
	"errors"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP       HTTP
	Logger     Logger
	Postgres   Postgres
	Kafka      Kafka
	Calendly   Calendly
	Slack      Slack
	HighLevel  HighLevel
	StatsSync  StatsSync
	Storage    Storage
	Mailer     Mailer
	Onboarding Onboarding
}

type HTTP struct {
	Port          int    `env:"HTTP_PORT" envDefault:"8080"`
	APIKeyEnabled bool   `env:"HTTP_API_KEY_ENABLED" envDefault:"false"`
	APIKey        string `env:"HTTP_API_KEY" envDefault:"dev"`
	// PublicBaseURL is what outside services use to reach us (webhook
	// callback URL registration, signed file links).
	PublicBaseURL string `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:8080"`
}

type Logger struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type Postgres struct {
	DSN     string `env:"POSTGRES_DSN"`
	MaxConn int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type Kafka struct {
	Enabled      bool     `env:"KAFKA_ENABLED" envDefault:"false"`
	Brokers      []string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	BookingTopic string   `env:"KAFKA_BOOKING_EVENTS_TOPIC" envDefault:"booking-events"`
}

type Calendly struct {
	BaseURL string `env:"CALENDLY_BASE_URL" envDefault:"https://api.calendly.com"`
	// WebhookSigningKey verifies inbound webhook signatures. Empty disables
	// verification (trust-the-network fallback, logged loudly).
	WebhookSigningKey string `env:"CALENDLY_WEBHOOK_SIGNING_KEY"`
	// ReplayWindowSeconds rejects signed payloads older than this.
	ReplayWindowSeconds int `env:"CALENDLY_REPLAY_WINDOW_SECONDS" envDefault:"180"`
}

type Slack struct {
	BaseURL  string `env:"SLACK_BASE_URL" envDefault:"https://slack.com/api"`
	BotToken string `env:"SLACK_BOT_TOKEN"`
}

type HighLevel struct {
	BaseURL string `env:"GHL_BASE_URL" envDefault:"https://services.leadconnectorhq.com"`
	Version string `env:"GHL_API_VERSION" envDefault:"2021-07-28"`
}

type StatsSync struct {
	// Cron is a standard 5-field cron spec, default 06:00 UTC daily.
	Cron       string `env:"STATS_SYNC_CRON" envDefault:"0 6 * * *"`
	Enabled    bool   `env:"STATS_SYNC_ENABLED" envDefault:"true"`
	RetryMax   int    `env:"STATS_SYNC_RETRY_MAX" envDefault:"0"`
	TimeoutSec int    `env:"STATS_SYNC_TIMEOUT_SECONDS" envDefault:"30"`
}

type Storage struct {
	BaseURL       string `env:"STORAGE_BASE_URL"`
	ServiceKey    string `env:"STORAGE_SERVICE_KEY"`
	ReportsBucket string `env:"STORAGE_REPORTS_BUCKET" envDefault:"reports"`
	UploadsBucket string `env:"STORAGE_UPLOADS_BUCKET" envDefault:"onboarding-uploads"`
	SignedURLTTL  int    `env:"STORAGE_SIGNED_URL_TTL_SECONDS" envDefault:"3600"`
}

type Mailer struct {
	Enabled  bool   `env:"MAILER_ENABLED" envDefault:"false"`
	Host     string `env:"MAILER_HOST" envDefault:"localhost"`
	Port     int    `env:"MAILER_PORT" envDefault:"587"`
	Login    string `env:"MAILER_LOGIN" envDefault:""`
	Password string `env:"MAILER_PASSWORD" envDefault:""`
	From     string `env:"MAILER_FROM" envDefault:"noreply@clientdesk.io"`
	FromName string `env:"MAILER_FROM_NAME" envDefault:"ClientDesk"`
}

type Onboarding struct {
	// NotifyEmails receive a message when a new intake submission arrives.
	NotifyEmails []string `env:"ONBOARDING_NOTIFY_EMAILS" envDefault:""`
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAsWithOptions[Config](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
