package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/clientdesk/backend/internal/api"
	"github.com/clientdesk/backend/internal/clients/calendly"
	"github.com/clientdesk/backend/internal/clients/chatwebhook"
	"github.com/clientdesk/backend/internal/clients/highlevel"
	"github.com/clientdesk/backend/internal/clients/mailer"
	"github.com/clientdesk/backend/internal/clients/slack"
	"github.com/clientdesk/backend/internal/clients/statsapi"
	"github.com/clientdesk/backend/internal/clients/storage"
	"github.com/clientdesk/backend/internal/repository"
	"github.com/clientdesk/backend/internal/service"
	"github.com/clientdesk/backend/pkg/broker"
	"github.com/clientdesk/backend/pkg/config"
	"github.com/clientdesk/backend/pkg/job"
	"github.com/clientdesk/backend/pkg/logger"
	"github.com/clientdesk/backend/pkg/postgres"
)

const (
	ReadTimeout  = 10 * time.Second
	WriteTimeout = 30 * time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l, err := logger.New(cfg.Logger.Level, cfg.Logger.Format)
	panicOnErr("create logger", err)

	pool, err := postgres.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConn)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	err = postgres.UpMigrations(cfg.Postgres.DSN)
	panicOnErr("up migrations", err)

	repo := repository.New(pool)

	calendlyClient := calendly.NewClient(cfg.Calendly.BaseURL)
	crmClient := highlevel.NewClient(cfg.HighLevel.BaseURL, cfg.HighLevel.Version)
	slackClient := slack.NewClient(cfg.Slack.BaseURL, cfg.Slack.BotToken)
	chatClient := chatwebhook.NewClient()
	statsClient := statsapi.NewClient(cfg.StatsSync.RetryMax, time.Duration(cfg.StatsSync.TimeoutSec)*time.Second)
	storageClient := storage.NewClient(cfg.Storage.BaseURL, cfg.Storage.ServiceKey)
	mailClient := mailer.New(cfg.Mailer)

	var producer service.Producer = broker.NopProducer{}

	if cfg.Kafka.Enabled {
		p := broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.BookingTopic)
		defer p.Close()

		producer = p
	}

	s := service.New(
		repo,
		calendlyClient,
		crmClient,
		slackClient,
		chatClient,
		statsClient,
		storageClient,
		producer,
		mailClient,
		service.Options{
			PublicBaseURL: cfg.HTTP.PublicBaseURL,
			ReportsBucket: cfg.Storage.ReportsBucket,
			UploadsBucket: cfg.Storage.UploadsBucket,
			SignedURLTTL:  time.Duration(cfg.Storage.SignedURLTTL) * time.Second,
			NotifyEmails:  cfg.Onboarding.NotifyEmails,
		},
	)

	jobs := job.NewService().
		TryRegisterJob(cfg.StatsSync.Enabled, "sync campaign stats", cfg.StatsSync.Cron, func(ctx context.Context) error {
			summary, err := s.SyncCampaignStats(ctx)
			if err != nil {
				return err
			}

			slog.InfoContext(ctx, "campaign stats synced", "synced", summary.Synced, "total", summary.Total)

			return nil
		})

	err = jobs.Start(ctx)
	panicOnErr("start jobs", err)

	defer jobs.Stop()

	handler := api.NewHandler(s, cfg.Calendly.WebhookSigningKey,
		time.Duration(cfg.Calendly.ReplayWindowSeconds)*time.Second)
	mw := api.NewMiddleware(cfg.HTTP.APIKeyEnabled, cfg.HTTP.APIKey)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}
	}()

	slog.InfoContext(ctx, "service started", "port", cfg.HTTP.Port)

	wg.Add(1)

	go func() {
		defer wg.Done()

		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		sig := <-ch

		slog.InfoContext(ctx, "got OS signal", "signal", sig.String())

		err = server.Shutdown(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "server shutdown", "error", err)
		}
	}()

	wg.Wait()
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
