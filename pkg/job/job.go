package job

import (
	"context"
	"log/slog"
	"runtime/debug"

	"github.com/robfig/cron/v3"
)

type job struct {
	name string
	spec string
	fn   func(ctx context.Context) error
}

// Service runs registered background jobs on wall-clock cron schedules.
type Service struct {
	jobs []job
	cron *cron.Cron
}

func NewService() *Service {
	return &Service{
		cron: cron.New(),
	}
}

// RegisterJob schedules fn on a standard 5-field cron spec.
func (s *Service) RegisterJob(name, spec string, fn func(ctx context.Context) error) *Service {
	return s.TryRegisterJob(true, name, spec, fn)
}

func (s *Service) TryRegisterJob(isEnabled bool, name, spec string, fn func(ctx context.Context) error) *Service {
	if !isEnabled {
		return s
	}

	s.jobs = append(s.jobs, job{
		name: name,
		spec: spec,
		fn:   fn,
	})

	return s
}

func (s *Service) Start(ctx context.Context) error {
	for _, v := range s.jobs {
		v := v

		l := slog.Default().With("job", v.name)

		_, err := s.cron.AddFunc(v.spec, func() {
			l.Debug("job started")

			err := s.withRecover(ctx, l, v)
			if err != nil {
				l.Error("job failed", "error", err)
			} else {
				l.Debug("job done")
			}
		})
		if err != nil {
			return err
		}
	}

	s.cron.Start()

	go func() {
		<-ctx.Done()
		s.cron.Stop()
	}()

	return nil
}

func (s *Service) withRecover(ctx context.Context, l *slog.Logger, j job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			l.Error("job panic", "error", r, "stack", string(debug.Stack()))
		}
	}()

	return j.fn(ctx)
}

func (s *Service) Stop() {
	<-s.cron.Stop().Done()
}
