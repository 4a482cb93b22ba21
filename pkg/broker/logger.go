package broker

import (
	"fmt"
	"log/slog"
)

type infoLogger struct {
	l *slog.Logger
}

func (i *infoLogger) Printf(format string, args ...any) {
	i.l.Debug(fmt.Sprintf(format, args...))
}

type errorLogger struct {
	l *slog.Logger
}

func (e *errorLogger) Printf(format string, args ...any) {
	e.l.Error(fmt.Sprintf(format, args...))
}
