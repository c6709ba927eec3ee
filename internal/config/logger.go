package config

import (
	"context"
	"os"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

var Logger = logrus.New()

func InitLogger(level, format string) {
	Logger.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Logger.SetLevel(lvl)

	if format == "json" {
		Logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

// WithContext returns a log entry tagged with the request id, if any.
func WithContext(ctx context.Context) *logrus.Entry {
	entry := logrus.NewEntry(Logger)
	if ctx == nil {
		return entry
	}
	if reqID := middleware.GetReqID(ctx); reqID != "" {
		entry = entry.WithField("request_id", reqID)
	}
	return entry
}
