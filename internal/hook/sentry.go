// Package hook contains logrus hooks.
package hook

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

// Sentry sends log entries of chosen levels to sentry.
type Sentry struct {
	hub    *sentry.Hub
	levels []logrus.Level
}

// NewSentry creates sentry client and returns hook firing on levels.
func NewSentry(opts sentry.ClientOptions, levels ...logrus.Level) (*Sentry, error) {
	client, err := sentry.NewClient(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create sentry client: %w", err)
	}

	return &Sentry{
		hub:    sentry.NewHub(client, sentry.NewScope()),
		levels: levels,
	}, nil
}

// Levels ...
func (h *Sentry) Levels() []logrus.Level {
	return h.levels
}

// Fire ...
func (h *Sentry) Fire(entry *logrus.Entry) error {
	event := sentry.NewEvent()
	event.Level = level(entry.Level)
	event.Message = entry.Message
	event.Timestamp = entry.Time

	for k, v := range entry.Data {
		if err, ok := v.(error); ok {
			event.Extra[k] = err.Error()
			continue
		}
		event.Extra[k] = v
	}

	h.hub.CaptureEvent(event)

	return nil
}

// Flush waits until buffered events are sent or timeout expires.
func (h *Sentry) Flush(timeout time.Duration) bool {
	return h.hub.Flush(timeout)
}

func level(l logrus.Level) sentry.Level {
	switch l {
	case logrus.PanicLevel, logrus.FatalLevel:
		return sentry.LevelFatal
	case logrus.ErrorLevel:
		return sentry.LevelError
	case logrus.WarnLevel:
		return sentry.LevelWarning
	case logrus.InfoLevel:
		return sentry.LevelInfo
	default:
		return sentry.LevelDebug
	}
}
