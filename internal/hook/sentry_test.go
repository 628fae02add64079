package hook

import (
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentry_Fire(t *testing.T) {
	var (
		mu     sync.Mutex
		events []*sentry.Event
	)

	h, err := NewSentry(sentry.ClientOptions{
		BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			mu.Lock()
			events = append(events, event)
			mu.Unlock()
			return nil
		},
	}, logrus.ErrorLevel)
	require.NoError(t, err)
	assert.Equal(t, []logrus.Level{logrus.ErrorLevel}, h.Levels())

	l := logrus.New()
	l.SetOutput(io.Discard)
	l.AddHook(h)

	l.WithError(errors.New("db is down")).WithField("layer", "service").Error("failed to swipe")
	l.Warn("not sent")

	h.Flush(time.Second)

	mu.Lock()
	defer mu.Unlock()

	require.Len(t, events, 1)
	assert.Equal(t, "failed to swipe", events[0].Message)
	assert.Equal(t, sentry.LevelError, events[0].Level)
	assert.Equal(t, "db is down", events[0].Extra["error"])
	assert.Equal(t, "service", events[0].Extra["layer"])
}

func TestLevel(t *testing.T) {
	assert.Equal(t, sentry.LevelFatal, level(logrus.PanicLevel))
	assert.Equal(t, sentry.LevelFatal, level(logrus.FatalLevel))
	assert.Equal(t, sentry.LevelWarning, level(logrus.WarnLevel))
	assert.Equal(t, sentry.LevelDebug, level(logrus.TraceLevel))
}
