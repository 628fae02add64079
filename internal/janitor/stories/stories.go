// Package stories contains janitor removing expired stories.
package stories

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/campusconnect/campus/internal/janitor"
	"github.com/campusconnect/campus/internal/storage"
)

var log = logrus.WithField("layer", "janitor").WithField("package", "stories")

type stories struct {
	s             storage.Storage
	interval      time.Duration
	retryInterval time.Duration
	now           func() time.Time

	mu      sync.Mutex
	lastErr error
}

// New returns janitor deleting expired stories every interval.
func New(s storage.Storage, interval, retryInterval time.Duration) janitor.Janitor {
	return &stories{
		s:             s,
		interval:      interval,
		retryInterval: retryInterval,
		now:           time.Now,
	}
}

func (j *stories) Name() string {
	return "stories-janitor"
}

// Ping returns error of the last sweep.
func (j *stories) Ping(_ context.Context) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.lastErr != nil {
		return fmt.Errorf("last sweep failed: %w", j.lastErr)
	}
	return nil
}

func (j *stories) Run(ctx context.Context) error {
	for {
		wait := j.interval
		if err := j.sweep(ctx); err != nil {
			log.WithError(err).Error("failed to delete expired stories")
			wait = j.retryInterval
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(wait):
		}
	}
}

func (j *stories) sweep(ctx context.Context) error {
	n, err := j.s.DeleteExpiredStories(ctx, j.now())

	j.mu.Lock()
	j.lastErr = err
	j.mu.Unlock()

	if err != nil {
		return err
	}

	if n > 0 {
		log.WithField("count", n).Info("expired stories deleted")
	}
	return nil
}
