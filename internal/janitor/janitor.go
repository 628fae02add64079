// Package janitor contains interface of background cleanup jobs.
package janitor

import (
	"context"

	"github.com/campusconnect/campus/internal/health"
)

// Janitor periodically removes stale data.
type Janitor interface {
	health.Pinger

	// Run blocks until ctx is done.
	Run(ctx context.Context) error
}
