// Package health contains code for health checks.
package health

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// nolint:gochecknoglobals
var (
	version = "dev"
	commit  = "undefined"
)

// GetVersion returns service's version and commit.
func GetVersion() string {
	return fmt.Sprintf("%s-%s", version, commit)
}

// VersionResponse ...
type VersionResponse struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
}

// Response is the health report.
type Response struct {
	VersionResponse
	Errors map[string]string `json:"errors"`
}

// Pinger pings external service.
type Pinger interface {
	Ping(ctx context.Context) error
	// Name returns name of pinger
	Name() string
}

type subjectPinger struct {
	f func(ctx context.Context) error
	s string
}

func (p subjectPinger) Ping(ctx context.Context) error {
	return p.f(ctx)
}

func (p subjectPinger) Name() string {
	return p.s
}

// SubjectPinger wraps ping function with the subject name, e.g. (sql.DB).PingContext.
func SubjectPinger(s string, f func(ctx context.Context) error) Pinger {
	return subjectPinger{
		f: f,
		s: s,
	}
}

// Handler pings all pingers concurrently and responds 503 if any of them failed.
func Handler(timeout time.Duration, p ...Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		var gr errgroup.Group
		var mu sync.Mutex

		resp := Response{
			VersionResponse: VersionResponse{Version: version, Commit: commit},
			Errors:          map[string]string{},
		}

		for i := range p {
			v := p[i]
			gr.Go(func() error {
				if err := v.Ping(ctx); err != nil {
					logrus.WithError(err).WithField("subject", v.Name()).Error("health check failed")

					mu.Lock()
					resp.Errors[v.Name()] = err.Error()
					mu.Unlock()
				}
				return nil
			})
		}

		_ = gr.Wait()

		w.Header().Set("Content-Type", "application/json")
		if len(resp.Errors) > 0 {
			w.WriteHeader(http.StatusServiceUnavailable)
		}

		data, _ := json.Marshal(resp)
		_, _ = w.Write(data)
	}
}
