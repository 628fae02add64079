package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
	"github.com/tomasen/realip"
)

// Logger logs every request with its status and duration.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		l := logrus.WithFields(logrus.Fields{
			"request_id": middleware.GetReqID(r.Context()),
			"ip":         realip.FromRequest(r),
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     ww.Status(),
			"duration":   time.Since(start).String(),
		})

		if ww.Status() >= http.StatusInternalServerError {
			l.Warn("request failed")
			return
		}
		l.Debug("request served")
	})
}
