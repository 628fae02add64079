// Package api contains helpers to write JSON responses.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

// Error ...
// swagger:model
type Error struct {
	Error string `json:"error"`
}

// WriteOK writes v encoded as JSON with status code.
func WriteOK(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logrus.WithError(err).Error("failed to marshal response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// WriteError writes message as Error with status code.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteOK(w, status, Error{Error: message})
}

// WriteInternalErrorf logs the error and writes a generic internal error response.
func WriteInternalErrorf(ctx context.Context, w http.ResponseWriter, format string, args ...interface{}) {
	logrus.WithField("request_id", middleware.GetReqID(ctx)).Errorf(format, args...)

	WriteError(w, http.StatusInternalServerError, "internal error")
}

// Decode reads JSON body of request into v.
func Decode(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode body: %w", err)
	}
	return nil
}
