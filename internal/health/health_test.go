package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetVersion(t *testing.T) {
	assert.Equal(t, "dev-undefined", GetVersion())
}

func TestHandler(t *testing.T) {
	ok := SubjectPinger("postgres", func(context.Context) error { return nil })
	failing := SubjectPinger("redis", func(context.Context) error { return errors.New("connection refused") })

	t.Run("healthy", func(t *testing.T) {
		w := httptest.NewRecorder()
		Handler(time.Second, ok)(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)

		var resp Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "dev", resp.Version)
		assert.Empty(t, resp.Errors)
	})

	t.Run("unhealthy", func(t *testing.T) {
		w := httptest.NewRecorder()
		Handler(time.Second, ok, failing)(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		var resp Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, map[string]string{"redis": "connection refused"}, resp.Errors)
	})

	t.Run("timeout", func(t *testing.T) {
		slow := SubjectPinger("s3", func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		})

		w := httptest.NewRecorder()
		Handler(10*time.Millisecond, slow)(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
