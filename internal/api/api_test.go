package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteOK(t *testing.T) {
	w := httptest.NewRecorder()

	WriteOK(w, http.StatusCreated, map[string]int{"id": 1})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":1}`, w.Body.String())
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()

	WriteError(w, http.StatusNotFound, "not found")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"not found"}`, w.Body.String())
}

func TestWriteInternalErrorf(t *testing.T) {
	w := httptest.NewRecorder()

	WriteInternalErrorf(context.Background(), w, "failed to do: %s", "db is down")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal error"}`, w.Body.String())
}

func TestDecode(t *testing.T) {
	var v struct {
		Text string `json:"text"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"text":"hi"}`))
	require.NoError(t, Decode(r, &v))
	assert.Equal(t, "hi", v.Text)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
	require.Error(t, Decode(r, &v))
}
