package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusconnect/campus/internal/auth"
)

func TestAuthenticated(t *testing.T) {
	tokens := auth.NewJWT("secret", time.Hour)
	token, err := tokens.Issue(42)
	require.NoError(t, err)

	var got int64
	h := Authenticated(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := AccountID(r.Context())
		require.True(t, ok)
		got = id
	}))

	tt := []struct {
		name   string
		header string
		code   int
	}{
		{"valid", "Bearer " + token, http.StatusOK},
		{"missing", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized},
		{"garbage", "Bearer garbage", http.StatusUnauthorized},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				r.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()

			h.ServeHTTP(w, r)

			assert.Equal(t, tc.code, w.Code)
		})
	}

	assert.EqualValues(t, 42, got)
}

func TestAccountID_Missing(t *testing.T) {
	_, ok := AccountID(context.Background())
	assert.False(t, ok)
}

func TestLogger(t *testing.T) {
	h := Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, w.Code)
}

type memoryStorage struct {
	mu sync.Mutex
	m  map[string][]byte
}

func (s *memoryStorage) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.m[key]
	if !ok {
		return nil, ErrMiss
	}
	return v, nil
}

func (s *memoryStorage) Set(_ context.Context, key string, content []byte, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.m[key] = content
	return nil
}

func TestCached(t *testing.T) {
	s := &memoryStorage{m: map[string][]byte{}}

	calls := 0
	h := Cached(s, time.Minute, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.URL.Query().Get("fail") != "" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`["go"]`))
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		h(w, httptest.NewRequest(http.MethodGet, "/v1/hashtags/trending", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, `["go"]`, w.Body.String())
	}
	assert.Equal(t, 1, calls)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		h(w, httptest.NewRequest(http.MethodGet, "/v1/hashtags/trending?fail=1", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	}
	assert.Equal(t, 3, calls)
}

func TestCached_Disabled(t *testing.T) {
	calls := 0
	h := Cached(nil, time.Minute, func(w http.ResponseWriter, r *http.Request) {
		calls++
	})

	h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, 2, calls)
}
