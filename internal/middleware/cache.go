package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const keyPrefix = "campus:cache:"

// Storage keeps cached responses.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, content []byte, ttl time.Duration) error
}

// ErrMiss is returned by Storage when key is not cached.
var ErrMiss = errors.New("cache miss")

type redisStorage struct {
	c redis.Cmdable
}

// NewRedisStorage returns Storage backed by redis.
func NewRedisStorage(c redis.Cmdable) Storage {
	return redisStorage{c: c}
}

func (s redisStorage) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.c.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	return b, err
}

func (s redisStorage) Set(ctx context.Context, key string, content []byte, ttl time.Duration) error {
	return s.c.Set(ctx, keyPrefix+key, content, ttl).Err()
}

// Cached serves successful responses of handler from storage for ttl.
// Handler is called directly when storage is nil.
func Cached(s Storage, ttl time.Duration, handler http.HandlerFunc) http.HandlerFunc {
	if s == nil {
		return handler
	}

	return func(w http.ResponseWriter, r *http.Request) {
		content, err := s.Get(r.Context(), r.RequestURI)
		if err == nil {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write(content)
			return
		}
		if !errors.Is(err, ErrMiss) {
			logrus.WithError(err).Warn("failed to read cache")
		}

		c := httptest.NewRecorder()
		handler(c, r)

		for k, v := range c.Header() {
			w.Header()[k] = v
		}
		w.WriteHeader(c.Code)

		content = c.Body.Bytes()
		if c.Code == http.StatusOK {
			if err := s.Set(r.Context(), r.RequestURI, content, ttl); err != nil {
				logrus.WithError(err).Warn("failed to write cache")
			}
		}

		_, _ = w.Write(content)
	}
}
