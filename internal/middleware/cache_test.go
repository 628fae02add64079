//go:build integration
// +build integration

package middleware

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestRedisStorage(t *testing.T) {
	ctx := context.Background()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp"),
		},
		Started: true,
	})
	require.NoError(t, err)
	defer c.Terminate(ctx) // nolint:errcheck

	host, err := c.Host(ctx)
	require.NoError(t, err)
	port, err := c.MappedPort(ctx, "6379")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%d", host, port.Int())})
	defer client.Close()

	s := NewRedisStorage(client)

	_, err = s.Get(ctx, "/v1/events")
	require.ErrorIs(t, err, ErrMiss)

	require.NoError(t, s.Set(ctx, "/v1/events", []byte(`[]`), time.Minute))

	b, err := s.Get(ctx, "/v1/events")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), b)

	ttl, err := client.TTL(ctx, keyPrefix+"/v1/events").Result()
	require.NoError(t, err)
	assert.True(t, ttl > 0 && ttl <= time.Minute)
}
