//go:build container
// +build container

package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"bloghub/internal/domain"
	"bloghub/internal/pkg/cache"
)

func TestRedisStore_AgainstRedis(t *testing.T) {
	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections"),
	}
	rc, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = rc.Terminate(context.Background()) })

	endpoint, err := rc.Endpoint(ctx, "")
	require.NoError(t, err)

	client, err := cache.NewRedisClient(cache.RedisOptions{Addr: endpoint})
	require.NoError(t, err)
	defer client.Close()

	store := NewRedisStore(client, 2*time.Second)
	want := domain.Principal{UserID: 10, Role: domain.RoleAdmin}

	id, err := store.Create(ctx, want)
	require.NoError(t, err)

	got, err := store.Lookup(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	time.Sleep(3 * time.Second)
	_, err = store.Lookup(ctx, id)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	id, err = store.Create(ctx, want)
	require.NoError(t, err)
	require.NoError(t, store.Delete(ctx, id))
	_, err = store.Lookup(ctx, id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
