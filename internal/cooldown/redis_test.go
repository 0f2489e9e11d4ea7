package cooldown

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/PortalQuest_Go/internal/domain"
)

func TestRedisService_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("redis container unavailable: %v", err)
	}
	defer func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}()

	addr, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	client, err := NewRedisClient(ctx, RedisOptions{Addr: addr})
	require.NoError(t, err)
	defer client.Close()

	svc := NewRedisService(client, Config{Oracle: 2 * time.Second})

	calls := 0
	require.NoError(t, svc.EnforceCooldown(ctx, "pq:alice", domain.ActionOracle, func() error { calls++; return nil }))
	err = svc.EnforceCooldown(ctx, "pq:alice", domain.ActionOracle, func() error { calls++; return nil })
	assert.ErrorIs(t, err, domain.ErrOnCooldown)
	assert.Equal(t, 1, calls)

	last, err := svc.GetLastUsed(ctx, "pq:alice", domain.ActionOracle)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.WithinDuration(t, time.Now(), *last, 5*time.Second)

	require.NoError(t, svc.ResetCooldown(ctx, "pq:alice", domain.ActionOracle))
	on, _, err := svc.CheckCooldown(ctx, "pq:alice", domain.ActionOracle)
	require.NoError(t, err)
	assert.False(t, on)

	require.NoError(t, svc.StartCooldown(ctx, "pq:bob", domain.ActionOracle))
	assert.Eventually(t, func() bool {
		on, _, err := svc.CheckCooldown(ctx, "pq:bob", domain.ActionOracle)
		return err == nil && !on
	}, 5*time.Second, 100*time.Millisecond, "redis TTL expires the cooldown")
}
