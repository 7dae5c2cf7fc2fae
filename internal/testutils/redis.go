// Package testutils provides in-memory backends, fixtures and a fake
// point-cost calculator for tests
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/armybook-api/internal/redis"
)

// CreateTestRedis returns the miniredis server alongside the client so tests
// can inspect keys or fast-forward TTLs
func CreateTestRedis(t *testing.T) (*miniredis.Miniredis, redis.Client) {
	mr := miniredis.RunT(t)

	client, err := redis.NewStandalone(mr.Addr())
	require.NoError(t, err, "failed to create redis client")

	t.Cleanup(func() {
		_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
	})

	return mr, client
}
