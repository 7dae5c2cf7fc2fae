package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/armybook-api/internal/config"
	"github.com/KirkDiggler/armybook-api/internal/errors"
	"github.com/KirkDiggler/armybook-api/internal/retry"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, config.StorageRedis, cfg.Storage.Driver)
	assert.Equal(t, 90*time.Second, cfg.Renderer.Timeout)
}

func TestLoadOverridesDefaults(t *testing.T) {
	t.Setenv("ARMYBOOK_TEST_PG_URL", "postgres://armybook@db/armybook?sslmode=disable")
	t.Setenv("ARMYBOOK_TEST_PDF_KEY", "secret-key")

	path := writeConfig(t, `
server:
  http_port: 9090
logging:
  level: debug
  format: text
storage:
  driver: postgres
  postgres:
    url: ${ARMYBOOK_TEST_PG_URL}
    create_schema: true
renderer:
  api_key: ${ARMYBOOK_TEST_PDF_KEY}
  timeout: 2m
  retry:
    mode: fixed
    initial: 1s
    max: 1s
    max_retries: 4
cache:
  ttl: 168h
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 50051, cfg.Server.GRPCPort, "unset keys keep defaults")
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, config.StoragePostgres, cfg.Storage.Driver)
	assert.Equal(t, "postgres://armybook@db/armybook?sslmode=disable", cfg.Storage.Postgres.URL)
	assert.True(t, cfg.Storage.Postgres.CreateSchema)
	assert.Equal(t, "secret-key", cfg.Renderer.APIKey)
	assert.Equal(t, 2*time.Minute, cfg.Renderer.Timeout)
	assert.Equal(t, 7*24*time.Hour, cfg.Cache.TTL)

	policy := cfg.Renderer.Retry.Policy()
	assert.Equal(t, retry.ModeFixed, policy.Mode)
	assert.Equal(t, time.Second, policy.Initial)
	assert.Equal(t, 4, policy.MaxRetries)
}

func TestLoadValidation(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		field   string
	}{
		{
			name:    "unknown storage driver",
			content: "storage:\n  driver: mongo\n",
			field:   "storage.driver",
		},
		{
			name:    "postgres without url",
			content: "storage:\n  driver: postgres\n",
			field:   "storage.postgres.url",
		},
		{
			name:    "sentinel without master",
			content: "storage:\n  redis:\n    mode: sentinel\n    endpoints: [s1:26379]\n",
			field:   "storage.redis.master_name",
		},
		{
			name:    "unknown redis mode",
			content: "storage:\n  redis:\n    mode: ring\n",
			field:   "storage.redis.mode",
		},
		{
			name:    "bad log level",
			content: "logging:\n  level: chatty\n",
			field:   "logging.level",
		},
		{
			name:    "bad retry mode",
			content: "renderer:\n  retry:\n    mode: random\n",
			field:   "renderer.retry.mode",
		},
		{
			name:    "negative cache ttl",
			content: "cache:\n  ttl: -1s\n",
			field:   "cache.ttl",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tc.content))
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
			fields, ok := errors.GetMeta(err)["validation_errors"].(map[string][]string)
			require.True(t, ok)
			assert.Contains(t, fields, tc.field)
		})
	}
}

func TestRedisAddrs(t *testing.T) {
	single := config.RedisConfig{Endpoint: "redis:6379"}
	assert.Equal(t, []string{"redis:6379"}, single.Addrs())

	cluster := config.RedisConfig{Endpoint: "ignored:6379", Endpoints: []string{"c1:6379", "c2:6379"}}
	assert.Equal(t, []string{"c1:6379", "c2:6379"}, cluster.Addrs())

	assert.Nil(t, config.RedisConfig{}.Addrs())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestLoadMalformedYAML(t *testing.T) {
	_, err := config.Load(writeConfig(t, "server: [unclosed"))
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}
