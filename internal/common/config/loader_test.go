package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFromFile_Defaults(t *testing.T) {
	path := writeConfig(t, `
camunda:
  broker_address: localhost:26500
cache:
  redis:
    address: localhost:6379
workers:
  calculate-results:
    enabled: true
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "emis-workers", cfg.App.Name)
	assert.Equal(t, 10, cfg.Camunda.MaxJobsActive)
	assert.Equal(t, time.Hour, cfg.Cache.ReportTTLDuration())
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Empty(t, cfg.Registry.Path)

	w := GetWorkerConfig(cfg, "calculate-results")
	assert.True(t, w.Enabled)
	assert.Equal(t, 5, w.MaxJobsActive)
	assert.Equal(t, 3, w.MaxRetries)
}

func TestLoadFromFile_ExpandsEnv(t *testing.T) {
	t.Setenv("EMIS_TEST_REDIS", "redis.internal:6380")
	path := writeConfig(t, `
camunda:
  broker_address: zeebe:26500
cache:
  redis:
    address: ${EMIS_TEST_REDIS}
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "redis.internal:6380", cfg.Cache.Redis.Address)
}

func TestLoadFromFile_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "missing broker",
			body: "cache:\n  redis:\n    address: localhost:6379\n",
			want: "camunda.broker_address is required",
		},
		{
			name: "missing redis",
			body: "camunda:\n  broker_address: localhost:26500\n",
			want: "cache.redis.address is required",
		},
		{
			name: "ses without sender",
			body: "camunda:\n  broker_address: b:1\ncache:\n  redis:\n    address: r:1\nintegrations:\n  aws:\n    ses:\n      enabled: true\n",
			want: "from_email is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("REDIS_ADDRESS", "")
			t.Setenv("ZEEBE_ADDRESS", "")
			_, err := LoadFromFile(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestIsWorkerEnabled(t *testing.T) {
	cfg := &Config{Workers: map[string]WorkerConfig{"deliver-report": {Enabled: false}}}
	assert.False(t, IsWorkerEnabled(cfg, "deliver-report"))
	assert.True(t, IsWorkerEnabled(cfg, "generate-report"))
}
