package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultValidatesWithSecret(t *testing.T) {
	cfg := Default()
	cfg.Auth.JWTSecret = "s3cret"
	assert.NoError(t, cfg.Validate())
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	cfg := Default()
	cfg.Server.Port = 0
	cfg.Worker.WorkerCount = 0
	// JWT secret also missing.

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.port out of range")
	assert.Contains(t, err.Error(), "JWT_SECRET is not set")
	assert.Contains(t, err.Error(), "worker.worker_count")
}

func TestValidate_ThresholdOrdering(t *testing.T) {
	cfg := Default()
	cfg.Auth.JWTSecret = "x"
	cfg.Agents.SecondaryThreshold = 0.9
	cfg.Agents.LiveThreshold = 0.7
	cfg.Agents.FallbackLiveThreshold = 0.6

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "secondary_threshold must not exceed")
	assert.Contains(t, err.Error(), "fallback_live_threshold must not be below")
}

func TestValidate_ThresholdRange(t *testing.T) {
	cfg := Default()
	cfg.Auth.JWTSecret = "x"
	cfg.Agents.ObjectionThreshold = 1.5

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "objection_threshold out of range")
}

func TestInitialize_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Initialize(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
}

func TestInitialize_YAMLOverridesDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	path := filepath.Join(t.TempDir(), "verdict.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9090
sweeper:
  grace: 45m
agents:
  live_threshold: 0.8
  fallback_live_threshold: 0.9
`), 0o600))

	cfg, err := Initialize(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 45*time.Minute, cfg.Sweeper.Grace)
	assert.Equal(t, 0.8, cfg.Agents.LiveThreshold)
	assert.Equal(t, 0.5, cfg.Agents.SecondaryThreshold)
}

func TestInitialize_EnvironmentOverridesEndpoints(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("QDRANT_URL", "http://qdrant.internal:6334")
	t.Setenv("S3_BUCKET", "verdict-prod")

	cfg, err := Initialize("")
	require.NoError(t, err)
	assert.Equal(t, "http://qdrant.internal:6334", cfg.Retrieval.QdrantURL)
	assert.Equal(t, "verdict-prod", cfg.Blob.Bucket)
}

func TestInitialize_SecretNeverFromYAML(t *testing.T) {
	t.Setenv("JWT_SECRET", "from-env")

	path := filepath.Join(t.TempDir(), "verdict.yaml")
	require.NoError(t, os.WriteFile(path, []byte("auth:\n  token_ttl: 1h\n"), 0o600))

	cfg, err := Initialize(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("TEST_EXPAND_REGION", "eu-west-1")

	out := ExpandEnv([]byte("blob:\n  region: {{.TEST_EXPAND_REGION}}\n"))
	assert.Equal(t, "blob:\n  region: eu-west-1\n", string(out))
}

func TestExpandEnv_MissingVariableExpandsEmpty(t *testing.T) {
	out := ExpandEnv([]byte("region: {{.DEFINITELY_NOT_SET_ANYWHERE_42}}\n"))
	assert.Equal(t, "region: \n", string(out))
}

func TestExpandEnv_PlainDollarUntouched(t *testing.T) {
	in := []byte("password: pa$$word\npattern: ^a$\n")
	assert.Equal(t, in, ExpandEnv(in))
}
