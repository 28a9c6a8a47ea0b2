package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenecraft.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestInitializeDefaultsOnly(t *testing.T) {
	t.Setenv("DB_CONNECTION", "postgres://test")

	cfg, err := Initialize("")
	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.Remote.Host)
	assert.Equal(t, 9876, cfg.Remote.Port)
	assert.Equal(t, 384, cfg.Knowledge.EmbeddingDim)
	assert.Equal(t, 10, cfg.Agent.MaxLoops)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
}

func TestInitializeYAMLOverridesDefaults(t *testing.T) {
	t.Setenv("DB_CONNECTION", "postgres://test")
	path := writeConfig(t, `
remote:
  host: blender-rig.internal
  port: 9999
agent:
  max_loops: 5
queue:
  worker_count: 4
`)

	cfg, err := Initialize(path)
	require.NoError(t, err)
	assert.Equal(t, "blender-rig.internal", cfg.Remote.Host)
	assert.Equal(t, 9999, cfg.Remote.Port)
	assert.Equal(t, 5, cfg.Agent.MaxLoops)
	assert.Equal(t, 4, cfg.Queue.WorkerCount)
	// Untouched values keep defaults.
	assert.Equal(t, 30*time.Second, cfg.Remote.CommandTimeout)
}

func TestInitializeEnvOverridesYAML(t *testing.T) {
	t.Setenv("DB_CONNECTION", "postgres://from-env")
	t.Setenv("REMOTE_HOST", "env-host")
	t.Setenv("EMBEDDING_DIM", "768")
	t.Setenv("CIRCUIT_BREAKER_COOLDOWN_MS", "5000")
	path := writeConfig(t, `
remote:
  host: yaml-host
database:
  dsn: postgres://from-yaml
`)

	cfg, err := Initialize(path)
	require.NoError(t, err)
	assert.Equal(t, "env-host", cfg.Remote.Host)
	assert.Equal(t, "postgres://from-env", cfg.Database.DSN)
	assert.Equal(t, 768, cfg.Knowledge.EmbeddingDim)
	assert.Equal(t, 5*time.Second, cfg.Integrations.CircuitBreakerCooldown)
}

func TestInitializeTemplateExpansion(t *testing.T) {
	t.Setenv("DB_CONNECTION", "")
	t.Setenv("SCENE_DB_PASSWORD", "s3cret$")
	path := writeConfig(t, `
database:
  dsn: "postgres://scene:{{.SCENE_DB_PASSWORD}}@db:5432/scenecraft"
`)

	cfg, err := Initialize(path)
	require.NoError(t, err)
	assert.Equal(t, "postgres://scene:s3cret$@db:5432/scenecraft", cfg.Database.DSN)
}

func TestInitializeValidation(t *testing.T) {
	t.Setenv("DB_CONNECTION", "postgres://test")

	path := writeConfig(t, "agent:\n  max_loops: -1\n")
	_, err := Initialize(path)
	assert.Error(t, err)

	path = writeConfig(t, "llm:\n  provider: llama\n")
	_, err = Initialize(path)
	assert.ErrorContains(t, err, "not supported")

	_, err = Initialize(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestAPIKeyFollowsProvider(t *testing.T) {
	t.Setenv("DB_CONNECTION", "postgres://test")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")
	t.Setenv("LLM_API_KEY", "")

	cfg, err := Initialize("")
	require.NoError(t, err)
	assert.Equal(t, "sk-ant-test", cfg.LLM.APIKey)

	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "sk-oai-test")
	cfg, err = Initialize("")
	require.NoError(t, err)
	assert.Equal(t, "sk-oai-test", cfg.LLM.APIKey)
}

func TestExpandEnvLeavesDollarAlone(t *testing.T) {
	t.Setenv("SOME_VAR", "value")
	in := []byte("pattern: ^secret.*$\nkey: {{.SOME_VAR}}\n")
	out := ExpandEnv(in)
	assert.Contains(t, string(out), "^secret.*$")
	assert.Contains(t, string(out), "key: value")
}
