package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// Initialize loads, overrides, and validates configuration.
//
// Resolution order (later wins):
//  1. Built-in defaults
//  2. YAML file at path (optional; env vars expand via {{.VAR}})
//  3. Environment variable overrides
func Initialize(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		fileCfg, err := loadYAML(path)
		if err != nil {
			return nil, err
		}
		if err := mergo.Merge(cfg, fileCfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge config: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	slog.Info("Configuration initialized",
		"remote", fmt.Sprintf("%s:%d", cfg.Remote.Host, cfg.Remote.Port),
		"llm_provider", cfg.LLM.Provider,
		"embedding_dim", cfg.Knowledge.EmbeddingDim,
		"workers", cfg.Queue.WorkerCount)
	return cfg, nil
}

func loadYAML(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, err
	}

	data = ExpandEnv(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return &cfg, nil
}

// applyEnvOverrides maps well-known environment variables onto the
// config. These exist so deployments can tune the service without
// shipping a YAML file.
func applyEnvOverrides(cfg *Config) {
	setString(&cfg.Remote.Host, "REMOTE_HOST")
	setInt(&cfg.Remote.Port, "REMOTE_PORT")
	setString(&cfg.Database.DSN, "DB_CONNECTION")
	setInt(&cfg.Knowledge.EmbeddingDim, "EMBEDDING_DIM")
	setInt(&cfg.Agent.MaxLoops, "MAX_LOOPS")
	setInt(&cfg.Tools.LLMRepairAttempts, "LLM_REPAIR_ATTEMPTS")
	setInt(&cfg.Tools.CodeExecRetries, "CODE_EXEC_RETRIES")
	setUint32(&cfg.Integrations.CircuitBreakerThreshold, "CIRCUIT_BREAKER_THRESHOLD")
	setMillis(&cfg.Integrations.CircuitBreakerCooldown, "CIRCUIT_BREAKER_COOLDOWN_MS")
	setString(&cfg.LLM.Provider, "LLM_PROVIDER")
	setString(&cfg.LLM.Model, "LLM_MODEL")

	// The API key follows the selected provider unless given explicitly.
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	} else if cfg.LLM.APIKey == "" {
		switch cfg.LLM.Provider {
		case "anthropic":
			cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		case "openai":
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		}
	}
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("Ignoring invalid integer environment override", "key", key, "value", v)
		return
	}
	*dst = n
}

func setUint32(dst *uint32, key string) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		slog.Warn("Ignoring invalid integer environment override", "key", key, "value", v)
		return
	}
	*dst = uint32(n)
}

func setMillis(dst *time.Duration, key string) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("Ignoring invalid millisecond environment override", "key", key, "value", v)
		return
	}
	*dst = time.Duration(n) * time.Millisecond
}
