// Package config loads and validates service configuration from YAML
// with environment variable expansion and env-based overrides.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for configuration loading.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrInvalidYAML    = errors.New("invalid YAML")
)

// Config is the resolved service configuration.
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Remote       RemoteConfig       `yaml:"remote"`
	Database     DatabaseConfig     `yaml:"database"`
	LLM          LLMConfig          `yaml:"llm"`
	Knowledge    KnowledgeConfig    `yaml:"knowledge"`
	Agent        AgentConfig        `yaml:"agent"`
	Tools        ToolsConfig        `yaml:"tools"`
	Integrations IntegrationsConfig `yaml:"integrations"`
	Queue        QueueConfig        `yaml:"queue"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// Addr returns the listen address.
func (c ServerConfig) Addr() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

// RemoteConfig locates the remote scene host.
type RemoteConfig struct {
	Host           string        `yaml:"host"`
	Port           int           `yaml:"port"`
	CommandTimeout time.Duration `yaml:"command_timeout"`
	DialTimeout    time.Duration `yaml:"dial_timeout"`
}

// DatabaseConfig configures PostgreSQL.
type DatabaseConfig struct {
	DSN          string `yaml:"dsn"`
	MaxOpenConns int    `yaml:"max_open_conns"`
	MaxIdleConns int    `yaml:"max_idle_conns"`
}

// LLMConfig selects and configures the language model provider.
type LLMConfig struct {
	Provider string `yaml:"provider"`
	APIKey   string `yaml:"api_key"`
	Model    string `yaml:"model"`

	// Embeddings may use a different provider/model than completion.
	EmbeddingModel string `yaml:"embedding_model"`
}

// KnowledgeConfig configures the vector index.
type KnowledgeConfig struct {
	EmbeddingDim int `yaml:"embedding_dim"`
}

// AgentConfig bounds the scheduler.
type AgentConfig struct {
	MaxLoops       int           `yaml:"max_loops"`
	SubtaskTimeout time.Duration `yaml:"subtask_timeout"`
}

// ToolsConfig bounds tool execution.
type ToolsConfig struct {
	CodeExecRetries   int `yaml:"code_exec_retries"`
	LLMRepairAttempts int `yaml:"llm_repair_attempts"`
}

// IntegrationsConfig configures the asset integration circuit breakers.
type IntegrationsConfig struct {
	CircuitBreakerThreshold uint32        `yaml:"circuit_breaker_threshold"`
	CircuitBreakerCooldown  time.Duration `yaml:"circuit_breaker_cooldown"`
}

// QueueConfig bounds the run queue and its workers.
type QueueConfig struct {
	WorkerCount       int           `yaml:"worker_count"`
	MaxConcurrentRuns int           `yaml:"max_concurrent_runs"`
	MaxQueueDepth     int           `yaml:"max_queue_depth"`
	PollInterval      time.Duration `yaml:"poll_interval"`
	RunTimeout        time.Duration `yaml:"run_timeout"`
}

// Validate checks the resolved configuration for unusable values.
func (c *Config) Validate() error {
	if c.Remote.Host == "" {
		return errors.New("remote.host is required")
	}
	if c.Remote.Port <= 0 || c.Remote.Port > 65535 {
		return fmt.Errorf("remote.port %d out of range", c.Remote.Port)
	}
	if c.Database.DSN == "" {
		return errors.New("database.dsn is required")
	}
	if c.Knowledge.EmbeddingDim <= 0 {
		return fmt.Errorf("knowledge.embedding_dim must be positive, got %d", c.Knowledge.EmbeddingDim)
	}
	if c.Agent.MaxLoops <= 0 {
		return fmt.Errorf("agent.max_loops must be positive, got %d", c.Agent.MaxLoops)
	}
	switch c.LLM.Provider {
	case "", "anthropic", "openai":
	default:
		return fmt.Errorf("llm.provider %q not supported", c.LLM.Provider)
	}
	return nil
}
