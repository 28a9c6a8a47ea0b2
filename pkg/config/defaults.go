package config

import "time"

// DefaultConfig returns the built-in defaults; YAML and environment
// overrides are merged on top.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Remote: RemoteConfig{
			Host:           "localhost",
			Port:           9876,
			CommandTimeout: 30 * time.Second,
			DialTimeout:    5 * time.Second,
		},
		Database: DatabaseConfig{
			MaxOpenConns: 20,
			MaxIdleConns: 5,
		},
		LLM: LLMConfig{
			Provider: "anthropic",
		},
		Knowledge: KnowledgeConfig{
			EmbeddingDim: 384,
		},
		Agent: AgentConfig{
			MaxLoops:       10,
			SubtaskTimeout: 60 * time.Second,
		},
		Tools: ToolsConfig{
			CodeExecRetries:   3,
			LLMRepairAttempts: 2,
		},
		Integrations: IntegrationsConfig{
			CircuitBreakerThreshold: 3,
			CircuitBreakerCooldown:  30 * time.Second,
		},
		Queue: QueueConfig{
			WorkerCount:       2,
			MaxConcurrentRuns: 2,
			MaxQueueDepth:     100,
			PollInterval:      time.Second,
			RunTimeout:        10 * time.Minute,
		},
	}
}
