// Scenecraft orchestrator server — provides the HTTP API, manages queue
// workers, and drives natural-language requests against a remote Blender
// host.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	openai "github.com/sashabaranov/go-openai"

	"github.com/scenecraft/scenecraft/pkg/agent"
	"github.com/scenecraft/scenecraft/pkg/api"
	"github.com/scenecraft/scenecraft/pkg/bridge"
	"github.com/scenecraft/scenecraft/pkg/config"
	"github.com/scenecraft/scenecraft/pkg/database"
	"github.com/scenecraft/scenecraft/pkg/integrations"
	"github.com/scenecraft/scenecraft/pkg/knowledge"
	"github.com/scenecraft/scenecraft/pkg/llm"
	"github.com/scenecraft/scenecraft/pkg/planner"
	"github.com/scenecraft/scenecraft/pkg/queue"
	"github.com/scenecraft/scenecraft/pkg/services"
	"github.com/scenecraft/scenecraft/pkg/tools"
	"github.com/scenecraft/scenecraft/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// newEmbedder selects the embedding backend: OpenAI when a key is
// available, otherwise the deterministic local hasher so the knowledge
// index keeps working in degraded deployments.
func newEmbedder(cfg *config.Config) knowledge.Embedder {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if cfg.LLM.Provider == "openai" && cfg.LLM.APIKey != "" {
		apiKey = cfg.LLM.APIKey
	}
	if apiKey == "" {
		slog.Warn("No OpenAI API key available, using local hashing embedder")
		return knowledge.NewHashingEmbedder(cfg.Knowledge.EmbeddingDim)
	}
	return knowledge.NewOpenAIEmbedder(openai.NewClient(apiKey), cfg.LLM.EmbeddingModel, cfg.Knowledge.EmbeddingDim)
}

func main() {
	// Parse command-line flags
	configPath := flag.String("config",
		getEnv("CONFIG_PATH", ""),
		"Path to YAML configuration file (optional)")
	flag.Parse()

	// Load .env if present
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded, continuing with existing environment", "error", err)
	}

	slog.Info("Starting scenecraft", "version", version.Full(), "config", *configPath)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(*configPath)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database (runs pending migrations)
	dbClient, err := database.NewClient(ctx, database.Config{
		DSN:          cfg.Database.DSN,
		MaxOpenConns: cfg.Database.MaxOpenConns,
		MaxIdleConns: cfg.Database.MaxIdleConns,
	})
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Knowledge index
	store := knowledge.NewStore(dbClient.Pool(), newEmbedder(cfg))
	if err := store.EnsureSchema(ctx); err != nil {
		slog.Error("Failed to prepare knowledge schema", "error", err)
		os.Exit(1)
	}

	// 4. Bridge to the remote scene host.
	// The connection is lazy; a host that is down at startup is retried on
	// first command.
	remoteAddr := fmt.Sprintf("%s:%d", cfg.Remote.Host, cfg.Remote.Port)
	bridgeOpts := bridge.Options{DialTimeout: cfg.Remote.DialTimeout}
	if cfg.Remote.CommandTimeout > 0 {
		bridgeOpts.TimeoutFor = func(string) time.Duration { return cfg.Remote.CommandTimeout }
	}
	bridgeClient := bridge.NewClient(remoteAddr, bridgeOpts)
	defer func() {
		if err := bridgeClient.Close(); err != nil {
			slog.Error("Error closing bridge client", "error", err)
		}
	}()
	if err := bridgeClient.Connect(ctx); err != nil {
		slog.Warn("Remote host not reachable at startup, will retry on first command",
			"addr", remoteAddr, "error", err)
	} else {
		slog.Info("Connected to remote host", "addr", remoteAddr)
	}

	// 5. LLM gateway. Without a key the planner degrades to its
	// deterministic ruleset and vision tools report failure.
	var llmClient llm.Client
	if cfg.LLM.APIKey != "" {
		llmClient, err = llm.NewClient(llm.ProviderConfig{
			Provider: cfg.LLM.Provider,
			APIKey:   cfg.LLM.APIKey,
			Model:    cfg.LLM.Model,
		})
		if err != nil {
			slog.Error("Failed to initialize LLM client", "provider", cfg.LLM.Provider, "error", err)
			os.Exit(1)
		}
		slog.Info("LLM client initialized", "provider", cfg.LLM.Provider, "model", cfg.LLM.Model)
	} else {
		slog.Warn("No LLM API key configured, planning falls back to the deterministic ruleset")
	}

	// 6. Planner, integrations, tool catalog, scheduler
	plans := planner.New(llmClient)
	registry := integrations.NewRegistry(bridgeClient, integrations.Options{
		FailureThreshold: cfg.Integrations.CircuitBreakerThreshold,
		Cooldown:         cfg.Integrations.CircuitBreakerCooldown,
	})
	catalog := tools.NewDefaultRegistry(tools.Deps{
		Commander:       bridgeClient,
		Knowledge:       store,
		Assets:          registry,
		LLM:             llmClient,
		Planner:         plans,
		CodeExecRetries: cfg.Tools.CodeExecRetries,
		RepairAttempts:  cfg.Tools.LLMRepairAttempts,
	})
	runner := agent.NewRunner(catalog, plans, agent.Options{
		MaxLoops:       cfg.Agent.MaxLoops,
		SubtaskTimeout: cfg.Agent.SubtaskTimeout,
	})

	// 7. Domain services
	runService := services.NewRunService(dbClient.Client)
	convService := services.NewConversationService(dbClient.Client)
	slog.Info("Services initialized")

	// 8. Start worker pool (before HTTP server)
	executor := queue.NewAgentRunExecutor(runner, convService)
	workerPool := queue.NewWorkerPool(dbClient.Client, queue.Config{
		WorkerCount:       cfg.Queue.WorkerCount,
		MaxConcurrentRuns: cfg.Queue.MaxConcurrentRuns,
		MaxQueueDepth:     cfg.Queue.MaxQueueDepth,
		PollInterval:      cfg.Queue.PollInterval,
		RunTimeout:        cfg.Queue.RunTimeout,
	}, executor)
	workerPool.Start(ctx)

	// 9. Start HTTP server (non-blocking)
	httpServer := api.NewServer(dbClient.DB(), runService, convService, workerPool)
	errCh := make(chan error, 1)
	go func() {
		addr := cfg.Server.Addr()
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Scenecraft started successfully", "workers", cfg.Queue.WorkerCount)

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown: stop the workers first so no run is half
	// written, then drain HTTP.
	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Worker pool shutdown timeout exceeded, active runs will show as in_progress")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
