// Package queue provides run queue management: pending runs are claimed
// from the database by polling workers and driven through the agent
// scheduler.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/scenecraft/scenecraft/ent"
	"github.com/scenecraft/scenecraft/ent/agentrun"
)

// Sentinel errors for queue operations.
var (
	// ErrNoRunsAvailable indicates no pending runs are in the queue.
	ErrNoRunsAvailable = errors.New("no runs available")

	// ErrAtCapacity indicates the concurrent run limit has been reached.
	ErrAtCapacity = errors.New("at capacity")

	// ErrQueueFull indicates the pending backlog reached its depth bound.
	ErrQueueFull = errors.New("queue full")
)

// Config bounds the queue and its workers.
type Config struct {
	WorkerCount       int
	MaxConcurrentRuns int
	MaxQueueDepth     int
	PollInterval      time.Duration
	RunTimeout        time.Duration
}

// Defaults fills zero values.
func (c Config) Defaults() Config {
	if c.WorkerCount <= 0 {
		c.WorkerCount = 2
	}
	if c.MaxConcurrentRuns <= 0 {
		c.MaxConcurrentRuns = c.WorkerCount
	}
	if c.MaxQueueDepth <= 0 {
		c.MaxQueueDepth = 100
	}
	if c.PollInterval <= 0 {
		c.PollInterval = time.Second
	}
	if c.RunTimeout <= 0 {
		c.RunTimeout = 10 * time.Minute
	}
	return c
}

// RunExecutor drives one claimed run to a terminal state. The worker
// handles claiming, the per-run timeout, and the terminal status write;
// the executor only runs the agent.
type RunExecutor interface {
	Execute(ctx context.Context, run *ent.AgentRun) *ExecutionResult
}

// ExecutionResult is the terminal state of one run.
type ExecutionResult struct {
	Status        agentrun.Status // completed, failed, timed_out, cancelled
	FinalResponse string
	Loops         int
	Replanned     bool
	Error         error // set if failed/timed_out
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy     bool           `json:"is_healthy"`
	DBReachable   bool           `json:"db_reachable"`
	DBError       string         `json:"db_error,omitempty"`
	ActiveWorkers int            `json:"active_workers"`
	TotalWorkers  int            `json:"total_workers"`
	ActiveRuns    int            `json:"active_runs"`
	MaxConcurrent int            `json:"max_concurrent"`
	QueueDepth    int            `json:"queue_depth"`
	WorkerStats   []WorkerHealth `json:"worker_stats"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentRunID  string    `json:"current_run_id,omitempty"`
	RunsProcessed int       `json:"runs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}
