package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/scenecraft/scenecraft/ent"
	"github.com/scenecraft/scenecraft/ent/agentrun"
)

// WorkerPool manages a pool of queue workers.
type WorkerPool struct {
	client   *ent.Client
	config   Config
	executor RunExecutor
	workers  []*Worker

	// Run cancel registry: run_id → cancel function
	activeRuns map[string]context.CancelFunc
	mu         sync.RWMutex
	started    bool
}

// NewWorkerPool creates a new worker pool.
func NewWorkerPool(client *ent.Client, cfg Config, executor RunExecutor) *WorkerPool {
	cfg = cfg.Defaults()
	return &WorkerPool{
		client:     client,
		config:     cfg,
		executor:   executor,
		workers:    make([]*Worker, 0, cfg.WorkerCount),
		activeRuns: make(map[string]context.CancelFunc),
	}
}

// Start spawns worker goroutines. It is safe to call multiple times;
// subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call")
		return
	}
	p.started = true

	slog.Info("Starting worker pool", "worker_count", p.config.WorkerCount)
	for i := 0; i < p.config.WorkerCount; i++ {
		worker := NewWorker(fmt.Sprintf("worker-%d", i), p.client, p.config, p.executor, p)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}
	slog.Info("Worker pool started")
}

// Stop signals all workers to stop and waits for them to finish. Workers
// finish their current runs before exiting.
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	active := p.activeRunIDs()
	if len(active) > 0 {
		slog.Info("Waiting for active runs to complete", "count", len(active), "run_ids", active)
	}

	for _, worker := range p.workers {
		worker.Stop()
	}
	slog.Info("Worker pool stopped gracefully")
}

// CheckBacklog returns ErrQueueFull when the pending backlog reached the
// configured depth bound. Called by the API before accepting a request.
func (p *WorkerPool) CheckBacklog(ctx context.Context) error {
	depth, err := p.client.AgentRun.Query().
		Where(agentrun.StatusEQ(agentrun.StatusPending)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking queue depth: %w", err)
	}
	if depth >= p.config.MaxQueueDepth {
		return ErrQueueFull
	}
	return nil
}

// RegisterRun stores a cancel function for manual cancellation.
func (p *WorkerPool) RegisterRun(runID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activeRuns[runID] = cancel
}

// UnregisterRun removes the cancel function when processing ends.
func (p *WorkerPool) UnregisterRun(runID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.activeRuns, runID)
}

// CancelRun triggers context cancellation for an in-flight run. Returns
// true if the run was found and cancelled.
func (p *WorkerPool) CancelRun(runID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if cancel, ok := p.activeRuns[runID]; ok {
		cancel()
		return true
	}
	return false
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.client.AgentRun.Query().
		Where(agentrun.StatusEQ(agentrun.StatusPending)).
		Count(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check", "error", errQ)
	}

	activeRuns, errA := p.client.AgentRun.Query().
		Where(agentrun.StatusEQ(agentrun.StatusInProgress)).
		Count(ctx)
	if errA != nil {
		slog.Error("Failed to query active runs for health check", "error", errA)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	dbHealthy := errQ == nil && errA == nil
	var dbError string
	if errQ != nil {
		dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
	} else if errA != nil {
		dbError = fmt.Sprintf("active runs query failed: %v", errA)
	}

	return &PoolHealth{
		IsHealthy:     len(p.workers) > 0 && activeRuns <= p.config.MaxConcurrentRuns && dbHealthy,
		DBReachable:   dbHealthy,
		DBError:       dbError,
		ActiveWorkers: activeWorkers,
		TotalWorkers:  len(p.workers),
		ActiveRuns:    activeRuns,
		MaxConcurrent: p.config.MaxConcurrentRuns,
		QueueDepth:    queueDepth,
		WorkerStats:   workerStats,
	}
}

func (p *WorkerPool) activeRunIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	ids := make([]string, 0, len(p.activeRuns))
	for id := range p.activeRuns {
		ids = append(ids, id)
	}
	return ids
}
