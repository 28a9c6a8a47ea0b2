package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/scenecraft/scenecraft/ent"
	"github.com/scenecraft/scenecraft/ent/agentrun"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// finalizeTimeout bounds the terminal status write, which runs on a fresh
// context because the run context may already be dead.
const finalizeTimeout = 10 * time.Second

// Worker is a single queue worker that polls for and processes runs.
type Worker struct {
	id       string
	client   *ent.Client
	config   Config
	executor RunExecutor
	pool     RunRegistry
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu            sync.RWMutex
	status        WorkerStatus
	currentRunID  string
	runsProcessed int
	lastActivity  time.Time
}

// RunRegistry is the subset of WorkerPool used by Worker for run
// registration.
type RunRegistry interface {
	RegisterRun(runID string, cancel context.CancelFunc)
	UnregisterRun(runID string)
}

// NewWorker creates a new queue worker.
func NewWorker(id string, client *ent.Client, cfg Config, executor RunExecutor, pool RunRegistry) *Worker {
	return &Worker{
		id:           id,
		client:       client,
		config:       cfg,
		executor:     executor,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish. It is safe
// to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        string(w.status),
		CurrentRunID:  w.currentRunID,
		RunsProcessed: w.runsProcessed,
		LastActivity:  w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoRunsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing run", "error", err)
				w.sleep(time.Second)
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollInterval jitters the configured interval by ±20% so workers don't
// poll in lockstep.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := time.Duration(rand.Int64N(int64(base) * 2 / 5))
	return base*4/5 + jitter
}

// pollAndProcess checks capacity, claims a run, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// Best-effort capacity check; racy across workers but bounded by
	// WorkerCount and mitigated by poll jitter.
	activeCount, err := w.client.AgentRun.Query().
		Where(agentrun.StatusEQ(agentrun.StatusInProgress)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active runs: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentRuns {
		return ErrAtCapacity
	}

	run, err := w.claimNextRun(ctx)
	if err != nil {
		return err
	}

	log := slog.With("run_id", run.ID, "worker_id", w.id)
	log.Info("Run claimed")

	w.setStatus(WorkerStatusWorking, run.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	runCtx, cancelRun := context.WithTimeout(ctx, w.config.RunTimeout)
	defer cancelRun()

	// Register the cancel function for API-triggered cancellation.
	w.pool.RegisterRun(run.ID, cancelRun)
	defer w.pool.UnregisterRun(run.ID)

	result := w.executor.Execute(runCtx, run)
	if result == nil {
		result = w.synthesizeResult(runCtx)
	}

	if err := w.finalizeRun(run.ID, result); err != nil {
		return fmt.Errorf("finalizing run %s: %w", run.ID, err)
	}

	log.Info("Run finished", "status", result.Status, "loops", result.Loops)
	w.mu.Lock()
	w.runsProcessed++
	w.mu.Unlock()
	return nil
}

// claimNextRun atomically transitions the oldest pending run to
// in_progress. A conditional update guards against two workers claiming
// the same row; losing the race reads as no runs available.
func (w *Worker) claimNextRun(ctx context.Context) (*ent.AgentRun, error) {
	candidate, err := w.client.AgentRun.Query().
		Where(agentrun.StatusEQ(agentrun.StatusPending)).
		Order(ent.Asc(agentrun.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoRunsAvailable
		}
		return nil, fmt.Errorf("querying pending runs: %w", err)
	}

	n, err := w.client.AgentRun.Update().
		Where(
			agentrun.IDEQ(candidate.ID),
			agentrun.StatusEQ(agentrun.StatusPending),
		).
		SetStatus(agentrun.StatusInProgress).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("claiming run %s: %w", candidate.ID, err)
	}
	if n == 0 {
		// Another worker got it first.
		return nil, ErrNoRunsAvailable
	}

	return w.client.AgentRun.Get(ctx, candidate.ID)
}

// synthesizeResult covers a nil executor return.
func (w *Worker) synthesizeResult(runCtx context.Context) *ExecutionResult {
	switch {
	case errors.Is(runCtx.Err(), context.DeadlineExceeded):
		return &ExecutionResult{
			Status: agentrun.StatusTimedOut,
			Error:  fmt.Errorf("run timed out after %v", w.config.RunTimeout),
		}
	case errors.Is(runCtx.Err(), context.Canceled):
		return &ExecutionResult{
			Status: agentrun.StatusCancelled,
			Error:  context.Canceled,
		}
	default:
		return &ExecutionResult{
			Status: agentrun.StatusFailed,
			Error:  errors.New("executor returned no result"),
		}
	}
}

// finalizeRun writes the terminal state on a fresh context.
func (w *Worker) finalizeRun(runID string, result *ExecutionResult) error {
	ctx, cancel := context.WithTimeout(context.Background(), finalizeTimeout)
	defer cancel()

	update := w.client.AgentRun.UpdateOneID(runID).
		SetStatus(result.Status).
		SetLoops(result.Loops).
		SetReplanned(result.Replanned).
		SetCompletedAt(time.Now())
	if result.FinalResponse != "" {
		update = update.SetFinalResponse(result.FinalResponse)
	}
	if result.Error != nil {
		update = update.SetErrorMessage(result.Error.Error())
	}
	return update.Exec(ctx)
}

func (w *Worker) setStatus(status WorkerStatus, runID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentRunID = runID
	w.lastActivity = time.Now()
}
