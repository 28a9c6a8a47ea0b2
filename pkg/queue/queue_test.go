package queue

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scenecraft/scenecraft/ent"
	"github.com/scenecraft/scenecraft/ent/agentrun"
	"github.com/scenecraft/scenecraft/pkg/services"
	testdb "github.com/scenecraft/scenecraft/test/database"
)

type executorFunc func(ctx context.Context, run *ent.AgentRun) *ExecutionResult

func (f executorFunc) Execute(ctx context.Context, run *ent.AgentRun) *ExecutionResult {
	return f(ctx, run)
}

func TestConfigDefaults(t *testing.T) {
	cfg := Config{}.Defaults()
	assert.Equal(t, 2, cfg.WorkerCount)
	assert.Equal(t, 2, cfg.MaxConcurrentRuns)
	assert.Equal(t, 100, cfg.MaxQueueDepth)
	assert.Equal(t, time.Second, cfg.PollInterval)
	assert.Equal(t, 10*time.Minute, cfg.RunTimeout)

	cfg = Config{WorkerCount: 4}.Defaults()
	assert.Equal(t, 4, cfg.MaxConcurrentRuns)
}

func TestSynthesizeResult(t *testing.T) {
	w := &Worker{config: Config{}.Defaults()}

	expired, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-expired.Done()
	assert.Equal(t, agentrun.StatusTimedOut, w.synthesizeResult(expired).Status)

	cancelled, cancelNow := context.WithCancel(context.Background())
	cancelNow()
	assert.Equal(t, agentrun.StatusCancelled, w.synthesizeResult(cancelled).Status)

	assert.Equal(t, agentrun.StatusFailed, w.synthesizeResult(context.Background()).Status)
}

func TestWorkerClaimsAndFinalizesRun(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping testcontainer test in short mode")
	}
	client := testdb.NewTestClient(t)
	runSvc := services.NewRunService(client)
	ctx := context.Background()

	run, err := runSvc.CreateRun(ctx, services.CreateRunInput{Prompt: "add a cube"})
	require.NoError(t, err)

	executor := executorFunc(func(_ context.Context, run *ent.AgentRun) *ExecutionResult {
		return &ExecutionResult{
			Status:        agentrun.StatusCompleted,
			FinalResponse: "Done: " + run.Prompt,
			Loops:         2,
		}
	})

	cfg := Config{WorkerCount: 1, PollInterval: 10 * time.Millisecond}.Defaults()
	pool := NewWorkerPool(client, cfg, executor)
	pool.Start(ctx)
	defer pool.Stop()

	require.Eventually(t, func() bool {
		got, err := runSvc.GetRun(ctx, run.ID)
		return err == nil && got.Status == agentrun.StatusCompleted
	}, 10*time.Second, 50*time.Millisecond)

	got, err := runSvc.GetRun(ctx, run.ID)
	require.NoError(t, err)
	require.NotNil(t, got.FinalResponse)
	assert.Equal(t, "Done: add a cube", *got.FinalResponse)
	assert.Equal(t, 2, got.Loops)
	assert.NotNil(t, got.StartedAt)
	assert.NotNil(t, got.CompletedAt)
}

func TestCheckBacklogEnforcesDepthBound(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping testcontainer test in short mode")
	}
	client := testdb.NewTestClient(t)
	runSvc := services.NewRunService(client)
	ctx := context.Background()

	cfg := Config{MaxQueueDepth: 2}.Defaults()
	// Pool not started: runs stay pending.
	pool := NewWorkerPool(client, cfg, nil)

	require.NoError(t, pool.CheckBacklog(ctx))
	_, err := runSvc.CreateRun(ctx, services.CreateRunInput{Prompt: "one"})
	require.NoError(t, err)
	_, err = runSvc.CreateRun(ctx, services.CreateRunInput{Prompt: "two"})
	require.NoError(t, err)

	assert.ErrorIs(t, pool.CheckBacklog(ctx), ErrQueueFull)
}

func TestCancelRunCancelsExecutorContext(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping testcontainer test in short mode")
	}
	client := testdb.NewTestClient(t)
	runSvc := services.NewRunService(client)
	ctx := context.Background()

	run, err := runSvc.CreateRun(ctx, services.CreateRunInput{Prompt: "long running"})
	require.NoError(t, err)

	var sawCancel atomic.Bool
	started := make(chan struct{})
	executor := executorFunc(func(runCtx context.Context, _ *ent.AgentRun) *ExecutionResult {
		close(started)
		select {
		case <-runCtx.Done():
			sawCancel.Store(true)
			return &ExecutionResult{Status: agentrun.StatusCancelled, Error: runCtx.Err()}
		case <-time.After(10 * time.Second):
			return &ExecutionResult{Status: agentrun.StatusCompleted}
		}
	})

	cfg := Config{WorkerCount: 1, PollInterval: 10 * time.Millisecond}.Defaults()
	pool := NewWorkerPool(client, cfg, executor)
	pool.Start(ctx)
	defer pool.Stop()

	<-started
	require.Eventually(t, func() bool { return pool.CancelRun(run.ID) }, 5*time.Second, 20*time.Millisecond)

	require.Eventually(t, func() bool {
		got, err := runSvc.GetRun(ctx, run.ID)
		return err == nil && got.Status == agentrun.StatusCancelled
	}, 10*time.Second, 50*time.Millisecond)
	assert.True(t, sawCancel.Load())
}

func TestPoolHealth(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping testcontainer test in short mode")
	}
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	cfg := Config{WorkerCount: 1, PollInterval: 50 * time.Millisecond}.Defaults()
	pool := NewWorkerPool(client, cfg, executorFunc(func(context.Context, *ent.AgentRun) *ExecutionResult {
		return &ExecutionResult{Status: agentrun.StatusCompleted}
	}))
	pool.Start(ctx)
	defer pool.Stop()

	health := pool.Health()
	assert.True(t, health.IsHealthy)
	assert.True(t, health.DBReachable)
	assert.Equal(t, 1, health.TotalWorkers)
	assert.Len(t, health.WorkerStats, 1)
}
