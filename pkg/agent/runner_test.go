package agent

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scenecraft/scenecraft/pkg/llm"
	"github.com/scenecraft/scenecraft/pkg/planner"
	"github.com/scenecraft/scenecraft/pkg/tools"
)

// fakeExecutor scripts per-tool handlers and records every dispatch.
type fakeExecutor struct {
	mu       sync.Mutex
	handlers map[string]func(ctx context.Context, input tools.Input) (*tools.Result, error)
	calls    []string
	inputs   map[string][]tools.Input
}

func newFakeExecutor() *fakeExecutor {
	return &fakeExecutor{
		handlers: map[string]func(ctx context.Context, input tools.Input) (*tools.Result, error){},
		inputs:   map[string][]tools.Input{},
	}
}

func (f *fakeExecutor) on(name string, fn func(ctx context.Context, input tools.Input) (*tools.Result, error)) {
	f.handlers[name] = fn
}

func (f *fakeExecutor) succeed(name string, data map[string]any) {
	f.on(name, func(_ context.Context, _ tools.Input) (*tools.Result, error) {
		return tools.OK(data), nil
	})
}

func (f *fakeExecutor) fail(name, errMsg string) {
	f.on(name, func(_ context.Context, _ tools.Input) (*tools.Result, error) {
		return tools.Fail("%s", errMsg), nil
	})
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, input tools.Input) (*tools.Result, error) {
	f.mu.Lock()
	f.calls = append(f.calls, name)
	f.inputs[name] = append(f.inputs[name], input)
	handler := f.handlers[name]
	f.mu.Unlock()

	if handler == nil {
		return nil, &tools.ToolError{Tool: name, Reason: "not registered", Err: tools.ErrUnknownTool}
	}
	return handler(ctx, input)
}

func (f *fakeExecutor) callCount(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == name {
			n++
		}
	}
	return n
}

// finishHonoringVeto behaves like the real finish_task.
func finishHonoringVeto(fe *fakeExecutor) {
	fe.on(tools.NameFinishTask, func(_ context.Context, input tools.Input) (*tools.Result, error) {
		return tools.NewFinishTask().Execute(context.Background(), input)
	})
}

// fakePlans returns scripted plans and counts invocations.
type fakePlans struct {
	plan        *planner.Plan
	replanWith  *planner.Plan
	planCalls   int
	replanCalls int
}

func (f *fakePlans) Plan(_ context.Context, _ string, _ []llm.ImagePart) *planner.Plan {
	f.planCalls++
	return f.plan
}

func (f *fakePlans) Replan(_ context.Context, _ string, _, _ []planner.OutcomeSummary) *planner.Plan {
	f.replanCalls++
	return f.replanWith
}

func TestRunInfoQuery(t *testing.T) {
	fe := newFakeExecutor()
	fe.succeed(tools.NameGetSceneInfo, map[string]any{
		"sceneContext": map[string]any{"object_count": float64(3)},
	})
	finishHonoringVeto(fe)

	plans := &fakePlans{plan: planner.FallbackPlan("show scene info", false)}
	require.Len(t, plans.plan.Subtasks, 2)

	runner := NewRunner(fe, plans, Options{})
	result := runner.Run(context.Background(), "show scene info", nil)

	assert.True(t, result.Finished)
	assert.Contains(t, result.FinalResponse, "3 objects")
	assert.Equal(t, 1, plans.planCalls)
	assert.Zero(t, plans.replanCalls)
}

func TestRunConditionalFallbackRecoversAssetFailure(t *testing.T) {
	fe := newFakeExecutor()
	fe.fail(tools.NameAssetSearchAndImport, "no matching asset found")
	fe.succeed(tools.NameExecuteBlenderCode, map[string]any{"result": "ok"})
	finishHonoringVeto(fe)

	plans := &fakePlans{plan: planner.FallbackPlan("create a red cube", false)}
	runner := NewRunner(fe, plans, Options{})

	result := runner.Run(context.Background(), "create a red cube", nil)

	assert.True(t, result.Finished)
	assert.Zero(t, plans.replanCalls, "recoverable single failure must not re-plan")
	assert.Equal(t, 1, fe.callCount(tools.NameExecuteBlenderCode), "fallback ran")

	// finish saw no critical failures: the fallback recovered it.
	finishInputs := fe.inputs[tools.NameFinishTask]
	require.Len(t, finishInputs, 1)
	assert.Empty(t, finishInputs[0].Strings(tools.InputKeyCriticalFailures))
}

func TestRunParallelPass(t *testing.T) {
	var inflight, maxInflight atomic.Int32
	slowOK := func(_ context.Context, _ tools.Input) (*tools.Result, error) {
		n := inflight.Add(1)
		if n > maxInflight.Load() {
			maxInflight.Store(n)
		}
		time.Sleep(20 * time.Millisecond)
		inflight.Add(-1)
		return tools.OK(nil), nil
	}

	fe := newFakeExecutor()
	fe.on(tools.NameGetSceneInfo, slowOK)
	fe.on(tools.NameSearchKnowledgeBase, slowOK)
	finishHonoringVeto(fe)

	plan := &planner.Plan{Subtasks: []planner.Subtask{
		{ID: "a", Description: "Inspect scene", Tool: tools.NameGetSceneInfo},
		{ID: "b", Description: "Look up techniques", Tool: tools.NameSearchKnowledgeBase},
		{ID: "c", Description: "Summarize", Tool: tools.NameFinishTask, DependsOn: []string{"a", "b"}},
	}}

	runner := NewRunner(fe, &fakePlans{}, Options{})
	result := runner.RunPlan(context.Background(), "two things at once", plan, nil)

	assert.True(t, result.Finished)
	assert.GreaterOrEqual(t, maxInflight.Load(), int32(2), "siblings ran concurrently")
	// One iteration for the pass, one for finish.
	assert.Equal(t, 2, result.Loops)
	assert.Contains(t, result.Results, "a")
	assert.Contains(t, result.Results, "b")
	assert.True(t, result.Results["a"].Success)
	assert.True(t, result.Results["b"].Success)
}

func TestRunCriticalFailuresTriggerSingleReplan(t *testing.T) {
	fe := newFakeExecutor()
	fe.fail(tools.NameAssetSearchAndImport, "integration down")
	fe.fail(tools.NameCreateAnimation, "integration down")
	fe.fail(tools.NameExecuteBlenderCode, "host rejects everything")
	fe.succeed(tools.NameSearchKnowledgeBase, map[string]any{"count": 0})
	finishHonoringVeto(fe)

	// Two unconditional asset-producing subtasks, independent, so they
	// fail in one parallel pass with no fallback in sight.
	plan := &planner.Plan{Subtasks: []planner.Subtask{
		{ID: "a", Description: "Import a creature asset", Tool: tools.NameAssetSearchAndImport},
		{ID: "b", Description: "Animate the creature", Tool: tools.NameCreateAnimation},
		{ID: "c", Description: "Summarize", Tool: tools.NameFinishTask, DependsOn: []string{"a", "b"}},
	}}
	recovery := planner.RecoveryPlan("a hopping creature")

	plans := &fakePlans{plan: plan, replanWith: recovery}
	runner := NewRunner(fe, plans, Options{})

	result := runner.RunPlan(context.Background(), "a hopping creature", plan, nil)

	assert.True(t, result.Replanned)
	assert.Equal(t, 1, plans.replanCalls, "re-plan fires at most once per run")
	// The recovery plan's code step also fails, yet no second re-plan
	// occurs and the run still terminates.
	assert.LessOrEqual(t, result.Loops, defaultMaxLoops)
	// Results were reset at the re-plan boundary: old ids are gone.
	assert.NotContains(t, result.Results, "a")
	assert.Contains(t, result.Results, "r1")
}

func TestRunTerminatesAtMaxLoops(t *testing.T) {
	fe := newFakeExecutor()
	fe.fail(tools.NameExecuteBlenderCode, "always broken")
	finishHonoringVeto(fe)

	plan := &planner.Plan{Subtasks: []planner.Subtask{
		{ID: "t1", Description: "Build the object with code", Tool: tools.NameExecuteBlenderCode},
		{ID: "t2", Description: "Summarize", Tool: tools.NameFinishTask, DependsOn: []string{"t1"}},
	}}

	plans := &fakePlans{plan: plan, replanWith: plan}
	runner := NewRunner(fe, plans, Options{MaxLoops: 6})

	result := runner.RunPlan(context.Background(), "impossible request", plan, nil)

	assert.False(t, result.Finished)
	assert.Equal(t, 6, result.Loops)
}

func TestRunSkipsUnsatisfiedGuards(t *testing.T) {
	fe := newFakeExecutor()
	fe.succeed(tools.NameAssetSearchAndImport, map[string]any{
		"assetResult": map[string]any{"name": "Dragon", "type": "marketplace"},
	})
	fe.succeed(tools.NameExecuteBlenderCode, map[string]any{"result": "ok"})
	finishHonoringVeto(fe)

	plan := &planner.Plan{Subtasks: []planner.Subtask{
		{ID: "t1", Description: "Import an asset", Tool: tools.NameAssetSearchAndImport},
		{ID: "t2", Description: "If asset import failed, build it with code", Tool: tools.NameExecuteBlenderCode, DependsOn: []string{"t1"}},
		{ID: "t3", Description: "Summarize", Tool: tools.NameFinishTask, DependsOn: []string{"t1", "t2"}},
	}}

	runner := NewRunner(fe, &fakePlans{}, Options{})
	result := runner.RunPlan(context.Background(), "add a dragon", plan, nil)

	assert.True(t, result.Finished)
	assert.Zero(t, fe.callCount(tools.NameExecuteBlenderCode), "fallback not dispatched")
	require.Contains(t, result.Results, "t2")
	assert.True(t, result.Results["t2"].Skipped)
	assert.Contains(t, result.FinalResponse, "Dragon")
}

func TestRunParallelSubtaskTimeout(t *testing.T) {
	fe := newFakeExecutor()
	hang := func(ctx context.Context, _ tools.Input) (*tools.Result, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	fe.on(tools.NameGetSceneInfo, hang)
	fe.succeed(tools.NameSearchKnowledgeBase, map[string]any{"count": 0})
	finishHonoringVeto(fe)

	plan := &planner.Plan{Subtasks: []planner.Subtask{
		{ID: "a", Description: "Inspect scene", Tool: tools.NameGetSceneInfo},
		{ID: "b", Description: "Look up techniques", Tool: tools.NameSearchKnowledgeBase},
		{ID: "c", Description: "Summarize", Tool: tools.NameFinishTask, DependsOn: []string{"a", "b"}},
	}}

	runner := NewRunner(fe, &fakePlans{}, Options{SubtaskTimeout: 30 * time.Millisecond})
	result := runner.RunPlan(context.Background(), "hello", plan, nil)

	require.Contains(t, result.Results, "a")
	assert.False(t, result.Results["a"].Success)
	assert.True(t, result.Results["a"].TimedOut)
	assert.True(t, result.Results["a"].Retryable)
	assert.True(t, result.Results["b"].Success)
}

func TestRunInjectsAttachments(t *testing.T) {
	fe := newFakeExecutor()
	fe.succeed(tools.NameAnalyzeImage, map[string]any{"analysis": "A cube.", "imageCount": 1})
	finishHonoringVeto(fe)

	plan := &planner.Plan{Subtasks: []planner.Subtask{
		{ID: "t1", Description: "Analyze the attached image", Tool: tools.NameAnalyzeImage},
		{ID: "t2", Description: "Summarize", Tool: tools.NameFinishTask, DependsOn: []string{"t1"}},
	}}

	attachments := []llm.ImagePart{{MediaType: "image/png", Data: "aGk="}}
	runner := NewRunner(fe, &fakePlans{}, Options{})
	runner.RunPlan(context.Background(), "what is this", plan, attachments)

	inputs := fe.inputs[tools.NameAnalyzeImage]
	require.Len(t, inputs, 1)
	got, _ := inputs[0]["attachments"].([]llm.ImagePart)
	require.Len(t, got, 1)
	assert.Equal(t, "aGk=", got[0].Data)
}

func TestRunFinalResponseSceneFallback(t *testing.T) {
	fe := newFakeExecutor()
	// finish vetoes forever because the critical code step keeps failing.
	fe.fail(tools.NameExecuteBlenderCode, "broken")
	fe.succeed(tools.NameGetSceneInfo, map[string]any{
		"sceneContext": map[string]any{"object_count": float64(5)},
	})
	finishHonoringVeto(fe)

	plan := &planner.Plan{Subtasks: []planner.Subtask{
		{ID: "t1", Description: "Build it with code", Tool: tools.NameExecuteBlenderCode},
		{ID: "t2", Description: "Summarize", Tool: tools.NameFinishTask, DependsOn: []string{"t1"}},
	}}

	plans := &fakePlans{plan: plan, replanWith: plan}
	runner := NewRunner(fe, plans, Options{MaxLoops: 4})
	result := runner.RunPlan(context.Background(), "impossible", plan, nil)

	assert.False(t, result.Finished)
	assert.Contains(t, result.FinalResponse, "5 objects")
}

func TestParseGuard(t *testing.T) {
	tests := []struct {
		description string
		want        guardKind
	}{
		{"If asset import failed, build the object with Python code", guardFailure},
		{"  if the search cannot locate a model, generate one", guardFailure},
		{"IF the asset was not found, fall back to a primitive", guardFailure},
		{"if the generation was unsuccessful, try the marketplace", guardFailure},
		{"If the import succeeded, apply a material", guardSuccess},
		{"if previous step was a success, add lighting", guardSuccess},
		{"Import an asset matching the request", guardNone},
		{"Verify the modifier was applied", guardNone},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseGuard(tt.description), tt.description)
	}
}

func TestRunUnknownToolRecordedAsFailure(t *testing.T) {
	fe := newFakeExecutor()
	finishHonoringVeto(fe)

	plan := &planner.Plan{Subtasks: []planner.Subtask{
		{ID: "t1", Description: "Do something exotic", Tool: "teleport_object"},
		{ID: "t2", Description: "Summarize", Tool: tools.NameFinishTask, DependsOn: []string{"t1"}},
	}}

	runner := NewRunner(fe, &fakePlans{}, Options{})
	result := runner.RunPlan(context.Background(), "teleport it", plan, nil)

	require.Contains(t, result.Results, "t1")
	assert.False(t, result.Results["t1"].Success)
	assert.Contains(t, result.Results["t1"].Error, "teleport_object")
	assert.True(t, result.Finished, "unknown tool is not critical, finish proceeds")
}
