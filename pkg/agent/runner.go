// Package agent drives a plan to its terminal state: dependency-ordered
// dispatch with a parallel pass for independent subtasks, conditional
// guards, a one-shot re-plan after critical failures, and a hard loop
// bound so every run terminates.
package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/scenecraft/scenecraft/pkg/llm"
	"github.com/scenecraft/scenecraft/pkg/planner"
	"github.com/scenecraft/scenecraft/pkg/tools"
)

const (
	defaultMaxLoops       = 10
	defaultSubtaskTimeout = 60 * time.Second
)

// Tools whose failure counts as critical: they produce the asset or
// geometry the request is actually about.
var criticalTools = map[string]bool{
	tools.NameAssetSearchAndImport: true,
	tools.NameExecuteBlenderCode:   true,
	tools.NameCreateAnimation:      true,
}

// ToolExecutor dispatches one tool by name.
type ToolExecutor interface {
	Execute(ctx context.Context, name string, input tools.Input) (*tools.Result, error)
}

// PlanSource produces and revises plans.
type PlanSource interface {
	Plan(ctx context.Context, userRequest string, attachments []llm.ImagePart) *planner.Plan
	Replan(ctx context.Context, userRequest string, failed, completed []planner.OutcomeSummary) *planner.Plan
}

// Options bound a run. Zero values mean defaults.
type Options struct {
	MaxLoops       int
	SubtaskTimeout time.Duration
}

// Runner executes agent runs. It is stateless across runs; all per-run
// state lives in a runState owned by one Run invocation.
type Runner struct {
	tools   ToolExecutor
	planner PlanSource
	opts    Options
}

// NewRunner creates a runner over the tool registry and planner.
func NewRunner(executor ToolExecutor, plans PlanSource, opts Options) *Runner {
	if opts.MaxLoops <= 0 {
		opts.MaxLoops = defaultMaxLoops
	}
	if opts.SubtaskTimeout <= 0 {
		opts.SubtaskTimeout = defaultSubtaskTimeout
	}
	return &Runner{tools: executor, planner: plans, opts: opts}
}

type runState struct {
	userRequest string
	attachments []llm.ImagePart

	plan         *planner.Plan
	results      map[string]*SubtaskResult
	completed    map[string]bool
	cursor       int
	loops        int
	hasReplanned bool
	finished     bool

	finishMessage string
	messages      []string
}

// Run drives the request to a terminal state.
func (r *Runner) Run(ctx context.Context, userRequest string, attachments []llm.ImagePart) *RunResult {
	return r.run(ctx, &runState{
		userRequest: userRequest,
		attachments: attachments,
		results:     map[string]*SubtaskResult{},
		completed:   map[string]bool{},
	})
}

// RunPlan drives a pre-built plan; used when the plan was produced
// upstream (e.g. by decompose_task).
func (r *Runner) RunPlan(ctx context.Context, userRequest string, plan *planner.Plan, attachments []llm.ImagePart) *RunResult {
	return r.run(ctx, &runState{
		userRequest: userRequest,
		attachments: attachments,
		plan:        plan,
		results:     map[string]*SubtaskResult{},
		completed:   map[string]bool{},
	})
}

func (r *Runner) run(ctx context.Context, st *runState) *RunResult {
	for !st.finished && st.loops < r.opts.MaxLoops && ctx.Err() == nil {
		st.loops++
		r.step(ctx, st)
	}
	return &RunResult{
		FinalResponse: r.synthesize(ctx, st),
		Finished:      st.finished,
		Loops:         st.loops,
		Replanned:     st.hasReplanned,
		Results:       st.results,
	}
}

// step is one scheduler iteration: plan if absent, re-plan if the
// critical failure threshold is crossed, run a parallel pass when two or
// more subtasks are ready, otherwise take one sequential step.
func (r *Runner) step(ctx context.Context, st *runState) {
	if st.plan == nil {
		st.plan = r.planner.Plan(ctx, st.userRequest, st.attachments)
		return
	}

	if r.shouldReplan(st) {
		r.replan(ctx, st)
		return
	}

	if ready := r.readySubtasks(st); len(ready) >= 2 {
		r.parallelPass(ctx, st, ready)
		return
	}

	r.sequentialStep(ctx, st)
}

// readySubtasks returns every subtask whose dependencies are completed,
// which is not finish_task, is not itself completed, and whose guard (if
// any) holds against current results.
func (r *Runner) readySubtasks(st *runState) []planner.Subtask {
	var ready []planner.Subtask
	for _, subtask := range st.plan.Subtasks {
		if st.completed[subtask.ID] || subtask.Tool == planner.ToolFinishTask {
			continue
		}
		if !r.depsMet(st, subtask) {
			continue
		}
		if !r.guardHolds(st, subtask) {
			continue
		}
		ready = append(ready, subtask)
	}
	return ready
}

func (r *Runner) depsMet(st *runState, subtask planner.Subtask) bool {
	for _, dep := range subtask.DependsOn {
		if !st.completed[dep] {
			return false
		}
	}
	return true
}

// guardHolds evaluates the conditional prefix: failure-gated subtasks
// need at least one failed dependency, success-gated at least one
// succeeded dependency. Skipped dependencies count as neither.
func (r *Runner) guardHolds(st *runState, subtask planner.Subtask) bool {
	switch parseGuard(subtask.Description) {
	case guardFailure:
		for _, dep := range subtask.DependsOn {
			if res := st.results[dep]; res != nil && !res.Skipped && !res.Success {
				return true
			}
		}
		return false
	case guardSuccess:
		for _, dep := range subtask.DependsOn {
			if res := st.results[dep]; res != nil && res.Success {
				return true
			}
		}
		return false
	default:
		return true
	}
}

// parallelPass launches all ready subtasks concurrently, each under its
// own deadline, and merges outcomes keyed by subtask id so the mapping is
// identical regardless of arrival order.
func (r *Runner) parallelPass(ctx context.Context, st *runState, ready []planner.Subtask) {
	outcomes := make([]*SubtaskResult, len(ready))
	var wg sync.WaitGroup
	for i, subtask := range ready {
		wg.Add(1)
		go func(i int, subtask planner.Subtask) {
			defer wg.Done()
			subCtx, cancel := context.WithTimeout(ctx, r.opts.SubtaskTimeout)
			defer cancel()
			outcomes[i] = r.dispatch(subCtx, st, subtask)
		}(i, subtask)
	}
	wg.Wait()

	for _, outcome := range outcomes {
		st.results[outcome.SubtaskID] = outcome
		st.completed[outcome.SubtaskID] = true
		if outcome.Success {
			r.collectMessage(st, outcome)
		}
	}
	r.advanceCursor(st)
}

// sequentialStep takes the subtask at the cursor. Completed entries are
// stepped over; unmet dependencies make this a bounded no-op loop;
// unsatisfied guards mark the subtask skipped. finish_task may veto.
func (r *Runner) sequentialStep(ctx context.Context, st *runState) {
	r.advanceCursor(st)
	if st.cursor >= len(st.plan.Subtasks) {
		// Every subtask done but no finish fired (it was vetoed or the
		// plan had none at the cursor's path). Nothing left to run.
		st.finished = true
		return
	}

	subtask := st.plan.Subtasks[st.cursor]
	if !r.depsMet(st, subtask) {
		// No-op loop; the loop bound guarantees termination even if the
		// dependency never completes.
		st.cursor = (st.cursor + 1) % len(st.plan.Subtasks)
		return
	}

	if !r.guardHolds(st, subtask) {
		st.results[subtask.ID] = &SubtaskResult{
			SubtaskID:   subtask.ID,
			Tool:        subtask.Tool,
			Description: subtask.Description,
			Skipped:     true,
		}
		st.completed[subtask.ID] = true
		r.advanceCursor(st)
		return
	}

	result := r.dispatch(ctx, st, subtask)
	st.results[subtask.ID] = result
	if result.Success {
		r.collectMessage(st, result)
	}

	if subtask.Tool == planner.ToolFinishTask {
		if result.Success {
			st.finished = true
			st.finishMessage = result.Message
			st.completed[subtask.ID] = true
			r.advanceCursor(st)
		}
		// A veto leaves the finish incomplete; the next iteration's
		// re-plan check sees the recorded critical failures.
		return
	}

	st.completed[subtask.ID] = true
	r.advanceCursor(st)
}

// advanceCursor moves the cursor past completed subtasks.
func (r *Runner) advanceCursor(st *runState) {
	for st.cursor < len(st.plan.Subtasks) && st.completed[st.plan.Subtasks[st.cursor].ID] {
		st.cursor++
	}
}

// dispatch executes one subtask, converting tool errors and deadline
// expiry into a recorded result.
func (r *Runner) dispatch(ctx context.Context, st *runState, subtask planner.Subtask) *SubtaskResult {
	input := tools.Input{}
	for k, v := range subtask.Input {
		input[k] = v
	}
	if len(st.attachments) > 0 {
		if _, present := input["attachments"]; !present {
			input["attachments"] = st.attachments
		}
	}
	if subtask.Tool == planner.ToolFinishTask {
		if failures := r.criticalFailureDescriptions(st); len(failures) > 0 {
			input[tools.InputKeyCriticalFailures] = failures
		}
	}

	result, err := r.tools.Execute(ctx, subtask.Tool, input)
	record := &SubtaskResult{
		SubtaskID:   subtask.ID,
		Tool:        subtask.Tool,
		Description: subtask.Description,
	}
	switch {
	case err != nil:
		record.Error = err.Error()
		if ctx.Err() == context.DeadlineExceeded {
			record.TimedOut = true
			record.Retryable = true
		}
		slog.Warn("Subtask failed", "subtask", subtask.ID, "tool", subtask.Tool, "error", err)
	default:
		record.Success = result.Success
		record.Data = result.Data
		record.Message = result.Message
		record.Error = result.Error
		record.Retryable = result.Retryable
		record.TimedOut = result.TimedOut
	}

	return record
}

// collectMessage accumulates the AI-visible narration used when no
// finish summary is available.
func (r *Runner) collectMessage(st *runState, record *SubtaskResult) {
	switch record.Tool {
	case tools.NameGetSceneInfo:
		st.messages = append(st.messages, sceneSummary(record.Data))
	case tools.NameAnalyzeImage:
		if analysis, ok := record.Data["analysis"].(string); ok && analysis != "" {
			st.messages = append(st.messages, analysis)
		}
	case tools.NameAssetSearchAndImport:
		if asset, ok := record.Data["assetResult"].(map[string]any); ok {
			if name, ok := asset["name"].(string); ok && name != "" {
				st.messages = append(st.messages, fmt.Sprintf("Imported asset %q into the scene.", name))
			}
		}
	case tools.NameCreateAnimation:
		if animation, ok := record.Data["animation"].(map[string]any); ok {
			st.messages = append(st.messages, fmt.Sprintf("Created a %v animation.", animation["type"]))
		}
	}
}

// criticalFailureDescriptions lists failed critical, non-conditional
// subtasks, in plan order. A failure whose failure-gated fallback already
// succeeded is considered recovered and not counted.
func (r *Runner) criticalFailureDescriptions(st *runState) []string {
	var failures []string
	for _, subtask := range st.plan.Subtasks {
		res := st.results[subtask.ID]
		if res == nil || res.Skipped || res.Success {
			continue
		}
		if !criticalTools[subtask.Tool] || parseGuard(subtask.Description) != guardNone {
			continue
		}
		if r.recovered(st, subtask.ID) {
			continue
		}
		failures = append(failures, subtask.Description)
	}
	return failures
}

// recovered reports whether a failure-gated subtask depending on the
// failed one ran and succeeded.
func (r *Runner) recovered(st *runState, failedID string) bool {
	for _, subtask := range st.plan.Subtasks {
		if parseGuard(subtask.Description) != guardFailure {
			continue
		}
		dependsOnFailed := false
		for _, dep := range subtask.DependsOn {
			if dep == failedID {
				dependsOnFailed = true
				break
			}
		}
		if !dependsOnFailed {
			continue
		}
		if res := st.results[subtask.ID]; res != nil && res.Success {
			return true
		}
	}
	return false
}

// shouldReplan applies the one-shot re-plan rule: at least two attempted
// subtasks, at least two critical failures, and a critical failure rate
// of one half or more. A single attempted critical failure also
// triggers, but only when the plan holds no pending fallback gated on it.
func (r *Runner) shouldReplan(st *runState) bool {
	if st.hasReplanned {
		return false
	}

	attempted := 0
	for _, res := range st.results {
		if !res.Skipped {
			attempted++
		}
	}
	failures := r.criticalFailureDescriptions(st)

	if attempted >= 2 && len(failures) >= 2 &&
		float64(len(failures))/float64(attempted) >= 0.5 {
		return true
	}
	if attempted == 1 && len(failures) == 1 && !r.pendingFallbackExists(st) {
		return true
	}
	return false
}

// pendingFallbackExists reports whether any not-yet-run failure-gated
// subtask depends on a failed one: the plan still has a recovery path.
func (r *Runner) pendingFallbackExists(st *runState) bool {
	for _, subtask := range st.plan.Subtasks {
		if st.completed[subtask.ID] || parseGuard(subtask.Description) != guardFailure {
			continue
		}
		for _, dep := range subtask.DependsOn {
			if res := st.results[dep]; res != nil && !res.Skipped && !res.Success {
				return true
			}
		}
	}
	return false
}

// replan swaps in an alternative plan and resets all cursors and results.
func (r *Runner) replan(ctx context.Context, st *runState) {
	var failed, completed []planner.OutcomeSummary
	for _, subtask := range st.plan.Subtasks {
		res := st.results[subtask.ID]
		if res == nil || res.Skipped {
			continue
		}
		summary := planner.OutcomeSummary{
			ID:          subtask.ID,
			Description: subtask.Description,
			Tool:        subtask.Tool,
			Success:     res.Success,
			Detail:      res.Error,
		}
		if res.Success {
			completed = append(completed, summary)
		} else {
			failed = append(failed, summary)
		}
	}

	slog.Info("Re-planning after critical failures",
		"failed", len(failed), "completed", len(completed))

	st.plan = r.planner.Replan(ctx, st.userRequest, failed, completed)
	st.results = map[string]*SubtaskResult{}
	st.completed = map[string]bool{}
	st.cursor = 0
	st.hasReplanned = true
}

// synthesize builds the final textual response: the finish summary when
// it says something, else the accumulated narration, else a templated
// report of the current scene size.
func (r *Runner) synthesize(ctx context.Context, st *runState) string {
	if st.finishMessage != "" && st.finishMessage != tools.DefaultFinalAnswer {
		return st.finishMessage
	}
	if len(st.messages) > 0 {
		return strings.Join(st.messages, " ")
	}

	if result, err := r.tools.Execute(ctx, tools.NameGetSceneInfo, nil); err == nil && result.Success {
		return sceneSummary(result.Data)
	}
	if st.finishMessage != "" {
		return st.finishMessage
	}
	return "The request could not be completed; no changes were confirmed in the scene."
}

// sceneSummary renders a scene context into one line of prose.
func sceneSummary(data map[string]any) string {
	scene, _ := data["sceneContext"].(map[string]any)
	if count, ok := scene["object_count"].(float64); ok {
		return fmt.Sprintf("The scene contains %d objects.", int(count))
	}
	return "Scene information retrieved."
}
