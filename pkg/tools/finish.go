package tools

import (
	"context"
	"fmt"
	"strings"
)

// InputKeyCriticalFailures is injected by the scheduler before
// dispatching finish_task: descriptions of critical, non-conditional
// subtasks that failed during the run.
const InputKeyCriticalFailures = "criticalFailures"

// DefaultFinalAnswer is used when a plan supplies no finalAnswer. The
// scheduler treats it as a placeholder when synthesizing the final
// response.
const DefaultFinalAnswer = "Task completed."

// FinishTask is the terminal tool. It refuses to finish when critical
// work failed, so the scheduler can re-plan instead of declaring success.
type FinishTask struct{}

// NewFinishTask creates the finish_task tool.
func NewFinishTask() *FinishTask { return &FinishTask{} }

func (t *FinishTask) Name() string { return NameFinishTask }

func (t *FinishTask) Execute(_ context.Context, input Input) (*Result, error) {
	finalAnswer := input.String("finalAnswer")

	if failures := input.Strings(InputKeyCriticalFailures); len(failures) > 0 {
		return &Result{
			Success: false,
			Message: fmt.Sprintf(
				"Cannot finish: %d critical step(s) failed (%s). The task needs a different approach.",
				len(failures), strings.Join(failures, "; ")),
		}, nil
	}

	if finalAnswer == "" {
		finalAnswer = DefaultFinalAnswer
	}
	return &Result{Success: true, Message: finalAnswer}, nil
}
