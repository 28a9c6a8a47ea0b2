package tools

import (
	"context"

	"github.com/scenecraft/scenecraft/pkg/llm"
)

// DecomposeTask produces a plan for a request. Planning never fails: the
// provider degrades to its deterministic ruleset internally.
type DecomposeTask struct {
	planner PlanProvider
}

// NewDecomposeTask creates the decompose_task tool.
func NewDecomposeTask(planner PlanProvider) *DecomposeTask {
	return &DecomposeTask{planner: planner}
}

func (t *DecomposeTask) Name() string { return NameDecomposeTask }

func (t *DecomposeTask) Execute(ctx context.Context, input Input) (*Result, error) {
	userRequest := input.String("userRequest")
	if userRequest == "" {
		return Fail("no userRequest provided"), nil
	}

	attachments, _ := input["attachments"].([]llm.ImagePart)
	plan := t.planner.Plan(ctx, userRequest, attachments)

	return OK(map[string]any{"plan": plan}), nil
}
