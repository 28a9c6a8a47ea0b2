package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/scenecraft/scenecraft/pkg/llm"
)

const planSystemPrompt = `You are a task planner for a 3D scene assistant controlling Blender.
Decompose the user's request into subtasks using only these tools:
decompose_task, search_knowledge_base, get_scene_info, execute_blender_code,
asset_search_and_import, analyze_image, validate_with_vision, create_animation, finish_task.

Return JSON only, no prose, no markdown, with this shape:
{"goal": "...", "subtasks": [{"id": "t1", "description": "...", "tool": "...", "input": {...}, "dependsOn": []}]}

Rules:
- Every plan ends with exactly one finish_task subtask depending on the others.
- A subtask whose description starts with "If <something> failed" runs only when a dependency failed.
- Keep plans short: 2 to 6 subtasks.`

const replanSystemPrompt = `You are a task planner for a 3D scene assistant controlling Blender.
The previous plan failed. Propose an ALTERNATIVE strategy that avoids the observed
failure mode: if asset import failed, build the object with execute_blender_code
instead; if code failed, search the knowledge base first and retry with corrected code.
Do not repeat the failed approach.

Return JSON only, no prose, no markdown, with this shape:
{"goal": "...", "subtasks": [{"id": "t1", "description": "...", "tool": "...", "input": {...}, "dependsOn": []}]}
The plan must end with one finish_task subtask.`

// OutcomeSummary describes a prior subtask for the re-plan prompt.
type OutcomeSummary struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Tool        string `json:"tool"`
	Success     bool   `json:"success"`
	Detail      string `json:"detail,omitempty"`
}

// Planner turns requests into validated plans.
type Planner struct {
	llm llm.Client
}

// New creates a planner over the gateway client.
func New(client llm.Client) *Planner {
	return &Planner{llm: client}
}

// Plan produces a plan for the request. The LLM path is tried first; on
// any failure (gateway error, unparsable reply, invalid plan) the
// deterministic fallback ruleset takes over, so Plan never fails.
func (p *Planner) Plan(ctx context.Context, userRequest string, attachments []llm.ImagePart) *Plan {
	if p.llm != nil {
		plan, err := p.planViaLLM(ctx, userRequest, attachments)
		if err == nil {
			return plan
		}
		slog.Warn("LLM planning failed, using deterministic fallback", "error", err)
	}
	return FallbackPlan(userRequest, len(attachments) > 0)
}

// Replan produces an alternative plan given the observed outcomes. On LLM
// failure it degrades to the minimal recovery plan.
func (p *Planner) Replan(ctx context.Context, userRequest string, failed, completed []OutcomeSummary) *Plan {
	if p.llm != nil {
		plan, err := p.replanViaLLM(ctx, userRequest, failed, completed)
		if err == nil {
			return plan
		}
		slog.Warn("LLM re-planning failed, using recovery fallback", "error", err)
	}
	return RecoveryPlan(userRequest)
}

func (p *Planner) planViaLLM(ctx context.Context, userRequest string, attachments []llm.ImagePart) (*Plan, error) {
	userMsg := llm.Message{Role: llm.RoleUser, Content: userRequest, Images: attachments}
	reply, err := p.llm.Complete(ctx, llm.Request{
		Messages: []llm.Message{llm.SystemMsg(planSystemPrompt), userMsg},
	})
	if err != nil {
		return nil, fmt.Errorf("plan completion failed: %w", err)
	}
	return parsePlan(reply)
}

func (p *Planner) replanViaLLM(ctx context.Context, userRequest string, failed, completed []OutcomeSummary) (*Plan, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Original request: %s\n\nFailed subtasks:\n", userRequest)
	for _, o := range failed {
		fmt.Fprintf(&sb, "- [%s] %s (tool %s): %s\n", o.ID, o.Description, o.Tool, o.Detail)
	}
	sb.WriteString("\nCompleted subtasks:\n")
	for _, o := range completed {
		fmt.Fprintf(&sb, "- [%s] %s (tool %s)\n", o.ID, o.Description, o.Tool)
	}

	reply, err := p.llm.Complete(ctx, llm.Request{
		Messages: []llm.Message{llm.SystemMsg(replanSystemPrompt), llm.UserMsg(sb.String())},
	})
	if err != nil {
		return nil, fmt.Errorf("re-plan completion failed: %w", err)
	}
	return parsePlan(reply)
}

func parsePlan(reply string) (*Plan, error) {
	var plan Plan
	if err := json.Unmarshal([]byte(llm.StripFences(reply)), &plan); err != nil {
		return nil, fmt.Errorf("failed to parse plan JSON: %w", err)
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return &plan, nil
}
