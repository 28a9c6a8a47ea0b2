package planner

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scenecraft/scenecraft/pkg/llm"
)

// fakeLLM replays a scripted reply or error.
type fakeLLM struct {
	reply string
	err   error
	calls int
}

func (f *fakeLLM) Complete(_ context.Context, _ llm.Request) (string, error) {
	f.calls++
	return f.reply, f.err
}

const validPlanJSON = `{
	"goal": "add a cube",
	"subtasks": [
		{"id": "t1", "description": "Create a cube", "tool": "execute_blender_code",
		 "input": {"code": "bpy.ops.mesh.primitive_cube_add()"}},
		{"id": "t2", "description": "Summarize", "tool": "finish_task",
		 "input": {"finalAnswer": "done"}, "dependsOn": ["t1"]}
	]
}`

func TestPlanParsesLLMReply(t *testing.T) {
	p := New(&fakeLLM{reply: validPlanJSON})

	plan := p.Plan(context.Background(), "add a cube", nil)

	require.Len(t, plan.Subtasks, 2)
	assert.Equal(t, "execute_blender_code", plan.Subtasks[0].Tool)
	assert.Equal(t, ToolFinishTask, plan.Subtasks[1].Tool)
}

func TestPlanUnwrapsMarkdownFences(t *testing.T) {
	p := New(&fakeLLM{reply: "```json\n" + validPlanJSON + "\n```"})

	plan := p.Plan(context.Background(), "add a cube", nil)
	require.Len(t, plan.Subtasks, 2)
}

func TestPlanFallsBackOnGatewayError(t *testing.T) {
	p := New(&fakeLLM{err: errors.New("rate limited")})

	plan := p.Plan(context.Background(), "add a dragon to the scene", nil)

	require.NoError(t, plan.Validate())
	assert.Equal(t, "asset_search_and_import", plan.Subtasks[0].Tool)
}

func TestPlanFallsBackOnUnparsableReply(t *testing.T) {
	p := New(&fakeLLM{reply: "Sure! Here is what I'd do: first, ..."})

	plan := p.Plan(context.Background(), "add a sphere", nil)
	require.NoError(t, plan.Validate())
}

func TestPlanFallsBackOnInvalidPlan(t *testing.T) {
	// Parsable JSON, but no finish_task.
	p := New(&fakeLLM{reply: `{"subtasks": [{"id": "t1", "description": "x", "tool": "get_scene_info"}]}`})

	plan := p.Plan(context.Background(), "what is in the scene", nil)

	require.NoError(t, plan.Validate())
	assert.Equal(t, "get_scene_info", plan.Subtasks[0].Tool, "info query fallback")
}

func TestFallbackPlanInfoQuery(t *testing.T) {
	plan := FallbackPlan("what is in the scene right now?", false)

	require.Len(t, plan.Subtasks, 2)
	assert.Equal(t, "get_scene_info", plan.Subtasks[0].Tool)
	assert.Equal(t, ToolFinishTask, plan.Subtasks[1].Tool)
}

func TestFallbackPlanWithImage(t *testing.T) {
	plan := FallbackPlan("recreate this", true)

	require.Len(t, plan.Subtasks, 4)
	assert.Equal(t, "analyze_image", plan.Subtasks[0].Tool)
	assert.Equal(t, "asset_search_and_import", plan.Subtasks[1].Tool)
	assert.Contains(t, plan.Subtasks[2].Description, "If asset import failed")
	require.NoError(t, plan.Validate())
}

func TestFallbackPlanNamedAssetTemplate(t *testing.T) {
	plan := FallbackPlan("add a sphere please", false)

	require.Len(t, plan.Subtasks, 3)
	code, _ := plan.Subtasks[1].Input["code"].(string)
	assert.Contains(t, code, "primitive_uv_sphere_add")
}

func TestFallbackPlanDefaultTemplate(t *testing.T) {
	plan := FallbackPlan("make something nice", false)

	code, _ := plan.Subtasks[1].Input["code"].(string)
	assert.Contains(t, code, "primitive_cube_add")
	require.NoError(t, plan.Validate())
}

func TestReplanUsesLLMAlternative(t *testing.T) {
	p := New(&fakeLLM{reply: validPlanJSON})

	plan := p.Replan(context.Background(), "add a cube",
		[]OutcomeSummary{{ID: "t1", Tool: "asset_search_and_import", Detail: "no asset found"}},
		nil)

	require.Len(t, plan.Subtasks, 2)
}

func TestReplanFallsBackToRecoveryPlan(t *testing.T) {
	p := New(&fakeLLM{err: errors.New("down")})

	plan := p.Replan(context.Background(), "add a cube", nil, nil)

	require.Len(t, plan.Subtasks, 3)
	assert.Equal(t, "search_knowledge_base", plan.Subtasks[0].Tool)
	assert.Equal(t, "execute_blender_code", plan.Subtasks[1].Tool)
	assert.Equal(t, ToolFinishTask, plan.Subtasks[2].Tool)
	require.NoError(t, plan.Validate())
}

func TestValidateRejectsEmptyPlan(t *testing.T) {
	err := (&Plan{}).Validate()
	assert.ErrorIs(t, err, ErrPlanInvalid)
}

func TestValidateRejectsUnknownDependency(t *testing.T) {
	plan := &Plan{Subtasks: []Subtask{
		{ID: "t1", Tool: "finish_task", DependsOn: []string{"ghost"}},
	}}
	err := plan.Validate()
	require.ErrorIs(t, err, ErrPlanInvalid)
	assert.Contains(t, err.Error(), "unknown id")
}

func TestValidateRejectsDuplicateIDs(t *testing.T) {
	plan := &Plan{Subtasks: []Subtask{
		{ID: "t1", Tool: "get_scene_info"},
		{ID: "t1", Tool: "finish_task"},
	}}
	assert.ErrorIs(t, plan.Validate(), ErrPlanInvalid)
}

func TestValidateRejectsCycle(t *testing.T) {
	plan := &Plan{Subtasks: []Subtask{
		{ID: "t1", Tool: "get_scene_info", DependsOn: []string{"t2"}},
		{ID: "t2", Tool: "execute_blender_code", DependsOn: []string{"t1"}},
		{ID: "t3", Tool: "finish_task"},
	}}
	err := plan.Validate()
	require.ErrorIs(t, err, ErrPlanInvalid)
	assert.Contains(t, err.Error(), "cycle")
}

func TestValidateRejectsMissingFinish(t *testing.T) {
	plan := &Plan{Subtasks: []Subtask{
		{ID: "t1", Tool: "get_scene_info"},
	}}
	err := plan.Validate()
	require.ErrorIs(t, err, ErrPlanInvalid)
	assert.Contains(t, err.Error(), "finish_task")
}

func TestValidateRejectsNonTerminalFinish(t *testing.T) {
	// finish_task exists but something depends on it, so it is not at the
	// frontier.
	plan := &Plan{Subtasks: []Subtask{
		{ID: "t1", Tool: "finish_task"},
		{ID: "t2", Tool: "get_scene_info", DependsOn: []string{"t1"}},
	}}
	assert.ErrorIs(t, plan.Validate(), ErrPlanInvalid)
}
