package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scenecraft/scenecraft/ent"
	"github.com/scenecraft/scenecraft/ent/agentrun"
	"github.com/scenecraft/scenecraft/ent/schema"
	"github.com/scenecraft/scenecraft/pkg/agent"
	"github.com/scenecraft/scenecraft/pkg/llm"
	"github.com/scenecraft/scenecraft/pkg/planner"
	"github.com/scenecraft/scenecraft/pkg/tools"
)

type stubTools struct {
	finishMessage string
	finishOK      bool
	sawAttachment bool
}

func (s *stubTools) Execute(_ context.Context, name string, input tools.Input) (*tools.Result, error) {
	if _, ok := input["attachments"]; ok {
		s.sawAttachment = true
	}
	if name == planner.ToolFinishTask {
		if !s.finishOK {
			return &tools.Result{Success: false, Error: "not done yet"}, nil
		}
		return &tools.Result{Success: true, Message: s.finishMessage}, nil
	}
	return nil, errors.New("no such tool")
}

type stubPlans struct{}

func (stubPlans) Plan(context.Context, string, []llm.ImagePart) *planner.Plan {
	return &planner.Plan{Subtasks: []planner.Subtask{
		{ID: "t1", Tool: planner.ToolFinishTask, Description: "wrap up"},
	}}
}

func (stubPlans) Replan(context.Context, string, []planner.OutcomeSummary, []planner.OutcomeSummary) *planner.Plan {
	return stubPlans{}.Plan(context.Background(), "", nil)
}

type recordingWriter struct {
	convID  string
	runID   string
	content string
	calls   int
}

func (w *recordingWriter) AddAssistantMessage(_ context.Context, conversationID, runID, content string) (*ent.Message, error) {
	w.calls++
	w.convID = conversationID
	w.runID = runID
	w.content = content
	return &ent.Message{ID: "m1"}, nil
}

func TestAgentRunExecutorCompletesAndRecordsMessage(t *testing.T) {
	exec := &stubTools{finishOK: true, finishMessage: "Added a red cube to the scene."}
	runner := agent.NewRunner(exec, stubPlans{}, agent.Options{MaxLoops: 5})
	writer := &recordingWriter{}
	e := NewAgentRunExecutor(runner, writer)

	convID := "conv-1"
	run := &ent.AgentRun{
		ID:             "run-1",
		Prompt:         "add a red cube",
		ConversationID: &convID,
		Images:         []schema.ImageAttachment{{MediaType: "image/png", Data: "aGk="}},
	}

	result := e.Execute(context.Background(), run)
	require.Equal(t, agentrun.StatusCompleted, result.Status)
	assert.Equal(t, "Added a red cube to the scene.", result.FinalResponse)
	assert.NoError(t, result.Error)
	assert.True(t, exec.sawAttachment, "images flow into the run as attachments")

	assert.Equal(t, 1, writer.calls)
	assert.Equal(t, "conv-1", writer.convID)
	assert.Equal(t, "run-1", writer.runID)
	assert.Equal(t, "Added a red cube to the scene.", writer.content)
}

func TestAgentRunExecutorLoopExhaustionIsTimedOut(t *testing.T) {
	exec := &stubTools{finishOK: false}
	runner := agent.NewRunner(exec, stubPlans{}, agent.Options{MaxLoops: 3})
	writer := &recordingWriter{}
	e := NewAgentRunExecutor(runner, writer)

	result := e.Execute(context.Background(), &ent.AgentRun{ID: "run-2", Prompt: "stuck"})
	assert.Equal(t, agentrun.StatusTimedOut, result.Status)
	assert.Error(t, result.Error)
	assert.Equal(t, 0, writer.calls, "no assistant message for unfinished runs")
}

func TestAgentRunExecutorCancelledContext(t *testing.T) {
	runner := agent.NewRunner(&stubTools{finishOK: true}, stubPlans{}, agent.Options{MaxLoops: 3})
	e := NewAgentRunExecutor(runner, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := e.Execute(ctx, &ent.AgentRun{ID: "run-3", Prompt: "never mind"})
	assert.Equal(t, agentrun.StatusCancelled, result.Status)
	assert.ErrorIs(t, result.Error, context.Canceled)
}

func TestAgentRunExecutorDeadlineExceeded(t *testing.T) {
	runner := agent.NewRunner(&stubTools{finishOK: false}, stubPlans{}, agent.Options{MaxLoops: 1000})
	e := NewAgentRunExecutor(runner, nil)

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()

	result := e.Execute(ctx, &ent.AgentRun{ID: "run-4", Prompt: "slow"})
	assert.Equal(t, agentrun.StatusTimedOut, result.Status)
	assert.ErrorIs(t, result.Error, context.DeadlineExceeded)
}
