package queue

import (
	"context"
	"errors"
	"log/slog"

	"github.com/scenecraft/scenecraft/ent"
	"github.com/scenecraft/scenecraft/ent/agentrun"
	"github.com/scenecraft/scenecraft/pkg/agent"
	"github.com/scenecraft/scenecraft/pkg/llm"
)

// ConversationWriter appends the assistant's final response to the
// conversation that triggered the run.
type ConversationWriter interface {
	AddAssistantMessage(ctx context.Context, conversationID, runID, content string) (*ent.Message, error)
}

// AgentRunExecutor drives a claimed run through the agent scheduler.
type AgentRunExecutor struct {
	runner        *agent.Runner
	conversations ConversationWriter
}

// NewAgentRunExecutor creates the production executor. conversations may
// be nil; final responses then only land on the run row.
func NewAgentRunExecutor(runner *agent.Runner, conversations ConversationWriter) *AgentRunExecutor {
	return &AgentRunExecutor{runner: runner, conversations: conversations}
}

// Execute runs the scheduler and maps its outcome to a terminal status.
func (e *AgentRunExecutor) Execute(ctx context.Context, run *ent.AgentRun) *ExecutionResult {
	attachments := make([]llm.ImagePart, 0, len(run.Images))
	for _, img := range run.Images {
		attachments = append(attachments, llm.ImagePart{
			MediaType: img.MediaType,
			Data:      img.Data,
		})
	}

	result := e.runner.Run(ctx, run.Prompt, attachments)

	status := agentrun.StatusCompleted
	var runErr error
	switch {
	case errors.Is(ctx.Err(), context.Canceled):
		status = agentrun.StatusCancelled
		runErr = context.Canceled
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		status = agentrun.StatusTimedOut
		runErr = ctx.Err()
	case !result.Finished:
		// The scheduler exhausted its loop bound without a finish.
		status = agentrun.StatusTimedOut
		runErr = errors.New("scheduler loop bound exhausted before finish")
	}

	if status == agentrun.StatusCompleted && e.conversations != nil && run.ConversationID != nil {
		_, err := e.conversations.AddAssistantMessage(ctx, *run.ConversationID, run.ID, result.FinalResponse)
		if err != nil {
			slog.Warn("Failed to record assistant message",
				"run_id", run.ID, "conversation_id", *run.ConversationID, "error", err)
		}
	}

	return &ExecutionResult{
		Status:        status,
		FinalResponse: result.FinalResponse,
		Loops:         result.Loops,
		Replanned:     result.Replanned,
		Error:         runErr,
	}
}
