// Package services contains the business logic layer between the HTTP API
// and persistence.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/scenecraft/scenecraft/ent"
	"github.com/scenecraft/scenecraft/ent/agentrun"
	"github.com/scenecraft/scenecraft/ent/schema"
)

const dbTimeout = 5 * time.Second

// RunService manages the API-facing side of run records: submission,
// inspection, and pending-run cancellation. In-flight transitions
// (claim, finalize) belong to the queue workers.
type RunService struct {
	client *ent.Client
}

// NewRunService creates a new RunService
func NewRunService(client *ent.Client) *RunService {
	return &RunService{client: client}
}

// CreateRunInput carries everything needed to queue a run. Images ride
// along on the run row so whichever worker claims it can hand them to
// vision tools.
type CreateRunInput struct {
	Prompt         string
	ConversationID string
	Images         []schema.ImageAttachment
}

// CreateRun records a new pending run for a user request.
func (s *RunService) CreateRun(httpCtx context.Context, input CreateRunInput) (*ent.AgentRun, error) {
	if input.Prompt == "" {
		return nil, NewValidationError("prompt", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, dbTimeout)
	defer cancel()

	create := s.client.AgentRun.Create().
		SetID(uuid.New().String()).
		SetPrompt(input.Prompt).
		SetStatus(agentrun.StatusPending).
		SetCreatedAt(time.Now())
	if len(input.Images) > 0 {
		create = create.SetImages(input.Images)
	}
	if input.ConversationID != "" {
		create = create.SetConversationID(input.ConversationID)
	}

	run, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create run: %w", err)
	}
	return run, nil
}

// CancelRun marks a run cancelled. Only pending runs can be cancelled; a
// run already picked up by a worker proceeds to its own terminal state.
func (s *RunService) CancelRun(httpCtx context.Context, runID string) error {
	ctx, cancel := context.WithTimeout(httpCtx, dbTimeout)
	defer cancel()

	n, err := s.client.AgentRun.Update().
		Where(agentrun.IDEQ(runID), agentrun.StatusEQ(agentrun.StatusPending)).
		SetStatus(agentrun.StatusCancelled).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to cancel run: %w", err)
	}
	if n == 0 {
		// Either the run does not exist or it already left pending.
		exists, err := s.client.AgentRun.Query().
			Where(agentrun.IDEQ(runID)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("failed to check run existence: %w", err)
		}
		if !exists {
			return ErrNotFound
		}
		return fmt.Errorf("%w: run %s is no longer pending", ErrInvalidInput, runID)
	}
	return nil
}

// GetRun fetches one run by ID.
func (s *RunService) GetRun(httpCtx context.Context, runID string) (*ent.AgentRun, error) {
	if runID == "" {
		return nil, NewValidationError("run_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, dbTimeout)
	defer cancel()

	run, err := s.client.AgentRun.Get(ctx, runID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return run, nil
}

// ListRuns returns runs newest-first, optionally filtered by status.
func (s *RunService) ListRuns(httpCtx context.Context, status string, limit int) ([]*ent.AgentRun, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	ctx, cancel := context.WithTimeout(httpCtx, dbTimeout)
	defer cancel()

	query := s.client.AgentRun.Query().
		Order(ent.Desc(agentrun.FieldCreatedAt)).
		Limit(limit)
	if status != "" {
		query = query.Where(agentrun.StatusEQ(agentrun.Status(status)))
	}

	runs, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}
