package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scenecraft/scenecraft/ent"
	"github.com/scenecraft/scenecraft/ent/agentrun"
	testdb "github.com/scenecraft/scenecraft/test/database"
)

// markInProgress simulates a queue worker claiming the run.
func markInProgress(t *testing.T, client *ent.Client, runID string) {
	t.Helper()
	err := client.AgentRun.UpdateOneID(runID).
		SetStatus(agentrun.StatusInProgress).
		SetStartedAt(time.Now()).
		Exec(context.Background())
	require.NoError(t, err)
}

func TestCreateAndGetRun(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping testcontainer test in short mode")
	}
	client := testdb.NewTestClient(t)
	svc := NewRunService(client)
	ctx := context.Background()

	run, err := svc.CreateRun(ctx, CreateRunInput{Prompt: "add a red cube"})
	require.NoError(t, err)
	assert.Equal(t, agentrun.StatusPending, run.Status)
	assert.Equal(t, "add a red cube", run.Prompt)

	got, err := svc.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.ID, got.ID)
	assert.Nil(t, got.StartedAt)

	_, err = svc.GetRun(ctx, "missing-run")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCancelRunOnlyWhenPending(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping testcontainer test in short mode")
	}
	client := testdb.NewTestClient(t)
	svc := NewRunService(client)
	ctx := context.Background()

	run, err := svc.CreateRun(ctx, CreateRunInput{Prompt: "cancel me"})
	require.NoError(t, err)
	require.NoError(t, svc.CancelRun(ctx, run.ID))

	got, err := svc.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, agentrun.StatusCancelled, got.Status)

	// A claimed run cannot be cancelled through the service.
	run2, err := svc.CreateRun(ctx, CreateRunInput{Prompt: "too late"})
	require.NoError(t, err)
	markInProgress(t, client, run2.ID)
	err = svc.CancelRun(ctx, run2.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.ErrorIs(t, svc.CancelRun(ctx, "missing-run"), ErrNotFound)
}

func TestListRunsFiltersByStatus(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping testcontainer test in short mode")
	}
	client := testdb.NewTestClient(t)
	svc := NewRunService(client)
	ctx := context.Background()

	first, err := svc.CreateRun(ctx, CreateRunInput{Prompt: "first"})
	require.NoError(t, err)
	_, err = svc.CreateRun(ctx, CreateRunInput{Prompt: "second"})
	require.NoError(t, err)
	markInProgress(t, client, first.ID)

	pending, err := svc.ListRuns(ctx, "pending", 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "second", pending[0].Prompt)

	all, err := svc.ListRuns(ctx, "", 10)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestRunValidation(t *testing.T) {
	svc := NewRunService(nil)
	ctx := context.Background()

	_, err := svc.CreateRun(ctx, CreateRunInput{Prompt: ""})
	assert.True(t, IsValidationError(err))

	_, err = svc.GetRun(ctx, "")
	assert.True(t, IsValidationError(err))
}
