package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scenecraft/scenecraft/ent/message"
	testdb "github.com/scenecraft/scenecraft/test/database"
)

func TestConversationMessageFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping testcontainer test in short mode")
	}
	client := testdb.NewTestClient(t)
	convSvc := NewConversationService(client)
	runSvc := NewRunService(client)
	ctx := context.Background()

	conv, err := convSvc.CreateConversation(ctx)
	require.NoError(t, err)
	assert.Nil(t, conv.Title)

	_, err = convSvc.AddUserMessage(ctx, conv.ID, "make a forest scene")
	require.NoError(t, err)

	// Title derives from the first user message.
	got, err := convSvc.GetConversation(ctx, conv.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Title)
	assert.Equal(t, "make a forest scene", *got.Title)

	run, err := runSvc.CreateRun(ctx, CreateRunInput{Prompt: "make a forest scene"})
	require.NoError(t, err)
	_, err = convSvc.AddAssistantMessage(ctx, conv.ID, run.ID, "Created 12 trees.")
	require.NoError(t, err)

	msgs, err := convSvc.GetMessages(ctx, conv.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, message.RoleUser, msgs[0].Role)
	assert.Equal(t, message.RoleAssistant, msgs[1].Role)
	require.NotNil(t, msgs[1].RunID)
	assert.Equal(t, run.ID, *msgs[1].RunID)
}

func TestAddUserMessageKeepsExistingTitle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping testcontainer test in short mode")
	}
	client := testdb.NewTestClient(t)
	svc := NewConversationService(client)
	ctx := context.Background()

	conv, err := svc.CreateConversation(ctx)
	require.NoError(t, err)
	_, err = svc.AddUserMessage(ctx, conv.ID, "first message")
	require.NoError(t, err)
	_, err = svc.AddUserMessage(ctx, conv.ID, "second message")
	require.NoError(t, err)

	got, err := svc.GetConversation(ctx, conv.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Title)
	assert.Equal(t, "first message", *got.Title)
}

func TestAddUserMessageUnknownConversation(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping testcontainer test in short mode")
	}
	client := testdb.NewTestClient(t)
	svc := NewConversationService(client)

	_, err := svc.AddUserMessage(context.Background(), "missing", "hello")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTruncateTitle(t *testing.T) {
	short := "make a cube"
	assert.Equal(t, short, truncateTitle(short))

	long := strings.Repeat("a very long request ", 10)
	title := truncateTitle(long)
	assert.LessOrEqual(t, len([]rune(title)), titleMaxRunes)
	assert.True(t, strings.HasSuffix(title, "…"))
}
