package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scenecraft/scenecraft/ent"
	"github.com/scenecraft/scenecraft/ent/agentrun"
	"github.com/scenecraft/scenecraft/ent/message"
	"github.com/scenecraft/scenecraft/ent/schema"
	"github.com/scenecraft/scenecraft/pkg/queue"
	"github.com/scenecraft/scenecraft/pkg/services"
)

type fakeRunService struct {
	runs       map[string]*ent.AgentRun
	created    []*ent.AgentRun
	lastImages []schema.ImageAttachment
	cancelErr  error
	createErr  error
}

func newFakeRunService() *fakeRunService {
	return &fakeRunService{runs: map[string]*ent.AgentRun{}}
}

func (f *fakeRunService) CreateRun(_ context.Context, input services.CreateRunInput) (*ent.AgentRun, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	run := &ent.AgentRun{
		ID:        "run-1",
		Prompt:    input.Prompt,
		Status:    agentrun.StatusPending,
		CreatedAt: time.Now(),
	}
	f.runs[run.ID] = run
	f.created = append(f.created, run)
	f.lastImages = input.Images
	return run, nil
}

func (f *fakeRunService) GetRun(_ context.Context, runID string) (*ent.AgentRun, error) {
	run, ok := f.runs[runID]
	if !ok {
		return nil, services.ErrNotFound
	}
	return run, nil
}

func (f *fakeRunService) ListRuns(_ context.Context, status string, _ int) ([]*ent.AgentRun, error) {
	var out []*ent.AgentRun
	for _, run := range f.runs {
		if status == "" || string(run.Status) == status {
			out = append(out, run)
		}
	}
	return out, nil
}

func (f *fakeRunService) CancelRun(_ context.Context, runID string) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	run, ok := f.runs[runID]
	if !ok {
		return services.ErrNotFound
	}
	run.Status = agentrun.StatusCancelled
	return nil
}

type fakeConvService struct {
	messages map[string][]*ent.Message
}

func newFakeConvService() *fakeConvService {
	return &fakeConvService{messages: map[string][]*ent.Message{}}
}

func (f *fakeConvService) CreateConversation(context.Context) (*ent.Conversation, error) {
	return &ent.Conversation{ID: "conv-1", CreatedAt: time.Now(), UpdatedAt: time.Now()}, nil
}

func (f *fakeConvService) AddUserMessage(_ context.Context, conversationID, content string) (*ent.Message, error) {
	msg := &ent.Message{
		ID:             "msg-1",
		ConversationID: conversationID,
		Role:           message.RoleUser,
		Content:        content,
		CreatedAt:      time.Now(),
	}
	f.messages[conversationID] = append(f.messages[conversationID], msg)
	return msg, nil
}

func (f *fakeConvService) GetMessages(_ context.Context, conversationID string) ([]*ent.Message, error) {
	return f.messages[conversationID], nil
}

func (f *fakeConvService) ListConversations(context.Context, int) ([]*ent.Conversation, error) {
	return nil, nil
}

type fakePool struct {
	backlogErr error
	cancelled  map[string]bool
	healthy    bool
}

func newFakePool() *fakePool {
	return &fakePool{cancelled: map[string]bool{}, healthy: true}
}

func (f *fakePool) CheckBacklog(context.Context) error { return f.backlogErr }

func (f *fakePool) CancelRun(runID string) bool { return f.cancelled[runID] }

func (f *fakePool) Health() *queue.PoolHealth {
	return &queue.PoolHealth{IsHealthy: f.healthy, DBReachable: true, TotalWorkers: 1}
}

func newTestServer() (*Server, *fakeRunService, *fakeConvService, *fakePool) {
	runs := newFakeRunService()
	convs := newFakeConvService()
	pool := newFakePool()
	return NewServer(nil, runs, convs, pool), runs, convs, pool
}

func doJSON(s *Server, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestSubmitRequest(t *testing.T) {
	s, runs, convs, _ := newTestServer()

	rec := doJSON(s, http.MethodPost, "/api/v1/requests",
		`{"prompt": "add a red cube"}`)
	require.Equal(t, http.StatusAccepted, rec.Code)

	var resp SubmitResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "run-1", resp.RunID)
	assert.Equal(t, "conv-1", resp.ConversationID)
	assert.Equal(t, "queued", resp.Status)

	require.Len(t, runs.created, 1)
	assert.Equal(t, "add a red cube", runs.created[0].Prompt)
	assert.Len(t, convs.messages["conv-1"], 1)
}

func TestSubmitRequestWithImages(t *testing.T) {
	s, runs, _, _ := newTestServer()

	rec := doJSON(s, http.MethodPost, "/api/v1/requests",
		`{"prompt": "match this", "images": [{"data": "aGk="}]}`)
	require.Equal(t, http.StatusAccepted, rec.Code)

	require.Len(t, runs.lastImages, 1)
	assert.Equal(t, "image/png", runs.lastImages[0].MediaType, "media type defaults")
	assert.Equal(t, "aGk=", runs.lastImages[0].Data)
}

func TestSubmitRequestValidation(t *testing.T) {
	s, _, _, _ := newTestServer()

	rec := doJSON(s, http.MethodPost, "/api/v1/requests", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	big := strings.Repeat("x", MaxPromptSize+1)
	rec = doJSON(s, http.MethodPost, "/api/v1/requests", `{"prompt": "`+big+`"}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	rec = doJSON(s, http.MethodPost, "/api/v1/requests",
		`{"prompt": "ok", "images": [{"media_type": "image/png"}]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitRequestQueueFull(t *testing.T) {
	s, _, _, pool := newTestServer()
	pool.backlogErr = queue.ErrQueueFull

	rec := doJSON(s, http.MethodPost, "/api/v1/requests", `{"prompt": "hello"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestGetRun(t *testing.T) {
	s, runs, _, _ := newTestServer()
	final := "The scene contains 3 objects."
	runs.runs["run-9"] = &ent.AgentRun{
		ID:            "run-9",
		Prompt:        "scene info",
		Status:        agentrun.StatusCompleted,
		Loops:         2,
		FinalResponse: &final,
		CreatedAt:     time.Now(),
	}

	rec := doJSON(s, http.MethodGet, "/api/v1/runs/run-9", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp RunResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, final, resp.FinalResponse)

	rec = doJSON(s, http.MethodGet, "/api/v1/runs/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCancelRun(t *testing.T) {
	s, runs, _, pool := newTestServer()

	// In-flight run: cancelled through the pool.
	pool.cancelled["run-a"] = true
	rec := doJSON(s, http.MethodPost, "/api/v1/runs/run-a/cancel", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "cancelling")

	// Pending run: flipped by the service.
	runs.runs["run-b"] = &ent.AgentRun{ID: "run-b", Status: agentrun.StatusPending}
	rec = doJSON(s, http.MethodPost, "/api/v1/runs/run-b/cancel", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, agentrun.StatusCancelled, runs.runs["run-b"].Status)

	rec = doJSON(s, http.MethodPost, "/api/v1/runs/missing/cancel", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealth(t *testing.T) {
	s, _, _, pool := newTestServer()

	rec := doJSON(s, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))

	pool.healthy = false
	rec = doJSON(s, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{services.NewValidationError("prompt", "required"), http.StatusBadRequest},
		{services.ErrNotFound, http.StatusNotFound},
		{queue.ErrQueueFull, http.StatusServiceUnavailable},
		{assert.AnError, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.code, mapServiceError(tt.err).Code, tt.err.Error())
	}
}
