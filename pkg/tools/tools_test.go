package tools

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scenecraft/scenecraft/pkg/bridge"
	"github.com/scenecraft/scenecraft/pkg/integrations"
	"github.com/scenecraft/scenecraft/pkg/knowledge"
	"github.com/scenecraft/scenecraft/pkg/llm"
	"github.com/scenecraft/scenecraft/pkg/planner"
)

// scriptedCommander pops queued responses per command; the last entry
// repeats. It records every sent params map.
type scriptedCommander struct {
	responses map[string][]scriptedResponse
	sent      []map[string]any
}

type scriptedResponse struct {
	result json.RawMessage
	err    error
}

func newScriptedCommander() *scriptedCommander {
	return &scriptedCommander{responses: map[string][]scriptedResponse{}}
}

func (s *scriptedCommander) on(command, result string, err error) {
	s.responses[command] = append(s.responses[command], scriptedResponse{json.RawMessage(result), err})
}

func (s *scriptedCommander) Send(_ context.Context, commandType string, params map[string]any) (json.RawMessage, error) {
	s.sent = append(s.sent, params)
	queue := s.responses[commandType]
	if len(queue) == 0 {
		return nil, errors.New("unexpected command: " + commandType)
	}
	resp := queue[0]
	if len(queue) > 1 {
		s.responses[commandType] = queue[1:]
	}
	return resp.result, resp.err
}

type fakeLLM struct {
	reply string
	err   error
}

func (f *fakeLLM) Complete(_ context.Context, _ llm.Request) (string, error) {
	return f.reply, f.err
}

func TestInputHelpers(t *testing.T) {
	in := Input{
		"name":  "cube",
		"count": float64(3),
		"tags":  []any{"a", "b"},
	}

	assert.Equal(t, "cube", in.String("name"))
	assert.Equal(t, "", in.String("missing"))
	assert.Equal(t, 3, in.Int("count", 0))
	assert.Equal(t, 7, in.Int("missing", 7))
	assert.Equal(t, []string{"a", "b"}, in.Strings("tags"))
}

func TestRegistryUnknownTool(t *testing.T) {
	r := NewRegistry()

	_, err := r.Execute(context.Background(), "teleport", nil)

	require.Error(t, err)
	var toolErr *ToolError
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, "teleport", toolErr.Tool)
	assert.ErrorIs(t, err, ErrUnknownTool)
}

// flakyTool fails n times with the given error before succeeding.
type flakyTool struct {
	name     string
	failures int
	err      error
	calls    int
}

func (f *flakyTool) Name() string { return f.name }

func (f *flakyTool) Execute(_ context.Context, _ Input) (*Result, error) {
	f.calls++
	if f.calls <= f.failures {
		return nil, f.err
	}
	return OK(nil), nil
}

func TestRetryHarnessRetriesTimeouts(t *testing.T) {
	tool := &flakyTool{name: "flaky", failures: 2, err: bridge.ErrTimeout}
	r := NewRegistry()
	r.Register(tool, RetryPolicy{Attempts: 3, BackoffBase: time.Millisecond})

	result, err := r.Execute(context.Background(), "flaky", nil)

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 3, tool.calls)
}

func TestRetryHarnessDoesNotRetryConnectionErrors(t *testing.T) {
	tool := &flakyTool{name: "flaky", failures: 5, err: bridge.ErrNotConnected}
	r := NewRegistry()
	r.Register(tool, RetryPolicy{Attempts: 3, BackoffBase: time.Millisecond})

	_, err := r.Execute(context.Background(), "flaky", nil)

	require.ErrorIs(t, err, bridge.ErrNotConnected)
	assert.Equal(t, 1, tool.calls)
}

func TestRetryHarnessExhaustsAttempts(t *testing.T) {
	tool := &flakyTool{name: "flaky", failures: 5, err: bridge.ErrTimeout}
	r := NewRegistry()
	r.Register(tool, RetryPolicy{Attempts: 2, BackoffBase: time.Millisecond})

	_, err := r.Execute(context.Background(), "flaky", nil)

	require.ErrorIs(t, err, bridge.ErrTimeout)
	assert.Equal(t, 2, tool.calls)
}

func TestExecuteCodeSuccess(t *testing.T) {
	sc := newScriptedCommander()
	sc.on(bridge.CmdExecuteCode, `{"executed": true}`, nil)

	result, err := NewExecuteCode(sc).Execute(context.Background(), Input{"code": "bpy.ops.mesh.primitive_cube_add()"})

	require.NoError(t, err)
	assert.True(t, result.Success)

	// The code reaching the host is the sanitized form.
	sentCode, _ := sc.sent[0]["code"].(string)
	assert.True(t, strings.HasPrefix(sentCode, "import bpy\n"))
}

func TestExecuteCodeAutoRepairsKnownFailure(t *testing.T) {
	sc := newScriptedCommander()
	sc.on(bridge.CmdExecuteCode, ``, &bridge.RemoteError{Command: bridge.CmdExecuteCode, Message: "RuntimeError: nothing selected"})
	sc.on(bridge.CmdExecuteCode, `{"executed": true}`, nil)

	tool := NewExecuteCode(sc)
	tool.backoff = time.Millisecond

	result, err := tool.Execute(context.Background(), Input{"code": "bpy.ops.object.delete()"})

	require.NoError(t, err)
	assert.True(t, result.Success)
	require.Len(t, sc.sent, 2)

	repaired, _ := sc.sent[1]["code"].(string)
	assert.Contains(t, repaired, "select_all(action='SELECT')", "guard prepended before retry")
}

func TestExecuteCodeGivesUpOnUnknownFailure(t *testing.T) {
	sc := newScriptedCommander()
	sc.on(bridge.CmdExecuteCode, ``, &bridge.RemoteError{Command: bridge.CmdExecuteCode, Message: "SyntaxError: invalid syntax"})

	tool := NewExecuteCode(sc)
	tool.backoff = time.Millisecond

	result, err := tool.Execute(context.Background(), Input{"code": "this is not python"})

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "SyntaxError")
	assert.Len(t, sc.sent, 1, "unrepairable failures are not retried")
}

func TestExecuteCodeConnectionErrorPropagates(t *testing.T) {
	sc := newScriptedCommander()
	sc.on(bridge.CmdExecuteCode, ``, bridge.ErrNotConnected)

	_, err := NewExecuteCode(sc).Execute(context.Background(), Input{"code": "x = 1"})
	assert.ErrorIs(t, err, bridge.ErrNotConnected)
}

func TestGetSceneInfo(t *testing.T) {
	sc := newScriptedCommander()
	sc.on(bridge.CmdGetSceneInfo, `{"object_count": 3, "objects": ["Cube", "Light", "Camera"]}`, nil)

	result, err := NewGetSceneInfo(sc).Execute(context.Background(), nil)

	require.NoError(t, err)
	require.True(t, result.Success)
	scene, _ := result.Data["sceneContext"].(map[string]any)
	assert.Equal(t, float64(3), scene["object_count"])
}

// fakeSearcher returns canned knowledge results.
type fakeSearcher struct {
	results []knowledge.SearchResult
}

func (f *fakeSearcher) Search(_ context.Context, _ string, _ int) []knowledge.SearchResult {
	return f.results
}

func TestSearchKnowledgeBase(t *testing.T) {
	searcher := &fakeSearcher{results: []knowledge.SearchResult{
		{Content: "Use primitive_cube_add for cubes", Similarity: 0.9},
		{Content: "Modifiers stack top to bottom", Similarity: 0.6},
	}}

	result, err := NewSearchKnowledgeBase(searcher).Execute(context.Background(), Input{"query": "how to add a cube"})

	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, 2, result.Data["count"])
	docs, _ := result.Data["documents"].([]string)
	assert.Len(t, docs, 2)
}

func TestSearchKnowledgeBaseEmptyQuery(t *testing.T) {
	result, err := NewSearchKnowledgeBase(&fakeSearcher{}).Execute(context.Background(), Input{})
	require.NoError(t, err)
	assert.False(t, result.Success)
}

// fakeAcquirer scripts the integration registry.
type fakeAcquirer struct {
	status integrations.Status
	ref    *integrations.AssetRef
	err    error
}

func (f *fakeAcquirer) Status(_ context.Context) integrations.Status { return f.status }

func (f *fakeAcquirer) Acquire(_ context.Context, _ integrations.Intent) (*integrations.AssetRef, error) {
	return f.ref, f.err
}

func TestAssetSearchAndImport(t *testing.T) {
	acquirer := &fakeAcquirer{
		status: integrations.Status{Library: true},
		ref:    &integrations.AssetRef{Name: "Oak Veneer", Type: "library", AssetType: "textures"},
	}

	result, err := NewAssetSearchAndImport(acquirer).Execute(context.Background(), Input{"prompt": "oak wood texture"})

	require.NoError(t, err)
	require.True(t, result.Success)
	asset, _ := result.Data["assetResult"].(map[string]any)
	assert.Equal(t, "Oak Veneer", asset["name"])
	assert.Equal(t, "textures", asset["assetType"])
}

func TestAssetSearchAndImportNoIntegrations(t *testing.T) {
	result, err := NewAssetSearchAndImport(&fakeAcquirer{}).Execute(context.Background(), Input{"prompt": "a dragon"})
	require.NoError(t, err)
	assert.False(t, result.Success)
}

func TestAssetSearchAndImportNotFound(t *testing.T) {
	acquirer := &fakeAcquirer{
		status: integrations.Status{Marketplace: true},
		err:    integrations.ErrNoAssetFound,
	}

	result, err := NewAssetSearchAndImport(acquirer).Execute(context.Background(), Input{"prompt": "a dragon"})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.False(t, result.Retryable)
}

func TestAssetSearchAndImportCircuitOpenIsRetryable(t *testing.T) {
	acquirer := &fakeAcquirer{
		status: integrations.Status{Marketplace: true},
		err:    integrations.ErrCircuitOpen,
	}

	result, err := NewAssetSearchAndImport(acquirer).Execute(context.Background(), Input{"prompt": "a dragon"})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.True(t, result.Retryable)
}

func TestAnalyzeImage(t *testing.T) {
	tool := NewAnalyzeImage(&fakeLLM{reply: "A red cube on a wooden table."})

	result, err := tool.Execute(context.Background(), Input{
		"attachments": []llm.ImagePart{{MediaType: "image/png", Data: "aGk="}},
	})

	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, "A red cube on a wooden table.", result.Data["analysis"])
	assert.Equal(t, 1, result.Data["imageCount"])
}

func TestAnalyzeImageFallsBackOnLLMFailure(t *testing.T) {
	tool := NewAnalyzeImage(&fakeLLM{err: errors.New("vision model down")})

	result, err := tool.Execute(context.Background(), Input{
		"attachments": []llm.ImagePart{{MediaType: "image/png", Data: "aGk="}},
	})

	require.NoError(t, err)
	require.True(t, result.Success, "templated description keeps the run going")
	analysis, _ := result.Data["analysis"].(string)
	assert.Contains(t, analysis, "1 image")
}

func TestAnalyzeImageNoAttachments(t *testing.T) {
	result, err := NewAnalyzeImage(&fakeLLM{}).Execute(context.Background(), Input{})
	require.NoError(t, err)
	assert.False(t, result.Success)
}

func TestValidateWithVision(t *testing.T) {
	sc := newScriptedCommander()
	sc.on(bridge.CmdGetViewportScreenshot, `{"image_base64": "aGk=", "media_type": "image/png"}`, nil)

	verdictJSON := `{"matches": true, "confidence": 0.9, "quality_score": 8,
		"issues": [], "suggestions": ["add more light"], "pass": true}`
	tool := NewValidateWithVision(sc, &fakeLLM{reply: "```json\n" + verdictJSON + "\n```"})

	result, err := tool.Execute(context.Background(), Input{"expectedOutcome": "a red cube exists"})

	require.NoError(t, err)
	require.True(t, result.Success)
	verdict, ok := result.Data["validation"].(Verdict)
	require.True(t, ok)
	assert.True(t, verdict.Pass)
	assert.InDelta(t, 0.9, verdict.Confidence, 1e-9)
}

func TestValidateWithVisionBadVerdict(t *testing.T) {
	sc := newScriptedCommander()
	sc.on(bridge.CmdGetViewportScreenshot, `{"image_base64": "aGk="}`, nil)

	tool := NewValidateWithVision(sc, &fakeLLM{reply: "Looks good to me!"})

	result, err := tool.Execute(context.Background(), Input{"expectedOutcome": "anything"})
	require.NoError(t, err)
	assert.False(t, result.Success)
}

func TestCreateAnimationTemplates(t *testing.T) {
	for _, animationType := range []string{"hop", "walk", "rotate", "bounce"} {
		t.Run(animationType, func(t *testing.T) {
			sc := newScriptedCommander()
			sc.on(bridge.CmdExecuteCode, `{"executed": true}`, nil)

			result, err := NewCreateAnimation(sc).Execute(context.Background(), Input{
				"animationType": animationType,
				"duration":      float64(48),
			})

			require.NoError(t, err)
			require.True(t, result.Success)
			animation, _ := result.Data["animation"].(map[string]any)
			assert.Equal(t, animationType, animation["type"])
			assert.Equal(t, 48, animation["frames"])

			code, _ := sc.sent[0]["code"].(string)
			assert.Contains(t, code, "keyframe_insert")
		})
	}
}

func TestCreateAnimationUnknownType(t *testing.T) {
	result, err := NewCreateAnimation(newScriptedCommander()).Execute(context.Background(), Input{
		"animationType": "moonwalk",
	})
	require.NoError(t, err)
	assert.False(t, result.Success)
}

func TestCreateAnimationTargetsNamedObject(t *testing.T) {
	sc := newScriptedCommander()
	sc.on(bridge.CmdExecuteCode, `{"executed": true}`, nil)

	_, err := NewCreateAnimation(sc).Execute(context.Background(), Input{
		"animationType": "rotate",
		"targetObject":  "Dragon",
	})

	require.NoError(t, err)
	code, _ := sc.sent[0]["code"].(string)
	assert.Contains(t, code, `bpy.data.objects.get("Dragon")`)
}

func TestFinishTask(t *testing.T) {
	result, err := NewFinishTask().Execute(context.Background(), Input{"finalAnswer": "Added a red cube."})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "Added a red cube.", result.Message)
}

func TestFinishTaskVetoesOnCriticalFailures(t *testing.T) {
	result, err := NewFinishTask().Execute(context.Background(), Input{
		"finalAnswer":            "All done.",
		InputKeyCriticalFailures: []string{"Import an asset matching the request"},
	})

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "critical")
}

// fakePlanner answers with the deterministic fallback ruleset.
type fakePlanner struct{}

func (fakePlanner) Plan(_ context.Context, userRequest string, attachments []llm.ImagePart) *planner.Plan {
	return planner.FallbackPlan(userRequest, len(attachments) > 0)
}

func TestDecomposeTask(t *testing.T) {
	result, err := NewDecomposeTask(fakePlanner{}).Execute(context.Background(), Input{"userRequest": "add a cube"})

	require.NoError(t, err)
	require.True(t, result.Success)
	plan, ok := result.Data["plan"].(*planner.Plan)
	require.True(t, ok)
	require.NoError(t, plan.Validate())
}

func TestDecomposeTaskMissingRequest(t *testing.T) {
	result, err := NewDecomposeTask(fakePlanner{}).Execute(context.Background(), Input{})
	require.NoError(t, err)
	assert.False(t, result.Success)
}
