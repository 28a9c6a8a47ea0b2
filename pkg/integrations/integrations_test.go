package integrations

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scenecraft/scenecraft/pkg/bridge"
)

// fakeCommander scripts per-command responses. A handler may be a queue:
// successive calls pop successive entries.
type fakeCommander struct {
	responses map[string][]fakeResponse
	calls     []string
}

type fakeResponse struct {
	result json.RawMessage
	err    error
}

func newFakeCommander() *fakeCommander {
	return &fakeCommander{responses: map[string][]fakeResponse{}}
}

func (f *fakeCommander) on(command string, result string, err error) {
	f.responses[command] = append(f.responses[command], fakeResponse{
		result: json.RawMessage(result),
		err:    err,
	})
}

func (f *fakeCommander) Send(_ context.Context, commandType string, _ map[string]any) (json.RawMessage, error) {
	f.calls = append(f.calls, commandType)
	queue := f.responses[commandType]
	if len(queue) == 0 {
		return nil, errors.New("unexpected command: " + commandType)
	}
	resp := queue[0]
	if len(queue) > 1 {
		f.responses[commandType] = queue[1:]
	}
	return resp.result, resp.err
}

func TestClassifyIntent(t *testing.T) {
	allEnabled := Status{Generator: true, Marketplace: true, Library: true}

	tests := []struct {
		name      string
		prompt    string
		status    Status
		wantRoute Route
		wantType  AssetType
	}{
		{
			name:      "texture request routes to library",
			prompt:    "add a wood texture to the floor",
			status:    allEnabled,
			wantRoute: RouteLibrary,
			wantType:  AssetTypeTextures,
		},
		{
			name:      "hdri request routes to library hdris",
			prompt:    "use a sunset HDRI for the lighting",
			status:    allEnabled,
			wantRoute: RouteLibrary,
			wantType:  AssetTypeHDRIs,
		},
		{
			name:      "furniture routes to library models",
			prompt:    "put a chair in the corner",
			status:    allEnabled,
			wantRoute: RouteLibrary,
			wantType:  AssetTypeModels,
		},
		{
			name:      "branded model routes to marketplace",
			prompt:    "import a ferrari",
			status:    allEnabled,
			wantRoute: RouteMarketplace,
		},
		{
			name:      "unique creature routes to generator",
			prompt:    "generate a unique fantasy creature",
			status:    allEnabled,
			wantRoute: RouteGenerator,
		},
		{
			name:      "library keyword ignored when library disabled",
			prompt:    "add a wood texture",
			status:    Status{Marketplace: true},
			wantRoute: RouteMarketplace,
		},
		{
			name:      "no integrations enabled routes to none",
			prompt:    "add a dragon",
			status:    Status{},
			wantRoute: RouteNone,
		},
		{
			name:      "plain asset request falls back to marketplace",
			prompt:    "add a dragon to the scene",
			status:    allEnabled,
			wantRoute: RouteMarketplace,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := ClassifyIntent(tt.prompt, tt.status)
			assert.Equal(t, tt.wantRoute, intent.Route)
			if tt.wantType != "" {
				assert.Equal(t, tt.wantType, intent.AssetType)
			}
		})
	}
}

func TestCategoryTerm(t *testing.T) {
	assert.Equal(t, "oak wood", CategoryTerm("download an oak wood texture please"))
	assert.Equal(t, "sunset", CategoryTerm("get a sunset HDRI"))
	// Nothing left after stripping: fall back to the lowered query.
	assert.Equal(t, "a texture", CategoryTerm("a texture"))
}

func TestMarketplacePicksFirstDownloadableHit(t *testing.T) {
	fc := newFakeCommander()
	fc.on(bridge.CmdSearchSketchfabModels, `{
		"results": [
			{"uid": "aaa", "name": "Broken Car", "isDownloadable": false},
			{"uid": "bbb", "name": "Red Dragon", "isDownloadable": true}
		]
	}`, nil)
	fc.on(bridge.CmdDownloadSketchfabModel, `{"success": true, "imported_objects": ["Red Dragon"]}`, nil)

	ref, err := NewMarketplaceAdapter(fc).SearchAndImport(context.Background(), "dragon")
	require.NoError(t, err)
	assert.Equal(t, "Red Dragon", ref.Name)
	assert.Equal(t, "marketplace", ref.Type)
}

func TestMarketplaceNoDownloadableHits(t *testing.T) {
	fc := newFakeCommander()
	fc.on(bridge.CmdSearchSketchfabModels, `{
		"results": [{"uid": "aaa", "name": "View Only", "isDownloadable": false}]
	}`, nil)

	_, err := NewMarketplaceAdapter(fc).SearchAndImport(context.Background(), "anything")
	assert.ErrorIs(t, err, ErrNoAssetFound)
}

func TestMarketplaceDownloadFailure(t *testing.T) {
	fc := newFakeCommander()
	fc.on(bridge.CmdSearchSketchfabModels, `{
		"results": [{"uid": "aaa", "name": "Dragon", "isDownloadable": true}]
	}`, nil)
	fc.on(bridge.CmdDownloadSketchfabModel, `{"success": false, "error": "quota exceeded"}`, nil)

	_, err := NewMarketplaceAdapter(fc).SearchAndImport(context.Background(), "dragon")
	assert.ErrorIs(t, err, ErrImportFailed)
}

func TestLibraryAppliesTextureDefaults(t *testing.T) {
	fc := newFakeCommander()
	fc.on(bridge.CmdSearchPolyhavenAssets, `{"assets": {"oak_veneer": {"name": "Oak Veneer"}}}`, nil)
	fc.on(bridge.CmdDownloadPolyhavenAsset, `{"success": true}`, nil)

	var downloadParams map[string]any
	adapter := NewLibraryAdapter(commanderFunc(func(ctx context.Context, commandType string, params map[string]any) (json.RawMessage, error) {
		if commandType == bridge.CmdDownloadPolyhavenAsset {
			downloadParams = params
		}
		return fc.Send(ctx, commandType, params)
	}))

	ref, err := adapter.SearchAndImport(context.Background(), "oak wood texture", AssetTypeTextures)
	require.NoError(t, err)
	assert.Equal(t, "Oak Veneer", ref.Name)
	assert.Equal(t, string(AssetTypeTextures), ref.AssetType)
	assert.Equal(t, "1k", downloadParams["resolution"])
	assert.Equal(t, "jpg", downloadParams["file_format"])
}

func TestLibraryAppliesHDRIDefaults(t *testing.T) {
	fc := newFakeCommander()
	fc.on(bridge.CmdSearchPolyhavenAssets, `{"assets": {"sunset_sky": {"name": "Sunset Sky"}}}`, nil)
	fc.on(bridge.CmdDownloadPolyhavenAsset, `{"success": true}`, nil)

	var downloadParams map[string]any
	adapter := NewLibraryAdapter(commanderFunc(func(ctx context.Context, commandType string, params map[string]any) (json.RawMessage, error) {
		if commandType == bridge.CmdDownloadPolyhavenAsset {
			downloadParams = params
		}
		return fc.Send(ctx, commandType, params)
	}))

	_, err := adapter.SearchAndImport(context.Background(), "sunset hdri", AssetTypeHDRIs)
	require.NoError(t, err)
	assert.Equal(t, "hdr", downloadParams["file_format"])
}

func TestLibraryEmptySearch(t *testing.T) {
	fc := newFakeCommander()
	fc.on(bridge.CmdSearchPolyhavenAssets, `{"assets": {}}`, nil)

	_, err := NewLibraryAdapter(fc).SearchAndImport(context.Background(), "nonexistent", AssetTypeModels)
	assert.ErrorIs(t, err, ErrNoAssetFound)
}

func TestGeneratorPerTaskMode(t *testing.T) {
	fc := newFakeCommander()
	fc.on(bridge.CmdCreateRodinJob, `{
		"uuid": "job-1",
		"jobs": {"uuids": ["t1", "t2"], "subscription_key": "sub-key"}
	}`, nil)
	fc.on(bridge.CmdPollRodinJobStatus, `{"jobs": [{"uuid": "t1", "status": "Done"}, {"uuid": "t2", "status": "Generating"}]}`, nil)
	fc.on(bridge.CmdPollRodinJobStatus, `{"jobs": [{"uuid": "t1", "status": "Done"}, {"uuid": "t2", "status": "Done"}]}`, nil)
	fc.on(bridge.CmdImportGeneratedAsset, `{"succeed": true, "name": "Crystal_Golem"}`, nil)

	adapter := NewGeneratorAdapter(fc)
	adapter.pollInterval = time.Millisecond
	adapter.pollBudget = time.Second

	ref, err := adapter.Generate(context.Background(), "a crystal golem")
	require.NoError(t, err)
	assert.Equal(t, "Crystal_Golem", ref.Name)
	assert.Equal(t, "generated", ref.Type)
}

func TestGeneratorOverallStatusMode(t *testing.T) {
	fc := newFakeCommander()
	fc.on(bridge.CmdCreateRodinJob, `{"request_id": "req-9"}`, nil)
	fc.on(bridge.CmdPollRodinJobStatus, `{"status": "IN_PROGRESS"}`, nil)
	fc.on(bridge.CmdPollRodinJobStatus, `{"status": "COMPLETED"}`, nil)
	fc.on(bridge.CmdImportGeneratedAsset, `{"succeed": true}`, nil)

	adapter := NewGeneratorAdapter(fc)
	adapter.pollInterval = time.Millisecond
	adapter.pollBudget = time.Second

	ref, err := adapter.Generate(context.Background(), "weathered stone archway with moss")
	require.NoError(t, err)
	// Name derived from the first words of the prompt.
	assert.Equal(t, "weathered_stone_archway_with", ref.Name)
}

func TestGeneratorFailedTask(t *testing.T) {
	fc := newFakeCommander()
	fc.on(bridge.CmdCreateRodinJob, `{"uuid": "job-1", "jobs": {"uuids": ["t1"], "subscription_key": "k"}}`, nil)
	fc.on(bridge.CmdPollRodinJobStatus, `{"jobs": [{"uuid": "t1", "status": "Failed"}]}`, nil)

	adapter := NewGeneratorAdapter(fc)
	adapter.pollInterval = time.Millisecond
	adapter.pollBudget = time.Second

	_, err := adapter.Generate(context.Background(), "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed")
}

func TestGeneratorPollBudgetExhausted(t *testing.T) {
	fc := newFakeCommander()
	fc.on(bridge.CmdCreateRodinJob, `{"request_id": "req-1"}`, nil)
	fc.on(bridge.CmdPollRodinJobStatus, `{"status": "IN_PROGRESS"}`, nil)

	adapter := NewGeneratorAdapter(fc)
	adapter.pollInterval = time.Millisecond
	adapter.pollBudget = 20 * time.Millisecond

	_, err := adapter.Generate(context.Background(), "anything")
	assert.ErrorIs(t, err, ErrGenerationTimeout)
}

func TestBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	fc := newFakeCommander()
	fc.on(bridge.CmdSearchSketchfabModels, ``, errors.New("host unreachable"))

	reg := NewRegistry(fc, Options{FailureThreshold: 3, Cooldown: time.Hour})
	intent := Intent{Route: RouteMarketplace, Query: "dragon"}

	for i := 0; i < 3; i++ {
		_, err := reg.Acquire(context.Background(), intent)
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrCircuitOpen, "breaker must stay closed until the threshold")
	}

	_, err := reg.Acquire(context.Background(), intent)
	assert.ErrorIs(t, err, ErrCircuitOpen)
}

func TestBreakerHalfOpenRecovery(t *testing.T) {
	fc := newFakeCommander()
	fc.on(bridge.CmdSearchSketchfabModels, ``, errors.New("down"))
	fc.on(bridge.CmdSearchSketchfabModels, ``, errors.New("down"))
	fc.on(bridge.CmdSearchSketchfabModels, ``, errors.New("down"))
	fc.on(bridge.CmdSearchSketchfabModels, `{"results": [{"uid": "x", "name": "Dragon", "isDownloadable": true}]}`, nil)
	fc.on(bridge.CmdDownloadSketchfabModel, `{"success": true, "imported_objects": ["Dragon"]}`, nil)

	reg := NewRegistry(fc, Options{FailureThreshold: 3, Cooldown: 30 * time.Millisecond})
	intent := Intent{Route: RouteMarketplace, Query: "dragon"}

	for i := 0; i < 3; i++ {
		_, _ = reg.Acquire(context.Background(), intent)
	}
	_, err := reg.Acquire(context.Background(), intent)
	require.ErrorIs(t, err, ErrCircuitOpen)

	// Cool-down elapses: the single half-open trial succeeds and closes
	// the breaker.
	time.Sleep(50 * time.Millisecond)
	ref, err := reg.Acquire(context.Background(), intent)
	require.NoError(t, err)
	assert.Equal(t, "Dragon", ref.Name)
}

func TestAcquireRouteNone(t *testing.T) {
	reg := NewRegistry(newFakeCommander(), Options{})
	_, err := reg.Acquire(context.Background(), Intent{Route: RouteNone})
	assert.ErrorIs(t, err, ErrNotEnabled)
}

func TestRegistryStatusProbes(t *testing.T) {
	fc := newFakeCommander()
	fc.on(bridge.CmdGetHyper3DStatus, `{"enabled": true}`, nil)
	fc.on(bridge.CmdGetSketchfabStatus, `{"enabled": false}`, nil)
	fc.on(bridge.CmdGetPolyhavenStatus, ``, errors.New("not connected"))

	status := NewRegistry(fc, Options{}).Status(context.Background())
	assert.True(t, status.Generator)
	assert.False(t, status.Marketplace)
	assert.False(t, status.Library, "failed probe reports disabled")
}

// commanderFunc adapts a function to the Commander interface.
type commanderFunc func(ctx context.Context, commandType string, params map[string]any) (json.RawMessage, error)

func (f commanderFunc) Send(ctx context.Context, commandType string, params map[string]any) (json.RawMessage, error) {
	return f(ctx, commandType, params)
}
