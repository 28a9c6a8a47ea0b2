package tools

import (
	"context"
	"time"
)

type registration struct {
	tool   Tool
	policy RetryPolicy
}

// Registry maps tool names to implementations and their retry policies.
type Registry struct {
	tools map[string]registration
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{tools: map[string]registration{}}
}

// Register adds a tool under its own name.
func (r *Registry) Register(tool Tool, policy RetryPolicy) {
	r.tools[tool.Name()] = registration{tool: tool, policy: policy}
}

// Names returns the registered tool names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	return names
}

// Execute dispatches by name through the retry harness. Unknown names
// yield a typed ToolError.
func (r *Registry) Execute(ctx context.Context, name string, input Input) (*Result, error) {
	reg, ok := r.tools[name]
	if !ok {
		return nil, &ToolError{Tool: name, Reason: "not registered", Err: ErrUnknownTool}
	}
	return withRetry(ctx, reg.policy, func(ctx context.Context) (*Result, error) {
		return reg.tool.Execute(ctx, input)
	})
}

// Deps carries everything the default catalog needs.
type Deps struct {
	Commander Commander
	Knowledge KnowledgeSearcher
	Assets    AssetAcquirer
	LLM       VisionCompleter
	Planner   PlanProvider

	// Code executor bounds; zero keeps the catalog defaults.
	CodeExecRetries int
	RepairAttempts  int
}

// NewDefaultRegistry wires the full catalog with its per-tool policies.
// Network-facing tools get a second or third attempt; the code executor
// retries internally through auto-repair, so the harness gives it one.
func NewDefaultRegistry(deps Deps) *Registry {
	r := NewRegistry()
	r.Register(NewDecomposeTask(deps.Planner), RetryPolicy{Attempts: 1})
	r.Register(NewSearchKnowledgeBase(deps.Knowledge), RetryPolicy{Attempts: 2, BackoffBase: 500 * time.Millisecond})
	r.Register(NewGetSceneInfo(deps.Commander), RetryPolicy{Attempts: 3, BackoffBase: 500 * time.Millisecond})
	r.Register(NewExecuteCode(deps.Commander).WithBounds(deps.CodeExecRetries, deps.RepairAttempts), RetryPolicy{Attempts: 1})
	r.Register(NewAssetSearchAndImport(deps.Assets), RetryPolicy{Attempts: 2, BackoffBase: 2 * time.Second})
	r.Register(NewAnalyzeImage(deps.LLM), RetryPolicy{Attempts: 2, BackoffBase: time.Second})
	r.Register(NewValidateWithVision(deps.Commander, deps.LLM), RetryPolicy{Attempts: 2, BackoffBase: time.Second})
	r.Register(NewCreateAnimation(deps.Commander), RetryPolicy{Attempts: 2, BackoffBase: time.Second})
	r.Register(NewFinishTask(), RetryPolicy{Attempts: 1})
	return r
}
