// Package tools implements the fixed tool catalog the agent dispatches
// to, the retry harness wrapping every execution, and the code
// sanitization and auto-repair applied to generated scripts.
package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Tool names, as referenced by plans.
const (
	NameDecomposeTask        = "decompose_task"
	NameSearchKnowledgeBase  = "search_knowledge_base"
	NameGetSceneInfo         = "get_scene_info"
	NameExecuteBlenderCode   = "execute_blender_code"
	NameAssetSearchAndImport = "asset_search_and_import"
	NameAnalyzeImage         = "analyze_image"
	NameValidateWithVision   = "validate_with_vision"
	NameCreateAnimation      = "create_animation"
	NameFinishTask           = "finish_task"
)

// ErrUnknownTool is wrapped by the ToolError returned for unregistered
// names.
var ErrUnknownTool = errors.New("tools: unknown tool")

// ToolError is a typed execution error carrying the tool name.
type ToolError struct {
	Tool   string
	Reason string
	Err    error
}

func (e *ToolError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("tool %s: %s: %v", e.Tool, e.Reason, e.Err)
	}
	return fmt.Sprintf("tool %s: %s", e.Tool, e.Reason)
}

func (e *ToolError) Unwrap() error { return e.Err }

// Input is the loosely-typed argument bag a plan supplies to a tool.
type Input map[string]any

// String returns the string value under key, or "".
func (in Input) String(key string) string {
	s, _ := in[key].(string)
	return s
}

// Int returns the integer under key, tolerating JSON's float64 decoding,
// or def when absent.
func (in Input) Int(key string, def int) int {
	switch v := in[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
	}
	return def
}

// Strings returns the string slice under key, tolerating []any decoding.
func (in Input) Strings(key string) []string {
	switch v := in[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// Result is the uniform tool return shape.
type Result struct {
	Success   bool           `json:"success"`
	Data      map[string]any `json:"data,omitempty"`
	Message   string         `json:"message,omitempty"`
	Error     string         `json:"error,omitempty"`
	Retryable bool           `json:"retryable,omitempty"`
	TimedOut  bool           `json:"timedOut,omitempty"`
}

// OK builds a successful result.
func OK(data map[string]any) *Result {
	return &Result{Success: true, Data: data}
}

// Fail builds a definitive (non-retryable) failure.
func Fail(format string, args ...any) *Result {
	return &Result{Success: false, Error: fmt.Sprintf(format, args...)}
}

// Tool is one catalog entry.
type Tool interface {
	Name() string
	Execute(ctx context.Context, input Input) (*Result, error)
}

// Commander is the slice of the bridge client the tools drive.
type Commander interface {
	Send(ctx context.Context, commandType string, params map[string]any) (json.RawMessage, error)
}
