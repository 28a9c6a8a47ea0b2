package tools

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/scenecraft/scenecraft/pkg/bridge"
)

const (
	maxExecAttempts   = 3
	maxRepairAttempts = 3
	repairBackoffBase = 500 * time.Millisecond
)

// ExecuteCode runs generated scripts on the remote host: sanitize, send,
// and on recognizable remote failures prepend a guard and retry.
type ExecuteCode struct {
	commander Commander
	attempts  int
	repairs   int
	backoff   time.Duration
}

// NewExecuteCode creates the execute_blender_code tool with default
// attempt and repair bounds.
func NewExecuteCode(commander Commander) *ExecuteCode {
	return &ExecuteCode{
		commander: commander,
		attempts:  maxExecAttempts,
		repairs:   maxRepairAttempts,
		backoff:   repairBackoffBase,
	}
}

// WithBounds overrides the attempt and repair bounds; zero keeps the
// current value.
func (t *ExecuteCode) WithBounds(attempts, repairs int) *ExecuteCode {
	if attempts > 0 {
		t.attempts = attempts
	}
	if repairs > 0 {
		t.repairs = repairs
	}
	return t
}

func (t *ExecuteCode) Name() string { return NameExecuteBlenderCode }

func (t *ExecuteCode) Execute(ctx context.Context, input Input) (*Result, error) {
	code := input.String("code")
	if code == "" {
		return Fail("no code provided"), nil
	}
	code = Sanitize(code)

	var lastErr error
	repairsUsed := 0
	for attempt := 1; attempt <= t.attempts; attempt++ {
		raw, err := t.commander.Send(ctx, bridge.CmdExecuteCode, map[string]any{"code": code})
		if err == nil {
			return OK(map[string]any{"result": rawToAny(raw)}), nil
		}
		lastErr = err

		var remote *bridge.RemoteError
		if !errors.As(err, &remote) {
			// Connection-level failure: repair cannot help.
			return nil, err
		}

		guard, ok := repairSnippet(remote.Message)
		if !ok || repairsUsed >= t.repairs || attempt == t.attempts {
			break
		}
		repairsUsed++
		slog.Debug("Auto-repairing script", "attempt", attempt, "error", remote.Message)
		code = Sanitize(guard + "\n" + code)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(t.backoff * time.Duration(attempt)):
		}
	}

	return &Result{Success: false, Error: lastErr.Error(), Retryable: false}, nil
}

// rawToAny decodes a raw frame into a generic value for the result bag;
// undecodable payloads are passed through as strings.
func rawToAny(raw json.RawMessage) any {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return string(raw)
	}
	return v
}
