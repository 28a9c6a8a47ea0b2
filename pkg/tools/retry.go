package tools

import (
	"context"
	"errors"
	"time"

	"github.com/scenecraft/scenecraft/pkg/bridge"
)

// RetryPolicy controls the harness around one tool.
type RetryPolicy struct {
	// Attempts is the total number of tries, including the first.
	Attempts int
	// BackoffBase is multiplied by the attempt number between tries.
	BackoffBase time.Duration
	// Retryable decides whether a given error is worth another attempt.
	// Nil means DefaultRetryable.
	Retryable func(error) bool
}

// DefaultRetryable retries timeouts and remote-side failures but not
// connection-level errors: a host that is unreachable now will be
// unreachable 500ms from now too, and the bridge reconnects on its own.
func DefaultRetryable(err error) bool {
	if errors.Is(err, bridge.ErrNotConnected) ||
		errors.Is(err, bridge.ErrConnectionReset) ||
		errors.Is(err, bridge.ErrClosed) {
		return false
	}
	if errors.Is(err, bridge.ErrTimeout) {
		return true
	}
	var remote *bridge.RemoteError
	return errors.As(err, &remote)
}

func (p RetryPolicy) normalized() RetryPolicy {
	if p.Attempts <= 0 {
		p.Attempts = 1
	}
	if p.BackoffBase <= 0 {
		p.BackoffBase = 500 * time.Millisecond
	}
	if p.Retryable == nil {
		p.Retryable = DefaultRetryable
	}
	return p
}

// withRetry runs fn under the policy. A *Result (success or definitive
// failure) ends the loop; only retryable errors continue it.
func withRetry(ctx context.Context, policy RetryPolicy, fn func(ctx context.Context) (*Result, error)) (*Result, error) {
	policy = policy.normalized()

	var lastErr error
	for attempt := 1; attempt <= policy.Attempts; attempt++ {
		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err
		if !policy.Retryable(err) || attempt == policy.Attempts {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(policy.BackoffBase * time.Duration(attempt)):
		}
	}
	return nil, lastErr
}
