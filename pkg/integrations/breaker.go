package integrations

import (
	"errors"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"
)

const (
	defaultFailureThreshold = 3
	defaultCooldown         = 30 * time.Second
)

// newBreaker builds a breaker that trips after threshold consecutive
// failures, stays open for cooldown, then admits a single trial request.
func newBreaker(name string, threshold uint32, cooldown time.Duration) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			slog.Warn("Integration breaker state change",
				"integration", name, "from", from.String(), "to", to.String())
		},
	})
}

// execute runs fn through the breaker, translating breaker-internal
// errors into the package sentinel.
func execute(cb *gobreaker.CircuitBreaker, fn func() (*AssetRef, error)) (*AssetRef, error) {
	result, err := cb.Execute(func() (any, error) {
		return fn()
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, ErrCircuitOpen
		}
		return nil, err
	}
	return result.(*AssetRef), nil
}
