package integrations

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	"github.com/scenecraft/scenecraft/pkg/bridge"
)

// Options tune the breakers. Zero values mean defaults.
type Options struct {
	FailureThreshold uint32
	Cooldown         time.Duration
}

// Registry owns the three adapters and their breakers and is the single
// entry point for asset acquisition.
type Registry struct {
	commander   Commander
	generator   *GeneratorAdapter
	marketplace *MarketplaceAdapter
	library     *LibraryAdapter

	generatorCB   *gobreaker.CircuitBreaker
	marketplaceCB *gobreaker.CircuitBreaker
	libraryCB     *gobreaker.CircuitBreaker
}

// NewRegistry builds the registry over the bridge client.
func NewRegistry(commander Commander, opts Options) *Registry {
	if opts.FailureThreshold == 0 {
		opts.FailureThreshold = defaultFailureThreshold
	}
	if opts.Cooldown == 0 {
		opts.Cooldown = defaultCooldown
	}
	return &Registry{
		commander:     commander,
		generator:     NewGeneratorAdapter(commander),
		marketplace:   NewMarketplaceAdapter(commander),
		library:       NewLibraryAdapter(commander),
		generatorCB:   newBreaker("generator", opts.FailureThreshold, opts.Cooldown),
		marketplaceCB: newBreaker("marketplace", opts.FailureThreshold, opts.Cooldown),
		libraryCB:     newBreaker("library", opts.FailureThreshold, opts.Cooldown),
	}
}

// Status asks the remote host which integrations are enabled. A failing
// status probe reports the integration as disabled rather than failing
// the caller.
func (r *Registry) Status(ctx context.Context) Status {
	return Status{
		Generator:   r.probe(ctx, bridge.CmdGetHyper3DStatus),
		Marketplace: r.probe(ctx, bridge.CmdGetSketchfabStatus),
		Library:     r.probe(ctx, bridge.CmdGetPolyhavenStatus),
	}
}

func (r *Registry) probe(ctx context.Context, command string) bool {
	raw, err := r.commander.Send(ctx, command, nil)
	if err != nil {
		slog.Debug("Integration status probe failed", "command", command, "error", err)
		return false
	}
	var status struct {
		Enabled bool `json:"enabled"`
	}
	if err := json.Unmarshal(raw, &status); err != nil {
		return false
	}
	return status.Enabled
}

// Acquire dispatches an intent to its adapter through the breaker.
func (r *Registry) Acquire(ctx context.Context, intent Intent) (*AssetRef, error) {
	switch intent.Route {
	case RouteGenerator:
		return execute(r.generatorCB, func() (*AssetRef, error) {
			return r.generator.Generate(ctx, intent.Query)
		})
	case RouteMarketplace:
		return execute(r.marketplaceCB, func() (*AssetRef, error) {
			return r.marketplace.SearchAndImport(ctx, intent.Query)
		})
	case RouteLibrary:
		return execute(r.libraryCB, func() (*AssetRef, error) {
			return r.library.SearchAndImport(ctx, intent.Query, intent.AssetType)
		})
	default:
		return nil, ErrNotEnabled
	}
}
