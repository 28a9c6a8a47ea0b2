package tools

import (
	"context"
	"errors"

	"github.com/scenecraft/scenecraft/pkg/integrations"
)

// AssetSearchAndImport classifies the request's intent and acquires an
// asset through the matching integration.
type AssetSearchAndImport struct {
	acquirer AssetAcquirer
}

// NewAssetSearchAndImport creates the asset_search_and_import tool.
func NewAssetSearchAndImport(acquirer AssetAcquirer) *AssetSearchAndImport {
	return &AssetSearchAndImport{acquirer: acquirer}
}

func (t *AssetSearchAndImport) Name() string { return NameAssetSearchAndImport }

func (t *AssetSearchAndImport) Execute(ctx context.Context, input Input) (*Result, error) {
	prompt := input.String("prompt")
	if prompt == "" {
		return Fail("no prompt provided"), nil
	}

	status := t.acquirer.Status(ctx)
	intent := integrations.ClassifyIntent(prompt, status)
	if intent.Route == integrations.RouteNone {
		return Fail("no asset integration is enabled on the remote host"), nil
	}

	ref, err := t.acquirer.Acquire(ctx, intent)
	if err != nil {
		switch {
		case errors.Is(err, integrations.ErrNoAssetFound):
			return Fail("no matching asset found for %q", prompt), nil
		case errors.Is(err, integrations.ErrCircuitOpen):
			return &Result{Success: false, Error: err.Error(), Retryable: true}, nil
		default:
			return nil, err
		}
	}

	return OK(map[string]any{
		"assetResult": map[string]any{
			"name":      ref.Name,
			"type":      ref.Type,
			"assetType": ref.AssetType,
		},
	}), nil
}
