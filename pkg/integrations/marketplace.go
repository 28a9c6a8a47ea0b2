package integrations

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/scenecraft/scenecraft/pkg/bridge"
)

const marketplaceSearchCount = 20

// MarketplaceAdapter finds ready-made models on the marketplace the
// remote host is linked to, downloads the top downloadable hit and
// imports it.
type MarketplaceAdapter struct {
	commander Commander
}

// NewMarketplaceAdapter creates a marketplace adapter over the bridge.
func NewMarketplaceAdapter(commander Commander) *MarketplaceAdapter {
	return &MarketplaceAdapter{commander: commander}
}

type marketplaceSearchResponse struct {
	Results []struct {
		UID            string `json:"uid"`
		Name           string `json:"name"`
		IsDownloadable bool   `json:"isDownloadable"`
	} `json:"results"`
	Error string `json:"error"`
}

// SearchAndImport searches the marketplace and imports the first
// downloadable result.
func (a *MarketplaceAdapter) SearchAndImport(ctx context.Context, query string) (*AssetRef, error) {
	raw, err := a.commander.Send(ctx, bridge.CmdSearchSketchfabModels, map[string]any{
		"query":        query,
		"count":        marketplaceSearchCount,
		"downloadable": true,
	})
	if err != nil {
		return nil, fmt.Errorf("marketplace search failed: %w", err)
	}

	var search marketplaceSearchResponse
	if err := json.Unmarshal(raw, &search); err != nil {
		return nil, fmt.Errorf("failed to parse marketplace search response: %w", err)
	}
	if search.Error != "" {
		return nil, fmt.Errorf("marketplace search failed: %s", search.Error)
	}

	for _, hit := range search.Results {
		if !hit.IsDownloadable {
			continue
		}
		downloaded, err := a.commander.Send(ctx, bridge.CmdDownloadSketchfabModel, map[string]any{
			"uid": hit.UID,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrImportFailed, err)
		}

		var dl struct {
			Success         bool     `json:"success"`
			ImportedObjects []string `json:"imported_objects"`
			Error           string   `json:"error"`
		}
		if err := json.Unmarshal(downloaded, &dl); err == nil {
			if dl.Error != "" || (!dl.Success && len(dl.ImportedObjects) == 0) {
				return nil, fmt.Errorf("%w: %s", ErrImportFailed, dl.Error)
			}
		}

		name := hit.Name
		if name == "" {
			name = hit.UID
		}
		return &AssetRef{Name: name, Type: "marketplace"}, nil
	}

	return nil, ErrNoAssetFound
}
