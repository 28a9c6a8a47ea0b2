// Package integrations exposes the three asset-acquisition adapters
// (generator, marketplace, library) behind one shape, each guarded by a
// circuit breaker, plus the intent classifier that routes a prompt to one
// of them.
package integrations

import (
	"context"
	"encoding/json"
)

// Commander is the slice of the bridge client the adapters need. The
// remote host performs the actual external API traffic; adapters drive it
// through commands.
type Commander interface {
	Send(ctx context.Context, commandType string, params map[string]any) (json.RawMessage, error)
}

// AssetType is the library asset category understood by the remote host.
type AssetType string

const (
	AssetTypeModels   AssetType = "models"
	AssetTypeTextures AssetType = "textures"
	AssetTypeHDRIs    AssetType = "hdris"
)

// Route names the adapter an intent resolves to.
type Route string

const (
	RouteGenerator   Route = "generator"
	RouteMarketplace Route = "marketplace"
	RouteLibrary     Route = "library"
	RouteNone        Route = "none"
)

// AssetRef describes an asset that is now present in the scene.
type AssetRef struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	AssetType string `json:"assetType,omitempty"`
}

// Status reports which integrations the remote host has enabled.
type Status struct {
	Generator   bool `json:"generator"`
	Marketplace bool `json:"marketplace"`
	Library     bool `json:"library"`
}

// Intent is the classifier's verdict for a prompt.
type Intent struct {
	Route     Route
	AssetType AssetType
	Query     string
}
