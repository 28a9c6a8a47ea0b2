package integrations

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/scenecraft/scenecraft/pkg/bridge"
)

// Resolution and file-format defaults per asset category. Textures are
// cheap at 1k; HDRIs need the radiance format to light a scene.
const (
	textureResolution = "1k"
	textureFormat     = "jpg"
	hdriResolution    = "1k"
	hdriFormat        = "hdr"
)

// libraryStopwords are instruction words stripped from the prompt before
// it becomes a category search term.
var libraryStopwords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "some": {},
	"add": {}, "get": {}, "find": {}, "download": {}, "import": {},
	"apply": {}, "use": {}, "give": {}, "me": {}, "please": {}, "with": {},
	"texture": {}, "textures": {}, "material": {}, "materials": {},
	"hdri": {}, "hdris": {}, "environment": {}, "model": {}, "asset": {},
}

// LibraryAdapter pulls assets from the free asset library the remote
// host is linked to, searching by stripped-down category terms.
type LibraryAdapter struct {
	commander Commander
}

// NewLibraryAdapter creates a library adapter over the bridge.
func NewLibraryAdapter(commander Commander) *LibraryAdapter {
	return &LibraryAdapter{commander: commander}
}

type librarySearchResponse struct {
	Assets map[string]struct {
		Name string `json:"name"`
	} `json:"assets"`
	Error string `json:"error"`
}

// SearchAndImport searches the library for the given asset type and
// imports the first hit with category defaults applied.
func (a *LibraryAdapter) SearchAndImport(ctx context.Context, query string, assetType AssetType) (*AssetRef, error) {
	if assetType == "" {
		assetType = AssetTypeModels
	}
	category := CategoryTerm(query)

	raw, err := a.commander.Send(ctx, bridge.CmdSearchPolyhavenAssets, map[string]any{
		"asset_type": string(assetType),
		"categories": category,
	})
	if err != nil {
		return nil, fmt.Errorf("library search failed: %w", err)
	}

	var search librarySearchResponse
	if err := json.Unmarshal(raw, &search); err != nil {
		return nil, fmt.Errorf("failed to parse library search response: %w", err)
	}
	if search.Error != "" {
		return nil, fmt.Errorf("library search failed: %s", search.Error)
	}
	if len(search.Assets) == 0 {
		return nil, ErrNoAssetFound
	}

	assetID, name := firstAsset(search)

	params := map[string]any{
		"asset_id":   assetID,
		"asset_type": string(assetType),
	}
	switch assetType {
	case AssetTypeTextures:
		params["resolution"] = textureResolution
		params["file_format"] = textureFormat
	case AssetTypeHDRIs:
		params["resolution"] = hdriResolution
		params["file_format"] = hdriFormat
	}

	downloaded, err := a.commander.Send(ctx, bridge.CmdDownloadPolyhavenAsset, params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImportFailed, err)
	}

	var dl struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(downloaded, &dl); err == nil {
		if dl.Error != "" || !dl.Success {
			return nil, fmt.Errorf("%w: %s", ErrImportFailed, dl.Error)
		}
	}

	if name == "" {
		name = assetID
	}
	return &AssetRef{Name: name, Type: "library", AssetType: string(assetType)}, nil
}

// firstAsset picks a deterministic first entry: lexicographically
// smallest id, since map iteration order is random.
func firstAsset(search librarySearchResponse) (id, name string) {
	for candidate, meta := range search.Assets {
		if id == "" || candidate < id {
			id = candidate
			name = meta.Name
		}
	}
	return id, name
}

// CategoryTerm reduces a prompt to the keyword(s) worth searching the
// library for, stripping instruction words and category nouns.
func CategoryTerm(query string) string {
	var kept []string
	for _, field := range strings.Fields(strings.ToLower(query)) {
		word := strings.Trim(field, ".,!?\"'")
		if _, stop := libraryStopwords[word]; stop || word == "" {
			continue
		}
		kept = append(kept, word)
	}
	if len(kept) == 0 {
		return strings.TrimSpace(strings.ToLower(query))
	}
	return strings.Join(kept, " ")
}
