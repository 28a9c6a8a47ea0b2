package integrations

import "strings"

// Keyword groups for routing. Generation wins for prompts asking for
// something unique or organic; the marketplace for branded or specific
// real-world models; the library for textures, environments and stock
// furniture.
var (
	generatorKeywords = []string{
		"unique", "custom", "generate", "generated", "realistic creature",
		"creature", "sculpture", "organic", "fantasy", "monster", "alien",
		"one of a kind", "original design",
	}
	marketplaceKeywords = []string{
		"sketchfab", "marketplace", "branded", "brand", "ferrari", "lamborghini",
		"iphone", "specific model", "real model", "exact model", "licensed",
	}
	libraryKeywords = []string{
		"texture", "material", "hdri", "environment", "sky", "lighting",
		"wood", "metal", "brick", "fabric", "stone", "concrete", "marble",
		"furniture", "chair", "table", "sofa", "plant", "rock",
	}
	hdriKeywords    = []string{"hdri", "environment", "sky", "lighting", "sunset", "studio light"}
	textureKeywords = []string{"texture", "material", "wood", "metal", "brick", "fabric", "stone", "concrete", "marble"}
)

// ClassifyIntent routes a prompt to an adapter given what the remote host
// has enabled. Library matches are further subdivided by asset type.
// Routing prefers the most specific match: library keywords are concrete
// nouns, so they win over the broader generator vocabulary; the
// marketplace wins for branded requests.
func ClassifyIntent(prompt string, status Status) Intent {
	lowered := strings.ToLower(prompt)

	if status.Library && containsAny(lowered, libraryKeywords) {
		return Intent{
			Route:     RouteLibrary,
			AssetType: libraryAssetType(lowered),
			Query:     prompt,
		}
	}
	if status.Marketplace && containsAny(lowered, marketplaceKeywords) {
		return Intent{Route: RouteMarketplace, Query: prompt}
	}
	if status.Generator && containsAny(lowered, generatorKeywords) {
		return Intent{Route: RouteGenerator, Query: prompt}
	}

	// No keyword hit: fall back to whatever can produce a model.
	switch {
	case status.Marketplace:
		return Intent{Route: RouteMarketplace, Query: prompt}
	case status.Generator:
		return Intent{Route: RouteGenerator, Query: prompt}
	case status.Library:
		return Intent{Route: RouteLibrary, AssetType: AssetTypeModels, Query: prompt}
	}
	return Intent{Route: RouteNone, Query: prompt}
}

func libraryAssetType(lowered string) AssetType {
	if containsAny(lowered, hdriKeywords) {
		return AssetTypeHDRIs
	}
	if containsAny(lowered, textureKeywords) {
		return AssetTypeTextures
	}
	return AssetTypeModels
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
