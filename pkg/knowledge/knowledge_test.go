package knowledge

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashingEmbedderDeterministic(t *testing.T) {
	e := NewHashingEmbedder(64)

	a, err := e.Embed(context.Background(), "extrude the top face of the cube")
	require.NoError(t, err)
	b, err := e.Embed(context.Background(), "extrude the top face of the cube")
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
}

func TestHashingEmbedderUnitNorm(t *testing.T) {
	e := NewHashingEmbedder(32)

	vec, err := e.Embed(context.Background(), "add a subdivision surface modifier")
	require.NoError(t, err)

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-5)
}

func TestHashingEmbedderEmptyText(t *testing.T) {
	e := NewHashingEmbedder(16)

	vec, err := e.Embed(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, vec, 16)

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-5, "empty text still yields a unit vector")
}

func TestFilterResultsAppliesSimilarityFloor(t *testing.T) {
	candidates := []SearchResult{
		{Content: "bpy.ops.mesh.primitive_cube_add()", Similarity: 0.9},
		{Content: "bpy.ops.object.modifier_add(type='SUBSURF')", Similarity: 0.5},
		{Content: "unrelated lighting note", Similarity: 0.3},
		{Content: "totally unrelated", Similarity: 0.1},
	}

	got := FilterResults(candidates, 10)

	require.Len(t, got, 2, "results at or below the floor are dropped")
	assert.Equal(t, 0.9, got[0].Similarity)
	assert.Equal(t, 0.5, got[1].Similarity)
}

func TestFilterResultsPreservesOrdering(t *testing.T) {
	candidates := []SearchResult{
		{Content: "first", Similarity: 0.95},
		{Content: "second", Similarity: 0.80},
		{Content: "third", Similarity: 0.65},
	}

	got := FilterResults(candidates, 3)

	require.Len(t, got, 3)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Similarity, got[i].Similarity)
	}
}

func TestFilterResultsDropsNearDuplicates(t *testing.T) {
	base := "Use bpy.ops.mesh.loopcut_slide with number_cuts to add loop cuts to the selected edge ring"
	nearDup := strings.Replace(base, "selected", "chosen  ", 1)

	candidates := []SearchResult{
		{Content: base, Similarity: 0.92},
		{Content: nearDup, Similarity: 0.88},
		{Content: "Apply a bevel modifier before the subdivision surface", Similarity: 0.70},
	}

	got := FilterResults(candidates, 10)

	require.Len(t, got, 2)
	assert.Equal(t, base, got[0].Content, "higher-ranked duplicate survives")
	assert.Equal(t, 0.70, got[1].Similarity)
}

func TestFilterResultsKeepsDistinctContent(t *testing.T) {
	candidates := []SearchResult{
		{Content: "Cube primitives are added at the 3D cursor", Similarity: 0.9},
		{Content: "Lights require an energy value in watts", Similarity: 0.8},
	}

	got := FilterResults(candidates, 10)
	assert.Len(t, got, 2)
}

func TestFilterResultsRespectsLimit(t *testing.T) {
	candidates := []SearchResult{
		{Content: "alpha content about meshes", Similarity: 0.9},
		{Content: "beta content about materials", Similarity: 0.8},
		{Content: "gamma content about cameras", Similarity: 0.7},
	}

	got := FilterResults(candidates, 2)

	require.Len(t, got, 2)
	assert.Equal(t, "alpha content about meshes", got[0].Content)
	assert.Equal(t, "beta content about materials", got[1].Content)
}

func TestFilterResultsEmptyInput(t *testing.T) {
	assert.Empty(t, FilterResults(nil, 5))
}
