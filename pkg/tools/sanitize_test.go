package tools

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeStripsFencesAndLanguageToken(t *testing.T) {
	code := "```python\nbpy.ops.mesh.primitive_cube_add()\n```"
	got := Sanitize(code)

	assert.NotContains(t, got, "```")
	assert.NotContains(t, got, "python\n")
	assert.Contains(t, got, "primitive_cube_add()")
}

func TestSanitizeRemovesDeprecatedParams(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "trailing param",
			in:   "bpy.ops.object.delete(use_global=False)",
			want: "bpy.ops.object.delete()",
		},
		{
			name: "param among others",
			in:   "bpy.ops.transform.translate(value=(1, 0, 0), constraint_axis=(True, False, False))",
			want: "bpy.ops.transform.translate(value=(1, 0, 0))",
		},
		{
			name: "leading param keeps call valid",
			in:   "bpy.ops.object.delete(use_global=False, confirm=True)",
			want: "bpy.ops.object.delete(confirm=True)",
		},
		{
			name: "use_undo removed",
			in:   "bpy.ops.mesh.select_all(action='SELECT', use_undo=True)",
			want: "bpy.ops.mesh.select_all(action='SELECT')",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, Sanitize(tt.in), tt.want)
		})
	}
}

func TestSanitizeRewritesDeleteAll(t *testing.T) {
	got := Sanitize("bpy.ops.object.delete_all()")

	assert.NotContains(t, got, "delete_all")
	assert.Contains(t, got, "select_all(action='SELECT')")
	assert.Contains(t, got, "bpy.ops.object.delete()")
}

func TestSanitizeRewritesLoopCutPreservingCuts(t *testing.T) {
	got := Sanitize("bpy.ops.mesh.loopcut_and_slide(number_cuts=4, smoothness=0.5)")
	assert.Contains(t, got, "bpy.ops.mesh.loopcut(number_cuts=4)")
	assert.NotContains(t, got, "loopcut_and_slide")

	got = Sanitize("bpy.ops.mesh.loop_cut_and_slide()")
	assert.Contains(t, got, "bpy.ops.mesh.loopcut(number_cuts=1)")
}

func TestSanitizeDropsAddonEnables(t *testing.T) {
	code := "addon_utils.enable('node_wrangler')\nbpy.ops.preferences.addon_enable(module='rigify')\nx = 1"
	got := Sanitize(code)

	assert.NotContains(t, got, "addon_utils.enable")
	assert.NotContains(t, got, "addon_enable")
	assert.Contains(t, got, "x = 1")
}

func TestSanitizeNormalizesTextureNodePaths(t *testing.T) {
	got := Sanitize("node.tex_noise.scale = 5\nnode.tex_voronoi.randomness = 1")

	assert.Contains(t, got, "node.scale = 5")
	assert.Contains(t, got, "node.randomness = 1")
}

func TestSanitizePrependsEditModeForMeshOps(t *testing.T) {
	got := Sanitize("bpy.ops.mesh.subdivide()")

	editIdx := strings.Index(got, "mode_set(mode='EDIT')")
	meshIdx := strings.Index(got, "bpy.ops.mesh.subdivide")
	assert.Greater(t, meshIdx, editIdx)
	assert.GreaterOrEqual(t, editIdx, 0)
}

func TestSanitizeNoEditModeWhenAlreadyManaged(t *testing.T) {
	code := "bpy.ops.object.mode_set(mode='EDIT')\nbpy.ops.mesh.subdivide()"
	got := Sanitize(code)

	assert.Equal(t, 1, strings.Count(got, "mode_set(mode='EDIT')"))
}

func TestSanitizeEnsuresSingleImport(t *testing.T) {
	code := "import bpy\nimport bpy\nbpy.ops.object.select_all(action='SELECT')"
	got := Sanitize(code)

	assert.Equal(t, 1, strings.Count(got, "import bpy"))
	assert.True(t, strings.HasPrefix(got, "import bpy\n"))
}

func TestSanitizeAddsMissingImport(t *testing.T) {
	got := Sanitize("bpy.ops.object.select_all(action='SELECT')")
	assert.True(t, strings.HasPrefix(got, "import bpy\n"))
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"```python\nbpy.ops.mesh.loopcut_and_slide(number_cuts=3)\n```",
		"bpy.ops.object.delete(use_global=False)",
		"bpy.ops.mesh.subdivide()",
		"import bpy\nnode.tex_noise.scale = 2",
	}
	for _, in := range inputs {
		once := Sanitize(in)
		assert.Equal(t, once, Sanitize(once))
	}
}

func TestRepairSnippet(t *testing.T) {
	tests := []struct {
		errMsg    string
		wantGuard string
		wantOK    bool
	}{
		{"NameError: name 'bpy' is not defined", "import bpy", true},
		{"RuntimeError: Operator bpy.ops.mesh.subdivide.poll() Context is incorrect", "view_layer.update()", true},
		{"RuntimeError: Expected an object in Edit Mode", "mode_set(mode='EDIT')", true},
		{"RuntimeError: nothing selected", "select_all(action='SELECT')", true},
		{"SyntaxError: invalid syntax", "", false},
	}

	for _, tt := range tests {
		guard, ok := repairSnippet(tt.errMsg)
		assert.Equal(t, tt.wantOK, ok, tt.errMsg)
		if tt.wantOK {
			assert.Contains(t, guard, tt.wantGuard)
		}
	}
}
