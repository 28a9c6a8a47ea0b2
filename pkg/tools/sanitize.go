package tools

import (
	"regexp"
	"strings"

	"github.com/scenecraft/scenecraft/pkg/llm"
)

// Parameters removed from generated scripts: the target runtime dropped
// them and passing them raises TypeError. The names are opaque strings.
var deprecatedParams = []string{"use_undo", "use_global", "constraint_axis"}

var (
	deprecatedParamRe = func() []*regexp.Regexp {
		res := make([]*regexp.Regexp, 0, len(deprecatedParams))
		for _, p := range deprecatedParams {
			// Matches the keyword argument with its value, including an
			// optional leading comma: ", use_undo=False".
			res = append(res, regexp.MustCompile(`(?:,\s*)?`+p+`\s*=\s*(?:\([^)]*\)|\[[^\]]*\]|[^,)]+)`))
		}
		return res
	}()

	deleteAllRe   = regexp.MustCompile(`bpy\.ops\.object\.delete_all\s*\(\s*\)`)
	loopCutRe     = regexp.MustCompile(`bpy\.ops\.mesh\.loop_?cut_and_slide\s*\(([^)]*)\)`)
	numberCutsRe  = regexp.MustCompile(`number_cuts\s*=\s*(\d+)`)
	addonEnableRe = regexp.MustCompile(`(?m)^.*(?:addon_utils\.enable|bpy\.ops\.preferences\.addon_enable)\(.*\)\s*$\n?`)
	importBpyRe   = regexp.MustCompile(`(?m)^\s*import\s+bpy\s*$\n?`)
	// Removing a leading keyword argument can orphan the following comma.
	orphanCommaRe = regexp.MustCompile(`\(\s*,\s*`)
)

// Texture node access paths whose nested accessors were flattened. Only
// these two node types are rewritten.
var textureNodePaths = [][2]string{
	{".tex_noise.", "."},
	{".tex_voronoi.", "."},
}

const deleteAllReplacement = "bpy.ops.object.select_all(action='SELECT')\nbpy.ops.object.delete()"

// Sanitize normalizes a generated script before execution. The
// substitution table is fixed and the function is idempotent:
// Sanitize(Sanitize(code)) == Sanitize(code).
func Sanitize(code string) string {
	code = llm.StripFences(code)
	code = strings.TrimPrefix(code, "python\n")

	for _, re := range deprecatedParamRe {
		code = re.ReplaceAllString(code, "")
	}
	code = orphanCommaRe.ReplaceAllString(code, "(")

	code = deleteAllRe.ReplaceAllString(code, deleteAllReplacement)

	code = loopCutRe.ReplaceAllStringFunc(code, func(call string) string {
		cuts := "1"
		if m := numberCutsRe.FindStringSubmatch(call); m != nil {
			cuts = m[1]
		}
		return "bpy.ops.mesh.loopcut(number_cuts=" + cuts + ")"
	})

	code = addonEnableRe.ReplaceAllString(code, "")

	for _, pair := range textureNodePaths {
		code = strings.ReplaceAll(code, pair[0], pair[1])
	}

	// Mesh operators require edit mode; prepend the switch unless the
	// script already manages its mode.
	if strings.Contains(code, "bpy.ops.mesh.") && !strings.Contains(code, "mode_set(mode='EDIT')") {
		code = "bpy.ops.object.mode_set(mode='EDIT')\n" + code
	}

	// Exactly one top-level import, always first.
	code = importBpyRe.ReplaceAllString(code, "")
	code = "import bpy\n" + strings.TrimLeft(code, "\n")

	return code
}
