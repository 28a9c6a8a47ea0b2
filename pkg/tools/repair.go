package tools

import "strings"

// repairRules map known remote error substrings to guard snippets
// prepended before the next attempt.
var repairRules = []struct {
	substring string
	guard     string
}{
	{
		substring: "name 'bpy' is not defined",
		guard:     "import bpy",
	},
	{
		substring: "context is incorrect",
		guard: "bpy.context.view_layer.update()\n" +
			"if bpy.context.active_object is None and bpy.context.scene.objects:\n" +
			"    bpy.context.view_layer.objects.active = bpy.context.scene.objects[0]",
	},
	{
		substring: "expected an object in edit mode",
		guard:     "bpy.ops.object.mode_set(mode='EDIT')",
	},
	{
		substring: "object mode",
		guard:     "bpy.ops.object.mode_set(mode='OBJECT')",
	},
	{
		substring: "nothing selected",
		guard:     "bpy.ops.object.select_all(action='SELECT')",
	},
	{
		substring: "no objects selected",
		guard:     "bpy.ops.object.select_all(action='SELECT')",
	},
}

// repairSnippet returns the guard for a remote error message, if the
// failure mode is recognized.
func repairSnippet(errMsg string) (string, bool) {
	lowered := strings.ToLower(errMsg)
	for _, rule := range repairRules {
		if strings.Contains(lowered, rule.substring) {
			return rule.guard, true
		}
	}
	return "", false
}
