package planner

import "strings"

// infoPhrases mark requests that only ask about the scene.
var infoPhrases = []string{
	"status", "what is in the scene", "what's in the scene", "scene info",
	"describe the scene", "list the objects", "what objects",
}

// namedAssets are concrete things worth an asset search before falling
// back to code. The template emitted for each is a minimal primitive
// approximation. Order matters: the first match wins.
var namedAssets = []struct {
	name string
	code string
}{
	{"cube", "bpy.ops.mesh.primitive_cube_add(size=2, location=(0, 0, 1))"},
	{"sphere", "bpy.ops.mesh.primitive_uv_sphere_add(radius=1, location=(0, 0, 1))"},
	{"plane", "bpy.ops.mesh.primitive_plane_add(size=4, location=(0, 0, 0))"},
	{"cylinder", "bpy.ops.mesh.primitive_cylinder_add(radius=1, depth=2, location=(0, 0, 1))"},
	{"cone", "bpy.ops.mesh.primitive_cone_add(radius1=1, depth=2, location=(0, 0, 1))"},
	{"monkey", "bpy.ops.mesh.primitive_monkey_add(size=2, location=(0, 0, 1))"},
	{"dragon", "bpy.ops.mesh.primitive_monkey_add(size=2, location=(0, 0, 1))\nbpy.context.active_object.name = 'Dragon'"},
	{"chair", "bpy.ops.mesh.primitive_cube_add(size=1, location=(0, 0, 0.5))\nbpy.context.active_object.name = 'Chair'"},
	{"table", "bpy.ops.mesh.primitive_cube_add(size=1, location=(0, 0, 0.5))\nbpy.context.active_object.name = 'Table'"},
	{"tree", "bpy.ops.mesh.primitive_cone_add(radius1=1, depth=3, location=(0, 0, 1.5))\nbpy.context.active_object.name = 'Tree'"},
}

const defaultCodeTemplate = "bpy.ops.mesh.primitive_cube_add(size=2, location=(0, 0, 1))"

// FallbackPlan is the deterministic planner: a small ruleset matched
// against the lowered request.
func FallbackPlan(userRequest string, hasImage bool) *Plan {
	lowered := strings.ToLower(userRequest)

	if containsAnyPhrase(lowered, infoPhrases) {
		return &Plan{
			Goal: userRequest,
			Subtasks: []Subtask{
				{
					ID:          "t1",
					Description: "Inspect the current scene",
					Tool:        "get_scene_info",
				},
				{
					ID:          "t2",
					Description: "Report the scene contents",
					Tool:        ToolFinishTask,
					DependsOn:   []string{"t1"},
				},
			},
		}
	}

	if hasImage {
		return &Plan{
			Goal: userRequest,
			Subtasks: []Subtask{
				{
					ID:          "t1",
					Description: "Analyze the attached image",
					Tool:        "analyze_image",
				},
				{
					ID:          "t2",
					Description: "Import an asset matching the request",
					Tool:        "asset_search_and_import",
					Input:       map[string]any{"prompt": userRequest},
					DependsOn:   []string{"t1"},
				},
				{
					ID:          "t3",
					Description: "If asset import failed, build the object with Python code",
					Tool:        "execute_blender_code",
					Input:       map[string]any{"code": codeTemplateFor(lowered)},
					DependsOn:   []string{"t2"},
				},
				{
					ID:          "t4",
					Description: "Summarize the result",
					Tool:        ToolFinishTask,
					Input:       map[string]any{"finalAnswer": "Request handled from the attached image."},
					DependsOn:   []string{"t2", "t3"},
				},
			},
		}
	}

	return &Plan{
		Goal: userRequest,
		Subtasks: []Subtask{
			{
				ID:          "t1",
				Description: "Import an asset matching the request",
				Tool:        "asset_search_and_import",
				Input:       map[string]any{"prompt": userRequest},
			},
			{
				ID:          "t2",
				Description: "If asset import failed, build the object with Python code",
				Tool:        "execute_blender_code",
				Input:       map[string]any{"code": codeTemplateFor(lowered)},
				DependsOn:   []string{"t1"},
			},
			{
				ID:          "t3",
				Description: "Summarize the result",
				Tool:        ToolFinishTask,
				Input:       map[string]any{"finalAnswer": "Request handled."},
				DependsOn:   []string{"t1", "t2"},
			},
		},
	}
}

// RecoveryPlan is the minimal three-step fallback used when re-planning
// itself fails: gather context, try code synthesis, finish.
func RecoveryPlan(userRequest string) *Plan {
	return &Plan{
		Goal: userRequest,
		Subtasks: []Subtask{
			{
				ID:          "r1",
				Description: "Search the knowledge base for relevant techniques",
				Tool:        "search_knowledge_base",
				Input:       map[string]any{"query": userRequest},
			},
			{
				ID:          "r2",
				Description: "Build the requested result with Python code",
				Tool:        "execute_blender_code",
				Input:       map[string]any{"code": codeTemplateFor(strings.ToLower(userRequest))},
				DependsOn:   []string{"r1"},
			},
			{
				ID:          "r3",
				Description: "Summarize the result",
				Tool:        ToolFinishTask,
				Input:       map[string]any{"finalAnswer": "Recovered with a code-based approach."},
				DependsOn:   []string{"r2"},
			},
		},
	}
}

func codeTemplateFor(lowered string) string {
	for _, asset := range namedAssets {
		if strings.Contains(lowered, asset.name) {
			return asset.code
		}
	}
	return defaultCodeTemplate
}

func containsAnyPhrase(s string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
