package tools

import (
	"context"
	"fmt"
	"strings"
)

const defaultAnimationFrames = 60

// Keyframe script templates. Each receives (object resolution, frame
// count) and animates the active or named object deterministically.
var animationTemplates = map[string]string{
	"hop": `%s
frames = %d
hops = max(1, frames // 20)
for i in range(hops + 1):
    f = 1 + i * (frames // max(1, hops))
    obj.location.z = 0 if i %% 2 == 0 else 2
    obj.keyframe_insert(data_path="location", frame=f)
`,
	"walk": `%s
frames = %d
obj.keyframe_insert(data_path="location", frame=1)
obj.location.x += frames * 0.05
obj.keyframe_insert(data_path="location", frame=frames)
`,
	"rotate": `%s
import math
frames = %d
obj.rotation_euler.z = 0
obj.keyframe_insert(data_path="rotation_euler", frame=1)
obj.rotation_euler.z = 2 * math.pi
obj.keyframe_insert(data_path="rotation_euler", frame=frames)
`,
	"bounce": `%s
frames = %d
base_z = obj.location.z
for i, f in enumerate(range(1, frames + 1, max(1, frames // 6))):
    obj.location.z = base_z if i %% 2 == 0 else base_z + 1.5
    obj.keyframe_insert(data_path="location", frame=f)
`,
}

const resolveActiveObject = `obj = bpy.context.active_object
if obj is None:
    raise RuntimeError("no active object to animate")`

const resolveNamedObjectFmt = `obj = bpy.data.objects.get(%q)
if obj is None:
    raise RuntimeError("object %s not found")`

// CreateAnimation emits a deterministic keyframe script from the template
// library and executes it on the remote host.
type CreateAnimation struct {
	executor *ExecuteCode
}

// NewCreateAnimation creates the create_animation tool.
func NewCreateAnimation(commander Commander) *CreateAnimation {
	return &CreateAnimation{executor: NewExecuteCode(commander)}
}

func (t *CreateAnimation) Name() string { return NameCreateAnimation }

func (t *CreateAnimation) Execute(ctx context.Context, input Input) (*Result, error) {
	animationType := strings.ToLower(input.String("animationType"))
	template, ok := animationTemplates[animationType]
	if !ok {
		return Fail("unknown animation type %q (want hop, walk, rotate or bounce)", animationType), nil
	}

	frames := input.Int("duration", defaultAnimationFrames)
	if frames < 2 {
		frames = 2
	}

	resolve := resolveActiveObject
	if target := input.String("targetObject"); target != "" {
		resolve = fmt.Sprintf(resolveNamedObjectFmt, target, target)
	}

	code := fmt.Sprintf(template, resolve, frames)
	result, err := t.executor.Execute(ctx, Input{"code": code})
	if err != nil {
		return nil, err
	}
	if !result.Success {
		return result, nil
	}

	return OK(map[string]any{
		"animation": map[string]any{
			"type":   animationType,
			"frames": frames,
		},
	}), nil
}
