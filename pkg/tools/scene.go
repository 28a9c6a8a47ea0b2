package tools

import (
	"context"

	"github.com/scenecraft/scenecraft/pkg/bridge"
)

// GetSceneInfo fetches the current scene description in one command.
type GetSceneInfo struct {
	commander Commander
}

// NewGetSceneInfo creates the get_scene_info tool.
func NewGetSceneInfo(commander Commander) *GetSceneInfo {
	return &GetSceneInfo{commander: commander}
}

func (t *GetSceneInfo) Name() string { return NameGetSceneInfo }

func (t *GetSceneInfo) Execute(ctx context.Context, _ Input) (*Result, error) {
	raw, err := t.commander.Send(ctx, bridge.CmdGetSceneInfo, nil)
	if err != nil {
		return nil, err
	}
	return OK(map[string]any{"sceneContext": rawToAny(raw)}), nil
}
