package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/scenecraft/scenecraft/pkg/bridge"
	"github.com/scenecraft/scenecraft/pkg/llm"
)

const analyzePrompt = `Describe the attached image(s) for a 3D artist recreating the
content in Blender: list the main objects, their approximate shapes, materials,
colors, spatial arrangement and lighting. Be concrete and brief.`

const validatePromptFmt = `You are evaluating a Blender viewport screenshot against an
expected outcome.

Expected outcome: %s

Return JSON only, no prose, with this exact shape:
{"matches": bool, "confidence": 0.0-1.0, "quality_score": 0-10,
 "issues": ["..."], "suggestions": ["..."], "pass": bool}
"pass" is true when the scene substantially achieves the expected outcome.`

// AnalyzeImage describes attached images via the vision model, degrading
// to a templated description when the model is unavailable.
type AnalyzeImage struct {
	llm VisionCompleter
}

// NewAnalyzeImage creates the analyze_image tool.
func NewAnalyzeImage(client VisionCompleter) *AnalyzeImage {
	return &AnalyzeImage{llm: client}
}

func (t *AnalyzeImage) Name() string { return NameAnalyzeImage }

func (t *AnalyzeImage) Execute(ctx context.Context, input Input) (*Result, error) {
	attachments, _ := input["attachments"].([]llm.ImagePart)
	if len(attachments) == 0 {
		return Fail("no attachments provided"), nil
	}

	analysis, err := t.llm.Complete(ctx, llm.Request{
		Messages: []llm.Message{{
			Role:    llm.RoleUser,
			Content: analyzePrompt,
			Images:  attachments,
		}},
	})
	if err != nil {
		slog.Warn("Image analysis failed, using templated description", "error", err)
		analysis = fmt.Sprintf(
			"The user attached %d image(s). Treat the request text as the primary description of what to build.",
			len(attachments))
	}

	return OK(map[string]any{
		"analysis":   analysis,
		"imageCount": len(attachments),
	}), nil
}

// Verdict is the structured output of validate_with_vision.
type Verdict struct {
	Matches      bool     `json:"matches"`
	Confidence   float64  `json:"confidence"`
	QualityScore float64  `json:"quality_score"`
	Issues       []string `json:"issues"`
	Suggestions  []string `json:"suggestions"`
	Pass         bool     `json:"pass"`
}

// ValidateWithVision screenshots the viewport and asks the vision model
// for a strict JSON verdict against the expected outcome.
type ValidateWithVision struct {
	commander Commander
	llm       VisionCompleter
}

// NewValidateWithVision creates the validate_with_vision tool.
func NewValidateWithVision(commander Commander, client VisionCompleter) *ValidateWithVision {
	return &ValidateWithVision{commander: commander, llm: client}
}

func (t *ValidateWithVision) Name() string { return NameValidateWithVision }

func (t *ValidateWithVision) Execute(ctx context.Context, input Input) (*Result, error) {
	expected := input.String("expectedOutcome")
	if expected == "" {
		return Fail("no expectedOutcome provided"), nil
	}

	raw, err := t.commander.Send(ctx, bridge.CmdGetViewportScreenshot, nil)
	if err != nil {
		return nil, err
	}
	var shot struct {
		ImageBase64 string `json:"image_base64"`
		MediaType   string `json:"media_type"`
	}
	if err := json.Unmarshal(raw, &shot); err != nil || shot.ImageBase64 == "" {
		return Fail("viewport screenshot unavailable"), nil
	}
	if shot.MediaType == "" {
		shot.MediaType = "image/png"
	}

	reply, err := t.llm.Complete(ctx, llm.Request{
		Messages: []llm.Message{{
			Role:    llm.RoleUser,
			Content: fmt.Sprintf(validatePromptFmt, expected),
			Images:  []llm.ImagePart{{MediaType: shot.MediaType, Data: shot.ImageBase64}},
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("vision validation failed: %w", err)
	}

	var verdict Verdict
	if err := json.Unmarshal([]byte(llm.StripFences(reply)), &verdict); err != nil {
		return Fail("vision verdict was not valid JSON: %v", err), nil
	}

	return OK(map[string]any{"validation": verdict}), nil
}
