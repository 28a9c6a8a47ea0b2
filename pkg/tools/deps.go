package tools

import (
	"context"

	"github.com/scenecraft/scenecraft/pkg/integrations"
	"github.com/scenecraft/scenecraft/pkg/knowledge"
	"github.com/scenecraft/scenecraft/pkg/llm"
	"github.com/scenecraft/scenecraft/pkg/planner"
)

// KnowledgeSearcher is the slice of the knowledge store the catalog uses.
type KnowledgeSearcher interface {
	Search(ctx context.Context, query string, limit int) []knowledge.SearchResult
}

// AssetAcquirer is the slice of the integration registry the catalog uses.
type AssetAcquirer interface {
	Status(ctx context.Context) integrations.Status
	Acquire(ctx context.Context, intent integrations.Intent) (*integrations.AssetRef, error)
}

// VisionCompleter is the gateway client; vision tools attach image parts.
type VisionCompleter = llm.Client

// PlanProvider produces plans for decompose_task.
type PlanProvider interface {
	Plan(ctx context.Context, userRequest string, attachments []llm.ImagePart) *planner.Plan
}
