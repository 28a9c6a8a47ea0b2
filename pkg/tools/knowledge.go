package tools

import "context"

const knowledgeSearchLimit = 5

// SearchKnowledgeBase retrieves documentation chunks relevant to a query.
type SearchKnowledgeBase struct {
	searcher KnowledgeSearcher
}

// NewSearchKnowledgeBase creates the search_knowledge_base tool.
func NewSearchKnowledgeBase(searcher KnowledgeSearcher) *SearchKnowledgeBase {
	return &SearchKnowledgeBase{searcher: searcher}
}

func (t *SearchKnowledgeBase) Name() string { return NameSearchKnowledgeBase }

func (t *SearchKnowledgeBase) Execute(ctx context.Context, input Input) (*Result, error) {
	query := input.String("query")
	if query == "" {
		return Fail("no query provided"), nil
	}

	results := t.searcher.Search(ctx, query, knowledgeSearchLimit)

	documents := make([]string, 0, len(results))
	detailed := make([]map[string]any, 0, len(results))
	for _, r := range results {
		documents = append(documents, r.Content)
		detailed = append(detailed, map[string]any{
			"content":    r.Content,
			"similarity": r.Similarity,
		})
	}

	return OK(map[string]any{
		"documents":       documents,
		"detailedResults": detailed,
		"count":           len(results),
	}), nil
}
