package knowledge

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"
)

const (
	// similarityFloor excludes weak matches from search results.
	similarityFloor = 0.3

	// overfetchFactor widens the SQL limit so duplicate suppression still
	// leaves enough survivors.
	overfetchFactor = 4

	activeTable   = "knowledge"
	parallelTable = "knowledge_new"
)

// Chunk is one ingestible documentation fragment.
type Chunk struct {
	Content   string
	Embedding []float32
}

// SearchResult is one scored hit returned to the caller.
type SearchResult struct {
	Content    string  `json:"content"`
	Similarity float64 `json:"similarity"`
}

// Store is the pgvector-backed knowledge index. Reads prefer the
// parallel table when a dimension migration created one and it has rows;
// otherwise they use the original table.
type Store struct {
	pool     *pgxpool.Pool
	embedder Embedder
	dim      int

	// readTable is resolved by EnsureSchema; guarded there, read-only after.
	readTable  string
	writeTable string
}

// NewStore creates a knowledge store over the given pool and embedder.
// Call EnsureSchema before first use.
func NewStore(pool *pgxpool.Pool, embedder Embedder) *Store {
	return &Store{
		pool:       pool,
		embedder:   embedder,
		dim:        embedder.Dimension(),
		readTable:  activeTable,
		writeTable: activeTable,
	}
}

// EnsureSchema reconciles the stored embedding dimension with the
// embedder's dimension:
//   - matching dimension: nothing to do;
//   - mismatched and empty: alter the column type in place;
//   - mismatched and non-empty: create a parallel table with the correct
//     dimension and an ANN index, keep the old table intact, and prefer
//     the new table on reads once it has rows.
func (s *Store) EnsureSchema(ctx context.Context) error {
	stored, err := s.tableDimension(ctx, activeTable)
	if err != nil {
		return fmt.Errorf("failed to read stored embedding dimension: %w", err)
	}
	if stored == s.dim {
		return nil
	}

	var count int
	if err := s.pool.QueryRow(ctx, fmt.Sprintf("SELECT count(*) FROM %s", activeTable)).Scan(&count); err != nil {
		return fmt.Errorf("failed to count knowledge rows: %w", err)
	}

	if count == 0 {
		slog.Info("Altering empty knowledge table to new embedding dimension",
			"stored_dim", stored, "new_dim", s.dim)
		alter := fmt.Sprintf("ALTER TABLE %s ALTER COLUMN embedding TYPE vector(%d)", activeTable, s.dim)
		if _, err := s.pool.Exec(ctx, alter); err != nil {
			return fmt.Errorf("failed to alter embedding dimension: %w", err)
		}
		return nil
	}

	// Non-empty table: never truncate history. Build a parallel table.
	slog.Warn("Embedding dimension mismatch on non-empty table, creating parallel table",
		"stored_dim", stored, "new_dim", s.dim, "rows", count, "table", parallelTable)
	create := fmt.Sprintf(
		"CREATE TABLE IF NOT EXISTS %s (id BIGSERIAL PRIMARY KEY, content TEXT NOT NULL, embedding vector(%d) NOT NULL)",
		parallelTable, s.dim)
	if _, err := s.pool.Exec(ctx, create); err != nil {
		return fmt.Errorf("failed to create parallel knowledge table: %w", err)
	}
	idx := fmt.Sprintf(
		"CREATE INDEX IF NOT EXISTS %s_embedding_idx ON %s USING ivfflat (embedding vector_cosine_ops) WITH (lists = 100)",
		parallelTable, parallelTable)
	if _, err := s.pool.Exec(ctx, idx); err != nil {
		return fmt.Errorf("failed to index parallel knowledge table: %w", err)
	}

	s.readTable = parallelTable
	s.writeTable = parallelTable
	return nil
}

// Ingest inserts a batch of chunks. Each embedding must match the active
// table's dimension; mismatches fail the whole batch.
func (s *Store) Ingest(ctx context.Context, chunks []Chunk) error {
	for i, chunk := range chunks {
		if len(chunk.Embedding) != s.dim {
			return fmt.Errorf("chunk %d: embedding dimension %d does not match table dimension %d",
				i, len(chunk.Embedding), s.dim)
		}
	}

	for _, chunk := range chunks {
		insert := fmt.Sprintf("INSERT INTO %s (content, embedding) VALUES ($1, $2)", s.writeTable)
		if _, err := s.pool.Exec(ctx, insert, chunk.Content, pgvector.NewVector(chunk.Embedding)); err != nil {
			return fmt.Errorf("failed to insert knowledge chunk: %w", err)
		}
	}
	return nil
}

// IngestText embeds and inserts raw text fragments.
func (s *Store) IngestText(ctx context.Context, texts []string) error {
	chunks := make([]Chunk, 0, len(texts))
	for _, text := range texts {
		vec, err := s.embedder.Embed(ctx, text)
		if err != nil {
			return fmt.Errorf("failed to embed chunk: %w", err)
		}
		chunks = append(chunks, Chunk{Content: text, Embedding: vec})
	}
	return s.Ingest(ctx, chunks)
}

// Search returns up to limit chunks most similar to the query, ordered by
// cosine similarity descending, above the similarity floor, with
// near-duplicates suppressed. A failing search returns an empty slice:
// the agent treats "no context" as a valid outcome.
func (s *Store) Search(ctx context.Context, query string, limit int) []SearchResult {
	if limit <= 0 {
		return nil
	}

	vec, err := s.embedder.Embed(ctx, query)
	if err != nil {
		slog.Warn("Knowledge search: embedding failed", "error", err)
		return nil
	}

	results, err := s.searchTable(ctx, s.readTable, vec, limit)
	if err != nil {
		slog.Warn("Knowledge search failed", "table", s.readTable, "error", err)
		return nil
	}
	if len(results) == 0 && s.readTable == parallelTable {
		// Parallel table still filling up; fall back to the historical
		// table. Its rows have the old dimension, so a failure here is
		// expected and swallowed.
		fallback, err := s.searchTable(ctx, activeTable, vec, limit)
		if err != nil {
			slog.Debug("Knowledge fallback search failed", "error", err)
			return nil
		}
		return fallback
	}
	return results
}

// tableDimension reads the declared vector dimension of the embedding
// column. For vector columns atttypmod carries the dimension directly.
func (s *Store) tableDimension(ctx context.Context, table string) (int, error) {
	var dim int
	err := s.pool.QueryRow(ctx,
		`SELECT atttypmod FROM pg_attribute
		 WHERE attrelid = $1::regclass AND attname = 'embedding'`,
		table).Scan(&dim)
	if err != nil {
		return 0, err
	}
	return dim, nil
}

func (s *Store) searchTable(ctx context.Context, table string, vec []float32, limit int) ([]SearchResult, error) {
	query := fmt.Sprintf(
		"SELECT content, 1 - (embedding <=> $1) AS similarity FROM %s ORDER BY embedding <=> $1 LIMIT $2",
		table)
	rows, err := s.pool.Query(ctx, query, pgvector.NewVector(vec), limit*overfetchFactor)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var candidates []SearchResult
	for rows.Next() {
		var r SearchResult
		if err := rows.Scan(&r.Content, &r.Similarity); err != nil {
			return nil, err
		}
		candidates = append(candidates, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return FilterResults(candidates, limit), nil
}

// FilterResults applies the similarity floor and duplicate suppression to
// candidates already ordered by similarity descending.
func FilterResults(candidates []SearchResult, limit int) []SearchResult {
	filtered := make([]SearchResult, 0, len(candidates))
	for _, c := range candidates {
		if c.Similarity > similarityFloor {
			filtered = append(filtered, c)
		}
	}
	return dedupe(filtered, limit)
}
