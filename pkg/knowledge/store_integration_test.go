package knowledge

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	pgxvector "github.com/pgvector/pgvector-go/pgx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// newTestStore spins up a pgvector-enabled PostgreSQL testcontainer and
// returns a store over it with the given embedding dimension.
func newTestStore(t *testing.T, dim int) (*Store, *pgxpool.Pool) {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"pgvector/pgvector:pg16",
		postgres.WithDatabase("test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(pgContainer); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	poolCfg, err := pgxpool.ParseConfig(connStr)
	require.NoError(t, err)
	poolCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		return pgxvector.RegisterTypes(ctx, conn)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, "CREATE EXTENSION IF NOT EXISTS vector")
	require.NoError(t, err)
	_, err = pool.Exec(ctx,
		"CREATE TABLE knowledge (id BIGSERIAL PRIMARY KEY, content TEXT NOT NULL, embedding vector(4) NOT NULL)")
	require.NoError(t, err)

	return NewStore(pool, NewHashingEmbedder(dim)), pool
}

func TestStoreIngestAndSearch(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	store, _ := newTestStore(t, 4)
	ctx := context.Background()
	require.NoError(t, store.EnsureSchema(ctx))

	err := store.Ingest(ctx, []Chunk{
		{Content: "cube primitives spawn at the cursor", Embedding: []float32{1, 0, 0, 0}},
		{Content: "lights need an energy value", Embedding: []float32{0, 1, 0, 0}},
		{Content: "cameras use focal length in mm", Embedding: []float32{0, 0, 1, 0}},
	})
	require.NoError(t, err)

	results, err := store.searchTable(ctx, activeTable, []float32{1, 0, 0, 0}, 2)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "cube primitives spawn at the cursor", results[0].Content)
	assert.InDelta(t, 1.0, results[0].Similarity, 1e-6)
}

func TestStoreIngestRejectsDimensionMismatch(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	store, _ := newTestStore(t, 4)
	ctx := context.Background()
	require.NoError(t, store.EnsureSchema(ctx))

	err := store.Ingest(ctx, []Chunk{
		{Content: "wrong width", Embedding: []float32{1, 0}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dimension")
}

func TestEnsureSchemaAltersEmptyTable(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	// Table declared at dimension 4, embedder wants 8, table empty:
	// column is altered in place.
	store, pool := newTestStore(t, 8)
	ctx := context.Background()
	require.NoError(t, store.EnsureSchema(ctx))

	dim, err := store.tableDimension(ctx, activeTable)
	require.NoError(t, err)
	assert.Equal(t, 8, dim)
	_ = pool
}

func TestEnsureSchemaCreatesParallelTableWhenPopulated(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	store, pool := newTestStore(t, 8)
	ctx := context.Background()

	// Populate at the old dimension before reconciling.
	_, err := pool.Exec(ctx,
		"INSERT INTO knowledge (content, embedding) VALUES ($1, $2::vector)",
		"legacy chunk", "[1,0,0,0]")
	require.NoError(t, err)

	require.NoError(t, store.EnsureSchema(ctx))

	// Old table untouched, new table exists at the new dimension.
	var legacyCount int
	require.NoError(t, pool.QueryRow(ctx, "SELECT count(*) FROM knowledge").Scan(&legacyCount))
	assert.Equal(t, 1, legacyCount)

	dim, err := store.tableDimension(ctx, parallelTable)
	require.NoError(t, err)
	assert.Equal(t, 8, dim)

	// Writes now land in the parallel table.
	vec := make([]float32, 8)
	vec[0] = 1
	require.NoError(t, store.Ingest(ctx, []Chunk{{Content: "fresh chunk", Embedding: vec}}))

	var freshCount int
	require.NoError(t, pool.QueryRow(ctx, "SELECT count(*) FROM knowledge_new").Scan(&freshCount))
	assert.Equal(t, 1, freshCount)
}
