package services

import (
	"context"
	"os"
	"testing"

	"github.com/dmitrijs2005/snippets/internal/dbx"
	"github.com/dmitrijs2005/snippets/internal/logging"
	"github.com/dmitrijs2005/snippets/internal/migrations"
	"github.com/dmitrijs2005/snippets/internal/models"
	"github.com/dmitrijs2005/snippets/internal/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newPostgresService connects to SNIPPETS_TEST_DSN, applies the schema and
// empties the table. The test is skipped when the variable is unset.
func newPostgresService(t *testing.T) *SnippetService {
	t.Helper()
	dsn := os.Getenv("SNIPPETS_TEST_DSN")
	if dsn == "" {
		t.Skip("SNIPPETS_TEST_DSN not set")
	}

	ctx := context.Background()
	db, err := dbx.OpenPostgres(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, migrations.Apply(ctx, db))
	_, err = db.ExecContext(ctx, `TRUNCATE snippets`)
	require.NoError(t, err)

	return NewSnippetService(db, repomanager.NewPostgresRepositoryManager(), logging.NewNopLogger())
}

func TestPostgres_SnippetLifecycle(t *testing.T) {
	s := newPostgresService(t)
	ctx := context.Background()

	res, err := s.Put(ctx, "greeting", "hello world", false, false)
	require.NoError(t, err)
	assert.True(t, res.Created)

	res, err = s.Put(ctx, "greeting", "hello world", false, false)
	require.NoError(t, err)
	assert.False(t, res.Created)

	msg, found, err := s.Get(ctx, "greeting")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "hello world", msg)

	_, found, err = s.Get(ctx, "nonexistent")
	require.NoError(t, err)
	assert.False(t, found)

	matches, err := s.Search(ctx, "hello")
	require.NoError(t, err)
	assert.Equal(t, []*models.Snippet{{Keyword: "greeting", Message: "hello world"}}, matches)
}

func TestPostgres_HiddenRowsLeaveCatalogAndSearch(t *testing.T) {
	s := newPostgresService(t)
	ctx := context.Background()

	for _, kw := range []string{"b", "a", "c"} {
		_, err := s.Put(ctx, kw, "text "+kw, false, false)
		require.NoError(t, err)
	}
	_, err := s.Put(ctx, "b", "text b", true, false)
	require.NoError(t, err)

	keywords, err := s.Catalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, keywords)

	matches, err := s.Search(ctx, "text")
	require.NoError(t, err)
	assert.Len(t, matches, 2)

	_, err = s.Put(ctx, "b", "text b", false, true)
	require.NoError(t, err)

	keywords, err = s.Catalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, keywords)
}

func TestPostgres_SearchIsCaseSensitive(t *testing.T) {
	s := newPostgresService(t)
	ctx := context.Background()

	_, err := s.Put(ctx, "upper", "Hello", false, false)
	require.NoError(t, err)

	matches, err := s.Search(ctx, "hello")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestPostgres_SearchTermWildcardsAreNotEscaped(t *testing.T) {
	s := newPostgresService(t)
	ctx := context.Background()

	_, err := s.Put(ctx, "greeting", "hello world", false, false)
	require.NoError(t, err)
	_, err = s.Put(ctx, "discount", "100% off", false, false)
	require.NoError(t, err)

	matches, err := s.Search(ctx, "h_llo")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "greeting", matches[0].Keyword)

	matches, err = s.Search(ctx, "1%f")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "discount", matches[0].Keyword)
}
