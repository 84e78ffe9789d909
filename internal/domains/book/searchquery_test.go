package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func params(search, genre, authorName string) SearchParams {
	return NewSearchParams(search, genre, authorName, "", "", "", "")
}

func TestBuildSearchSQL_NoFilters(t *testing.T) {
	sql, args, err := BuildSearchSQL(params("", "", ""))
	require.NoError(t, err)

	assert.NotContains(t, sql, "WHERE")
	assert.Contains(t, sql, "FROM books b")
	assert.Contains(t, sql, "JOIN authors a ON a.id = b.author_id")
	assert.Contains(t, sql, "ORDER BY b.created_at DESC")
	assert.Contains(t, sql, "LIMIT 10")
	assert.Contains(t, sql, "OFFSET 0")
	assert.Empty(t, args)
}

func TestBuildSearchSQL_FreeTextSearchesTitleOrDescription(t *testing.T) {
	sql, args, err := BuildSearchSQL(params("soledad", "", ""))
	require.NoError(t, err)

	assert.Contains(t, sql, "b.title ILIKE $1")
	assert.Contains(t, sql, "b.description ILIKE $2")
	assert.Contains(t, sql, " OR ")
	assert.Equal(t, []interface{}{"%soledad%", "%soledad%"}, args)
}

func TestBuildSearchSQL_GenreIsExactMatch(t *testing.T) {
	sql, args, err := BuildSearchSQL(params("", "Novela", ""))
	require.NoError(t, err)

	assert.Contains(t, sql, "b.genre = $1")
	assert.NotContains(t, sql, "b.genre ILIKE")
	assert.Equal(t, []interface{}{"Novela"}, args)
}

func TestBuildSearchSQL_AuthorNameIsContainment(t *testing.T) {
	sql, args, err := BuildSearchSQL(params("", "", "márquez"))
	require.NoError(t, err)

	assert.Contains(t, sql, "a.name ILIKE $1")
	assert.Equal(t, []interface{}{"%márquez%"}, args)
}

func TestBuildSearchSQL_FiltersCompose(t *testing.T) {
	// Each present filter narrows conjunctively; all three together
	// produce search OR-pair AND genre AND author name.
	sql, args, err := BuildSearchSQL(params("soledad", "Novela", "márquez"))
	require.NoError(t, err)

	assert.Contains(t, sql, "b.title ILIKE $1")
	assert.Contains(t, sql, "b.description ILIKE $2")
	assert.Contains(t, sql, "b.genre = $3")
	assert.Contains(t, sql, "a.name ILIKE $4")
	assert.Equal(t, []interface{}{"%soledad%", "%soledad%", "Novela", "%márquez%"}, args)
}

func TestBuildSearchSQL_SortKeys(t *testing.T) {
	tests := []struct {
		sortBy string
		order  string
		want   string
	}{
		{SortByTitle, "asc", "ORDER BY b.title ASC"},
		{SortByPublishedYear, "desc", "ORDER BY b.published_year DESC"},
		{SortByCreatedAt, "", "ORDER BY b.created_at DESC"},
	}

	for _, tt := range tests {
		p := NewSearchParams("", "", "", "", "", tt.sortBy, tt.order)
		sql, _, err := BuildSearchSQL(p)
		require.NoError(t, err)
		assert.Contains(t, sql, tt.want)
	}
}

func TestBuildSearchSQL_Window(t *testing.T) {
	p := NewSearchParams("", "", "", "3", "20", "", "")
	sql, _, err := BuildSearchSQL(p)
	require.NoError(t, err)

	assert.Contains(t, sql, "LIMIT 20")
	assert.Contains(t, sql, "OFFSET 40")
}

func TestBuildCountSQL_SamePredicateAsSearch(t *testing.T) {
	p := params("soledad", "Novela", "")

	countSQL, countArgs, err := BuildCountSQL(p)
	require.NoError(t, err)
	_, searchArgs, err := BuildSearchSQL(p)
	require.NoError(t, err)

	assert.Contains(t, countSQL, "SELECT COUNT(*)")
	assert.NotContains(t, countSQL, "LIMIT")
	assert.Equal(t, searchArgs, countArgs, "count and fetch must agree on the filter")
}

func TestBuildCountSQL_NoFilters(t *testing.T) {
	sql, args, err := BuildCountSQL(params("", "", ""))
	require.NoError(t, err)

	assert.NotContains(t, sql, "WHERE")
	assert.Empty(t, args)
}
