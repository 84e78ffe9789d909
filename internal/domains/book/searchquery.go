package book

import (
	sq "github.com/Masterminds/squirrel"
)

// psql builds statements with $n placeholders for pgx.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// searchColumns is the projection shared by every search row: the book
// plus the owning author's id/name/email (joined, never a second
// round-trip).
var searchColumns = []string{
	"b.id", "b.title", "b.genre", "b.description", "b.published_year",
	"b.pages", "b.author_id", "b.created_at", "b.updated_at",
	"a.id", "a.name", "a.email",
}

// sortColumn maps an API sort key to its SQL column. Keys are already
// normalized by NewSearchParams, so the zero case cannot be reached
// with user input.
func sortColumn(sortBy string) string {
	switch sortBy {
	case SortByTitle:
		return "b.title"
	case SortByPublishedYear:
		return "b.published_year"
	default:
		return "b.created_at"
	}
}

// predicate builds the filter for a search. It starts from "match all"
// and conjunctively narrows per present filter; an absent filter never
// excludes rows. Within the free-text filter, title-contains OR
// description-contains.
func (p SearchParams) predicate() sq.And {
	pred := sq.And{}

	if p.Search != "" {
		pattern := "%" + p.Search + "%"
		pred = append(pred, sq.Or{
			sq.ILike{"b.title": pattern},
			sq.ILike{"b.description": pattern},
		})
	}

	if p.Genre != "" {
		pred = append(pred, sq.Eq{"b.genre": p.Genre})
	}

	if p.AuthorName != "" {
		pred = append(pred, sq.ILike{"a.name": "%" + p.AuthorName + "%"})
	}

	return pred
}

// BuildSearchSQL renders the windowed fetch: filtered, sorted,
// LIMIT/OFFSET.
func BuildSearchSQL(p SearchParams) (string, []interface{}, error) {
	builder := psql.
		Select(searchColumns...).
		From("books b").
		Join("authors a ON a.id = b.author_id").
		OrderBy(sortColumn(p.SortBy) + " " + orderDirection(p.Order)).
		Limit(uint64(p.Limit)).
		Offset(uint64(p.Offset()))

	if pred := p.predicate(); len(pred) > 0 {
		builder = builder.Where(pred)
	}

	return builder.ToSql()
}

// BuildCountSQL renders the total-count query over the same predicate
// as BuildSearchSQL, so total and data can never disagree on the
// filter.
func BuildCountSQL(p SearchParams) (string, []interface{}, error) {
	builder := psql.
		Select("COUNT(*)").
		From("books b").
		Join("authors a ON a.id = b.author_id")

	if pred := p.predicate(); len(pred) > 0 {
		builder = builder.Where(pred)
	}

	return builder.ToSql()
}

func orderDirection(order string) string {
	if order == "asc" {
		return "ASC"
	}
	return "DESC"
}
