package author

import (
	"math"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"library-backend/internal/domains/book"
)

// StatsBookRef identifies a book by title and publication year.
type StatsBookRef struct {
	Title string `json:"title"`
	Year  int    `json:"year"`
}

// StatsPageRef identifies a book by title and page count.
type StatsPageRef struct {
	Title string `json:"title"`
	Pages int    `json:"pages"`
}

// Stats - GET /v1/authors/:id/stats response body.
type Stats struct {
	AuthorID     uuid.UUID     `json:"authorId"`
	AuthorName   string        `json:"authorName"`
	TotalBooks   int           `json:"totalBooks"`
	FirstBook    *StatsBookRef `json:"firstBook"`
	LatestBook   *StatsBookRef `json:"latestBook"`
	AveragePages int           `json:"averagePages"`
	Genres       []string      `json:"genres"`
	LongestBook  *StatsPageRef `json:"longestBook"`
	ShortestBook *StatsPageRef `json:"shortestBook"`
}

// ComputeStats aggregates statistics over an author's books. The books
// slice must already be sorted by publication year ascending; every
// reduction below relies on that order, including tie-breaking
// (first occurrence in year order wins).
//
// An author with zero books is a valid state: all derived fields stay
// empty/zero/nil.
func ComputeStats(a *Author, books []book.Book) *Stats {
	stats := &Stats{
		AuthorID:   a.ID,
		AuthorName: a.Name,
		TotalBooks: len(books),
		Genres:     []string{},
	}

	if len(books) == 0 {
		return stats
	}

	// First and latest publication. A publication year of 0 means
	// "unknown" and suppresses the field entirely.
	if first := books[0]; first.PublishedYear != 0 {
		stats.FirstBook = &StatsBookRef{Title: first.Title, Year: first.PublishedYear}
	}
	if latest := books[len(books)-1]; latest.PublishedYear != 0 {
		stats.LatestBook = &StatsBookRef{Title: latest.Title, Year: latest.PublishedYear}
	}

	// Distinct genres, first-occurrence order.
	stats.Genres = lo.Uniq(lo.FilterMap(books, func(b book.Book, _ int) (string, bool) {
		return b.Genre, b.Genre != ""
	}))

	// Page-based reductions only consider books with a known page count.
	withPages := lo.Filter(books, func(b book.Book, _ int) bool {
		return b.Pages != nil
	})
	if len(withPages) == 0 {
		return stats
	}

	totalPages := lo.SumBy(withPages, func(b book.Book) int {
		return *b.Pages
	})
	stats.AveragePages = int(math.Round(float64(totalPages) / float64(len(withPages))))

	longest := lo.MaxBy(withPages, func(a, b book.Book) bool {
		return *a.Pages > *b.Pages
	})
	shortest := lo.MinBy(withPages, func(a, b book.Book) bool {
		return *a.Pages < *b.Pages
	})

	stats.LongestBook = &StatsPageRef{Title: longest.Title, Pages: *longest.Pages}
	stats.ShortestBook = &StatsPageRef{Title: shortest.Title, Pages: *shortest.Pages}

	return stats
}
