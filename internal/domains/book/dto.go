package book

import (
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/google/uuid"
)

// Pagination limits. Every windowed query in the API obeys
// page >= 1 and 1 <= limit <= 50.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 50
)

// Sort keys accepted by the search endpoint. Anything else silently
// degrades to the default instead of failing the request.
const (
	SortByTitle         = "title"
	SortByPublishedYear = "publishedYear"
	SortByCreatedAt     = "createdAt"
)

// CreateBookRequest - POST /v1/books
type CreateBookRequest struct {
	Title         string    `json:"title"`
	Genre         string    `json:"genre"`
	Description   *string   `json:"description,omitempty"`
	PublishedYear int       `json:"publishedYear"`
	Pages         *int      `json:"pages,omitempty"`
	AuthorID      uuid.UUID `json:"authorId"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 500),
		),
		validation.Field(&r.Genre,
			validation.Required.Error("genre is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.PublishedYear,
			validation.Min(0),
		),
		validation.Field(&r.Pages,
			validation.Min(0),
		),
		validation.Field(&r.AuthorID,
			validation.Required.Error("authorId is required"),
		),
	)
}

// UpdateBookRequest - PUT /v1/books/:id
// All fields optional for partial updates (PATCH behavior)
type UpdateBookRequest struct {
	Title         *string    `json:"title,omitempty"`
	Genre         *string    `json:"genre,omitempty"`
	Description   *string    `json:"description,omitempty"`
	PublishedYear *int       `json:"publishedYear,omitempty"`
	Pages         *int       `json:"pages,omitempty"`
	AuthorID      *uuid.UUID `json:"authorId,omitempty"`
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Length(1, 500),
		),
		validation.Field(&r.Genre,
			validation.Length(1, 100),
		),
		validation.Field(&r.PublishedYear,
			validation.Min(0),
		),
		validation.Field(&r.Pages,
			validation.Min(0),
		),
	)
}

// ApplyToEntity applies UpdateBookRequest to an existing Book entity.
// Only non-nil fields overwrite (partial field replacement).
func (req *UpdateBookRequest) ApplyToEntity(b *Book) {
	if req.Title != nil {
		b.Title = *req.Title
	}
	if req.Genre != nil {
		b.Genre = *req.Genre
	}
	if req.Description != nil {
		b.Description = req.Description
	}
	if req.PublishedYear != nil {
		b.PublishedYear = *req.PublishedYear
	}
	if req.Pages != nil {
		b.Pages = req.Pages
	}
	if req.AuthorID != nil {
		b.AuthorID = *req.AuthorID
	}
}

// SearchParams - normalized query parameters for GET /v1/books/search.
// Build one with NewSearchParams; a zero value is not normalized.
type SearchParams struct {
	Search     string // Case-insensitive containment on title OR description
	Genre      string // Exact, case-sensitive match
	AuthorName string // Case-insensitive containment on the owning author's name
	Page       int
	Limit      int
	SortBy     string
	Order      string
}

// NewSearchParams parses raw query-string values into normalized search
// parameters. Invalid input never fails here - it degrades to a safe
// default:
//   - page: default 1, clamped to >= 1
//   - limit: default 10, clamped to [1, 50]
//   - sortBy outside {title, publishedYear, createdAt} -> createdAt
//   - order outside {asc, desc} -> desc
func NewSearchParams(search, genre, authorName, page, limit, sortBy, order string) SearchParams {
	p := SearchParams{
		Search:     strings.ToLower(strings.TrimSpace(search)),
		Genre:      genre,
		AuthorName: strings.ToLower(strings.TrimSpace(authorName)),
		Page:       DefaultPage,
		Limit:      DefaultLimit,
		SortBy:     SortByCreatedAt,
		Order:      "desc",
	}

	if n, err := strconv.Atoi(page); err == nil && n >= 1 {
		p.Page = n
	}

	if n, err := strconv.Atoi(limit); err == nil {
		switch {
		case n < 1:
			p.Limit = 1
		case n > MaxLimit:
			p.Limit = MaxLimit
		default:
			p.Limit = n
		}
	}

	switch sortBy {
	case SortByTitle, SortByPublishedYear, SortByCreatedAt:
		p.SortBy = sortBy
	}

	if strings.ToLower(order) == "asc" {
		p.Order = "asc"
	}

	return p
}

// Offset derives the window position for LIMIT/OFFSET pagination.
func (p SearchParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PaginationMeta describes the result window of a paginated response.
type PaginationMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// NewPaginationMeta derives the pagination metadata for a window:
// totalPages = ceil(total/limit), hasNext iff page < totalPages,
// hasPrev iff page > 1. A page beyond the data is valid and simply
// pairs with an empty data slice.
func NewPaginationMeta(page, limit int, total int64) PaginationMeta {
	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return PaginationMeta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
