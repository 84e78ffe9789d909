package service

import (
	"context"

	"github.com/google/uuid"

	"library-backend/internal/domains/book"
)

// bookService implements book.Service
type bookService struct {
	repo book.Repository // Repository dependency (injected)
}

// NewBookService creates a new book service instance.
func NewBookService(repo book.Repository) book.Service {
	return &bookService{
		repo: repo,
	}
}

// Create verifies the owning author before inserting. The FK would
// reject an orphan anyway; checking first turns the failure into a
// clean domain error instead of a constraint violation.
func (s *bookService) Create(ctx context.Context, req *book.CreateBookRequest) (*book.Book, error) {
	exists, err := s.repo.AuthorExists(ctx, req.AuthorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, book.ErrAuthorNotFound
	}

	newBook := &book.Book{
		Title:         req.Title,
		Genre:         req.Genre,
		Description:   req.Description,
		PublishedYear: req.PublishedYear,
		Pages:         req.Pages,
		AuthorID:      req.AuthorID,
	}

	return s.repo.Create(ctx, newBook)
}

func (s *bookService) GetByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	if id == uuid.Nil {
		return nil, book.ErrBookNotFound
	}

	return s.repo.GetByID(ctx, id)
}

func (s *bookService) Update(ctx context.Context, id uuid.UUID, req *book.UpdateBookRequest) (*book.Book, error) {
	// Load current state, apply partial changes, persist
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Re-homing the book to another author re-verifies the target
	if req.AuthorID != nil && *req.AuthorID != current.AuthorID {
		exists, err := s.repo.AuthorExists(ctx, *req.AuthorID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, book.ErrAuthorNotFound
		}
	}

	req.ApplyToEntity(current)

	return s.repo.Update(ctx, current)
}

func (s *bookService) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return book.ErrBookNotFound
	}

	return s.repo.Delete(ctx, id)
}

// Search runs the count and the windowed fetch through the repository
// and derives the pagination metadata from the requested window plus
// the total.
func (s *bookService) Search(ctx context.Context, params book.SearchParams) ([]book.Book, book.PaginationMeta, error) {
	books, total, err := s.repo.Search(ctx, params)
	if err != nil {
		return nil, book.PaginationMeta{}, err
	}

	return books, book.NewPaginationMeta(params.Page, params.Limit, total), nil
}
