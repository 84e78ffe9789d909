package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"library-backend/internal/domains/author"
	"library-backend/internal/domains/book"
)

// authorService implements author.Service
type authorService struct {
	repo author.Repository // Repository dependency (injected)
}

// NewAuthorService creates a new author service instance.
// Service depends on the Repository abstraction, not a concrete type,
// which keeps it mockable in tests.
func NewAuthorService(repo author.Repository) author.Service {
	return &authorService{
		repo: repo,
	}
}

func (s *authorService) Create(ctx context.Context, req *author.CreateAuthorRequest) (*author.Author, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, author.ErrInvalidName
	}

	newAuthor := req.ToEntity()
	newAuthor.Name = name

	return s.repo.Create(ctx, newAuthor)
}

func (s *authorService) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	if id == uuid.Nil {
		return nil, author.ErrAuthorNotFound
	}

	return s.repo.GetByID(ctx, id)
}

func (s *authorService) GetAll(ctx context.Context, filter author.AuthorFilter) ([]author.Author, int64, error) {
	filter.Normalize()

	return s.repo.GetAll(ctx, filter)
}

func (s *authorService) Update(ctx context.Context, id uuid.UUID, req *author.UpdateAuthorRequest) (*author.Author, error) {
	// Load current state, apply partial changes, persist
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ApplyToEntity(current)

	return s.repo.Update(ctx, current)
}

func (s *authorService) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return author.ErrAuthorNotFound
	}

	// Cascade to the author's books happens at the store level.
	return s.repo.Delete(ctx, id)
}

func (s *authorService) GetBooks(ctx context.Context, id uuid.UUID) ([]book.Book, error) {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, author.ErrAuthorNotFound
	}

	return s.repo.ListBooks(ctx, id)
}

// GetStats resolves the author, loads its books in year-ascending
// order, and hands the materialized slice to the pure aggregation.
func (s *authorService) GetStats(ctx context.Context, id uuid.UUID) (*author.Stats, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	books, err := s.repo.ListBooks(ctx, id)
	if err != nil {
		return nil, err
	}

	return author.ComputeStats(a, books), nil
}
