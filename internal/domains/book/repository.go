package book

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for Book data access operations.
type Repository interface {
	// Create inserts a new book.
	// Errors: ErrAuthorNotFound if the FK rejects the author.
	Create(ctx context.Context, b *Book) (*Book, error)

	// GetByID retrieves a book with its author joined.
	// Errors: ErrBookNotFound if not exists.
	GetByID(ctx context.Context, id uuid.UUID) (*Book, error)

	// Update persists a fully-populated book entity.
	// Errors: ErrBookNotFound, ErrAuthorNotFound.
	Update(ctx context.Context, b *Book) (*Book, error)

	// Delete removes a book by ID.
	// Errors: ErrBookNotFound if not exists.
	Delete(ctx context.Context, id uuid.UUID) error

	// Search executes the count + windowed fetch pair for the given
	// normalized parameters. Returns the window and the total match
	// count.
	Search(ctx context.Context, params SearchParams) ([]Book, int64, error)

	// AuthorExists checks that an author row exists, without fetching it.
	AuthorExists(ctx context.Context, authorID uuid.UUID) (bool, error)
}
