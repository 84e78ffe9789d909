package author

import (
	"context"

	"github.com/google/uuid"

	"library-backend/internal/domains/book"
)

// Service defines business logic operations for the Author domain.
// The interface allows easy mocking in tests and keeps handlers free
// of data-access details.
type Service interface {
	// Create creates a new author.
	// Business rules:
	// - Name must not be empty and <= 255 chars
	// - Email must be unique (store-enforced)
	// Errors: ErrDuplicateEmail
	Create(ctx context.Context, req *CreateAuthorRequest) (*Author, error)

	// GetByID retrieves author by UUID.
	// Errors: ErrAuthorNotFound
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)

	// GetAll retrieves a paginated list of authors with filtering.
	// Search by name is case-insensitive partial match.
	// Returns: authors slice + total count for pagination.
	GetAll(ctx context.Context, filter AuthorFilter) ([]Author, int64, error)

	// Update updates an existing author. Only non-nil fields of the
	// request overwrite (partial field replacement).
	// Errors: ErrAuthorNotFound, ErrDuplicateEmail
	Update(ctx context.Context, id uuid.UUID, req *UpdateAuthorRequest) (*Author, error)

	// Delete removes an author. The store cascades the delete to every
	// book owned by the author.
	// Errors: ErrAuthorNotFound
	Delete(ctx context.Context, id uuid.UUID) error

	// GetBooks retrieves the author's full book list ordered by
	// publication year ascending.
	// Errors: ErrAuthorNotFound
	GetBooks(ctx context.Context, id uuid.UUID) ([]book.Book, error)

	// GetStats resolves the author and aggregates statistics over its
	// books: first/latest publication, average pages, distinct genres,
	// longest/shortest book. Zero books is a valid state, not an error.
	// Errors: ErrAuthorNotFound
	GetStats(ctx context.Context, id uuid.UUID) (*Stats, error)
}
