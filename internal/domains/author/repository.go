package author

import (
	"context"

	"github.com/google/uuid"

	"library-backend/internal/domains/book"
)

// Repository defines the interface for Author data access operations.
type Repository interface {
	// Create inserts a new author.
	// Returns: created author with ID and timestamps.
	// Errors: ErrDuplicateEmail if email exists.
	Create(ctx context.Context, author *Author) (*Author, error)

	// GetByID retrieves author by UUID.
	// Returns: ErrAuthorNotFound if not exists.
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)

	// GetAll retrieves a paginated list of authors.
	// Supports name search, sorting, LIMIT/OFFSET windowing.
	// Returns: authors slice + total count for pagination.
	GetAll(ctx context.Context, filter AuthorFilter) ([]Author, int64, error)

	// Update persists a fully-populated author entity.
	// Errors: ErrAuthorNotFound, ErrDuplicateEmail.
	Update(ctx context.Context, author *Author) (*Author, error)

	// Delete removes author by ID. Books cascade at the store level.
	// Errors: ErrAuthorNotFound if not exists.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByID checks if author exists without fetching full data.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// ListBooks returns the author's books ordered by publication year
	// ascending. The statistics aggregation depends on that order.
	ListBooks(ctx context.Context, authorID uuid.UUID) ([]book.Book, error)
}
