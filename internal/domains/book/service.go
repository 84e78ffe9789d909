package book

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business logic operations for the Book domain.
type Service interface {
	// Create creates a new book after verifying the owning author
	// exists. A book can never be created orphaned.
	// Errors: ErrAuthorNotFound
	Create(ctx context.Context, req *CreateBookRequest) (*Book, error)

	// GetByID retrieves a book with its owning author embedded.
	// Errors: ErrBookNotFound
	GetByID(ctx context.Context, id uuid.UUID) (*Book, error)

	// Update updates an existing book. Only non-nil fields of the
	// request overwrite (partial field replacement). Re-homing the book
	// to another author re-verifies that author exists.
	// Errors: ErrBookNotFound, ErrAuthorNotFound
	Update(ctx context.Context, id uuid.UUID, req *UpdateBookRequest) (*Book, error)

	// Delete removes a book by ID.
	// Errors: ErrBookNotFound
	Delete(ctx context.Context, id uuid.UUID) error

	// Search runs the filtered, sorted, paginated book search: one
	// count query plus one windowed fetch over the same predicate.
	// Either fully succeeds or returns an error with no partial data.
	Search(ctx context.Context, params SearchParams) ([]Book, PaginationMeta, error)
}
