package book

import (
	"time"

	"github.com/google/uuid"
)

// Book represents a single catalog item. A book always belongs to
// exactly one author; it cannot exist orphaned (store-enforced FK with
// cascade delete from the author side).
type Book struct {
	// Identity
	ID uuid.UUID `json:"id" db:"id"`

	// Catalog data
	Title         string  `json:"title" db:"title"`
	Genre         string  `json:"genre" db:"genre"`
	Description   *string `json:"description,omitempty" db:"description"`
	PublishedYear int     `json:"publishedYear" db:"published_year"`
	Pages         *int    `json:"pages" db:"pages"` // Unknown page count stays null

	// Ownership
	AuthorID uuid.UUID  `json:"authorId" db:"author_id"`
	Author   *AuthorRef `json:"author,omitempty"` // Populated by joined queries

	// Audit timestamps
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// AuthorRef is the owning author's projection embedded in book
// responses, so callers never need a second round-trip.
type AuthorRef struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}
