package author

import (
	"time"

	"github.com/google/uuid"
)

// Author represents the core Author entity.
// This is the domain model, independent of database/API concerns.
type Author struct {
	// Identity - UUID for distributed systems
	ID uuid.UUID `json:"id" db:"id"`

	// Basic Information
	Name  string `json:"name" db:"name"`   // Required, max 255 chars
	Email string `json:"email" db:"email"` // Required, unique

	// Optional Details
	Bio         *string `json:"bio" db:"bio"`                 // Biography
	Nationality *string `json:"nationality" db:"nationality"` // Country of origin
	BirthYear   *int    `json:"birthYear" db:"birth_year"`    // Year of birth

	// Audit timestamps
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// HasBio checks if author has biography
func (a *Author) HasBio() bool {
	return a.Bio != nil && *a.Bio != ""
}
