package author

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"library-backend/internal/domains/book"
)

// Constants for validation
const (
	MaxNameLength = 255
	MinNameLength = 2
	MaxBioLength  = 5000
)

// CreateAuthorRequest - POST /v1/authors
type CreateAuthorRequest struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Bio         *string `json:"bio,omitempty"`
	Nationality *string `json:"nationality,omitempty"`
	BirthYear   *int    `json:"birthYear,omitempty"`
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(MinNameLength, MaxNameLength),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email,
			validation.Length(5, 255),
		),
		validation.Field(&r.Bio,
			validation.Length(0, MaxBioLength),
		),
		validation.Field(&r.Nationality,
			validation.Length(0, 100),
		),
		validation.Field(&r.BirthYear,
			validation.Min(0),
		),
	)
}

// UpdateAuthorRequest - PUT /v1/authors/:id
// All fields optional for partial updates (PATCH behavior)
type UpdateAuthorRequest struct {
	Name        *string `json:"name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Bio         *string `json:"bio,omitempty"`
	Nationality *string `json:"nationality,omitempty"`
	BirthYear   *int    `json:"birthYear,omitempty"`
}

func (r UpdateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Length(MinNameLength, MaxNameLength),
		),
		validation.Field(&r.Email,
			is.Email,
			validation.Length(5, 255),
		),
		validation.Field(&r.Bio,
			validation.Length(0, MaxBioLength),
		),
		validation.Field(&r.Nationality,
			validation.Length(0, 100),
		),
		validation.Field(&r.BirthYear,
			validation.Min(0),
		),
	)
}

// AuthorResponse - Basic author information
type AuthorResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Bio         *string   `json:"bio,omitempty"`
	Nationality *string   `json:"nationality,omitempty"`
	BirthYear   *int      `json:"birthYear,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// AuthorFilter - Query parameters for the author list
type AuthorFilter struct {
	Search string `form:"search"`  // Partial name match, case-insensitive
	SortBy string `form:"sortBy"`  // name, createdAt
	Order  string `form:"order"`   // asc, desc
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}

// Normalize degrades invalid filter values to safe defaults instead of
// rejecting them. Same clamping rules as the book search: page >= 1,
// 1 <= limit <= 50.
func (f *AuthorFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 10
	}
	if f.Limit > 50 {
		f.Limit = 50
	}
	switch f.SortBy {
	case "name", "createdAt":
	default:
		f.SortBy = "createdAt"
	}
	if f.Order != "asc" {
		f.Order = "desc"
	}
}

// Offset derives the LIMIT/OFFSET window position.
func (f *AuthorFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// PaginationMeta derives the response metadata for this filter's
// window. Same derivation as the book search.
func (f *AuthorFilter) PaginationMeta(total int64) book.PaginationMeta {
	return book.NewPaginationMeta(f.Page, f.Limit, total)
}

// Conversion methods

// ToResponse converts Author entity to AuthorResponse DTO
func (a *Author) ToResponse() *AuthorResponse {
	return &AuthorResponse{
		ID:          a.ID,
		Name:        a.Name,
		Email:       a.Email,
		Bio:         a.Bio,
		Nationality: a.Nationality,
		BirthYear:   a.BirthYear,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// ToEntity converts CreateAuthorRequest to Author entity
func (req *CreateAuthorRequest) ToEntity() *Author {
	return &Author{
		Name:        req.Name,
		Email:       req.Email,
		Bio:         req.Bio,
		Nationality: req.Nationality,
		BirthYear:   req.BirthYear,
	}
}

// ApplyToEntity applies UpdateAuthorRequest to existing Author entity.
// Only non-nil fields overwrite (partial field replacement).
func (req *UpdateAuthorRequest) ApplyToEntity(author *Author) {
	if req.Name != nil {
		author.Name = *req.Name
	}
	if req.Email != nil {
		author.Email = *req.Email
	}
	if req.Bio != nil {
		author.Bio = req.Bio
	}
	if req.Nationality != nil {
		author.Nationality = req.Nationality
	}
	if req.BirthYear != nil {
		author.BirthYear = req.BirthYear
	}
}
