package author

import "errors"

var (
	// Business Rule Errors
	ErrAuthorNotFound = errors.New("Autor no encontrado")
	ErrDuplicateEmail = errors.New("author with this email already exists")

	// Validation Errors
	ErrInvalidName = errors.New("author name is invalid")
)

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return 404
	case errors.Is(err, ErrDuplicateEmail):
		return 409
	case errors.Is(err, ErrInvalidName):
		return 400
	default:
		return 500
	}
}
