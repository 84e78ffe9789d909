package book

import "errors"

var (
	// Business Rule Errors
	ErrBookNotFound   = errors.New("book not found")
	ErrAuthorNotFound = errors.New("author does not exist")
)

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrBookNotFound):
		return 404
	case errors.Is(err, ErrAuthorNotFound):
		return 404
	default:
		return 500
	}
}
