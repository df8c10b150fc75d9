package author

import "errors"

var (
	// Validation errors
	ErrInvalidStatus = errors.New("is not a valid status")

	// Business rule errors
	ErrAuthorNotFound = errors.New("author not found")
	ErrDuplicateEmail = errors.New("author email has already been taken")
	ErrAuthorHasBooks = errors.New("cannot delete author with existing books")
	ErrStaleWrite     = errors.New("author was modified by someone else - reload and retry")
)

// ToErrorCode converts an error to the API error code.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return "AUTHOR_NOT_FOUND"
	case errors.Is(err, ErrDuplicateEmail):
		return "DUPLICATE_EMAIL"
	case errors.Is(err, ErrAuthorHasBooks):
		return "AUTHOR_HAS_BOOKS"
	case errors.Is(err, ErrStaleWrite):
		return "STALE_WRITE"
	case errors.Is(err, ErrInvalidStatus):
		return "INVALID_STATUS"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts an error to the HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return 404
	case errors.Is(err, ErrDuplicateEmail), errors.Is(err, ErrAuthorHasBooks), errors.Is(err, ErrStaleWrite):
		return 409
	case errors.Is(err, ErrInvalidStatus):
		return 400
	default:
		return 500
	}
}
