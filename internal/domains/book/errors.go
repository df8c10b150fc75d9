package book

import "errors"

var (
	ErrInvalidStatus  = errors.New("is not a valid status")
	ErrInvalidFormat  = errors.New("is not a valid format")
	ErrInvalidISBN    = errors.New("is not a valid ISBN")
	ErrNotPositive    = errors.New("must be greater than 0")
	ErrAuthorRequired = errors.New("is required")

	ErrBookNotFound   = errors.New("book not found")
	ErrDuplicateISBN  = errors.New("isbn has already been taken")
	ErrBookHasDeals   = errors.New("cannot delete book with active deals")
	ErrFuturePubDate  = errors.New("can't be in the future for published books")
	ErrAuthorNotFound = errors.New("author must exist")
	ErrStaleWrite     = errors.New("book was modified by someone else - reload and retry")
)

func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrBookNotFound):
		return "BOOK_NOT_FOUND"
	case errors.Is(err, ErrBookHasDeals):
		return "BOOK_HAS_ACTIVE_DEALS"
	case errors.Is(err, ErrStaleWrite):
		return "STALE_WRITE"
	case errors.Is(err, ErrDuplicateISBN),
		errors.Is(err, ErrInvalidStatus),
		errors.Is(err, ErrInvalidFormat),
		errors.Is(err, ErrInvalidISBN),
		errors.Is(err, ErrNotPositive),
		errors.Is(err, ErrFuturePubDate),
		errors.Is(err, ErrAuthorNotFound):
		return "VALIDATION_FAILED"
	default:
		return "INTERNAL_ERROR"
	}
}

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrBookNotFound):
		return 404
	case errors.Is(err, ErrBookHasDeals), errors.Is(err, ErrStaleWrite):
		return 409
	case errors.Is(err, ErrDuplicateISBN),
		errors.Is(err, ErrInvalidStatus),
		errors.Is(err, ErrInvalidFormat),
		errors.Is(err, ErrInvalidISBN),
		errors.Is(err, ErrNotPositive),
		errors.Is(err, ErrFuturePubDate),
		errors.Is(err, ErrAuthorNotFound):
		return 400
	default:
		return 500
	}
}
