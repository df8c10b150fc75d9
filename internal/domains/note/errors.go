package note

import "errors"

var (
	ErrRequired           = errors.New("is required")
	ErrInvalidNotableType = errors.New("is not a notable type")
	ErrContentTooShort    = errors.New("is too short (minimum is 2 characters)")

	ErrNoteNotFound    = errors.New("note not found")
	ErrNotableNotFound = errors.New("notable record not found")
)

func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrNoteNotFound), errors.Is(err, ErrNotableNotFound):
		return "NOTE_NOT_FOUND"
	case errors.Is(err, ErrRequired),
		errors.Is(err, ErrInvalidNotableType),
		errors.Is(err, ErrContentTooShort):
		return "VALIDATION_FAILED"
	default:
		return "INTERNAL_ERROR"
	}
}

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNoteNotFound), errors.Is(err, ErrNotableNotFound):
		return 404
	case errors.Is(err, ErrRequired),
		errors.Is(err, ErrInvalidNotableType),
		errors.Is(err, ErrContentTooShort):
		return 400
	default:
		return 500
	}
}
