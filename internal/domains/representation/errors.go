package representation

import "errors"

var (
	ErrRequired      = errors.New("is required")
	ErrInvalidStatus = errors.New("is not a valid status")

	ErrRepresentationNotFound = errors.New("representation not found")
	ErrAuthorNotFound         = errors.New("author must exist")
	ErrAgentNotFound          = errors.New("agent must exist")
	ErrDuplicatePair          = errors.New("author already has a representation with this agent")
	ErrStaleWrite             = errors.New("representation was modified by someone else - reload and retry")
)

func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrRepresentationNotFound):
		return "REPRESENTATION_NOT_FOUND"
	case errors.Is(err, ErrDuplicatePair):
		return "DUPLICATE_REPRESENTATION"
	case errors.Is(err, ErrStaleWrite):
		return "STALE_WRITE"
	case errors.Is(err, ErrRequired),
		errors.Is(err, ErrInvalidStatus),
		errors.Is(err, ErrAuthorNotFound),
		errors.Is(err, ErrAgentNotFound):
		return "VALIDATION_FAILED"
	default:
		return "INTERNAL_ERROR"
	}
}

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrRepresentationNotFound):
		return 404
	case errors.Is(err, ErrDuplicatePair), errors.Is(err, ErrStaleWrite):
		return 409
	case errors.Is(err, ErrRequired),
		errors.Is(err, ErrInvalidStatus),
		errors.Is(err, ErrAuthorNotFound),
		errors.Is(err, ErrAgentNotFound):
		return 400
	default:
		return 500
	}
}
