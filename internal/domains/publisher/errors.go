package publisher

import "errors"

var (
	ErrInvalidSize   = errors.New("is not a valid size")
	ErrInvalidStatus = errors.New("is not a valid status")

	ErrPublisherNotFound = errors.New("publisher not found")
	ErrPublisherHasDeals = errors.New("cannot delete publisher with existing deals")
	ErrStaleWrite        = errors.New("publisher was modified by someone else - reload and retry")
)

func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrPublisherNotFound):
		return "PUBLISHER_NOT_FOUND"
	case errors.Is(err, ErrPublisherHasDeals):
		return "PUBLISHER_HAS_DEALS"
	case errors.Is(err, ErrStaleWrite):
		return "STALE_WRITE"
	case errors.Is(err, ErrInvalidSize), errors.Is(err, ErrInvalidStatus):
		return "VALIDATION_FAILED"
	default:
		return "INTERNAL_ERROR"
	}
}

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrPublisherNotFound):
		return 404
	case errors.Is(err, ErrPublisherHasDeals), errors.Is(err, ErrStaleWrite):
		return 409
	case errors.Is(err, ErrInvalidSize), errors.Is(err, ErrInvalidStatus):
		return 400
	default:
		return 500
	}
}
