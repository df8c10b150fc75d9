package deal

import "errors"

var (
	ErrRequired       = errors.New("is required")
	ErrInvalidType    = errors.New("is not a valid deal type")
	ErrInvalidStatus  = errors.New("is not a valid status")
	ErrNegativeAmount = errors.New("must be greater than or equal to 0")
	ErrInvalidRate    = errors.New("must be between 0 and 100")

	ErrDealNotFound      = errors.New("deal not found")
	ErrDuplicatePair     = errors.New("book already has a deal with this publisher")
	ErrBookNotFound      = errors.New("book must exist")
	ErrPublisherNotFound = errors.New("publisher must exist")
	ErrAgentNotFound     = errors.New("agent must exist")
	ErrStaleWrite        = errors.New("deal was modified by someone else - reload and retry")
)

func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrDealNotFound):
		return "DEAL_NOT_FOUND"
	case errors.Is(err, ErrDuplicatePair):
		return "DUPLICATE_DEAL"
	case errors.Is(err, ErrStaleWrite):
		return "STALE_WRITE"
	case errors.Is(err, ErrRequired),
		errors.Is(err, ErrInvalidType),
		errors.Is(err, ErrInvalidStatus),
		errors.Is(err, ErrNegativeAmount),
		errors.Is(err, ErrInvalidRate),
		errors.Is(err, ErrBookNotFound),
		errors.Is(err, ErrPublisherNotFound),
		errors.Is(err, ErrAgentNotFound):
		return "VALIDATION_FAILED"
	default:
		return "INTERNAL_ERROR"
	}
}

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrDealNotFound):
		return 404
	case errors.Is(err, ErrDuplicatePair), errors.Is(err, ErrStaleWrite):
		return 409
	case errors.Is(err, ErrRequired),
		errors.Is(err, ErrInvalidType),
		errors.Is(err, ErrInvalidStatus),
		errors.Is(err, ErrNegativeAmount),
		errors.Is(err, ErrInvalidRate),
		errors.Is(err, ErrBookNotFound),
		errors.Is(err, ErrPublisherNotFound),
		errors.Is(err, ErrAgentNotFound):
		return 400
	default:
		return 500
	}
}
