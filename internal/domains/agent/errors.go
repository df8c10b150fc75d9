package agent

import "errors"

var (
	ErrInvalidStatus         = errors.New("is not a valid status")
	ErrInvalidCommissionRate = errors.New("must be between 0 and 100")

	ErrAgentNotFound  = errors.New("agent not found")
	ErrDuplicateEmail = errors.New("agent email has already been taken")
	ErrStaleWrite     = errors.New("agent was modified by someone else - reload and retry")
)

func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrAgentNotFound):
		return "AGENT_NOT_FOUND"
	case errors.Is(err, ErrDuplicateEmail):
		return "DUPLICATE_EMAIL"
	case errors.Is(err, ErrStaleWrite):
		return "STALE_WRITE"
	case errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrInvalidCommissionRate):
		return "VALIDATION_FAILED"
	default:
		return "INTERNAL_ERROR"
	}
}

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAgentNotFound):
		return 404
	case errors.Is(err, ErrDuplicateEmail), errors.Is(err, ErrStaleWrite):
		return 409
	case errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrInvalidCommissionRate):
		return 400
	default:
		return 500
	}
}
