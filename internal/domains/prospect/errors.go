package prospect

import "errors"

var (
	ErrInvalidSource = errors.New("is not a valid source")
	ErrInvalidStage  = errors.New("is not a valid stage")
	ErrNotPositive   = errors.New("must be greater than 0")

	ErrProspectNotFound = errors.New("prospect not found")
	ErrAgentNotFound    = errors.New("agent must exist")
	ErrStaleWrite       = errors.New("prospect was modified by someone else - reload and retry")
)

func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrProspectNotFound):
		return "PROSPECT_NOT_FOUND"
	case errors.Is(err, ErrStaleWrite):
		return "STALE_WRITE"
	case errors.Is(err, ErrInvalidSource),
		errors.Is(err, ErrInvalidStage),
		errors.Is(err, ErrNotPositive),
		errors.Is(err, ErrAgentNotFound):
		return "VALIDATION_FAILED"
	default:
		return "INTERNAL_ERROR"
	}
}

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrProspectNotFound):
		return 404
	case errors.Is(err, ErrStaleWrite):
		return 409
	case errors.Is(err, ErrInvalidSource),
		errors.Is(err, ErrInvalidStage),
		errors.Is(err, ErrNotPositive),
		errors.Is(err, ErrAgentNotFound):
		return 400
	default:
		return 500
	}
}
