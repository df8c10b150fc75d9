package activity

import "errors"

var (
	ErrInvalidAction    = errors.New("activity action is not valid")
	ErrMissingTrackable = errors.New("activity requires a trackable type and id")
)
