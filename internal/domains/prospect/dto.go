package prospect

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

type CreateProspectRequest struct {
	AgentID *uuid.UUID `json:"agent_id"`

	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`

	Source string `json:"source"`

	GenreInterest      *string `json:"genre_interest"`
	ProjectTitle       *string `json:"project_title"`
	ProjectDescription *string `json:"project_description"`
	EstimatedWordCount *int    `json:"estimated_word_count"`

	FollowUpDate    *time.Time `json:"follow_up_date"`
	LastContactDate *time.Time `json:"last_contact_date"`

	Notes *string `json:"notes"`
}

func (r CreateProspectRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName,
			validation.Required.Error("is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.LastName,
			validation.Required.Error("is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.Email,
			is.Email.Error("is not a valid email"),
		),
		validation.Field(&r.Source,
			validation.By(validSource),
		),
		validation.Field(&r.EstimatedWordCount,
			validation.By(positiveIntPtr),
		),
	)
}

// UpdateProspectRequest covers ordinary field edits. Stage moves go
// through the transition endpoints instead.
type UpdateProspectRequest struct {
	AgentID *uuid.UUID `json:"agent_id"`

	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`

	Source *string `json:"source"`

	GenreInterest      *string `json:"genre_interest"`
	ProjectTitle       *string `json:"project_title"`
	ProjectDescription *string `json:"project_description"`
	EstimatedWordCount *int    `json:"estimated_word_count"`

	FollowUpDate    *time.Time `json:"follow_up_date"`
	LastContactDate *time.Time `json:"last_contact_date"`

	Notes *string `json:"notes"`

	Version int `json:"version"`
}

func (r UpdateProspectRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName,
			validation.NilOrNotEmpty.Error("is required"),
		),
		validation.Field(&r.LastName,
			validation.NilOrNotEmpty.Error("is required"),
		),
		validation.Field(&r.Email,
			is.Email.Error("is not a valid email"),
		),
		validation.Field(&r.Source,
			validation.By(validSourcePtr),
		),
		validation.Field(&r.EstimatedWordCount,
			validation.By(positiveIntPtr),
		),
		validation.Field(&r.Version,
			validation.Min(0),
		),
	)
}

type TransitionRequest struct {
	Stage string `json:"stage"`
}

type DeclineRequest struct {
	Reason string `json:"reason"`
}

func validSource(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if !Source(s).Valid() {
		return ErrInvalidSource
	}
	return nil
}

func validSourcePtr(value interface{}) error {
	s, _ := value.(*string)
	if s == nil {
		return nil
	}
	return validSource(*s)
}

func positiveIntPtr(value interface{}) error {
	n, _ := value.(*int)
	if n == nil {
		return nil
	}
	if *n <= 0 {
		return ErrNotPositive
	}
	return nil
}
