package representation

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

type CreateRepresentationRequest struct {
	AuthorID uuid.UUID `json:"author_id"`
	AgentID  uuid.UUID `json:"agent_id"`

	Primary   bool       `json:"primary"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Notes     *string    `json:"notes"`
}

func (r CreateRepresentationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.AuthorID,
			validation.Required.Error("is required"),
			validation.By(notNilUUID),
		),
		validation.Field(&r.AgentID,
			validation.Required.Error("is required"),
			validation.By(notNilUUID),
		),
	)
}

type UpdateRepresentationRequest struct {
	Primary   *bool      `json:"primary"`
	Status    *string    `json:"status"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Notes     *string    `json:"notes"`

	Version int `json:"version"`
}

func (r UpdateRepresentationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status,
			validation.By(validStatusPtr),
		),
		validation.Field(&r.Version,
			validation.Min(0),
		),
	)
}

func notNilUUID(value interface{}) error {
	id, _ := value.(uuid.UUID)
	if id == uuid.Nil {
		return ErrRequired
	}
	return nil
}

func validStatusPtr(value interface{}) error {
	s, _ := value.(*string)
	if s == nil {
		return nil
	}
	if !Status(*s).Valid() {
		return ErrInvalidStatus
	}
	return nil
}
