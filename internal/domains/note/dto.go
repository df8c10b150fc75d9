package note

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

type CreateNoteRequest struct {
	NotableType string    `json:"notable_type"`
	NotableID   uuid.UUID `json:"notable_id"`
	Content     string    `json:"content"`
	Pinned      bool      `json:"pinned"`
}

func (r CreateNoteRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.NotableType,
			validation.Required.Error("is required"),
			validation.By(validNotableType),
		),
		validation.Field(&r.NotableID,
			validation.Required.Error("is required"),
			validation.By(notNilUUID),
		),
		validation.Field(&r.Content,
			validation.Required.Error("is required"),
			validation.Length(2, 0).Error("is too short (minimum is 2 characters)"),
		),
	)
}

type UpdateNoteRequest struct {
	Content *string `json:"content"`
	Pinned  *bool   `json:"pinned"`
}

func (r UpdateNoteRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content,
			validation.By(minContentPtr),
		),
	)
}

func validNotableType(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if !ValidNotableType(s) {
		return ErrInvalidNotableType
	}
	return nil
}

func notNilUUID(value interface{}) error {
	id, _ := value.(uuid.UUID)
	if id == uuid.Nil {
		return ErrRequired
	}
	return nil
}

func minContentPtr(value interface{}) error {
	s, _ := value.(*string)
	if s == nil {
		return nil
	}
	if len([]rune(*s)) < 2 {
		return ErrContentTooShort
	}
	return nil
}
