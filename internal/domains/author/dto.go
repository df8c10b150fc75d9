package author

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type CreateAuthorRequest struct {
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Email       *string    `json:"email"`
	Phone       *string    `json:"phone"`
	Status      string     `json:"status"`
	GenreFocus  *string    `json:"genre_focus"`
	Bio         *string    `json:"bio"`
	Website     *string    `json:"website"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Notes       *string    `json:"notes"`
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName,
			validation.Required.Error("is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.LastName,
			validation.Required.Error("is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Email,
			is.Email.Error("is not a valid email"),
		),
		validation.Field(&r.Status,
			validation.By(validStatus),
		),
		validation.Field(&r.Website,
			is.URL.Error("is not a valid URL"),
		),
	)
}

// UpdateAuthorRequest carries a partial update: nil fields are left alone.
// Version must match the stored row or the update is rejected as stale.
type UpdateAuthorRequest struct {
	FirstName   *string    `json:"first_name"`
	LastName    *string    `json:"last_name"`
	Email       *string    `json:"email"`
	Phone       *string    `json:"phone"`
	Status      *string    `json:"status"`
	GenreFocus  *string    `json:"genre_focus"`
	Bio         *string    `json:"bio"`
	Website     *string    `json:"website"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Notes       *string    `json:"notes"`
	Version     int        `json:"version"`
}

func (r UpdateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName,
			validation.NilOrNotEmpty.Error("is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.LastName,
			validation.NilOrNotEmpty.Error("is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Email,
			is.Email.Error("is not a valid email"),
		),
		validation.Field(&r.Status,
			validation.By(validStatusPtr),
		),
		validation.Field(&r.Website,
			is.URL.Error("is not a valid URL"),
		),
		validation.Field(&r.Version,
			validation.Min(0),
		),
	)
}

func validStatus(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if !Status(s).Valid() {
		return ErrInvalidStatus
	}
	return nil
}

func validStatusPtr(value interface{}) error {
	s, _ := value.(*string)
	if s == nil {
		return nil
	}
	return validStatus(*s)
}
