package publisher

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type CreatePublisherRequest struct {
	Name         string  `json:"name"`
	Imprint      *string `json:"imprint"`
	Size         string  `json:"size"`
	Status       string  `json:"status"`
	ContactName  *string `json:"contact_name"`
	ContactEmail *string `json:"contact_email"`
	Phone        *string `json:"phone"`
	Website      *string `json:"website"`
	AddressLine1 *string `json:"address_line1"`
	AddressLine2 *string `json:"address_line2"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	PostalCode   *string `json:"postal_code"`
	Country      *string `json:"country"`
}

func (r CreatePublisherRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Size,
			validation.By(validSize),
		),
		validation.Field(&r.Status,
			validation.By(validStatus),
		),
		validation.Field(&r.ContactEmail,
			is.Email.Error("is not a valid email"),
		),
		validation.Field(&r.Website,
			is.URL.Error("is not a valid URL"),
		),
	)
}

type UpdatePublisherRequest struct {
	Name         *string `json:"name"`
	Imprint      *string `json:"imprint"`
	Size         *string `json:"size"`
	Status       *string `json:"status"`
	ContactName  *string `json:"contact_name"`
	ContactEmail *string `json:"contact_email"`
	Phone        *string `json:"phone"`
	Website      *string `json:"website"`
	AddressLine1 *string `json:"address_line1"`
	AddressLine2 *string `json:"address_line2"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	PostalCode   *string `json:"postal_code"`
	Country      *string `json:"country"`
	Version      int     `json:"version"`
}

func (r UpdatePublisherRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.NilOrNotEmpty.Error("is required"),
		),
		validation.Field(&r.Size,
			validation.By(validSizePtr),
		),
		validation.Field(&r.Status,
			validation.By(validStatusPtr),
		),
		validation.Field(&r.ContactEmail,
			is.Email.Error("is not a valid email"),
		),
		validation.Field(&r.Website,
			is.URL.Error("is not a valid URL"),
		),
		validation.Field(&r.Version,
			validation.Min(0),
		),
	)
}

func validSize(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if !Size(s).Valid() {
		return ErrInvalidSize
	}
	return nil
}

func validSizePtr(value interface{}) error {
	s, _ := value.(*string)
	if s == nil {
		return nil
	}
	return validSize(*s)
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
