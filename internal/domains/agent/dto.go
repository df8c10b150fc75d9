package agent

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/shopspring/decimal"
)

type CreateAgentRequest struct {
	FirstName         string           `json:"first_name"`
	LastName          string           `json:"last_name"`
	Email             *string          `json:"email"`
	Phone             *string          `json:"phone"`
	AgencyName        *string          `json:"agency_name"`
	CommissionRate    *decimal.Decimal `json:"commission_rate"`
	GenresRepresented *string          `json:"genres_represented"`
	Status            string           `json:"status"`
}

func (r CreateAgentRequest) Validate() error {
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
		validation.Field(&r.CommissionRate,
			validation.By(validRate),
		),
		validation.Field(&r.Status,
			validation.By(validStatus),
		),
	)
}

type UpdateAgentRequest struct {
	FirstName         *string          `json:"first_name"`
	LastName          *string          `json:"last_name"`
	Email             *string          `json:"email"`
	Phone             *string          `json:"phone"`
	AgencyName        *string          `json:"agency_name"`
	CommissionRate    *decimal.Decimal `json:"commission_rate"`
	GenresRepresented *string          `json:"genres_represented"`
	Status            *string          `json:"status"`
	Version           int              `json:"version"`
}

func (r UpdateAgentRequest) Validate() error {
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
		validation.Field(&r.CommissionRate,
			validation.By(validRate),
		),
		validation.Field(&r.Status,
			validation.By(validStatusPtr),
		),
		validation.Field(&r.Version,
			validation.Min(0),
		),
	)
}

func validRate(value interface{}) error {
	rate, _ := value.(*decimal.Decimal)
	if rate == nil {
		return nil
	}
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(100)) {
		return ErrInvalidCommissionRate
	}
	return nil
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
