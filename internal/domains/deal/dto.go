package deal

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateDealRequest struct {
	BookID      uuid.UUID  `json:"book_id"`
	PublisherID uuid.UUID  `json:"publisher_id"`
	AgentID     *uuid.UUID `json:"agent_id"`

	DealType string `json:"deal_type"`
	Status   string `json:"status"`

	AdvanceAmount   *decimal.Decimal `json:"advance_amount"`
	AdvanceCurrency string           `json:"advance_currency"`

	RoyaltyRateHardcover *decimal.Decimal `json:"royalty_rate_hardcover"`
	RoyaltyRatePaperback *decimal.Decimal `json:"royalty_rate_paperback"`
	RoyaltyRateEbook     *decimal.Decimal `json:"royalty_rate_ebook"`

	OfferDate       *time.Time `json:"offer_date"`
	ContractDate    *time.Time `json:"contract_date"`
	DeliveryDate    *time.Time `json:"delivery_date"`
	PublicationDate *time.Time `json:"publication_date"`

	OptionBooks  *int    `json:"option_books"`
	TermsSummary *string `json:"terms_summary"`
	Notes        *string `json:"notes"`
}

func (r CreateDealRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.BookID,
			validation.Required.Error("is required"),
			validation.By(notNilUUID),
		),
		validation.Field(&r.PublisherID,
			validation.Required.Error("is required"),
			validation.By(notNilUUID),
		),
		validation.Field(&r.DealType,
			validation.Required.Error("is required"),
			validation.By(validType),
		),
		validation.Field(&r.Status,
			validation.By(validStatus),
		),
		validation.Field(&r.AdvanceAmount,
			validation.By(nonNegativeDecimalPtr),
		),
		validation.Field(&r.RoyaltyRateHardcover,
			validation.By(validRatePtr),
		),
		validation.Field(&r.RoyaltyRatePaperback,
			validation.By(validRatePtr),
		),
		validation.Field(&r.RoyaltyRateEbook,
			validation.By(validRatePtr),
		),
	)
}

type UpdateDealRequest struct {
	AgentID *uuid.UUID `json:"agent_id"`

	DealType *string `json:"deal_type"`
	Status   *string `json:"status"`

	AdvanceAmount   *decimal.Decimal `json:"advance_amount"`
	AdvanceCurrency *string          `json:"advance_currency"`

	RoyaltyRateHardcover *decimal.Decimal `json:"royalty_rate_hardcover"`
	RoyaltyRatePaperback *decimal.Decimal `json:"royalty_rate_paperback"`
	RoyaltyRateEbook     *decimal.Decimal `json:"royalty_rate_ebook"`

	OfferDate       *time.Time `json:"offer_date"`
	ContractDate    *time.Time `json:"contract_date"`
	DeliveryDate    *time.Time `json:"delivery_date"`
	PublicationDate *time.Time `json:"publication_date"`

	OptionBooks  *int    `json:"option_books"`
	TermsSummary *string `json:"terms_summary"`
	Notes        *string `json:"notes"`

	Version int `json:"version"`
}

func (r UpdateDealRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.DealType,
			validation.By(validTypePtr),
		),
		validation.Field(&r.Status,
			validation.By(validStatusPtr),
		),
		validation.Field(&r.AdvanceAmount,
			validation.By(nonNegativeDecimalPtr),
		),
		validation.Field(&r.RoyaltyRateHardcover,
			validation.By(validRatePtr),
		),
		validation.Field(&r.RoyaltyRatePaperback,
			validation.By(validRatePtr),
		),
		validation.Field(&r.RoyaltyRateEbook,
			validation.By(validRatePtr),
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

func validType(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if !Type(s).Valid() {
		return ErrInvalidType
	}
	return nil
}

func validTypePtr(value interface{}) error {
	s, _ := value.(*string)
	if s == nil {
		return nil
	}
	if *s == "" {
		return ErrRequired
	}
	return validType(*s)
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

func nonNegativeDecimalPtr(value interface{}) error {
	d, _ := value.(*decimal.Decimal)
	if d == nil {
		return nil
	}
	if d.IsNegative() {
		return ErrNegativeAmount
	}
	return nil
}

func validRatePtr(value interface{}) error {
	d, _ := value.(*decimal.Decimal)
	if d == nil {
		return nil
	}
	if d.IsNegative() || d.GreaterThan(decimal.NewFromInt(100)) {
		return ErrInvalidRate
	}
	return nil
}
