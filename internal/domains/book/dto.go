package book

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateBookRequest struct {
	AuthorID uuid.UUID `json:"author_id"`

	Title    string  `json:"title"`
	Subtitle *string `json:"subtitle"`
	Genre    string  `json:"genre"`
	Subgenre *string `json:"subgenre"`

	Status string `json:"status"`
	Format string `json:"format"`

	ISBN            *string          `json:"isbn"`
	Description     *string          `json:"description"`
	Synopsis        *string          `json:"synopsis"`
	WordCount       *int             `json:"word_count"`
	PageCount       *int             `json:"page_count"`
	ListPrice       *decimal.Decimal `json:"list_price"`
	PublicationDate *time.Time       `json:"publication_date"`
	CoverImageURL   *string          `json:"cover_image_url"`
	Notes           *string          `json:"notes"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.AuthorID,
			validation.Required.Error("is required"),
			validation.By(notNilUUID),
		),
		validation.Field(&r.Title,
			validation.Required.Error("is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Genre,
			validation.Required.Error("is required"),
		),
		validation.Field(&r.Status,
			validation.By(validStatus),
		),
		validation.Field(&r.Format,
			validation.By(validFormat),
		),
		validation.Field(&r.ISBN,
			validation.By(validISBNPtr),
		),
		validation.Field(&r.WordCount,
			validation.By(positiveIntPtr),
		),
		validation.Field(&r.PageCount,
			validation.By(positiveIntPtr),
		),
		validation.Field(&r.ListPrice,
			validation.By(positiveDecimalPtr),
		),
	)
}

type UpdateBookRequest struct {
	AuthorID *uuid.UUID `json:"author_id"`

	Title    *string `json:"title"`
	Subtitle *string `json:"subtitle"`
	Genre    *string `json:"genre"`
	Subgenre *string `json:"subgenre"`

	Status *string `json:"status"`
	Format *string `json:"format"`

	ISBN            *string          `json:"isbn"`
	Description     *string          `json:"description"`
	Synopsis        *string          `json:"synopsis"`
	WordCount       *int             `json:"word_count"`
	PageCount       *int             `json:"page_count"`
	ListPrice       *decimal.Decimal `json:"list_price"`
	PublicationDate *time.Time       `json:"publication_date"`
	CoverImageURL   *string          `json:"cover_image_url"`
	Notes           *string          `json:"notes"`

	Version int `json:"version"`
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.NilOrNotEmpty.Error("is required"),
		),
		validation.Field(&r.Genre,
			validation.NilOrNotEmpty.Error("is required"),
		),
		validation.Field(&r.Status,
			validation.By(validStatusPtr),
		),
		validation.Field(&r.Format,
			validation.By(validFormatPtr),
		),
		validation.Field(&r.ISBN,
			validation.By(validISBNPtr),
		),
		validation.Field(&r.WordCount,
			validation.By(positiveIntPtr),
		),
		validation.Field(&r.PageCount,
			validation.By(positiveIntPtr),
		),
		validation.Field(&r.ListPrice,
			validation.By(positiveDecimalPtr),
		),
		validation.Field(&r.Version,
			validation.Min(0),
		),
	)
}

func notNilUUID(value interface{}) error {
	id, _ := value.(uuid.UUID)
	if id == uuid.Nil {
		return ErrAuthorRequired
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

func validFormat(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if !Format(s).Valid() {
		return ErrInvalidFormat
	}
	return nil
}

func validFormatPtr(value interface{}) error {
	s, _ := value.(*string)
	if s == nil {
		return nil
	}
	return validFormat(*s)
}

func validISBNPtr(value interface{}) error {
	s, _ := value.(*string)
	if s == nil || *s == "" {
		return nil
	}
	if !ValidISBN(*s) {
		return ErrInvalidISBN
	}
	return nil
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

func positiveDecimalPtr(value interface{}) error {
	d, _ := value.(*decimal.Decimal)
	if d == nil {
		return nil
	}
	if !d.IsPositive() {
		return ErrNotPositive
	}
	return nil
}
