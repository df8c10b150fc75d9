package book

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status tracks a manuscript from submission through print.
type Status string

const (
	StatusManuscript   Status = "manuscript"
	StatusSubmitted    Status = "submitted"
	StatusUnderReview  Status = "under_review"
	StatusAccepted     Status = "accepted"
	StatusInProduction Status = "in_production"
	StatusPublished    Status = "published"
	StatusOutOfPrint   Status = "out_of_print"
)

var Statuses = []Status{
	StatusManuscript, StatusSubmitted, StatusUnderReview, StatusAccepted,
	StatusInProduction, StatusPublished, StatusOutOfPrint,
}

func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

type Format string

const (
	FormatHardcover Format = "hardcover"
	FormatPaperback Format = "paperback"
	FormatEbook     Format = "ebook"
	FormatAudiobook Format = "audiobook"
)

var Formats = []Format{FormatHardcover, FormatPaperback, FormatEbook, FormatAudiobook}

func (f Format) Valid() bool {
	for _, known := range Formats {
		if f == known {
			return true
		}
	}
	return false
}

// isbnPattern accepts ISBN-10 and ISBN-13 (978/979 prefixed), with optional
// hyphen or space separators and a trailing X check digit.
var isbnPattern = regexp.MustCompile(`^(?:(?:\d[- ]?){9}[\dXx]|(?:97[89][- ]?)?(?:\d[- ]?){9}[\dXx])$`)

func ValidISBN(isbn string) bool {
	return isbnPattern.MatchString(isbn)
}

// submittedStatuses are the stages at which a manuscript has left the
// author's desk; DaysSinceSubmission only applies to these.
var submittedStatuses = map[Status]bool{
	StatusSubmitted:    true,
	StatusUnderReview:  true,
	StatusAccepted:     true,
	StatusInProduction: true,
	StatusPublished:    true,
}

type Book struct {
	ID       uuid.UUID `json:"id"`
	AuthorID uuid.UUID `json:"author_id"`

	Title    string  `json:"title"`
	Subtitle *string `json:"subtitle"`
	Genre    string  `json:"genre"`
	Subgenre *string `json:"subgenre"`

	Status Status `json:"status"`
	Format Format `json:"format,omitempty"`

	ISBN            *string          `json:"isbn"`
	Description     *string          `json:"description"`
	Synopsis        *string          `json:"synopsis"`
	WordCount       *int             `json:"word_count"`
	PageCount       *int             `json:"page_count"`
	ListPrice       *decimal.Decimal `json:"list_price"`
	PublicationDate *time.Time       `json:"publication_date"`
	CoverImageURL   *string          `json:"cover_image_url"`
	Notes           *string          `json:"notes"`

	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Book) Published() bool {
	return b.Status == StatusPublished
}

// DaysSinceSubmission is the whole days since the book entered the pipeline.
// Nil while the book is still a manuscript or already out of print.
func (b *Book) DaysSinceSubmission(now time.Time) *int {
	if !submittedStatuses[b.Status] {
		return nil
	}
	days := int(now.Sub(b.CreatedAt).Hours() / 24)
	return &days
}

// FormattedWordCount renders the count with thousands separators, e.g.
// "95,000 words". Nil when the count is unknown.
func (b *Book) FormattedWordCount() *string {
	if b.WordCount == nil {
		return nil
	}
	s := groupThousands(strconv.Itoa(*b.WordCount)) + " words"
	return &s
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := len(digits) % 3
	out := ""
	if head > 0 {
		out = digits[:head]
	}
	for i := head; i < len(digits); i += 3 {
		if out != "" {
			out += ","
		}
		out += digits[i : i+3]
	}
	return out
}

// TrackedFields returns the audit snapshot.
func (b *Book) TrackedFields() map[string]string {
	return map[string]string{
		"author_id":        b.AuthorID.String(),
		"title":            b.Title,
		"subtitle":         strVal(b.Subtitle),
		"genre":            b.Genre,
		"subgenre":         strVal(b.Subgenre),
		"status":           string(b.Status),
		"format":           string(b.Format),
		"isbn":             strVal(b.ISBN),
		"description":      strVal(b.Description),
		"synopsis":         strVal(b.Synopsis),
		"word_count":       intVal(b.WordCount),
		"page_count":       intVal(b.PageCount),
		"list_price":       decVal(b.ListPrice),
		"publication_date": dateVal(b.PublicationDate),
		"cover_image_url":  strVal(b.CoverImageURL),
		"notes":            strVal(b.Notes),
	}
}

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intVal(i *int) string {
	if i == nil {
		return ""
	}
	return fmt.Sprintf("%d", *i)
}

func decVal(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}

func dateVal(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
