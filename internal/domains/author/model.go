package author

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status is the author lifecycle status.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusDeceased Status = "deceased"
)

var Statuses = []Status{StatusActive, StatusInactive, StatusDeceased}

func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Author is a writer under management: the anchor entity that books,
// representations, notes and activities hang off.
type Author struct {
	ID uuid.UUID `json:"id"`

	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     *string `json:"email"` // optional, unique when present
	Phone     *string `json:"phone"`
	Status    Status  `json:"status"`

	GenreFocus  *string    `json:"genre_focus"`
	Bio         *string    `json:"bio"`
	Website     *string    `json:"website"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Notes       *string    `json:"notes"`

	// BooksCount is denormalized and maintained by the book repository.
	BooksCount int `json:"books_count"`

	// Version supports optimistic locking; stale writes are rejected.
	Version int `json:"version"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Author) FullName() string {
	return a.FirstName + " " + a.LastName
}

func (a *Author) Initials() string {
	var b strings.Builder
	if a.FirstName != "" {
		b.WriteString(strings.ToUpper(a.FirstName[:1]))
	}
	if a.LastName != "" {
		b.WriteString(strings.ToUpper(a.LastName[:1]))
	}
	return b.String()
}

// TrackedFields returns the stringified snapshot the audit recorder diffs.
// Timestamps, the version column and the denormalized book count are not
// part of the audit surface.
func (a *Author) TrackedFields() map[string]string {
	return map[string]string{
		"first_name":    a.FirstName,
		"last_name":     a.LastName,
		"email":         strVal(a.Email),
		"phone":         strVal(a.Phone),
		"status":        string(a.Status),
		"genre_focus":   strVal(a.GenreFocus),
		"bio":           strVal(a.Bio),
		"website":       strVal(a.Website),
		"date_of_birth": dateVal(a.DateOfBirth),
		"notes":         strVal(a.Notes),
	}
}

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func dateVal(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
