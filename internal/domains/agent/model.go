package agent

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusActive       Status = "active"
	StatusInactive     Status = "inactive"
	StatusNotAccepting Status = "not_accepting"
)

var Statuses = []Status{StatusActive, StatusInactive, StatusNotAccepting}

func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Agent is a literary agent. Agents broker deals, are assigned prospects
// and represent authors through Representation rows.
type Agent struct {
	ID uuid.UUID `json:"id"`

	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Email      *string `json:"email"` // optional, unique when present
	Phone      *string `json:"phone"`
	AgencyName *string `json:"agency_name"`

	// CommissionRate is a percentage, 0-100.
	CommissionRate *decimal.Decimal `json:"commission_rate"`

	// GenresRepresented is a comma-separated tag list.
	GenresRepresented *string `json:"genres_represented"`

	Status Status `json:"status"`

	// RepresentationsCount is denormalized, maintained by the
	// representation repository.
	RepresentationsCount int `json:"representations_count"`

	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Agent) FullName() string {
	return a.FirstName + " " + a.LastName
}

func (a *Agent) FullNameWithAgency() string {
	if a.AgencyName != nil && *a.AgencyName != "" {
		return a.FullName() + " (" + *a.AgencyName + ")"
	}
	return a.FullName()
}

// GenresList splits the comma-separated genre tags.
func (a *Agent) GenresList() []string {
	if a.GenresRepresented == nil || strings.TrimSpace(*a.GenresRepresented) == "" {
		return []string{}
	}
	parts := strings.Split(*a.GenresRepresented, ",")
	genres := make([]string, 0, len(parts))
	for _, p := range parts {
		if g := strings.TrimSpace(p); g != "" {
			genres = append(genres, g)
		}
	}
	return genres
}

// CommissionFor computes the agent's cut of an amount, rounded to cents.
// Agents without a commission rate earn nothing.
func (a *Agent) CommissionFor(amount decimal.Decimal) decimal.Decimal {
	if a.CommissionRate == nil {
		return decimal.Zero
	}
	return amount.Mul(*a.CommissionRate).Div(decimal.NewFromInt(100)).Round(2)
}

// TrackedFields returns the audit snapshot.
func (a *Agent) TrackedFields() map[string]string {
	return map[string]string{
		"first_name":         a.FirstName,
		"last_name":          a.LastName,
		"email":              strVal(a.Email),
		"phone":              strVal(a.Phone),
		"agency_name":        strVal(a.AgencyName),
		"commission_rate":    decVal(a.CommissionRate),
		"genres_represented": strVal(a.GenresRepresented),
		"status":             string(a.Status),
	}
}

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func decVal(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}
