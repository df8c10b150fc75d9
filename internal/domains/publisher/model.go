package publisher

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Size buckets publishers by market weight.
type Size string

const (
	SizeBigFive Size = "big_five"
	SizeMajor   Size = "major"
	SizeMidSize Size = "mid_size"
	SizeSmall   Size = "small"
	SizeIndie   Size = "indie"
)

var Sizes = []Size{SizeBigFive, SizeMajor, SizeMidSize, SizeSmall, SizeIndie}

func (s Size) Valid() bool {
	for _, known := range Sizes {
		if s == known {
			return true
		}
	}
	return false
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

var Statuses = []Status{StatusActive, StatusInactive}

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// Publisher is a publishing house deals are signed with.
type Publisher struct {
	ID uuid.UUID `json:"id"`

	Name    string  `json:"name"`
	Imprint *string `json:"imprint"`
	Size    Size    `json:"size"`
	Status  Status  `json:"status"`

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

	// DealsCount is denormalized, maintained by the deal repository.
	DealsCount int `json:"deals_count"`

	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Publisher) BigFive() bool {
	return p.Size == SizeBigFive
}

// DisplayName is the name with the imprint appended when present.
func (p *Publisher) DisplayName() string {
	if p.Imprint != nil && *p.Imprint != "" {
		return p.Name + " (" + *p.Imprint + ")"
	}
	return p.Name
}

// FullAddress renders the mailing address, one part per line. Empty when
// there is no first address line.
func (p *Publisher) FullAddress() string {
	if p.AddressLine1 == nil || *p.AddressLine1 == "" {
		return ""
	}

	parts := []string{*p.AddressLine1}
	if p.AddressLine2 != nil && *p.AddressLine2 != "" {
		parts = append(parts, *p.AddressLine2)
	}
	if line := p.cityStatePostal(); line != "" {
		parts = append(parts, line)
	}
	if p.Country != nil && *p.Country != "" {
		parts = append(parts, *p.Country)
	}
	return strings.Join(parts, "\n")
}

func (p *Publisher) cityStatePostal() string {
	city := strVal(p.City)

	statePostal := strings.TrimSpace(strings.Join(nonEmpty(strVal(p.State), strVal(p.PostalCode)), " "))
	switch {
	case city != "" && statePostal != "":
		return city + ", " + statePostal
	case city != "":
		return city
	default:
		return statePostal
	}
}

// TrackedFields returns the audit snapshot.
func (p *Publisher) TrackedFields() map[string]string {
	return map[string]string{
		"name":          p.Name,
		"imprint":       strVal(p.Imprint),
		"size":          string(p.Size),
		"status":        string(p.Status),
		"contact_name":  strVal(p.ContactName),
		"contact_email": strVal(p.ContactEmail),
		"phone":         strVal(p.Phone),
		"website":       strVal(p.Website),
		"address_line1": strVal(p.AddressLine1),
		"address_line2": strVal(p.AddressLine2),
		"city":          strVal(p.City),
		"state":         strVal(p.State),
		"postal_code":   strVal(p.PostalCode),
		"country":       strVal(p.Country),
	}
}

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nonEmpty(values ...string) []string {
	var out []string
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
