package deal

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Type string

const (
	TypeWorldRights   Type = "world_rights"
	TypeNorthAmerican Type = "north_american"
	TypeTranslation   Type = "translation"
	TypeAudio         Type = "audio"
	TypeFilmTV        Type = "film_tv"
)

var Types = []Type{TypeWorldRights, TypeNorthAmerican, TypeTranslation, TypeAudio, TypeFilmTV}

func (t Type) Valid() bool {
	for _, known := range Types {
		if t == known {
			return true
		}
	}
	return false
}

type Status string

const (
	StatusNegotiating     Status = "negotiating"
	StatusPendingContract Status = "pending_contract"
	StatusSigned          Status = "signed"
	StatusActive          Status = "active"
	StatusCompleted       Status = "completed"
	StatusTerminated      Status = "terminated"
)

var Statuses = []Status{
	StatusNegotiating, StatusPendingContract, StatusSigned,
	StatusActive, StatusCompleted, StatusTerminated,
}

func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// ActiveStatuses are the stages where a deal still ties up the book for
// business purposes.
var ActiveStatuses = []Status{
	StatusNegotiating, StatusPendingContract, StatusSigned, StatusActive,
}

func (s Status) Active() bool {
	for _, known := range ActiveStatuses {
		if s == known {
			return true
		}
	}
	return false
}

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"CAD": "C$",
	"AUD": "A$",
}

// Deal is a publishing contract between a book and a publisher, optionally
// brokered by an agent.
type Deal struct {
	ID          uuid.UUID  `json:"id"`
	BookID      uuid.UUID  `json:"book_id"`
	PublisherID uuid.UUID  `json:"publisher_id"`
	AgentID     *uuid.UUID `json:"agent_id"`

	DealType Type   `json:"deal_type"`
	Status   Status `json:"status"`

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

	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (d *Deal) Active() bool {
	return d.Status.Active()
}

func (d *Deal) Signed() bool {
	return d.Status == StatusSigned || d.Status == StatusActive || d.Status == StatusCompleted
}

// AgentCommission is the agent's cut of the advance at the given rate
// (percent), rounded to cents. Zero when there is no agent or no advance.
func (d *Deal) AgentCommission(commissionRate decimal.Decimal) decimal.Decimal {
	if d.AgentID == nil || d.AdvanceAmount == nil || d.AdvanceAmount.IsZero() {
		return decimal.Zero
	}
	return d.AdvanceAmount.Mul(commissionRate).Div(decimal.NewFromInt(100)).Round(2)
}

// AuthorNetAdvance is the advance left after the agent's commission.
func (d *Deal) AuthorNetAdvance(commissionRate decimal.Decimal) decimal.Decimal {
	if d.AdvanceAmount == nil || d.AdvanceAmount.IsZero() {
		return decimal.Zero
	}
	return d.AdvanceAmount.Sub(d.AgentCommission(commissionRate))
}

func (d *Deal) TotalDealValue() decimal.Decimal {
	if d.AdvanceAmount == nil {
		return decimal.Zero
	}
	return *d.AdvanceAmount
}

// FormattedAdvance renders the advance with the currency symbol and
// thousands separators, e.g. "$125,000.00".
func (d *Deal) FormattedAdvance() string {
	amount := decimal.Zero
	if d.AdvanceAmount != nil {
		amount = *d.AdvanceAmount
	}
	symbol, ok := currencySymbols[d.AdvanceCurrency]
	if !ok {
		symbol = "$"
	}

	fixed := amount.StringFixed(2)
	whole, cents := fixed, ""
	if len(fixed) > 3 {
		whole, cents = fixed[:len(fixed)-3], fixed[len(fixed)-3:]
	}
	return symbol + groupThousands(whole) + cents
}

// DaysToClose is the whole days between offer and contract dates. Nil
// until both are known.
func (d *Deal) DaysToClose() *int {
	if d.OfferDate == nil || d.ContractDate == nil {
		return nil
	}
	days := int(d.ContractDate.Sub(*d.OfferDate).Hours() / 24)
	return &days
}

// TrackedFields returns the audit snapshot.
func (d *Deal) TrackedFields() map[string]string {
	return map[string]string{
		"book_id":                d.BookID.String(),
		"publisher_id":           d.PublisherID.String(),
		"agent_id":               uuidVal(d.AgentID),
		"deal_type":              string(d.DealType),
		"status":                 string(d.Status),
		"advance_amount":         decVal(d.AdvanceAmount),
		"advance_currency":       d.AdvanceCurrency,
		"royalty_rate_hardcover": decVal(d.RoyaltyRateHardcover),
		"royalty_rate_paperback": decVal(d.RoyaltyRatePaperback),
		"royalty_rate_ebook":     decVal(d.RoyaltyRateEbook),
		"offer_date":             dateVal(d.OfferDate),
		"contract_date":          dateVal(d.ContractDate),
		"delivery_date":          dateVal(d.DeliveryDate),
		"publication_date":       dateVal(d.PublicationDate),
		"option_books":           intVal(d.OptionBooks),
		"terms_summary":          strVal(d.TermsSummary),
		"notes":                  strVal(d.Notes),
	}
}

func groupThousands(digits string) string {
	neg := false
	if len(digits) > 0 && digits[0] == '-' {
		neg = true
		digits = digits[1:]
	}
	if len(digits) > 3 {
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
		digits = out
	}
	if neg {
		return "-" + digits
	}
	return digits
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

func uuidVal(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}
