package representation

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusActive Status = "active"
	StatusEnded  Status = "ended"
)

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusEnded
}

// Representation links an author to an agent. At most one active
// representation per author carries the primary flag.
type Representation struct {
	ID       uuid.UUID `json:"id"`
	AuthorID uuid.UUID `json:"author_id"`
	AgentID  uuid.UUID `json:"agent_id"`

	Status  Status `json:"status"`
	Primary bool   `json:"primary"`

	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Notes     *string    `json:"notes"`

	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Representation) Current() bool {
	return r.Status == StatusActive
}

// DurationInDays is the whole days from start to end, or to today while
// still active. Nil when the start date was never set.
func (r *Representation) DurationInDays(now time.Time) *int {
	if r.StartDate == nil {
		return nil
	}
	end := now
	if r.EndDate != nil {
		end = *r.EndDate
	}
	days := int(end.Sub(*r.StartDate).Hours() / 24)
	return &days
}
