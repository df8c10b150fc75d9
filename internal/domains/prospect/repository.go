package prospect

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// FollowUp filters prospects by follow-up urgency.
type FollowUp string

const (
	FollowUpToday    FollowUp = "today"
	FollowUpThisWeek FollowUp = "this_week"
	FollowUpOverdue  FollowUp = "overdue"
)

type Filter struct {
	Stage      Stage
	Source     Source
	AgentID    uuid.UUID
	Unassigned bool
	FollowUp   FollowUp
	Query      string
	Limit      int
	Offset     int
}

type Repository interface {
	WithTx(tx pgx.Tx) Repository

	Create(ctx context.Context, p *Prospect) (*Prospect, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Prospect, error)
	List(ctx context.Context, filter Filter) ([]Prospect, int64, error)
	Update(ctx context.Context, p *Prospect, currentVersion int) (*Prospect, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
