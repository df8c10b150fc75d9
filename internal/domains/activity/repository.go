package activity

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Filter narrows the activity feed.
type Filter struct {
	TrackableType string
	Action        Action
	From          *time.Time
	To            *time.Time
	Limit         int
	Offset        int
}

// Repository defines data access for Activity records. Activities are
// append-only: there is no update operation.
type Repository interface {
	// WithTx returns a copy of the repository bound to tx, so activity
	// writes commit atomically with the mutation that caused them.
	WithTx(tx pgx.Tx) Repository

	// Create appends one activity record.
	Create(ctx context.Context, a *Activity) (*Activity, error)

	// ListForTrackable returns activities for one entity, newest first.
	ListForTrackable(ctx context.Context, trackableType string, trackableID uuid.UUID, limit int) ([]Activity, error)

	// List returns the filtered activity feed, newest first, with total count.
	List(ctx context.Context, filter Filter) ([]Activity, int64, error)

	// DeleteForTrackable removes all activities belonging to an entity.
	// Called when the subject is deleted, before the deletion record is
	// written.
	DeleteForTrackable(ctx context.Context, trackableType string, trackableID uuid.UUID) error
}
