package activity

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Recorder writes the audit trail as a side effect of entity mutations.
// Every tracked domain service calls it from inside the mutation's
// transaction; a failed audit write fails the whole operation.
type Recorder interface {
	// WithTx returns a recorder whose writes run on tx.
	WithTx(tx pgx.Tx) Recorder

	// Created records that an entity was created.
	Created(ctx context.Context, trackableType string, id uuid.UUID) error

	// Updated diffs two field snapshots and records the result. A change
	// touching the status field yields a single status_changed record;
	// otherwise each changed field yields one updated record. No changes,
	// no records.
	Updated(ctx context.Context, trackableType string, id uuid.UUID, before, after map[string]string) error

	// Deleted purges the entity's prior activities and records the
	// deletion. The deletion record itself survives the entity.
	Deleted(ctx context.Context, trackableType string, id uuid.UUID) error

	// Event records a domain event such as note_added or deal_created.
	Event(ctx context.Context, trackableType string, id uuid.UUID, action Action, description string) error
}

// Service reads the activity feed for handlers.
type Service interface {
	ListForTrackable(ctx context.Context, trackableType string, trackableID uuid.UUID, limit int) ([]Activity, error)
	List(ctx context.Context, filter Filter) ([]Activity, int64, error)
}
