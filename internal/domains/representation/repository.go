package representation

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type Filter struct {
	AuthorID uuid.UUID
	AgentID  uuid.UUID
	Status   Status
	Limit    int
	Offset   int
}

type Repository interface {
	WithTx(tx pgx.Tx) Repository

	// Create inserts the row and bumps the agent's representations_count.
	Create(ctx context.Context, r *Representation) (*Representation, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Representation, error)
	List(ctx context.Context, filter Filter) ([]Representation, int64, error)
	Update(ctx context.Context, r *Representation, currentVersion int) (*Representation, error)
	// Delete removes the row and decrements the agent's count.
	Delete(ctx context.Context, id uuid.UUID) error

	// UnsetOtherPrimaries clears the primary flag on every other
	// representation of the same author.
	UnsetOtherPrimaries(ctx context.Context, authorID, excludeID uuid.UUID) error
	PairExists(ctx context.Context, authorID, agentID, excludeID uuid.UUID) (bool, error)
}
