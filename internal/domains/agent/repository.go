package agent

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type Filter struct {
	Status Status
	Agency string
	Genre  string // matched against the comma-separated tag list
	Query  string
	Limit  int
	Offset int
}

type Repository interface {
	WithTx(tx pgx.Tx) Repository

	Create(ctx context.Context, a *Agent) (*Agent, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Agent, error)
	List(ctx context.Context, filter Filter) ([]Agent, int64, error)
	Update(ctx context.Context, a *Agent, currentVersion int) (*Agent, error)

	// Delete removes the agent. Deals and prospects referencing it are
	// nullified; its representations and notes are removed.
	Delete(ctx context.Context, id uuid.UUID) error

	EmailTaken(ctx context.Context, email string, excludeID uuid.UUID) (bool, error)
}
