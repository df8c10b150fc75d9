package publisher

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type Filter struct {
	Status Status
	Size   Size
	Query  string
	Limit  int
	Offset int
}

type Repository interface {
	WithTx(tx pgx.Tx) Repository

	Create(ctx context.Context, p *Publisher) (*Publisher, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Publisher, error)
	List(ctx context.Context, filter Filter) ([]Publisher, int64, error)
	Update(ctx context.Context, p *Publisher, currentVersion int) (*Publisher, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// DealCount drives the restrict-delete rule.
	DealCount(ctx context.Context, id uuid.UUID) (int, error)
}
