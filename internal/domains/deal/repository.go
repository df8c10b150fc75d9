package deal

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type Filter struct {
	Status      Status
	DealType    Type
	BookID      uuid.UUID
	PublisherID uuid.UUID
	AgentID     uuid.UUID
	Limit       int
	Offset      int
}

type Repository interface {
	WithTx(tx pgx.Tx) Repository

	// Create inserts the deal and bumps the publisher's deals_count.
	Create(ctx context.Context, d *Deal) (*Deal, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Deal, error)
	List(ctx context.Context, filter Filter) ([]Deal, int64, error)
	Update(ctx context.Context, d *Deal, currentVersion int) (*Deal, error)
	// Delete removes the deal and its notes and decrements the
	// publisher's deals_count.
	Delete(ctx context.Context, id uuid.UUID) error

	// PairExists reports whether another deal already links the same
	// book and publisher.
	PairExists(ctx context.Context, bookID, publisherID, excludeID uuid.UUID) (bool, error)
	// AgentCommissionRate looks up the brokering agent's rate (percent).
	AgentCommissionRate(ctx context.Context, agentID uuid.UUID) (decimal.Decimal, error)
}
