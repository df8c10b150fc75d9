package note

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type Filter struct {
	NotableType string
	NotableID   uuid.UUID
	Pinned      *bool
	Limit       int
	Offset      int
}

type Repository interface {
	WithTx(tx pgx.Tx) Repository

	Create(ctx context.Context, n *Note) (*Note, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Note, error)
	// List orders pinned notes first, newest first within each group.
	List(ctx context.Context, filter Filter) ([]Note, int64, error)
	Update(ctx context.Context, n *Note) (*Note, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// NotableExists dispatches on the type discriminator to the right
	// table.
	NotableExists(ctx context.Context, notableType string, notableID uuid.UUID) (bool, error)
}
