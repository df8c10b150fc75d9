package publisher

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	Create(ctx context.Context, req *CreatePublisherRequest) (*Publisher, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Publisher, error)
	List(ctx context.Context, filter Filter) ([]Publisher, int64, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdatePublisherRequest) (*Publisher, error)

	// Delete refuses with ErrPublisherHasDeals while any deal exists.
	Delete(ctx context.Context, id uuid.UUID) error
}
