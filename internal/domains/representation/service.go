package representation

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	Create(ctx context.Context, req *CreateRepresentationRequest) (*Representation, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Representation, error)
	List(ctx context.Context, filter Filter) ([]Representation, int64, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateRepresentationRequest) (*Representation, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// End marks the representation ended as of today. The primary flag
	// is left alone so the historical record survives.
	End(ctx context.Context, id uuid.UUID) (*Representation, error)
}
