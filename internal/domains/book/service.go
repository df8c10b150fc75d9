package book

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	Create(ctx context.Context, req *CreateBookRequest) (*Book, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Book, error)
	List(ctx context.Context, filter Filter) ([]Book, int64, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateBookRequest) (*Book, error)

	// Delete refuses with ErrBookHasDeals while any active deal exists.
	Delete(ctx context.Context, id uuid.UUID) error
}
