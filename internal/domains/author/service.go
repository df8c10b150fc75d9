package author

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the author business operations. Every mutation also feeds
// the audit trail, atomically with the change itself.
type Service interface {
	// Create validates and inserts a new author, recording a "created"
	// activity. Validation failures come back as validation.Errors.
	Create(ctx context.Context, req *CreateAuthorRequest) (*Author, error)

	// GetByID returns ErrAuthorNotFound when missing.
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)

	// List pages through authors (default limit 20, max 100).
	List(ctx context.Context, filter Filter) ([]Author, int64, error)

	// Update applies a partial update under optimistic locking and records
	// one activity per changed field (or a single status_changed record
	// when the status moved).
	Update(ctx context.Context, id uuid.UUID, req *UpdateAuthorRequest) (*Author, error)

	// Delete refuses with ErrAuthorHasBooks while books exist; otherwise
	// removes the author, its notes and representations, and leaves a
	// deletion record in the audit trail.
	Delete(ctx context.Context, id uuid.UUID) error
}
