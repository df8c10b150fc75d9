package prospect

import (
	"context"

	"github.com/google/uuid"

	"publishing-crm/internal/domains/author"
)

type Service interface {
	Create(ctx context.Context, req *CreateProspectRequest) (*Prospect, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Prospect, error)
	List(ctx context.Context, filter Filter) ([]Prospect, int64, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateProspectRequest) (*Prospect, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// TransitionTo moves the prospect along the pipeline. Illegal moves
	// come back as field-level validation errors and leave the prospect
	// untouched.
	TransitionTo(ctx context.Context, id uuid.UUID, stage Stage) (*Prospect, error)

	// ConvertToAuthor creates an Author from a negotiating prospect and
	// marks the prospect converted, atomically. Author validation
	// failures surface on the prospect and nothing is persisted.
	ConvertToAuthor(ctx context.Context, id uuid.UUID) (*author.Author, error)

	// Decline ends the pipeline with a mandatory reason.
	Decline(ctx context.Context, id uuid.UUID, reason string) (*Prospect, error)
}
