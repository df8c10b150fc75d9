package note

import (
	"context"

	"github.com/google/uuid"
)

// Rendered is a note plus its sanitized HTML rendering and short preview.
type Rendered struct {
	Note
	RenderedContent string `json:"rendered_content"`
	Preview         string `json:"preview"`
}

type Service interface {
	Create(ctx context.Context, req *CreateNoteRequest) (*Note, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Rendered, error)
	List(ctx context.Context, filter Filter) ([]Rendered, int64, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateNoteRequest) (*Note, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
