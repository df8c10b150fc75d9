package agent

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	Create(ctx context.Context, req *CreateAgentRequest) (*Agent, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Agent, error)
	List(ctx context.Context, filter Filter) ([]Agent, int64, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateAgentRequest) (*Agent, error)

	// Delete always succeeds for existing agents: their deals and
	// prospects are detached rather than removed.
	Delete(ctx context.Context, id uuid.UUID) error
}
