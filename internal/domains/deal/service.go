package deal

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Economics is a deal's derived money breakdown, computed against the
// brokering agent's commission rate at read time.
type Economics struct {
	AdvanceAmount    decimal.Decimal `json:"advance_amount"`
	FormattedAdvance string          `json:"formatted_advance"`
	AgentCommission  decimal.Decimal `json:"agent_commission"`
	AuthorNetAdvance decimal.Decimal `json:"author_net_advance"`
	DaysToClose      *int            `json:"days_to_close"`
}

type Service interface {
	Create(ctx context.Context, req *CreateDealRequest) (*Deal, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Deal, error)
	List(ctx context.Context, filter Filter) ([]Deal, int64, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateDealRequest) (*Deal, error)
	Delete(ctx context.Context, id uuid.UUID) error

	Economics(ctx context.Context, id uuid.UUID) (*Economics, error)
}
