package dashboard

import (
	"context"

	"github.com/shopspring/decimal"
)

// Repository is the read-only aggregate layer behind the dashboard.
type Repository interface {
	CountActiveAuthors(ctx context.Context) (int64, error)
	CountActiveDeals(ctx context.Context) (int64, error)

	// Deal rollups over an offer-date window.
	DealsCount(ctx context.Context, r Range) (int64, error)
	AdvanceSum(ctx context.Context, r Range) (decimal.Decimal, error)
	AdvanceAverage(ctx context.Context, r Range) (decimal.Decimal, error)

	ProspectCounts(ctx context.Context) (total, converted int64, err error)

	BooksByStatus(ctx context.Context) (map[string]int64, error)
	DealsByStatus(ctx context.Context) (map[string]int64, error)

	TopPublishersByDealCount(ctx context.Context, limit int) ([]TopPublisher, error)
	TopAgentsByDealCount(ctx context.Context, limit int) ([]TopAgent, error)
}
