package dashboard

import "context"

type Service interface {
	// Overview assembles the dashboard for the given period, serving
	// from cache when fresh.
	Overview(ctx context.Context, period Period) (*Overview, error)

	// MetricChange compares one metric between the current and previous
	// period.
	MetricChange(ctx context.Context, metric Metric, period Period) (*MetricChange, error)
}
