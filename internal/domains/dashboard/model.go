package dashboard

import (
	"encoding/json"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Period selects the reporting window for deal metrics.
type Period string

const (
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
)

func (p Period) Valid() bool {
	return p == PeriodMonth || p == PeriodQuarter || p == PeriodYear
}

// Range is a half-open [Start, End) date window.
type Range struct {
	Start time.Time
	End   time.Time
}

// CurrentRange is the window containing now; PreviousRange the one just
// before it.
func (p Period) CurrentRange(now time.Time) Range {
	y, m, _ := now.Date()
	switch p {
	case PeriodMonth:
		start := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
		return Range{Start: start, End: start.AddDate(0, 1, 0)}
	case PeriodQuarter:
		qm := time.Month((int(m)-1)/3*3 + 1)
		start := time.Date(y, qm, 1, 0, 0, 0, 0, time.UTC)
		return Range{Start: start, End: start.AddDate(0, 3, 0)}
	default:
		start := time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
		return Range{Start: start, End: start.AddDate(1, 0, 0)}
	}
}

func (p Period) PreviousRange(now time.Time) Range {
	current := p.CurrentRange(now)
	switch p {
	case PeriodMonth:
		return Range{Start: current.Start.AddDate(0, -1, 0), End: current.Start}
	case PeriodQuarter:
		return Range{Start: current.Start.AddDate(0, -3, 0), End: current.Start}
	default:
		return Range{Start: current.Start.AddDate(-1, 0, 0), End: current.Start}
	}
}

// Metric names a countable dashboard series.
type Metric string

const (
	MetricDealsCount   Metric = "deals_count"
	MetricTotalAdvance Metric = "total_advance"
)

func (m Metric) Valid() bool {
	return m == MetricDealsCount || m == MetricTotalAdvance
}

// MetricChange compares a metric between the current and previous period.
// Percentage is +Inf when the previous period was zero and the current
// one is not; it serializes as null in that case.
type MetricChange struct {
	Current    int64   `json:"current"`
	Previous   int64   `json:"previous"`
	Difference int64   `json:"difference"`
	Percentage float64 `json:"-"`
}

func NewMetricChange(current, previous int64) MetricChange {
	change := MetricChange{
		Current:    current,
		Previous:   previous,
		Difference: current - previous,
	}
	switch {
	case previous == 0 && current == 0:
		change.Percentage = 0.0
	case previous == 0:
		change.Percentage = math.Inf(1)
	default:
		change.Percentage = math.Round(float64(change.Difference)/float64(previous)*1000) / 10
	}
	return change
}

func (c MetricChange) MarshalJSON() ([]byte, error) {
	type alias MetricChange
	out := struct {
		alias
		Percentage *float64 `json:"percentage"`
	}{alias: alias(c)}
	if !math.IsInf(c.Percentage, 0) {
		out.Percentage = &c.Percentage
	}
	return json.Marshal(out)
}

// UnmarshalJSON restores Percentage, which the json:"-" tag would
// otherwise drop on the cache read path. A null percentage only ever
// means +Inf.
func (c *MetricChange) UnmarshalJSON(data []byte) error {
	type alias MetricChange
	in := struct {
		*alias
		Percentage *float64 `json:"percentage"`
	}{alias: (*alias)(c)}
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	if in.Percentage == nil {
		c.Percentage = math.Inf(1)
	} else {
		c.Percentage = *in.Percentage
	}
	return nil
}

// PeriodMetrics are the deal rollups for one reporting window.
type PeriodMetrics struct {
	Period          Period          `json:"period"`
	DealsCount      int64           `json:"deals_count"`
	TotalAdvance    decimal.Decimal `json:"total_advance"`
	AverageDealSize decimal.Decimal `json:"average_deal_size"`
}

type TopPublisher struct {
	PublisherID uuid.UUID `json:"publisher_id"`
	Name        string    `json:"name"`
	DealCount   int64     `json:"deal_count"`
}

type TopAgent struct {
	AgentID   uuid.UUID `json:"agent_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	DealCount int64     `json:"deal_count"`
}

// Overview is the full dashboard payload.
type Overview struct {
	TotalActiveAuthors     int64            `json:"total_active_authors"`
	TotalActiveDeals       int64            `json:"total_active_deals"`
	ProspectConversionRate float64          `json:"prospect_conversion_rate"`
	PeriodMetrics          PeriodMetrics    `json:"period_metrics"`
	DealsCountChange       MetricChange     `json:"deals_count_change"`
	TotalAdvanceChange     MetricChange     `json:"total_advance_change"`
	BooksByStatus          map[string]int64 `json:"books_by_status"`
	DealsByStatus          map[string]int64 `json:"deals_by_status"`
	TopPublishers          []TopPublisher   `json:"top_publishers"`
	TopAgents              []TopAgent       `json:"top_agents"`
}
