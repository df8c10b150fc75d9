package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"publishing-crm/internal/domains/dashboard"
	"publishing-crm/pkg/cache"
	"publishing-crm/pkg/logger"
)

const (
	overviewTTL  = 5 * time.Minute
	topRankLimit = 5
)

type dashboardService struct {
	repo  dashboard.Repository
	cache cache.Cache
	now   func() time.Time
}

func NewDashboardService(repo dashboard.Repository, c cache.Cache) dashboard.Service {
	return &dashboardService{
		repo:  repo,
		cache: c,
		now:   time.Now,
	}
}

func (s *dashboardService) Overview(ctx context.Context, period dashboard.Period) (*dashboard.Overview, error) {
	if !period.Valid() {
		period = dashboard.PeriodMonth
	}

	key := fmt.Sprintf("dashboard:overview:%s", period)
	var cached dashboard.Overview
	if found, err := s.cache.Get(ctx, key, &cached); err != nil {
		logger.Warn("dashboard cache read failed", err)
	} else if found {
		return &cached, nil
	}

	overview, err := s.build(ctx, period)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, overview, overviewTTL); err != nil {
		logger.Warn("dashboard cache write failed", err)
	}
	return overview, nil
}

func (s *dashboardService) MetricChange(ctx context.Context, metric dashboard.Metric, period dashboard.Period) (*dashboard.MetricChange, error) {
	if !metric.Valid() {
		return nil, fmt.Errorf("unknown metric %q", metric)
	}
	if !period.Valid() {
		return nil, fmt.Errorf("unknown period %q", period)
	}

	now := s.now()
	current, err := s.metricForRange(ctx, metric, period.CurrentRange(now))
	if err != nil {
		return nil, err
	}
	previous, err := s.metricForRange(ctx, metric, period.PreviousRange(now))
	if err != nil {
		return nil, err
	}

	change := dashboard.NewMetricChange(current, previous)
	return &change, nil
}

func (s *dashboardService) build(ctx context.Context, period dashboard.Period) (*dashboard.Overview, error) {
	now := s.now()
	current := period.CurrentRange(now)

	activeAuthors, err := s.repo.CountActiveAuthors(ctx)
	if err != nil {
		return nil, err
	}
	activeDeals, err := s.repo.CountActiveDeals(ctx)
	if err != nil {
		return nil, err
	}

	dealsCount, err := s.repo.DealsCount(ctx, current)
	if err != nil {
		return nil, err
	}
	totalAdvance, err := s.repo.AdvanceSum(ctx, current)
	if err != nil {
		return nil, err
	}
	averageDeal, err := s.repo.AdvanceAverage(ctx, current)
	if err != nil {
		return nil, err
	}

	total, converted, err := s.repo.ProspectCounts(ctx)
	if err != nil {
		return nil, err
	}
	conversionRate := 0.0
	if total > 0 {
		conversionRate = math.Round(float64(converted)/float64(total)*1000) / 10
	}

	dealsChange, err := s.MetricChange(ctx, dashboard.MetricDealsCount, period)
	if err != nil {
		return nil, err
	}
	advanceChange, err := s.MetricChange(ctx, dashboard.MetricTotalAdvance, period)
	if err != nil {
		return nil, err
	}

	booksByStatus, err := s.repo.BooksByStatus(ctx)
	if err != nil {
		return nil, err
	}
	dealsByStatus, err := s.repo.DealsByStatus(ctx)
	if err != nil {
		return nil, err
	}

	topPublishers, err := s.repo.TopPublishersByDealCount(ctx, topRankLimit)
	if err != nil {
		return nil, err
	}
	topAgents, err := s.repo.TopAgentsByDealCount(ctx, topRankLimit)
	if err != nil {
		return nil, err
	}

	return &dashboard.Overview{
		TotalActiveAuthors:     activeAuthors,
		TotalActiveDeals:       activeDeals,
		ProspectConversionRate: conversionRate,
		PeriodMetrics: dashboard.PeriodMetrics{
			Period:          period,
			DealsCount:      dealsCount,
			TotalAdvance:    totalAdvance,
			AverageDealSize: averageDeal,
		},
		DealsCountChange:   *dealsChange,
		TotalAdvanceChange: *advanceChange,
		BooksByStatus:      booksByStatus,
		DealsByStatus:      dealsByStatus,
		TopPublishers:      topPublishers,
		TopAgents:          topAgents,
	}, nil
}

func (s *dashboardService) metricForRange(ctx context.Context, metric dashboard.Metric, rng dashboard.Range) (int64, error) {
	switch metric {
	case dashboard.MetricDealsCount:
		return s.repo.DealsCount(ctx, rng)
	default:
		sum, err := s.repo.AdvanceSum(ctx, rng)
		if err != nil {
			return 0, err
		}
		return sum.IntPart(), nil
	}
}
