package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"publishing-crm/internal/domains/dashboard"
)

type fakeDashboardRepo struct {
	activeAuthors int64
	activeDeals   int64
	dealsByRange  map[dashboard.Range]int64
	advanceSum    decimal.Decimal
	prospects     int64
	converted     int64
	calls         int
}

func (f *fakeDashboardRepo) CountActiveAuthors(ctx context.Context) (int64, error) {
	f.calls++
	return f.activeAuthors, nil
}

func (f *fakeDashboardRepo) CountActiveDeals(ctx context.Context) (int64, error) {
	return f.activeDeals, nil
}

func (f *fakeDashboardRepo) DealsCount(ctx context.Context, r dashboard.Range) (int64, error) {
	return f.dealsByRange[r], nil
}

func (f *fakeDashboardRepo) AdvanceSum(ctx context.Context, r dashboard.Range) (decimal.Decimal, error) {
	return f.advanceSum, nil
}

func (f *fakeDashboardRepo) AdvanceAverage(ctx context.Context, r dashboard.Range) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (f *fakeDashboardRepo) ProspectCounts(ctx context.Context) (int64, int64, error) {
	return f.prospects, f.converted, nil
}

func (f *fakeDashboardRepo) BooksByStatus(ctx context.Context) (map[string]int64, error) {
	return map[string]int64{}, nil
}

func (f *fakeDashboardRepo) DealsByStatus(ctx context.Context) (map[string]int64, error) {
	return map[string]int64{}, nil
}

func (f *fakeDashboardRepo) TopPublishersByDealCount(ctx context.Context, limit int) ([]dashboard.TopPublisher, error) {
	return nil, nil
}

func (f *fakeDashboardRepo) TopAgentsByDealCount(ctx context.Context, limit int) ([]dashboard.TopAgent, error) {
	return nil, nil
}

// memoryCache is a map-backed stand-in for the redis cache.
type memoryCache struct {
	entries map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}}
}

func (m *memoryCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, ok := m.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (m *memoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[key] = raw
	return nil
}

func (m *memoryCache) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.entries, k)
	}
	return nil
}

func (m *memoryCache) DeletePattern(ctx context.Context, pattern string) error { return nil }

func (m *memoryCache) Ping(ctx context.Context) error { return nil }

func TestOverview_ComputesConversionRate(t *testing.T) {
	repo := &fakeDashboardRepo{
		activeAuthors: 12,
		activeDeals:   5,
		prospects:     9,
		converted:     3,
		advanceSum:    decimal.Zero,
	}
	svc := NewDashboardService(repo, newMemoryCache())

	overview, err := svc.Overview(context.Background(), dashboard.PeriodMonth)

	require.NoError(t, err)
	assert.Equal(t, int64(12), overview.TotalActiveAuthors)
	assert.Equal(t, int64(5), overview.TotalActiveDeals)
	// 3/9 = 33.33...% rounds to 33.3
	assert.Equal(t, 33.3, overview.ProspectConversionRate)
}

func TestOverview_ZeroProspectsMeansZeroRate(t *testing.T) {
	repo := &fakeDashboardRepo{advanceSum: decimal.Zero}
	svc := NewDashboardService(repo, newMemoryCache())

	overview, err := svc.Overview(context.Background(), dashboard.PeriodMonth)

	require.NoError(t, err)
	assert.Equal(t, 0.0, overview.ProspectConversionRate)
}

func TestOverview_SecondCallServedFromCache(t *testing.T) {
	repo := &fakeDashboardRepo{activeAuthors: 2, advanceSum: decimal.Zero}
	svc := NewDashboardService(repo, newMemoryCache())

	_, err := svc.Overview(context.Background(), dashboard.PeriodMonth)
	require.NoError(t, err)
	callsAfterFirst := repo.calls

	_, err = svc.Overview(context.Background(), dashboard.PeriodMonth)
	require.NoError(t, err)

	assert.Equal(t, callsAfterFirst, repo.calls, "cached overview should not hit the repository")
}

func TestOverview_CacheKeepsMetricChangePercentage(t *testing.T) {
	now := time.Now()
	repo := &fakeDashboardRepo{
		advanceSum: decimal.Zero,
		dealsByRange: map[dashboard.Range]int64{
			dashboard.PeriodMonth.CurrentRange(now):  9,
			dashboard.PeriodMonth.PreviousRange(now): 8,
		},
	}
	svc := NewDashboardService(repo, newMemoryCache())

	fresh, err := svc.Overview(context.Background(), dashboard.PeriodMonth)
	require.NoError(t, err)
	require.Equal(t, 12.5, fresh.DealsCountChange.Percentage)

	cached, err := svc.Overview(context.Background(), dashboard.PeriodMonth)
	require.NoError(t, err)
	assert.Equal(t, fresh.DealsCountChange, cached.DealsCountChange)
}

func TestOverview_InvalidPeriodFallsBackToMonth(t *testing.T) {
	repo := &fakeDashboardRepo{advanceSum: decimal.Zero}
	svc := NewDashboardService(repo, newMemoryCache())

	overview, err := svc.Overview(context.Background(), dashboard.Period("fortnight"))

	require.NoError(t, err)
	assert.Equal(t, dashboard.PeriodMonth, overview.PeriodMetrics.Period)
}

func TestMetricChange_DealsCount(t *testing.T) {
	now := time.Now()
	repo := &fakeDashboardRepo{
		advanceSum: decimal.Zero,
		dealsByRange: map[dashboard.Range]int64{
			dashboard.PeriodMonth.CurrentRange(now):  10,
			dashboard.PeriodMonth.PreviousRange(now): 8,
		},
	}
	svc := NewDashboardService(repo, newMemoryCache())

	change, err := svc.MetricChange(context.Background(), dashboard.MetricDealsCount, dashboard.PeriodMonth)

	require.NoError(t, err)
	assert.Equal(t, int64(10), change.Current)
	assert.Equal(t, int64(8), change.Previous)
	assert.Equal(t, 25.0, change.Percentage)
}

func TestMetricChange_RejectsUnknownMetric(t *testing.T) {
	svc := NewDashboardService(&fakeDashboardRepo{}, newMemoryCache())

	_, err := svc.MetricChange(context.Background(), dashboard.Metric("revenue"), dashboard.PeriodMonth)

	assert.Error(t, err)
}
