package dashboard

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetricChange(t *testing.T) {
	change := NewMetricChange(12, 8)

	assert.Equal(t, int64(12), change.Current)
	assert.Equal(t, int64(8), change.Previous)
	assert.Equal(t, int64(4), change.Difference)
	assert.Equal(t, 50.0, change.Percentage)
}

func TestNewMetricChange_RoundsToOneDecimal(t *testing.T) {
	change := NewMetricChange(10, 3)
	// 7/3 = 233.33...% rounds to 233.3
	assert.Equal(t, 233.3, change.Percentage)
}

func TestNewMetricChange_Negative(t *testing.T) {
	change := NewMetricChange(5, 10)

	assert.Equal(t, int64(-5), change.Difference)
	assert.Equal(t, -50.0, change.Percentage)
}

func TestNewMetricChange_BothZero(t *testing.T) {
	change := NewMetricChange(0, 0)
	assert.Equal(t, 0.0, change.Percentage)
}

func TestNewMetricChange_PreviousZeroIsInfinite(t *testing.T) {
	change := NewMetricChange(7, 0)
	assert.True(t, math.IsInf(change.Percentage, 1))
}

func TestMetricChange_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(NewMetricChange(12, 8))
	require.NoError(t, err)
	assert.JSONEq(t, `{"current":12,"previous":8,"difference":4,"percentage":50}`, string(out))
}

func TestMetricChange_MarshalJSON_InfinitePercentageIsNull(t *testing.T) {
	out, err := json.Marshal(NewMetricChange(7, 0))
	require.NoError(t, err)
	assert.JSONEq(t, `{"current":7,"previous":0,"difference":7,"percentage":null}`, string(out))
}

func TestMetricChange_RoundTripKeepsPercentage(t *testing.T) {
	out, err := json.Marshal(NewMetricChange(9, 8))
	require.NoError(t, err)

	var got MetricChange
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, NewMetricChange(9, 8), got)
	assert.Equal(t, 12.5, got.Percentage)
}

func TestMetricChange_RoundTripKeepsInfinitePercentage(t *testing.T) {
	out, err := json.Marshal(NewMetricChange(7, 0))
	require.NoError(t, err)

	var got MetricChange
	require.NoError(t, json.Unmarshal(out, &got))
	assert.True(t, math.IsInf(got.Percentage, 1))
	assert.Equal(t, int64(7), got.Current)
}

func TestPeriod_CurrentRange_Month(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

	r := PeriodMonth.CurrentRange(now)

	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), r.End)
}

func TestPeriod_CurrentRange_Quarter(t *testing.T) {
	now := time.Date(2025, 8, 2, 0, 0, 0, 0, time.UTC)

	r := PeriodQuarter.CurrentRange(now)

	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), r.End)
}

func TestPeriod_CurrentRange_Year(t *testing.T) {
	now := time.Date(2025, 8, 2, 0, 0, 0, 0, time.UTC)

	r := PeriodYear.CurrentRange(now)

	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), r.End)
}

func TestPeriod_PreviousRange(t *testing.T) {
	now := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	r := PeriodMonth.PreviousRange(now)
	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), r.End)

	r = PeriodQuarter.PreviousRange(now)
	assert.Equal(t, time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC), r.Start)

	r = PeriodYear.PreviousRange(now)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), r.Start)
}

func TestPeriod_Valid(t *testing.T) {
	assert.True(t, PeriodMonth.Valid())
	assert.True(t, PeriodQuarter.Valid())
	assert.True(t, PeriodYear.Valid())
	assert.False(t, Period("week").Valid())
}
