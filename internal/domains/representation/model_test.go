package representation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestRepresentation_Current(t *testing.T) {
	r := Representation{Status: StatusActive}
	assert.True(t, r.Current())

	r.Status = StatusEnded
	assert.False(t, r.Current())
}

func TestRepresentation_DurationInDays_Ended(t *testing.T) {
	r := Representation{
		StartDate: datePtr(2024, 1, 1),
		EndDate:   datePtr(2024, 3, 1),
	}

	days := r.DurationInDays(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NotNil(t, days)
	assert.Equal(t, 60, *days)
}

func TestRepresentation_DurationInDays_StillActiveCountsToToday(t *testing.T) {
	now := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	r := Representation{StartDate: datePtr(2025, 1, 1)}

	days := r.DurationInDays(now)
	require.NotNil(t, days)
	assert.Equal(t, 31, *days)
}

func TestRepresentation_DurationInDays_NilWithoutStart(t *testing.T) {
	r := Representation{}
	assert.Nil(t, r.DurationInDays(time.Now()))
}
