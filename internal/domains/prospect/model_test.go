package prospect

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStage_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from    Stage
		to      Stage
		allowed bool
	}{
		{StageNew, StageContacted, true},
		{StageNew, StageDeclined, true},
		{StageNew, StageEvaluating, false},
		{StageContacted, StageEvaluating, true},
		{StageContacted, StageNegotiating, false},
		{StageEvaluating, StageNegotiating, true},
		{StageNegotiating, StageConverted, true},
		{StageNegotiating, StageDeclined, true},
		{StageConverted, StageDeclined, false},
		{StageDeclined, StageNew, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestStage_Terminal(t *testing.T) {
	assert.True(t, StageConverted.Terminal())
	assert.True(t, StageDeclined.Terminal())
	assert.False(t, StageNew.Terminal())
	assert.False(t, StageNegotiating.Terminal())
}

func TestStage_Valid(t *testing.T) {
	assert.True(t, StageEvaluating.Valid())
	assert.False(t, Stage("signed").Valid())
}

func TestProspect_Active(t *testing.T) {
	p := Prospect{Stage: StageEvaluating}
	assert.True(t, p.Active())

	p.Stage = StageConverted
	assert.False(t, p.Active())

	p.Stage = StageDeclined
	assert.False(t, p.Active())
}

func TestProspect_DaysInCurrentStage(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	p := Prospect{Stage: StageNew}
	assert.Equal(t, 0, p.DaysInCurrentStage(now))

	changed := now.AddDate(0, 0, -10)
	p.StageChangedAt = &changed
	assert.Equal(t, 10, p.DaysInCurrentStage(now))
}

func TestProspect_TrackedFieldsRecordsStageAsStatus(t *testing.T) {
	p := Prospect{FirstName: "Nora", LastName: "Quinn", Stage: StageNegotiating}

	fields := p.TrackedFields()

	assert.Equal(t, "negotiating", fields["status"])
	_, hasStageKey := fields["stage"]
	assert.False(t, hasStageKey)
	_, hasStageChangedAt := fields["stage_changed_at"]
	assert.False(t, hasStageChangedAt)
}

func TestProspect_FullName(t *testing.T) {
	p := Prospect{FirstName: "Nora", LastName: "Quinn"}
	assert.Equal(t, "Nora Quinn", p.FullName())
}
