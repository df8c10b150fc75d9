package deal

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestStatus_Active(t *testing.T) {
	assert.True(t, StatusNegotiating.Active())
	assert.True(t, StatusPendingContract.Active())
	assert.True(t, StatusSigned.Active())
	assert.True(t, StatusActive.Active())
	assert.False(t, StatusCompleted.Active())
	assert.False(t, StatusTerminated.Active())
}

func TestDeal_AgentCommission(t *testing.T) {
	agentID := uuid.New()
	d := Deal{
		AgentID:       &agentID,
		AdvanceAmount: decPtr("125000"),
	}

	commission := d.AgentCommission(decimal.NewFromInt(15))
	assert.True(t, commission.Equal(decimal.RequireFromString("18750")),
		"got %s", commission)
}

func TestDeal_AgentCommission_ZeroWithoutAgent(t *testing.T) {
	d := Deal{AdvanceAmount: decPtr("125000")}
	assert.True(t, d.AgentCommission(decimal.NewFromInt(15)).IsZero())
}

func TestDeal_AgentCommission_ZeroWithoutAdvance(t *testing.T) {
	agentID := uuid.New()
	d := Deal{AgentID: &agentID}
	assert.True(t, d.AgentCommission(decimal.NewFromInt(15)).IsZero())
}

func TestDeal_AgentCommission_RoundsToCents(t *testing.T) {
	agentID := uuid.New()
	d := Deal{AgentID: &agentID, AdvanceAmount: decPtr("10001")}

	commission := d.AgentCommission(decimal.RequireFromString("12.5"))
	assert.Equal(t, "1250.13", commission.StringFixed(2))
}

func TestDeal_AuthorNetAdvance(t *testing.T) {
	agentID := uuid.New()
	d := Deal{AgentID: &agentID, AdvanceAmount: decPtr("100000")}

	net := d.AuthorNetAdvance(decimal.NewFromInt(15))
	assert.True(t, net.Equal(decimal.RequireFromString("85000")), "got %s", net)
}

func TestDeal_AuthorNetAdvance_FullWithoutAgent(t *testing.T) {
	d := Deal{AdvanceAmount: decPtr("100000")}

	net := d.AuthorNetAdvance(decimal.NewFromInt(15))
	assert.True(t, net.Equal(decimal.RequireFromString("100000")), "got %s", net)
}

func TestDeal_FormattedAdvance(t *testing.T) {
	tests := []struct {
		name     string
		amount   *decimal.Decimal
		currency string
		want     string
	}{
		{"USD with thousands", decPtr("125000"), "USD", "$125,000.00"},
		{"EUR", decPtr("50000"), "EUR", "€50,000.00"},
		{"GBP", decPtr("7500.50"), "GBP", "£7,500.50"},
		{"CAD", decPtr("1000000"), "CAD", "C$1,000,000.00"},
		{"unknown currency falls back to dollar", decPtr("100"), "JPY", "$100.00"},
		{"nil advance", nil, "USD", "$0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Deal{AdvanceAmount: tt.amount, AdvanceCurrency: tt.currency}
			assert.Equal(t, tt.want, d.FormattedAdvance())
		})
	}
}

func TestDeal_DaysToClose(t *testing.T) {
	d := Deal{
		OfferDate:    datePtr(2025, 3, 1),
		ContractDate: datePtr(2025, 3, 31),
	}

	days := d.DaysToClose()
	require.NotNil(t, days)
	assert.Equal(t, 30, *days)
}

func TestDeal_DaysToClose_NilUntilBothDatesKnown(t *testing.T) {
	d := Deal{OfferDate: datePtr(2025, 3, 1)}
	assert.Nil(t, d.DaysToClose())

	d = Deal{ContractDate: datePtr(2025, 3, 31)}
	assert.Nil(t, d.DaysToClose())
}

func TestGroupThousands(t *testing.T) {
	assert.Equal(t, "999", groupThousands("999"))
	assert.Equal(t, "1,000", groupThousands("1000"))
	assert.Equal(t, "1,000,000", groupThousands("1000000"))
	assert.Equal(t, "-25,000", groupThousands("-25000"))
}
