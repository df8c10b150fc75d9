package agent

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestAgent_FullNameWithAgency(t *testing.T) {
	a := Agent{FirstName: "Maya", LastName: "Feld"}
	assert.Equal(t, "Maya Feld", a.FullNameWithAgency())

	a.AgencyName = strPtr("Feld Literary")
	assert.Equal(t, "Maya Feld (Feld Literary)", a.FullNameWithAgency())
}

func TestAgent_GenresList(t *testing.T) {
	a := Agent{GenresRepresented: strPtr("thriller, literary fiction ,memoir")}
	assert.Equal(t, []string{"thriller", "literary fiction", "memoir"}, a.GenresList())
}

func TestAgent_GenresList_Empty(t *testing.T) {
	a := Agent{}
	assert.Equal(t, []string{}, a.GenresList())

	a.GenresRepresented = strPtr("   ")
	assert.Equal(t, []string{}, a.GenresList())

	a.GenresRepresented = strPtr("thriller,,")
	assert.Equal(t, []string{"thriller"}, a.GenresList())
}

func TestAgent_CommissionFor(t *testing.T) {
	rate := decimal.RequireFromString("15")
	a := Agent{CommissionRate: &rate}

	got := a.CommissionFor(decimal.RequireFromString("100000"))
	assert.Equal(t, "15000.00", got.StringFixed(2))
}

func TestAgent_CommissionFor_NoRate(t *testing.T) {
	a := Agent{}
	assert.True(t, a.CommissionFor(decimal.RequireFromString("100000")).IsZero())
}
