package publisher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestPublisher_DisplayName(t *testing.T) {
	p := Publisher{Name: "Penguin Random House"}
	assert.Equal(t, "Penguin Random House", p.DisplayName())

	p.Imprint = strPtr("Riverhead Books")
	assert.Equal(t, "Penguin Random House (Riverhead Books)", p.DisplayName())

	p.Imprint = strPtr("")
	assert.Equal(t, "Penguin Random House", p.DisplayName())
}

func TestPublisher_BigFive(t *testing.T) {
	p := Publisher{Size: SizeBigFive}
	assert.True(t, p.BigFive())

	p.Size = SizeIndie
	assert.False(t, p.BigFive())
}

func TestPublisher_FullAddress(t *testing.T) {
	p := Publisher{
		Name:         "Harborlight Press",
		AddressLine1: strPtr("1745 Broadway"),
		AddressLine2: strPtr("Floor 12"),
		City:         strPtr("New York"),
		State:        strPtr("NY"),
		PostalCode:   strPtr("10019"),
		Country:      strPtr("USA"),
	}

	assert.Equal(t, "1745 Broadway\nFloor 12\nNew York, NY 10019\nUSA", p.FullAddress())
}

func TestPublisher_FullAddress_PartialParts(t *testing.T) {
	p := Publisher{
		AddressLine1: strPtr("1745 Broadway"),
		City:         strPtr("New York"),
	}
	assert.Equal(t, "1745 Broadway\nNew York", p.FullAddress())

	p = Publisher{
		AddressLine1: strPtr("1745 Broadway"),
		State:        strPtr("NY"),
		PostalCode:   strPtr("10019"),
	}
	assert.Equal(t, "1745 Broadway\nNY 10019", p.FullAddress())
}

func TestPublisher_FullAddress_EmptyWithoutFirstLine(t *testing.T) {
	p := Publisher{City: strPtr("New York"), Country: strPtr("USA")}
	assert.Equal(t, "", p.FullAddress())
}
