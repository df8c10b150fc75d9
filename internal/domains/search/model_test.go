package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelevance(t *testing.T) {
	assert.Equal(t, 11.0, Relevance("Jane Doe", "jane doe"))
	assert.Equal(t, 6.0, Relevance("Jane Doe", "jane"))
	assert.Equal(t, 3.0, Relevance("Jane Doe", "doe"))
	assert.Equal(t, 1.0, Relevance("Jane Doe", "smith"))
}

func TestHighlight(t *testing.T) {
	assert.Equal(t, "<mark>Jane</mark> Doe", Highlight("Jane Doe", "jane"))
	assert.Equal(t, "J<mark>an</mark>e and S<mark>an</mark>dra", Highlight("Jane and Sandra", "an"))
	assert.Equal(t, "Jane Doe", Highlight("Jane Doe", "smith"))
}

func TestHighlight_EscapesRegexMetacharacters(t *testing.T) {
	assert.Equal(t, "Deal: <mark>Q+A</mark> Handbook", Highlight("Deal: Q+A Handbook", "q+a"))
}

func TestHighlight_BlankQueryLeavesDisplayAlone(t *testing.T) {
	assert.Equal(t, "Jane Doe", Highlight("Jane Doe", "   "))
}

func TestValidEntityType(t *testing.T) {
	assert.True(t, ValidEntityType("Author"))
	assert.True(t, ValidEntityType("Deal"))
	assert.False(t, ValidEntityType("author"))
	assert.False(t, ValidEntityType("Note"))
}
