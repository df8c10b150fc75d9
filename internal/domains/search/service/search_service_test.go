package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"publishing-crm/internal/domains/search"
)

// fakeSearchRepo serves canned hits per entity type and records which
// types were scanned.
type fakeSearchRepo struct {
	hits    map[string][]search.Hit
	scanned []string
}

func (f *fakeSearchRepo) Scan(ctx context.Context, entityType, query string, limit int) ([]search.Hit, error) {
	f.scanned = append(f.scanned, entityType)
	return f.hits[entityType], nil
}

func TestResults_BlankQueryReturnsEmpty(t *testing.T) {
	repo := &fakeSearchRepo{}
	svc := NewSearchService(repo)

	results, err := svc.Results(context.Background(), "   ", "", 0)

	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Empty(t, repo.scanned, "a blank query should not touch the database")
}

func TestResults_SortedByRelevance(t *testing.T) {
	repo := &fakeSearchRepo{hits: map[string][]search.Hit{
		"Author": {
			{ID: uuid.New(), Display: "Annotated Jane"},
			{ID: uuid.New(), Display: "Jane Doe"},
			{ID: uuid.New(), Display: "jane"},
		},
	}}
	svc := NewSearchService(repo)

	results, err := svc.Results(context.Background(), "jane", "Author", 0)

	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "jane", results[0].Display)           // exact
	assert.Equal(t, "Jane Doe", results[1].Display)       // prefix
	assert.Equal(t, "Annotated Jane", results[2].Display) // substring
}

func TestResults_TypeFilterScansOnlyThatType(t *testing.T) {
	repo := &fakeSearchRepo{hits: map[string][]search.Hit{
		"Book": {{ID: uuid.New(), Display: "The Midnight Draft"}},
	}}
	svc := NewSearchService(repo)

	results, err := svc.Results(context.Background(), "midnight", "Book", 0)

	require.NoError(t, err)
	assert.Equal(t, []string{"Book"}, repo.scanned)
	require.Len(t, results, 1)
	assert.Equal(t, "Book", results[0].Type)
	assert.Equal(t, "The <mark>Midnight</mark> Draft", results[0].Highlight)
}

func TestResults_NoTypeFilterScansAllTypes(t *testing.T) {
	repo := &fakeSearchRepo{}
	svc := NewSearchService(repo)

	_, err := svc.Results(context.Background(), "jane", "", 0)

	require.NoError(t, err)
	assert.Equal(t, search.EntityTypes, repo.scanned)
}

func TestResults_TruncatedToLimit(t *testing.T) {
	hits := make([]search.Hit, 5)
	for i := range hits {
		hits[i] = search.Hit{ID: uuid.New(), Display: "Jane Doe"}
	}
	repo := &fakeSearchRepo{hits: map[string][]search.Hit{"Author": hits}}
	svc := NewSearchService(repo)

	results, err := svc.Results(context.Background(), "jane", "Author", 3)

	require.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestGroupedResults(t *testing.T) {
	repo := &fakeSearchRepo{hits: map[string][]search.Hit{
		"Author": {{ID: uuid.New(), Display: "Jane Doe"}},
		"Book":   {{ID: uuid.New(), Display: "Jane's Almanac"}},
	}}
	svc := NewSearchService(repo)

	grouped, err := svc.GroupedResults(context.Background(), "jane", "", 0)

	require.NoError(t, err)
	assert.Len(t, grouped["Author"], 1)
	assert.Len(t, grouped["Book"], 1)
}
