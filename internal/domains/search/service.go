package search

import "context"

type Service interface {
	// Results returns a flat relevance-sorted result set. A blank query
	// yields an empty set.
	Results(ctx context.Context, query, entityType string, limit int) ([]Result, error)
	// GroupedResults buckets the same result set by entity type.
	GroupedResults(ctx context.Context, query, entityType string, limit int) (map[string][]Result, error)
}
