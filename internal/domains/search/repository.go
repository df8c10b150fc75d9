package search

import "context"

// Repository reads match candidates per entity type. Search never writes.
type Repository interface {
	Scan(ctx context.Context, entityType, query string, limit int) ([]Hit, error)
}
