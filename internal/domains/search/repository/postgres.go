package repository

import (
	"context"
	"fmt"

	"publishing-crm/internal/domains/search"
	"publishing-crm/internal/infrastructure/database"
)

type postgresRepository struct {
	db database.Querier
}

func NewPostgresRepository(db database.Querier) search.Repository {
	return &postgresRepository{db: db}
}

// Each query matches the type's searchable columns and builds the display
// string the scorer and highlighter work against.
var scanQueries = map[string]string{
	"Author": `
        SELECT id, first_name || ' ' || last_name
        FROM authors
        WHERE first_name ILIKE $1 OR last_name ILIKE $1 OR email ILIKE $1
        LIMIT $2`,
	"Publisher": `
        SELECT id, name
        FROM publishers
        WHERE name ILIKE $1
        LIMIT $2`,
	"Agent": `
        SELECT id, first_name || ' ' || last_name || ' (' || COALESCE(agency_name, '') || ')'
        FROM agents
        WHERE first_name ILIKE $1 OR last_name ILIKE $1 OR agency_name ILIKE $1
        LIMIT $2`,
	"Prospect": `
        SELECT id, first_name || ' ' || last_name || ' - ' || COALESCE(project_title, '')
        FROM prospects
        WHERE first_name ILIKE $1 OR last_name ILIKE $1 OR project_title ILIKE $1
        LIMIT $2`,
	"Book": `
        SELECT b.id, b.title || CASE WHEN b.isbn IS NOT NULL AND b.isbn <> '' THEN ' (' || b.isbn || ')' ELSE '' END
        FROM books b
        LEFT JOIN authors a ON a.id = b.author_id
        WHERE b.title ILIKE $1 OR b.isbn ILIKE $1 OR a.first_name ILIKE $1 OR a.last_name ILIKE $1
        LIMIT $2`,
	"Deal": `
        SELECT d.id, 'Deal: ' || COALESCE(b.title, '')
        FROM deals d
        LEFT JOIN books b ON b.id = d.book_id
        LEFT JOIN authors a ON a.id = b.author_id
        WHERE b.title ILIKE $1 OR a.first_name ILIKE $1 OR a.last_name ILIKE $1
        LIMIT $2`,
}

func (r *postgresRepository) Scan(ctx context.Context, entityType, query string, limit int) ([]search.Hit, error) {
	sql, ok := scanQueries[entityType]
	if !ok {
		return nil, fmt.Errorf("unknown entity type %q", entityType)
	}

	rows, err := r.db.Query(ctx, sql, "%"+query+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", entityType, err)
	}
	defer rows.Close()

	var hits []search.Hit
	for rows.Next() {
		var h search.Hit
		if err := rows.Scan(&h.ID, &h.Display); err != nil {
			return nil, fmt.Errorf("failed to scan %s hit: %w", entityType, err)
		}
		hits = append(hits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s hits: %w", entityType, err)
	}
	return hits, nil
}
