package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"publishing-crm/internal/domains/note"
	"publishing-crm/internal/infrastructure/database"
)

type postgresRepository struct {
	db database.Querier
}

func NewPostgresRepository(db database.Querier) note.Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) WithTx(tx pgx.Tx) note.Repository {
	return &postgresRepository{db: tx}
}

const noteColumns = `id, notable_type, notable_id, content, pinned, created_at, updated_at`

// notableTables maps the polymorphic discriminator to its table.
var notableTables = map[string]string{
	"Author":    "authors",
	"Agent":     "agents",
	"Publisher": "publishers",
	"Book":      "books",
	"Deal":      "deals",
	"Prospect":  "prospects",
}

func (r *postgresRepository) Create(ctx context.Context, n *note.Note) (*note.Note, error) {
	query := `
        INSERT INTO notes (notable_type, notable_id, content, pinned)
        VALUES ($1, $2, $3, $4)
        RETURNING ` + noteColumns

	created, err := scanNote(r.db.QueryRow(ctx, query, n.NotableType, n.NotableID, n.Content, n.Pinned))
	if err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*note.Note, error) {
	n, err := scanNote(r.db.QueryRow(ctx, `SELECT `+noteColumns+` FROM notes WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, note.ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	return n, nil
}

func (r *postgresRepository) List(ctx context.Context, filter note.Filter) ([]note.Note, int64, error) {
	where := "TRUE"
	args := []any{}
	arg := 0

	next := func(v any) string {
		arg++
		args = append(args, v)
		return fmt.Sprintf("$%d", arg)
	}

	if filter.NotableType != "" {
		where += " AND notable_type = " + next(filter.NotableType)
	}
	if filter.NotableID != uuid.Nil {
		where += " AND notable_id = " + next(filter.NotableID)
	}
	if filter.Pinned != nil {
		where += " AND pinned = " + next(*filter.Pinned)
	}

	var total int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM notes WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count notes: %w", err)
	}

	query := "SELECT " + noteColumns + " FROM notes WHERE " + where +
		" ORDER BY pinned DESC, created_at DESC LIMIT " + next(filter.Limit) + " OFFSET " + next(filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	var notes []note.Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read notes: %w", err)
	}
	return notes, total, nil
}

func (r *postgresRepository) Update(ctx context.Context, n *note.Note) (*note.Note, error) {
	query := `
        UPDATE notes
        SET content = $1, pinned = $2, updated_at = now()
        WHERE id = $3
        RETURNING ` + noteColumns

	updated, err := scanNote(r.db.QueryRow(ctx, query, n.Content, n.Pinned, n.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, note.ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to update note: %w", err)
	}
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return note.ErrNoteNotFound
	}
	return nil
}

func (r *postgresRepository) NotableExists(ctx context.Context, notableType string, notableID uuid.UUID) (bool, error) {
	table, ok := notableTables[notableType]
	if !ok {
		return false, note.ErrInvalidNotableType
	}

	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM `+table+` WHERE id = $1)`, notableID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check notable: %w", err)
	}
	return exists, nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanNote(row scannable) (*note.Note, error) {
	var n note.Note
	err := row.Scan(
		&n.ID, &n.NotableType, &n.NotableID, &n.Content, &n.Pinned,
		&n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
