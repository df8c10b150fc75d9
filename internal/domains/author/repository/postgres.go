package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"publishing-crm/internal/domains/author"
	"publishing-crm/internal/infrastructure/database"
)

type postgresRepository struct {
	db database.Querier
}

func NewPostgresRepository(db database.Querier) author.Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) WithTx(tx pgx.Tx) author.Repository {
	return &postgresRepository{db: tx}
}

const authorColumns = `id, first_name, last_name, email, phone, status, genre_focus, bio, website, date_of_birth, notes, books_count, version, created_at, updated_at`

func (r *postgresRepository) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
        INSERT INTO authors (first_name, last_name, email, phone, status, genre_focus, bio, website, date_of_birth, notes)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING ` + authorColumns

	row := r.db.QueryRow(ctx, query,
		a.FirstName, a.LastName, a.Email, a.Phone, a.Status,
		a.GenreFocus, a.Bio, a.Website, a.DateOfBirth, a.Notes,
	)

	created, err := scanAuthor(row)
	if err != nil {
		if database.IsUniqueViolation(err, "email") {
			return nil, author.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create author: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	query := `SELECT ` + authorColumns + ` FROM authors WHERE id = $1`

	a, err := scanAuthor(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author: %w", err)
	}
	return a, nil
}

func (r *postgresRepository) List(ctx context.Context, filter author.Filter) ([]author.Author, int64, error) {
	where := "TRUE"
	args := []any{}
	arg := 0

	next := func(v any) string {
		arg++
		args = append(args, v)
		return fmt.Sprintf("$%d", arg)
	}

	if filter.Status != "" {
		where += " AND status = " + next(string(filter.Status))
	}
	if filter.Genre != "" {
		where += " AND genre_focus = " + next(filter.Genre)
	}
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		p := next(pattern)
		where += fmt.Sprintf(" AND (first_name ILIKE %s OR last_name ILIKE %s OR email ILIKE %s)", p, p, p)
	}

	var total int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM authors WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count authors: %w", err)
	}

	query := "SELECT " + authorColumns + " FROM authors WHERE " + where +
		" ORDER BY last_name, first_name LIMIT " + next(filter.Limit) + " OFFSET " + next(filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list authors: %w", err)
	}
	defer rows.Close()

	var authors []author.Author
	for rows.Next() {
		a, err := scanAuthorRow(rows)
		if err != nil {
			return nil, 0, err
		}
		authors = append(authors, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read authors: %w", err)
	}
	return authors, total, nil
}

func (r *postgresRepository) Update(ctx context.Context, a *author.Author, currentVersion int) (*author.Author, error) {
	query := `
        UPDATE authors
        SET first_name = $1, last_name = $2, email = $3, phone = $4, status = $5,
            genre_focus = $6, bio = $7, website = $8, date_of_birth = $9, notes = $10,
            version = version + 1, updated_at = now()
        WHERE id = $11 AND version = $12
        RETURNING ` + authorColumns

	row := r.db.QueryRow(ctx, query,
		a.FirstName, a.LastName, a.Email, a.Phone, a.Status,
		a.GenreFocus, a.Bio, a.Website, a.DateOfBirth, a.Notes,
		a.ID, currentVersion,
	)

	updated, err := scanAuthor(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Either the row is gone or someone updated it first.
			if _, getErr := r.GetByID(ctx, a.ID); getErr != nil {
				return nil, getErr
			}
			return nil, author.ErrStaleWrite
		}
		if database.IsUniqueViolation(err, "email") {
			return nil, author.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to update author: %w", err)
	}
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Notes and representations go with the author; activities are handled
	// by the audit recorder before this runs.
	if _, err := r.db.Exec(ctx, `DELETE FROM notes WHERE notable_type = 'Author' AND notable_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete author notes: %w", err)
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM representations WHERE author_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete author representations: %w", err)
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return author.ErrAuthorNotFound
	}
	return nil
}

func (r *postgresRepository) BookCount(ctx context.Context, id uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM books WHERE author_id = $1`, id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count books: %w", err)
	}
	return count, nil
}

func (r *postgresRepository) EmailTaken(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	var taken bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM authors WHERE email = $1 AND id <> $2)`,
		email, excludeID,
	).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return taken, nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanAuthor(row scannable) (*author.Author, error) {
	var a author.Author
	err := row.Scan(
		&a.ID, &a.FirstName, &a.LastName, &a.Email, &a.Phone, &a.Status,
		&a.GenreFocus, &a.Bio, &a.Website, &a.DateOfBirth, &a.Notes,
		&a.BooksCount, &a.Version, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func scanAuthorRow(rows pgx.Rows) (*author.Author, error) {
	a, err := scanAuthor(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan author: %w", err)
	}
	return a, nil
}
