package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"publishing-crm/internal/domains/book"
	"publishing-crm/internal/infrastructure/database"
)

type postgresRepository struct {
	db database.Querier
}

func NewPostgresRepository(db database.Querier) book.Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) WithTx(tx pgx.Tx) book.Repository {
	return &postgresRepository{db: tx}
}

const bookColumns = `id, author_id, title, subtitle, genre, subgenre, status, format, isbn, description, synopsis, word_count, page_count, list_price, publication_date, cover_image_url, notes, version, created_at, updated_at`

func (r *postgresRepository) Create(ctx context.Context, b *book.Book) (*book.Book, error) {
	query := `
        INSERT INTO books (author_id, title, subtitle, genre, subgenre, status, format, isbn,
                           description, synopsis, word_count, page_count, list_price,
                           publication_date, cover_image_url, notes)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
        RETURNING ` + bookColumns

	row := r.db.QueryRow(ctx, query,
		b.AuthorID, b.Title, b.Subtitle, b.Genre, b.Subgenre, b.Status, b.Format, b.ISBN,
		b.Description, b.Synopsis, b.WordCount, b.PageCount, b.ListPrice,
		b.PublicationDate, b.CoverImageURL, b.Notes,
	)

	created, err := scanBook(row)
	if err != nil {
		if database.IsUniqueViolation(err, "isbn") {
			return nil, book.ErrDuplicateISBN
		}
		if database.IsForeignKeyViolation(err) {
			return nil, book.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	if _, err := r.db.Exec(ctx, `UPDATE authors SET books_count = books_count + 1 WHERE id = $1`, created.AuthorID); err != nil {
		return nil, fmt.Errorf("failed to bump author books_count: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	b, err := scanBook(r.db.QueryRow(ctx, `SELECT `+bookColumns+` FROM books WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book: %w", err)
	}
	return b, nil
}

func (r *postgresRepository) List(ctx context.Context, filter book.Filter) ([]book.Book, int64, error) {
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
		where += " AND genre = " + next(filter.Genre)
	}
	if filter.AuthorID != uuid.Nil {
		where += " AND author_id = " + next(filter.AuthorID)
	}
	if filter.Query != "" {
		q := next("%" + filter.Query + "%")
		where += " AND (title ILIKE " + q + " OR isbn ILIKE " + q + ")"
	}

	var total int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM books WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count books: %w", err)
	}

	query := "SELECT " + bookColumns + " FROM books WHERE " + where +
		" ORDER BY title LIMIT " + next(filter.Limit) + " OFFSET " + next(filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	var books []book.Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read books: %w", err)
	}
	return books, total, nil
}

func (r *postgresRepository) Update(ctx context.Context, b *book.Book, currentVersion int) (*book.Book, error) {
	query := `
        UPDATE books
        SET author_id = $1, title = $2, subtitle = $3, genre = $4, subgenre = $5, status = $6,
            format = $7, isbn = $8, description = $9, synopsis = $10, word_count = $11,
            page_count = $12, list_price = $13, publication_date = $14, cover_image_url = $15,
            notes = $16, version = version + 1, updated_at = now()
        WHERE id = $17 AND version = $18
        RETURNING ` + bookColumns

	row := r.db.QueryRow(ctx, query,
		b.AuthorID, b.Title, b.Subtitle, b.Genre, b.Subgenre, b.Status,
		b.Format, b.ISBN, b.Description, b.Synopsis, b.WordCount,
		b.PageCount, b.ListPrice, b.PublicationDate, b.CoverImageURL,
		b.Notes,
		b.ID, currentVersion,
	)

	updated, err := scanBook(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, getErr := r.GetByID(ctx, b.ID); getErr != nil {
				return nil, getErr
			}
			return nil, book.ErrStaleWrite
		}
		if database.IsUniqueViolation(err, "isbn") {
			return nil, book.ErrDuplicateISBN
		}
		if database.IsForeignKeyViolation(err) {
			return nil, book.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to update book: %w", err)
	}
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	b, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// Inactive deals are swept along with the book; active ones are
	// checked by the service before we ever get here.
	if _, err := r.db.Exec(ctx, `DELETE FROM notes WHERE notable_type = 'Deal' AND notable_id IN (SELECT id FROM deals WHERE book_id = $1)`, id); err != nil {
		return fmt.Errorf("failed to delete deal notes: %w", err)
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM deals WHERE book_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete book deals: %w", err)
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM notes WHERE notable_type = 'Book' AND notable_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete book notes: %w", err)
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}

	if _, err := r.db.Exec(ctx, `UPDATE authors SET books_count = books_count - 1 WHERE id = $1`, b.AuthorID); err != nil {
		return fmt.Errorf("failed to drop author books_count: %w", err)
	}
	return nil
}

func (r *postgresRepository) ActiveDealCount(ctx context.Context, id uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM deals WHERE book_id = $1 AND status IN ('negotiating', 'pending_contract', 'signed', 'active')`,
		id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active deals: %w", err)
	}
	return count, nil
}

func (r *postgresRepository) ISBNTaken(ctx context.Context, isbn string, excludeID uuid.UUID) (bool, error) {
	var taken bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM books WHERE isbn = $1 AND id <> $2)`,
		isbn, excludeID).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("failed to check isbn: %w", err)
	}
	return taken, nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanBook(row scannable) (*book.Book, error) {
	var b book.Book
	err := row.Scan(
		&b.ID, &b.AuthorID, &b.Title, &b.Subtitle, &b.Genre, &b.Subgenre,
		&b.Status, &b.Format, &b.ISBN, &b.Description, &b.Synopsis,
		&b.WordCount, &b.PageCount, &b.ListPrice, &b.PublicationDate,
		&b.CoverImageURL, &b.Notes, &b.Version, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
