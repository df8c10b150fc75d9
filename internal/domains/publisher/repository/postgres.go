package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"publishing-crm/internal/domains/publisher"
	"publishing-crm/internal/infrastructure/database"
)

type postgresRepository struct {
	db database.Querier
}

func NewPostgresRepository(db database.Querier) publisher.Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) WithTx(tx pgx.Tx) publisher.Repository {
	return &postgresRepository{db: tx}
}

const publisherColumns = `id, name, imprint, size, status, contact_name, contact_email, phone, website, address_line1, address_line2, city, state, postal_code, country, deals_count, version, created_at, updated_at`

func (r *postgresRepository) Create(ctx context.Context, p *publisher.Publisher) (*publisher.Publisher, error) {
	query := `
        INSERT INTO publishers (name, imprint, size, status, contact_name, contact_email, phone, website,
                                address_line1, address_line2, city, state, postal_code, country)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
        RETURNING ` + publisherColumns

	row := r.db.QueryRow(ctx, query,
		p.Name, p.Imprint, p.Size, p.Status, p.ContactName, p.ContactEmail, p.Phone, p.Website,
		p.AddressLine1, p.AddressLine2, p.City, p.State, p.PostalCode, p.Country,
	)

	created, err := scanPublisher(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create publisher: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*publisher.Publisher, error) {
	p, err := scanPublisher(r.db.QueryRow(ctx, `SELECT `+publisherColumns+` FROM publishers WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, publisher.ErrPublisherNotFound
		}
		return nil, fmt.Errorf("failed to get publisher: %w", err)
	}
	return p, nil
}

func (r *postgresRepository) List(ctx context.Context, filter publisher.Filter) ([]publisher.Publisher, int64, error) {
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
	if filter.Size != "" {
		where += " AND size = " + next(string(filter.Size))
	}
	if filter.Query != "" {
		where += " AND name ILIKE " + next("%"+filter.Query+"%")
	}

	var total int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM publishers WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count publishers: %w", err)
	}

	query := "SELECT " + publisherColumns + " FROM publishers WHERE " + where +
		" ORDER BY name LIMIT " + next(filter.Limit) + " OFFSET " + next(filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list publishers: %w", err)
	}
	defer rows.Close()

	var publishers []publisher.Publisher
	for rows.Next() {
		p, err := scanPublisher(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan publisher: %w", err)
		}
		publishers = append(publishers, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read publishers: %w", err)
	}
	return publishers, total, nil
}

func (r *postgresRepository) Update(ctx context.Context, p *publisher.Publisher, currentVersion int) (*publisher.Publisher, error) {
	query := `
        UPDATE publishers
        SET name = $1, imprint = $2, size = $3, status = $4, contact_name = $5, contact_email = $6,
            phone = $7, website = $8, address_line1 = $9, address_line2 = $10, city = $11,
            state = $12, postal_code = $13, country = $14,
            version = version + 1, updated_at = now()
        WHERE id = $15 AND version = $16
        RETURNING ` + publisherColumns

	row := r.db.QueryRow(ctx, query,
		p.Name, p.Imprint, p.Size, p.Status, p.ContactName, p.ContactEmail,
		p.Phone, p.Website, p.AddressLine1, p.AddressLine2, p.City,
		p.State, p.PostalCode, p.Country,
		p.ID, currentVersion,
	)

	updated, err := scanPublisher(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, getErr := r.GetByID(ctx, p.ID); getErr != nil {
				return nil, getErr
			}
			return nil, publisher.ErrStaleWrite
		}
		return nil, fmt.Errorf("failed to update publisher: %w", err)
	}
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM notes WHERE notable_type = 'Publisher' AND notable_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete publisher notes: %w", err)
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM publishers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete publisher: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return publisher.ErrPublisherNotFound
	}
	return nil
}

func (r *postgresRepository) DealCount(ctx context.Context, id uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM deals WHERE publisher_id = $1`, id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count deals: %w", err)
	}
	return count, nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanPublisher(row scannable) (*publisher.Publisher, error) {
	var p publisher.Publisher
	err := row.Scan(
		&p.ID, &p.Name, &p.Imprint, &p.Size, &p.Status,
		&p.ContactName, &p.ContactEmail, &p.Phone, &p.Website,
		&p.AddressLine1, &p.AddressLine2, &p.City, &p.State, &p.PostalCode, &p.Country,
		&p.DealsCount, &p.Version, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
