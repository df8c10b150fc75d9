package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"publishing-crm/internal/domains/deal"
	"publishing-crm/internal/infrastructure/database"
)

type postgresRepository struct {
	db database.Querier
}

func NewPostgresRepository(db database.Querier) deal.Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) WithTx(tx pgx.Tx) deal.Repository {
	return &postgresRepository{db: tx}
}

const dealColumns = `id, book_id, publisher_id, agent_id, deal_type, status, advance_amount, advance_currency, royalty_rate_hardcover, royalty_rate_paperback, royalty_rate_ebook, offer_date, contract_date, delivery_date, publication_date, option_books, terms_summary, notes, version, created_at, updated_at`

func (r *postgresRepository) Create(ctx context.Context, d *deal.Deal) (*deal.Deal, error) {
	query := `
        INSERT INTO deals (book_id, publisher_id, agent_id, deal_type, status, advance_amount,
                           advance_currency, royalty_rate_hardcover, royalty_rate_paperback,
                           royalty_rate_ebook, offer_date, contract_date, delivery_date,
                           publication_date, option_books, terms_summary, notes)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
        RETURNING ` + dealColumns

	row := r.db.QueryRow(ctx, query,
		d.BookID, d.PublisherID, d.AgentID, d.DealType, d.Status, d.AdvanceAmount,
		d.AdvanceCurrency, d.RoyaltyRateHardcover, d.RoyaltyRatePaperback,
		d.RoyaltyRateEbook, d.OfferDate, d.ContractDate, d.DeliveryDate,
		d.PublicationDate, d.OptionBooks, d.TermsSummary, d.Notes,
	)

	created, err := scanDeal(row)
	if err != nil {
		if database.IsUniqueViolation(err, "book_id") {
			return nil, deal.ErrDuplicatePair
		}
		if database.IsForeignKeyViolation(err) {
			return nil, mapForeignKey(err)
		}
		return nil, fmt.Errorf("failed to create deal: %w", err)
	}

	if _, err := r.db.Exec(ctx, `UPDATE publishers SET deals_count = deals_count + 1 WHERE id = $1`, created.PublisherID); err != nil {
		return nil, fmt.Errorf("failed to bump publisher deals_count: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*deal.Deal, error) {
	d, err := scanDeal(r.db.QueryRow(ctx, `SELECT `+dealColumns+` FROM deals WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, deal.ErrDealNotFound
		}
		return nil, fmt.Errorf("failed to get deal: %w", err)
	}
	return d, nil
}

func (r *postgresRepository) List(ctx context.Context, filter deal.Filter) ([]deal.Deal, int64, error) {
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
	if filter.DealType != "" {
		where += " AND deal_type = " + next(string(filter.DealType))
	}
	if filter.BookID != uuid.Nil {
		where += " AND book_id = " + next(filter.BookID)
	}
	if filter.PublisherID != uuid.Nil {
		where += " AND publisher_id = " + next(filter.PublisherID)
	}
	if filter.AgentID != uuid.Nil {
		where += " AND agent_id = " + next(filter.AgentID)
	}

	var total int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM deals WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count deals: %w", err)
	}

	query := "SELECT " + dealColumns + " FROM deals WHERE " + where +
		" ORDER BY created_at DESC LIMIT " + next(filter.Limit) + " OFFSET " + next(filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list deals: %w", err)
	}
	defer rows.Close()

	var deals []deal.Deal
	for rows.Next() {
		d, err := scanDeal(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan deal: %w", err)
		}
		deals = append(deals, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read deals: %w", err)
	}
	return deals, total, nil
}

func (r *postgresRepository) Update(ctx context.Context, d *deal.Deal, currentVersion int) (*deal.Deal, error) {
	query := `
        UPDATE deals
        SET agent_id = $1, deal_type = $2, status = $3, advance_amount = $4, advance_currency = $5,
            royalty_rate_hardcover = $6, royalty_rate_paperback = $7, royalty_rate_ebook = $8,
            offer_date = $9, contract_date = $10, delivery_date = $11, publication_date = $12,
            option_books = $13, terms_summary = $14, notes = $15,
            version = version + 1, updated_at = now()
        WHERE id = $16 AND version = $17
        RETURNING ` + dealColumns

	row := r.db.QueryRow(ctx, query,
		d.AgentID, d.DealType, d.Status, d.AdvanceAmount, d.AdvanceCurrency,
		d.RoyaltyRateHardcover, d.RoyaltyRatePaperback, d.RoyaltyRateEbook,
		d.OfferDate, d.ContractDate, d.DeliveryDate, d.PublicationDate,
		d.OptionBooks, d.TermsSummary, d.Notes,
		d.ID, currentVersion,
	)

	updated, err := scanDeal(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, getErr := r.GetByID(ctx, d.ID); getErr != nil {
				return nil, getErr
			}
			return nil, deal.ErrStaleWrite
		}
		if database.IsForeignKeyViolation(err) {
			return nil, mapForeignKey(err)
		}
		return nil, fmt.Errorf("failed to update deal: %w", err)
	}
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	d, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if _, err := r.db.Exec(ctx, `DELETE FROM notes WHERE notable_type = 'Deal' AND notable_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete deal notes: %w", err)
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM deals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete deal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return deal.ErrDealNotFound
	}

	if _, err := r.db.Exec(ctx, `UPDATE publishers SET deals_count = deals_count - 1 WHERE id = $1`, d.PublisherID); err != nil {
		return fmt.Errorf("failed to drop publisher deals_count: %w", err)
	}
	return nil
}

func (r *postgresRepository) PairExists(ctx context.Context, bookID, publisherID, excludeID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM deals WHERE book_id = $1 AND publisher_id = $2 AND id <> $3)`,
		bookID, publisherID, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check deal pair: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) AgentCommissionRate(ctx context.Context, agentID uuid.UUID) (decimal.Decimal, error) {
	var rate *decimal.Decimal
	err := r.db.QueryRow(ctx, `SELECT commission_rate FROM agents WHERE id = $1`, agentID).Scan(&rate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, deal.ErrAgentNotFound
		}
		return decimal.Zero, fmt.Errorf("failed to get commission rate: %w", err)
	}
	if rate == nil {
		return decimal.Zero, nil
	}
	return *rate, nil
}

func mapForeignKey(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "book"):
		return deal.ErrBookNotFound
	case strings.Contains(msg, "publisher"):
		return deal.ErrPublisherNotFound
	case strings.Contains(msg, "agent"):
		return deal.ErrAgentNotFound
	}
	return err
}

type scannable interface {
	Scan(dest ...any) error
}

func scanDeal(row scannable) (*deal.Deal, error) {
	var d deal.Deal
	err := row.Scan(
		&d.ID, &d.BookID, &d.PublisherID, &d.AgentID, &d.DealType, &d.Status,
		&d.AdvanceAmount, &d.AdvanceCurrency, &d.RoyaltyRateHardcover,
		&d.RoyaltyRatePaperback, &d.RoyaltyRateEbook, &d.OfferDate,
		&d.ContractDate, &d.DeliveryDate, &d.PublicationDate, &d.OptionBooks,
		&d.TermsSummary, &d.Notes, &d.Version, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
