package repository

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"publishing-crm/internal/domains/book"
	"publishing-crm/internal/domains/dashboard"
	"publishing-crm/internal/domains/deal"
	"publishing-crm/internal/infrastructure/database"
)

type postgresRepository struct {
	db database.Querier
}

func NewPostgresRepository(db database.Querier) dashboard.Repository {
	return &postgresRepository{db: db}
}

const activeDealStatuses = `('negotiating', 'pending_contract', 'signed', 'active')`

func (r *postgresRepository) CountActiveAuthors(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM authors WHERE status = 'active'`)
}

func (r *postgresRepository) CountActiveDeals(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM deals WHERE status IN `+activeDealStatuses)
}

func (r *postgresRepository) DealsCount(ctx context.Context, rng dashboard.Range) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM deals WHERE offer_date >= $1 AND offer_date < $2`,
		rng.Start, rng.End).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count deals in period: %w", err)
	}
	return n, nil
}

func (r *postgresRepository) AdvanceSum(ctx context.Context, rng dashboard.Range) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(advance_amount), 0) FROM deals WHERE offer_date >= $1 AND offer_date < $2`,
		rng.Start, rng.End).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum advances: %w", err)
	}
	return sum, nil
}

func (r *postgresRepository) AdvanceAverage(ctx context.Context, rng dashboard.Range) (decimal.Decimal, error) {
	var avg *decimal.Decimal
	err := r.db.QueryRow(ctx,
		`SELECT AVG(advance_amount) FROM deals WHERE offer_date >= $1 AND offer_date < $2 AND advance_amount IS NOT NULL`,
		rng.Start, rng.End).Scan(&avg)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to average advances: %w", err)
	}
	if avg == nil {
		return decimal.Zero, nil
	}
	return avg.Round(2), nil
}

func (r *postgresRepository) ProspectCounts(ctx context.Context) (int64, int64, error) {
	var total, converted int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE stage = 'converted') FROM prospects`).
		Scan(&total, &converted)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count prospects: %w", err)
	}
	return total, converted, nil
}

func (r *postgresRepository) BooksByStatus(ctx context.Context) (map[string]int64, error) {
	counts, err := r.groupCounts(ctx, `SELECT status, COUNT(*) FROM books GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("failed to group books: %w", err)
	}
	// Every status shows up, zero-filled.
	out := make(map[string]int64, len(book.Statuses))
	for _, s := range book.Statuses {
		out[string(s)] = counts[string(s)]
	}
	return out, nil
}

func (r *postgresRepository) DealsByStatus(ctx context.Context) (map[string]int64, error) {
	counts, err := r.groupCounts(ctx, `SELECT status, COUNT(*) FROM deals GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("failed to group deals: %w", err)
	}
	out := make(map[string]int64, len(deal.Statuses))
	for _, s := range deal.Statuses {
		out[string(s)] = counts[string(s)]
	}
	return out, nil
}

func (r *postgresRepository) TopPublishersByDealCount(ctx context.Context, limit int) ([]dashboard.TopPublisher, error) {
	rows, err := r.db.Query(ctx, `
        SELECT p.id, p.name, COUNT(d.id)
        FROM publishers p
        JOIN deals d ON d.publisher_id = p.id
        GROUP BY p.id, p.name
        ORDER BY COUNT(d.id) DESC
        LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to rank publishers: %w", err)
	}
	defer rows.Close()

	var top []dashboard.TopPublisher
	for rows.Next() {
		var t dashboard.TopPublisher
		if err := rows.Scan(&t.PublisherID, &t.Name, &t.DealCount); err != nil {
			return nil, fmt.Errorf("failed to scan publisher rank: %w", err)
		}
		top = append(top, t)
	}
	return top, rows.Err()
}

func (r *postgresRepository) TopAgentsByDealCount(ctx context.Context, limit int) ([]dashboard.TopAgent, error) {
	rows, err := r.db.Query(ctx, `
        SELECT a.id, a.first_name, a.last_name, COUNT(d.id)
        FROM agents a
        JOIN deals d ON d.agent_id = a.id
        GROUP BY a.id, a.first_name, a.last_name
        ORDER BY COUNT(d.id) DESC
        LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to rank agents: %w", err)
	}
	defer rows.Close()

	var top []dashboard.TopAgent
	for rows.Next() {
		var t dashboard.TopAgent
		if err := rows.Scan(&t.AgentID, &t.FirstName, &t.LastName, &t.DealCount); err != nil {
			return nil, fmt.Errorf("failed to scan agent rank: %w", err)
		}
		top = append(top, t)
	}
	return top, rows.Err()
}

func (r *postgresRepository) count(ctx context.Context, query string) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count: %w", err)
	}
	return n, nil
}

func (r *postgresRepository) groupCounts(ctx context.Context, query string) (map[string]int64, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var status string
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, rows.Err()
}
