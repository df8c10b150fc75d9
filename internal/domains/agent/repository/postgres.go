package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"publishing-crm/internal/domains/agent"
	"publishing-crm/internal/infrastructure/database"
)

type postgresRepository struct {
	db database.Querier
}

func NewPostgresRepository(db database.Querier) agent.Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) WithTx(tx pgx.Tx) agent.Repository {
	return &postgresRepository{db: tx}
}

const agentColumns = `id, first_name, last_name, email, phone, agency_name, commission_rate, genres_represented, status, representations_count, version, created_at, updated_at`

func (r *postgresRepository) Create(ctx context.Context, a *agent.Agent) (*agent.Agent, error) {
	query := `
        INSERT INTO agents (first_name, last_name, email, phone, agency_name, commission_rate, genres_represented, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING ` + agentColumns

	row := r.db.QueryRow(ctx, query,
		a.FirstName, a.LastName, a.Email, a.Phone, a.AgencyName,
		a.CommissionRate, a.GenresRepresented, a.Status,
	)

	created, err := scanAgent(row)
	if err != nil {
		if database.IsUniqueViolation(err, "email") {
			return nil, agent.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*agent.Agent, error) {
	a, err := scanAgent(r.db.QueryRow(ctx, `SELECT `+agentColumns+` FROM agents WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, agent.ErrAgentNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}
	return a, nil
}

func (r *postgresRepository) List(ctx context.Context, filter agent.Filter) ([]agent.Agent, int64, error) {
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
	if filter.Agency != "" {
		where += " AND agency_name = " + next(filter.Agency)
	}
	if filter.Genre != "" {
		where += " AND genres_represented ILIKE " + next("%"+filter.Genre+"%")
	}
	if filter.Query != "" {
		p := next("%" + filter.Query + "%")
		where += fmt.Sprintf(" AND (first_name ILIKE %s OR last_name ILIKE %s OR agency_name ILIKE %s)", p, p, p)
	}

	var total int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM agents WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count agents: %w", err)
	}

	query := "SELECT " + agentColumns + " FROM agents WHERE " + where +
		" ORDER BY last_name, first_name LIMIT " + next(filter.Limit) + " OFFSET " + next(filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list agents: %w", err)
	}
	defer rows.Close()

	var agents []agent.Agent
	for rows.Next() {
		a, err := scanAgent(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan agent: %w", err)
		}
		agents = append(agents, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read agents: %w", err)
	}
	return agents, total, nil
}

func (r *postgresRepository) Update(ctx context.Context, a *agent.Agent, currentVersion int) (*agent.Agent, error) {
	query := `
        UPDATE agents
        SET first_name = $1, last_name = $2, email = $3, phone = $4, agency_name = $5,
            commission_rate = $6, genres_represented = $7, status = $8,
            version = version + 1, updated_at = now()
        WHERE id = $9 AND version = $10
        RETURNING ` + agentColumns

	row := r.db.QueryRow(ctx, query,
		a.FirstName, a.LastName, a.Email, a.Phone, a.AgencyName,
		a.CommissionRate, a.GenresRepresented, a.Status,
		a.ID, currentVersion,
	)

	updated, err := scanAgent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, getErr := r.GetByID(ctx, a.ID); getErr != nil {
				return nil, getErr
			}
			return nil, agent.ErrStaleWrite
		}
		if database.IsUniqueViolation(err, "email") {
			return nil, agent.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to update agent: %w", err)
	}
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Deals and prospects survive the agent, detached.
	if _, err := r.db.Exec(ctx, `UPDATE deals SET agent_id = NULL WHERE agent_id = $1`, id); err != nil {
		return fmt.Errorf("failed to detach deals: %w", err)
	}
	if _, err := r.db.Exec(ctx, `UPDATE prospects SET agent_id = NULL WHERE agent_id = $1`, id); err != nil {
		return fmt.Errorf("failed to detach prospects: %w", err)
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM representations WHERE agent_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete agent representations: %w", err)
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM notes WHERE notable_type = 'Agent' AND notable_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete agent notes: %w", err)
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM agents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete agent: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return agent.ErrAgentNotFound
	}
	return nil
}

func (r *postgresRepository) EmailTaken(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	var taken bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM agents WHERE email = $1 AND id <> $2)`,
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

func scanAgent(row scannable) (*agent.Agent, error) {
	var a agent.Agent
	err := row.Scan(
		&a.ID, &a.FirstName, &a.LastName, &a.Email, &a.Phone, &a.AgencyName,
		&a.CommissionRate, &a.GenresRepresented, &a.Status,
		&a.RepresentationsCount, &a.Version, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
