package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"publishing-crm/internal/domains/prospect"
	"publishing-crm/internal/infrastructure/database"
)

type postgresRepository struct {
	db database.Querier
}

func NewPostgresRepository(db database.Querier) prospect.Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) WithTx(tx pgx.Tx) prospect.Repository {
	return &postgresRepository{db: tx}
}

const prospectColumns = `id, agent_id, first_name, last_name, email, phone, source, stage, genre_interest, project_title, project_description, estimated_word_count, follow_up_date, last_contact_date, stage_changed_at, decline_reason, notes, version, created_at, updated_at`

func (r *postgresRepository) Create(ctx context.Context, p *prospect.Prospect) (*prospect.Prospect, error) {
	query := `
        INSERT INTO prospects (agent_id, first_name, last_name, email, phone, source, stage,
                               genre_interest, project_title, project_description,
                               estimated_word_count, follow_up_date, last_contact_date, notes)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
        RETURNING ` + prospectColumns

	row := r.db.QueryRow(ctx, query,
		p.AgentID, p.FirstName, p.LastName, p.Email, p.Phone, p.Source, p.Stage,
		p.GenreInterest, p.ProjectTitle, p.ProjectDescription,
		p.EstimatedWordCount, p.FollowUpDate, p.LastContactDate, p.Notes,
	)

	created, err := scanProspect(row)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return nil, prospect.ErrAgentNotFound
		}
		return nil, fmt.Errorf("failed to create prospect: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*prospect.Prospect, error) {
	p, err := scanProspect(r.db.QueryRow(ctx, `SELECT `+prospectColumns+` FROM prospects WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, prospect.ErrProspectNotFound
		}
		return nil, fmt.Errorf("failed to get prospect: %w", err)
	}
	return p, nil
}

func (r *postgresRepository) List(ctx context.Context, filter prospect.Filter) ([]prospect.Prospect, int64, error) {
	where := "TRUE"
	args := []any{}
	arg := 0

	next := func(v any) string {
		arg++
		args = append(args, v)
		return fmt.Sprintf("$%d", arg)
	}

	if filter.Stage != "" {
		where += " AND stage = " + next(string(filter.Stage))
	}
	if filter.Source != "" {
		where += " AND source = " + next(string(filter.Source))
	}
	if filter.AgentID != uuid.Nil {
		where += " AND agent_id = " + next(filter.AgentID)
	}
	if filter.Unassigned {
		where += " AND agent_id IS NULL"
	}
	switch filter.FollowUp {
	case prospect.FollowUpToday:
		where += " AND follow_up_date = CURRENT_DATE"
	case prospect.FollowUpThisWeek:
		where += " AND follow_up_date >= CURRENT_DATE AND follow_up_date < CURRENT_DATE + INTERVAL '7 days'"
	case prospect.FollowUpOverdue:
		where += " AND follow_up_date < CURRENT_DATE"
	}
	if filter.Query != "" {
		q := next("%" + filter.Query + "%")
		where += " AND (first_name ILIKE " + q + " OR last_name ILIKE " + q + " OR project_title ILIKE " + q + ")"
	}

	var total int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM prospects WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count prospects: %w", err)
	}

	query := "SELECT " + prospectColumns + " FROM prospects WHERE " + where +
		" ORDER BY last_name, first_name LIMIT " + next(filter.Limit) + " OFFSET " + next(filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list prospects: %w", err)
	}
	defer rows.Close()

	var prospects []prospect.Prospect
	for rows.Next() {
		p, err := scanProspect(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan prospect: %w", err)
		}
		prospects = append(prospects, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read prospects: %w", err)
	}
	return prospects, total, nil
}

func (r *postgresRepository) Update(ctx context.Context, p *prospect.Prospect, currentVersion int) (*prospect.Prospect, error) {
	query := `
        UPDATE prospects
        SET agent_id = $1, first_name = $2, last_name = $3, email = $4, phone = $5, source = $6,
            stage = $7, genre_interest = $8, project_title = $9, project_description = $10,
            estimated_word_count = $11, follow_up_date = $12, last_contact_date = $13,
            stage_changed_at = $14, decline_reason = $15, notes = $16,
            version = version + 1, updated_at = now()
        WHERE id = $17 AND version = $18
        RETURNING ` + prospectColumns

	row := r.db.QueryRow(ctx, query,
		p.AgentID, p.FirstName, p.LastName, p.Email, p.Phone, p.Source,
		p.Stage, p.GenreInterest, p.ProjectTitle, p.ProjectDescription,
		p.EstimatedWordCount, p.FollowUpDate, p.LastContactDate,
		p.StageChangedAt, p.DeclineReason, p.Notes,
		p.ID, currentVersion,
	)

	updated, err := scanProspect(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, getErr := r.GetByID(ctx, p.ID); getErr != nil {
				return nil, getErr
			}
			return nil, prospect.ErrStaleWrite
		}
		if database.IsForeignKeyViolation(err) {
			return nil, prospect.ErrAgentNotFound
		}
		return nil, fmt.Errorf("failed to update prospect: %w", err)
	}
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM notes WHERE notable_type = 'Prospect' AND notable_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete prospect notes: %w", err)
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM prospects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete prospect: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return prospect.ErrProspectNotFound
	}
	return nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanProspect(row scannable) (*prospect.Prospect, error) {
	var p prospect.Prospect
	err := row.Scan(
		&p.ID, &p.AgentID, &p.FirstName, &p.LastName, &p.Email, &p.Phone,
		&p.Source, &p.Stage, &p.GenreInterest, &p.ProjectTitle,
		&p.ProjectDescription, &p.EstimatedWordCount, &p.FollowUpDate,
		&p.LastContactDate, &p.StageChangedAt, &p.DeclineReason, &p.Notes,
		&p.Version, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
