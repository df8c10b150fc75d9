package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"publishing-crm/internal/domains/representation"
	"publishing-crm/internal/infrastructure/database"
)

type postgresRepository struct {
	db database.Querier
}

func NewPostgresRepository(db database.Querier) representation.Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) WithTx(tx pgx.Tx) representation.Repository {
	return &postgresRepository{db: tx}
}

// "primary" is a reserved word, hence the quoting.
const representationColumns = `id, author_id, agent_id, status, "primary", start_date, end_date, notes, version, created_at, updated_at`

func (r *postgresRepository) Create(ctx context.Context, rep *representation.Representation) (*representation.Representation, error) {
	query := `
        INSERT INTO representations (author_id, agent_id, status, "primary", start_date, end_date, notes)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING ` + representationColumns

	row := r.db.QueryRow(ctx, query,
		rep.AuthorID, rep.AgentID, rep.Status, rep.Primary, rep.StartDate, rep.EndDate, rep.Notes,
	)

	created, err := scanRepresentation(row)
	if err != nil {
		if database.IsUniqueViolation(err, "author_id") {
			return nil, representation.ErrDuplicatePair
		}
		if database.IsForeignKeyViolation(err) {
			return nil, mapForeignKey(err)
		}
		return nil, fmt.Errorf("failed to create representation: %w", err)
	}

	if _, err := r.db.Exec(ctx, `UPDATE agents SET representations_count = representations_count + 1 WHERE id = $1`, created.AgentID); err != nil {
		return nil, fmt.Errorf("failed to bump agent representations_count: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*representation.Representation, error) {
	rep, err := scanRepresentation(r.db.QueryRow(ctx,
		`SELECT `+representationColumns+` FROM representations WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, representation.ErrRepresentationNotFound
		}
		return nil, fmt.Errorf("failed to get representation: %w", err)
	}
	return rep, nil
}

func (r *postgresRepository) List(ctx context.Context, filter representation.Filter) ([]representation.Representation, int64, error) {
	where := "TRUE"
	args := []any{}
	arg := 0

	next := func(v any) string {
		arg++
		args = append(args, v)
		return fmt.Sprintf("$%d", arg)
	}

	if filter.AuthorID != uuid.Nil {
		where += " AND author_id = " + next(filter.AuthorID)
	}
	if filter.AgentID != uuid.Nil {
		where += " AND agent_id = " + next(filter.AgentID)
	}
	if filter.Status != "" {
		where += " AND status = " + next(string(filter.Status))
	}

	var total int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM representations WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count representations: %w", err)
	}

	query := "SELECT " + representationColumns + " FROM representations WHERE " + where +
		" ORDER BY created_at DESC LIMIT " + next(filter.Limit) + " OFFSET " + next(filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list representations: %w", err)
	}
	defer rows.Close()

	var reps []representation.Representation
	for rows.Next() {
		rep, err := scanRepresentation(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan representation: %w", err)
		}
		reps = append(reps, *rep)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read representations: %w", err)
	}
	return reps, total, nil
}

func (r *postgresRepository) Update(ctx context.Context, rep *representation.Representation, currentVersion int) (*representation.Representation, error) {
	query := `
        UPDATE representations
        SET status = $1, "primary" = $2, start_date = $3, end_date = $4, notes = $5,
            version = version + 1, updated_at = now()
        WHERE id = $6 AND version = $7
        RETURNING ` + representationColumns

	row := r.db.QueryRow(ctx, query,
		rep.Status, rep.Primary, rep.StartDate, rep.EndDate, rep.Notes,
		rep.ID, currentVersion,
	)

	updated, err := scanRepresentation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, getErr := r.GetByID(ctx, rep.ID); getErr != nil {
				return nil, getErr
			}
			return nil, representation.ErrStaleWrite
		}
		return nil, fmt.Errorf("failed to update representation: %w", err)
	}
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	rep, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM representations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete representation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return representation.ErrRepresentationNotFound
	}

	if _, err := r.db.Exec(ctx, `UPDATE agents SET representations_count = representations_count - 1 WHERE id = $1`, rep.AgentID); err != nil {
		return fmt.Errorf("failed to drop agent representations_count: %w", err)
	}
	return nil
}

func (r *postgresRepository) UnsetOtherPrimaries(ctx context.Context, authorID, excludeID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`UPDATE representations SET "primary" = FALSE WHERE author_id = $1 AND "primary" = TRUE AND id <> $2`,
		authorID, excludeID)
	if err != nil {
		return fmt.Errorf("failed to unset other primaries: %w", err)
	}
	return nil
}

func (r *postgresRepository) PairExists(ctx context.Context, authorID, agentID, excludeID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM representations WHERE author_id = $1 AND agent_id = $2 AND id <> $3)`,
		authorID, agentID, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check representation pair: %w", err)
	}
	return exists, nil
}

func mapForeignKey(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "author"):
		return representation.ErrAuthorNotFound
	case strings.Contains(msg, "agent"):
		return representation.ErrAgentNotFound
	}
	return err
}

type scannable interface {
	Scan(dest ...any) error
}

func scanRepresentation(row scannable) (*representation.Representation, error) {
	var rep representation.Representation
	err := row.Scan(
		&rep.ID, &rep.AuthorID, &rep.AgentID, &rep.Status, &rep.Primary,
		&rep.StartDate, &rep.EndDate, &rep.Notes,
		&rep.Version, &rep.CreatedAt, &rep.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rep, nil
}
