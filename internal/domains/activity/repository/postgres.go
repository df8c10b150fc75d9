package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"publishing-crm/internal/domains/activity"
	"publishing-crm/internal/infrastructure/database"
)

type postgresRepository struct {
	db database.Querier
}

func NewPostgresRepository(db database.Querier) activity.Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) WithTx(tx pgx.Tx) activity.Repository {
	return &postgresRepository{db: tx}
}

const activityColumns = `id, trackable_type, trackable_id, action, field_changed, old_value, new_value, description, metadata, created_at`

func (r *postgresRepository) Create(ctx context.Context, a *activity.Activity) (*activity.Activity, error) {
	if a.TrackableType == "" || a.TrackableID == uuid.Nil {
		return nil, activity.ErrMissingTrackable
	}
	if !a.Action.Valid() {
		return nil, activity.ErrInvalidAction
	}

	query := `
        INSERT INTO activities (trackable_type, trackable_id, action, field_changed, old_value, new_value, description, metadata)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING ` + activityColumns

	var created activity.Activity
	err := r.db.QueryRow(
		ctx,
		query,
		a.TrackableType,
		a.TrackableID,
		a.Action,
		a.FieldChanged,
		a.OldValue,
		a.NewValue,
		a.Description,
		a.Metadata,
	).Scan(
		&created.ID,
		&created.TrackableType,
		&created.TrackableID,
		&created.Action,
		&created.FieldChanged,
		&created.OldValue,
		&created.NewValue,
		&created.Description,
		&created.Metadata,
		&created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) ListForTrackable(ctx context.Context, trackableType string, trackableID uuid.UUID, limit int) ([]activity.Activity, error) {
	query := `
        SELECT ` + activityColumns + `
        FROM activities
        WHERE trackable_type = $1 AND trackable_id = $2
        ORDER BY created_at DESC
        LIMIT $3`

	rows, err := r.db.Query(ctx, query, trackableType, trackableID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	return scanActivities(rows)
}

func (r *postgresRepository) List(ctx context.Context, filter activity.Filter) ([]activity.Activity, int64, error) {
	where := "TRUE"
	args := []any{}
	arg := 0

	next := func(v any) string {
		arg++
		args = append(args, v)
		return fmt.Sprintf("$%d", arg)
	}

	if filter.TrackableType != "" {
		where += " AND trackable_type = " + next(filter.TrackableType)
	}
	if filter.Action != "" {
		where += " AND action = " + next(string(filter.Action))
	}
	if filter.From != nil {
		where += " AND created_at >= " + next(*filter.From)
	}
	if filter.To != nil {
		where += " AND created_at <= " + next(*filter.To)
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM activities WHERE " + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count activities: %w", err)
	}

	query := "SELECT " + activityColumns + " FROM activities WHERE " + where +
		" ORDER BY created_at DESC LIMIT " + next(filter.Limit) + " OFFSET " + next(filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	activities, err := scanActivities(rows)
	if err != nil {
		return nil, 0, err
	}
	return activities, total, nil
}

func (r *postgresRepository) DeleteForTrackable(ctx context.Context, trackableType string, trackableID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM activities WHERE trackable_type = $1 AND trackable_id = $2`,
		trackableType, trackableID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete activities: %w", err)
	}
	return nil
}

func scanActivities(rows pgx.Rows) ([]activity.Activity, error) {
	var activities []activity.Activity
	for rows.Next() {
		var a activity.Activity
		err := rows.Scan(
			&a.ID,
			&a.TrackableType,
			&a.TrackableID,
			&a.Action,
			&a.FieldChanged,
			&a.OldValue,
			&a.NewValue,
			&a.Description,
			&a.Metadata,
			&a.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read activities: %w", err)
	}
	return activities, nil
}
