package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"publishing-crm/internal/domains/activity"
)

// recorder implements activity.Recorder on top of the activity repository.
// It is stateless apart from the repository binding, so WithTx copies are
// cheap and safe to discard after the transaction.
type recorder struct {
	repo activity.Repository
}

func NewRecorder(repo activity.Repository) activity.Recorder {
	return &recorder{repo: repo}
}

func (r *recorder) WithTx(tx pgx.Tx) activity.Recorder {
	return &recorder{repo: r.repo.WithTx(tx)}
}

func (r *recorder) Created(ctx context.Context, trackableType string, id uuid.UUID) error {
	description := fmt.Sprintf("%s was created", trackableType)
	_, err := r.repo.Create(ctx, &activity.Activity{
		TrackableType: trackableType,
		TrackableID:   id,
		Action:        activity.ActionCreated,
		Description:   &description,
	})
	if err != nil {
		return fmt.Errorf("record creation activity: %w", err)
	}
	return nil
}

func (r *recorder) Updated(ctx context.Context, trackableType string, id uuid.UUID, before, after map[string]string) error {
	changes := activity.Diff(before, after)
	if len(changes) == 0 {
		return nil
	}

	// A status transition takes precedence: it is recorded once, and the
	// other fields changed in the same save are not fanned out.
	for _, change := range changes {
		if change.Field == "status" {
			return r.statusChanged(ctx, trackableType, id, change)
		}
	}

	for _, change := range changes {
		change := change
		description := fmt.Sprintf("%s was updated", activity.Humanize(change.Field))
		_, err := r.repo.Create(ctx, &activity.Activity{
			TrackableType: trackableType,
			TrackableID:   id,
			Action:        activity.ActionUpdated,
			FieldChanged:  &change.Field,
			OldValue:      &change.Old,
			NewValue:      &change.New,
			Description:   &description,
		})
		if err != nil {
			return fmt.Errorf("record field change activity: %w", err)
		}
	}
	return nil
}

func (r *recorder) statusChanged(ctx context.Context, trackableType string, id uuid.UUID, change activity.FieldChange) error {
	description := fmt.Sprintf("Status changed from %s to %s", change.Old, change.New)
	_, err := r.repo.Create(ctx, &activity.Activity{
		TrackableType: trackableType,
		TrackableID:   id,
		Action:        activity.ActionStatusChanged,
		FieldChanged:  &change.Field,
		OldValue:      &change.Old,
		NewValue:      &change.New,
		Description:   &description,
	})
	if err != nil {
		return fmt.Errorf("record status change activity: %w", err)
	}
	return nil
}

func (r *recorder) Deleted(ctx context.Context, trackableType string, id uuid.UUID) error {
	// The entity's history goes with it; the single deletion record is
	// written afterwards so it survives the cascade. The record keeps the
	// "updated" action: "deleted" is not a member of the action enum.
	if err := r.repo.DeleteForTrackable(ctx, trackableType, id); err != nil {
		return fmt.Errorf("purge activities: %w", err)
	}

	description := fmt.Sprintf("%s was deleted", trackableType)
	_, err := r.repo.Create(ctx, &activity.Activity{
		TrackableType: trackableType,
		TrackableID:   id,
		Action:        activity.ActionUpdated,
		Description:   &description,
	})
	if err != nil {
		return fmt.Errorf("record deletion activity: %w", err)
	}
	return nil
}

func (r *recorder) Event(ctx context.Context, trackableType string, id uuid.UUID, action activity.Action, description string) error {
	if !action.Valid() {
		return activity.ErrInvalidAction
	}

	_, err := r.repo.Create(ctx, &activity.Activity{
		TrackableType: trackableType,
		TrackableID:   id,
		Action:        action,
		Description:   &description,
	})
	if err != nil {
		return fmt.Errorf("record %s activity: %w", action, err)
	}
	return nil
}
