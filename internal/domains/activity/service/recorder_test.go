package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"publishing-crm/internal/domains/activity"
)

// fakeActivityRepo captures writes in memory.
type fakeActivityRepo struct {
	created []activity.Activity
	purged  []string
}

func (f *fakeActivityRepo) WithTx(tx pgx.Tx) activity.Repository { return f }

func (f *fakeActivityRepo) Create(ctx context.Context, a *activity.Activity) (*activity.Activity, error) {
	f.created = append(f.created, *a)
	return a, nil
}

func (f *fakeActivityRepo) ListForTrackable(ctx context.Context, trackableType string, trackableID uuid.UUID, limit int) ([]activity.Activity, error) {
	return nil, nil
}

func (f *fakeActivityRepo) List(ctx context.Context, filter activity.Filter) ([]activity.Activity, int64, error) {
	return nil, 0, nil
}

func (f *fakeActivityRepo) DeleteForTrackable(ctx context.Context, trackableType string, trackableID uuid.UUID) error {
	f.purged = append(f.purged, trackableType+":"+trackableID.String())
	return nil
}

func TestRecorder_Created(t *testing.T) {
	repo := &fakeActivityRepo{}
	rec := NewRecorder(repo)
	id := uuid.New()

	err := rec.Created(context.Background(), activity.TypeAuthor, id)

	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	got := repo.created[0]
	assert.Equal(t, activity.TypeAuthor, got.TrackableType)
	assert.Equal(t, id, got.TrackableID)
	assert.Equal(t, activity.ActionCreated, got.Action)
	assert.Equal(t, "Author was created", *got.Description)
}

func TestRecorder_Updated_OneRecordPerChangedField(t *testing.T) {
	repo := &fakeActivityRepo{}
	rec := NewRecorder(repo)
	id := uuid.New()

	before := map[string]string{"first_name": "Jane", "last_name": "Doe", "bio": "old"}
	after := map[string]string{"first_name": "Janet", "last_name": "Doe", "bio": "new"}

	err := rec.Updated(context.Background(), activity.TypeAuthor, id, before, after)

	require.NoError(t, err)
	require.Len(t, repo.created, 2)
	assert.Equal(t, "bio", *repo.created[0].FieldChanged)
	assert.Equal(t, "Bio was updated", *repo.created[0].Description)
	assert.Equal(t, activity.ActionUpdated, repo.created[0].Action)
	assert.Equal(t, "first_name", *repo.created[1].FieldChanged)
	assert.Equal(t, "First name was updated", *repo.created[1].Description)
}

func TestRecorder_Updated_StatusChangeWinsAlone(t *testing.T) {
	repo := &fakeActivityRepo{}
	rec := NewRecorder(repo)
	id := uuid.New()

	before := map[string]string{"status": "active", "bio": "old"}
	after := map[string]string{"status": "inactive", "bio": "new"}

	err := rec.Updated(context.Background(), activity.TypeAuthor, id, before, after)

	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	got := repo.created[0]
	assert.Equal(t, activity.ActionStatusChanged, got.Action)
	assert.Equal(t, "status", *got.FieldChanged)
	assert.Equal(t, "active", *got.OldValue)
	assert.Equal(t, "inactive", *got.NewValue)
	assert.Equal(t, "Status changed from active to inactive", *got.Description)
}

func TestRecorder_Updated_NoOpWritesNothing(t *testing.T) {
	repo := &fakeActivityRepo{}
	rec := NewRecorder(repo)

	snapshot := map[string]string{"first_name": "Jane", "status": "active"}
	err := rec.Updated(context.Background(), activity.TypeAuthor, uuid.New(), snapshot, snapshot)

	require.NoError(t, err)
	assert.Empty(t, repo.created)
}

func TestRecorder_Deleted_PurgesHistoryThenRecords(t *testing.T) {
	repo := &fakeActivityRepo{}
	rec := NewRecorder(repo)
	id := uuid.New()

	err := rec.Deleted(context.Background(), activity.TypePublisher, id)

	require.NoError(t, err)
	require.Len(t, repo.purged, 1)
	assert.Equal(t, "Publisher:"+id.String(), repo.purged[0])
	require.Len(t, repo.created, 1)
	got := repo.created[0]
	// Deletion is recorded with the updated action; there is no
	// "deleted" member in the action enum.
	assert.Equal(t, activity.ActionUpdated, got.Action)
	assert.Equal(t, "Publisher was deleted", *got.Description)
}

func TestRecorder_Event(t *testing.T) {
	repo := &fakeActivityRepo{}
	rec := NewRecorder(repo)
	id := uuid.New()

	err := rec.Event(context.Background(), activity.TypeBook, id, activity.ActionDealCreated, "Deal was created")

	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	assert.Equal(t, activity.ActionDealCreated, repo.created[0].Action)
	assert.Equal(t, "Deal was created", *repo.created[0].Description)
}

func TestRecorder_Event_RejectsUnknownAction(t *testing.T) {
	repo := &fakeActivityRepo{}
	rec := NewRecorder(repo)

	err := rec.Event(context.Background(), activity.TypeBook, uuid.New(), activity.Action("exploded"), "boom")

	assert.ErrorIs(t, err, activity.ErrInvalidAction)
	assert.Empty(t, repo.created)
}
