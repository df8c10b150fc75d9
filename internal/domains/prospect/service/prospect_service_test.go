package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"publishing-crm/internal/domains/activity"
	"publishing-crm/internal/domains/author"
	"publishing-crm/internal/domains/prospect"
	"publishing-crm/internal/shared/validation"
)

type fakeProspectRepo struct {
	byID    map[uuid.UUID]*prospect.Prospect
	updated *prospect.Prospect
}

func (f *fakeProspectRepo) WithTx(tx pgx.Tx) prospect.Repository { return f }

func (f *fakeProspectRepo) Create(ctx context.Context, p *prospect.Prospect) (*prospect.Prospect, error) {
	return p, nil
}

func (f *fakeProspectRepo) GetByID(ctx context.Context, id uuid.UUID) (*prospect.Prospect, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, prospect.ErrProspectNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakeProspectRepo) List(ctx context.Context, filter prospect.Filter) ([]prospect.Prospect, int64, error) {
	return nil, 0, nil
}

func (f *fakeProspectRepo) Update(ctx context.Context, p *prospect.Prospect, currentVersion int) (*prospect.Prospect, error) {
	copied := *p
	f.updated = &copied
	return p, nil
}

func (f *fakeProspectRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type fakeAuthorRepo struct {
	emailTaken bool
	createErr  error
	created    *author.Author
}

func (f *fakeAuthorRepo) WithTx(tx pgx.Tx) author.Repository { return f }

func (f *fakeAuthorRepo) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	a.ID = uuid.New()
	copied := *a
	f.created = &copied
	return a, nil
}

func (f *fakeAuthorRepo) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	return nil, author.ErrAuthorNotFound
}

func (f *fakeAuthorRepo) List(ctx context.Context, filter author.Filter) ([]author.Author, int64, error) {
	return nil, 0, nil
}

func (f *fakeAuthorRepo) Update(ctx context.Context, a *author.Author, currentVersion int) (*author.Author, error) {
	return a, nil
}

func (f *fakeAuthorRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakeAuthorRepo) BookCount(ctx context.Context, id uuid.UUID) (int, error) { return 0, nil }

func (f *fakeAuthorRepo) EmailTaken(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	return f.emailTaken, nil
}

type noopRecorder struct{}

func (noopRecorder) WithTx(tx pgx.Tx) activity.Recorder { return noopRecorder{} }
func (noopRecorder) Created(ctx context.Context, trackableType string, id uuid.UUID) error {
	return nil
}
func (noopRecorder) Updated(ctx context.Context, trackableType string, id uuid.UUID, before, after map[string]string) error {
	return nil
}
func (noopRecorder) Deleted(ctx context.Context, trackableType string, id uuid.UUID) error {
	return nil
}
func (noopRecorder) Event(ctx context.Context, trackableType string, id uuid.UUID, action activity.Action, description string) error {
	return nil
}

// spyRecorder keeps the last diff so tests can check what the audit
// trail would show.
type spyRecorder struct {
	createdTypes  []string
	before, after map[string]string
}

func (r *spyRecorder) WithTx(tx pgx.Tx) activity.Recorder { return r }
func (r *spyRecorder) Created(ctx context.Context, trackableType string, id uuid.UUID) error {
	r.createdTypes = append(r.createdTypes, trackableType)
	return nil
}
func (r *spyRecorder) Updated(ctx context.Context, trackableType string, id uuid.UUID, before, after map[string]string) error {
	r.before, r.after = before, after
	return nil
}
func (r *spyRecorder) Deleted(ctx context.Context, trackableType string, id uuid.UUID) error {
	return nil
}
func (r *spyRecorder) Event(ctx context.Context, trackableType string, id uuid.UUID, action activity.Action, description string) error {
	return nil
}

func newService(repo *fakeProspectRepo, authors *fakeAuthorRepo) prospect.Service {
	return NewProspectService(nil, repo, authors, noopRecorder{})
}

// newTxService swaps the pool-backed transaction runner for a direct
// call so mutation paths run against the fakes.
func newTxService(repo *fakeProspectRepo, authors *fakeAuthorRepo, rec activity.Recorder) prospect.Service {
	return &prospectService{
		repo:     repo,
		authors:  authors,
		recorder: rec,
		now:      time.Now,
		run: func(ctx context.Context, fn func(tx pgx.Tx) error) error {
			return fn(nil)
		},
	}
}

func seedProspect(stage prospect.Stage) (*fakeProspectRepo, uuid.UUID) {
	id := uuid.New()
	repo := &fakeProspectRepo{byID: map[uuid.UUID]*prospect.Prospect{
		id: {ID: id, FirstName: "Nora", LastName: "Quinn", Stage: stage, Version: 1},
	}}
	return repo, id
}

func fieldMessages(t *testing.T, err error, field string) []string {
	t.Helper()
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	return verrs.On(field)
}

func TestTransitionTo_RejectsUnknownStage(t *testing.T) {
	repo, id := seedProspect(prospect.StageNew)
	svc := newService(repo, &fakeAuthorRepo{})

	_, err := svc.TransitionTo(context.Background(), id, prospect.Stage("signed"))

	assert.Contains(t, fieldMessages(t, err, "stage"), "signed is not a valid stage")
}

func TestTransitionTo_RejectsSkippedStage(t *testing.T) {
	repo, id := seedProspect(prospect.StageNew)
	svc := newService(repo, &fakeAuthorRepo{})

	_, err := svc.TransitionTo(context.Background(), id, prospect.StageNegotiating)

	assert.Contains(t, fieldMessages(t, err, "stage"),
		"cannot transition from new to negotiating")
}

func TestTransitionTo_RejectsTerminalStage(t *testing.T) {
	repo, id := seedProspect(prospect.StageConverted)
	svc := newService(repo, &fakeAuthorRepo{})

	_, err := svc.TransitionTo(context.Background(), id, prospect.StageContacted)

	assert.Contains(t, fieldMessages(t, err, "stage"), "cannot transition from converted")
}

func TestTransitionTo_UnknownProspect(t *testing.T) {
	svc := newService(&fakeProspectRepo{byID: map[uuid.UUID]*prospect.Prospect{}}, &fakeAuthorRepo{})

	_, err := svc.TransitionTo(context.Background(), uuid.New(), prospect.StageContacted)

	assert.ErrorIs(t, err, prospect.ErrProspectNotFound)
}

func TestConvertToAuthor_AlreadyConverted(t *testing.T) {
	repo, id := seedProspect(prospect.StageConverted)
	svc := newService(repo, &fakeAuthorRepo{})

	_, err := svc.ConvertToAuthor(context.Background(), id)

	assert.Contains(t, fieldMessages(t, err, "stage"), "prospect has already been converted")
}

func TestConvertToAuthor_RequiresNegotiatingStage(t *testing.T) {
	repo, id := seedProspect(prospect.StageContacted)
	svc := newService(repo, &fakeAuthorRepo{})

	_, err := svc.ConvertToAuthor(context.Background(), id)

	assert.Contains(t, fieldMessages(t, err, "stage"), "must be in negotiating stage to convert")
}

func TestConvertToAuthor_EmailCollision(t *testing.T) {
	repo, id := seedProspect(prospect.StageNegotiating)
	email := "nora@example.com"
	repo.byID[id].Email = &email
	svc := newService(repo, &fakeAuthorRepo{emailTaken: true})

	_, err := svc.ConvertToAuthor(context.Background(), id)

	assert.Contains(t, fieldMessages(t, err, "email"), "has already been taken")
}

func TestDecline_RequiresReason(t *testing.T) {
	repo, id := seedProspect(prospect.StageEvaluating)
	svc := newService(repo, &fakeAuthorRepo{})

	_, err := svc.Decline(context.Background(), id, "   ")

	assert.Contains(t, fieldMessages(t, err, "decline_reason"), "is required when declining")
}

func TestDecline_RejectsTerminalStage(t *testing.T) {
	repo, id := seedProspect(prospect.StageDeclined)
	svc := newService(repo, &fakeAuthorRepo{})

	_, err := svc.Decline(context.Background(), id, "Not a fit")

	assert.Contains(t, fieldMessages(t, err, "stage"), "cannot transition from declined")
}

func TestTransitionTo_AdvancesStage(t *testing.T) {
	repo, id := seedProspect(prospect.StageNew)
	rec := &spyRecorder{}
	svc := newTxService(repo, &fakeAuthorRepo{}, rec)

	updated, err := svc.TransitionTo(context.Background(), id, prospect.StageContacted)

	require.NoError(t, err)
	assert.Equal(t, prospect.StageContacted, updated.Stage)
	require.NotNil(t, updated.StageChangedAt)
	assert.Equal(t, "new", rec.before["status"])
	assert.Equal(t, "contacted", rec.after["status"])
}

func TestConvertToAuthor_CreatesActiveAuthor(t *testing.T) {
	repo, id := seedProspect(prospect.StageNegotiating)
	email := "nora@example.com"
	title := "The Long Meadow"
	genre := "literary fiction"
	repo.byID[id].Email = &email
	repo.byID[id].ProjectTitle = &title
	repo.byID[id].GenreInterest = &genre

	authors := &fakeAuthorRepo{}
	rec := &spyRecorder{}
	svc := newTxService(repo, authors, rec)

	created, err := svc.ConvertToAuthor(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, author.StatusActive, created.Status)
	assert.Equal(t, "Nora", created.FirstName)
	assert.Equal(t, "Quinn", created.LastName)
	require.NotNil(t, created.Email)
	assert.Equal(t, email, *created.Email)
	require.NotNil(t, created.GenreFocus)
	assert.Equal(t, genre, *created.GenreFocus)
	require.NotNil(t, created.Notes)
	assert.Equal(t, "Converted from prospect. Project: The Long Meadow", *created.Notes)

	require.NotNil(t, repo.updated)
	assert.Equal(t, prospect.StageConverted, repo.updated.Stage)
	assert.NotNil(t, repo.updated.StageChangedAt)

	assert.Equal(t, []string{activity.TypeAuthor}, rec.createdTypes)
	assert.Equal(t, "negotiating", rec.before["status"])
	assert.Equal(t, "converted", rec.after["status"])
}

func TestConvertToAuthor_RacedDuplicateEmail(t *testing.T) {
	repo, id := seedProspect(prospect.StageNegotiating)
	authors := &fakeAuthorRepo{createErr: author.ErrDuplicateEmail}
	svc := newTxService(repo, authors, &spyRecorder{})

	_, err := svc.ConvertToAuthor(context.Background(), id)

	assert.Contains(t, fieldMessages(t, err, "email"), "has already been taken")
}

func TestDecline_SetsReasonAndStage(t *testing.T) {
	repo, id := seedProspect(prospect.StageEvaluating)
	rec := &spyRecorder{}
	svc := newTxService(repo, &fakeAuthorRepo{}, rec)

	updated, err := svc.Decline(context.Background(), id, "Not a fit for the list")

	require.NoError(t, err)
	assert.Equal(t, prospect.StageDeclined, updated.Stage)
	require.NotNil(t, updated.DeclineReason)
	assert.Equal(t, "Not a fit for the list", *updated.DeclineReason)
	require.NotNil(t, updated.StageChangedAt)
	assert.Equal(t, "evaluating", rec.before["status"])
	assert.Equal(t, "declined", rec.after["status"])
}
