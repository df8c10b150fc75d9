package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"publishing-crm/internal/domains/note"
	"publishing-crm/internal/shared/validation"
)

type fakeNoteRepo struct {
	notableExists bool
	byID          map[uuid.UUID]*note.Note
}

func (f *fakeNoteRepo) WithTx(tx pgx.Tx) note.Repository { return f }

func (f *fakeNoteRepo) Create(ctx context.Context, n *note.Note) (*note.Note, error) {
	return n, nil
}

func (f *fakeNoteRepo) GetByID(ctx context.Context, id uuid.UUID) (*note.Note, error) {
	n, ok := f.byID[id]
	if !ok {
		return nil, note.ErrNoteNotFound
	}
	copied := *n
	return &copied, nil
}

func (f *fakeNoteRepo) List(ctx context.Context, filter note.Filter) ([]note.Note, int64, error) {
	return nil, 0, nil
}

func (f *fakeNoteRepo) Update(ctx context.Context, n *note.Note) (*note.Note, error) {
	return n, nil
}

func (f *fakeNoteRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakeNoteRepo) NotableExists(ctx context.Context, notableType string, notableID uuid.UUID) (bool, error) {
	return f.notableExists, nil
}

func TestCreate_RejectsMissingParent(t *testing.T) {
	svc := NewNoteService(nil, &fakeNoteRepo{notableExists: false}, nil)

	req := &note.CreateNoteRequest{
		NotableType: "Author",
		NotableID:   uuid.New(),
		Content:     "Met at the book fair.",
	}

	_, err := svc.Create(context.Background(), req)

	assert.ErrorIs(t, err, note.ErrNotableNotFound)
}

func TestCreate_RejectsTooShortContent(t *testing.T) {
	svc := NewNoteService(nil, &fakeNoteRepo{notableExists: true}, nil)

	req := &note.CreateNoteRequest{
		NotableType: "Author",
		NotableID:   uuid.New(),
		Content:     "x",
	}

	_, err := svc.Create(context.Background(), req)

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.On("content"), "is too short (minimum is 2 characters)")
}

func TestCreate_RejectsUnknownNotableType(t *testing.T) {
	svc := NewNoteService(nil, &fakeNoteRepo{notableExists: true}, nil)

	req := &note.CreateNoteRequest{
		NotableType: "Invoice",
		NotableID:   uuid.New(),
		Content:     "Met at the book fair.",
	}

	_, err := svc.Create(context.Background(), req)

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.NotEmpty(t, verrs.On("notable_type"))
}

func TestGetByID_ReturnsRenderedContent(t *testing.T) {
	id := uuid.New()
	repo := &fakeNoteRepo{byID: map[uuid.UUID]*note.Note{
		id: {ID: id, NotableType: "Deal", Content: "**Signed** yesterday"},
	}}
	svc := NewNoteService(nil, repo, nil)

	got, err := svc.GetByID(context.Background(), id)

	require.NoError(t, err)
	assert.Contains(t, got.RenderedContent, "<strong>Signed</strong>")
	assert.Equal(t, "**Signed** yesterday", got.Preview)
}

func TestGetByID_NilID(t *testing.T) {
	svc := NewNoteService(nil, &fakeNoteRepo{}, nil)

	_, err := svc.GetByID(context.Background(), uuid.Nil)

	assert.ErrorIs(t, err, note.ErrNoteNotFound)
}
