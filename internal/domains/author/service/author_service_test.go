package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"publishing-crm/internal/domains/author"
	"publishing-crm/internal/shared/validation"
)

type fakeAuthorRepo struct {
	byID       map[uuid.UUID]*author.Author
	emailTaken bool
	bookCount  int
	deleted    []uuid.UUID
}

func (f *fakeAuthorRepo) WithTx(tx pgx.Tx) author.Repository { return f }

func (f *fakeAuthorRepo) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	return a, nil
}

func (f *fakeAuthorRepo) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, author.ErrAuthorNotFound
	}
	copied := *a
	return &copied, nil
}

func (f *fakeAuthorRepo) List(ctx context.Context, filter author.Filter) ([]author.Author, int64, error) {
	return nil, 0, nil
}

func (f *fakeAuthorRepo) Update(ctx context.Context, a *author.Author, currentVersion int) (*author.Author, error) {
	return a, nil
}

func (f *fakeAuthorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeAuthorRepo) BookCount(ctx context.Context, id uuid.UUID) (int, error) {
	return f.bookCount, nil
}

func (f *fakeAuthorRepo) EmailTaken(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	return f.emailTaken, nil
}

func TestCreate_RejectsDuplicateEmail(t *testing.T) {
	svc := NewAuthorService(nil, &fakeAuthorRepo{emailTaken: true}, nil)

	email := "jane@example.com"
	req := &author.CreateAuthorRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     &email,
	}

	_, err := svc.Create(context.Background(), req)

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.On("email"), "has already been taken")
}

func TestCreate_RequiresName(t *testing.T) {
	svc := NewAuthorService(nil, &fakeAuthorRepo{}, nil)

	_, err := svc.Create(context.Background(), &author.CreateAuthorRequest{})

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.NotEmpty(t, verrs.On("first_name"))
	assert.NotEmpty(t, verrs.On("last_name"))
}

func TestDelete_RestrictedWhileBooksExist(t *testing.T) {
	id := uuid.New()
	repo := &fakeAuthorRepo{
		byID:      map[uuid.UUID]*author.Author{id: {ID: id, FirstName: "Jane", LastName: "Doe"}},
		bookCount: 3,
	}
	svc := NewAuthorService(nil, repo, nil)

	err := svc.Delete(context.Background(), id)

	assert.ErrorIs(t, err, author.ErrAuthorHasBooks)
	assert.Empty(t, repo.deleted)
}

func TestDelete_UnknownAuthor(t *testing.T) {
	svc := NewAuthorService(nil, &fakeAuthorRepo{byID: map[uuid.UUID]*author.Author{}}, nil)

	err := svc.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, author.ErrAuthorNotFound)
}

func TestGetByID_NilID(t *testing.T) {
	svc := NewAuthorService(nil, &fakeAuthorRepo{}, nil)

	_, err := svc.GetByID(context.Background(), uuid.Nil)

	assert.ErrorIs(t, err, author.ErrAuthorNotFound)
}
