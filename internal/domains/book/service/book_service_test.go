package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"publishing-crm/internal/domains/book"
	"publishing-crm/internal/shared/validation"
)

type fakeBookRepo struct {
	byID            map[uuid.UUID]*book.Book
	isbnTaken       bool
	activeDealCount int
	deleted         []uuid.UUID
}

func (f *fakeBookRepo) WithTx(tx pgx.Tx) book.Repository { return f }

func (f *fakeBookRepo) Create(ctx context.Context, b *book.Book) (*book.Book, error) {
	return b, nil
}

func (f *fakeBookRepo) GetByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookRepo) List(ctx context.Context, filter book.Filter) ([]book.Book, int64, error) {
	return nil, 0, nil
}

func (f *fakeBookRepo) Update(ctx context.Context, b *book.Book, currentVersion int) (*book.Book, error) {
	return b, nil
}

func (f *fakeBookRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeBookRepo) ActiveDealCount(ctx context.Context, id uuid.UUID) (int, error) {
	return f.activeDealCount, nil
}

func (f *fakeBookRepo) ISBNTaken(ctx context.Context, isbn string, excludeID uuid.UUID) (bool, error) {
	return f.isbnTaken, nil
}

func fieldMessages(t *testing.T, err error, field string) []string {
	t.Helper()
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	return verrs.On(field)
}

func validCreateRequest() *book.CreateBookRequest {
	return &book.CreateBookRequest{
		AuthorID: uuid.New(),
		Title:    "The Midnight Draft",
		Genre:    "thriller",
	}
}

func TestCreate_RejectsFuturePublicationDateForPublished(t *testing.T) {
	svc := NewBookService(nil, &fakeBookRepo{}, nil)

	future := time.Now().UTC().AddDate(1, 0, 0)
	req := validCreateRequest()
	req.Status = "published"
	req.PublicationDate = &future

	_, err := svc.Create(context.Background(), req)

	assert.Contains(t, fieldMessages(t, err, "publication_date"),
		"can't be in the future for published books")
}

func TestCreate_RejectsDuplicateISBN(t *testing.T) {
	svc := NewBookService(nil, &fakeBookRepo{isbnTaken: true}, nil)

	isbn := "9780306406157"
	req := validCreateRequest()
	req.ISBN = &isbn

	_, err := svc.Create(context.Background(), req)

	assert.Contains(t, fieldMessages(t, err, "isbn"), "has already been taken")
}

func TestCreate_RejectsMalformedISBN(t *testing.T) {
	svc := NewBookService(nil, &fakeBookRepo{}, nil)

	isbn := "not-an-isbn"
	req := validCreateRequest()
	req.ISBN = &isbn

	_, err := svc.Create(context.Background(), req)

	assert.NotEmpty(t, fieldMessages(t, err, "isbn"))
}

func TestDelete_RestrictedWhileActiveDealsExist(t *testing.T) {
	id := uuid.New()
	repo := &fakeBookRepo{
		byID:            map[uuid.UUID]*book.Book{id: {ID: id, Title: "The Midnight Draft"}},
		activeDealCount: 2,
	}
	svc := NewBookService(nil, repo, nil)

	err := svc.Delete(context.Background(), id)

	assert.ErrorIs(t, err, book.ErrBookHasDeals)
	assert.Empty(t, repo.deleted)
}

func TestDelete_UnknownBook(t *testing.T) {
	svc := NewBookService(nil, &fakeBookRepo{byID: map[uuid.UUID]*book.Book{}}, nil)

	err := svc.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, book.ErrBookNotFound)
}

func TestGetByID_NilID(t *testing.T) {
	svc := NewBookService(nil, &fakeBookRepo{}, nil)

	_, err := svc.GetByID(context.Background(), uuid.Nil)

	assert.ErrorIs(t, err, book.ErrBookNotFound)
}
