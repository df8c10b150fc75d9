package book

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type Filter struct {
	Status   Status
	Genre    string
	AuthorID uuid.UUID
	Query    string
	Limit    int
	Offset   int
}

type Repository interface {
	WithTx(tx pgx.Tx) Repository

	// Create inserts the book and bumps the owning author's books_count.
	Create(ctx context.Context, b *Book) (*Book, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Book, error)
	List(ctx context.Context, filter Filter) ([]Book, int64, error)
	Update(ctx context.Context, b *Book, currentVersion int) (*Book, error)
	// Delete removes the book, its notes, any remaining inactive deals,
	// and decrements the author's books_count.
	Delete(ctx context.Context, id uuid.UUID) error

	// ActiveDealCount counts deals still in an active business status.
	ActiveDealCount(ctx context.Context, id uuid.UUID) (int, error)
	ISBNTaken(ctx context.Context, isbn string, excludeID uuid.UUID) (bool, error)
}
