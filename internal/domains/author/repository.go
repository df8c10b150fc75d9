package author

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Filter narrows and pages author listings.
type Filter struct {
	Status Status
	Genre  string
	Query  string // case-insensitive match on name/email
	Limit  int
	Offset int
}

// Repository defines data access for authors.
type Repository interface {
	// WithTx returns a copy bound to tx.
	WithTx(tx pgx.Tx) Repository

	// Create inserts a new author.
	// Errors: ErrDuplicateEmail on the unique email index.
	Create(ctx context.Context, a *Author) (*Author, error)

	// GetByID returns ErrAuthorNotFound if the id does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)

	// List returns authors ordered by last name, first name, plus the
	// total count for pagination.
	List(ctx context.Context, filter Filter) ([]Author, int64, error)

	// Update persists a with optimistic locking: the stored version must
	// equal currentVersion, otherwise ErrStaleWrite.
	Update(ctx context.Context, a *Author, currentVersion int) (*Author, error)

	// Delete removes the author row along with its notes and
	// representations. The restrict-on-books rule lives in the service.
	Delete(ctx context.Context, id uuid.UUID) error

	// BookCount returns the number of books owned by the author.
	BookCount(ctx context.Context, id uuid.UUID) (int, error)

	// EmailTaken checks email uniqueness, ignoring excludeID.
	EmailTaken(ctx context.Context, email string, excludeID uuid.UUID) (bool, error)
}
