package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"publishing-crm/internal/domains/activity"
	"publishing-crm/internal/domains/author"
	"publishing-crm/internal/infrastructure/database"
	"publishing-crm/internal/shared/validation"
)

type authorService struct {
	pool     *pgxpool.Pool
	repo     author.Repository
	recorder activity.Recorder
}

func NewAuthorService(pool *pgxpool.Pool, repo author.Repository, recorder activity.Recorder) author.Service {
	return &authorService{
		pool:     pool,
		repo:     repo,
		recorder: recorder,
	}
}

func (s *authorService) Create(ctx context.Context, req *author.CreateAuthorRequest) (*author.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, validation.FromOzzo(err)
	}

	status := author.Status(req.Status)
	if status == "" {
		status = author.StatusActive
	}

	a := &author.Author{
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		Email:       req.Email,
		Phone:       req.Phone,
		Status:      status,
		GenreFocus:  req.GenreFocus,
		Bio:         req.Bio,
		Website:     req.Website,
		DateOfBirth: req.DateOfBirth,
		Notes:       req.Notes,
	}

	if a.Email != nil && *a.Email != "" {
		taken, err := s.repo.EmailTaken(ctx, *a.Email, uuid.Nil)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, validation.New().Add("email", "has already been taken")
		}
	}

	var created *author.Author
	err := database.WithinTransaction(ctx, s.pool, func(tx pgx.Tx) error {
		var err error
		created, err = s.repo.WithTx(tx).Create(ctx, a)
		if err != nil {
			return err
		}
		return s.recorder.WithTx(tx).Created(ctx, activity.TypeAuthor, created.ID)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *authorService) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	if id == uuid.Nil {
		return nil, author.ErrAuthorNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *authorService) List(ctx context.Context, filter author.Filter) ([]author.Author, int64, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.repo.List(ctx, filter)
}

func (s *authorService) Update(ctx context.Context, id uuid.UUID, req *author.UpdateAuthorRequest) (*author.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, validation.FromOzzo(err)
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next := *current
	applyUpdate(&next, req)

	if next.Email != nil && *next.Email != "" {
		taken, err := s.repo.EmailTaken(ctx, *next.Email, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, validation.New().Add("email", "has already been taken")
		}
	}

	var updated *author.Author
	err = database.WithinTransaction(ctx, s.pool, func(tx pgx.Tx) error {
		var err error
		updated, err = s.repo.WithTx(tx).Update(ctx, &next, req.Version)
		if err != nil {
			return err
		}
		return s.recorder.WithTx(tx).Updated(ctx, activity.TypeAuthor, id,
			current.TrackedFields(), updated.TrackedFields())
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *authorService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	books, err := s.repo.BookCount(ctx, id)
	if err != nil {
		return err
	}
	if books > 0 {
		return author.ErrAuthorHasBooks
	}

	return database.WithinTransaction(ctx, s.pool, func(tx pgx.Tx) error {
		// The deletion record is written first so it survives; it keeps
		// identifying the id of a row that no longer exists.
		if err := s.recorder.WithTx(tx).Deleted(ctx, activity.TypeAuthor, id); err != nil {
			return err
		}
		return s.repo.WithTx(tx).Delete(ctx, id)
	})
}

func applyUpdate(a *author.Author, req *author.UpdateAuthorRequest) {
	if req.FirstName != nil {
		a.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		a.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Email != nil {
		a.Email = req.Email
	}
	if req.Phone != nil {
		a.Phone = req.Phone
	}
	if req.Status != nil {
		a.Status = author.Status(*req.Status)
	}
	if req.GenreFocus != nil {
		a.GenreFocus = req.GenreFocus
	}
	if req.Bio != nil {
		a.Bio = req.Bio
	}
	if req.Website != nil {
		a.Website = req.Website
	}
	if req.DateOfBirth != nil {
		a.DateOfBirth = req.DateOfBirth
	}
	if req.Notes != nil {
		a.Notes = req.Notes
	}
}
