package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"publishing-crm/internal/domains/activity"
	"publishing-crm/internal/domains/book"
	"publishing-crm/internal/infrastructure/database"
	"publishing-crm/internal/shared/validation"
)

type bookService struct {
	pool     *pgxpool.Pool
	repo     book.Repository
	recorder activity.Recorder
	now      func() time.Time
}

func NewBookService(pool *pgxpool.Pool, repo book.Repository, recorder activity.Recorder) book.Service {
	return &bookService{
		pool:     pool,
		repo:     repo,
		recorder: recorder,
		now:      time.Now,
	}
}

func (s *bookService) Create(ctx context.Context, req *book.CreateBookRequest) (*book.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, validation.FromOzzo(err)
	}

	status := book.Status(req.Status)
	if status == "" {
		status = book.StatusManuscript
	}

	b := &book.Book{
		AuthorID:        req.AuthorID,
		Title:           strings.TrimSpace(req.Title),
		Subtitle:        req.Subtitle,
		Genre:           strings.TrimSpace(req.Genre),
		Subgenre:        req.Subgenre,
		Status:          status,
		Format:          book.Format(req.Format),
		ISBN:            req.ISBN,
		Description:     req.Description,
		Synopsis:        req.Synopsis,
		WordCount:       req.WordCount,
		PageCount:       req.PageCount,
		ListPrice:       req.ListPrice,
		PublicationDate: req.PublicationDate,
		CoverImageURL:   req.CoverImageURL,
		Notes:           req.Notes,
	}

	if err := s.checkPublicationDate(b); err != nil {
		return nil, err
	}
	if err := s.checkISBN(ctx, b.ISBN, uuid.Nil); err != nil {
		return nil, err
	}

	var created *book.Book
	err := database.WithinTransaction(ctx, s.pool, func(tx pgx.Tx) error {
		var err error
		created, err = s.repo.WithTx(tx).Create(ctx, b)
		if err != nil {
			return err
		}
		return s.recorder.WithTx(tx).Created(ctx, activity.TypeBook, created.ID)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *bookService) GetByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	if id == uuid.Nil {
		return nil, book.ErrBookNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *bookService) List(ctx context.Context, filter book.Filter) ([]book.Book, int64, error) {
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

func (s *bookService) Update(ctx context.Context, id uuid.UUID, req *book.UpdateBookRequest) (*book.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, validation.FromOzzo(err)
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next := *current
	applyUpdate(&next, req)

	if err := s.checkPublicationDate(&next); err != nil {
		return nil, err
	}
	if err := s.checkISBN(ctx, next.ISBN, id); err != nil {
		return nil, err
	}

	var updated *book.Book
	err = database.WithinTransaction(ctx, s.pool, func(tx pgx.Tx) error {
		var err error
		updated, err = s.repo.WithTx(tx).Update(ctx, &next, req.Version)
		if err != nil {
			return err
		}
		return s.recorder.WithTx(tx).Updated(ctx, activity.TypeBook, id,
			current.TrackedFields(), updated.TrackedFields())
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *bookService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	active, err := s.repo.ActiveDealCount(ctx, id)
	if err != nil {
		return err
	}
	if active > 0 {
		return book.ErrBookHasDeals
	}

	return database.WithinTransaction(ctx, s.pool, func(tx pgx.Tx) error {
		if err := s.recorder.WithTx(tx).Deleted(ctx, activity.TypeBook, id); err != nil {
			return err
		}
		return s.repo.WithTx(tx).Delete(ctx, id)
	})
}

func (s *bookService) checkPublicationDate(b *book.Book) error {
	if b.Status != book.StatusPublished || b.PublicationDate == nil {
		return nil
	}
	y, m, d := s.now().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	if b.PublicationDate.After(today) {
		return validation.New().Add("publication_date", "can't be in the future for published books")
	}
	return nil
}

func (s *bookService) checkISBN(ctx context.Context, isbn *string, excludeID uuid.UUID) error {
	if isbn == nil || *isbn == "" {
		return nil
	}
	taken, err := s.repo.ISBNTaken(ctx, *isbn, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return validation.New().Add("isbn", "has already been taken")
	}
	return nil
}

func applyUpdate(b *book.Book, req *book.UpdateBookRequest) {
	if req.AuthorID != nil {
		b.AuthorID = *req.AuthorID
	}
	if req.Title != nil {
		b.Title = strings.TrimSpace(*req.Title)
	}
	if req.Subtitle != nil {
		b.Subtitle = req.Subtitle
	}
	if req.Genre != nil {
		b.Genre = strings.TrimSpace(*req.Genre)
	}
	if req.Subgenre != nil {
		b.Subgenre = req.Subgenre
	}
	if req.Status != nil {
		b.Status = book.Status(*req.Status)
	}
	if req.Format != nil {
		b.Format = book.Format(*req.Format)
	}
	if req.ISBN != nil {
		b.ISBN = req.ISBN
	}
	if req.Description != nil {
		b.Description = req.Description
	}
	if req.Synopsis != nil {
		b.Synopsis = req.Synopsis
	}
	if req.WordCount != nil {
		b.WordCount = req.WordCount
	}
	if req.PageCount != nil {
		b.PageCount = req.PageCount
	}
	if req.ListPrice != nil {
		b.ListPrice = req.ListPrice
	}
	if req.PublicationDate != nil {
		b.PublicationDate = req.PublicationDate
	}
	if req.CoverImageURL != nil {
		b.CoverImageURL = req.CoverImageURL
	}
	if req.Notes != nil {
		b.Notes = req.Notes
	}
}
