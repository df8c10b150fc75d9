package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"publishing-crm/internal/domains/activity"
	"publishing-crm/internal/domains/note"
	"publishing-crm/internal/infrastructure/database"
	"publishing-crm/internal/shared/validation"
)

const previewLength = 100

type noteService struct {
	pool     *pgxpool.Pool
	repo     note.Repository
	recorder activity.Recorder
}

func NewNoteService(pool *pgxpool.Pool, repo note.Repository, recorder activity.Recorder) note.Service {
	return &noteService{
		pool:     pool,
		repo:     repo,
		recorder: recorder,
	}
}

func (s *noteService) Create(ctx context.Context, req *note.CreateNoteRequest) (*note.Note, error) {
	if err := req.Validate(); err != nil {
		return nil, validation.FromOzzo(err)
	}

	exists, err := s.repo.NotableExists(ctx, req.NotableType, req.NotableID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, note.ErrNotableNotFound
	}

	n := &note.Note{
		NotableType: req.NotableType,
		NotableID:   req.NotableID,
		Content:     req.Content,
		Pinned:      req.Pinned,
	}

	var created *note.Note
	err = database.WithinTransaction(ctx, s.pool, func(tx pgx.Tx) error {
		var err error
		created, err = s.repo.WithTx(tx).Create(ctx, n)
		if err != nil {
			return err
		}
		return s.recorder.WithTx(tx).Event(ctx, created.NotableType, created.NotableID,
			activity.ActionNoteAdded, "Note was added")
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *noteService) GetByID(ctx context.Context, id uuid.UUID) (*note.Rendered, error) {
	if id == uuid.Nil {
		return nil, note.ErrNoteNotFound
	}
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return render(n), nil
}

func (s *noteService) List(ctx context.Context, filter note.Filter) ([]note.Rendered, int64, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	notes, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	rendered := make([]note.Rendered, 0, len(notes))
	for i := range notes {
		rendered = append(rendered, *render(&notes[i]))
	}
	return rendered, total, nil
}

func (s *noteService) Update(ctx context.Context, id uuid.UUID, req *note.UpdateNoteRequest) (*note.Note, error) {
	if err := req.Validate(); err != nil {
		return nil, validation.FromOzzo(err)
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next := *current
	if req.Content != nil {
		next.Content = *req.Content
	}
	if req.Pinned != nil {
		next.Pinned = *req.Pinned
	}

	var updated *note.Note
	err = database.WithinTransaction(ctx, s.pool, func(tx pgx.Tx) error {
		var err error
		updated, err = s.repo.WithTx(tx).Update(ctx, &next)
		if err != nil {
			return err
		}
		return s.recorder.WithTx(tx).Event(ctx, updated.NotableType, updated.NotableID,
			activity.ActionNoteUpdated, "Note was updated")
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *noteService) Delete(ctx context.Context, id uuid.UUID) error {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	return database.WithinTransaction(ctx, s.pool, func(tx pgx.Tx) error {
		if err := s.repo.WithTx(tx).Delete(ctx, id); err != nil {
			return err
		}
		return s.recorder.WithTx(tx).Event(ctx, current.NotableType, current.NotableID,
			activity.ActionNoteDeleted, "Note was deleted")
	})
}

func render(n *note.Note) *note.Rendered {
	return &note.Rendered{
		Note:            *n,
		RenderedContent: n.RenderedContent(),
		Preview:         n.Preview(previewLength),
	}
}
