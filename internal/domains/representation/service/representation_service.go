package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"publishing-crm/internal/domains/activity"
	"publishing-crm/internal/domains/representation"
	"publishing-crm/internal/infrastructure/database"
	"publishing-crm/internal/shared/validation"
)

type representationService struct {
	repo     representation.Repository
	recorder activity.Recorder
	now      func() time.Time
	run      func(ctx context.Context, fn func(tx pgx.Tx) error) error
}

func NewRepresentationService(pool *pgxpool.Pool, repo representation.Repository, recorder activity.Recorder) representation.Service {
	return &representationService{
		repo:     repo,
		recorder: recorder,
		now:      time.Now,
		run: func(ctx context.Context, fn func(tx pgx.Tx) error) error {
			return database.WithinTransaction(ctx, pool, fn)
		},
	}
}

func (s *representationService) Create(ctx context.Context, req *representation.CreateRepresentationRequest) (*representation.Representation, error) {
	if err := req.Validate(); err != nil {
		return nil, validation.FromOzzo(err)
	}

	start := req.StartDate
	if start == nil {
		today := s.today()
		start = &today
	}

	rep := &representation.Representation{
		AuthorID:  req.AuthorID,
		AgentID:   req.AgentID,
		Status:    representation.StatusActive,
		Primary:   req.Primary,
		StartDate: start,
		EndDate:   req.EndDate,
		Notes:     req.Notes,
	}

	if err := checkDateOrder(rep); err != nil {
		return nil, err
	}

	exists, err := s.repo.PairExists(ctx, rep.AuthorID, rep.AgentID, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, validation.New().Add("author_id", "has already been taken")
	}

	var created *representation.Representation
	err = s.run(ctx, func(tx pgx.Tx) error {
		repo := s.repo.WithTx(tx)

		var err error
		created, err = repo.Create(ctx, rep)
		if err != nil {
			return err
		}
		if created.Primary {
			if err := repo.UnsetOtherPrimaries(ctx, created.AuthorID, created.ID); err != nil {
				return err
			}
		}
		return s.recorder.WithTx(tx).Event(ctx, activity.TypeAuthor, created.AuthorID,
			activity.ActionRepresentationAdded, "Representation was added")
	})
	if err != nil {
		// A raced insert lands on the same unique index the PairExists
		// pre-check reads; report it the same way.
		if errors.Is(err, representation.ErrDuplicatePair) {
			return nil, validation.New().Add("author_id", "has already been taken")
		}
		return nil, err
	}
	return created, nil
}

func (s *representationService) GetByID(ctx context.Context, id uuid.UUID) (*representation.Representation, error) {
	if id == uuid.Nil {
		return nil, representation.ErrRepresentationNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *representationService) List(ctx context.Context, filter representation.Filter) ([]representation.Representation, int64, error) {
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

func (s *representationService) Update(ctx context.Context, id uuid.UUID, req *representation.UpdateRepresentationRequest) (*representation.Representation, error) {
	if err := req.Validate(); err != nil {
		return nil, validation.FromOzzo(err)
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next := *current
	if req.Primary != nil {
		next.Primary = *req.Primary
	}
	if req.Status != nil {
		next.Status = representation.Status(*req.Status)
	}
	if req.StartDate != nil {
		next.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		next.EndDate = req.EndDate
	}
	if req.Notes != nil {
		next.Notes = req.Notes
	}

	if err := checkDateOrder(&next); err != nil {
		return nil, err
	}

	var updated *representation.Representation
	err = s.run(ctx, func(tx pgx.Tx) error {
		repo := s.repo.WithTx(tx)

		var err error
		updated, err = repo.Update(ctx, &next, req.Version)
		if err != nil {
			return err
		}
		if updated.Primary {
			return repo.UnsetOtherPrimaries(ctx, updated.AuthorID, updated.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *representationService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	return s.run(ctx, func(tx pgx.Tx) error {
		return s.repo.WithTx(tx).Delete(ctx, id)
	})
}

func (s *representationService) End(ctx context.Context, id uuid.UUID) (*representation.Representation, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next := *current
	next.Status = representation.StatusEnded
	today := s.today()
	next.EndDate = &today

	var updated *representation.Representation
	err = s.run(ctx, func(tx pgx.Tx) error {
		var err error
		updated, err = s.repo.WithTx(tx).Update(ctx, &next, current.Version)
		if err != nil {
			return err
		}
		return s.recorder.WithTx(tx).Event(ctx, activity.TypeAuthor, current.AuthorID,
			activity.ActionRepresentationEnded, "Representation was ended")
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *representationService) today() time.Time {
	y, m, d := s.now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func checkDateOrder(rep *representation.Representation) error {
	if rep.StartDate == nil || rep.EndDate == nil {
		return nil
	}
	if !rep.EndDate.After(*rep.StartDate) {
		return validation.New().Add("end_date", "must be after start date")
	}
	return nil
}
