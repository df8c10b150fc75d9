package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"publishing-crm/internal/domains/activity"
	"publishing-crm/internal/domains/author"
	"publishing-crm/internal/domains/prospect"
	"publishing-crm/internal/infrastructure/database"
	"publishing-crm/internal/shared/validation"
)

type prospectService struct {
	repo     prospect.Repository
	authors  author.Repository
	recorder activity.Recorder
	now      func() time.Time
	run      func(ctx context.Context, fn func(tx pgx.Tx) error) error
}

func NewProspectService(pool *pgxpool.Pool, repo prospect.Repository, authors author.Repository, recorder activity.Recorder) prospect.Service {
	return &prospectService{
		repo:     repo,
		authors:  authors,
		recorder: recorder,
		now:      time.Now,
		run: func(ctx context.Context, fn func(tx pgx.Tx) error) error {
			return database.WithinTransaction(ctx, pool, fn)
		},
	}
}

func (s *prospectService) Create(ctx context.Context, req *prospect.CreateProspectRequest) (*prospect.Prospect, error) {
	if err := req.Validate(); err != nil {
		return nil, validation.FromOzzo(err)
	}

	p := &prospect.Prospect{
		AgentID:            req.AgentID,
		FirstName:          strings.TrimSpace(req.FirstName),
		LastName:           strings.TrimSpace(req.LastName),
		Email:              req.Email,
		Phone:              req.Phone,
		Source:             prospect.Source(req.Source),
		Stage:              prospect.StageNew,
		GenreInterest:      req.GenreInterest,
		ProjectTitle:       req.ProjectTitle,
		ProjectDescription: req.ProjectDescription,
		EstimatedWordCount: req.EstimatedWordCount,
		FollowUpDate:       req.FollowUpDate,
		LastContactDate:    req.LastContactDate,
		Notes:              req.Notes,
	}

	var created *prospect.Prospect
	err := s.run(ctx, func(tx pgx.Tx) error {
		var err error
		created, err = s.repo.WithTx(tx).Create(ctx, p)
		if err != nil {
			return err
		}
		return s.recorder.WithTx(tx).Created(ctx, activity.TypeProspect, created.ID)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *prospectService) GetByID(ctx context.Context, id uuid.UUID) (*prospect.Prospect, error) {
	if id == uuid.Nil {
		return nil, prospect.ErrProspectNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *prospectService) List(ctx context.Context, filter prospect.Filter) ([]prospect.Prospect, int64, error) {
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

func (s *prospectService) Update(ctx context.Context, id uuid.UUID, req *prospect.UpdateProspectRequest) (*prospect.Prospect, error) {
	if err := req.Validate(); err != nil {
		return nil, validation.FromOzzo(err)
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next := *current
	applyUpdate(&next, req)

	var updated *prospect.Prospect
	err = s.run(ctx, func(tx pgx.Tx) error {
		var err error
		updated, err = s.repo.WithTx(tx).Update(ctx, &next, req.Version)
		if err != nil {
			return err
		}
		return s.recorder.WithTx(tx).Updated(ctx, activity.TypeProspect, id,
			current.TrackedFields(), updated.TrackedFields())
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *prospectService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	return s.run(ctx, func(tx pgx.Tx) error {
		if err := s.recorder.WithTx(tx).Deleted(ctx, activity.TypeProspect, id); err != nil {
			return err
		}
		return s.repo.WithTx(tx).Delete(ctx, id)
	})
}

func (s *prospectService) TransitionTo(ctx context.Context, id uuid.UUID, stage prospect.Stage) (*prospect.Prospect, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !stage.Valid() {
		return nil, validation.New().Add("stage", fmt.Sprintf("%s is not a valid stage", stage))
	}
	if err := checkTransition(current.Stage, stage); err != nil {
		return nil, err
	}

	return s.moveStage(ctx, current, stage, nil)
}

func (s *prospectService) ConvertToAuthor(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if current.Stage == prospect.StageConverted {
		return nil, validation.New().Add("stage", "prospect has already been converted")
	}
	if current.Stage != prospect.StageNegotiating {
		return nil, validation.New().Add("stage", "must be in negotiating stage to convert")
	}

	// An email collision is the one author validation a clean prospect
	// can still trip over; surface it the same way, on the prospect.
	if current.Email != nil && *current.Email != "" {
		taken, err := s.authors.EmailTaken(ctx, *current.Email, uuid.Nil)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, validation.New().Add("email", "has already been taken")
		}
	}

	seed := fmt.Sprintf("Converted from prospect. Project: %s", strVal(current.ProjectTitle))
	a := &author.Author{
		FirstName:  current.FirstName,
		LastName:   current.LastName,
		Email:      current.Email,
		Phone:      current.Phone,
		GenreFocus: current.GenreInterest,
		Status:     author.StatusActive,
		Notes:      &seed,
	}

	var created *author.Author
	err = s.run(ctx, func(tx pgx.Tx) error {
		var err error
		created, err = s.authors.WithTx(tx).Create(ctx, a)
		if err != nil {
			return err
		}
		rec := s.recorder.WithTx(tx)
		if err := rec.Created(ctx, activity.TypeAuthor, created.ID); err != nil {
			return err
		}

		next := *current
		next.Stage = prospect.StageConverted
		changedAt := s.now()
		next.StageChangedAt = &changedAt

		updated, err := s.repo.WithTx(tx).Update(ctx, &next, current.Version)
		if err != nil {
			return err
		}
		return rec.Updated(ctx, activity.TypeProspect, id,
			current.TrackedFields(), updated.TrackedFields())
	})
	if err != nil {
		// The EmailTaken pre-check can lose a race to a concurrent author
		// insert; keep the conversion error in prospect terms either way.
		if errors.Is(err, author.ErrDuplicateEmail) {
			return nil, validation.New().Add("email", "has already been taken")
		}
		return nil, err
	}
	return created, nil
}

func (s *prospectService) Decline(ctx context.Context, id uuid.UUID, reason string) (*prospect.Prospect, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(reason) == "" {
		return nil, validation.New().Add("decline_reason", "is required when declining")
	}

	allowed := prospect.StageTransitions[current.Stage]
	if len(allowed) == 0 {
		return nil, validation.New().Add("stage", fmt.Sprintf("cannot transition from %s", current.Stage))
	}
	if !current.Stage.CanTransitionTo(prospect.StageDeclined) {
		return nil, validation.New().Add("stage", fmt.Sprintf("cannot decline from %s", current.Stage))
	}

	return s.moveStage(ctx, current, prospect.StageDeclined, &reason)
}

// moveStage persists a stage change with the timestamp and, through the
// tracked-field diff, a status_changed activity.
func (s *prospectService) moveStage(ctx context.Context, current *prospect.Prospect, stage prospect.Stage, declineReason *string) (*prospect.Prospect, error) {
	next := *current
	next.Stage = stage
	changedAt := s.now()
	next.StageChangedAt = &changedAt
	if declineReason != nil {
		next.DeclineReason = declineReason
	}

	var updated *prospect.Prospect
	err := s.run(ctx, func(tx pgx.Tx) error {
		var err error
		updated, err = s.repo.WithTx(tx).Update(ctx, &next, current.Version)
		if err != nil {
			return err
		}
		return s.recorder.WithTx(tx).Updated(ctx, activity.TypeProspect, current.ID,
			current.TrackedFields(), updated.TrackedFields())
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func checkTransition(from, to prospect.Stage) error {
	allowed := prospect.StageTransitions[from]
	if len(allowed) == 0 {
		return validation.New().Add("stage", fmt.Sprintf("cannot transition from %s", from))
	}
	if !from.CanTransitionTo(to) {
		return validation.New().Add("stage", fmt.Sprintf("cannot transition from %s to %s", from, to))
	}
	return nil
}

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func applyUpdate(p *prospect.Prospect, req *prospect.UpdateProspectRequest) {
	if req.AgentID != nil {
		p.AgentID = req.AgentID
	}
	if req.FirstName != nil {
		p.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		p.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Email != nil {
		p.Email = req.Email
	}
	if req.Phone != nil {
		p.Phone = req.Phone
	}
	if req.Source != nil {
		p.Source = prospect.Source(*req.Source)
	}
	if req.GenreInterest != nil {
		p.GenreInterest = req.GenreInterest
	}
	if req.ProjectTitle != nil {
		p.ProjectTitle = req.ProjectTitle
	}
	if req.ProjectDescription != nil {
		p.ProjectDescription = req.ProjectDescription
	}
	if req.EstimatedWordCount != nil {
		p.EstimatedWordCount = req.EstimatedWordCount
	}
	if req.FollowUpDate != nil {
		p.FollowUpDate = req.FollowUpDate
	}
	if req.LastContactDate != nil {
		p.LastContactDate = req.LastContactDate
	}
	if req.Notes != nil {
		p.Notes = req.Notes
	}
}
