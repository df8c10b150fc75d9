package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"publishing-crm/internal/domains/activity"
	"publishing-crm/internal/domains/agent"
	"publishing-crm/internal/infrastructure/database"
	"publishing-crm/internal/shared/validation"
)

type agentService struct {
	pool     *pgxpool.Pool
	repo     agent.Repository
	recorder activity.Recorder
}

func NewAgentService(pool *pgxpool.Pool, repo agent.Repository, recorder activity.Recorder) agent.Service {
	return &agentService{
		pool:     pool,
		repo:     repo,
		recorder: recorder,
	}
}

func (s *agentService) Create(ctx context.Context, req *agent.CreateAgentRequest) (*agent.Agent, error) {
	if err := req.Validate(); err != nil {
		return nil, validation.FromOzzo(err)
	}

	status := agent.Status(req.Status)
	if status == "" {
		status = agent.StatusActive
	}

	a := &agent.Agent{
		FirstName:         strings.TrimSpace(req.FirstName),
		LastName:          strings.TrimSpace(req.LastName),
		Email:             req.Email,
		Phone:             req.Phone,
		AgencyName:        req.AgencyName,
		CommissionRate:    req.CommissionRate,
		GenresRepresented: req.GenresRepresented,
		Status:            status,
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

	var created *agent.Agent
	err := database.WithinTransaction(ctx, s.pool, func(tx pgx.Tx) error {
		var err error
		created, err = s.repo.WithTx(tx).Create(ctx, a)
		if err != nil {
			return err
		}
		return s.recorder.WithTx(tx).Created(ctx, activity.TypeAgent, created.ID)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *agentService) GetByID(ctx context.Context, id uuid.UUID) (*agent.Agent, error) {
	if id == uuid.Nil {
		return nil, agent.ErrAgentNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *agentService) List(ctx context.Context, filter agent.Filter) ([]agent.Agent, int64, error) {
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

func (s *agentService) Update(ctx context.Context, id uuid.UUID, req *agent.UpdateAgentRequest) (*agent.Agent, error) {
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

	var updated *agent.Agent
	err = database.WithinTransaction(ctx, s.pool, func(tx pgx.Tx) error {
		var err error
		updated, err = s.repo.WithTx(tx).Update(ctx, &next, req.Version)
		if err != nil {
			return err
		}
		return s.recorder.WithTx(tx).Updated(ctx, activity.TypeAgent, id,
			current.TrackedFields(), updated.TrackedFields())
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *agentService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	return database.WithinTransaction(ctx, s.pool, func(tx pgx.Tx) error {
		if err := s.recorder.WithTx(tx).Deleted(ctx, activity.TypeAgent, id); err != nil {
			return err
		}
		return s.repo.WithTx(tx).Delete(ctx, id)
	})
}

func applyUpdate(a *agent.Agent, req *agent.UpdateAgentRequest) {
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
	if req.AgencyName != nil {
		a.AgencyName = req.AgencyName
	}
	if req.CommissionRate != nil {
		a.CommissionRate = req.CommissionRate
	}
	if req.GenresRepresented != nil {
		a.GenresRepresented = req.GenresRepresented
	}
	if req.Status != nil {
		a.Status = agent.Status(*req.Status)
	}
}
