package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"publishing-crm/internal/domains/activity"
	"publishing-crm/internal/domains/publisher"
	"publishing-crm/internal/infrastructure/database"
	"publishing-crm/internal/shared/validation"
)

type publisherService struct {
	pool     *pgxpool.Pool
	repo     publisher.Repository
	recorder activity.Recorder
}

func NewPublisherService(pool *pgxpool.Pool, repo publisher.Repository, recorder activity.Recorder) publisher.Service {
	return &publisherService{
		pool:     pool,
		repo:     repo,
		recorder: recorder,
	}
}

func (s *publisherService) Create(ctx context.Context, req *publisher.CreatePublisherRequest) (*publisher.Publisher, error) {
	if err := req.Validate(); err != nil {
		return nil, validation.FromOzzo(err)
	}

	size := publisher.Size(req.Size)
	if size == "" {
		size = publisher.SizeIndie
	}
	status := publisher.Status(req.Status)
	if status == "" {
		status = publisher.StatusActive
	}

	p := &publisher.Publisher{
		Name:         strings.TrimSpace(req.Name),
		Imprint:      req.Imprint,
		Size:         size,
		Status:       status,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		Phone:        req.Phone,
		Website:      req.Website,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		State:        req.State,
		PostalCode:   req.PostalCode,
		Country:      req.Country,
	}

	var created *publisher.Publisher
	err := database.WithinTransaction(ctx, s.pool, func(tx pgx.Tx) error {
		var err error
		created, err = s.repo.WithTx(tx).Create(ctx, p)
		if err != nil {
			return err
		}
		return s.recorder.WithTx(tx).Created(ctx, activity.TypePublisher, created.ID)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *publisherService) GetByID(ctx context.Context, id uuid.UUID) (*publisher.Publisher, error) {
	if id == uuid.Nil {
		return nil, publisher.ErrPublisherNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *publisherService) List(ctx context.Context, filter publisher.Filter) ([]publisher.Publisher, int64, error) {
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

func (s *publisherService) Update(ctx context.Context, id uuid.UUID, req *publisher.UpdatePublisherRequest) (*publisher.Publisher, error) {
	if err := req.Validate(); err != nil {
		return nil, validation.FromOzzo(err)
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next := *current
	applyUpdate(&next, req)

	var updated *publisher.Publisher
	err = database.WithinTransaction(ctx, s.pool, func(tx pgx.Tx) error {
		var err error
		updated, err = s.repo.WithTx(tx).Update(ctx, &next, req.Version)
		if err != nil {
			return err
		}
		return s.recorder.WithTx(tx).Updated(ctx, activity.TypePublisher, id,
			current.TrackedFields(), updated.TrackedFields())
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *publisherService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	deals, err := s.repo.DealCount(ctx, id)
	if err != nil {
		return err
	}
	if deals > 0 {
		return publisher.ErrPublisherHasDeals
	}

	return database.WithinTransaction(ctx, s.pool, func(tx pgx.Tx) error {
		if err := s.recorder.WithTx(tx).Deleted(ctx, activity.TypePublisher, id); err != nil {
			return err
		}
		return s.repo.WithTx(tx).Delete(ctx, id)
	})
}

func applyUpdate(p *publisher.Publisher, req *publisher.UpdatePublisherRequest) {
	if req.Name != nil {
		p.Name = strings.TrimSpace(*req.Name)
	}
	if req.Imprint != nil {
		p.Imprint = req.Imprint
	}
	if req.Size != nil {
		p.Size = publisher.Size(*req.Size)
	}
	if req.Status != nil {
		p.Status = publisher.Status(*req.Status)
	}
	if req.ContactName != nil {
		p.ContactName = req.ContactName
	}
	if req.ContactEmail != nil {
		p.ContactEmail = req.ContactEmail
	}
	if req.Phone != nil {
		p.Phone = req.Phone
	}
	if req.Website != nil {
		p.Website = req.Website
	}
	if req.AddressLine1 != nil {
		p.AddressLine1 = req.AddressLine1
	}
	if req.AddressLine2 != nil {
		p.AddressLine2 = req.AddressLine2
	}
	if req.City != nil {
		p.City = req.City
	}
	if req.State != nil {
		p.State = req.State
	}
	if req.PostalCode != nil {
		p.PostalCode = req.PostalCode
	}
	if req.Country != nil {
		p.Country = req.Country
	}
}
