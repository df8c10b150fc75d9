package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"publishing-crm/internal/domains/activity"
	"publishing-crm/internal/domains/deal"
	"publishing-crm/internal/infrastructure/database"
	"publishing-crm/internal/shared/validation"
)

type dealService struct {
	repo     deal.Repository
	recorder activity.Recorder
	run      func(ctx context.Context, fn func(tx pgx.Tx) error) error
}

func NewDealService(pool *pgxpool.Pool, repo deal.Repository, recorder activity.Recorder) deal.Service {
	return &dealService{
		repo:     repo,
		recorder: recorder,
		run: func(ctx context.Context, fn func(tx pgx.Tx) error) error {
			return database.WithinTransaction(ctx, pool, fn)
		},
	}
}

func (s *dealService) Create(ctx context.Context, req *deal.CreateDealRequest) (*deal.Deal, error) {
	if err := req.Validate(); err != nil {
		return nil, validation.FromOzzo(err)
	}

	status := deal.Status(req.Status)
	if status == "" {
		status = deal.StatusNegotiating
	}
	currency := req.AdvanceCurrency
	if currency == "" {
		currency = "USD"
	}

	d := &deal.Deal{
		BookID:               req.BookID,
		PublisherID:          req.PublisherID,
		AgentID:              req.AgentID,
		DealType:             deal.Type(req.DealType),
		Status:               status,
		AdvanceAmount:        req.AdvanceAmount,
		AdvanceCurrency:      currency,
		RoyaltyRateHardcover: req.RoyaltyRateHardcover,
		RoyaltyRatePaperback: req.RoyaltyRatePaperback,
		RoyaltyRateEbook:     req.RoyaltyRateEbook,
		OfferDate:            req.OfferDate,
		ContractDate:         req.ContractDate,
		DeliveryDate:         req.DeliveryDate,
		PublicationDate:      req.PublicationDate,
		OptionBooks:          req.OptionBooks,
		TermsSummary:         req.TermsSummary,
		Notes:                req.Notes,
	}

	if err := checkDateOrder(d); err != nil {
		return nil, err
	}
	if err := s.checkPair(ctx, d.BookID, d.PublisherID, uuid.Nil); err != nil {
		return nil, err
	}

	var created *deal.Deal
	err := s.run(ctx, func(tx pgx.Tx) error {
		var err error
		created, err = s.repo.WithTx(tx).Create(ctx, d)
		if err != nil {
			return err
		}
		rec := s.recorder.WithTx(tx)
		if err := rec.Created(ctx, activity.TypeDeal, created.ID); err != nil {
			return err
		}
		// The book's own timeline also shows the deal landing.
		return rec.Event(ctx, activity.TypeBook, created.BookID, activity.ActionDealCreated, "Deal was created")
	})
	if err != nil {
		// A raced insert lands on the same unique index the PairExists
		// pre-check reads; report it the same way.
		if errors.Is(err, deal.ErrDuplicatePair) {
			return nil, validation.New().Add("book_id",
				"already has a deal with this publisher. A duplicate deal already exists.")
		}
		return nil, err
	}
	return created, nil
}

func (s *dealService) GetByID(ctx context.Context, id uuid.UUID) (*deal.Deal, error) {
	if id == uuid.Nil {
		return nil, deal.ErrDealNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *dealService) List(ctx context.Context, filter deal.Filter) ([]deal.Deal, int64, error) {
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

func (s *dealService) Update(ctx context.Context, id uuid.UUID, req *deal.UpdateDealRequest) (*deal.Deal, error) {
	if err := req.Validate(); err != nil {
		return nil, validation.FromOzzo(err)
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next := *current
	applyUpdate(&next, req)

	if err := checkDateOrder(&next); err != nil {
		return nil, err
	}

	var updated *deal.Deal
	err = s.run(ctx, func(tx pgx.Tx) error {
		var err error
		updated, err = s.repo.WithTx(tx).Update(ctx, &next, req.Version)
		if err != nil {
			return err
		}
		return s.recorder.WithTx(tx).Updated(ctx, activity.TypeDeal, id,
			current.TrackedFields(), updated.TrackedFields())
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *dealService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	return s.run(ctx, func(tx pgx.Tx) error {
		if err := s.recorder.WithTx(tx).Deleted(ctx, activity.TypeDeal, id); err != nil {
			return err
		}
		return s.repo.WithTx(tx).Delete(ctx, id)
	})
}

func (s *dealService) Economics(ctx context.Context, id uuid.UUID) (*deal.Economics, error) {
	d, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	rate := decimal.Zero
	if d.AgentID != nil {
		rate, err = s.repo.AgentCommissionRate(ctx, *d.AgentID)
		if err != nil {
			return nil, err
		}
	}

	return &deal.Economics{
		AdvanceAmount:    d.TotalDealValue(),
		FormattedAdvance: d.FormattedAdvance(),
		AgentCommission:  d.AgentCommission(rate),
		AuthorNetAdvance: d.AuthorNetAdvance(rate),
		DaysToClose:      d.DaysToClose(),
	}, nil
}

func checkDateOrder(d *deal.Deal) error {
	errs := validation.New()
	if d.OfferDate != nil && d.ContractDate != nil && d.ContractDate.Before(*d.OfferDate) {
		errs.Add("contract_date", "must be after offer date")
	}
	if d.ContractDate != nil && d.DeliveryDate != nil && d.DeliveryDate.Before(*d.ContractDate) {
		errs.Add("delivery_date", "must be after contract date")
	}
	if errs.Any() {
		return errs
	}
	return nil
}

func (s *dealService) checkPair(ctx context.Context, bookID, publisherID, excludeID uuid.UUID) error {
	exists, err := s.repo.PairExists(ctx, bookID, publisherID, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return validation.New().Add("book_id",
			"already has a deal with this publisher. A duplicate deal already exists.")
	}
	return nil
}

func applyUpdate(d *deal.Deal, req *deal.UpdateDealRequest) {
	if req.AgentID != nil {
		d.AgentID = req.AgentID
	}
	if req.DealType != nil {
		d.DealType = deal.Type(*req.DealType)
	}
	if req.Status != nil {
		d.Status = deal.Status(*req.Status)
	}
	if req.AdvanceAmount != nil {
		d.AdvanceAmount = req.AdvanceAmount
	}
	if req.AdvanceCurrency != nil {
		d.AdvanceCurrency = *req.AdvanceCurrency
	}
	if req.RoyaltyRateHardcover != nil {
		d.RoyaltyRateHardcover = req.RoyaltyRateHardcover
	}
	if req.RoyaltyRatePaperback != nil {
		d.RoyaltyRatePaperback = req.RoyaltyRatePaperback
	}
	if req.RoyaltyRateEbook != nil {
		d.RoyaltyRateEbook = req.RoyaltyRateEbook
	}
	if req.OfferDate != nil {
		d.OfferDate = req.OfferDate
	}
	if req.ContractDate != nil {
		d.ContractDate = req.ContractDate
	}
	if req.DeliveryDate != nil {
		d.DeliveryDate = req.DeliveryDate
	}
	if req.PublicationDate != nil {
		d.PublicationDate = req.PublicationDate
	}
	if req.OptionBooks != nil {
		d.OptionBooks = req.OptionBooks
	}
	if req.TermsSummary != nil {
		d.TermsSummary = req.TermsSummary
	}
	if req.Notes != nil {
		d.Notes = req.Notes
	}
}
