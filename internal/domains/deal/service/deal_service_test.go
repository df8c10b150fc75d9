package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"publishing-crm/internal/domains/deal"
	"publishing-crm/internal/shared/validation"
)

type fakeDealRepo struct {
	pairExists     bool
	createErr      error
	commissionRate decimal.Decimal
	byID           map[uuid.UUID]*deal.Deal
}

func (f *fakeDealRepo) WithTx(tx pgx.Tx) deal.Repository { return f }

func (f *fakeDealRepo) Create(ctx context.Context, d *deal.Deal) (*deal.Deal, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return d, nil
}

func (f *fakeDealRepo) GetByID(ctx context.Context, id uuid.UUID) (*deal.Deal, error) {
	d, ok := f.byID[id]
	if !ok {
		return nil, deal.ErrDealNotFound
	}
	copied := *d
	return &copied, nil
}

func (f *fakeDealRepo) List(ctx context.Context, filter deal.Filter) ([]deal.Deal, int64, error) {
	return nil, 0, nil
}

func (f *fakeDealRepo) Update(ctx context.Context, d *deal.Deal, currentVersion int) (*deal.Deal, error) {
	return d, nil
}

func (f *fakeDealRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakeDealRepo) PairExists(ctx context.Context, bookID, publisherID, excludeID uuid.UUID) (bool, error) {
	return f.pairExists, nil
}

func (f *fakeDealRepo) AgentCommissionRate(ctx context.Context, agentID uuid.UUID) (decimal.Decimal, error) {
	return f.commissionRate, nil
}

func fieldMessages(t *testing.T, err error, field string) []string {
	t.Helper()
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	return verrs.On(field)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func validCreateRequest() *deal.CreateDealRequest {
	return &deal.CreateDealRequest{
		BookID:      uuid.New(),
		PublisherID: uuid.New(),
		DealType:    "world_rights",
	}
}

func TestCreate_RejectsDuplicateBookPublisherPair(t *testing.T) {
	repo := &fakeDealRepo{pairExists: true}
	svc := NewDealService(nil, repo, nil)

	_, err := svc.Create(context.Background(), validCreateRequest())

	assert.Contains(t, fieldMessages(t, err, "book_id"),
		"already has a deal with this publisher. A duplicate deal already exists.")
}

func TestCreate_RacedDuplicatePair(t *testing.T) {
	repo := &fakeDealRepo{createErr: deal.ErrDuplicatePair}
	svc := &dealService{
		repo: repo,
		run: func(ctx context.Context, fn func(tx pgx.Tx) error) error {
			return fn(nil)
		},
	}

	_, err := svc.Create(context.Background(), validCreateRequest())

	assert.Contains(t, fieldMessages(t, err, "book_id"),
		"already has a deal with this publisher. A duplicate deal already exists.")
}

func TestCreate_RejectsContractBeforeOffer(t *testing.T) {
	repo := &fakeDealRepo{}
	svc := NewDealService(nil, repo, nil)

	req := validCreateRequest()
	req.OfferDate = datePtr(2025, 4, 10)
	req.ContractDate = datePtr(2025, 4, 1)

	_, err := svc.Create(context.Background(), req)

	assert.Contains(t, fieldMessages(t, err, "contract_date"), "must be after offer date")
}

func TestCreate_RejectsDeliveryBeforeContract(t *testing.T) {
	repo := &fakeDealRepo{}
	svc := NewDealService(nil, repo, nil)

	req := validCreateRequest()
	req.ContractDate = datePtr(2025, 4, 10)
	req.DeliveryDate = datePtr(2025, 4, 1)

	_, err := svc.Create(context.Background(), req)

	assert.Contains(t, fieldMessages(t, err, "delivery_date"), "must be after contract date")
}

func TestCreate_RequiresDealType(t *testing.T) {
	svc := NewDealService(nil, &fakeDealRepo{}, nil)

	req := validCreateRequest()
	req.DealType = ""

	_, err := svc.Create(context.Background(), req)

	assert.NotEmpty(t, fieldMessages(t, err, "deal_type"))
}

func TestCreate_RejectsUnknownDealType(t *testing.T) {
	svc := NewDealService(nil, &fakeDealRepo{}, nil)

	req := validCreateRequest()
	req.DealType = "merchandising"

	_, err := svc.Create(context.Background(), req)

	assert.NotEmpty(t, fieldMessages(t, err, "deal_type"))
}

func TestGetByID_NilID(t *testing.T) {
	svc := NewDealService(nil, &fakeDealRepo{}, nil)

	_, err := svc.GetByID(context.Background(), uuid.Nil)

	assert.ErrorIs(t, err, deal.ErrDealNotFound)
}

func TestEconomics(t *testing.T) {
	agentID := uuid.New()
	advance := decimal.RequireFromString("100000")
	id := uuid.New()
	repo := &fakeDealRepo{
		commissionRate: decimal.NewFromInt(15),
		byID: map[uuid.UUID]*deal.Deal{
			id: {
				ID:              id,
				BookID:          uuid.New(),
				PublisherID:     uuid.New(),
				AgentID:         &agentID,
				AdvanceAmount:   &advance,
				AdvanceCurrency: "USD",
				OfferDate:       datePtr(2025, 3, 1),
				ContractDate:    datePtr(2025, 3, 31),
			},
		},
	}
	svc := NewDealService(nil, repo, nil)

	econ, err := svc.Economics(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, "$100,000.00", econ.FormattedAdvance)
	assert.True(t, econ.AgentCommission.Equal(decimal.RequireFromString("15000")))
	assert.True(t, econ.AuthorNetAdvance.Equal(decimal.RequireFromString("85000")))
	require.NotNil(t, econ.DaysToClose)
	assert.Equal(t, 30, *econ.DaysToClose)
}

func TestEconomics_NoAgent(t *testing.T) {
	advance := decimal.RequireFromString("50000")
	id := uuid.New()
	repo := &fakeDealRepo{
		byID: map[uuid.UUID]*deal.Deal{
			id: {ID: id, AdvanceAmount: &advance, AdvanceCurrency: "USD"},
		},
	}
	svc := NewDealService(nil, repo, nil)

	econ, err := svc.Economics(context.Background(), id)

	require.NoError(t, err)
	assert.True(t, econ.AgentCommission.IsZero())
	assert.True(t, econ.AuthorNetAdvance.Equal(advance))
	assert.Nil(t, econ.DaysToClose)
}
