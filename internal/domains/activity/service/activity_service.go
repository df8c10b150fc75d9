package service

import (
	"context"

	"github.com/google/uuid"

	"publishing-crm/internal/domains/activity"
)

type activityService struct {
	repo activity.Repository
}

func NewActivityService(repo activity.Repository) activity.Service {
	return &activityService{repo: repo}
}

func (s *activityService) ListForTrackable(ctx context.Context, trackableType string, trackableID uuid.UUID, limit int) ([]activity.Activity, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return s.repo.ListForTrackable(ctx, trackableType, trackableID, limit)
}

func (s *activityService) List(ctx context.Context, filter activity.Filter) ([]activity.Activity, int64, error) {
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
