package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/siviack/portal/modules/tracking/domain/aggregates/activity"
	"github.com/siviack/portal/pkg/eventbus"
)

type ActivityService struct {
	repo      activity.Repository
	publisher eventbus.EventBus
}

func NewActivityService(repo activity.Repository, publisher eventbus.EventBus) *ActivityService {
	return &ActivityService{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *ActivityService) GetByID(ctx context.Context, id int64) (activity.Activity, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ActivityService) List(ctx context.Context, params *activity.FindParams) ([]activity.Activity, error) {
	return s.repo.List(ctx, params)
}

// Update applies a partial mutation to an existing activity. Absent fields in
// the DTO keep their stored values.
func (s *ActivityService) Update(ctx context.Context, id int64, dto *activity.UpdateDTO) (activity.Activity, error) {
	dto.Normalize()
	if err := dto.Validate(); err != nil {
		return activity.Activity{}, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return activity.Activity{}, err
	}

	updated := existing
	if dto.Status != "" {
		updated = updated.WithStatus(activity.Status(dto.Status))
	}
	if dto.Progress != nil {
		updated = updated.WithProgress(decimal.NewFromFloat(*dto.Progress))
	}
	if dto.EvidenceLink != nil {
		updated = updated.WithEvidenceLink(*dto.EvidenceLink)
	}

	saved, err := s.repo.Update(ctx, updated)
	if err != nil {
		return activity.Activity{}, err
	}
	s.publisher.Publish("activity.updated", saved)
	return saved, nil
}
