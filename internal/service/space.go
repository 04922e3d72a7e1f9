package service

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/logger"

	"github.com/keeeellymu/SHUNBO-AI-RESERVATION-PARKING/internal/domain"
	"github.com/keeeellymu/SHUNBO-AI-RESERVATION-PARKING/internal/service/ports"
)

// SpaceService covers administrative space management. Unlike the
// reservation flow it uses the version-checked optimistic update, since
// concurrent admin edits should conflict loudly.
type SpaceService struct {
	spaces ports.SpaceRepo
	lots   ports.LotRepo
	cache  ports.LotAvailabilityCache
	logger logger.Logger
}

func NewSpaceService(spaces ports.SpaceRepo, lots ports.LotRepo, cache ports.LotAvailabilityCache, logger logger.Logger) *SpaceService {
	return &SpaceService{
		spaces: spaces,
		lots:   lots,
		cache:  cache,
		logger: logger,
	}
}

func (s *SpaceService) Create(ctx context.Context, input domain.CreateSpaceInput) (*domain.Space, error) {
	if input.SpaceNumber == "" {
		return nil, fmt.Errorf("%w: space number is required", domain.ErrValidation)
	}
	if input.HourlyRate < 0 {
		return nil, fmt.Errorf("%w: hourly rate must not be negative", domain.ErrValidation)
	}
	if _, err := s.lots.GetByID(ctx, input.LotID); err != nil {
		return nil, fmt.Errorf("check lot: %w", err)
	}

	space := &domain.Space{
		SpaceNumber: input.SpaceNumber,
		LotID:       input.LotID,
		Floor:       input.Floor,
		HourlyRate:  input.HourlyRate,
		Description: input.Description,
	}
	if err := s.spaces.Create(ctx, space); err != nil {
		return nil, fmt.Errorf("create space: %w", err)
	}

	s.logger.Info("space created",
		logger.Int64("space_id", space.ID),
		logger.String("space_number", space.SpaceNumber),
		logger.Int64("lot_id", space.LotID),
	)

	s.invalidateLot(ctx, space.LotID)

	return space, nil
}

func (s *SpaceService) GetByID(ctx context.Context, id int64) (*domain.Space, error) {
	return s.spaces.GetByID(ctx, id)
}

func (s *SpaceService) ListAvailable(ctx context.Context, lotID int64) ([]*domain.Space, error) {
	return s.spaces.ListAvailable(ctx, lotID)
}

// UpdateState is the admin edit path: the caller supplies the state and
// version they saw, and a concurrent modification surfaces as a conflict.
func (s *SpaceService) UpdateState(ctx context.Context, id int64, newState, oldState domain.SpaceState, version int) error {
	ok, err := s.spaces.UpdateStateWithVersion(ctx, id, newState, oldState, version)
	if err != nil {
		return fmt.Errorf("update space state: %w", err)
	}
	if !ok {
		return domain.ErrVersionConflict
	}

	space, err := s.spaces.GetByID(ctx, id)
	if err == nil {
		s.invalidateLot(ctx, space.LotID)
	}

	s.logger.Info("space state updated",
		logger.Int64("space_id", id),
		logger.String("state", newState.String()),
	)

	return nil
}

// SetAvailability disables or re-enables a space without touching its
// numeric state, so a space mid-reservation can be pulled from future
// availability reads.
func (s *SpaceService) SetAvailability(ctx context.Context, id int64, available bool) error {
	ok, err := s.spaces.SetAvailability(ctx, id, available)
	if err != nil {
		return fmt.Errorf("set space availability: %w", err)
	}
	if !ok {
		return domain.ErrSpaceNotFound
	}

	if space, err := s.spaces.GetByID(ctx, id); err == nil {
		s.invalidateLot(ctx, space.LotID)
	}

	s.logger.Info("space availability updated",
		logger.Int64("space_id", id),
		logger.Any("available", available),
	)

	return nil
}

func (s *SpaceService) invalidateLot(ctx context.Context, lotID int64) {
	if err := s.cache.Invalidate(ctx, lotID); err != nil {
		s.logger.Error("lot cache invalidation failed",
			logger.Int64("lot_id", lotID),
			logger.String("error", err.Error()),
		)
	}
}
