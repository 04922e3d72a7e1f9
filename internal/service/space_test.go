package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/keeeellymu/SHUNBO-AI-RESERVATION-PARKING/internal/domain"
	"github.com/keeeellymu/SHUNBO-AI-RESERVATION-PARKING/internal/service/ports/mocks"
)

func TestSpaceService_Create_Success(t *testing.T) {
	spaceRepo := mocks.NewMockSpaceRepo(t)
	lotRepo := mocks.NewMockLotRepo(t)
	cache := mocks.NewMockLotAvailabilityCache(t)

	svc := NewSpaceService(spaceRepo, lotRepo, cache, newTestLogger(t))

	lotRepo.EXPECT().GetByID(mock.Anything, int64(11)).Return(&domain.Lot{ID: 11}, nil)
	spaceRepo.EXPECT().Create(mock.Anything, mock.Anything).Run(func(ctx context.Context, s *domain.Space) {
		s.ID = 3
	}).Return(nil)
	cache.EXPECT().Invalidate(mock.Anything, int64(11)).Return(nil)

	space, err := svc.Create(context.Background(), domain.CreateSpaceInput{
		SpaceNumber: "A-101",
		LotID:       11,
		HourlyRate:  8,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3), space.ID)
	assert.Equal(t, "A-101", space.SpaceNumber)
}

func TestSpaceService_Create_MissingNumber(t *testing.T) {
	spaceRepo := mocks.NewMockSpaceRepo(t)
	lotRepo := mocks.NewMockLotRepo(t)
	cache := mocks.NewMockLotAvailabilityCache(t)

	svc := NewSpaceService(spaceRepo, lotRepo, cache, newTestLogger(t))

	_, err := svc.Create(context.Background(), domain.CreateSpaceInput{LotID: 11})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSpaceService_Create_LotNotFound(t *testing.T) {
	spaceRepo := mocks.NewMockSpaceRepo(t)
	lotRepo := mocks.NewMockLotRepo(t)
	cache := mocks.NewMockLotAvailabilityCache(t)

	svc := NewSpaceService(spaceRepo, lotRepo, cache, newTestLogger(t))

	lotRepo.EXPECT().GetByID(mock.Anything, int64(99)).Return(nil, domain.ErrLotNotFound)

	_, err := svc.Create(context.Background(), domain.CreateSpaceInput{
		SpaceNumber: "A-101",
		LotID:       99,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLotNotFound)
}

func TestSpaceService_Create_DuplicateNumber(t *testing.T) {
	spaceRepo := mocks.NewMockSpaceRepo(t)
	lotRepo := mocks.NewMockLotRepo(t)
	cache := mocks.NewMockLotAvailabilityCache(t)

	svc := NewSpaceService(spaceRepo, lotRepo, cache, newTestLogger(t))

	lotRepo.EXPECT().GetByID(mock.Anything, int64(11)).Return(&domain.Lot{ID: 11}, nil)
	spaceRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrSpaceNumberTaken)

	_, err := svc.Create(context.Background(), domain.CreateSpaceInput{
		SpaceNumber: "A-101",
		LotID:       11,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSpaceNumberTaken)
}

func TestSpaceService_UpdateState_Success(t *testing.T) {
	spaceRepo := mocks.NewMockSpaceRepo(t)
	lotRepo := mocks.NewMockLotRepo(t)
	cache := mocks.NewMockLotAvailabilityCache(t)

	svc := NewSpaceService(spaceRepo, lotRepo, cache, newTestLogger(t))

	spaceRepo.EXPECT().UpdateStateWithVersion(mock.Anything, int64(3), domain.SpaceStateOccupied, domain.SpaceStateFree, 2).Return(true, nil)
	spaceRepo.EXPECT().GetByID(mock.Anything, int64(3)).Return(&domain.Space{ID: 3, LotID: 11}, nil)
	cache.EXPECT().Invalidate(mock.Anything, int64(11)).Return(nil)

	err := svc.UpdateState(context.Background(), 3, domain.SpaceStateOccupied, domain.SpaceStateFree, 2)

	require.NoError(t, err)
}

func TestSpaceService_UpdateState_VersionConflict(t *testing.T) {
	spaceRepo := mocks.NewMockSpaceRepo(t)
	lotRepo := mocks.NewMockLotRepo(t)
	cache := mocks.NewMockLotAvailabilityCache(t)

	svc := NewSpaceService(spaceRepo, lotRepo, cache, newTestLogger(t))

	spaceRepo.EXPECT().UpdateStateWithVersion(mock.Anything, int64(3), domain.SpaceStateOccupied, domain.SpaceStateFree, 1).Return(false, nil)

	err := svc.UpdateState(context.Background(), 3, domain.SpaceStateOccupied, domain.SpaceStateFree, 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrVersionConflict)
}

func TestSpaceService_SetAvailability_Success(t *testing.T) {
	spaceRepo := mocks.NewMockSpaceRepo(t)
	lotRepo := mocks.NewMockLotRepo(t)
	cache := mocks.NewMockLotAvailabilityCache(t)

	svc := NewSpaceService(spaceRepo, lotRepo, cache, newTestLogger(t))

	spaceRepo.EXPECT().SetAvailability(mock.Anything, int64(3), false).Return(true, nil)
	spaceRepo.EXPECT().GetByID(mock.Anything, int64(3)).Return(&domain.Space{ID: 3, LotID: 11}, nil)
	cache.EXPECT().Invalidate(mock.Anything, int64(11)).Return(nil)

	err := svc.SetAvailability(context.Background(), 3, false)

	require.NoError(t, err)
}

func TestSpaceService_SetAvailability_NotFound(t *testing.T) {
	spaceRepo := mocks.NewMockSpaceRepo(t)
	lotRepo := mocks.NewMockLotRepo(t)
	cache := mocks.NewMockLotAvailabilityCache(t)

	svc := NewSpaceService(spaceRepo, lotRepo, cache, newTestLogger(t))

	spaceRepo.EXPECT().SetAvailability(mock.Anything, int64(99), false).Return(false, nil)

	err := svc.SetAvailability(context.Background(), 99, false)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSpaceNotFound)
}

func TestLotService_Availability(t *testing.T) {
	lotRepo := mocks.NewMockLotRepo(t)
	cache := mocks.NewMockLotAvailabilityCache(t)

	svc := NewLotService(lotRepo, cache)

	lotRepo.EXPECT().GetByID(mock.Anything, int64(11)).Return(&domain.Lot{ID: 11}, nil)
	cache.EXPECT().Available(mock.Anything, int64(11)).Return(14, nil)

	available, err := svc.Availability(context.Background(), 11)

	require.NoError(t, err)
	assert.Equal(t, 14, available)
}

func TestLotService_Availability_LotNotFound(t *testing.T) {
	lotRepo := mocks.NewMockLotRepo(t)
	cache := mocks.NewMockLotAvailabilityCache(t)

	svc := NewLotService(lotRepo, cache)

	lotRepo.EXPECT().GetByID(mock.Anything, int64(99)).Return(nil, domain.ErrLotNotFound)

	_, err := svc.Availability(context.Background(), 99)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLotNotFound)
}
