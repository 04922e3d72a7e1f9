package service

import (
	"context"
	"fmt"

	"github.com/keeeellymu/SHUNBO-AI-RESERVATION-PARKING/internal/domain"
	"github.com/keeeellymu/SHUNBO-AI-RESERVATION-PARKING/internal/service/ports"
)

type LotService struct {
	lots  ports.LotRepo
	cache ports.LotAvailabilityCache
}

func NewLotService(lots ports.LotRepo, cache ports.LotAvailabilityCache) *LotService {
	return &LotService{lots: lots, cache: cache}
}

func (s *LotService) List(ctx context.Context) ([]*domain.Lot, error) {
	return s.lots.List(ctx)
}

func (s *LotService) GetByID(ctx context.Context, id int64) (*domain.Lot, error) {
	return s.lots.GetByID(ctx, id)
}

// Availability serves the fast read path from the read-through cache; the
// counter may be briefly stale and that is acceptable.
func (s *LotService) Availability(ctx context.Context, lotID int64) (int, error) {
	if _, err := s.lots.GetByID(ctx, lotID); err != nil {
		return 0, fmt.Errorf("check lot: %w", err)
	}
	return s.cache.Available(ctx, lotID)
}
