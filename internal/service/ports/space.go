package ports

import (
	"context"

	"github.com/keeeellymu/SHUNBO-AI-RESERVATION-PARKING/internal/domain"
)

// SpaceRepo is the authoritative space registry.
type SpaceRepo interface {
	Create(ctx context.Context, s *domain.Space) error
	GetByID(ctx context.Context, id int64) (*domain.Space, error)
	ListAvailable(ctx context.Context, lotID int64) ([]*domain.Space, error)
	CountAvailable(ctx context.Context, lotID int64) (int, error)

	// Release unconditionally returns the space to FREE/AVAILABLE.
	// It reports false when the space does not exist.
	Release(ctx context.Context, id int64) (bool, error)

	// SetAvailability toggles the administrative disable flag; false means
	// the space does not exist.
	SetAvailability(ctx context.Context, id int64, available bool) (bool, error)

	// UpdateStateWithVersion is the optimistic-lock path for
	// administrative edits; the reservation flow never uses it.
	UpdateStateWithVersion(ctx context.Context, id int64, newState, oldState domain.SpaceState, version int) (bool, error)
}

type LotRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Lot, error)
	List(ctx context.Context) ([]*domain.Lot, error)

	// Counter adjustments are best-effort side effects; callers log and
	// swallow their failures.
	IncrementAvailable(ctx context.Context, id int64) error
	DecrementAvailable(ctx context.Context, id int64) error
}
