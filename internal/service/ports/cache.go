package ports

import "context"

// LotAvailabilityCache is the scoped, refreshable read-through cache over
// the per-lot available-space count. Its failures are never propagated
// into the allocation path.
type LotAvailabilityCache interface {
	Available(ctx context.Context, lotID int64) (int, error)
	Invalidate(ctx context.Context, lotID int64) error
}
