package ports

import (
	"context"
	"time"

	"github.com/keeeellymu/SHUNBO-AI-RESERVATION-PARKING/internal/domain"
)

// ReservationRepo is the durable reservation ledger.
//
// Create is the concurrency-critical primitive: the overlap re-check, the
// conditional space claim and the insert must run in one transaction so
// that of two racing callers exactly one observes the claim succeed.
type ReservationRepo interface {
	Create(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	ListByUser(ctx context.Context, userID int64, page, pageSize int) ([]*domain.Reservation, error)
	Query(ctx context.Context, f domain.ReservationFilter) ([]*domain.Reservation, error)

	// HasOverlap reports whether a blocking reservation (PENDING or USED)
	// overlaps [start, end) on the space. excludeID, when non-nil, skips
	// that reservation (re-check during an update).
	HasOverlap(ctx context.Context, spaceID int64, start, end time.Time, excludeID *int64) (bool, error)

	// FindUnpaidByUser returns the id of the user's latest USED+UNPAID
	// reservation, or nil if there is none.
	FindUnpaidByUser(ctx context.Context, userID int64) (*int64, error)

	// UpdateStatus transitions id from one status to another; it reports
	// false when the row was not in the expected status (lost race).
	UpdateStatus(ctx context.Context, id int64, from, to domain.ReservationStatus) (bool, error)

	MarkUsed(ctx context.Context, id int64, entryAt time.Time) (bool, error)
	MarkExited(ctx context.Context, id int64, exitAt time.Time) (bool, error)

	// MarkPaid flips payment status UNPAID->PAID; false means the row was
	// already paid (or missing), which gates the one-shot space release.
	MarkPaid(ctx context.Context, id int64) (bool, error)
	SetPaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error
	SetRefundStatus(ctx context.Context, id int64, status domain.RefundStatus) error

	// SweepTimeouts transitions every PENDING reservation with end < now
	// to TIMEOUT, releasing the claimed spaces and restoring lot counters
	// in the same transaction. Returns the number of reservations swept.
	SweepTimeouts(ctx context.Context, now time.Time) (int, error)

	// PurgeTerminal deletes the user's CANCELLED, TIMEOUT and USED+PAID
	// reservations and returns how many rows were removed.
	PurgeTerminal(ctx context.Context, userID int64) (int, error)
}
