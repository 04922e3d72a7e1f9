package ports

import (
	"context"

	"github.com/keeeellymu/SHUNBO-AI-RESERVATION-PARKING/internal/domain"
)

type ReservationNotifier interface {
	NotifyReservationCreated(ctx context.Context, user *domain.User, r *domain.Reservation)
	NotifyReservationCancelled(ctx context.Context, user *domain.User, r *domain.Reservation)
	NotifyPaymentReceived(ctx context.Context, user *domain.User, r *domain.Reservation)
}
