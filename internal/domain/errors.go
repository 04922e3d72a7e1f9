package domain

import (
	"errors"
	"fmt"
)

var (
	ErrSpaceNotFound       = errors.New("parking space not found")
	ErrLotNotFound         = errors.New("parking lot not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrReservationNotFound = errors.New("reservation not found")
)

var (
	ErrOverlap          = errors.New("space already reserved for an overlapping window")
	ErrSpaceUnavailable = errors.New("space is not free")
	ErrVersionConflict  = errors.New("space was modified concurrently")
	ErrSpaceNumberTaken = errors.New("space number already exists in this lot")
)

var (
	ErrInvalidState     = errors.New("operation not allowed in current reservation state")
	ErrNotStarted       = errors.New("reservation has not started yet")
	ErrExpired          = errors.New("reservation window has expired")
	ErrAlreadyRefunding = errors.New("refund already requested for this reservation")
	ErrForbidden        = errors.New("reservation belongs to another user")
)

var (
	ErrUsernameTaken = errors.New("username is already taken")
)

var (
	ErrValidation     = errors.New("validation error")
	ErrPaymentGateway = errors.New("payment gateway unavailable")
	ErrRefundRejected = errors.New("refund rejected by payment gateway")
)

// UnpaidOrderError rejects a new reservation while the user still has a
// USED+UNPAID one. It carries the blocking reservation's id so the caller
// can redirect the user straight to the outstanding payment.
type UnpaidOrderError struct {
	ReservationID int64
}

func (e *UnpaidOrderError) Error() string {
	return fmt.Sprintf("unpaid reservation %d must be settled first", e.ReservationID)
}
