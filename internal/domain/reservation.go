package domain

import "time"

type ReservationStatus int

const (
	ReservationStatusPending   ReservationStatus = 0
	ReservationStatusUsed      ReservationStatus = 1
	ReservationStatusCancelled ReservationStatus = 2
	ReservationStatusTimeout   ReservationStatus = 3
)

// BlockingStatuses are the statuses that hold a space's time window.
// USED is blocking too: a driver who already entered occupies the space
// physically, so it must not be bookable for an overlapping window.
var BlockingStatuses = []ReservationStatus{ReservationStatusPending, ReservationStatusUsed}

func (s ReservationStatus) String() string {
	switch s {
	case ReservationStatusPending:
		return "pending"
	case ReservationStatusUsed:
		return "used"
	case ReservationStatusCancelled:
		return "cancelled"
	case ReservationStatusTimeout:
		return "timeout"
	}
	return "unknown"
}

// Terminal reports whether no further lifecycle transition is possible.
func (s ReservationStatus) Terminal() bool {
	return s == ReservationStatusCancelled || s == ReservationStatusTimeout
}

type PaymentStatus int

const (
	PaymentStatusUnpaid PaymentStatus = 0
	PaymentStatusPaid   PaymentStatus = 1
)

type RefundStatus int

const (
	RefundStatusNone      RefundStatus = 0
	RefundStatusRefunding RefundStatus = 1
	RefundStatusSucceeded RefundStatus = 2
	RefundStatusFailed    RefundStatus = 3
)

type Reservation struct {
	ID            int64             `json:"id"`
	ReservationNo string            `json:"reservation_no"`
	UserID        int64             `json:"user_id"`
	SpaceID       int64             `json:"space_id"`
	LotID         int64             `json:"lot_id"`
	Status        ReservationStatus `json:"status"`
	PaymentStatus PaymentStatus     `json:"payment_status"`
	RefundStatus  RefundStatus      `json:"refund_status"`
	StartTime     time.Time         `json:"start_time"`
	EndTime       time.Time         `json:"end_time"`
	ActualEntry   *time.Time        `json:"actual_entry_time,omitempty"`
	ActualExit    *time.Time        `json:"actual_exit_time,omitempty"`
	PlateNumber   string            `json:"plate_number"`
	ContactPhone  string            `json:"contact_phone"`
	VehicleInfo   string            `json:"vehicle_info,omitempty"`
	Remark        string            `json:"remark,omitempty"`
	Version       int               `json:"version"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

type CreateReservationInput struct {
	UserID      int64
	SpaceID     int64
	StartTime   time.Time
	EndTime     time.Time
	PlateNumber string
	Phone       string
	VehicleInfo string
	Remark      string
}

// ReservationFilter narrows admin ledger queries. Nil fields are skipped.
type ReservationFilter struct {
	UserID        *int64
	SpaceID       *int64
	Status        *ReservationStatus
	StartTimeFrom *time.Time
	StartTimeTo   *time.Time
	EndTimeFrom   *time.Time
	EndTimeTo     *time.Time
}
