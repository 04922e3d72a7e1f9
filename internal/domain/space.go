package domain

import "time"

type SpaceState int

const (
	SpaceStateFree     SpaceState = 0
	SpaceStateLocked   SpaceState = 1
	SpaceStateOccupied SpaceState = 2
)

// LegacyStatus is the string status column older clients still read.
// It must stay consistent with the numeric state on every transition.
func (s SpaceState) LegacyStatus() string {
	switch s {
	case SpaceStateLocked:
		return "RESERVED"
	case SpaceStateOccupied:
		return "OCCUPIED"
	}
	return "AVAILABLE"
}

func (s SpaceState) String() string {
	switch s {
	case SpaceStateFree:
		return "free"
	case SpaceStateLocked:
		return "locked"
	case SpaceStateOccupied:
		return "occupied"
	}
	return "unknown"
}

type Space struct {
	ID          int64      `json:"id"`
	SpaceNumber string     `json:"space_number"`
	LotID       int64      `json:"lot_id"`
	State       SpaceState `json:"state"`
	Status      string     `json:"status"`
	IsAvailable bool       `json:"is_available"`
	Floor       string     `json:"floor,omitempty"`
	HourlyRate  float64    `json:"hourly_rate"`
	Description string     `json:"description,omitempty"`
	Version     int        `json:"version"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type CreateSpaceInput struct {
	SpaceNumber string
	LotID       int64
	Floor       string
	HourlyRate  float64
	Description string
}

type Lot struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Address         string    `json:"address"`
	HourlyRate      float64   `json:"hourly_rate"`
	TotalSpaces     int       `json:"total_spaces"`
	AvailableSpaces int       `json:"available_spaces"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
