package dto

import (
	"time"

	"github.com/keeeellymu/SHUNBO-AI-RESERVATION-PARKING/internal/domain"
)

type ReservationResponse struct {
	ID            int64  `json:"id"`
	ReservationNo string `json:"reservation_no"`
	UserID        int64  `json:"user_id"`
	SpaceID       int64  `json:"space_id"`
	LotID         int64  `json:"lot_id"`
	Status        string `json:"status"`
	PaymentStatus int    `json:"payment_status"`
	RefundStatus  int    `json:"refund_status"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	ActualEntry   string `json:"actual_entry_time,omitempty"`
	ActualExit    string `json:"actual_exit_time,omitempty"`
	PlateNumber   string `json:"plate_number"`
	ContactPhone  string `json:"contact_phone,omitempty"`
	VehicleInfo   string `json:"vehicle_info,omitempty"`
	Remark        string `json:"remark,omitempty"`
	CreatedAt     string `json:"created_at"`
}

type SpaceResponse struct {
	ID          int64   `json:"id"`
	SpaceNumber string  `json:"space_number"`
	LotID       int64   `json:"lot_id"`
	State       int     `json:"state"`
	Status      string  `json:"status"`
	IsAvailable bool    `json:"is_available"`
	Floor       string  `json:"floor,omitempty"`
	HourlyRate  float64 `json:"hourly_rate"`
	Version     int     `json:"version"`
	CreatedAt   string  `json:"created_at"`
}

type LotResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Address         string  `json:"address"`
	HourlyRate      float64 `json:"hourly_rate"`
	TotalSpaces     int     `json:"total_spaces"`
	AvailableSpaces int     `json:"available_spaces"`
}

type UserResponse struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	Phone          string `json:"phone,omitempty"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type AvailabilityResponse struct {
	Available bool `json:"available"`
}

type LotAvailabilityResponse struct {
	LotID           int64 `json:"lot_id"`
	AvailableSpaces int   `json:"available_spaces"`
}

type CountResponse struct {
	Count int `json:"count"`
}

type ErrorResponse struct {
	Error         string `json:"error"`
	ReservationID int64  `json:"reservation_id,omitempty"`
}

func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	resp := ReservationResponse{
		ID:            r.ID,
		ReservationNo: r.ReservationNo,
		UserID:        r.UserID,
		SpaceID:       r.SpaceID,
		LotID:         r.LotID,
		Status:        r.Status.String(),
		PaymentStatus: int(r.PaymentStatus),
		RefundStatus:  int(r.RefundStatus),
		StartTime:     r.StartTime.Format(time.RFC3339),
		EndTime:       r.EndTime.Format(time.RFC3339),
		PlateNumber:   r.PlateNumber,
		ContactPhone:  r.ContactPhone,
		VehicleInfo:   r.VehicleInfo,
		Remark:        r.Remark,
		CreatedAt:     r.CreatedAt.Format(time.RFC3339),
	}
	if r.ActualEntry != nil {
		resp.ActualEntry = r.ActualEntry.Format(time.RFC3339)
	}
	if r.ActualExit != nil {
		resp.ActualExit = r.ActualExit.Format(time.RFC3339)
	}
	return resp
}

func ToSpaceResponse(s *domain.Space) SpaceResponse {
	return SpaceResponse{
		ID:          s.ID,
		SpaceNumber: s.SpaceNumber,
		LotID:       s.LotID,
		State:       int(s.State),
		Status:      s.Status,
		IsAvailable: s.IsAvailable,
		Floor:       s.Floor,
		HourlyRate:  s.HourlyRate,
		Version:     s.Version,
		CreatedAt:   s.CreatedAt.Format(time.RFC3339),
	}
}

func ToLotResponse(l *domain.Lot) LotResponse {
	return LotResponse{
		ID:              l.ID,
		Name:            l.Name,
		Address:         l.Address,
		HourlyRate:      l.HourlyRate,
		TotalSpaces:     l.TotalSpaces,
		AvailableSpaces: l.AvailableSpaces,
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		Phone:          u.Phone,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}
