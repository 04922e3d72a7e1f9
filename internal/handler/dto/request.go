package dto

type CreateReservationRequest struct {
	UserID      int64  `json:"user_id" binding:"required,gt=0"`
	SpaceID     int64  `json:"space_id" binding:"required,gt=0"`
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
	PlateNumber string `json:"plate_number" binding:"required"`
	Phone       string `json:"phone"`
	VehicleInfo string `json:"vehicle_info"`
	Remark      string `json:"remark"`
}

type CancelReservationRequest struct {
	UserID int64 `json:"user_id" binding:"required,gt=0"`
}

type RefundRequest struct {
	UserID int64 `json:"user_id" binding:"required,gt=0"`
}

type PaymentNotifyRequest struct {
	ReservationID int64 `json:"reservation_id" binding:"required,gt=0"`
	Paid          *bool `json:"paid" binding:"required"`
}

type CreateSpaceRequest struct {
	SpaceNumber string  `json:"space_number" binding:"required"`
	LotID       int64   `json:"lot_id" binding:"required,gt=0"`
	Floor       string  `json:"floor"`
	HourlyRate  float64 `json:"hourly_rate" binding:"gte=0"`
	Description string  `json:"description"`
}

type UpdateSpaceStateRequest struct {
	NewState int `json:"new_state" binding:"min=0,max=2"`
	OldState int `json:"old_state" binding:"min=0,max=2"`
	Version  int `json:"version" binding:"min=0"`
}

type UpdateSpaceAvailabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
}

type CreateUserRequest struct {
	Username       string `json:"username" binding:"required"`
	Phone          string `json:"phone"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}
