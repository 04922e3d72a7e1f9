package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/wb-go/wbf/ginext"

	"github.com/keeeellymu/SHUNBO-AI-RESERVATION-PARKING/internal/domain"
	"github.com/keeeellymu/SHUNBO-AI-RESERVATION-PARKING/internal/handler/dto"
)

type ReservationSvc interface {
	Create(ctx context.Context, input domain.CreateReservationInput) (*domain.Reservation, error)
	Cancel(ctx context.Context, id, userID int64) error
	Use(ctx context.Context, id int64) error
	Complete(ctx context.Context, id int64) error
	UpdatePaymentStatus(ctx context.Context, id int64, paid bool) error
	ApplyRefund(ctx context.Context, id, userID int64) error
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	ListByUser(ctx context.Context, userID int64, page, pageSize int) ([]*domain.Reservation, error)
	Query(ctx context.Context, f domain.ReservationFilter) ([]*domain.Reservation, error)
	CheckAvailability(ctx context.Context, spaceID int64, start, end time.Time, excludeID *int64) (bool, error)
	PurgeTerminal(ctx context.Context, userID int64) (int, error)
}

type SpaceSvc interface {
	Create(ctx context.Context, input domain.CreateSpaceInput) (*domain.Space, error)
	GetByID(ctx context.Context, id int64) (*domain.Space, error)
	ListAvailable(ctx context.Context, lotID int64) ([]*domain.Space, error)
	UpdateState(ctx context.Context, id int64, newState, oldState domain.SpaceState, version int) error
	SetAvailability(ctx context.Context, id int64, available bool) error
}

type LotSvc interface {
	List(ctx context.Context) ([]*domain.Lot, error)
	Availability(ctx context.Context, lotID int64) (int, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
}

type Handler struct {
	reservationService ReservationSvc
	spaceService       SpaceSvc
	lotService         LotSvc
	userService        UserSvc
}

func NewHandler(reservationService ReservationSvc, spaceService SpaceSvc, lotService LotSvc, userService UserSvc) *Handler {
	return &Handler{
		reservationService: reservationService,
		spaceService:       spaceService,
		lotService:         lotService,
		userService:        userService,
	}
}

// Reservations

func (h *Handler) CreateReservation(c *ginext.Context) {
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start_time format, expected RFC3339"})
		return
	}
	end, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end_time format, expected RFC3339"})
		return
	}

	input := domain.CreateReservationInput{
		UserID:      req.UserID,
		SpaceID:     req.SpaceID,
		StartTime:   start,
		EndTime:     end,
		PlateNumber: req.PlateNumber,
		Phone:       req.Phone,
		VehicleInfo: req.VehicleInfo,
		Remark:      req.Remark,
	}

	reservation, err := h.reservationService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservationResponse(reservation))
}

func (h *Handler) GetReservation(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	reservation, err := h.reservationService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

func (h *Handler) CancelReservation(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.CancelReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.reservationService.Cancel(c.Request.Context(), id, req.UserID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

func (h *Handler) UseReservation(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.reservationService.Use(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "in_use"})
}

func (h *Handler) CompleteReservation(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.reservationService.Complete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "awaiting_payment"})
}

func (h *Handler) RefundReservation(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.RefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.reservationService.ApplyRefund(c.Request.Context(), id, req.UserID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "refunded"})
}

func (h *Handler) NotifyPayment(c *ginext.Context) {
	var req dto.PaymentNotifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.reservationService.UpdatePaymentStatus(c.Request.Context(), req.ReservationID, *req.Paid); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "ok"})
}

func (h *Handler) QueryReservations(c *ginext.Context) {
	filter, err := parseReservationFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	reservations, err := h.reservationService.Query(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		resp = append(resp, dto.ToReservationResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetUserReservations(c *ginext.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	reservations, err := h.reservationService.ListByUser(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		resp = append(resp, dto.ToReservationResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) PurgeUserReservations(c *ginext.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	count, err := h.reservationService.PurgeTerminal(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CountResponse{Count: count})
}

// Spaces

func (h *Handler) CreateSpace(c *ginext.Context) {
	var req dto.CreateSpaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateSpaceInput{
		SpaceNumber: req.SpaceNumber,
		LotID:       req.LotID,
		Floor:       req.Floor,
		HourlyRate:  req.HourlyRate,
		Description: req.Description,
	}

	space, err := h.spaceService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSpaceResponse(space))
}

func (h *Handler) GetSpace(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	space, err := h.spaceService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSpaceResponse(space))
}

func (h *Handler) UpdateSpaceState(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateSpaceStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	err := h.spaceService.UpdateState(
		c.Request.Context(), id,
		domain.SpaceState(req.NewState), domain.SpaceState(req.OldState), req.Version,
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "updated"})
}

func (h *Handler) UpdateSpaceAvailability(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateSpaceAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.spaceService.SetAvailability(c.Request.Context(), id, *req.Available); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "updated"})
}

func (h *Handler) CheckSpaceAvailability(c *ginext.Context) {
	spaceID, ok := pathID(c, "id")
	if !ok {
		return
	}

	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start, expected RFC3339"})
		return
	}
	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end, expected RFC3339"})
		return
	}

	var excludeID *int64
	if raw := c.Query("exclude_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid exclude_id"})
			return
		}
		excludeID = &id
	}

	available, err := h.reservationService.CheckAvailability(c.Request.Context(), spaceID, start, end, excludeID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AvailabilityResponse{Available: available})
}

func (h *Handler) ListLotSpaces(c *ginext.Context) {
	lotID, ok := pathID(c, "id")
	if !ok {
		return
	}

	spaces, err := h.spaceService.ListAvailable(c.Request.Context(), lotID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.SpaceResponse, 0, len(spaces))
	for _, s := range spaces {
		resp = append(resp, dto.ToSpaceResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

// Lots

func (h *Handler) ListLots(c *ginext.Context) {
	lots, err := h.lotService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.LotResponse, 0, len(lots))
	for _, l := range lots {
		resp = append(resp, dto.ToLotResponse(l))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetLotAvailability(c *ginext.Context) {
	lotID, ok := pathID(c, "id")
	if !ok {
		return
	}

	available, err := h.lotService.Availability(c.Request.Context(), lotID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LotAvailabilityResponse{LotID: lotID, AvailableSpaces: available})
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateUserInput{
		Username:       req.Username,
		Phone:          req.Phone,
		TelegramChatID: req.TelegramChatID,
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var unpaid *domain.UnpaidOrderError
	if errors.As(err, &unpaid) {
		c.JSON(http.StatusConflict, dto.ErrorResponse{
			Error:         err.Error(),
			ReservationID: unpaid.ReservationID,
		})
		return
	}

	switch {
	case errors.Is(err, domain.ErrReservationNotFound),
		errors.Is(err, domain.ErrSpaceNotFound),
		errors.Is(err, domain.ErrLotNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrOverlap),
		errors.Is(err, domain.ErrSpaceUnavailable),
		errors.Is(err, domain.ErrVersionConflict),
		errors.Is(err, domain.ErrSpaceNumberTaken),
		errors.Is(err, domain.ErrInvalidState),
		errors.Is(err, domain.ErrAlreadyRefunding),
		errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNotStarted),
		errors.Is(err, domain.ErrExpired),
		errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrPaymentGateway),
		errors.Is(err, domain.ErrRefundRejected):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

func pathID(c *ginext.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return id, true
}

func parseReservationFilter(c *ginext.Context) (domain.ReservationFilter, error) {
	var f domain.ReservationFilter

	if raw := c.Query("user_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return f, errors.New("invalid user_id")
		}
		f.UserID = &id
	}
	if raw := c.Query("space_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return f, errors.New("invalid space_id")
		}
		f.SpaceID = &id
	}
	if raw := c.Query("status"); raw != "" {
		code, err := strconv.Atoi(raw)
		if err != nil || code < 0 || code > 3 {
			return f, errors.New("invalid status")
		}
		status := domain.ReservationStatus(code)
		f.Status = &status
	}

	bounds := []struct {
		raw string
		dst **time.Time
	}{
		{c.Query("start_from"), &f.StartTimeFrom},
		{c.Query("start_to"), &f.StartTimeTo},
		{c.Query("end_from"), &f.EndTimeFrom},
		{c.Query("end_to"), &f.EndTimeTo},
	}
	for _, b := range bounds {
		if b.raw == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, b.raw)
		if err != nil {
			return f, errors.New("invalid time bound, expected RFC3339")
		}
		*b.dst = &t
	}

	return f, nil
}
