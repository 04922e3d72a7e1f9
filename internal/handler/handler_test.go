package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/keeeellymu/SHUNBO-AI-RESERVATION-PARKING/internal/domain"
	"github.com/keeeellymu/SHUNBO-AI-RESERVATION-PARKING/internal/handler/dto"
	hmocks "github.com/keeeellymu/SHUNBO-AI-RESERVATION-PARKING/internal/handler/mocks"
)

func setupRouter(t *testing.T) (*hmocks.MockReservationSvc, *hmocks.MockSpaceSvc, *hmocks.MockLotSvc, *hmocks.MockUserSvc, http.Handler) {
	t.Helper()
	reservationSvc := hmocks.NewMockReservationSvc(t)
	spaceSvc := hmocks.NewMockSpaceSvc(t)
	lotSvc := hmocks.NewMockLotSvc(t)
	userSvc := hmocks.NewMockUserSvc(t)

	h := NewHandler(reservationSvc, spaceSvc, lotSvc, userSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/users", h.CreateUser)
		api.GET("/users/:id/reservations", h.GetUserReservations)
		api.DELETE("/users/:id/reservations", h.PurgeUserReservations)
		api.POST("/reservations", h.CreateReservation)
		api.GET("/reservations", h.QueryReservations)
		api.GET("/reservations/:id", h.GetReservation)
		api.POST("/reservations/:id/cancel", h.CancelReservation)
		api.POST("/reservations/:id/use", h.UseReservation)
		api.POST("/reservations/:id/complete", h.CompleteReservation)
		api.POST("/reservations/:id/refund", h.RefundReservation)
		api.POST("/payments/notify", h.NotifyPayment)
		api.POST("/spaces", h.CreateSpace)
		api.GET("/spaces/:id", h.GetSpace)
		api.PUT("/spaces/:id/state", h.UpdateSpaceState)
		api.PUT("/spaces/:id/availability", h.UpdateSpaceAvailability)
		api.GET("/spaces/:id/availability", h.CheckSpaceAvailability)
		api.GET("/lots", h.ListLots)
		api.GET("/lots/:id/spaces", h.ListLotSpaces)
		api.GET("/lots/:id/availability", h.GetLotAvailability)
	}

	return reservationSvc, spaceSvc, lotSvc, userSvc, r
}

func sampleReservation() *domain.Reservation {
	now := time.Now()
	return &domain.Reservation{
		ID:            42,
		ReservationNo: "RES20260901120000ABCDEF",
		UserID:        7,
		SpaceID:       3,
		LotID:         11,
		Status:        domain.ReservationStatusPending,
		StartTime:     now.Add(time.Hour),
		EndTime:       now.Add(3 * time.Hour),
		PlateNumber:   "B123XY",
		CreatedAt:     now,
	}
}

// --- Reservations ---

func TestHandler_CreateReservation_Success(t *testing.T) {
	reservationSvc, _, _, _, r := setupRouter(t)

	reservation := sampleReservation()
	reservationSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(reservation, nil)

	body, _ := json.Marshal(dto.CreateReservationRequest{
		UserID:      7,
		SpaceID:     3,
		StartTime:   reservation.StartTime.Format(time.RFC3339),
		EndTime:     reservation.EndTime.Format(time.RFC3339),
		PlateNumber: "B123XY",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "RES20260901120000ABCDEF", resp.ReservationNo)
	assert.Equal(t, "pending", resp.Status)
}

func TestHandler_CreateReservation_BadRequest(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"user_id":7}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateReservation_InvalidTime(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"user_id":7,"space_id":3,"start_time":"not-a-time","end_time":"also-bad","plate_number":"B123XY"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateReservation_Overlap(t *testing.T) {
	reservationSvc, _, _, _, r := setupRouter(t)

	reservationSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrOverlap)

	start := time.Now().Add(time.Hour)
	body, _ := json.Marshal(dto.CreateReservationRequest{
		UserID:      7,
		SpaceID:     3,
		StartTime:   start.Format(time.RFC3339),
		EndTime:     start.Add(2 * time.Hour).Format(time.RFC3339),
		PlateNumber: "B123XY",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CreateReservation_UnpaidOrder(t *testing.T) {
	reservationSvc, _, _, _, r := setupRouter(t)

	reservationSvc.EXPECT().Create(mock.Anything, mock.Anything).
		Return(nil, &domain.UnpaidOrderError{ReservationID: 99})

	start := time.Now().Add(time.Hour)
	body, _ := json.Marshal(dto.CreateReservationRequest{
		UserID:      7,
		SpaceID:     3,
		StartTime:   start.Format(time.RFC3339),
		EndTime:     start.Add(2 * time.Hour).Format(time.RFC3339),
		PlateNumber: "B123XY",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(99), resp.ReservationID)
}

func TestHandler_GetReservation_Success(t *testing.T) {
	reservationSvc, _, _, _, r := setupRouter(t)

	reservationSvc.EXPECT().GetByID(mock.Anything, int64(42)).Return(sampleReservation(), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reservations/42", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.ID)
}

func TestHandler_GetReservation_InvalidID(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reservations/not-a-number", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetReservation_NotFound(t *testing.T) {
	reservationSvc, _, _, _, r := setupRouter(t)

	reservationSvc.EXPECT().GetByID(mock.Anything, int64(42)).Return(nil, domain.ErrReservationNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reservations/42", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CancelReservation_Success(t *testing.T) {
	reservationSvc, _, _, _, r := setupRouter(t)

	reservationSvc.EXPECT().Cancel(mock.Anything, int64(42), int64(7)).Return(nil)

	body, _ := json.Marshal(dto.CancelReservationRequest{UserID: 7})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/42/cancel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CancelReservation_Forbidden(t *testing.T) {
	reservationSvc, _, _, _, r := setupRouter(t)

	reservationSvc.EXPECT().Cancel(mock.Anything, int64(42), int64(8)).Return(domain.ErrForbidden)

	body, _ := json.Marshal(dto.CancelReservationRequest{UserID: 8})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/42/cancel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_CancelReservation_InvalidState(t *testing.T) {
	reservationSvc, _, _, _, r := setupRouter(t)

	reservationSvc.EXPECT().Cancel(mock.Anything, int64(42), int64(7)).Return(domain.ErrInvalidState)

	body, _ := json.Marshal(dto.CancelReservationRequest{UserID: 7})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/42/cancel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_UseReservation_NotStarted(t *testing.T) {
	reservationSvc, _, _, _, r := setupRouter(t)

	reservationSvc.EXPECT().Use(mock.Anything, int64(42)).Return(domain.ErrNotStarted)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/42/use", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UseReservation_Success(t *testing.T) {
	reservationSvc, _, _, _, r := setupRouter(t)

	reservationSvc.EXPECT().Use(mock.Anything, int64(42)).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/42/use", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CompleteReservation_Success(t *testing.T) {
	reservationSvc, _, _, _, r := setupRouter(t)

	reservationSvc.EXPECT().Complete(mock.Anything, int64(42)).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/42/complete", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_RefundReservation_Rejected(t *testing.T) {
	reservationSvc, _, _, _, r := setupRouter(t)

	reservationSvc.EXPECT().ApplyRefund(mock.Anything, int64(42), int64(7)).Return(domain.ErrRefundRejected)

	body, _ := json.Marshal(dto.RefundRequest{UserID: 7})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/42/refund", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestHandler_NotifyPayment_Success(t *testing.T) {
	reservationSvc, _, _, _, r := setupRouter(t)

	reservationSvc.EXPECT().UpdatePaymentStatus(mock.Anything, int64(42), true).Return(nil)

	paid := true
	body, _ := json.Marshal(dto.PaymentNotifyRequest{ReservationID: 42, Paid: &paid})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/payments/notify", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_NotifyPayment_MissingPaid(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"reservation_id":42}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/payments/notify", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_QueryReservations_Success(t *testing.T) {
	reservationSvc, _, _, _, r := setupRouter(t)

	reservationSvc.EXPECT().Query(mock.Anything, mock.Anything).
		Return([]*domain.Reservation{sampleReservation()}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reservations?user_id=7&status=0", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_QueryReservations_InvalidStatus(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reservations?status=9", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetUserReservations_Success(t *testing.T) {
	reservationSvc, _, _, _, r := setupRouter(t)

	reservationSvc.EXPECT().ListByUser(mock.Anything, int64(7), 2, 10).
		Return([]*domain.Reservation{sampleReservation()}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/7/reservations?page=2&page_size=10", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_PurgeUserReservations_Success(t *testing.T) {
	reservationSvc, _, _, _, r := setupRouter(t)

	reservationSvc.EXPECT().PurgeTerminal(mock.Anything, int64(7)).Return(3, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/users/7/reservations", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CountResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Count)
}

// --- Spaces ---

func TestHandler_CreateSpace_Success(t *testing.T) {
	_, spaceSvc, _, _, r := setupRouter(t)

	space := &domain.Space{
		ID:          3,
		SpaceNumber: "A-101",
		LotID:       11,
		State:       domain.SpaceStateFree,
		Status:      "AVAILABLE",
		IsAvailable: true,
		HourlyRate:  10,
		CreatedAt:   time.Now(),
	}
	spaceSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(space, nil)

	body, _ := json.Marshal(dto.CreateSpaceRequest{SpaceNumber: "A-101", LotID: 11, HourlyRate: 10})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/spaces", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.SpaceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "A-101", resp.SpaceNumber)
	assert.Equal(t, "AVAILABLE", resp.Status)
}

func TestHandler_CreateSpace_DuplicateNumber(t *testing.T) {
	_, spaceSvc, _, _, r := setupRouter(t)

	spaceSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrSpaceNumberTaken)

	body, _ := json.Marshal(dto.CreateSpaceRequest{SpaceNumber: "A-101", LotID: 11})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/spaces", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_UpdateSpaceState_Success(t *testing.T) {
	_, spaceSvc, _, _, r := setupRouter(t)

	spaceSvc.EXPECT().
		UpdateState(mock.Anything, int64(3), domain.SpaceStateOccupied, domain.SpaceStateFree, 2).
		Return(nil)

	body, _ := json.Marshal(dto.UpdateSpaceStateRequest{NewState: 2, OldState: 0, Version: 2})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/spaces/3/state", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_UpdateSpaceState_VersionConflict(t *testing.T) {
	_, spaceSvc, _, _, r := setupRouter(t)

	spaceSvc.EXPECT().
		UpdateState(mock.Anything, int64(3), domain.SpaceStateOccupied, domain.SpaceStateFree, 1).
		Return(domain.ErrVersionConflict)

	body, _ := json.Marshal(dto.UpdateSpaceStateRequest{NewState: 2, OldState: 0, Version: 1})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/spaces/3/state", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_UpdateSpaceAvailability_Success(t *testing.T) {
	_, spaceSvc, _, _, r := setupRouter(t)

	spaceSvc.EXPECT().SetAvailability(mock.Anything, int64(3), false).Return(nil)

	body := []byte(`{"available":false}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/spaces/3/availability", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_UpdateSpaceAvailability_NotFound(t *testing.T) {
	_, spaceSvc, _, _, r := setupRouter(t)

	spaceSvc.EXPECT().SetAvailability(mock.Anything, int64(3), false).Return(domain.ErrSpaceNotFound)

	body := []byte(`{"available":false}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/spaces/3/availability", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CheckSpaceAvailability_Success(t *testing.T) {
	reservationSvc, _, _, _, r := setupRouter(t)

	reservationSvc.EXPECT().
		CheckAvailability(mock.Anything, int64(3), mock.Anything, mock.Anything, (*int64)(nil)).
		Return(true, nil)

	start := time.Now().Add(time.Hour).UTC().Format(time.RFC3339)
	end := time.Now().Add(2 * time.Hour).UTC().Format(time.RFC3339)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/spaces/3/availability?start="+start+"&end="+end, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Available)
}

func TestHandler_CheckSpaceAvailability_MissingWindow(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/spaces/3/availability", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Lots ---

func TestHandler_ListLots_Success(t *testing.T) {
	_, _, lotSvc, _, r := setupRouter(t)

	lots := []*domain.Lot{
		{ID: 11, Name: "Central", Address: "1 Main St", TotalSpaces: 50, AvailableSpaces: 14},
	}
	lotSvc.EXPECT().List(mock.Anything).Return(lots, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/lots", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.LotResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
	assert.Equal(t, 14, resp[0].AvailableSpaces)
}

func TestHandler_GetLotAvailability_Success(t *testing.T) {
	_, _, lotSvc, _, r := setupRouter(t)

	lotSvc.EXPECT().Availability(mock.Anything, int64(11)).Return(14, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/lots/11/availability", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.LotAvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 14, resp.AvailableSpaces)
}

func TestHandler_ListLotSpaces_Success(t *testing.T) {
	_, spaceSvc, _, _, r := setupRouter(t)

	spaces := []*domain.Space{
		{ID: 3, SpaceNumber: "A-101", LotID: 11, Status: "AVAILABLE", IsAvailable: true, CreatedAt: time.Now()},
	}
	spaceSvc.EXPECT().ListAvailable(mock.Anything, int64(11)).Return(spaces, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/lots/11/spaces", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.SpaceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

// --- Users ---

func TestHandler_CreateUser_Success(t *testing.T) {
	_, _, _, userSvc, r := setupRouter(t)

	user := &domain.User{ID: 7, Username: "alice", CreatedAt: time.Now()}
	userSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(user, nil)

	body, _ := json.Marshal(dto.CreateUserRequest{Username: "alice"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Username)
}

func TestHandler_CreateUser_UsernameTaken(t *testing.T) {
	_, _, _, userSvc, r := setupRouter(t)

	userSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrUsernameTaken)

	body, _ := json.Marshal(dto.CreateUserRequest{Username: "taken"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	reservationSvc, _, _, _, r := setupRouter(t)

	reservationSvc.EXPECT().GetByID(mock.Anything, int64(42)).Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reservations/42", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "internal server error", resp.Error)
}
