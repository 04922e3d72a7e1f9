package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/keeeellymu/SHUNBO-AI-RESERVATION-PARKING/internal/domain"
	"github.com/keeeellymu/SHUNBO-AI-RESERVATION-PARKING/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type reservationFixture struct {
	reservations *mocks.MockReservationRepo
	spaces       *mocks.MockSpaceRepo
	lots         *mocks.MockLotRepo
	users        *mocks.MockUserRepo
	gateway      *mocks.MockPaymentGateway
	notifier     *mocks.MockReservationNotifier
	cache        *mocks.MockLotAvailabilityCache
	svc          *ReservationService
}

func newReservationFixture(t *testing.T, now time.Time) *reservationFixture {
	t.Helper()
	f := &reservationFixture{
		reservations: mocks.NewMockReservationRepo(t),
		spaces:       mocks.NewMockSpaceRepo(t),
		lots:         mocks.NewMockLotRepo(t),
		users:        mocks.NewMockUserRepo(t),
		gateway:      mocks.NewMockPaymentGateway(t),
		notifier:     mocks.NewMockReservationNotifier(t),
		cache:        mocks.NewMockLotAvailabilityCache(t),
	}
	f.svc = NewReservationService(
		f.reservations, f.spaces, f.lots, f.users,
		f.gateway, f.notifier, f.cache,
		func() time.Time { return now },
		newTestLogger(t),
	)
	return f
}

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func validCreateInput() domain.CreateReservationInput {
	return domain.CreateReservationInput{
		UserID:      7,
		SpaceID:     3,
		StartTime:   testNow.Add(time.Hour),
		EndTime:     testNow.Add(3 * time.Hour),
		PlateNumber: "B123XY",
	}
}

func TestReservationService_Create_Success(t *testing.T) {
	f := newReservationFixture(t, testNow)
	input := validCreateInput()

	user := &domain.User{ID: 7, Username: "alice"}
	space := &domain.Space{ID: 3, LotID: 11, HourlyRate: 10}

	f.users.EXPECT().GetByID(mock.Anything, int64(7)).Return(user, nil)
	f.reservations.EXPECT().FindUnpaidByUser(mock.Anything, int64(7)).Return(nil, nil)
	f.spaces.EXPECT().GetByID(mock.Anything, int64(3)).Return(space, nil)
	f.reservations.EXPECT().SweepTimeouts(mock.Anything, testNow).Return(0, nil)
	f.reservations.EXPECT().HasOverlap(mock.Anything, int64(3), input.StartTime, input.EndTime, (*int64)(nil)).Return(false, nil)
	f.reservations.EXPECT().Create(mock.Anything, mock.Anything).Run(func(ctx context.Context, r *domain.Reservation) {
		r.ID = 42
	}).Return(nil)
	f.lots.EXPECT().DecrementAvailable(mock.Anything, int64(11)).Return(nil)
	f.cache.EXPECT().Invalidate(mock.Anything, int64(11)).Return(nil)
	f.notifier.EXPECT().NotifyReservationCreated(mock.Anything, user, mock.Anything).Return()

	reservation, err := f.svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, int64(42), reservation.ID)
	assert.Equal(t, domain.ReservationStatusPending, reservation.Status)
	assert.Equal(t, domain.PaymentStatusUnpaid, reservation.PaymentStatus)
	assert.Equal(t, int64(11), reservation.LotID)
	assert.Regexp(t, `^RES\d{14}[0-9A-F]{6}$`, reservation.ReservationNo)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestReservationService_Create_InvalidWindow(t *testing.T) {
	f := newReservationFixture(t, testNow)

	input := validCreateInput()
	input.EndTime = input.StartTime

	_, err := f.svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_Create_StartInPast(t *testing.T) {
	f := newReservationFixture(t, testNow)

	input := validCreateInput()
	input.StartTime = testNow.Add(-time.Minute)

	_, err := f.svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_Create_MissingPlate(t *testing.T) {
	f := newReservationFixture(t, testNow)

	input := validCreateInput()
	input.PlateNumber = ""

	_, err := f.svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_Create_UserNotFound(t *testing.T) {
	f := newReservationFixture(t, testNow)

	f.users.EXPECT().GetByID(mock.Anything, int64(7)).Return(nil, domain.ErrUserNotFound)

	_, err := f.svc.Create(context.Background(), validCreateInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestReservationService_Create_UnpaidOrderBlocks(t *testing.T) {
	f := newReservationFixture(t, testNow)

	unpaidID := int64(99)
	f.users.EXPECT().GetByID(mock.Anything, int64(7)).Return(&domain.User{ID: 7}, nil)
	f.reservations.EXPECT().FindUnpaidByUser(mock.Anything, int64(7)).Return(&unpaidID, nil)

	_, err := f.svc.Create(context.Background(), validCreateInput())

	require.Error(t, err)
	var unpaid *domain.UnpaidOrderError
	require.ErrorAs(t, err, &unpaid)
	assert.Equal(t, int64(99), unpaid.ReservationID)
}

func TestReservationService_Create_Overlap(t *testing.T) {
	f := newReservationFixture(t, testNow)
	input := validCreateInput()

	f.users.EXPECT().GetByID(mock.Anything, int64(7)).Return(&domain.User{ID: 7}, nil)
	f.reservations.EXPECT().FindUnpaidByUser(mock.Anything, int64(7)).Return(nil, nil)
	f.spaces.EXPECT().GetByID(mock.Anything, int64(3)).Return(&domain.Space{ID: 3, LotID: 11}, nil)
	f.reservations.EXPECT().SweepTimeouts(mock.Anything, testNow).Return(0, nil)
	f.reservations.EXPECT().HasOverlap(mock.Anything, int64(3), input.StartTime, input.EndTime, (*int64)(nil)).Return(true, nil)

	_, err := f.svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOverlap)
}

func TestReservationService_Create_LostClaimRace(t *testing.T) {
	f := newReservationFixture(t, testNow)
	input := validCreateInput()

	f.users.EXPECT().GetByID(mock.Anything, int64(7)).Return(&domain.User{ID: 7}, nil)
	f.reservations.EXPECT().FindUnpaidByUser(mock.Anything, int64(7)).Return(nil, nil)
	f.spaces.EXPECT().GetByID(mock.Anything, int64(3)).Return(&domain.Space{ID: 3, LotID: 11}, nil)
	f.reservations.EXPECT().SweepTimeouts(mock.Anything, testNow).Return(0, nil)
	f.reservations.EXPECT().HasOverlap(mock.Anything, int64(3), input.StartTime, input.EndTime, (*int64)(nil)).Return(false, nil)
	f.reservations.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrSpaceUnavailable)

	_, err := f.svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSpaceUnavailable)
}

func TestReservationService_Create_SweepFailureDoesNotAbort(t *testing.T) {
	f := newReservationFixture(t, testNow)
	input := validCreateInput()

	user := &domain.User{ID: 7}
	f.users.EXPECT().GetByID(mock.Anything, int64(7)).Return(user, nil)
	f.reservations.EXPECT().FindUnpaidByUser(mock.Anything, int64(7)).Return(nil, nil)
	f.spaces.EXPECT().GetByID(mock.Anything, int64(3)).Return(&domain.Space{ID: 3, LotID: 11}, nil)
	f.reservations.EXPECT().SweepTimeouts(mock.Anything, testNow).Return(0, errors.New("db down"))
	f.reservations.EXPECT().HasOverlap(mock.Anything, int64(3), input.StartTime, input.EndTime, (*int64)(nil)).Return(false, nil)
	f.reservations.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.lots.EXPECT().DecrementAvailable(mock.Anything, int64(11)).Return(nil)
	f.cache.EXPECT().Invalidate(mock.Anything, int64(11)).Return(nil)
	f.notifier.EXPECT().NotifyReservationCreated(mock.Anything, user, mock.Anything).Return()

	_, err := f.svc.Create(context.Background(), input)

	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Cancel_Success(t *testing.T) {
	f := newReservationFixture(t, testNow)

	reservation := &domain.Reservation{
		ID: 42, UserID: 7, SpaceID: 3, LotID: 11,
		Status: domain.ReservationStatusPending,
	}
	user := &domain.User{ID: 7}

	f.reservations.EXPECT().GetByID(mock.Anything, int64(42)).Return(reservation, nil)
	f.reservations.EXPECT().UpdateStatus(mock.Anything, int64(42), domain.ReservationStatusPending, domain.ReservationStatusCancelled).Return(true, nil)
	f.spaces.EXPECT().Release(mock.Anything, int64(3)).Return(true, nil)
	f.lots.EXPECT().IncrementAvailable(mock.Anything, int64(11)).Return(nil)
	f.cache.EXPECT().Invalidate(mock.Anything, int64(11)).Return(nil)
	f.users.EXPECT().GetByID(mock.Anything, int64(7)).Return(user, nil)
	f.notifier.EXPECT().NotifyReservationCancelled(mock.Anything, user, reservation).Return()

	err := f.svc.Cancel(context.Background(), 42, 7)

	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Cancel_WrongOwner(t *testing.T) {
	f := newReservationFixture(t, testNow)

	f.reservations.EXPECT().GetByID(mock.Anything, int64(42)).Return(&domain.Reservation{
		ID: 42, UserID: 7, Status: domain.ReservationStatusPending,
	}, nil)

	err := f.svc.Cancel(context.Background(), 42, 8)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestReservationService_Cancel_NotPending(t *testing.T) {
	f := newReservationFixture(t, testNow)

	f.reservations.EXPECT().GetByID(mock.Anything, int64(42)).Return(&domain.Reservation{
		ID: 42, UserID: 7, Status: domain.ReservationStatusUsed,
	}, nil)

	err := f.svc.Cancel(context.Background(), 42, 7)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestReservationService_Cancel_LostRaceToReaper(t *testing.T) {
	f := newReservationFixture(t, testNow)

	f.reservations.EXPECT().GetByID(mock.Anything, int64(42)).Return(&domain.Reservation{
		ID: 42, UserID: 7, SpaceID: 3, LotID: 11,
		Status: domain.ReservationStatusPending,
	}, nil)
	f.reservations.EXPECT().UpdateStatus(mock.Anything, int64(42), domain.ReservationStatusPending, domain.ReservationStatusCancelled).Return(false, nil)

	err := f.svc.Cancel(context.Background(), 42, 7)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestReservationService_Use_Success(t *testing.T) {
	f := newReservationFixture(t, testNow)

	f.reservations.EXPECT().GetByID(mock.Anything, int64(42)).Return(&domain.Reservation{
		ID: 42, Status: domain.ReservationStatusPending,
		StartTime: testNow.Add(-time.Hour),
		EndTime:   testNow.Add(time.Hour),
	}, nil)
	f.reservations.EXPECT().MarkUsed(mock.Anything, int64(42), testNow).Return(true, nil)

	err := f.svc.Use(context.Background(), 42)

	require.NoError(t, err)
}

func TestReservationService_Use_BeforeWindow(t *testing.T) {
	f := newReservationFixture(t, testNow)

	f.reservations.EXPECT().GetByID(mock.Anything, int64(42)).Return(&domain.Reservation{
		ID: 42, Status: domain.ReservationStatusPending,
		StartTime: testNow.Add(time.Hour),
		EndTime:   testNow.Add(2 * time.Hour),
	}, nil)

	err := f.svc.Use(context.Background(), 42)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotStarted)
}

func TestReservationService_Use_AfterWindow(t *testing.T) {
	f := newReservationFixture(t, testNow)

	f.reservations.EXPECT().GetByID(mock.Anything, int64(42)).Return(&domain.Reservation{
		ID: 42, Status: domain.ReservationStatusPending,
		StartTime: testNow.Add(-2 * time.Hour),
		EndTime:   testNow.Add(-time.Hour),
	}, nil)

	err := f.svc.Use(context.Background(), 42)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrExpired)
}

func TestReservationService_Use_NotPending(t *testing.T) {
	f := newReservationFixture(t, testNow)

	f.reservations.EXPECT().GetByID(mock.Anything, int64(42)).Return(&domain.Reservation{
		ID: 42, Status: domain.ReservationStatusCancelled,
	}, nil)

	err := f.svc.Use(context.Background(), 42)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestReservationService_Complete_Success(t *testing.T) {
	f := newReservationFixture(t, testNow)

	f.reservations.EXPECT().GetByID(mock.Anything, int64(42)).Return(&domain.Reservation{
		ID: 42, Status: domain.ReservationStatusUsed,
	}, nil)
	f.reservations.EXPECT().MarkExited(mock.Anything, int64(42), testNow).Return(true, nil)

	err := f.svc.Complete(context.Background(), 42)

	require.NoError(t, err)
}

func TestReservationService_Complete_NotInUse(t *testing.T) {
	f := newReservationFixture(t, testNow)

	f.reservations.EXPECT().GetByID(mock.Anything, int64(42)).Return(&domain.Reservation{
		ID: 42, Status: domain.ReservationStatusPending,
	}, nil)

	err := f.svc.Complete(context.Background(), 42)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestReservationService_UpdatePaymentStatus_PaidReleasesSpace(t *testing.T) {
	f := newReservationFixture(t, testNow)

	reservation := &domain.Reservation{
		ID: 42, UserID: 7, SpaceID: 3, LotID: 11,
		Status: domain.ReservationStatusUsed,
	}
	user := &domain.User{ID: 7}

	f.reservations.EXPECT().GetByID(mock.Anything, int64(42)).Return(reservation, nil)
	f.reservations.EXPECT().MarkPaid(mock.Anything, int64(42)).Return(true, nil)
	f.spaces.EXPECT().Release(mock.Anything, int64(3)).Return(true, nil)
	f.lots.EXPECT().IncrementAvailable(mock.Anything, int64(11)).Return(nil)
	f.cache.EXPECT().Invalidate(mock.Anything, int64(11)).Return(nil)
	f.users.EXPECT().GetByID(mock.Anything, int64(7)).Return(user, nil)
	f.notifier.EXPECT().NotifyPaymentReceived(mock.Anything, user, reservation).Return()

	err := f.svc.UpdatePaymentStatus(context.Background(), 42, true)

	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_UpdatePaymentStatus_EntryDuringPaymentStillReleases(t *testing.T) {
	f := newReservationFixture(t, testNow)

	pending := &domain.Reservation{
		ID: 42, UserID: 7, SpaceID: 3, LotID: 11,
		Status: domain.ReservationStatusPending,
	}
	used := &domain.Reservation{
		ID: 42, UserID: 7, SpaceID: 3, LotID: 11,
		Status: domain.ReservationStatusUsed,
	}
	user := &domain.User{ID: 7}

	// The car enters between the first read and the paid flip. The stale
	// snapshot says PENDING, the fresh row says USED and must win.
	f.reservations.EXPECT().GetByID(mock.Anything, int64(42)).Return(pending, nil).Once()
	f.reservations.EXPECT().MarkPaid(mock.Anything, int64(42)).Return(true, nil)
	f.reservations.EXPECT().GetByID(mock.Anything, int64(42)).Return(used, nil).Once()
	f.spaces.EXPECT().Release(mock.Anything, int64(3)).Return(true, nil)
	f.lots.EXPECT().IncrementAvailable(mock.Anything, int64(11)).Return(nil)
	f.cache.EXPECT().Invalidate(mock.Anything, int64(11)).Return(nil)
	f.users.EXPECT().GetByID(mock.Anything, int64(7)).Return(user, nil)
	f.notifier.EXPECT().NotifyPaymentReceived(mock.Anything, user, used).Return()

	err := f.svc.UpdatePaymentStatus(context.Background(), 42, true)

	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_UpdatePaymentStatus_DuplicateIsNoop(t *testing.T) {
	f := newReservationFixture(t, testNow)

	f.reservations.EXPECT().GetByID(mock.Anything, int64(42)).Return(&domain.Reservation{
		ID: 42, SpaceID: 3, Status: domain.ReservationStatusUsed,
	}, nil)
	f.reservations.EXPECT().MarkPaid(mock.Anything, int64(42)).Return(false, nil)

	err := f.svc.UpdatePaymentStatus(context.Background(), 42, true)

	require.NoError(t, err)
	f.spaces.AssertNotCalled(t, "Release", mock.Anything, mock.Anything)
}

func TestReservationService_UpdatePaymentStatus_PrepaidKeepsSpaceClaimed(t *testing.T) {
	f := newReservationFixture(t, testNow)

	reservation := &domain.Reservation{
		ID: 42, UserID: 7, SpaceID: 3, LotID: 11,
		Status: domain.ReservationStatusPending,
	}
	user := &domain.User{ID: 7}

	f.reservations.EXPECT().GetByID(mock.Anything, int64(42)).Return(reservation, nil)
	f.reservations.EXPECT().MarkPaid(mock.Anything, int64(42)).Return(true, nil)
	f.users.EXPECT().GetByID(mock.Anything, int64(7)).Return(user, nil)
	f.notifier.EXPECT().NotifyPaymentReceived(mock.Anything, user, reservation).Return()

	err := f.svc.UpdatePaymentStatus(context.Background(), 42, true)

	require.NoError(t, err)
	f.spaces.AssertNotCalled(t, "Release", mock.Anything, mock.Anything)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_UpdatePaymentStatus_NotPaid(t *testing.T) {
	f := newReservationFixture(t, testNow)

	f.reservations.EXPECT().GetByID(mock.Anything, int64(42)).Return(&domain.Reservation{ID: 42}, nil)
	f.reservations.EXPECT().SetPaymentStatus(mock.Anything, int64(42), domain.PaymentStatusUnpaid).Return(nil)

	err := f.svc.UpdatePaymentStatus(context.Background(), 42, false)

	require.NoError(t, err)
}

func TestReservationService_ApplyRefund_Success(t *testing.T) {
	f := newReservationFixture(t, testNow)

	reservation := &domain.Reservation{
		ID: 42, UserID: 7, SpaceID: 3,
		ReservationNo: "RES20260901120000ABCDEF",
		Status:        domain.ReservationStatusCancelled,
		RefundStatus:  domain.RefundStatusNone,
		StartTime:     testNow,
		EndTime:       testNow.Add(2 * time.Hour),
	}

	f.reservations.EXPECT().GetByID(mock.Anything, int64(42)).Return(reservation, nil)
	f.reservations.EXPECT().SetRefundStatus(mock.Anything, int64(42), domain.RefundStatusRefunding).Return(nil)
	f.spaces.EXPECT().GetByID(mock.Anything, int64(3)).Return(&domain.Space{ID: 3, HourlyRate: 10}, nil)
	f.gateway.EXPECT().Refund(mock.Anything, "RES20260901120000ABCDEF", 20.0, "reservation refund").Return(true, nil)
	f.reservations.EXPECT().SetRefundStatus(mock.Anything, int64(42), domain.RefundStatusSucceeded).Return(nil)

	err := f.svc.ApplyRefund(context.Background(), 42, 7)

	require.NoError(t, err)
}

func TestReservationService_ApplyRefund_Rejected(t *testing.T) {
	f := newReservationFixture(t, testNow)

	f.reservations.EXPECT().GetByID(mock.Anything, int64(42)).Return(&domain.Reservation{
		ID: 42, UserID: 7, SpaceID: 3,
		Status:       domain.ReservationStatusCancelled,
		RefundStatus: domain.RefundStatusNone,
	}, nil)
	f.reservations.EXPECT().SetRefundStatus(mock.Anything, int64(42), domain.RefundStatusRefunding).Return(nil)
	f.spaces.EXPECT().GetByID(mock.Anything, int64(3)).Return(&domain.Space{ID: 3}, nil)
	f.gateway.EXPECT().Refund(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	f.reservations.EXPECT().SetRefundStatus(mock.Anything, int64(42), domain.RefundStatusFailed).Return(nil)

	err := f.svc.ApplyRefund(context.Background(), 42, 7)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRefundRejected)
}

func TestReservationService_ApplyRefund_GatewayError(t *testing.T) {
	f := newReservationFixture(t, testNow)

	f.reservations.EXPECT().GetByID(mock.Anything, int64(42)).Return(&domain.Reservation{
		ID: 42, UserID: 7, SpaceID: 3,
		Status:       domain.ReservationStatusUsed,
		RefundStatus: domain.RefundStatusNone,
	}, nil)
	f.reservations.EXPECT().SetRefundStatus(mock.Anything, int64(42), domain.RefundStatusRefunding).Return(nil)
	f.spaces.EXPECT().GetByID(mock.Anything, int64(3)).Return(&domain.Space{ID: 3}, nil)
	f.gateway.EXPECT().Refund(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(false, errors.New("provider timeout"))
	f.reservations.EXPECT().SetRefundStatus(mock.Anything, int64(42), domain.RefundStatusFailed).Return(nil)

	err := f.svc.ApplyRefund(context.Background(), 42, 7)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPaymentGateway)
}

func TestReservationService_ApplyRefund_AlreadyRefunding(t *testing.T) {
	f := newReservationFixture(t, testNow)

	f.reservations.EXPECT().GetByID(mock.Anything, int64(42)).Return(&domain.Reservation{
		ID: 42, UserID: 7,
		Status:       domain.ReservationStatusCancelled,
		RefundStatus: domain.RefundStatusRefunding,
	}, nil)

	err := f.svc.ApplyRefund(context.Background(), 42, 7)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyRefunding)
}

func TestReservationService_ApplyRefund_PendingNotRefundable(t *testing.T) {
	f := newReservationFixture(t, testNow)

	f.reservations.EXPECT().GetByID(mock.Anything, int64(42)).Return(&domain.Reservation{
		ID: 42, UserID: 7,
		Status:       domain.ReservationStatusPending,
		RefundStatus: domain.RefundStatusNone,
	}, nil)

	err := f.svc.ApplyRefund(context.Background(), 42, 7)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestReservationService_CheckAvailability(t *testing.T) {
	f := newReservationFixture(t, testNow)

	start := testNow.Add(time.Hour)
	end := testNow.Add(2 * time.Hour)
	f.reservations.EXPECT().HasOverlap(mock.Anything, int64(3), start, end, (*int64)(nil)).Return(true, nil)

	available, err := f.svc.CheckAvailability(context.Background(), 3, start, end, nil)

	require.NoError(t, err)
	assert.False(t, available)
}

func TestReservationService_SweepTimeouts(t *testing.T) {
	f := newReservationFixture(t, testNow)

	f.reservations.EXPECT().SweepTimeouts(mock.Anything, testNow).Return(3, nil)

	count, err := f.svc.SweepTimeouts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestReservationService_PurgeTerminal(t *testing.T) {
	f := newReservationFixture(t, testNow)

	f.reservations.EXPECT().PurgeTerminal(mock.Anything, int64(7)).Return(2, nil)

	count, err := f.svc.PurgeTerminal(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
