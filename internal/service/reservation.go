package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/keeeellymu/SHUNBO-AI-RESERVATION-PARKING/internal/domain"
	"github.com/keeeellymu/SHUNBO-AI-RESERVATION-PARKING/internal/service/ports"
)

// Clock is injected so window validation and the reaper are testable.
type Clock func() time.Time

// ReservationService is the allocation engine: it composes the space
// registry, the reservation ledger and the overlap predicate into
// atomic, invariant-preserving lifecycle transitions.
type ReservationService struct {
	reservations ports.ReservationRepo
	spaces       ports.SpaceRepo
	lots         ports.LotRepo
	users        ports.UserRepo
	gateway      ports.PaymentGateway
	notifier     ports.ReservationNotifier
	cache        ports.LotAvailabilityCache
	now          Clock
	logger       logger.Logger
}

func NewReservationService(
	reservations ports.ReservationRepo,
	spaces ports.SpaceRepo,
	lots ports.LotRepo,
	users ports.UserRepo,
	gateway ports.PaymentGateway,
	notifier ports.ReservationNotifier,
	cache ports.LotAvailabilityCache,
	now Clock,
	logger logger.Logger,
) *ReservationService {
	if now == nil {
		now = time.Now
	}
	return &ReservationService{
		reservations: reservations,
		spaces:       spaces,
		lots:         lots,
		users:        users,
		gateway:      gateway,
		notifier:     notifier,
		cache:        cache,
		now:          now,
		logger:       logger,
	}
}

func (s *ReservationService) Create(ctx context.Context, input domain.CreateReservationInput) (*domain.Reservation, error) {
	now := s.now()
	if !input.EndTime.After(input.StartTime) {
		return nil, fmt.Errorf("%w: end time must be after start time", domain.ErrValidation)
	}
	if !input.StartTime.After(now) {
		return nil, fmt.Errorf("%w: start time must be in the future", domain.ErrValidation)
	}
	if input.PlateNumber == "" {
		return nil, fmt.Errorf("%w: plate number is required", domain.ErrValidation)
	}

	user, err := s.users.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	// Fail fast and cheap before touching the space.
	unpaidID, err := s.reservations.FindUnpaidByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("check unpaid reservation: %w", err)
	}
	if unpaidID != nil {
		return nil, &domain.UnpaidOrderError{ReservationID: *unpaidID}
	}

	space, err := s.spaces.GetByID(ctx, input.SpaceID)
	if err != nil {
		return nil, fmt.Errorf("check space: %w", err)
	}

	// Opportunistic sweep so just-expired rows do not falsely report
	// conflicts. A failure here must not abort creation.
	if _, err = s.reservations.SweepTimeouts(ctx, now); err != nil {
		s.logger.Error("opportunistic timeout sweep failed",
			logger.String("error", err.Error()),
		)
	}

	overlaps, err := s.reservations.HasOverlap(ctx, input.SpaceID, input.StartTime, input.EndTime, nil)
	if err != nil {
		return nil, fmt.Errorf("check overlap: %w", err)
	}
	if overlaps {
		return nil, domain.ErrOverlap
	}

	reservation := &domain.Reservation{
		ReservationNo: s.generateReservationNo(),
		UserID:        input.UserID,
		SpaceID:       space.ID,
		// The lot id always comes from the space record, never from
		// caller input, so a stale or hostile client cannot corrupt
		// another lot's counters.
		LotID:         space.LotID,
		Status:        domain.ReservationStatusPending,
		PaymentStatus: domain.PaymentStatusUnpaid,
		RefundStatus:  domain.RefundStatusNone,
		StartTime:     input.StartTime,
		EndTime:       input.EndTime,
		PlateNumber:   input.PlateNumber,
		ContactPhone:  input.Phone,
		VehicleInfo:   input.VehicleInfo,
		Remark:        input.Remark,
	}

	// Overlap re-check, space claim and insert run as one transaction
	// inside the repository.
	if err = s.reservations.Create(ctx, reservation); err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.logger.Info("reservation created",
		logger.Int64("reservation_id", reservation.ID),
		logger.String("reservation_no", reservation.ReservationNo),
		logger.Int64("space_id", space.ID),
		logger.Int64("user_id", input.UserID),
	)

	s.adjustLot(ctx, space.LotID, s.lots.DecrementAvailable)

	go s.notifier.NotifyReservationCreated(context.WithoutCancel(ctx), user, reservation)

	return reservation, nil
}

func (s *ReservationService) Cancel(ctx context.Context, id, userID int64) error {
	reservation, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get reservation: %w", err)
	}

	if reservation.UserID != userID {
		return domain.ErrForbidden
	}
	if reservation.Status != domain.ReservationStatusPending {
		return fmt.Errorf("%w: cannot cancel a %s reservation", domain.ErrInvalidState, reservation.Status)
	}

	// Keyed on id+status, not on the version column: if the reaper wins
	// the race the predicate no longer matches and we report it, instead
	// of clobbering a TIMEOUT row.
	ok, err := s.reservations.UpdateStatus(ctx, id, domain.ReservationStatusPending, domain.ReservationStatusCancelled)
	if err != nil {
		return fmt.Errorf("cancel reservation: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: reservation is no longer pending", domain.ErrInvalidState)
	}

	s.logger.Info("reservation cancelled",
		logger.Int64("reservation_id", id),
		logger.Int64("user_id", userID),
	)

	// The cancellation is committed; releasing the resource must not be
	// able to undo it.
	s.releaseSpace(ctx, reservation.SpaceID, reservation.LotID)

	if user, err := s.users.GetByID(ctx, userID); err == nil {
		go s.notifier.NotifyReservationCancelled(context.WithoutCancel(ctx), user, reservation)
	}

	return nil
}

// Use marks the driver's entry. Allowed only inside the booked window.
func (s *ReservationService) Use(ctx context.Context, id int64) error {
	reservation, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get reservation: %w", err)
	}

	if reservation.Status != domain.ReservationStatusPending {
		return fmt.Errorf("%w: cannot use a %s reservation", domain.ErrInvalidState, reservation.Status)
	}

	now := s.now()
	if now.Before(reservation.StartTime) {
		return domain.ErrNotStarted
	}
	if now.After(reservation.EndTime) {
		return domain.ErrExpired
	}

	ok, err := s.reservations.MarkUsed(ctx, id, now)
	if err != nil {
		return fmt.Errorf("mark reservation used: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: reservation is no longer pending", domain.ErrInvalidState)
	}

	s.logger.Info("reservation in use", logger.Int64("reservation_id", id))

	return nil
}

// Complete marks the driver's exit. The reservation stays USED+UNPAID and
// the space stays claimed: release is gated on payment, because payment
// may still fail or be retried.
func (s *ReservationService) Complete(ctx context.Context, id int64) error {
	reservation, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get reservation: %w", err)
	}

	if reservation.Status != domain.ReservationStatusUsed {
		return fmt.Errorf("%w: cannot complete a %s reservation", domain.ErrInvalidState, reservation.Status)
	}

	ok, err := s.reservations.MarkExited(ctx, id, s.now())
	if err != nil {
		return fmt.Errorf("mark reservation exited: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: reservation is no longer in use", domain.ErrInvalidState)
	}

	s.logger.Info("reservation completed, awaiting payment",
		logger.Int64("reservation_id", id),
	)

	return nil
}

// UpdatePaymentStatus consumes the gateway's boolean verdict. A successful
// payment on a USED reservation is the event that finally frees the space;
// the conditional UNPAID->PAID flip makes a duplicate callback a no-op.
func (s *ReservationService) UpdatePaymentStatus(ctx context.Context, id int64, paid bool) error {
	reservation, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get reservation: %w", err)
	}

	if !paid {
		if err = s.reservations.SetPaymentStatus(ctx, id, domain.PaymentStatusUnpaid); err != nil {
			return fmt.Errorf("set payment status: %w", err)
		}
		return nil
	}

	flipped, err := s.reservations.MarkPaid(ctx, id)
	if err != nil {
		return fmt.Errorf("mark reservation paid: %w", err)
	}
	if !flipped {
		s.logger.Info("duplicate payment notification ignored",
			logger.Int64("reservation_id", id),
		)
		return nil
	}

	s.logger.Info("payment received",
		logger.Int64("reservation_id", id),
		logger.String("reservation_no", reservation.ReservationNo),
	)

	// An entry scan may have flipped the row to USED between the first read
	// and the payment flip, so the release decision needs a fresh row.
	current, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("reload after payment failed",
			logger.Int64("reservation_id", id),
			logger.String("error", err.Error()),
		)
		current = reservation
	}

	if current.Status == domain.ReservationStatusUsed {
		s.releaseSpace(ctx, current.SpaceID, current.LotID)
	}

	if user, err := s.users.GetByID(ctx, current.UserID); err == nil {
		go s.notifier.NotifyPaymentReceived(context.WithoutCancel(ctx), user, current)
	}

	return nil
}

func (s *ReservationService) ApplyRefund(ctx context.Context, id, userID int64) error {
	reservation, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get reservation: %w", err)
	}

	if reservation.UserID != userID {
		return domain.ErrForbidden
	}
	if reservation.RefundStatus != domain.RefundStatusNone {
		return domain.ErrAlreadyRefunding
	}
	if reservation.Status != domain.ReservationStatusCancelled &&
		reservation.Status != domain.ReservationStatusUsed {
		return fmt.Errorf("%w: only cancelled or used reservations are refundable", domain.ErrInvalidState)
	}

	if err = s.reservations.SetRefundStatus(ctx, id, domain.RefundStatusRefunding); err != nil {
		return fmt.Errorf("set refund status: %w", err)
	}

	ok, gwErr := s.gateway.Refund(ctx, reservation.ReservationNo, s.refundAmount(ctx, reservation), "reservation refund")

	// Whatever the gateway did, the row must never be left at REFUNDING.
	outcome := domain.RefundStatusSucceeded
	if gwErr != nil || !ok {
		outcome = domain.RefundStatusFailed
	}
	if err = s.reservations.SetRefundStatus(ctx, id, outcome); err != nil {
		return fmt.Errorf("record refund outcome: %w", err)
	}

	if gwErr != nil {
		s.logger.Error("refund gateway call failed",
			logger.Int64("reservation_id", id),
			logger.String("error", gwErr.Error()),
		)
		return fmt.Errorf("%w: %s", domain.ErrPaymentGateway, gwErr.Error())
	}
	if !ok {
		return domain.ErrRefundRejected
	}

	s.logger.Info("refund succeeded", logger.Int64("reservation_id", id))

	return nil
}

func (s *ReservationService) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	return s.reservations.GetByID(ctx, id)
}

func (s *ReservationService) ListByUser(ctx context.Context, userID int64, page, pageSize int) ([]*domain.Reservation, error) {
	return s.reservations.ListByUser(ctx, userID, page, pageSize)
}

func (s *ReservationService) Query(ctx context.Context, f domain.ReservationFilter) ([]*domain.Reservation, error) {
	return s.reservations.Query(ctx, f)
}

func (s *ReservationService) CheckAvailability(ctx context.Context, spaceID int64, start, end time.Time, excludeID *int64) (bool, error) {
	overlaps, err := s.reservations.HasOverlap(ctx, spaceID, start, end, excludeID)
	if err != nil {
		return false, fmt.Errorf("check availability: %w", err)
	}
	return !overlaps, nil
}

// SweepTimeouts drives the reaper through the same transition machinery
// the engine uses; it never bypasses it.
func (s *ReservationService) SweepTimeouts(ctx context.Context) (int, error) {
	count, err := s.reservations.SweepTimeouts(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("sweep timeouts: %w", err)
	}
	return count, nil
}

func (s *ReservationService) PurgeTerminal(ctx context.Context, userID int64) (int, error) {
	count, err := s.reservations.PurgeTerminal(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("purge reservations: %w", err)
	}
	if count > 0 {
		s.logger.Info("terminal reservations purged",
			logger.Int64("user_id", userID),
			logger.Int("count", count),
		)
	}
	return count, nil
}

// releaseSpace frees the space and restores the lot counter. Best-effort:
// the primary transition has already committed, so failures are logged
// and swallowed.
func (s *ReservationService) releaseSpace(ctx context.Context, spaceID, lotID int64) {
	released, err := s.spaces.Release(ctx, spaceID)
	if err != nil {
		s.logger.Error("space release failed",
			logger.Int64("space_id", spaceID),
			logger.String("error", err.Error()),
		)
		return
	}
	if !released {
		s.logger.Error("space release matched no row", logger.Int64("space_id", spaceID))
		return
	}

	s.adjustLot(ctx, lotID, s.lots.IncrementAvailable)
}

func (s *ReservationService) adjustLot(ctx context.Context, lotID int64, adjust func(context.Context, int64) error) {
	if err := adjust(ctx, lotID); err != nil {
		s.logger.Error("lot counter update failed",
			logger.Int64("lot_id", lotID),
			logger.String("error", err.Error()),
		)
	}
	if err := s.cache.Invalidate(ctx, lotID); err != nil {
		s.logger.Error("lot cache invalidation failed",
			logger.Int64("lot_id", lotID),
			logger.String("error", err.Error()),
		)
	}
}

func (s *ReservationService) refundAmount(ctx context.Context, r *domain.Reservation) float64 {
	space, err := s.spaces.GetByID(ctx, r.SpaceID)
	if err != nil {
		s.logger.Error("space lookup for refund amount failed",
			logger.Int64("space_id", r.SpaceID),
			logger.String("error", err.Error()),
		)
		return 0
	}
	return r.EndTime.Sub(r.StartTime).Hours() * space.HourlyRate
}

func (s *ReservationService) generateReservationNo() string {
	suffix := strings.ToUpper(uuid.New().String()[:6])
	return "RES" + s.now().Format("20060102150405") + suffix
}
