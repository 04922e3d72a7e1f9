package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/keeeellymu/SHUNBO-AI-RESERVATION-PARKING/internal/domain"
)

const reservationColumns = `id, reservation_no, user_id, parking_space_id, parking_lot_id,
	status, payment_status, refund_status, start_time, end_time,
	actual_entry_time, actual_exit_time, plate_number, contact_phone,
	vehicle_info, remark, version, created_at, updated_at`

type ReservationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReservationRepo(db *dbpg.DB) *ReservationRepository {
	return &ReservationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func statusCodes(ss []domain.ReservationStatus) []int64 {
	codes := make([]int64, 0, len(ss))
	for _, s := range ss {
		codes = append(codes, int64(s))
	}
	return codes
}

// Create claims the space and inserts the PENDING row in one transaction.
// The overlap predicate is re-evaluated here, inside the same transaction
// as the conditional claim, so a check done earlier by the service cannot
// be trusted-then-raced: of two concurrent callers exactly one sees the
// claim update a row.
func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	overlapQuery := `SELECT EXISTS (
			SELECT 1 FROM reservations
			WHERE parking_space_id = $1
			  AND status = ANY($2)
			  AND start_time < $3
			  AND end_time > $4)`
	var overlaps bool
	if err = tx.QueryRowContext(
		ctx, overlapQuery, res.SpaceID,
		pq.Array(statusCodes(domain.BlockingStatuses)),
		res.EndTime, res.StartTime,
	).Scan(&overlaps); err != nil {
		return fmt.Errorf("check overlap: %w", err)
	}
	if overlaps {
		return domain.ErrOverlap
	}

	claimQuery := `UPDATE parking_spaces
			SET state = $2, status = $3, updated_at = now()
			WHERE id = $1 AND state = $4 AND is_available`
	claim, err := tx.ExecContext(
		ctx, claimQuery, res.SpaceID,
		domain.SpaceStateLocked, domain.SpaceStateLocked.LegacyStatus(),
		domain.SpaceStateFree,
	)
	if err != nil {
		return fmt.Errorf("claim space: %w", err)
	}
	claimed, err := claim.RowsAffected()
	if err != nil {
		return fmt.Errorf("claim rows affected: %w", err)
	}
	if claimed == 0 {
		return domain.ErrSpaceUnavailable
	}

	insertQuery := `INSERT INTO reservations
			(reservation_no, user_id, parking_space_id, parking_lot_id,
			 status, payment_status, refund_status, start_time, end_time,
			 plate_number, contact_phone, vehicle_info, remark, version,
			 created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, 0, now(), now())
			RETURNING id, created_at, updated_at`
	if err = tx.QueryRowContext(
		ctx, insertQuery,
		res.ReservationNo, res.UserID, res.SpaceID, res.LotID,
		res.Status, res.PaymentStatus, res.RefundStatus,
		res.StartTime, res.EndTime,
		res.PlateNumber, res.ContactPhone, res.VehicleInfo, res.Remark,
	).Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt); err != nil {
		return fmt.Errorf("insert reservation: %w", err)
	}

	return tx.Commit()
}

func (r *ReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	res, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}

	return res, nil
}

func (r *ReservationRepository) ListByUser(ctx context.Context, userID int64, page, pageSize int) ([]*domain.Reservation, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE user_id = $1
			  ORDER BY created_at DESC
			  LIMIT $2 OFFSET $3`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("list reservations by user: %w", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (r *ReservationRepository) Query(ctx context.Context, f domain.ReservationFilter) ([]*domain.Reservation, error) {
	conds := make([]string, 0, 7)
	args := make([]any, 0, 7)
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.UserID != nil {
		add("user_id = $%d", *f.UserID)
	}
	if f.SpaceID != nil {
		add("parking_space_id = $%d", *f.SpaceID)
	}
	if f.Status != nil {
		add("status = $%d", *f.Status)
	}
	if f.StartTimeFrom != nil {
		add("start_time >= $%d", *f.StartTimeFrom)
	}
	if f.StartTimeTo != nil {
		add("start_time <= $%d", *f.StartTimeTo)
	}
	if f.EndTimeFrom != nil {
		add("end_time >= $%d", *f.EndTimeFrom)
	}
	if f.EndTimeTo != nil {
		add("end_time <= $%d", *f.EndTimeTo)
	}

	query := `SELECT ` + reservationColumns + ` FROM reservations`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query reservations: %w", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (r *ReservationRepository) HasOverlap(ctx context.Context, spaceID int64, start, end time.Time, excludeID *int64) (bool, error) {
	query := `SELECT EXISTS (
			SELECT 1 FROM reservations
			WHERE parking_space_id = $1
			  AND status = ANY($2)
			  AND start_time < $3
			  AND end_time > $4
			  AND ($5::bigint IS NULL OR id <> $5))`

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query, spaceID,
		pq.Array(statusCodes(domain.BlockingStatuses)),
		end, start, excludeID,
	)
	if err != nil {
		return false, fmt.Errorf("check overlap: %w", err)
	}

	var overlaps bool
	if err = row.Scan(&overlaps); err != nil {
		return false, fmt.Errorf("scan overlap: %w", err)
	}

	return overlaps, nil
}

func (r *ReservationRepository) FindUnpaidByUser(ctx context.Context, userID int64) (*int64, error) {
	query := `SELECT id FROM reservations
			  WHERE user_id = $1 AND status = $2 AND payment_status = $3
			  ORDER BY created_at DESC
			  LIMIT 1`

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query, userID,
		domain.ReservationStatusUsed, domain.PaymentStatusUnpaid,
	)
	if err != nil {
		return nil, fmt.Errorf("find unpaid reservation: %w", err)
	}

	var id int64
	if err = row.Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan unpaid reservation: %w", err)
	}

	return &id, nil
}

// UpdateStatus is keyed on id and the expected current status, not on the
// version column: whichever of a racing cancel/use/sweep commits first
// wins and the loser's predicate simply no longer matches.
func (r *ReservationRepository) UpdateStatus(ctx context.Context, id int64, from, to domain.ReservationStatus) (bool, error) {
	query := `UPDATE reservations
			  SET status = $3, version = version + 1, updated_at = now()
			  WHERE id = $1 AND status = $2`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, from, to)
	if err != nil {
		return false, fmt.Errorf("update reservation status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("status rows affected: %w", err)
	}

	return affected > 0, nil
}

func (r *ReservationRepository) MarkUsed(ctx context.Context, id int64, entryAt time.Time) (bool, error) {
	query := `UPDATE reservations
			  SET status = $3, actual_entry_time = $2, version = version + 1, updated_at = $2
			  WHERE id = $1 AND status = $4`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query, id, entryAt,
		domain.ReservationStatusUsed, domain.ReservationStatusPending,
	)
	if err != nil {
		return false, fmt.Errorf("mark reservation used: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("mark used rows affected: %w", err)
	}

	return affected > 0, nil
}

// MarkExited stamps the exit and closes the billable window; the status
// stays USED so the "exited, awaiting payment" state is USED+UNPAID.
func (r *ReservationRepository) MarkExited(ctx context.Context, id int64, exitAt time.Time) (bool, error) {
	query := `UPDATE reservations
			  SET end_time = $2, actual_exit_time = $2, version = version + 1, updated_at = $2
			  WHERE id = $1 AND status = $3`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, exitAt, domain.ReservationStatusUsed)
	if err != nil {
		return false, fmt.Errorf("mark reservation exited: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("mark exited rows affected: %w", err)
	}

	return affected > 0, nil
}

// MarkPaid is a one-shot UNPAID->PAID flip. A duplicate payment callback
// finds no matching row and reports false, which is what keeps the space
// release and the lot counter increment from firing twice.
func (r *ReservationRepository) MarkPaid(ctx context.Context, id int64) (bool, error) {
	query := `UPDATE reservations
			  SET payment_status = $2, version = version + 1, updated_at = now()
			  WHERE id = $1 AND payment_status = $3`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query, id,
		domain.PaymentStatusPaid, domain.PaymentStatusUnpaid,
	)
	if err != nil {
		return false, fmt.Errorf("mark reservation paid: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("mark paid rows affected: %w", err)
	}

	return affected > 0, nil
}

func (r *ReservationRepository) SetPaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error {
	query := `UPDATE reservations
			  SET payment_status = $2, version = version + 1, updated_at = now()
			  WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status)
	if err != nil {
		return fmt.Errorf("set payment status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("payment status rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrReservationNotFound
	}

	return nil
}

func (r *ReservationRepository) SetRefundStatus(ctx context.Context, id int64, status domain.RefundStatus) error {
	query := `UPDATE reservations
			  SET refund_status = $2, version = version + 1, updated_at = now()
			  WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status)
	if err != nil {
		return fmt.Errorf("set refund status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("refund status rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrReservationNotFound
	}

	return nil
}

// SweepTimeouts expires abandoned PENDING reservations. The status flip,
// the space release and the lot counter restore run in one transaction:
// a TIMEOUT row must never leave its space stranded in LOCKED. The update
// is set-based and idempotent; rows a concurrent cancel or use already
// moved out of PENDING are simply not matched.
func (r *ReservationRepository) SweepTimeouts(ctx context.Context, now time.Time) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	sweepQuery := `UPDATE reservations
			SET status = $2, version = version + 1, updated_at = $1
			WHERE status = $3 AND end_time < $1
			RETURNING parking_space_id, parking_lot_id`
	rows, err := tx.QueryContext(
		ctx, sweepQuery, now,
		domain.ReservationStatusTimeout, domain.ReservationStatusPending,
	)
	if err != nil {
		return 0, fmt.Errorf("sweep timeouts: %w", err)
	}

	var spaceIDs []int64
	lotCounts := make(map[int64]int)
	for rows.Next() {
		var spaceID, lotID int64
		if err = rows.Scan(&spaceID, &lotID); err != nil {
			rows.Close()
			return 0, fmt.Errorf("scan swept reservation: %w", err)
		}
		spaceIDs = append(spaceIDs, spaceID)
		lotCounts[lotID]++
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("swept rows: %w", err)
	}

	if len(spaceIDs) == 0 {
		return 0, tx.Commit()
	}

	releaseQuery := `UPDATE parking_spaces
			SET state = $2, status = $3, is_available = true, updated_at = $4
			WHERE id = ANY($1) AND state = $5`
	if _, err = tx.ExecContext(
		ctx, releaseQuery, pq.Array(spaceIDs),
		domain.SpaceStateFree, domain.SpaceStateFree.LegacyStatus(), now,
		domain.SpaceStateLocked,
	); err != nil {
		return 0, fmt.Errorf("release swept spaces: %w", err)
	}

	counterQuery := `UPDATE parking_lots
			SET available_spaces = LEAST(available_spaces + $2, total_spaces), updated_at = $3
			WHERE id = $1`
	for lotID, n := range lotCounts {
		if _, err = tx.ExecContext(ctx, counterQuery, lotID, n, now); err != nil {
			return 0, fmt.Errorf("restore lot %d counter: %w", lotID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit sweep: %w", err)
	}

	return len(spaceIDs), nil
}

func (r *ReservationRepository) PurgeTerminal(ctx context.Context, userID int64) (int, error) {
	query := `DELETE FROM reservations
			  WHERE user_id = $1
			    AND (status = ANY($2)
			         OR (status = $3 AND payment_status = $4))`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query, userID,
		pq.Array(statusCodes([]domain.ReservationStatus{
			domain.ReservationStatusCancelled,
			domain.ReservationStatusTimeout,
		})),
		domain.ReservationStatusUsed, domain.PaymentStatusPaid,
	)
	if err != nil {
		return 0, fmt.Errorf("purge reservations: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("purge rows affected: %w", err)
	}

	return int(affected), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var entry, exit sql.NullTime
	var vehicle, remark sql.NullString

	if err := row.Scan(
		&res.ID, &res.ReservationNo, &res.UserID, &res.SpaceID, &res.LotID,
		&res.Status, &res.PaymentStatus, &res.RefundStatus,
		&res.StartTime, &res.EndTime,
		&entry, &exit, &res.PlateNumber, &res.ContactPhone,
		&vehicle, &remark, &res.Version, &res.CreatedAt, &res.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if entry.Valid {
		res.ActualEntry = &entry.Time
	}
	if exit.Valid {
		res.ActualExit = &exit.Time
	}
	res.VehicleInfo = vehicle.String
	res.Remark = remark.String

	return &res, nil
}

func collectReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	var res []*domain.Reservation
	for rows.Next() {
		r, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		res = append(res, r)
	}

	return res, rows.Err()
}
