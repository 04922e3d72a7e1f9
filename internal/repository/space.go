package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/keeeellymu/SHUNBO-AI-RESERVATION-PARKING/internal/domain"
)

const spaceColumns = `id, space_number, parking_lot_id, state, status, is_available,
	floor, hourly_rate, description, version, created_at, updated_at`

type SpaceRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSpaceRepo(db *dbpg.DB) *SpaceRepository {
	return &SpaceRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *SpaceRepository) Create(ctx context.Context, s *domain.Space) error {
	query := `INSERT INTO parking_spaces
			  (space_number, parking_lot_id, state, status, is_available,
			   floor, hourly_rate, description, version, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, true, $5, $6, $7, 0, now(), now())
			  RETURNING id, created_at, updated_at`

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		s.SpaceNumber, s.LotID,
		domain.SpaceStateFree, domain.SpaceStateFree.LegacyStatus(),
		s.Floor, s.HourlyRate, s.Description,
	)
	if err != nil {
		return fmt.Errorf("insert space: %w", err)
	}

	if err = row.Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrSpaceNumberTaken
		}
		return fmt.Errorf("scan inserted space: %w", err)
	}

	s.State = domain.SpaceStateFree
	s.Status = domain.SpaceStateFree.LegacyStatus()
	s.IsAvailable = true

	return nil
}

func (r *SpaceRepository) GetByID(ctx context.Context, id int64) (*domain.Space, error) {
	query := `SELECT ` + spaceColumns + ` FROM parking_spaces WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get space: %w", err)
	}

	s, err := scanSpace(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSpaceNotFound
		}
		return nil, fmt.Errorf("scan space: %w", err)
	}

	return s, nil
}

func (r *SpaceRepository) ListAvailable(ctx context.Context, lotID int64) ([]*domain.Space, error) {
	query := `SELECT ` + spaceColumns + `
			  FROM parking_spaces
			  WHERE parking_lot_id = $1 AND state = $2 AND is_available
			  ORDER BY space_number`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, lotID, domain.SpaceStateFree)
	if err != nil {
		return nil, fmt.Errorf("list available spaces: %w", err)
	}
	defer rows.Close()

	var res []*domain.Space
	for rows.Next() {
		s, err := scanSpace(rows)
		if err != nil {
			return nil, fmt.Errorf("scan space: %w", err)
		}
		res = append(res, s)
	}

	return res, rows.Err()
}

func (r *SpaceRepository) CountAvailable(ctx context.Context, lotID int64) (int, error) {
	query := `SELECT COUNT(*) FROM parking_spaces
			  WHERE parking_lot_id = $1 AND state = $2 AND is_available`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, lotID, domain.SpaceStateFree)
	if err != nil {
		return 0, fmt.Errorf("count available spaces: %w", err)
	}

	var n int
	if err = row.Scan(&n); err != nil {
		return 0, fmt.Errorf("scan available count: %w", err)
	}

	return n, nil
}

// Release unconditionally returns a space to FREE/AVAILABLE. It is the
// best-effort half of cancel and payment release; the reservation's own
// transition has already committed when this runs.
func (r *SpaceRepository) Release(ctx context.Context, id int64) (bool, error) {
	query := `UPDATE parking_spaces
			  SET state = $2, status = $3, is_available = true, updated_at = now()
			  WHERE id = $1`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query, id,
		domain.SpaceStateFree, domain.SpaceStateFree.LegacyStatus(),
	)
	if err != nil {
		return false, fmt.Errorf("release space: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("release rows affected: %w", err)
	}

	return affected > 0, nil
}

// SetAvailability flips the administrative disable flag. A disabled space
// keeps its numeric state but stops appearing in availability reads.
func (r *SpaceRepository) SetAvailability(ctx context.Context, id int64, available bool) (bool, error) {
	query := `UPDATE parking_spaces
			  SET is_available = $2, updated_at = now()
			  WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, available)
	if err != nil {
		return false, fmt.Errorf("set space availability: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("availability rows affected: %w", err)
	}

	return affected > 0, nil
}

// UpdateStateWithVersion is the optimistic-lock path for administrative
// space edits. The reservation flow deliberately avoids it so it cannot
// spuriously conflict with the reaper.
func (r *SpaceRepository) UpdateStateWithVersion(ctx context.Context, id int64, newState, oldState domain.SpaceState, version int) (bool, error) {
	query := `UPDATE parking_spaces
			  SET state = $2, status = $3, version = version + 1, updated_at = now()
			  WHERE id = $1 AND state = $4 AND version = $5`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query, id,
		newState, newState.LegacyStatus(), oldState, version,
	)
	if err != nil {
		return false, fmt.Errorf("update space state: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("state rows affected: %w", err)
	}

	return affected > 0, nil
}

func scanSpace(row rowScanner) (*domain.Space, error) {
	var s domain.Space
	var floor, description sql.NullString

	if err := row.Scan(
		&s.ID, &s.SpaceNumber, &s.LotID, &s.State, &s.Status, &s.IsAvailable,
		&floor, &s.HourlyRate, &description, &s.Version, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		return nil, err
	}

	s.Floor = floor.String
	s.Description = description.String

	return &s, nil
}
