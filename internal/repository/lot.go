package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/keeeellymu/SHUNBO-AI-RESERVATION-PARKING/internal/domain"
)

// LotRepository maintains the per-lot aggregate counters. The counters are
// a fast read path only; the space registry stays authoritative and brief
// staleness here is tolerated.
type LotRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewLotRepo(db *dbpg.DB) *LotRepository {
	return &LotRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *LotRepository) GetByID(ctx context.Context, id int64) (*domain.Lot, error) {
	query := `SELECT id, name, address, hourly_rate, total_spaces, available_spaces,
			  		 created_at, updated_at
			  FROM parking_lots
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get lot: %w", err)
	}

	var l domain.Lot
	if err = row.Scan(
		&l.ID, &l.Name, &l.Address, &l.HourlyRate,
		&l.TotalSpaces, &l.AvailableSpaces, &l.CreatedAt, &l.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrLotNotFound
		}
		return nil, fmt.Errorf("scan lot: %w", err)
	}

	return &l, nil
}

func (r *LotRepository) List(ctx context.Context) ([]*domain.Lot, error) {
	query := `SELECT id, name, address, hourly_rate, total_spaces, available_spaces,
			  		 created_at, updated_at
			  FROM parking_lots
			  ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list lots: %w", err)
	}
	defer rows.Close()

	var res []*domain.Lot
	for rows.Next() {
		var l domain.Lot
		if err = rows.Scan(
			&l.ID, &l.Name, &l.Address, &l.HourlyRate,
			&l.TotalSpaces, &l.AvailableSpaces, &l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan lot: %w", err)
		}
		res = append(res, &l)
	}

	return res, rows.Err()
}

func (r *LotRepository) IncrementAvailable(ctx context.Context, id int64) error {
	query := `UPDATE parking_lots
			  SET available_spaces = LEAST(available_spaces + 1, total_spaces), updated_at = now()
			  WHERE id = $1`

	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, id); err != nil {
		return fmt.Errorf("increment lot counter: %w", err)
	}

	return nil
}

func (r *LotRepository) DecrementAvailable(ctx context.Context, id int64) error {
	query := `UPDATE parking_lots
			  SET available_spaces = GREATEST(available_spaces - 1, 0), updated_at = now()
			  WHERE id = $1`

	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, id); err != nil {
		return fmt.Errorf("decrement lot counter: %w", err)
	}

	return nil
}
