package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"

	"github.com/keeeellymu/SHUNBO-AI-RESERVATION-PARKING/internal/domain"
)

func newMockRepo(t *testing.T) (*ReservationRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewReservationRepo(&dbpg.DB{Master: db}), mock
}

func TestReservationRepo_Create_OverlapWithUsedReservation(t *testing.T) {
	repo, mock := newMockRepo(t)

	start := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	// The overlap predicate must carry both PENDING and USED status codes:
	// a driver who already entered still holds the window.
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(
			int64(3),
			pq.Array([]int64{int64(domain.ReservationStatusPending), int64(domain.ReservationStatusUsed)}),
			end, start,
		).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &domain.Reservation{
		SpaceID:   3,
		StartTime: start,
		EndTime:   end,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOverlap)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationRepo_SweepTimeouts_ReleasesSpacesAndRestoresCounters(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE reservations").
		WithArgs(now, domain.ReservationStatusTimeout, domain.ReservationStatusPending).
		WillReturnRows(sqlmock.NewRows([]string{"parking_space_id", "parking_lot_id"}).
			AddRow(int64(3), int64(11)).
			AddRow(int64(4), int64(11)))
	mock.ExpectExec("UPDATE parking_spaces").
		WithArgs(
			pq.Array([]int64{3, 4}),
			domain.SpaceStateFree, domain.SpaceStateFree.LegacyStatus(), now,
			domain.SpaceStateLocked,
		).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("UPDATE parking_lots").
		WithArgs(int64(11), 2, now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	count, err := repo.SweepTimeouts(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationRepo_SweepTimeouts_NothingExpired(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE reservations").
		WithArgs(now, domain.ReservationStatusTimeout, domain.ReservationStatusPending).
		WillReturnRows(sqlmock.NewRows([]string{"parking_space_id", "parking_lot_id"}))
	mock.ExpectCommit()

	count, err := repo.SweepTimeouts(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, 0, count)
	require.NoError(t, mock.ExpectationsWereMet())
}
