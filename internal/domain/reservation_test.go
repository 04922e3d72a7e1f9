package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlockingStatuses_UsedHoldsTheWindow(t *testing.T) {
	assert.Contains(t, BlockingStatuses, ReservationStatusPending)
	assert.Contains(t, BlockingStatuses, ReservationStatusUsed)
	assert.NotContains(t, BlockingStatuses, ReservationStatusCancelled)
	assert.NotContains(t, BlockingStatuses, ReservationStatusTimeout)
}

func TestReservationStatus_Terminal(t *testing.T) {
	assert.False(t, ReservationStatusPending.Terminal())
	assert.False(t, ReservationStatusUsed.Terminal())
	assert.True(t, ReservationStatusCancelled.Terminal())
	assert.True(t, ReservationStatusTimeout.Terminal())
}
