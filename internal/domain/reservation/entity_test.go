//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"zerowaste-exchange/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newReservation(t *testing.T) *reservation.Reservation {
	t.Helper()
	window, err := reservation.NewPickupWindow(base.Add(time.Hour), base.Add(5*time.Hour))
	require.NoError(t, err)
	code, err := reservation.GenerateCode()
	require.NoError(t, err)
	res, err := reservation.NewReservation(uuid.New(), uuid.New(), uuid.New(), 3, window, code, base)
	require.NoError(t, err)
	return res
}

func TestNewReservation(t *testing.T) {
	res := newReservation(t)

	assert.NotEqual(t, uuid.Nil, res.ID())
	assert.Equal(t, reservation.StatusReserved, res.Status())
	assert.Equal(t, 3, res.Qty())
	assert.Len(t, res.Code().String(), reservation.CodeLength)

	t.Run("qty below 1 rejected", func(t *testing.T) {
		window, _ := reservation.NewPickupWindow(base.Add(time.Hour), base.Add(2*time.Hour))
		code, _ := reservation.GenerateCode()
		_, err := reservation.NewReservation(uuid.New(), uuid.New(), uuid.New(), 0, window, code, base)
		assert.ErrorIs(t, err, reservation.ErrNonPositiveQty)
	})
}

func TestStateMachine(t *testing.T) {
	t.Run("reserved to picked_up", func(t *testing.T) {
		res := newReservation(t)
		require.NoError(t, res.ConfirmPickup(base.Add(2*time.Hour)))
		assert.Equal(t, reservation.StatusPickedUp, res.Status())
	})

	t.Run("second confirm reports already finalized", func(t *testing.T) {
		res := newReservation(t)
		require.NoError(t, res.ConfirmPickup(base.Add(2*time.Hour)))
		assert.ErrorIs(t, res.ConfirmPickup(base.Add(3*time.Hour)), reservation.ErrAlreadyFinalized)
		assert.Equal(t, reservation.StatusPickedUp, res.Status())
	})

	t.Run("no-show only after window lapses", func(t *testing.T) {
		res := newReservation(t)
		assert.ErrorIs(t, res.MarkNoShow(base.Add(2*time.Hour)), reservation.ErrNotYetLapsed)
		require.NoError(t, res.MarkNoShow(base.Add(6*time.Hour)))
		assert.Equal(t, reservation.StatusNoShow, res.Status())
	})

	t.Run("terminal states are immutable", func(t *testing.T) {
		res := newReservation(t)
		require.NoError(t, res.MarkNoShow(base.Add(6*time.Hour)))
		assert.ErrorIs(t, res.ConfirmPickup(base.Add(7*time.Hour)), reservation.ErrAlreadyFinalized)
		assert.ErrorIs(t, res.MarkNoShow(base.Add(7*time.Hour)), reservation.ErrAlreadyFinalized)
	})

	t.Run("cancel while reserved", func(t *testing.T) {
		res := newReservation(t)
		require.NoError(t, res.Cancel(base.Add(30*time.Minute)))
		assert.Equal(t, reservation.StatusNoShow, res.Status())
		assert.ErrorIs(t, res.Cancel(base.Add(time.Hour)), reservation.ErrNotCancelable)
	})
}

func TestIsSweepable(t *testing.T) {
	res := newReservation(t)

	assert.False(t, res.IsSweepable(base.Add(4*time.Hour)), "window still open")
	assert.True(t, res.IsSweepable(base.Add(6*time.Hour)))

	require.NoError(t, res.MarkNoShow(base.Add(6*time.Hour)))
	assert.False(t, res.IsSweepable(base.Add(7*time.Hour)), "terminal reservations are not swept again")
}

func TestCode(t *testing.T) {
	t.Run("normalizes and compares case-insensitively", func(t *testing.T) {
		code, err := reservation.NewCode(" ab2c3d ")
		require.NoError(t, err)
		upper, err := reservation.NewCode("AB2C3D")
		require.NoError(t, err)
		assert.True(t, code.Equals(upper))
		assert.Equal(t, "AB2C3D", code.String())
	})

	t.Run("rejects wrong length and ambiguous characters", func(t *testing.T) {
		_, err := reservation.NewCode("ABC")
		assert.ErrorIs(t, err, reservation.ErrInvalidCode)
		_, err = reservation.NewCode("AB0C1D") // 0 and 1 are not in the alphabet
		assert.ErrorIs(t, err, reservation.ErrInvalidCode)
	})

	t.Run("generated codes round-trip through NewCode", func(t *testing.T) {
		for range 50 {
			code, err := reservation.GenerateCode()
			require.NoError(t, err)
			parsed, err := reservation.NewCode(code.String())
			require.NoError(t, err)
			assert.True(t, code.Equals(parsed))
		}
	})
}

func TestDefaultPickupWindow(t *testing.T) {
	w := reservation.DefaultPickupWindow(base, time.Hour, 4*time.Hour)
	assert.Equal(t, base.Add(time.Hour), w.Start())
	assert.Equal(t, base.Add(5*time.Hour), w.End())
	assert.False(t, w.HasLapsed(base.Add(5*time.Hour)))
	assert.True(t, w.HasLapsed(base.Add(5*time.Hour).Add(time.Second)))
}
