//go:build unit

package inventory_test

import (
	"testing"
	"time"

	"zerowaste-exchange/internal/domain/inventory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBatch(t *testing.T, total, available int) *inventory.Batch {
	t.Helper()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	b, err := inventory.NewBatch(uuid.New(), uuid.New(), total, available, now.Add(24*time.Hour), now)
	require.NoError(t, err)
	return b
}

func TestNewBatchValidation(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name      string
		total     int
		available int
		expiry    time.Time
		errIs     error
	}{
		{name: "valid", total: 10, available: 10, expiry: now.Add(time.Hour)},
		{name: "available may be below total", total: 10, available: 4, expiry: now.Add(time.Hour)},
		{name: "negative total", total: -1, available: 0, expiry: now.Add(time.Hour), errIs: inventory.ErrNegativeQuantity},
		{name: "negative available", total: 5, available: -1, expiry: now.Add(time.Hour), errIs: inventory.ErrNegativeQuantity},
		{name: "available exceeds total", total: 5, available: 6, expiry: now.Add(time.Hour), errIs: inventory.ErrAvailableExceedsTotal},
		{name: "expiry in the past", total: 5, available: 5, expiry: now.Add(-time.Hour), errIs: inventory.ErrExpiryNotInFuture},
		{name: "expiry exactly now", total: 5, available: 5, expiry: now, errIs: inventory.ErrExpiryNotInFuture},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := inventory.NewBatch(uuid.New(), uuid.New(), tc.total, tc.available, tc.expiry, now)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.total, b.QtyTotal())
			assert.Equal(t, tc.available, b.QtyAvailable())
		})
	}
}

func TestReserveRelease(t *testing.T) {
	t.Run("reserve decrements available", func(t *testing.T) {
		b := newBatch(t, 10, 10)
		require.NoError(t, b.Reserve(3))
		assert.Equal(t, 7, b.QtyAvailable())
		assert.Equal(t, 10, b.QtyTotal())
	})

	t.Run("reserve beyond available fails without mutation", func(t *testing.T) {
		b := newBatch(t, 10, 2)
		err := b.Reserve(3)
		assert.ErrorIs(t, err, inventory.ErrInsufficientInventory)
		assert.Equal(t, 2, b.QtyAvailable())
	})

	t.Run("reserve then release restores exactly", func(t *testing.T) {
		b := newBatch(t, 10, 10)
		require.NoError(t, b.Reserve(4))
		b.Release(4)
		assert.Equal(t, 10, b.QtyAvailable())
	})

	t.Run("double release caps at total", func(t *testing.T) {
		b := newBatch(t, 10, 10)
		require.NoError(t, b.Reserve(4))
		b.Release(4)
		b.Release(4)
		assert.Equal(t, 10, b.QtyAvailable())
	})

	t.Run("non-positive reserve rejected", func(t *testing.T) {
		b := newBatch(t, 10, 10)
		assert.ErrorIs(t, b.Reserve(0), inventory.ErrNegativeQuantity)
	})
}

func TestFinalize(t *testing.T) {
	t.Run("finalize shrinks total permanently", func(t *testing.T) {
		b := newBatch(t, 10, 10)
		require.NoError(t, b.Reserve(3))
		require.NoError(t, b.Finalize(3))
		assert.Equal(t, 7, b.QtyTotal())
		assert.Equal(t, 7, b.QtyAvailable())
	})

	t.Run("finalize pulls available down with total", func(t *testing.T) {
		b := newBatch(t, 10, 10)
		require.NoError(t, b.Finalize(4))
		assert.Equal(t, 6, b.QtyTotal())
		assert.Equal(t, 6, b.QtyAvailable())
	})
}

func TestExpiry(t *testing.T) {
	b := newBatch(t, 5, 5)

	assert.False(t, b.IsExpired(b.ExpiryTS().Add(-time.Minute)))
	assert.True(t, b.IsExpired(b.ExpiryTS()))
	assert.InDelta(t, 24.0, b.HoursToExpiry(b.CreatedAt()), 0.001)
}
