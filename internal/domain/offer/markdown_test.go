//go:build unit

package offer_test

import (
	"testing"
	"time"

	"zerowaste-exchange/internal/domain/offer"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTierFor(t *testing.T) {
	cases := []struct {
		name       string
		hours      float64
		wantPct    int
		wantListed bool
	}{
		{name: "deep markdown under 6h", hours: 5, wantPct: 60, wantListed: true},
		{name: "under 12h", hours: 11, wantPct: 40, wantListed: true},
		{name: "under 18h", hours: 17, wantPct: 30, wantListed: true},
		{name: "18h and beyond", hours: 20, wantPct: 20, wantListed: true},
		{name: "exact 6h boundary rolls up", hours: 6, wantPct: 40, wantListed: true},
		{name: "exact 12h boundary rolls up", hours: 12, wantPct: 30, wantListed: true},
		{name: "exact 18h boundary rolls up", hours: 18, wantPct: 20, wantListed: true},
		{name: "just before expiry", hours: 0.01, wantPct: 60, wantListed: true},
		{name: "expired exits the pool", hours: 0, wantListed: false},
		{name: "long expired", hours: -4, wantListed: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pct, listed := offer.TierFor(tc.hours)
			assert.Equal(t, tc.wantListed, listed)
			if tc.wantListed {
				assert.Equal(t, tc.wantPct, pct)
			}
		})
	}
}

func TestTierAt(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	pct, listed := offer.TierAt(now.Add(5*time.Hour), now)
	require.True(t, listed)
	assert.Equal(t, 60, pct)

	_, listed = offer.TierAt(now.Add(-time.Minute), now)
	assert.False(t, listed)
}

func TestRaiseDiscount(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	o, err := offer.NewOffer(uuid.New(), 40, now, now.Add(10*time.Hour), offer.AudiencePublic)
	require.NoError(t, err)

	t.Run("raises to a deeper discount", func(t *testing.T) {
		assert.True(t, o.RaiseDiscount(60))
		assert.Equal(t, 60, o.DiscountPct())
	})

	t.Run("never lowers", func(t *testing.T) {
		assert.False(t, o.RaiseDiscount(30))
		assert.Equal(t, 60, o.DiscountPct())
	})

	t.Run("equal discount is a no-op", func(t *testing.T) {
		assert.False(t, o.RaiseDiscount(60))
		assert.Equal(t, 60, o.DiscountPct())
	})

	t.Run("caps at 100", func(t *testing.T) {
		assert.True(t, o.RaiseDiscount(130))
		assert.Equal(t, 100, o.DiscountPct())
	})
}

func TestOfferValidation(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	_, err := offer.NewOffer(uuid.New(), 120, now, now.Add(time.Hour), offer.AudiencePublic)
	assert.ErrorIs(t, err, offer.ErrInvalidDiscount)

	_, err = offer.NewOffer(uuid.New(), 20, now, now.Add(time.Hour), offer.Audience("vip"))
	assert.ErrorIs(t, err, offer.ErrInvalidAudience)

	_, err = offer.NewOffer(uuid.New(), 20, now.Add(time.Hour), now, offer.AudiencePublic)
	assert.ErrorIs(t, err, offer.ErrInvalidWindow)
}

func TestOfferVisibility(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	start := now.Add(2 * time.Hour) // public listing opens after the nonprofit window
	o, err := offer.NewOffer(uuid.New(), 20, start, now.Add(10*time.Hour), offer.AudiencePublic)
	require.NoError(t, err)

	assert.True(t, o.IsActiveAt(now), "active as soon as it exists")
	assert.False(t, o.IsVisibleAt(now), "not visible before start_ts")
	assert.True(t, o.IsVisibleAt(start))
	assert.False(t, o.IsVisibleAt(now.Add(10*time.Hour)), "not visible at end_ts")
}
