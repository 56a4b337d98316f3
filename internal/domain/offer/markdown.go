package offer

import "time"

// Markdown tier schedule. Discounts deepen as a batch approaches expiry;
// an expired batch leaves the sellable pool instead of discounting further.
const (
	TierFinal = 60 // under 6h
	TierLate  = 40 // under 12h
	TierMid   = 30 // under 18h
	TierEarly = 20 // 18h and beyond

	// MaxDiscountPct caps penalty bumps applied on no-show relists.
	MaxDiscountPct = 100
)

// TierFor returns the discount percentage for a batch with the given time
// to expiry. The second return is false once the batch has expired and must
// not be offered at all.
func TierFor(hoursToExpiry float64) (int, bool) {
	switch {
	case hoursToExpiry <= 0:
		return 0, false
	case hoursToExpiry < 6:
		return TierFinal, true
	case hoursToExpiry < 12:
		return TierLate, true
	case hoursToExpiry < 18:
		return TierMid, true
	default:
		return TierEarly, true
	}
}

// TierAt is TierFor expressed over wall-clock instants.
func TierAt(expiryTS, now time.Time) (int, bool) {
	return TierFor(expiryTS.Sub(now).Hours())
}
