package offer

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidDiscount = errors.New("discount must be between 0 and 100")
	ErrInvalidAudience = errors.New("invalid offer audience")
	ErrInvalidWindow   = errors.New("offer start must be before end")
)

// Offer lists a batch at a markdown for one audience. At most one active
// offer exists per (batch, audience) pair; recalculation updates the
// discount in place so reservations keep a stable offer reference.
type Offer struct {
	id          uuid.UUID
	batchID     uuid.UUID
	discountPct int
	startTS     time.Time
	endTS       time.Time
	audience    Audience
	createdAt   time.Time
	updatedAt   time.Time
}

func NewOffer(batchID uuid.UUID, discountPct int, startTS, endTS time.Time, audience Audience) (*Offer, error) {
	if discountPct < 0 || discountPct > MaxDiscountPct {
		return nil, ErrInvalidDiscount
	}
	if !audience.IsValid() {
		return nil, ErrInvalidAudience
	}
	if !startTS.Before(endTS) {
		return nil, ErrInvalidWindow
	}

	return &Offer{
		id:          uuid.New(),
		batchID:     batchID,
		discountPct: discountPct,
		startTS:     startTS,
		endTS:       endTS,
		audience:    audience,
	}, nil
}

func ReconstructOffer(id, batchID uuid.UUID, discountPct int, startTS, endTS time.Time, audience Audience, createdAt, updatedAt time.Time) *Offer {
	return &Offer{
		id:          id,
		batchID:     batchID,
		discountPct: discountPct,
		startTS:     startTS,
		endTS:       endTS,
		audience:    audience,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// RaiseDiscount lifts the discount to pct if that is deeper than the current
// one. A batch is never re-listed at a shallower markdown than it has
// already been offered at.
func (o *Offer) RaiseDiscount(pct int) bool {
	if pct > MaxDiscountPct {
		pct = MaxDiscountPct
	}
	if pct <= o.discountPct {
		return false
	}
	o.discountPct = pct
	return true
}

func (o *Offer) IsActiveAt(now time.Time) bool {
	return now.Before(o.endTS)
}

// IsVisibleAt additionally respects the start timestamp, which gates the
// public listing during the nonprofit early-access window.
func (o *Offer) IsVisibleAt(now time.Time) bool {
	return !now.Before(o.startTS) && now.Before(o.endTS)
}

func (o *Offer) ID() uuid.UUID        { return o.id }
func (o *Offer) BatchID() uuid.UUID   { return o.batchID }
func (o *Offer) DiscountPct() int     { return o.discountPct }
func (o *Offer) StartTS() time.Time   { return o.startTS }
func (o *Offer) EndTS() time.Time     { return o.endTS }
func (o *Offer) Audience() Audience   { return o.audience }
func (o *Offer) CreatedAt() time.Time { return o.createdAt }
func (o *Offer) UpdatedAt() time.Time { return o.updatedAt }
