package inventory

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNegativeQuantity      = errors.New("quantity cannot be negative")
	ErrAvailableExceedsTotal = errors.New("qty_available cannot exceed qty_total")
	ErrExpiryNotInFuture     = errors.New("expiry_ts must be in the future")
	ErrInsufficientInventory = errors.New("insufficient inventory")
)

// Batch tracks units of a product produced together with a shared expiry.
// Invariant: 0 <= qtyAvailable <= qtyTotal. Batches are never deleted; a
// batch with no available units past expiry is simply inert.
type Batch struct {
	id           uuid.UUID
	productID    uuid.UUID
	storeID      uuid.UUID
	qtyTotal     int
	qtyAvailable int
	expiryTS     time.Time
	createdAt    time.Time
}

func NewBatch(productID, storeID uuid.UUID, qtyTotal, qtyAvailable int, expiryTS, now time.Time) (*Batch, error) {
	if qtyTotal < 0 || qtyAvailable < 0 {
		return nil, ErrNegativeQuantity
	}
	if qtyAvailable > qtyTotal {
		return nil, ErrAvailableExceedsTotal
	}
	if !expiryTS.After(now) {
		return nil, ErrExpiryNotInFuture
	}

	return &Batch{
		id:           uuid.New(),
		productID:    productID,
		storeID:      storeID,
		qtyTotal:     qtyTotal,
		qtyAvailable: qtyAvailable,
		expiryTS:     expiryTS,
		createdAt:    now,
	}, nil
}

func ReconstructBatch(id, productID, storeID uuid.UUID, qtyTotal, qtyAvailable int, expiryTS, createdAt time.Time) *Batch {
	return &Batch{
		id:           id,
		productID:    productID,
		storeID:      storeID,
		qtyTotal:     qtyTotal,
		qtyAvailable: qtyAvailable,
		expiryTS:     expiryTS,
		createdAt:    createdAt,
	}
}

// Reserve moves qty units out of the available pool. Callers must hold the
// batch's exclusive-access region; the entity itself only guards the
// arithmetic invariant.
func (b *Batch) Reserve(qty int) error {
	if qty <= 0 {
		return ErrNegativeQuantity
	}
	if b.qtyAvailable < qty {
		return ErrInsufficientInventory
	}
	b.qtyAvailable -= qty
	return nil
}

// Release returns qty units to the available pool, capped at qtyTotal so a
// double release can never mint inventory.
func (b *Batch) Release(qty int) {
	if qty <= 0 {
		return
	}
	b.qtyAvailable += qty
	if b.qtyAvailable > b.qtyTotal {
		b.qtyAvailable = b.qtyTotal
	}
}

// Finalize permanently removes qty units from the batch after a confirmed
// pickup: the units have physically left the store.
func (b *Batch) Finalize(qty int) error {
	if qty <= 0 {
		return ErrNegativeQuantity
	}
	if qty > b.qtyTotal {
		qty = b.qtyTotal
	}
	b.qtyTotal -= qty
	if b.qtyAvailable > b.qtyTotal {
		b.qtyAvailable = b.qtyTotal
	}
	return nil
}

func (b *Batch) IsExpired(now time.Time) bool {
	return !b.expiryTS.After(now)
}

func (b *Batch) HoursToExpiry(now time.Time) float64 {
	return b.expiryTS.Sub(now).Hours()
}

func (b *Batch) ID() uuid.UUID        { return b.id }
func (b *Batch) ProductID() uuid.UUID { return b.productID }
func (b *Batch) StoreID() uuid.UUID   { return b.storeID }
func (b *Batch) QtyTotal() int        { return b.qtyTotal }
func (b *Batch) QtyAvailable() int    { return b.qtyAvailable }
func (b *Batch) ExpiryTS() time.Time  { return b.expiryTS }
func (b *Batch) CreatedAt() time.Time { return b.createdAt }
