// Package memory implements the repository ports on an in-process store.
// It is the default driver: integration tests and single-node deployments
// run against it with no external services.
package memory

import (
	"sync"
	"time"

	"zerowaste-exchange/internal/domain/impact"
	"zerowaste-exchange/internal/domain/inventory"
	"zerowaste-exchange/internal/domain/offer"
	"zerowaste-exchange/internal/domain/product"
	"zerowaste-exchange/internal/domain/reservation"

	"github.com/google/uuid"
)

// batchRecord pairs a batch with its own mutex. Quantity transitions lock
// the record, not the whole store, so contention on one hot batch does not
// serialize reservations across the catalog.
type batchRecord struct {
	mu    sync.Mutex
	batch *inventory.Batch
}

type pickupRecord struct {
	reservationID uuid.UUID
	staffID       uuid.UUID
	pickedUpAt    time.Time
}

// Store holds every collection behind a single RWMutex that guards map
// membership and non-batch mutations. Batch quantities additionally use the
// per-record mutex above.
type Store struct {
	mu sync.RWMutex

	products     map[uuid.UUID]*product.Product
	productBySKU map[string]uuid.UUID
	batches      map[uuid.UUID]*batchRecord
	offers       map[uuid.UUID]*offer.Offer
	reservations map[uuid.UUID]*reservation.Reservation
	codeIndex    map[string]uuid.UUID

	// pickups is the staff-side audit trail; deltas is the per-pickup
	// impact log that Rebuild folds back up.
	pickups  []pickupRecord
	deltas   []impact.Delta
	snapshot impact.Snapshot
}

func NewStore() *Store {
	return &Store{
		products:     make(map[uuid.UUID]*product.Product),
		productBySKU: make(map[string]uuid.UUID),
		batches:      make(map[uuid.UUID]*batchRecord),
		offers:       make(map[uuid.UUID]*offer.Offer),
		reservations: make(map[uuid.UUID]*reservation.Reservation),
		codeIndex:    make(map[string]uuid.UUID),
	}
}

// Clones isolate callers from store internals: entities handed out are
// reconstructed copies, so mutating a returned value never leaks back in.

func cloneBatch(b *inventory.Batch) *inventory.Batch {
	return inventory.ReconstructBatch(
		b.ID(), b.ProductID(), b.StoreID(),
		b.QtyTotal(), b.QtyAvailable(),
		b.ExpiryTS(), b.CreatedAt(),
	)
}

func cloneOffer(o *offer.Offer) *offer.Offer {
	return offer.ReconstructOffer(
		o.ID(), o.BatchID(), o.DiscountPct(),
		o.StartTS(), o.EndTS(), o.Audience(),
		o.CreatedAt(), o.UpdatedAt(),
	)
}

func cloneReservation(r *reservation.Reservation) *reservation.Reservation {
	return reservation.ReconstructReservation(
		r.ID(), r.OfferID(), r.BatchID(), r.UserID(),
		r.Qty(), r.Window(), r.Status(), r.Code(),
		r.CreatedAt(), r.UpdatedAt(),
	)
}
