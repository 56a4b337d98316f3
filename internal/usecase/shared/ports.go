package shared

import (
	"context"
	"time"

	"zerowaste-exchange/internal/domain/impact"
	"zerowaste-exchange/internal/domain/inventory"
	"zerowaste-exchange/internal/domain/offer"
	"zerowaste-exchange/internal/domain/product"
	"zerowaste-exchange/internal/domain/reservation"

	"github.com/google/uuid"
)

// Repository ports implemented by both store drivers (memory, postgres).
// Implementations report failures as infra.RepositoryError kinds; usecases
// translate those into domain sentinels.

type ProductRepository interface {
	Create(ctx context.Context, p *product.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*product.Product, error)
	FindBySKU(ctx context.Context, sku string) (*product.Product, error)
	List(ctx context.Context) ([]*product.Product, error)
}

type BatchRepository interface {
	Create(ctx context.Context, b *inventory.Batch) error
	FindByID(ctx context.Context, id uuid.UUID) (*inventory.Batch, error)
	List(ctx context.Context) ([]*inventory.Batch, error)
	// ListSellable returns batches with qty_available > 0 that have not
	// expired as of now.
	ListSellable(ctx context.Context, now time.Time) ([]*inventory.Batch, error)

	// ReserveUnits atomically checks-and-decrements qty_available. It is
	// linearizable per batch: concurrent callers can never jointly overdraw.
	ReserveUnits(ctx context.Context, batchID uuid.UUID, qty int) error
	// ReleaseUnits returns units to the pool, capped at qty_total.
	ReleaseUnits(ctx context.Context, batchID uuid.UUID, qty int) error
	// FinalizeUnits permanently removes picked-up units from qty_total.
	FinalizeUnits(ctx context.Context, batchID uuid.UUID, qty int) error
}

type OfferRepository interface {
	Create(ctx context.Context, o *offer.Offer) error
	// CreateIfNoneActive inserts o unless an active offer for its
	// (batch, audience) pair already exists at now. Check and insert happen
	// under one store-level guarantee, so concurrent upserts can never
	// leave two active offers on a pair. Returns the surviving offer and
	// whether o was the one inserted.
	CreateIfNoneActive(ctx context.Context, o *offer.Offer, now time.Time) (*offer.Offer, bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (*offer.Offer, error)
	// FindActive returns the single non-ended offer for (batch, audience),
	// or KindNotFound.
	FindActive(ctx context.Context, batchID uuid.UUID, audience offer.Audience, now time.Time) (*offer.Offer, error)
	ListVisible(ctx context.Context, audience offer.Audience, now time.Time) ([]*offer.Offer, error)
	// RaiseDiscount lifts the stored discount to pct if deeper, keeping the
	// offer identifier stable. Monotonicity is enforced at the store level
	// so concurrent recalculations can never lower a discount.
	RaiseDiscount(ctx context.Context, offerID uuid.UUID, pct int) error
}

type ReservationRepository interface {
	Create(ctx context.Context, r *reservation.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	FindByCode(ctx context.Context, code reservation.Code) (*reservation.Reservation, error)
	// CodeInUse reports whether a non-terminal reservation already holds the
	// code.
	CodeInUse(ctx context.Context, code reservation.Code) (bool, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*reservation.Reservation, error)
	// ListSweepable returns reserved reservations whose pickup window lapsed
	// before now.
	ListSweepable(ctx context.Context, now time.Time) ([]*reservation.Reservation, error)
	// TransitionStatus performs a compare-and-swap on the status field.
	// Returns false without mutation when the current status differs from
	// the expected one, so confirm and sweep stay idempotent under races.
	TransitionStatus(ctx context.Context, id uuid.UUID, from, to reservation.Status, now time.Time) (bool, error)
	// RecordPickup appends the staff-side audit annotation for a confirmed
	// pickup.
	RecordPickup(ctx context.Context, reservationID, staffID uuid.UUID, pickedUpAt time.Time) error
}

type ImpactRepository interface {
	// Apply folds one pickup into the incrementally maintained snapshot.
	Apply(ctx context.Context, d impact.Delta) error
	Snapshot(ctx context.Context) (impact.Snapshot, error)
	// Rebuild recomputes the snapshot from the picked_up reservation log and
	// must equal the incrementally maintained value.
	Rebuild(ctx context.Context) (impact.Snapshot, error)
}
