package memory

import (
	"context"
	"sort"
	"time"

	"zerowaste-exchange/internal/domain/reservation"
	"zerowaste-exchange/internal/infra"
	"zerowaste-exchange/internal/usecase/shared"

	"github.com/google/uuid"
)

type reservationRepository struct {
	store *Store
}

func NewReservationRepository(store *Store) shared.ReservationRepository {
	return &reservationRepository{store: store}
}

func (r *reservationRepository) Create(_ context.Context, res *reservation.Reservation) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := res.Code().String()
	if holderID, taken := r.store.codeIndex[key]; taken {
		// A terminal holder no longer needs its code; live holders do.
		if holder, ok := r.store.reservations[holderID]; ok && !holder.Status().IsTerminal() {
			return infra.NewRepoErr(infra.KindDuplicateKey, "confirmation code in use")
		}
	}
	r.store.reservations[res.ID()] = cloneReservation(res)
	r.store.codeIndex[key] = res.ID()
	return nil
}

func (r *reservationRepository) FindByID(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	res, ok := r.store.reservations[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "reservation not found: "+id.String())
	}
	return cloneReservation(res), nil
}

func (r *reservationRepository) FindByCode(_ context.Context, code reservation.Code) (*reservation.Reservation, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	id, ok := r.store.codeIndex[code.String()]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "no reservation for code")
	}
	res, ok := r.store.reservations[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "no reservation for code")
	}
	return cloneReservation(res), nil
}

func (r *reservationRepository) CodeInUse(_ context.Context, code reservation.Code) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	id, ok := r.store.codeIndex[code.String()]
	if !ok {
		return false, nil
	}
	res, ok := r.store.reservations[id]
	return ok && !res.Status().IsTerminal(), nil
}

func (r *reservationRepository) ListByUser(_ context.Context, userID uuid.UUID) ([]*reservation.Reservation, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*reservation.Reservation, 0)
	for _, res := range r.store.reservations {
		if res.UserID() == userID {
			out = append(out, cloneReservation(res))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt().Equal(out[j].CreatedAt()) {
			return out[i].CreatedAt().After(out[j].CreatedAt())
		}
		return out[i].ID().String() < out[j].ID().String()
	})
	return out, nil
}

func (r *reservationRepository) ListSweepable(_ context.Context, now time.Time) ([]*reservation.Reservation, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*reservation.Reservation, 0)
	for _, res := range r.store.reservations {
		if res.IsSweepable(now) {
			out = append(out, cloneReservation(res))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Window().End().Equal(out[j].Window().End()) {
			return out[i].Window().End().Before(out[j].Window().End())
		}
		return out[i].ID().String() < out[j].ID().String()
	})
	return out, nil
}

// TransitionStatus is a compare-and-swap under the store lock, so a pickup
// and a sweep racing for the same reservation resolve to exactly one
// winner.
func (r *reservationRepository) TransitionStatus(_ context.Context, id uuid.UUID, from, to reservation.Status, now time.Time) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	res, ok := r.store.reservations[id]
	if !ok {
		return false, infra.NewRepoErr(infra.KindNotFound, "reservation not found: "+id.String())
	}
	if res.Status() != from {
		return false, nil
	}
	r.store.reservations[id] = reservation.ReconstructReservation(
		res.ID(), res.OfferID(), res.BatchID(), res.UserID(),
		res.Qty(), res.Window(), to, res.Code(),
		res.CreatedAt(), now,
	)
	return true, nil
}

func (r *reservationRepository) RecordPickup(_ context.Context, reservationID, staffID uuid.UUID, pickedUpAt time.Time) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.reservations[reservationID]; !ok {
		return infra.NewRepoErr(infra.KindNotFound, "reservation not found: "+reservationID.String())
	}
	r.store.pickups = append(r.store.pickups, pickupRecord{
		reservationID: reservationID,
		staffID:       staffID,
		pickedUpAt:    pickedUpAt,
	})
	return nil
}
