package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNonPositiveQty   = errors.New("qty_reserved must be at least 1")
	ErrAlreadyFinalized = errors.New("reservation already finalized")
	ErrNotYetLapsed     = errors.New("pickup window has not lapsed")
	ErrNotCancelable    = errors.New("only reserved reservations can be canceled")
)

// Reservation holds units of a batch against an offer until the holder picks
// them up or the pickup window lapses. Status moves reserved -> picked_up or
// reserved -> no_show and is immutable once terminal.
type Reservation struct {
	id        uuid.UUID
	offerID   uuid.UUID
	batchID   uuid.UUID
	userID    uuid.UUID
	qty       int
	window    PickupWindow
	status    Status
	code      Code
	createdAt time.Time
	updatedAt time.Time
}

func NewReservation(offerID, batchID, userID uuid.UUID, qty int, window PickupWindow, code Code, now time.Time) (*Reservation, error) {
	if qty < 1 {
		return nil, ErrNonPositiveQty
	}

	return &Reservation{
		id:        uuid.New(),
		offerID:   offerID,
		batchID:   batchID,
		userID:    userID,
		qty:       qty,
		window:    window,
		status:    StatusReserved,
		code:      code,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructReservation(id, offerID, batchID, userID uuid.UUID, qty int, window PickupWindow, status Status, code Code, createdAt, updatedAt time.Time) *Reservation {
	return &Reservation{
		id:        id,
		offerID:   offerID,
		batchID:   batchID,
		userID:    userID,
		qty:       qty,
		window:    window,
		status:    status,
		code:      code,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ConfirmPickup finalizes a successful pickup.
func (r *Reservation) ConfirmPickup(now time.Time) error {
	if r.status.IsTerminal() {
		return ErrAlreadyFinalized
	}
	r.status = StatusPickedUp
	r.updatedAt = now
	return nil
}

// MarkNoShow expires a reservation whose pickup window has lapsed.
func (r *Reservation) MarkNoShow(now time.Time) error {
	if r.status.IsTerminal() {
		return ErrAlreadyFinalized
	}
	if !r.window.HasLapsed(now) {
		return ErrNotYetLapsed
	}
	r.status = StatusNoShow
	r.updatedAt = now
	return nil
}

// Cancel is the holder-initiated path; it reuses the no_show terminal state
// and does not require the window to have lapsed.
func (r *Reservation) Cancel(now time.Time) error {
	if r.status != StatusReserved {
		return ErrNotCancelable
	}
	r.status = StatusNoShow
	r.updatedAt = now
	return nil
}

func (r *Reservation) IsSweepable(now time.Time) bool {
	return r.status == StatusReserved && r.window.HasLapsed(now)
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) OfferID() uuid.UUID   { return r.offerID }
func (r *Reservation) BatchID() uuid.UUID   { return r.batchID }
func (r *Reservation) UserID() uuid.UUID    { return r.userID }
func (r *Reservation) Qty() int             { return r.qty }
func (r *Reservation) Window() PickupWindow { return r.window }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) Code() Code           { return r.code }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }
