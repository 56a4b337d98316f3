package request

import (
	"time"

	"github.com/google/uuid"
)

type ReserveRequest struct {
	OfferID uuid.UUID `json:"offer_id" binding:"required"`
	UserID  uuid.UUID `json:"user_id" binding:"required"`
	Qty     int       `json:"qty" binding:"required,min=1"`
	// Optional explicit pickup window; both ends or neither.
	PickupStartTS *time.Time `json:"pickup_start_ts,omitempty"`
	PickupEndTS   *time.Time `json:"pickup_end_ts,omitempty"`
}

type CancelRequest struct {
	UserID uuid.UUID `json:"user_id" binding:"required"`
}

type ConfirmPickupRequest struct {
	ConfirmationCode *string    `json:"confirmation_code,omitempty"`
	ReservationID    *uuid.UUID `json:"reservation_id,omitempty"`
	StaffID          uuid.UUID  `json:"staff_id" binding:"required"`
}
