//go:build unit || e2e

package builder

import (
	"time"

	"zerowaste-exchange/internal/domain/offer"
	"zerowaste-exchange/internal/domain/reservation"
	reqdto "zerowaste-exchange/internal/handler/dto/request"
	"zerowaste-exchange/internal/usecase/queries"

	"github.com/google/uuid"
)

type OfferBuilder struct {
	BatchID     uuid.UUID
	DiscountPct int
	StartTS     time.Time
	EndTS       time.Time
	Audience    offer.Audience
}

func NewOfferBuilder(now time.Time) *OfferBuilder {
	return &OfferBuilder{
		BatchID:     uuid.New(),
		DiscountPct: 30,
		StartTS:     now,
		EndTS:       now.Add(10 * time.Hour),
		Audience:    offer.AudiencePublic,
	}
}

func (b *OfferBuilder) With(mutate func(*OfferBuilder)) *OfferBuilder {
	mutate(b)
	return b
}

func (b *OfferBuilder) BuildEntity() (*offer.Offer, error) {
	return offer.NewOffer(b.BatchID, b.DiscountPct, b.StartTS, b.EndTS, b.Audience)
}

type ReservationBuilder struct {
	OfferID     uuid.UUID
	BatchID     uuid.UUID
	UserID      uuid.UUID
	Qty         int
	WindowStart time.Time
	WindowEnd   time.Time
	Code        string
	Now         time.Time
}

func NewReservationBuilder(now time.Time) *ReservationBuilder {
	return &ReservationBuilder{
		OfferID:     uuid.New(),
		BatchID:     uuid.New(),
		UserID:      uuid.New(),
		Qty:         2,
		WindowStart: now.Add(time.Hour),
		WindowEnd:   now.Add(5 * time.Hour),
		Code:        "ABCD23",
		Now:         now,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildEntity() (*reservation.Reservation, error) {
	code, err := reservation.NewCode(b.Code)
	if err != nil {
		return nil, err
	}
	window, err := reservation.NewPickupWindow(b.WindowStart, b.WindowEnd)
	if err != nil {
		return nil, err
	}
	return reservation.NewReservation(b.OfferID, b.BatchID, b.UserID, b.Qty, window, code, b.Now)
}

func (b *ReservationBuilder) BuildReserveRequestDTO() reqdto.ReserveRequest {
	return reqdto.ReserveRequest{
		OfferID: b.OfferID,
		UserID:  b.UserID,
		Qty:     b.Qty,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:               uuid.New(),
		OfferID:          b.OfferID,
		BatchID:          b.BatchID,
		UserID:           b.UserID,
		QtyReserved:      b.Qty,
		PickupStartTS:    b.WindowStart,
		PickupEndTS:      b.WindowEnd,
		Status:           reservation.StatusReserved.String(),
		ConfirmationCode: b.Code,
		CreatedAt:        b.Now,
	}
}
