package queries

import (
	"context"

	"zerowaste-exchange/internal/infra"
	"zerowaste-exchange/internal/pkg/errs"
	"zerowaste-exchange/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	reservations shared.ReservationRepository
}

func NewReservationQueries(reservations shared.ReservationRepository) ReservationQueries {
	return &reservationQueriesImpl{reservations: reservations}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	res, err := q.reservations.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrReservationNotFound
		}
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	return NewReservationView(res), nil
}

func (q *reservationQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error) {
	rows, err := q.reservations.ListByUser(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	views := make([]*ReservationView, len(rows))
	for i, r := range rows {
		views[i] = NewReservationView(r)
	}
	return views, nil
}
