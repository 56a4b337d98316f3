package commands

import (
	"context"
	"log/slog"
	"time"

	"zerowaste-exchange/internal/domain/offer"
	"zerowaste-exchange/internal/domain/reservation"
	"zerowaste-exchange/internal/infra"
	"zerowaste-exchange/internal/pkg/clock"
	"zerowaste-exchange/internal/pkg/config"
	"zerowaste-exchange/internal/pkg/errs"
	"zerowaste-exchange/internal/usecase/queries"
	"zerowaste-exchange/internal/usecase/shared"

	"github.com/google/uuid"
)

// maxCodeAttempts bounds confirmation-code collision retries before the
// reservation is rolled back.
const maxCodeAttempts = 5

type ReserveParams struct {
	OfferID       uuid.UUID
	UserID        uuid.UUID
	Qty           int
	PickupStartTS *time.Time
	PickupEndTS   *time.Time
}

type ReservationCommands interface {
	// Reserve atomically moves units from available to held and issues a
	// unique confirmation code. Either everything is visible afterwards or
	// nothing is.
	Reserve(ctx context.Context, params ReserveParams) (*queries.ReservationView, error)
	// Cancel is the holder-initiated release path, permitted only while the
	// reservation is still in the reserved state.
	Cancel(ctx context.Context, reservationID, userID uuid.UUID) error
}

type reservationUseCaseImpl struct {
	offers       shared.OfferRepository
	batches      shared.BatchRepository
	reservations shared.ReservationRepository
	clock        clock.Clock
	cfg          config.PickupConfig
}

func NewReservationUseCase(
	offers shared.OfferRepository,
	batches shared.BatchRepository,
	reservations shared.ReservationRepository,
	clock clock.Clock,
	cfg config.PickupConfig,
) ReservationCommands {
	return &reservationUseCaseImpl{
		offers:       offers,
		batches:      batches,
		reservations: reservations,
		clock:        clock,
		cfg:          cfg,
	}
}

func (r *reservationUseCaseImpl) Reserve(ctx context.Context, params ReserveParams) (*queries.ReservationView, error) {
	if params.Qty < 1 {
		return nil, errs.Mark(reservation.ErrNonPositiveQty, errs.ErrDomainValidation)
	}

	now := r.clock.Now()

	off, err := r.offers.FindByID(ctx, params.OfferID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrOfferNotFound
		}
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	if !off.IsActiveAt(now) {
		return nil, errs.ErrOfferExpired
	}

	window, err := r.resolveWindow(params, off.Audience(), now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidPickupWindow)
	}

	// Hold the units first; every failure past this point must give them
	// back so a failed reserve has no observable effect.
	if err := r.batches.ReserveUnits(ctx, off.BatchID(), params.Qty); err != nil {
		if infra.IsKind(err, infra.KindInsufficientInventory) {
			return nil, errs.ErrInsufficientInventory
		}
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBatchNotFound
		}
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	code, err := r.issueCode(ctx)
	if err != nil {
		r.compensate(ctx, off.BatchID(), params.Qty)
		return nil, err
	}

	res, err := reservation.NewReservation(off.ID(), off.BatchID(), params.UserID, params.Qty, window, code, now)
	if err != nil {
		r.compensate(ctx, off.BatchID(), params.Qty)
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := r.reservations.Create(ctx, res); err != nil {
		r.compensate(ctx, off.BatchID(), params.Qty)
		// A code collision slipping past CodeInUse is caught by the store's
		// uniqueness check; surface it as the retryable capacity error.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.ErrCodeGenerationExhausted
		}
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	return queries.NewReservationView(res), nil
}

func (r *reservationUseCaseImpl) Cancel(ctx context.Context, reservationID, userID uuid.UUID) error {
	res, err := r.reservations.FindByID(ctx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrReservationNotFound
		}
		return errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	if res.UserID() != userID {
		return errs.ErrReservationNotFound
	}

	now := r.clock.Now()
	ok, err := r.reservations.TransitionStatus(ctx, res.ID(), reservation.StatusReserved, reservation.StatusNoShow, now)
	if err != nil {
		return errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	if !ok {
		return errs.ErrAlreadyFinalized
	}

	if err := r.batches.ReleaseUnits(ctx, res.BatchID(), res.Qty()); err != nil {
		return errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	return nil
}

func (r *reservationUseCaseImpl) resolveWindow(params ReserveParams, audience offer.Audience, now time.Time) (reservation.PickupWindow, error) {
	if params.PickupStartTS != nil && params.PickupEndTS != nil {
		return reservation.NewPickupWindow(*params.PickupStartTS, *params.PickupEndTS)
	}

	lead, length := r.cfg.PublicLead, r.cfg.PublicWindow
	if audience == offer.AudienceNonprofit {
		lead, length = r.cfg.NonprofitLead, r.cfg.NonprofitWindow
	}
	return reservation.DefaultPickupWindow(now, lead, length), nil
}

func (r *reservationUseCaseImpl) issueCode(ctx context.Context) (reservation.Code, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := reservation.GenerateCode()
		if err != nil {
			return reservation.Code{}, errs.Mark(err, errs.ErrCodeGenerationExhausted)
		}

		inUse, err := r.reservations.CodeInUse(ctx, code)
		if err != nil {
			return reservation.Code{}, errs.Mark(err, errs.ErrStoreOperationFailed)
		}
		if !inUse {
			return code, nil
		}
	}
	return reservation.Code{}, errs.ErrCodeGenerationExhausted
}

func (r *reservationUseCaseImpl) compensate(ctx context.Context, batchID uuid.UUID, qty int) {
	if err := r.batches.ReleaseUnits(ctx, batchID, qty); err != nil {
		slog.Error("failed to release units after aborted reserve",
			"batch_id", batchID,
			"qty", qty,
			"error", err.Error())
	}
}
