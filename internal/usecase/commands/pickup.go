package commands

import (
	"context"
	"log/slog"
	"time"

	"zerowaste-exchange/internal/domain/impact"
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

type ConfirmPickupParams struct {
	// Exactly one of ConfirmationCode or ReservationID identifies the
	// reservation; the code path is what the register staff use.
	ConfirmationCode *string
	ReservationID    *uuid.UUID
	StaffID          uuid.UUID
}

type SweepResult struct {
	Swept    int `json:"swept_count"`
	Relisted int `json:"relisted_count"`
}

type PickupCommands interface {
	ConfirmPickup(ctx context.Context, params ConfirmPickupParams) (*queries.ReservationView, error)
	// SweepNoShows expires reserved reservations whose pickup window has
	// lapsed, returns their units to inventory, and relists the batch at a
	// penalty discount. Safe to run on any cadence.
	SweepNoShows(ctx context.Context) (*SweepResult, error)
}

type pickupUseCaseImpl struct {
	reservations shared.ReservationRepository
	batches      shared.BatchRepository
	offers       shared.OfferRepository
	products     shared.ProductRepository
	impacts      shared.ImpactRepository
	clock        clock.Clock
	cfg          config.MarkdownConfig
}

func NewPickupUseCase(
	reservations shared.ReservationRepository,
	batches shared.BatchRepository,
	offers shared.OfferRepository,
	products shared.ProductRepository,
	impacts shared.ImpactRepository,
	clock clock.Clock,
	cfg config.MarkdownConfig,
) PickupCommands {
	return &pickupUseCaseImpl{
		reservations: reservations,
		batches:      batches,
		offers:       offers,
		products:     products,
		impacts:      impacts,
		clock:        clock,
		cfg:          cfg,
	}
}

func (p *pickupUseCaseImpl) ConfirmPickup(ctx context.Context, params ConfirmPickupParams) (*queries.ReservationView, error) {
	res, err := p.locateReservation(ctx, params)
	if err != nil {
		return nil, err
	}

	// A code pointing at a finalized reservation is a distinct condition
	// from a code that never existed; staff see "already picked up".
	if res.Status().IsTerminal() {
		return nil, errs.ErrAlreadyFinalized
	}

	now := p.clock.Now()
	ok, err := p.reservations.TransitionStatus(ctx, res.ID(), reservation.StatusReserved, reservation.StatusPickedUp, now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	if !ok {
		return nil, errs.ErrAlreadyFinalized
	}

	if err := p.batches.FinalizeUnits(ctx, res.BatchID(), res.Qty()); err != nil {
		// Roll the status back so staff can retry; otherwise the record
		// reads picked_up while the units were never removed.
		if _, rbErr := p.reservations.TransitionStatus(ctx, res.ID(), reservation.StatusPickedUp, reservation.StatusReserved, now); rbErr != nil {
			slog.Error("failed to revert pickup status after inventory failure",
				"reservation_id", res.ID(),
				"error", rbErr.Error())
		}
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	if err := p.reservations.RecordPickup(ctx, res.ID(), params.StaffID, now); err != nil {
		slog.Warn("failed to record pickup audit entry", "reservation_id", res.ID(), "error", err.Error())
	}

	if err := p.applyImpact(ctx, res); err != nil {
		slog.Error("failed to apply impact delta", "reservation_id", res.ID(), "error", err.Error())
	}

	confirmed, err := p.reservations.FindByID(ctx, res.ID())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	return queries.NewReservationView(confirmed), nil
}

func (p *pickupUseCaseImpl) SweepNoShows(ctx context.Context) (*SweepResult, error) {
	now := p.clock.Now()

	lapsed, err := p.reservations.ListSweepable(ctx, now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	result := &SweepResult{}
	for _, res := range lapsed {
		if err := p.sweepOne(ctx, res, now, result); err != nil {
			// Per-record policy: log and keep sweeping the rest.
			slog.Error("no-show sweep failed for reservation",
				"reservation_id", res.ID(),
				"error", err.Error())
		}
	}

	return result, nil
}

func (p *pickupUseCaseImpl) sweepOne(ctx context.Context, res *reservation.Reservation, now time.Time, result *SweepResult) error {
	// CAS on status: if another sweep or a pickup got here first this is a
	// no-op, so units are never double-credited.
	ok, err := p.reservations.TransitionStatus(ctx, res.ID(), reservation.StatusReserved, reservation.StatusNoShow, now)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if err := p.batches.ReleaseUnits(ctx, res.BatchID(), res.Qty()); err != nil {
		// Revert to reserved so the next sweep retries the release instead
		// of stranding the units behind a terminal status.
		if _, rbErr := p.reservations.TransitionStatus(ctx, res.ID(), reservation.StatusNoShow, reservation.StatusReserved, now); rbErr != nil {
			slog.Error("failed to revert no-show status after inventory failure",
				"reservation_id", res.ID(),
				"error", rbErr.Error())
		}
		return err
	}
	result.Swept++

	if err := p.relist(ctx, res, now); err != nil {
		return err
	}
	result.Relisted++
	return nil
}

// relist opens (or deepens) a public offer at a penalty discount: at least
// the lapsed offer's discount plus the configured bump, capped at 100. This
// bypasses the tier schedule on purpose.
func (p *pickupUseCaseImpl) relist(ctx context.Context, res *reservation.Reservation, now time.Time) error {
	lapsedOffer, err := p.offers.FindByID(ctx, res.OfferID())
	if err != nil {
		return err
	}

	penaltyPct := lapsedOffer.DiscountPct() + p.cfg.NoShowBumpPct
	if penaltyPct > offer.MaxDiscountPct {
		penaltyPct = offer.MaxDiscountPct
	}

	batch, err := p.batches.FindByID(ctx, res.BatchID())
	if err != nil {
		return err
	}
	if batch.IsExpired(now) {
		// Past expiry the batch has left the sellable pool; nothing to relist.
		return nil
	}

	candidate, err := offer.NewOffer(res.BatchID(), penaltyPct, now, batch.ExpiryTS(), offer.AudiencePublic)
	if err != nil {
		return err
	}
	surviving, created, err := p.offers.CreateIfNoneActive(ctx, candidate, now)
	if err != nil {
		return err
	}
	if created {
		return nil
	}

	if penaltyPct <= surviving.DiscountPct() {
		return nil
	}
	return p.offers.RaiseDiscount(ctx, surviving.ID(), penaltyPct)
}

func (p *pickupUseCaseImpl) locateReservation(ctx context.Context, params ConfirmPickupParams) (*reservation.Reservation, error) {
	switch {
	case params.ConfirmationCode != nil:
		code, err := reservation.NewCode(*params.ConfirmationCode)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
		res, err := p.reservations.FindByCode(ctx, code)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.ErrReservationNotFound
			}
			return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
		}
		return res, nil

	case params.ReservationID != nil:
		res, err := p.reservations.FindByID(ctx, *params.ReservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.ErrReservationNotFound
			}
			return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
		}
		return res, nil

	default:
		return nil, errs.Mark(errs.ErrReservationNotFound, errs.ErrDomainValidation)
	}
}

func (p *pickupUseCaseImpl) applyImpact(ctx context.Context, res *reservation.Reservation) error {
	off, err := p.offers.FindByID(ctx, res.OfferID())
	if err != nil {
		return err
	}
	batch, err := p.batches.FindByID(ctx, res.BatchID())
	if err != nil {
		return err
	}
	prod, err := p.products.FindByID(ctx, batch.ProductID())
	if err != nil {
		return err
	}

	unitPrice := prod.BasePrice().DiscountedBy(off.DiscountPct())
	delta := impact.ForPickup(res.Qty(), prod.WeightGrams(), prod.CO2ePerKg(), unitPrice.Cents())
	return p.impacts.Apply(ctx, delta)
}
