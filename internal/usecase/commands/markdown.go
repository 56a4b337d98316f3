package commands

import (
	"context"
	"log/slog"
	"time"

	"zerowaste-exchange/internal/domain/offer"
	"zerowaste-exchange/internal/pkg/clock"
	"zerowaste-exchange/internal/pkg/config"
	"zerowaste-exchange/internal/pkg/errs"
	"zerowaste-exchange/internal/usecase/shared"

	"github.com/google/uuid"
)

type RecalculateResult struct {
	Created int `json:"created_offers"`
	Updated int `json:"updated_offers"`
}

type MarkdownCommands interface {
	// Recalculate scans sellable batches and upserts their offers at the
	// current markdown tier. Idempotent: running it twice against the same
	// inventory state produces no additional side effects.
	Recalculate(ctx context.Context) (*RecalculateResult, error)
}

type markdownUseCaseImpl struct {
	batches shared.BatchRepository
	offers  shared.OfferRepository
	clock   clock.Clock
	cfg     config.MarkdownConfig
}

func NewMarkdownUseCase(batches shared.BatchRepository, offers shared.OfferRepository, clock clock.Clock, cfg config.MarkdownConfig) MarkdownCommands {
	return &markdownUseCaseImpl{
		batches: batches,
		offers:  offers,
		clock:   clock,
		cfg:     cfg,
	}
}

func (m *markdownUseCaseImpl) Recalculate(ctx context.Context) (*RecalculateResult, error) {
	now := m.clock.Now()

	batches, err := m.batches.ListSellable(ctx, now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	result := &RecalculateResult{}
	for _, b := range batches {
		pct, listed := offer.TierAt(b.ExpiryTS(), now)
		if !listed {
			continue
		}

		// A failure on one batch must not abort the sweep for the rest.
		if err := m.upsertOffersForBatch(ctx, b.ID(), b.ExpiryTS(), pct, now, result); err != nil {
			slog.Error("markdown recalculation failed for batch",
				"batch_id", b.ID(),
				"error", err.Error())
		}
	}

	return result, nil
}

func (m *markdownUseCaseImpl) upsertOffersForBatch(ctx context.Context, batchID uuid.UUID, expiryTS time.Time, pct int, now time.Time, result *RecalculateResult) error {
	if m.cfg.NonprofitPriority {
		if err := m.upsertOffer(ctx, batchID, offer.AudienceNonprofit, pct, now, expiryTS, result); err != nil {
			return err
		}
	}

	// The public listing opens after the nonprofit early-access window; the
	// start is fixed at first creation so later recalculations never push
	// it back out.
	publicStart := now.Add(m.cfg.NonprofitEarly)
	if !m.cfg.NonprofitPriority {
		publicStart = now
	}
	if publicStart.After(expiryTS) {
		publicStart = now
	}
	return m.upsertOffer(ctx, batchID, offer.AudiencePublic, pct, publicStart, expiryTS, result)
}

func (m *markdownUseCaseImpl) upsertOffer(ctx context.Context, batchID uuid.UUID, audience offer.Audience, pct int, startTS, endTS time.Time, result *RecalculateResult) error {
	candidate, err := offer.NewOffer(batchID, pct, startTS, endTS, audience)
	if err != nil {
		return err
	}

	// The store arbitrates find-or-create atomically; a concurrent sweep or
	// recalculation can win the insert but never duplicate it.
	surviving, created, err := m.offers.CreateIfNoneActive(ctx, candidate, m.clock.Now())
	if err != nil {
		return err
	}
	if created {
		result.Created++
		return nil
	}

	// Keep the identifier stable so reservations referencing the offer stay
	// valid; the store rejects any lowering of the discount.
	if pct <= surviving.DiscountPct() {
		return nil
	}
	if err := m.offers.RaiseDiscount(ctx, surviving.ID(), pct); err != nil {
		return err
	}
	result.Updated++
	return nil
}
