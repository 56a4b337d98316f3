package queries

import (
	"context"
	"log/slog"

	"zerowaste-exchange/internal/domain/offer"
	"zerowaste-exchange/internal/pkg/clock"
	"zerowaste-exchange/internal/usecase/shared"
)

type OfferQueries interface {
	// ListForAudience returns offers currently visible to the audience, each
	// with the underlying batch's live availability embedded.
	ListForAudience(ctx context.Context, audience offer.Audience) ([]*OfferView, error)
}

type offerQueriesImpl struct {
	offers   shared.OfferRepository
	batches  shared.BatchRepository
	products shared.ProductRepository
	clock    clock.Clock
}

func NewOfferQueries(offers shared.OfferRepository, batches shared.BatchRepository, products shared.ProductRepository, clock clock.Clock) OfferQueries {
	return &offerQueriesImpl{
		offers:   offers,
		batches:  batches,
		products: products,
		clock:    clock,
	}
}

func (q *offerQueriesImpl) ListForAudience(ctx context.Context, audience offer.Audience) ([]*OfferView, error) {
	now := q.clock.Now()

	rows, err := q.offers.ListVisible(ctx, audience, now)
	if err != nil {
		return nil, err
	}

	views := make([]*OfferView, 0, len(rows))
	for _, o := range rows {
		batch, err := q.batches.FindByID(ctx, o.BatchID())
		if err != nil {
			slog.Warn("skipping offer with missing batch", "offer_id", o.ID(), "batch_id", o.BatchID(), "error", err)
			continue
		}
		if batch.QtyAvailable() <= 0 {
			continue
		}
		prod, err := q.products.FindByID(ctx, batch.ProductID())
		if err != nil {
			slog.Warn("skipping offer with missing product", "offer_id", o.ID(), "product_id", batch.ProductID(), "error", err)
			continue
		}

		views = append(views, &OfferView{
			ID:           o.ID(),
			BatchID:      batch.ID(),
			ProductID:    prod.ID(),
			ProductName:  prod.Name(),
			DiscountPct:  o.DiscountPct(),
			StartTS:      o.StartTS(),
			EndTS:        o.EndTS(),
			Audience:     o.Audience().String(),
			BasePrice:    prod.BasePrice().Dollars(),
			UnitPrice:    prod.BasePrice().DiscountedBy(o.DiscountPct()).Dollars(),
			QtyAvailable: batch.QtyAvailable(),
			ExpiryTS:     batch.ExpiryTS(),
		})
	}

	return views, nil
}
