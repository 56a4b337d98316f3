package postgres

import (
	"context"
	"time"

	"zerowaste-exchange/internal/domain/offer"
	"zerowaste-exchange/internal/infra"
	"zerowaste-exchange/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type offerRepository struct {
	pool *pgxpool.Pool
}

func NewOfferRepository(pool *pgxpool.Pool) shared.OfferRepository {
	return &offerRepository{pool: pool}
}

const insertOffer = `
INSERT INTO offers (id, batch_id, discount_pct, start_ts, end_ts, audience)
VALUES ($1, $2, $3, $4, $5, $6)`

func (r *offerRepository) Create(ctx context.Context, o *offer.Offer) error {
	_, err := r.pool.Exec(ctx, insertOffer,
		o.ID(), o.BatchID(), o.DiscountPct(), o.StartTS(), o.EndTS(), o.Audience().String(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "offer already exists", err)
		}
		return infra.WrapRepoErr(infra.KindStoreFailure, "failed to create offer", err)
	}
	return nil
}

const insertOfferIfAbsent = `
INSERT INTO offers (id, batch_id, discount_pct, start_ts, end_ts, audience)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (batch_id, audience) DO NOTHING`

// CreateIfNoneActive relies on the unique index on (batch_id, audience):
// the losing inserter gets zero rows affected and reads back the winner.
func (r *offerRepository) CreateIfNoneActive(ctx context.Context, o *offer.Offer, now time.Time) (*offer.Offer, bool, error) {
	tag, err := r.pool.Exec(ctx, insertOfferIfAbsent,
		o.ID(), o.BatchID(), o.DiscountPct(), o.StartTS(), o.EndTS(), o.Audience().String(),
	)
	if err != nil {
		return nil, false, infra.WrapRepoErr(infra.KindStoreFailure, "failed to upsert offer", err)
	}
	if tag.RowsAffected() == 1 {
		return o, true, nil
	}

	existing, err := r.FindActive(ctx, o.BatchID(), o.Audience(), now)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

const selectOffer = `
SELECT id, batch_id, discount_pct, start_ts, end_ts, audience, created_at, updated_at
FROM offers`

func (r *offerRepository) FindByID(ctx context.Context, id uuid.UUID) (*offer.Offer, error) {
	row := r.pool.QueryRow(ctx, selectOffer+" WHERE id = $1", id)
	o, err := scanOffer(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "offer not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindStoreFailure, "failed to find offer", err)
	}
	return o, nil
}

func (r *offerRepository) FindActive(ctx context.Context, batchID uuid.UUID, audience offer.Audience, now time.Time) (*offer.Offer, error) {
	row := r.pool.QueryRow(ctx,
		selectOffer+" WHERE batch_id = $1 AND audience = $2 AND end_ts > $3 ORDER BY created_at DESC LIMIT 1",
		batchID, audience.String(), now,
	)
	o, err := scanOffer(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "no active offer for batch", err)
		}
		return nil, infra.WrapRepoErr(infra.KindStoreFailure, "failed to find active offer", err)
	}
	return o, nil
}

func (r *offerRepository) ListVisible(ctx context.Context, audience offer.Audience, now time.Time) ([]*offer.Offer, error) {
	rows, err := r.pool.Query(ctx,
		selectOffer+" WHERE audience = $1 AND start_ts <= $2 AND end_ts > $2 ORDER BY end_ts, id",
		audience.String(), now,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindStoreFailure, "failed to list offers", err)
	}
	defer rows.Close()

	var out []*offer.Offer
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindStoreFailure, "failed to scan offer", err)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindStoreFailure, "failed to list offers", err)
	}
	return out, nil
}

// RaiseDiscount uses GREATEST so the stored discount is monotonically
// non-decreasing no matter how recalculations interleave.
func (r *offerRepository) RaiseDiscount(ctx context.Context, offerID uuid.UUID, pct int) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE offers SET discount_pct = GREATEST(discount_pct, $2), updated_at = now() WHERE id = $1`,
		offerID, pct,
	)
	if err != nil {
		return infra.WrapRepoErr(infra.KindStoreFailure, "failed to raise discount", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "offer not found: "+offerID.String())
	}
	return nil
}

func scanOffer(row pgx.Row) (*offer.Offer, error) {
	var (
		id, batchID          uuid.UUID
		discountPct          int
		startTS, endTS       time.Time
		audience             string
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &batchID, &discountPct, &startTS, &endTS, &audience, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return offer.ReconstructOffer(id, batchID, discountPct, startTS, endTS, offer.Audience(audience), createdAt, updatedAt), nil
}
