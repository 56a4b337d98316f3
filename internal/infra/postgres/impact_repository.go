package postgres

import (
	"context"

	"zerowaste-exchange/internal/domain/impact"
	"zerowaste-exchange/internal/infra"
	"zerowaste-exchange/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type impactRepository struct {
	pool *pgxpool.Pool
}

func NewImpactRepository(pool *pgxpool.Pool) shared.ImpactRepository {
	return &impactRepository{pool: pool}
}

// Apply writes the delta to the log and folds it into the totals row in one
// transaction, so Snapshot and Rebuild can never drift apart.
func (r *impactRepository) Apply(ctx context.Context, d impact.Delta) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return infra.WrapRepoErr(infra.KindStoreFailure, "failed to begin impact tx", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx,
		`INSERT INTO impact_log (lbs_saved, co2e_avoided, revenue_recovered, items_rescued)
		 VALUES ($1, $2, $3, $4)`,
		d.LbsSaved, d.CO2eAvoided, d.RevenueRecovered, d.ItemsRescued,
	)
	if err != nil {
		return infra.WrapRepoErr(infra.KindStoreFailure, "failed to append impact log", err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE impact_totals SET
		   lbs_saved         = lbs_saved + $1,
		   co2e_avoided      = co2e_avoided + $2,
		   revenue_recovered = revenue_recovered + $3,
		   items_rescued     = items_rescued + $4`,
		d.LbsSaved, d.CO2eAvoided, d.RevenueRecovered, d.ItemsRescued,
	)
	if err != nil {
		return infra.WrapRepoErr(infra.KindStoreFailure, "failed to update impact totals", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr(infra.KindStoreFailure, "failed to commit impact tx", err)
	}
	return nil
}

func (r *impactRepository) Snapshot(ctx context.Context) (impact.Snapshot, error) {
	var s impact.Snapshot
	err := r.pool.QueryRow(ctx,
		`SELECT lbs_saved, co2e_avoided, revenue_recovered, items_rescued FROM impact_totals`,
	).Scan(&s.TotalLbsSaved, &s.TotalCO2eAvoided, &s.TotalRevenueRecovered, &s.TotalItemsRescued)
	if err != nil {
		return impact.Snapshot{}, infra.WrapRepoErr(infra.KindStoreFailure, "failed to read impact totals", err)
	}
	return s, nil
}

func (r *impactRepository) Rebuild(ctx context.Context) (impact.Snapshot, error) {
	var s impact.Snapshot
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(lbs_saved), 0),
		        COALESCE(SUM(co2e_avoided), 0),
		        COALESCE(SUM(revenue_recovered), 0),
		        COALESCE(SUM(items_rescued), 0)
		 FROM impact_log`,
	).Scan(&s.TotalLbsSaved, &s.TotalCO2eAvoided, &s.TotalRevenueRecovered, &s.TotalItemsRescued)
	if err != nil {
		return impact.Snapshot{}, infra.WrapRepoErr(infra.KindStoreFailure, "failed to rebuild impact snapshot", err)
	}
	return s, nil
}
