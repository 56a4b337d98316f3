//go:build e2e

package dbtest

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ResetDB wipes all mutable state between subtests. The impact_totals
// singleton row survives schema application, so it is zeroed rather than
// truncated.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := pool.Exec(ctx,
		"TRUNCATE products, batches, offers, reservations, pickups, impact_log CASCADE"); err != nil {
		return err
	}
	_, err := pool.Exec(ctx, `
		UPDATE impact_totals
		SET lbs_saved = 0,
		    co2e_avoided = 0,
		    revenue_recovered = 0,
		    items_rescued = 0`)
	return err
}
