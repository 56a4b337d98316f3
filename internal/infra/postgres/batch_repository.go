package postgres

import (
	"context"
	"time"

	"zerowaste-exchange/internal/domain/inventory"
	"zerowaste-exchange/internal/infra"
	"zerowaste-exchange/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type batchRepository struct {
	pool *pgxpool.Pool
}

func NewBatchRepository(pool *pgxpool.Pool) shared.BatchRepository {
	return &batchRepository{pool: pool}
}

const insertBatch = `
INSERT INTO batches (id, product_id, store_id, qty_total, qty_available, expiry_ts)
VALUES ($1, $2, $3, $4, $5, $6)`

func (r *batchRepository) Create(ctx context.Context, b *inventory.Batch) error {
	_, err := r.pool.Exec(ctx, insertBatch,
		b.ID(), b.ProductID(), b.StoreID(), b.QtyTotal(), b.QtyAvailable(), b.ExpiryTS(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "batch already exists", err)
		}
		return infra.WrapRepoErr(infra.KindStoreFailure, "failed to create batch", err)
	}
	return nil
}

const selectBatch = `
SELECT id, product_id, store_id, qty_total, qty_available, expiry_ts, created_at
FROM batches`

func (r *batchRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Batch, error) {
	row := r.pool.QueryRow(ctx, selectBatch+" WHERE id = $1", id)
	b, err := scanBatch(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "batch not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindStoreFailure, "failed to find batch", err)
	}
	return b, nil
}

func (r *batchRepository) List(ctx context.Context) ([]*inventory.Batch, error) {
	return r.query(ctx, selectBatch+" ORDER BY expiry_ts, id")
}

func (r *batchRepository) ListSellable(ctx context.Context, now time.Time) ([]*inventory.Batch, error) {
	return r.query(ctx, selectBatch+" WHERE qty_available > 0 AND expiry_ts > $1 ORDER BY expiry_ts, id", now)
}

// ReserveUnits relies on the conditional UPDATE being atomic per row: no
// interleaving of concurrent callers can take qty_available below zero.
func (r *batchRepository) ReserveUnits(ctx context.Context, batchID uuid.UUID, qty int) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE batches SET qty_available = qty_available - $2 WHERE id = $1 AND qty_available >= $2`,
		batchID, qty,
	)
	if err != nil {
		return infra.WrapRepoErr(infra.KindStoreFailure, "failed to reserve units", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM batches WHERE id = $1)`, batchID).Scan(&exists); err != nil {
			return infra.WrapRepoErr(infra.KindStoreFailure, "failed to reserve units", err)
		}
		if !exists {
			return infra.NewRepoErr(infra.KindNotFound, "batch not found: "+batchID.String())
		}
		return infra.NewRepoErr(infra.KindInsufficientInventory, "not enough units available")
	}
	return nil
}

func (r *batchRepository) ReleaseUnits(ctx context.Context, batchID uuid.UUID, qty int) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE batches SET qty_available = LEAST(qty_total, qty_available + $2) WHERE id = $1`,
		batchID, qty,
	)
	if err != nil {
		return infra.WrapRepoErr(infra.KindStoreFailure, "failed to release units", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "batch not found: "+batchID.String())
	}
	return nil
}

func (r *batchRepository) FinalizeUnits(ctx context.Context, batchID uuid.UUID, qty int) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE batches
		 SET qty_total     = GREATEST(0, qty_total - $2),
		     qty_available = LEAST(qty_available, GREATEST(0, qty_total - $2))
		 WHERE id = $1`,
		batchID, qty,
	)
	if err != nil {
		return infra.WrapRepoErr(infra.KindStoreFailure, "failed to finalize units", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "batch not found: "+batchID.String())
	}
	return nil
}

func (r *batchRepository) query(ctx context.Context, sql string, args ...any) ([]*inventory.Batch, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindStoreFailure, "failed to list batches", err)
	}
	defer rows.Close()

	var out []*inventory.Batch
	for rows.Next() {
		b, err := scanBatch(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindStoreFailure, "failed to scan batch", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindStoreFailure, "failed to list batches", err)
	}
	return out, nil
}

func scanBatch(row pgx.Row) (*inventory.Batch, error) {
	var (
		id, productID, storeID uuid.UUID
		qtyTotal, qtyAvailable int
		expiryTS, createdAt    time.Time
	)
	if err := row.Scan(&id, &productID, &storeID, &qtyTotal, &qtyAvailable, &expiryTS, &createdAt); err != nil {
		return nil, err
	}
	return inventory.ReconstructBatch(id, productID, storeID, qtyTotal, qtyAvailable, expiryTS, createdAt), nil
}
