package memory

import (
	"context"
	"errors"
	"sort"
	"time"

	"zerowaste-exchange/internal/domain/inventory"
	"zerowaste-exchange/internal/infra"
	"zerowaste-exchange/internal/usecase/shared"

	"github.com/google/uuid"
)

type batchRepository struct {
	store *Store
}

func NewBatchRepository(store *Store) shared.BatchRepository {
	return &batchRepository{store: store}
}

func (r *batchRepository) Create(_ context.Context, b *inventory.Batch) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.batches[b.ID()]; exists {
		return infra.NewRepoErr(infra.KindDuplicateKey, "batch already exists: "+b.ID().String())
	}
	r.store.batches[b.ID()] = &batchRecord{batch: cloneBatch(b)}
	return nil
}

func (r *batchRepository) FindByID(_ context.Context, id uuid.UUID) (*inventory.Batch, error) {
	rec, err := r.record(id)
	if err != nil {
		return nil, err
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return cloneBatch(rec.batch), nil
}

func (r *batchRepository) List(_ context.Context) ([]*inventory.Batch, error) {
	return r.filtered(func(*inventory.Batch) bool { return true })
}

func (r *batchRepository) ListSellable(_ context.Context, now time.Time) ([]*inventory.Batch, error) {
	return r.filtered(func(b *inventory.Batch) bool {
		return b.QtyAvailable() > 0 && !b.IsExpired(now)
	})
}

// ReserveUnits is the check-and-decrement the whole engine leans on. The
// record mutex makes it linearizable per batch: two goroutines racing for
// the last unit see sequential Reserve calls, and exactly one wins.
func (r *batchRepository) ReserveUnits(_ context.Context, batchID uuid.UUID, qty int) error {
	rec, err := r.record(batchID)
	if err != nil {
		return err
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()

	if err := rec.batch.Reserve(qty); err != nil {
		if errors.Is(err, inventory.ErrInsufficientInventory) {
			return infra.WrapRepoErr(infra.KindInsufficientInventory, "not enough units available", err)
		}
		return infra.WrapRepoErr(infra.KindStoreFailure, "reserve units", err)
	}
	return nil
}

func (r *batchRepository) ReleaseUnits(_ context.Context, batchID uuid.UUID, qty int) error {
	rec, err := r.record(batchID)
	if err != nil {
		return err
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()

	rec.batch.Release(qty)
	return nil
}

func (r *batchRepository) FinalizeUnits(_ context.Context, batchID uuid.UUID, qty int) error {
	rec, err := r.record(batchID)
	if err != nil {
		return err
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()

	if err := rec.batch.Finalize(qty); err != nil {
		return infra.WrapRepoErr(infra.KindStoreFailure, "finalize units", err)
	}
	return nil
}

func (r *batchRepository) record(id uuid.UUID) (*batchRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rec, ok := r.store.batches[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "batch not found: "+id.String())
	}
	return rec, nil
}

func (r *batchRepository) filtered(keep func(*inventory.Batch) bool) ([]*inventory.Batch, error) {
	r.store.mu.RLock()
	records := make([]*batchRecord, 0, len(r.store.batches))
	for _, rec := range r.store.batches {
		records = append(records, rec)
	}
	r.store.mu.RUnlock()

	out := make([]*inventory.Batch, 0, len(records))
	for _, rec := range records {
		rec.mu.Lock()
		if keep(rec.batch) {
			out = append(out, cloneBatch(rec.batch))
		}
		rec.mu.Unlock()
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].ExpiryTS().Equal(out[j].ExpiryTS()) {
			return out[i].ExpiryTS().Before(out[j].ExpiryTS())
		}
		return out[i].ID().String() < out[j].ID().String()
	})
	return out, nil
}
